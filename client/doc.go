// Package client implements a small HTTP client for the simulation API.
package client

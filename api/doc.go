// Package api exposes the simulator over HTTP.  It registers a small JSON
// API on a fiber application: one endpoint runs a simulation for a submitted
// process set, another lists the supported policies and strategies.
package api

// Package policy defines the scheduling policy and memory allocation strategy
// vocabulary shared by the engine configuration, the HTTP surface and the
// console driver.  Both types are plain strings so they serialise naturally to
// JSON and YAML; parsing is tolerant of the spellings users actually type
// ("fcfs", "round robin", "best fit", ...).
package policy

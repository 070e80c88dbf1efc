// Package loader reads process-set definitions into Process values ready for
// simulation.  Two formats are supported: YAML documents (a `processes:` list
// with arrival/burst/memory/priority fields) and the legacy whitespace format
// (one `arrival burst memory priority` line per process, `#` starting a
// comment).  Sources are addressed by URL through viant/afs, so plain file
// paths, mem:// and embed:// work alike.
package loader

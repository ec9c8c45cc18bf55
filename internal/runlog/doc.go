// Package runlog persists a history of generator runs in SQLite. The
// store is purely observational: callers treat a store failure as a
// warning, never as a reason to fail the run that produced the
// artifacts.
package runlog

// Package pipeline turns a feed snapshot into the playlist, EPG and
// picon artifacts. It owns channel normalization: exclusion rules, the
// favorites filter, stream URL construction and the timeline-to-programme
// mapping. Failures scoped to a single channel are logged and skipped so
// one bad record never aborts a run.
package pipeline

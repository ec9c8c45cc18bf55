// Package favorites filters the channel lineup against a user supplied
// slug list. The list file holds one channel slug per line; blank lines
// and '#' comments are ignored. Slugs that never match a channel are
// reported after a run so typos surface instead of silently dropping.
package favorites

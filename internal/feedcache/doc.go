// Package feedcache gates feed fetches behind an on-disk snapshot.
//
// A snapshot younger than 30 minutes (by mtime) is reused verbatim; the
// content is not validated, so a corrupt file inside the window is served
// as-is until it ages out. On refresh the stale file is removed before the
// fetch, so a failed download leaves no cache behind and the next run
// fetches again.
package feedcache

// Package epg builds the XMLTV guide document. Channels and programmes
// may be added in any order; Finalize sorts the document so all channel
// elements precede programmes and output stays deterministic across runs.
package epg

// Package feed models the Pluto.TV channel feed and fetches it over HTTP.
//
// The feed is a JSON array of channel records, each carrying its stitched
// stream URLs, logo references, and the schedule timelines for the
// requested window. The client only hands back bytes; parsing is a
// separate step so the snapshot cache can store the response verbatim.
package feed

// Command plutoiptv generates an M3U playlist and XMLTV guide from the
// Pluto.TV channel feed, with optional picon synthesis and a run
// history.
package main

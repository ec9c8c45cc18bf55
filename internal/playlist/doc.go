// Package playlist renders the extended M3U playlist consumed by IPTV
// players. Each channel contributes one #EXTINF record carrying the
// tvg-* attributes and the resolved stream URL.
package playlist

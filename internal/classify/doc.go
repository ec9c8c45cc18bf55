// Package classify maps feed genre metadata onto EPG category labels.
//
// The mapping is table data, not branch logic: a primary branch on the
// channel's top-level category, a secondary pass for the "Hobbies & Games"
// sub-genre, and a tertiary lookup of the sub-genre in a film-oriented or
// series-oriented table selected by the series type. Classification is a
// pure function; results are deduplicated and sorted for reproducible
// output.
package classify

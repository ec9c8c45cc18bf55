// Package picon synthesizes channel icon images.
//
// Each picon is a 576x576 PNG: the provider logo anchored into the square
// canvas, optionally composited over a two-stop gradient derived from the
// device identity. Picons are keyed by channel slug and regenerated only
// when absent (a zero-byte file counts as absent) or when overwrite is
// forced.
package picon

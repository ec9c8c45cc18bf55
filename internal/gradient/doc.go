// Package gradient derives deterministic picon background gradients.
//
// Hues come from the trailing hex characters of the device identifier, so
// the same device always paints the same backgrounds; explicit colors and
// angles from configuration take precedence over derivation. Derivation is
// pure: identical inputs always produce an identical Spec.
package gradient

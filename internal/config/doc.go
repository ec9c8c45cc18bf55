// Package config loads, normalizes, and validates generator configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and fills in a per-install device identity.
// The Config type centralizes every knob the CLI needs so output
// directories, feed endpoints, and picon styling are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, quantized coordinates, and clear validation errors.
package config

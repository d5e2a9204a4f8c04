// Package config loads, normalizes, and validates feedtally configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment overrides such as FEEDTALLY_INPUT_DIR.
// The Config type centralizes every knob the batch runner and CLI need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

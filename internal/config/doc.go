// Package config loads, normalizes, and validates slangvault configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/slangvault/config.toml or a
// project-local slangvault.toml. The Config type centralizes every knob the
// CLI needs: archive directories, API endpoint and retry behavior, run
// scheduling, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

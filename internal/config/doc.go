// Package config loads, normalizes, and validates transcriptbatch
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// TRANSCRIPTBATCH_BATCH_SIZE, optionally seeded from a .env file. Command-line
// flags take precedence over everything loaded here.
package config

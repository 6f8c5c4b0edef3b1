// Package config loads, normalizes, and validates the TOML configuration
// that supplies fallback values for the ripper CLI flags.
//
// Resolution order: explicit --config path, then ~/.config/ripper/config.toml,
// then ./ripper.toml. An absent file yields pure defaults and is not an error.
package config

package config

import (
	"errors"
	"fmt"

	"ripper/internal/chromakey"
)

// Validate ensures the configuration is usable. The ranges mirror the CLI
// flag validation so a bad config fails identically to a bad flag.
func (c *Config) Validate() error {
	if err := c.validateDefaults(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDefaults() error {
	if c.Defaults.Tolerance < 0 || c.Defaults.Tolerance > 255 {
		return fmt.Errorf("defaults.tolerance must be between 0 and 255, got %d", c.Defaults.Tolerance)
	}
	if c.Defaults.FPS <= 0 {
		return fmt.Errorf("defaults.fps must be greater than 0, got %d", c.Defaults.FPS)
	}
	if c.Defaults.Feather < 0 {
		return fmt.Errorf("defaults.feather must not be negative, got %d", c.Defaults.Feather)
	}
	if c.Defaults.Color != "" {
		if _, err := chromakey.ParseColor(c.Defaults.Color); err != nil {
			return fmt.Errorf("defaults.color: %w", err)
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Format != defaultOutputFormat {
		return fmt.Errorf("output.format: only %q is supported, got %q", defaultOutputFormat, c.Output.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

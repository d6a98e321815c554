package config

import (
	"errors"
	"fmt"
)

// VerifyFormats lists the accepted verify.format values.
var VerifyFormats = []string{"text", "table", "json"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateVerify(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateConvert() error {
	if c.Convert.BatchSize <= 0 {
		return fmt.Errorf("convert.batch_size must be positive, got %d", c.Convert.BatchSize)
	}
	return nil
}

func (c *Config) validateVerify() error {
	if err := ValidateFormat(c.Verify.Format); err != nil {
		return fmt.Errorf("verify.format: %w", err)
	}
	if c.Verify.MissingListLimit <= 0 {
		return errors.New("verify.missing_list_limit must be positive")
	}
	if c.Verify.SampleSize <= 0 {
		return errors.New("verify.sample_size must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

// ValidateFormat reports whether format is a supported verify output format.
func ValidateFormat(format string) error {
	for _, f := range VerifyFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported value %q (want one of %v)", format, VerifyFormats)
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeConvert(); err != nil {
		return err
	}
	c.normalizeVerify()
	return c.normalizeLogging()
}

func (c *Config) normalizeConvert() error {
	if value, ok := os.LookupEnv(EnvBatchSize); ok && strings.TrimSpace(value) != "" {
		size, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", EnvBatchSize, value)
		}
		c.Convert.BatchSize = size
	}
	return nil
}

func (c *Config) normalizeVerify() {
	c.Verify.Format = strings.ToLower(strings.TrimSpace(c.Verify.Format))
	if c.Verify.Format == "" {
		c.Verify.Format = defaultVerifyFormat
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

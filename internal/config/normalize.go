package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAPI()
	c.normalizeRun()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DictDir) == "" {
		c.Paths.DictDir = defaultDictDir
	}
	if c.Paths.DictDir, err = expandPath(c.Paths.DictDir); err != nil {
		return fmt.Errorf("paths.dict_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StatsPath) == "" {
		c.Paths.StatsPath = defaultStatsPath
	}
	if c.Paths.StatsPath, err = expandPath(c.Paths.StatsPath); err != nil {
		return fmt.Errorf("paths.stats_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeAPI() {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultAPIBaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultAPITimeoutSeconds
	}
	if c.API.MaxRetries <= 0 {
		c.API.MaxRetries = defaultMaxRetries
	}
	if c.API.RetryDelaySeconds < 0 {
		c.API.RetryDelaySeconds = defaultRetryDelaySeconds
	}
	if c.API.BatchDelayMillis < 0 {
		c.API.BatchDelayMillis = defaultBatchDelayMillis
	}
	if c.API.BatchesPerRun <= 0 {
		c.API.BatchesPerRun = defaultBatchesPerRun
	}
}

func (c *Config) normalizeRun() {
	c.Run.Schedule = strings.TrimSpace(c.Run.Schedule)
	if c.Run.Schedule == "" {
		c.Run.Schedule = defaultSchedule
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

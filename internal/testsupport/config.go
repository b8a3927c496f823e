// Package testsupport provides helpers shared across package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"slangvault/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
// Network-facing values point at localhost so a stray request fails fast.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.DictDir = filepath.Join(base, "dictionary")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StatsPath = filepath.Join(base, "stats.json")
	cfg.API.BaseURL = "http://127.0.0.1:1/random"
	cfg.API.RetryDelaySeconds = 0
	cfg.API.BatchDelayMillis = 0
	cfg.Run.LockEnabled = false
	return &cfg
}

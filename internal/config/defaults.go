package config

const (
	defaultDataDir   = "~/.local/share/slangvault/data"
	defaultDictDir   = "~/.local/share/slangvault/dictionary"
	defaultLogDir    = "~/.local/share/slangvault/logs"
	defaultStatsPath = "~/.local/share/slangvault/stats.json"

	defaultAPIBaseURL        = "https://api.urbandictionary.com/v0/random"
	defaultAPITimeoutSeconds = 10
	defaultMaxRetries        = 3
	defaultRetryDelaySeconds = 1
	defaultBatchDelayMillis  = 500
	defaultBatchesPerRun     = 5

	defaultSchedule = "*/15 * * * *"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			DictDir:   defaultDictDir,
			LogDir:    defaultLogDir,
			StatsPath: defaultStatsPath,
		},
		API: API{
			BaseURL:           defaultAPIBaseURL,
			TimeoutSeconds:    defaultAPITimeoutSeconds,
			MaxRetries:        defaultMaxRetries,
			RetryDelaySeconds: defaultRetryDelaySeconds,
			BatchDelayMillis:  defaultBatchDelayMillis,
			BatchesPerRun:     defaultBatchesPerRun,
		},
		Run: Run{
			LockEnabled: true,
			Schedule:    defaultSchedule,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

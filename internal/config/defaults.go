package config

const (
	defaultConfigPath       = "~/.config/transcriptbatch/config.toml"
	projectConfigName       = "transcriptbatch.toml"
	defaultBatchSize        = 10
	defaultVerifyFormat     = "text"
	defaultMissingListLimit = 50
	defaultSampleSize       = 5
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
)

// Environment variables consulted after the config file is read.
const (
	EnvBatchSize = "TRANSCRIPTBATCH_BATCH_SIZE"
	EnvLogLevel  = "TRANSCRIPTBATCH_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Convert: Convert{
			BatchSize:  defaultBatchSize,
			LockOutput: true,
			Progress:   true,
		},
		Verify: Verify{
			Format:           defaultVerifyFormat,
			MissingListLimit: defaultMissingListLimit,
			SampleSize:       defaultSampleSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package config

const (
	defaultInputDir         = "./test_feeds"
	defaultLockPath         = "~/.local/share/feedtally/feedtally.lock"
	defaultProgressInterval = 1
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultColorMode        = ColorAuto
)

// Color modes accepted by report.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir: defaultInputDir,
			LockPath: defaultLockPath,
		},
		Batch: Batch{
			SkipUnreadable:   true,
			ProgressInterval: defaultProgressInterval,
		},
		Parser: Parser{
			CharsetFallback: true,
		},
		Report: Report{
			Color: defaultColorMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

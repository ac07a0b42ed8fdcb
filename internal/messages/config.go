package messages

// Configuration messages.
const (
	// ConfigReadFmt formats a config file read failure.
	ConfigReadFmt = "failed to read config %s: %w"
	// ConfigParseFmt formats a TOML decode failure.
	ConfigParseFmt = "failed to parse config %s: %w"
	// ConfigHomeDirFmt formats a home directory resolution failure.
	ConfigHomeDirFmt = "failed to resolve home directory: %w"
	// ConfigInvalidIntervalFmt formats a non-positive poll interval.
	ConfigInvalidIntervalFmt = "poll_interval_ms must be positive, got %d"
)

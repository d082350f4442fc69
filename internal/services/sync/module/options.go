package module

import "palpite/internal/platform/config"

// Options holds configuration settings for the sync module
type Options struct {
	Schedule   string
	BatchLimit int

	BaseURL    string
	UserAgent  string
	MaxRetries int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("CORE_SYNC_")
	return Options{
		Schedule:   sf.MayString("SCHEDULE", "*/30 * * * *"),
		BatchLimit: sf.MayInt("BATCH_LIMIT", 50),
		BaseURL:    sf.MayString("BASE_URL", ""),
		UserAgent:  sf.MayString("USER_AGENT", ""),
		MaxRetries: sf.MayInt("MAX_RETRIES", 0),
	}
}

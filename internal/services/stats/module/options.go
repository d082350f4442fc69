package module

import "palpite/internal/platform/config"

// Options holds configuration settings for the stats module
type Options struct {
	CacheSize int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("CORE_STATS_")
	return Options{
		CacheSize: sf.MayInt("CACHE_SIZE", 8),
	}
}

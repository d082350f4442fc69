package module

import "palpite/internal/platform/config"

// Options holds configuration settings for the draws module
type Options struct {
	HardLimit int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	df := cfg.Prefix("CORE_DRAWS_")
	return Options{
		HardLimit: df.MayInt("HARD_LIMIT", 5000),
	}
}

package module

import "palpite/internal/platform/config"

// Options holds configuration settings for the generator module
type Options struct {
	MaxQuantity int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	gf := cfg.Prefix("CORE_GENERATOR_")
	return Options{
		MaxQuantity: gf.MayInt("MAX_QUANTITY", 100),
	}
}

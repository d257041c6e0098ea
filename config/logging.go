package config

import (
	"github.com/kbukum/ergolog/logger"
)

// Load returns a validated logger configuration built from defaults, the
// config file and the environment.
func Load(opts ...LoaderOption) (logger.Config, error) {
	var cfg logger.Config
	if err := LoadInto(&cfg, opts...); err != nil {
		return logger.Config{}, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return logger.Config{}, err
	}
	return cfg, nil
}

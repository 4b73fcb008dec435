package config

import (
	pkgconfig "github.com/Skotchmaster/hotel_ordering/pkg/config"
)

type Config struct {
	pkgconfig.Config
}

// Load reads the environment and exits when a required value is missing.
func Load() *Config {
	cfg := &Config{Config: pkgconfig.Load()}

	pkgconfig.MustNonEmptyBytes(cfg.SessionSecret, "SESSION_SECRET")
	pkgconfig.MustPositive(cfg.ServerPort, "SERVER_PORT")
	pkgconfig.MustPositive(cfg.SessionCapacity, "SESSION_CAPACITY")

	return cfg
}

package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the environment-backed service configuration. Values come from
// process env vars (a .env file is loaded by the entry point beforehand).
type Config struct {
	MongoURI        string        `mapstructure:"MONGO_URI"`
	DBName          string        `mapstructure:"DB_NAME"`
	ServerHost      string        `mapstructure:"SERVER_HOST"`
	ServerPort      string        `mapstructure:"SERVER_PORT"`
	SelfPingURL     string        `mapstructure:"SELF_PING_URL"`
	PingInterval    time.Duration `mapstructure:"PING_INTERVAL"`
	StrictFiltering bool          `mapstructure:"STRICT_FILTERING"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so bind every field.
	for _, key := range []string{
		"MONGO_URI", "DB_NAME", "SERVER_HOST", "SERVER_PORT",
		"SELF_PING_URL", "PING_INTERVAL", "STRICT_FILTERING",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "5001")
	v.SetDefault("PING_INTERVAL", 5*time.Minute)
	v.SetDefault("STRICT_FILTERING", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	return &cfg, nil
}

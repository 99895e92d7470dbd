package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port                string        `mapstructure:"PORT"`
	Env                 string        `mapstructure:"ENV"`
	CORSAllowOrigins    string        `mapstructure:"CORS_ALLOW_ORIGINS"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	JobsFeedURL         string        `mapstructure:"JOBS_FEED_URL"`
	JobsSeedPath        string        `mapstructure:"JOBS_SEED_PATH"`
	JobsRefreshInterval time.Duration `mapstructure:"JOBS_REFRESH_INTERVAL"`
}

// Load reads configuration from the environment, with an optional app.env
// file in the given path for local development. Environment variables win.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JOBS_FEED_URL", "")
	v.SetDefault("JOBS_SEED_PATH", "")
	v.SetDefault("JOBS_REFRESH_INTERVAL", time.Duration(0))

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Env = normalizeEnv(cfg.Env)
	return cfg, nil
}

// AllowedOrigins splits the comma-separated CORS origin list.
func (c Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowOrigins, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

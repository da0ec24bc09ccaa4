package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the server and sitectl need at startup.
// Values come from config.yaml when present, environment variables
// (prefix MOSAIC, e.g. MOSAIC_DATABASE_URL) otherwise.
type Config struct {
	Addr         string `mapstructure:"addr"`
	DatabaseURL  string `mapstructure:"databaseUrl"`
	JWTSecret    string `mapstructure:"jwtSecret"`
	SessionKey   string `mapstructure:"sessionKey"`
	UploadDir    string `mapstructure:"uploadDir"`
	ContentDir   string `mapstructure:"contentDir"`
	TemplatesDir string `mapstructure:"templatesDir"`
	StaticDir    string `mapstructure:"staticDir"`
	SiteTitle    string `mapstructure:"siteTitle"`
	BaseURL      string `mapstructure:"baseUrl"`
	DevReload    bool   `mapstructure:"devReload"`
}

func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("uploadDir", "uploads")
	v.SetDefault("contentDir", "content")
	v.SetDefault("templatesDir", "web/templates")
	v.SetDefault("staticDir", "web/static")
	v.SetDefault("siteTitle", "Mosaic Media")
	v.SetDefault("baseUrl", "")
	v.SetDefault("sessionKey", "change-me-in-production")
	v.SetDefault("devReload", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MOSAIC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// DATABASE_URL and JWT_SECRET are the names hosting platforms set,
	// so honor them without the prefix too.
	v.BindEnv("databaseUrl", "MOSAIC_DATABASE_URL", "DATABASE_URL")
	v.BindEnv("jwtSecret", "MOSAIC_JWT_SECRET", "JWT_SECRET")
	v.BindEnv("sessionKey", "MOSAIC_SESSION_KEY", "SESSION_SECRET")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return nil, fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return &cfg, nil
}

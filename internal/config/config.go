package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config holds the front-end settings. Backend storage is configured by PocketBase's own flags.
type Config struct {
	SiteName       string        `yaml:"site_name"`
	ViewsDir       string        `yaml:"views_dir"`
	AssetsDir      string        `yaml:"assets_dir"`
	FCMCredentials string        `yaml:"fcm_credentials"`
	FCMTopic       string        `yaml:"fcm_topic"`
	MetricsEnabled bool          `yaml:"metrics_enabled"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
}

func defaults() *Config {
	return &Config{
		SiteName:       "Srirasthu Subamasthu",
		ViewsDir:       "views",
		AssetsDir:      "assets",
		FCMTopic:       "vendors",
		MetricsEnabled: true,
		SessionTTL:     7 * 24 * time.Hour,
	}
}

// Load reads the optional YAML file at path, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// env + defaults only
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.SiteName = getEnv("SITE_NAME", cfg.SiteName)
	cfg.ViewsDir = getEnv("VIEWS_DIR", cfg.ViewsDir)
	cfg.AssetsDir = getEnv("ASSETS_DIR", cfg.AssetsDir)
	cfg.FCMCredentials = getEnv("FCM_CREDENTIALS", cfg.FCMCredentials)
	cfg.FCMTopic = getEnv("FCM_TOPIC", cfg.FCMTopic)

	if v, ok := os.LookupEnv("METRICS_ENABLED"); ok {
		cfg.MetricsEnabled = cast.ToBool(v)
	}
	if v, ok := os.LookupEnv("SECURE_COOKIES"); ok {
		cfg.SecureCookies = cast.ToBool(v)
	}
	if v, ok := os.LookupEnv("SESSION_TTL"); ok {
		ttl, err := cast.ToDurationE(v)
		if err != nil {
			return nil, fmt.Errorf("SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

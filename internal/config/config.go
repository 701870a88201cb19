// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr  string
	CatalogPath string // Empty selects the embedded catalog.
	DBPath      string // Non-empty selects the SQLite catalog instead of a YAML file.
	SiteURL     string
	SessionTTL  time.Duration
	MaxSessions int
	Animation   model.AnimationConfig
}

// UsesSQLiteCatalog returns true when the catalog should be read from the
// SQLite database at DBPath rather than a YAML file.
func (c *Config) UsesSQLiteCatalog() bool {
	return c.DBPath != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: CERTPANEL_LISTEN_ADDR (127.0.0.1:8080),
// CERTPANEL_CATALOG_PATH (embedded catalog), CERTPANEL_DB_PATH (unset),
// CERTPANEL_SITE_URL (https://nirmitkhurana.com), CERTPANEL_SESSION_TTL (30m),
// CERTPANEL_BASE_DELAY (80ms), CERTPANEL_ANIMATION_DURATION (500ms),
// CERTPANEL_SPRING_STIFFNESS (60), CERTPANEL_MAX_SESSIONS (10000).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("CERTPANEL_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	siteURL := "https://nirmitkhurana.com"
	if v, ok := os.LookupEnv("CERTPANEL_SITE_URL"); ok && v != "" {
		siteURL = v
	}

	sessionTTL, err := durationEnv("CERTPANEL_SESSION_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	maxSessions := 10000
	if v, ok := os.LookupEnv("CERTPANEL_MAX_SESSIONS"); ok {
		maxSessions, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("CERTPANEL_MAX_SESSIONS has invalid number %q: %w", v, err)
		}
		if maxSessions <= 0 {
			return nil, fmt.Errorf("CERTPANEL_MAX_SESSIONS must be positive, got %d", maxSessions)
		}
	}

	anim := model.DefaultAnimationConfig()

	anim.BaseDelay, err = durationEnv("CERTPANEL_BASE_DELAY", anim.BaseDelay)
	if err != nil {
		return nil, err
	}
	if anim.BaseDelay < 0 {
		return nil, fmt.Errorf("CERTPANEL_BASE_DELAY must not be negative, got %s", anim.BaseDelay)
	}

	anim.Duration, err = durationEnv("CERTPANEL_ANIMATION_DURATION", anim.Duration)
	if err != nil {
		return nil, err
	}
	if anim.Duration <= 0 {
		return nil, fmt.Errorf("CERTPANEL_ANIMATION_DURATION must be positive, got %s", anim.Duration)
	}

	if v, ok := os.LookupEnv("CERTPANEL_SPRING_STIFFNESS"); ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("CERTPANEL_SPRING_STIFFNESS has invalid number %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("CERTPANEL_SPRING_STIFFNESS must be positive, got %v", parsed)
		}
		anim.Stiffness = parsed
	}

	return &Config{
		ListenAddr:  listenAddr,
		CatalogPath: os.Getenv("CERTPANEL_CATALOG_PATH"),
		DBPath:      os.Getenv("CERTPANEL_DB_PATH"),
		SiteURL:     siteURL,
		SessionTTL:  sessionTTL,
		MaxSessions: maxSessions,
		Animation:   anim,
	}, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid duration %q: %w", key, v, err)
	}
	return parsed, nil
}

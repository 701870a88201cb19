package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/certpanel/internal/application"
	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// allConfigKeys lists every CERTPANEL_ env var that Load() reads.
var allConfigKeys = []string{
	"CERTPANEL_LISTEN_ADDR",
	"CERTPANEL_CATALOG_PATH",
	"CERTPANEL_DB_PATH",
	"CERTPANEL_SITE_URL",
	"CERTPANEL_SESSION_TTL",
	"CERTPANEL_BASE_DELAY",
	"CERTPANEL_ANIMATION_DURATION",
	"CERTPANEL_SPRING_STIFFNESS",
	"CERTPANEL_MAX_SESSIONS",
}

// isolateConfigEnv saves and unsets all CERTPANEL_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original values.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "", cfg.CatalogPath)
	assert.Equal(t, "", cfg.DBPath)
	assert.False(t, cfg.UsesSQLiteCatalog())
	assert.Equal(t, "https://nirmitkhurana.com", cfg.SiteURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 10000, cfg.MaxSessions)
	assert.Equal(t, 80*time.Millisecond, cfg.Animation.BaseDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Animation.Duration)
	assert.InDelta(t, 60.0, cfg.Animation.Stiffness, 0.0001)
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CERTPANEL_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("CERTPANEL_CATALOG_PATH", "/etc/certpanel/catalog.yaml")
	t.Setenv("CERTPANEL_DB_PATH", "/tmp/catalog.db")
	t.Setenv("CERTPANEL_SITE_URL", "https://example.com")
	t.Setenv("CERTPANEL_SESSION_TTL", "1h")
	t.Setenv("CERTPANEL_BASE_DELAY", "120ms")
	t.Setenv("CERTPANEL_ANIMATION_DURATION", "750ms")
	t.Setenv("CERTPANEL_SPRING_STIFFNESS", "90.5")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/etc/certpanel/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "/tmp/catalog.db", cfg.DBPath)
	assert.True(t, cfg.UsesSQLiteCatalog())
	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 120*time.Millisecond, cfg.Animation.BaseDelay)
	assert.Equal(t, 750*time.Millisecond, cfg.Animation.Duration)
	assert.InDelta(t, 90.5, cfg.Animation.Stiffness, 0.0001)
}

func TestLoad_InvalidDurations(t *testing.T) {
	for _, key := range []string{"CERTPANEL_SESSION_TTL", "CERTPANEL_BASE_DELAY", "CERTPANEL_ANIMATION_DURATION"} {
		t.Run(key, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(key, "not-a-duration")

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_NegativeBaseDelay(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CERTPANEL_BASE_DELAY", "-10ms")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CERTPANEL_BASE_DELAY")
}

func TestLoad_ZeroBaseDelayIsKept(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CERTPANEL_BASE_DELAY", "0s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Animation.BaseDelay)

	steps := application.NewPresentationSequencer(cfg.Animation).Plan([]model.CredentialRecord{{Name: "A"}, {Name: "B"}})
	require.Len(t, steps, 2)
	assert.Equal(t, time.Duration(0), steps[1].Delay)
}

func TestLoad_ZeroAnimationDuration(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CERTPANEL_ANIMATION_DURATION", "0s")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CERTPANEL_ANIMATION_DURATION")
}

func TestLoad_InvalidStiffness(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "stiff"},
		{name: "zero", value: "0"},
		{name: "negative", value: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv("CERTPANEL_SPRING_STIFFNESS", tt.value)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "CERTPANEL_SPRING_STIFFNESS")
		})
	}
}

func TestLoad_EmptyListenAddrUsesDefault(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CERTPANEL_LISTEN_ADDR", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
}

func TestLoad_MaxSessions(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CERTPANEL_MAX_SESSIONS", "500")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxSessions)
}

func TestLoad_InvalidMaxSessions(t *testing.T) {
	for _, v := range []string{"0", "-3", "many"} {
		t.Run(v, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv("CERTPANEL_MAX_SESSIONS", v)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "CERTPANEL_MAX_SESSIONS")
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Equivalent of t.Chdir (Go 1.24+) for the Go 1.21 toolchain.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "/faq", cfg.FAQ.Path)
	require.Equal(t, "HireUp - Web Developer Position", cfg.FAQ.Title)
	require.Equal(t, "faq_session", cfg.FAQ.Session.CookieName)
	require.False(t, cfg.FAQ.Valkey.Enabled)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
http:
  address: ":9090"
  allowedOrigins: ["https://hireup.example"]
faq:
  path: /help
  stateTtl: 30m
  valkey:
    enabled: true
    addr: "localhost:6379"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("FAQ_TITLE", "Help Center")
	t.Setenv("HTTP_RATE_LIMIT_ENABLED", "false")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "/help", cfg.FAQ.Path)
	require.Equal(t, 30*time.Minute, cfg.FAQ.StateTTL)
	require.Equal(t, "Help Center", cfg.FAQ.Title)
	require.True(t, cfg.FAQ.Valkey.Enabled)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: ["), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.ErrorContains(t, err, "parse config file")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "path without slash", mutate: func(c *Config) { c.FAQ.Path = "faq" }, want: "faq.path"},
		{name: "path under api", mutate: func(c *Config) { c.FAQ.Path = "/api/faq" }, want: "/api"},
		{name: "valkey without addr", mutate: func(c *Config) { c.FAQ.Valkey.Enabled = true }, want: "faq.valkey.addr"},
		{name: "zero burst", mutate: func(c *Config) { c.HTTP.RateLimit.Burst = 0 }, want: "burst"},
		{name: "empty cookie", mutate: func(c *Config) { c.FAQ.Session.CookieName = " " }, want: "cookieName"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			require.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}
	require.NoError(t, defaultConfig().Validate())
}

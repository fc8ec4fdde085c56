package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
feeds:
  - name: Tableau
    url: https://example.com/tableau.rss
  - name: Qlik
    url: https://example.com/qlik.rss
    max_items: 10
    category: trends
`)
	cfg, err := Load(path)

	require.NoError(t, err)
	require.Len(t, cfg.Feeds, 2)

	assert.Equal(t, "Tableau", cfg.Feeds[0].Name)
	assert.Equal(t, 5, cfg.Feeds[0].MaxItems)
	assert.Equal(t, "vendor", cfg.Feeds[0].Category)

	assert.Equal(t, 10, cfg.Feeds[1].MaxItems)
	assert.Equal(t, "trends", cfg.Feeds[1].Category)

	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "feeds: [broken")

	cfg, err := Load(path)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Feeds: []Feed{
		{Name: "Tableau", URL: "https://example.com/rss", MaxItems: 5, Category: "vendor"},
	}}
	assert.NoError(t, cfg.Validate())

	empty := New()
	assert.Error(t, empty.Validate())

	badURL := &Config{Feeds: []Feed{{Name: "X", URL: "not a url", MaxItems: 5}}}
	assert.Error(t, badURL.Validate())

	noName := &Config{Feeds: []Feed{{URL: "https://example.com/rss", MaxItems: 5}}}
	assert.Error(t, noName.Validate())
}

func TestMailFromEnv_Success(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "agent")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("EMAIL_FROM", "")
	t.Setenv("EMAIL_TO", "a@example.com, b@example.com")

	cfg, err := MailFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", cfg.Host)
	assert.Equal(t, 2525, cfg.Port)
	assert.Equal(t, "agent", cfg.From)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.To)
}

func TestMailFromEnv_MissingHost(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_USER", "agent")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("EMAIL_TO", "a@example.com")

	_, err := MailFromEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_HOST")
}

func TestMailFromEnv_DefaultPort(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_USER", "agent")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("EMAIL_TO", "a@example.com")

	cfg, err := MailFromEnv()

	require.NoError(t, err)
	assert.Equal(t, 587, cfg.Port)
}

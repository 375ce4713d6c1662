package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_NAME", "races.db")
	t.Setenv("LEAGUE", "Southern")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("GCP_PROJECT", "test-project")
	t.Setenv("PORT", "")
	t.Setenv("TURSO_PRIMARY_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://results.example.org, ,http://localhost:3000")

	cfg := Load()

	assert.Equal(t, "races.db", cfg.DBName)
	assert.Equal(t, "Southern", cfg.League)
	assert.Equal(t, "8080", cfg.Port, "empty PORT falls back to the default")
	assert.Equal(t, "./migrations", cfg.MigrationsDir)
	assert.Equal(t, "C123", cfg.Slack.ChannelID)
	assert.Empty(t, cfg.Turso.PrimaryURL)
	assert.Equal(t, []string{"https://results.example.org", "http://localhost:3000"}, cfg.CORSOrigins)
}

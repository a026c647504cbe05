package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 1440*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.NotEmpty(t, cfg.GoogleProfileURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("TOKEN_EXPIRY", "24h")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, 2525, cfg.SMTPPort)
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg := Load()
	dsn := cfg.DSN()

	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "password=hunter2")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestParseDuration_InvalidFallsBack(t *testing.T) {
	assert.Equal(t, 1440*time.Hour, parseDuration("not-a-duration"))
}

func TestParseInt_InvalidFallsBack(t *testing.T) {
	assert.Equal(t, 587, parseInt("not-a-number", 587))
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// shield from whatever the host environment carries
	for _, name := range []string{"APP_ENV", "ENV", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "COOKIE_SECURE", "COOKIE_SAMESITE", "COOKIE_PATH"} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "Strict", cfg.CookieSameSite)
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidSameSite(t *testing.T) {
	t.Setenv("COOKIE_SAMESITE", "sideways")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_SameSiteNoneRequiresSecure(t *testing.T) {
	t.Setenv("COOKIE_SAMESITE", "None")
	t.Setenv("COOKIE_SECURE", "false")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProdRejectsDefaultSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ACCESS_TOKEN_SECRET", "a-real-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "another-real-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}

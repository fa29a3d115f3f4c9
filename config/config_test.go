package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "coursehub")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "jwt-secret", cfg.SessionSecret, "session secret falls back to JWT secret")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
	assert.Equal(t, "host=db.internal user=shop password=pw dbname=coursehub port=5432 sslmode=disable", cfg.DSN())
}

func TestLoadConfigReadsAppEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "PORT=:8080\nJWT_SECRET=jwt-from-file\nSESSION_SECRET=from-file\nGCS_COURSE_BUCKET=courses-prod\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "from-file", cfg.SessionSecret)
	assert.Equal(t, "courses-prod", cfg.CourseBucket)
	assert.Equal(t, "profile-pictures", cfg.ProfileBucket)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SESSION_SECRET", "only-session")

	_, err := LoadConfig(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	t.Setenv("JWT_SECRET", "   ")
	_, err = LoadConfig(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingJWTSecret, "blank secret is rejected")
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tasko/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "no-existe.yml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
	assert.Equal(t, "inmemory", cfg.Repository.Type)
	assert.Equal(t, 72*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.RequireAuth)
	assert.Equal(t, 5*time.Minute, cfg.Worker.Interval)
	assert.Equal(t, 100, cfg.Worker.BatchSize)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
server:
  port: "9090"
repository:
  type: postgres
database:
  url: postgres://localhost:5432/tasko
auth:
  token_ttl: 24h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Repository.Type)
	assert.Equal(t, "postgres://localhost:5432/tasko", cfg.Database.URL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	// lo no especificado conserva el valor por defecto
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("PORT", "7070")
	t.Setenv("JWT_SECRET", "secreto-del-entorno")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "secreto-del-entorno", cfg.Auth.JWTSecret)
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("repository:\n  type: postgres\n"), 0o644))

	t.Setenv("DATABASE_URL", "")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: [esto no es un mapa"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

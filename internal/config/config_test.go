package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, EnvDevelopment, cfg.Env)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, devJWTSecret, cfg.Auth.JWTSecret)
	require.False(t, cfg.SMTP.Enabled())
	require.False(t, cfg.Storage.Enabled())
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_SecretRequiredOutsideDevelopment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: production
server:
  port: "9000"
database:
  host: db.internal
  max_open_conns: 10
auth:
  jwt_secret: from-file
smtp:
  host: smtp.internal
cors:
  allowed_origins: ["https://app.example.com"]
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, EnvProduction, cfg.Env)
	require.Equal(t, "9100", cfg.Server.Port)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 10, cfg.Database.MaxOpenConns)
	require.Equal(t, 3, cfg.Database.MaxIdleConns)
	require.Equal(t, "from-file", cfg.Auth.JWTSecret)
	require.True(t, cfg.SMTP.Enabled())
	require.Equal(t, 587, cfg.SMTP.Port)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("S3_BUCKET=hr-docs\n"), 0o600))

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")
	// godotenv не перезаписывает существующие переменные
	t.Setenv("S3_BUCKET", "")
	require.NoError(t, os.Unsetenv("S3_BUCKET"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "hr-docs", cfg.Storage.Bucket)
	require.True(t, cfg.Storage.Enabled())
}

func TestLoad_InvalidInteger(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := Load()
	require.Error(t, err)
}

// chdir меняет рабочую директорию на время теста (аналог t.Chdir из Go 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

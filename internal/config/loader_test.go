package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func clearSecrets(t *testing.T) {
	t.Helper()
	for _, envs := range secretEnv {
		for _, e := range envs {
			t.Setenv(e, "")
		}
	}
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	// Minimal YAML; secrets will come from ENV
	yaml := `
app:
  name: cricket-records-service
  version: 0.1.0
  env: test
  port: 18080

logger:
  level: info
  format: json
  output_target: stdout
  time_format: rfc3339

postgres:
  host: 127.0.0.1
  port: 5432
  sslmode: disable
  max_conns: 5
  min_conns: 1
  max_conn_lifetime: 60

records:
  default_page_size: 25
  query_timeout: 5s
`
	path := writeTempConfig(t, yaml)
	clearSecrets(t)

	// Provide required secrets via ENV using the canonical APP_* names
	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB", "testdb")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, BackendPostgres, cfg.App.Backend)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, "testuser", cfg.Postgres.User)
	assert.Equal(t, "testpass", cfg.Postgres.Password)
	assert.Equal(t, "testdb", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.Equal(t, "stdout", cfg.Logger.OutputTarget)
	assert.Equal(t, "rfc3339", cfg.Logger.TimeFormat)
	assert.Equal(t, 25, cfg.Records.DefaultPageSize)
	assert.Equal(t, 200, cfg.Records.MaxPageSize)
	assert.Equal(t, 5*time.Second, cfg.Records.QueryTimeout)
}

func TestConfigLoad_EnvOverridesYAML(t *testing.T) {
	path := writeTempConfig(t, `
app:
  name: abc
  backend: sqlite
sqlite:
  path: /tmp/a.db
`)
	clearSecrets(t)
	t.Setenv("APP_SQLITE_PATH", "/tmp/b.db")
	t.Setenv("APP_RECORDS_MAX_PAGE_SIZE", "500")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.App.Backend)
	assert.Equal(t, "/tmp/b.db", cfg.SQLite.Path)
	assert.Equal(t, 500, cfg.Records.MaxPageSize)
}

func TestConfigLoad_MissingRequiredEnvFails(t *testing.T) {
	yaml := `
app:
  name: abc
  version: 0.0.0
  env: test
  port: 18080

postgres:
  host: localhost
  port: 5432
  sslmode: disable
`
	path := writeTempConfig(t, yaml)
	clearSecrets(t)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres.user")
}

func TestConfigLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown backend": "app:\n  name: a\n  backend: mysql\n",
		"page sizes":      "app:\n  name: a\n  backend: sqlite\nrecords:\n  default_page_size: 100\n  max_page_size: 10\n",
		"bad port":        "app:\n  name: a\n  backend: sqlite\n  port: 70000\n",
	}
	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			clearSecrets(t)
			_, err := Load(writeTempConfig(t, yaml))
			assert.Error(t, err)
		})
	}
}

func TestConfigLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

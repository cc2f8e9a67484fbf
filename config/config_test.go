package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYaml = `
system:
  appid: catalog-test
  workdir: /tmp/catalog-test
logger:
  mode: production
database:
  type: sqlite
  name: test.db
  debug: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfigYaml))
	require.NoError(t, err)

	assert.Equal(t, "catalog-test", cfg.System.Appid)
	assert.Equal(t, "/tmp/catalog-test", cfg.System.Workdir)
	assert.Equal(t, "production", cfg.Logger.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "test.db", cfg.Database.Name)
	assert.True(t, cfg.Database.Debug)

	// Omitted values keep defaults.
	assert.Equal(t, "Local", cfg.System.Location)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "system: [broken"))
	assert.Error(t, err)
}

func TestLoadConfigPasswdOverride(t *testing.T) {
	t.Setenv("CATALOG_DB_PASSWD", "secret-from-env")

	cfg, err := LoadConfig(writeConfig(t, testConfigYaml))
	require.NoError(t, err)
	assert.Equal(t, "secret-from-env", cfg.Database.Passwd)
}

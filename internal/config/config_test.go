package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "lab", cfg.NamePrefix)
	require.True(t, cfg.PadZeroes)
	require.Equal(t, StoreMemory, cfg.Store)
	require.Equal(t, 20, cfg.PoolSize)
	require.Equal(t, 15*time.Second, cfg.OpTimeout)
	require.NotEmpty(t, cfg.DatabaseDSN)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_JSONOverlay(t *testing.T) {
	path := writeConfigFile(t, `{
		"name_prefix": "bench",
		"pad_zeroes": false,
		"store": "postgres",
		"database_dsn": "postgres://u:p@db:5432/pool",
		"pool_size": 64,
		"op_timeout": "30s"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "bench", cfg.NamePrefix)
	require.False(t, cfg.PadZeroes)
	require.Equal(t, StorePostgres, cfg.Store)
	require.Equal(t, "postgres://u:p@db:5432/pool", cfg.DatabaseDSN)
	require.Equal(t, 64, cfg.PoolSize)
	require.Equal(t, 30*time.Second, cfg.OpTimeout)
}

func TestLoad_PartialOverlayKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"pool_size": 5}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 5, cfg.PoolSize)
	require.Equal(t, "lab", cfg.NamePrefix)
	require.True(t, cfg.PadZeroes)
	require.Equal(t, StoreMemory, cfg.Store)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `{`)
	_, err := Load(path)
	require.Error(t, err)
}

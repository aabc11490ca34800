package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Zero(t, cfg.Backend.Timeout)
	assert.Equal(t, 4*time.Second, cfg.Console.ToastDismissAfter)
	assert.Equal(t, 10, cfg.Console.TablePageSize)
	assert.Equal(t, 30*time.Minute, cfg.Storage.ImportStageTTL)
}

func TestLoad_FromEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("BACKEND_BASE_URL=http://hr.internal:9000\nTABLE_PAGE_SIZE=25\nLOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("BACKEND_BASE_URL")
		os.Unsetenv("TABLE_PAGE_SIZE")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "http://hr.internal:9000", cfg.Backend.BaseURL)
	assert.Equal(t, 25, cfg.Console.TablePageSize)
	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "not a url")
	t.Setenv("ATTENDANCE_LATE_AFTER", "late")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_BASE_URL")
	assert.Contains(t, err.Error(), "ATTENDANCE_LATE_AFTER")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "ftp1.toolbank.com", cfg.Transfer.Host)
	assert.Equal(t, 21, cfg.Transfer.Port)
	assert.Equal(t, "Data/ToolbankDataExport.xlsx", cfg.Transfer.ProductsPath)

	// Credentials must never have baked-in fallbacks.
	assert.Empty(t, cfg.Transfer.User)
	assert.Empty(t, cfg.Transfer.Password)
	assert.Empty(t, cfg.Archive.AccessKey)
	assert.Empty(t, cfg.Archive.SecretKey)

	assert.Equal(t, "toolbank_import.csv", cfg.Sync.OutputFile)
	assert.Equal(t, "known_skus.json", cfg.Sync.BaselinePath)
	assert.Equal(t, "https://www.toolbank.com/productimages/", cfg.Sync.ImageBaseURL)

	assert.False(t, cfg.Archive.Enabled)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TRANSFER_HOST", "feeds.example.test")
	t.Setenv("TRANSFER_USER", "feeduser")
	t.Setenv("TRANSFER_PASSWORD", "feedpass")
	t.Setenv("SYNC_WORK_DIR", "/var/lib/toolbank")
	t.Setenv("DATABASE_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "feeds.example.test", cfg.Transfer.Host)
	assert.Equal(t, "feeduser", cfg.Transfer.User)
	assert.Equal(t, "feedpass", cfg.Transfer.Password)
	assert.Equal(t, "/var/lib/toolbank", cfg.Sync.WorkDir)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	// Register the keys with t.Setenv first so godotenv's writes are
	// rolled back when the test finishes.
	t.Setenv("TRANSFER_PORT", "21")
	t.Setenv("ARCHIVE_BUCKET", "toolbank-sync")

	dir := t.TempDir()
	env := "TRANSFER_PORT=2121\nARCHIVE_BUCKET=sync-artifacts\n"
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644)
	assert.NoError(t, err)

	cfg, err := LoadConfig(dir)
	assert.NoError(t, err)
	assert.Equal(t, 2121, cfg.Transfer.Port)
	assert.Equal(t, "sync-artifacts", cfg.Archive.Bucket)
}

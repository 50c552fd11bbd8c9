package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "boiler_inspection.db", cfg.DatabasePath)
	require.Equal(t, "uploads", cfg.UploadDir)
	require.Equal(t, 16*1024*1024, cfg.MaxUploadBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("UPLOAD_DIR", "/var/data/uploads")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "/var/data/uploads", cfg.UploadDir)
	require.Equal(t, 1048576, cfg.MaxUploadBytes)
}

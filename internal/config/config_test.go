package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PLENS_DATA_PATH", "")
	t.Setenv("PLENS_MODEL", "")
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	require.Equal(t, "gemini-1.5-flash", cfg.Model)
	require.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.BaseURL)
	require.Equal(t, 30, cfg.TimeoutSeconds)
	require.Equal(t, "project_data.csv", cfg.DataPath)
	require.Equal(t, filepath.Join(dir, "history.db"), cfg.HistoryPath)
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("PLENS_DATA_PATH", "")
	t.Setenv("PLENS_MODEL", "")
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "model: gemini-1.5-pro\ndata_path: /data/projects.csv\ntimeout_seconds: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "gemini-1.5-pro", cfg.Model)
	require.Equal(t, "/data/projects.csv", cfg.DataPath)
	require.Equal(t, 60, cfg.TimeoutSeconds)
	// Unset fields keep their defaults
	require.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PLENS_DATA_PATH", "/override/data.csv")
	t.Setenv("PLENS_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_API_KEY", "secret-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, "/override/data.csv", cfg.DataPath)
	require.Equal(t, "gemini-2.0-flash", cfg.Model)
	require.Equal(t, "secret-key", cfg.APIKey)
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	t.Setenv("PLENS_DATA_PATH", "")
	t.Setenv("PLENS_MODEL", "")
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default(filepath.Dir(path))
	cfg.Model = "gemini-1.5-pro"
	cfg.DataPath = "/data/projects.csv"
	cfg.APIKey = "secret-key"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "gemini-1.5-pro", loaded.Model)
	require.Equal(t, "/data/projects.csv", loaded.DataPath)

	// The credential never lands on disk
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "secret-key")
	require.Empty(t, loaded.APIKey)
}

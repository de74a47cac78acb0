package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_LoadsFromFlagSelectedFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"base_url":     "https://api.vibelook.example/",
		"session_file": "/var/lib/vibelook/session.json",
	})
	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	parseJson(cfg)

	assert.Equal(t, "https://api.vibelook.example", cfg.BaseURL)
	assert.Equal(t, "/var/lib/vibelook/session.json", cfg.SessionFile)
}

func Test_parseJson_EmptyFieldsKeepExisting(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{"session_file": "elsewhere.json"})
	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{BaseURL: "http://kept:9000"}
	parseJson(cfg)

	assert.Equal(t, "http://kept:9000", cfg.BaseURL)
	assert.Equal(t, "elsewhere.json", cfg.SessionFile)
}

func Test_parseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{BaseURL: "http://kept:9000"}
	parseJson(cfg)

	assert.Equal(t, "http://kept:9000", cfg.BaseURL)
}

func Test_parseEnv_Overlays(t *testing.T) {
	t.Setenv(envMode, "production")
	t.Setenv(envBaseURL, "https://env.example/")
	t.Setenv(envSessionFile, "/tmp/env-session.json")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://env.example", cfg.BaseURL)
	assert.Equal(t, "/tmp/env-session.json", cfg.SessionFile)
}

func Test_parseEnv_EmptyKeepsDefaults(t *testing.T) {
	t.Setenv(envMode, "production")
	t.Setenv(envBaseURL, "")
	t.Setenv(envSessionFile, "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
}

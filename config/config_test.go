package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grue-labs/lantern/log"
)

// TestMain runs before all tests to set up the test environment
func TestMain(m *testing.M) {
	log.Initialize(true)
	defer log.Close()

	exitCode := m.Run()
	os.Exit(exitCode)
}

// withTempHome points $HOME at a temp directory for the duration of the test
// so config reads and writes never touch the real home directory.
func withTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "zork1", cfg.DefaultGame)
	assert.Equal(t, "walkthrough", cfg.DefaultSubmission)
	assert.Equal(t, 20, cfg.MaxMoves)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Equal(t, "python run_agent.py", cfg.RunnerCommand)
	assert.Equal(t, 50, cfg.HistoryLimit)
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	home := withTempHome(t)

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	// First load should have written the default config to disk.
	data, err := os.ReadFile(filepath.Join(home, ".lantern", ConfigFileName))
	require.NoError(t, err)

	var onDisk Config
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, *DefaultConfig(), onDisk)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	withTempHome(t)

	cfg := DefaultConfig()
	cfg.DefaultGame = "lostpig"
	cfg.MaxMoves = 3
	cfg.Seed = 42
	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigCorruptFileFallsBack(t *testing.T) {
	home := withTempHome(t)

	configDir := filepath.Join(home, ".lantern")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte("{not json"), 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestGetSubmissionsDir(t *testing.T) {
	home := withTempHome(t)

	dir, err := GetSubmissionsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".lantern", "submissions"), dir)
}

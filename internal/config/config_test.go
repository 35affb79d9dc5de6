package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robocook/foon/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "foon_file: /data/network.txt\nstrategy: astar\nmax_depth: 10\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/network.txt", cfg.FOONFile)
	assert.Equal(t, "astar", cfg.Strategy)
	assert.Equal(t, 10, cfg.MaxDepth)
	// untouched fields keep defaults
	assert.Equal(t, "kitchen.txt", cfg.KitchenFile)
	assert.Equal(t, "motion.txt", cfg.MotionFile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := config.Load(writeConfig(t, "strategy: bfs\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "max_depth: -3\n"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "strategy: [unterminated\n"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "FOON.txt", cfg.FOONFile)
	assert.Equal(t, "ids", cfg.Strategy)
	assert.Equal(t, 40, cfg.MaxDepth)
}

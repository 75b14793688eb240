package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akalverboer/mad100go/internal/engine"
)

func TestDefaultMatchesEngineConstants(t *testing.T) {
	cfg := Default()
	assert.Equal(t, engine.DefaultMaxNodes, cfg.MaxNodes)
	assert.Equal(t, engine.DefaultTableSize, cfg.TableSize)
	assert.Equal(t, engine.DefaultAspirationWindow, cfg.AspirationWindow)
	assert.Equal(t, MTDBi, cfg.DefaultStrategy)
}

func TestLoadWithEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mad100.toml")
	require.NoError(t, os.WriteFile(path, []byte(`max_nodes = 5000`+"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.MaxNodes)
	assert.Equal(t, engine.DefaultTableSize, cfg.TableSize)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

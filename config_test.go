package gizmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.WindowWidth)
	assert.Equal(t, 720, cfg.WindowHeight)
	assert.Equal(t, "Gizmo", cfg.WindowTitle)
	assert.Equal(t, float32(1), cfg.SpeedMultiplier)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.PresetPath)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("GIZMO_WINDOW_WIDTH", "640")
	t.Setenv("GIZMO_SPEED_MULTIPLIER", "2.5")
	t.Setenv("GIZMO_DEBUG", "true")
	t.Setenv("GIZMO_PRESET", "scenes/demo.yaml")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.WindowWidth)
	assert.Equal(t, float32(2.5), cfg.SpeedMultiplier)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "scenes/demo.yaml", cfg.PresetPath)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("GIZMO_WINDOW_HEIGHT", "tall")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "parse env")

	t.Setenv("GIZMO_WINDOW_HEIGHT", "0")
	_, err = LoadConfig()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv("GIZMO_WINDOW_HEIGHT", "720")
	t.Setenv("GIZMO_SPEED_MULTIPLIER", "-1")
	_, err = LoadConfig()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

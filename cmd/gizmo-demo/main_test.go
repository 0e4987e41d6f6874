package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo"
)

func countNamed(app *gizmo.App) int {
	n := 0
	gizmo.MakeQuery1[gizmo.NameComponent](app.Commands()).Map(func(eid gizmo.EntityId, name *gizmo.NameComponent) bool {
		n++
		return true
	})
	return n
}

func TestLoadScene_SampleWhenNoPreset(t *testing.T) {
	app := gizmo.NewApp()
	require.NoError(t, loadScene(app.Commands(), ""))
	app.FlushCommands()

	assert.Equal(t, 3, countNamed(app))
}

func TestLoadScene_PresetErrorsAreReturned(t *testing.T) {
	app := gizmo.NewApp()

	err := loadScene(app.Commands(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objects:\n  - collider:\n      shape: cone\n"), 0644))
	assert.Error(t, loadScene(app.Commands(), path))

	app.FlushCommands()
	assert.Zero(t, countNamed(app), "nothing is spawned on error")
}

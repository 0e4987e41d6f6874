package gizmo

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/core"
)

type gizmoScene struct {
	app    *App
	input  *Input
	target *TransformComponent
	state  *GizmoState
}

// newGizmoScene builds an app without a window: a camera at z=10 looking down
// -Z at a unit cube on the origin, rendered into an 800x600 viewport.
func newGizmoScene(t *testing.T, module GizmoModule) *gizmoScene {
	t.Helper()
	app := NewApp()
	cmd := app.Commands()

	input := &Input{WindowWidth: 800, WindowHeight: 600}
	cmd.AddResources(input, &Time{Dt: 16 * time.Millisecond})
	app.UseModules(module)

	cmd.AddEntity(&CameraComponent{
		Camera: core.Camera{
			Position: mgl32.Vec3{0, 0, 10},
			Rotation: mgl32.QuatIdent(),
			FovY:     60,
			Near:     0.1,
			Far:      1000,
		},
		Main: true,
	})
	target := core.NewTransform()
	cmd.AddEntity(target, &ColliderComponent{Shape: ColliderBox, HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5}})

	state := Resource[GizmoState](app)
	require.NotNil(t, state)
	return &gizmoScene{app: app, input: input, target: target, state: state}
}

func (s *gizmoScene) frame(setup func(input *Input)) {
	s.input.BeginFrame()
	setup(s.input)
	s.app.Step()
}

func TestGizmoModule_SelectAndDragThroughApp(t *testing.T) {
	s := newGizmoScene(t, GizmoModule{})

	s.frame(func(input *Input) {
		input.MoveMouse(400, 300)
		input.SetButton(MouseButtonMiddle, true)
	})

	ctrl := s.state.Controller
	require.NotNil(t, ctrl, "the main camera is picked up on the first frame")
	require.Equal(t, ModeTranslation, ctrl.Mode())
	x := ctrl.ActiveGizmo().Handle(AxisX)

	// Press on the X shaft and drag right in the same frame.
	s.frame(func(input *Input) {
		input.SetButton(MouseButtonMiddle, false)
		input.MoveMouse(479, 300)
		input.SetButton(MouseButtonLeft, true)
	})

	assert.True(t, x.Pressed)
	assert.Greater(t, s.target.Position.X(), float32(0))
	assert.InDelta(t, 0, s.target.Position.Y(), 1e-5)
	assert.Equal(t, s.target.Position, ctrl.ActiveGizmo().Position, "the gizmo tracks its target")
	assert.Equal(t, s.target.Position, x.colliders[0].transform.Position)
	assert.False(t, ctrl.ActiveGizmo().Handle(AxisY).Visible)

	moved := s.target.Position
	s.frame(func(input *Input) {
		input.SetButton(MouseButtonLeft, false)
		input.MoveMouse(520, 300)
	})

	assert.False(t, x.Pressed)
	assert.Equal(t, moved, s.target.Position, "no drag once released")
	for _, h := range ctrl.ActiveGizmo().Axes {
		assert.True(t, h.Visible)
	}

	s.frame(func(input *Input) {
		input.SetButton(MouseButtonRight, true)
	})
	assert.Equal(t, EntityId(0), ctrl.Target())
	assert.Equal(t, ModeNone, ctrl.Mode())
}

func TestGizmoModule_ZeroSpeedFreezesDrags(t *testing.T) {
	frozen := float32(0)
	s := newGizmoScene(t, GizmoModule{SpeedMultiplier: &frozen})

	s.frame(func(input *Input) {
		input.MoveMouse(400, 300)
		input.SetButton(MouseButtonMiddle, true)
	})
	ctrl := s.state.Controller
	require.NotNil(t, ctrl)
	assert.Zero(t, ctrl.SpeedMultiplier)
	x := ctrl.ActiveGizmo().Handle(AxisX)

	s.frame(func(input *Input) {
		input.SetButton(MouseButtonMiddle, false)
		input.MoveMouse(479, 300)
		input.SetButton(MouseButtonLeft, true)
	})

	assert.True(t, x.Pressed)
	assert.Equal(t, mgl32.Vec3{}, s.target.Position)
}

func TestGizmoModule_ClickingEmptySpaceDeselects(t *testing.T) {
	s := newGizmoScene(t, GizmoModule{})

	s.frame(func(input *Input) {
		input.MoveMouse(400, 300)
		input.SetButton(MouseButtonMiddle, true)
	})
	require.NotEqual(t, EntityId(0), s.state.Controller.Target())

	s.frame(func(input *Input) {
		input.SetButton(MouseButtonMiddle, false)
	})
	s.frame(func(input *Input) {
		input.MoveMouse(10, 10)
		input.SetButton(MouseButtonMiddle, true)
	})

	assert.Equal(t, EntityId(0), s.state.Controller.Target())
	assert.Equal(t, ModeNone, s.state.Controller.Mode())
}

func TestGizmoModule_ExplicitCamera(t *testing.T) {
	app := NewApp()
	camera := core.NewCamera()
	var modes []GizmoMode
	app.UseModules(GizmoModule{
		Camera:        camera,
		OnModeChanged: func(m GizmoMode) { modes = append(modes, m) },
	})

	state := Resource[GizmoState](app)
	require.NotNil(t, state.Controller)
	assert.Same(t, camera, state.Controller.Camera)
	assert.Equal(t, float32(1), state.Controller.SpeedMultiplier)
	assert.Len(t, state.Gizmos(), 3)
	assert.NotNil(t, Resource[PhysicsWorld](app))
	assert.NotNil(t, Resource[AssetServer](app))

	state.Controller.SelectEntity(0)
	assert.Equal(t, []GizmoMode{ModeNone}, modes)
}

func TestGizmoModule_NoMainCameraPanics(t *testing.T) {
	app := NewApp()
	app.Commands().AddResources(&Input{}, &Time{})
	app.UseModules(GizmoModule{})

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "expected an error panic, got %v", r)
		assert.True(t, errors.Is(err, ErrNoMainCamera))
	}()
	app.Step()
}

func TestGizmoModule_EmptyPrefabsPanics(t *testing.T) {
	app := NewApp()

	assert.PanicsWithError(t, "gizmo module: gizmo controller has no gizmo prefabs", func() {
		app.UseModules(GizmoModule{Prefabs: []GizmoPrefab{}})
	})
}

func TestFindMainCamera(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	assert.Nil(t, findMainCamera(cmd))

	first := &CameraComponent{Camera: *core.NewCamera()}
	main := &CameraComponent{Camera: *core.NewCamera(), Main: true}
	cmd.AddEntity(first)
	cmd.AddEntity(main)
	app.FlushCommands()

	assert.Same(t, &main.Camera, findMainCamera(cmd))

	main.Main = false
	assert.Same(t, &first.Camera, findMainCamera(cmd))
}

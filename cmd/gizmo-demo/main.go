package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/core"
)

func init() {
	// GLFW must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gizmo-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := gizmo.LoadConfig()
	if err != nil {
		return err
	}

	var app *gizmo.App
	app = gizmo.NewAppBuilder().
		UseModule(
			gizmo.LoggingModule{Prefix: cfg.LogPrefix, Debug: cfg.Debug},
			gizmo.TimeModule{},
			gizmo.NewPlatformWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle),
			gizmo.InputModule{},
			gizmo.AssetServerModule{},
			gizmo.FlyingCameraModule{},
			gizmo.GizmoModule{
				SpeedMultiplier: &cfg.SpeedMultiplier,
				OnSelect: func(target gizmo.EntityId) {
					app.Logger().Infof("selected %d", target)
				},
				OnModeChanged: func(mode gizmo.GizmoMode) {
					app.Logger().Infof("mode %s", mode)
				},
			},
		).
		Build()

	if ws := gizmo.Resource[gizmo.WindowState](app); ws != nil {
		defer ws.Close()
	}

	cmd := app.Commands()
	cmd.AddEntity(
		&gizmo.CameraComponent{Camera: *core.NewCamera(), Main: true},
		gizmo.NewFlyingCamera(),
	)

	if err := loadScene(cmd, cfg.PresetPath); err != nil {
		return err
	}

	app.Run()
	return nil
}

// loadScene spawns the preset at path, or the sample scene when path is empty.
func loadScene(cmd *gizmo.Commands, path string) error {
	if path == "" {
		spawnSampleScene(cmd)
		return nil
	}
	ids, err := gizmo.LoadPreset(cmd, path)
	if err != nil {
		return err
	}
	cmd.Logger().Infof("loaded %d objects from %s", len(ids), path)
	return nil
}

// spawnSampleScene places three objects: a free cube, a cube that only moves
// vertically and cannot rotate, and a sphere whose gizmo floats above it.
func spawnSampleScene(cmd *gizmo.Commands) {
	unitBox := gizmo.ColliderComponent{
		Shape:       gizmo.ColliderBox,
		HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5},
	}

	free := core.NewTransform()
	free.Position = mgl32.Vec3{-3, 0, 0}
	freeCol := unitBox
	cmd.AddEntity(free, &freeCol, &gizmo.NameComponent{Name: "free cube"})

	lift := core.NewTransform()
	liftCol := unitBox
	cmd.AddEntity(lift, &liftCol,
		&gizmo.NameComponent{Name: "lift"},
		&gizmo.RestrictionsComponent{Rules: []gizmo.RestrictRule{
			{Mode: gizmo.ModeTranslation, Axis: gizmo.AxisY},
			{Mode: gizmo.ModeRotation, Axis: gizmo.AxisNone},
		}},
	)

	ball := core.NewTransform()
	ball.Position = mgl32.Vec3{3, 0, 0}
	cmd.AddEntity(ball,
		&gizmo.ColliderComponent{Shape: gizmo.ColliderSphere, Radius: 0.75},
		&gizmo.NameComponent{Name: "ball"},
		&gizmo.PositionOffsetComponent{Offset: mgl32.Vec3{0, 1.5, 0}},
	)
}

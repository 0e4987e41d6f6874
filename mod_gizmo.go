package gizmo

import (
	"fmt"

	"github.com/gekko3d/gizmo/core"
)

// GizmoModule spawns the gizmo prefabs and runs the controller each frame.
// Install InputModule (or add an Input resource) and TimeModule (or a Time
// resource) alongside it.
type GizmoModule struct {
	// Camera used for picking and drag bases. When nil the main camera entity
	// is looked up on the first frame.
	Camera *core.Camera
	// Prefabs in cycling order. Nil means DefaultPrefabs.
	Prefabs []GizmoPrefab
	// SpeedMultiplier scales every drag. Nil means 1; zero freezes drags.
	SpeedMultiplier *float32
	// Resolver defaults to reading the target's components from the Ecs.
	Resolver TargetResolver

	OnSelect      func(target EntityId)
	OnModeChanged func(mode GizmoMode)
}

// GizmoState is the resource the gizmo systems share. Controller is nil until
// a camera is known.
type GizmoState struct {
	Controller *GizmoController

	gizmos []*GizmoInstance
	config ControllerConfig
	module GizmoModule
}

func (s *GizmoState) Gizmos() []*GizmoInstance {
	return s.gizmos
}

func (m GizmoModule) Install(app *App, cmd *Commands) {
	prefabs := m.Prefabs
	if prefabs == nil {
		prefabs = DefaultPrefabs()
	}
	if len(prefabs) == 0 {
		panic(fmt.Errorf("gizmo module: %w", ErrNoPrefabs))
	}

	AssetServerModule{}.Install(app, cmd)
	physics := Resource[PhysicsWorld](app)
	if physics == nil {
		physics = NewPhysicsWorld(app)
		app.addResources(physics)
	}

	resolver := m.Resolver
	if resolver == nil {
		resolver = NewEcsTargetResolver(app)
	}
	speed := float32(1)
	if m.SpeedMultiplier != nil {
		speed = *m.SpeedMultiplier
	}

	assets := Resource[AssetServer](app)
	gizmos := make([]*GizmoInstance, 0, len(prefabs))
	for _, prefab := range prefabs {
		gizmos = append(gizmos, instantiateGizmo(cmd, assets, prefab))
	}

	state := &GizmoState{
		gizmos: gizmos,
		config: ControllerConfig{
			Gizmos:          gizmos,
			SpeedMultiplier: speed,
			Raycaster:       physics,
			Resolver:        resolver,
			Logger:          app.Logger(),
		},
		module: m,
	}
	if m.Camera != nil {
		state.start(m.Camera)
	}
	app.addResources(state)

	app.Logger().Debugf("gizmo module installed with %d prefabs", len(gizmos))

	app.UseSystem(System(gizmoBootstrapSystem).InStage(Prelude))
	app.UseSystem(System(gizmoHandleSystem).InStage(Update))
	app.UseSystem(System(gizmoControllerSystem).InStage(PostUpdate))
	app.UseSystem(System(gizmoTrackSystem).InStage(PreRender))
}

func (s *GizmoState) start(camera *core.Camera) {
	cfg := s.config
	cfg.Camera = camera
	ctrl, err := NewGizmoController(cfg)
	if err != nil {
		panic(fmt.Errorf("gizmo module: %w", err))
	}
	ctrl.OnSelect = s.module.OnSelect
	ctrl.OnModeChanged = s.module.OnModeChanged
	s.Controller = ctrl
}

func gizmoBootstrapSystem(cmd *Commands, state *GizmoState) {
	if state.Controller != nil {
		return
	}
	camera := findMainCamera(cmd)
	if camera == nil {
		panic(fmt.Errorf("gizmo module: %w", ErrNoMainCamera))
	}
	state.start(camera)
	cmd.Logger().Debugf("gizmo controller using main camera at %v", camera.Position)
}

func gizmoHandleSystem(state *GizmoState, input *Input) {
	if state.Controller == nil {
		return
	}
	state.Controller.UpdateHandles(input)
}

func gizmoControllerSystem(state *GizmoState, input *Input, time *Time) {
	if state.Controller == nil {
		return
	}
	state.Controller.HandleInput(input, time.Seconds())
}

func gizmoTrackSystem(state *GizmoState) {
	if state.Controller == nil {
		return
	}
	state.Controller.Track()
}

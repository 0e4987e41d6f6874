package gizmo

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/core"
)

var (
	ErrNoCamera    = errors.New("gizmo controller has no camera")
	ErrNoPrefabs   = errors.New("gizmo controller has no gizmo prefabs")
	ErrNoRaycaster = errors.New("gizmo controller has no raycaster")
	ErrNoResolver  = errors.New("gizmo controller has no target resolver")
)

type ControllerConfig struct {
	Camera          *core.Camera
	Gizmos          []*GizmoInstance
	SpeedMultiplier float32
	Raycaster       Raycaster
	Resolver        TargetResolver
	Logger          Logger
}

// GizmoController tracks the selected object and the active gizmo, turns
// pointer deltas into transform deltas and keeps the gizmo on its target.
//
// It is Idle while nothing is selected and ModeSelected(mode, index) with a
// target. The gizmo index survives deselection so the next selection resumes
// the mode scan from it.
type GizmoController struct {
	Camera          *core.Camera
	Gizmos          []*GizmoInstance
	SpeedMultiplier float32

	// Optional observers, called synchronously.
	OnSelect      func(target EntityId)
	OnModeChanged func(mode GizmoMode)

	raycaster Raycaster
	resolver  TargetResolver
	logger    Logger

	target  EntityId
	info    TargetInfo
	mode    GizmoMode
	current int // -1 before the first selection
}

func NewGizmoController(cfg ControllerConfig) (*GizmoController, error) {
	if cfg.Camera == nil {
		return nil, ErrNoCamera
	}
	if len(cfg.Gizmos) == 0 {
		return nil, ErrNoPrefabs
	}
	if cfg.Raycaster == nil {
		return nil, ErrNoRaycaster
	}
	if cfg.Resolver == nil {
		return nil, ErrNoResolver
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NewNopLogger()
	}

	for _, g := range cfg.Gizmos {
		g.Hide()
	}

	return &GizmoController{
		Camera:          cfg.Camera,
		Gizmos:          cfg.Gizmos,
		SpeedMultiplier: cfg.SpeedMultiplier,
		raycaster:       cfg.Raycaster,
		resolver:        cfg.Resolver,
		logger:          logger,
		current:         -1,
	}, nil
}

func (c *GizmoController) Target() EntityId { return c.target }
func (c *GizmoController) Mode() GizmoMode  { return c.mode }

// CurrentIndex is the index of the current gizmo, -1 before the first selection.
func (c *GizmoController) CurrentIndex() int { return c.current }

func (c *GizmoController) ActiveGizmo() *GizmoInstance {
	if c.current < 0 || c.current >= len(c.Gizmos) {
		return nil
	}
	return c.Gizmos[c.current]
}

// UpdateHandles samples the active gizmo's handles. It must run before
// HandleInput in the same frame.
func (c *GizmoController) UpdateHandles(input *Input) {
	g := c.ActiveGizmo()
	if g == nil || !g.Active {
		return
	}
	g.Update(input.Pressed[MouseButtonLeft], rayPicker{
		camera:    c.Camera,
		raycaster: c.raycaster,
		input:     input,
	})
}

// HandleInput applies this frame's clicks and drags. Middle click selects and
// cycles the gizmo, right click deselects.
func (c *GizmoController) HandleInput(input *Input, dt float32) {
	if input.JustPressed[MouseButtonMiddle] {
		c.Select(c.pointerRay(input))
	} else if input.JustPressed[MouseButtonRight] {
		c.Deselect()
	}

	dx, dy := input.PointerAxes()
	c.Drag(dx, dy, dt)
}

func (c *GizmoController) pointerRay(input *Input) core.Ray {
	if c.Camera == nil {
		panic(ErrNoCamera)
	}
	return c.Camera.ScreenPointToRay(input.MouseX, input.MouseY, input.WindowWidth, input.WindowHeight)
}

// Select picks the closest object under ray (handles excluded), then advances
// to the next gizmo mode allowed for it.
func (c *GizmoController) Select(ray core.Ray) {
	hit, ok := c.raycaster.Raycast(ray, LayerAll)
	if ok && hit.Handle == nil {
		c.SelectEntity(hit.Entity)
		return
	}
	c.SelectEntity(0)
}

// SelectEntity makes eid the target (0 clears it) and advances the mode.
func (c *GizmoController) SelectEntity(eid EntityId) {
	c.setTarget(eid)
	c.advanceMode()
	c.applyRestrictions()

	if c.OnSelect != nil {
		c.OnSelect(c.target)
	}
}

func (c *GizmoController) Deselect() {
	c.clearTarget()
	if g := c.ActiveGizmo(); g != nil {
		c.setupGizmo(g, false)
	}
	c.logger.Debugf("deselected")
	c.notifyMode()
}

func (c *GizmoController) setTarget(eid EntityId) {
	if eid == 0 {
		c.clearTarget()
		return
	}
	info, ok := c.resolver.ResolveTarget(eid)
	if !ok {
		c.logger.Warnf("entity %d cannot be manipulated", eid)
		c.clearTarget()
		return
	}

	c.resetDrag()
	c.target = eid
	c.info = info
	c.logger.Debugf("selected entity %d (%d restriction rules)", eid, len(info.Rules))
}

func (c *GizmoController) clearTarget() {
	c.resetDrag()
	c.target = 0
	c.info = TargetInfo{}
	c.mode = ModeNone
}

func (c *GizmoController) resetDrag() {
	for _, g := range c.Gizmos {
		g.ResetDrag()
	}
}

// advanceMode scans forward circularly from the current index, hiding each
// gizmo it leaves and skipping modes fully restricted for the target. When
// every mode is restricted the index ends where it started with nothing shown.
func (c *GizmoController) advanceMode() {
	n := len(c.Gizmos)
	start := c.current

	for step := 1; step <= n; step++ {
		if prev := c.ActiveGizmo(); prev != nil {
			c.setupGizmo(prev, false)
		}
		c.current = ((start+step)%n + n) % n

		g := c.Gizmos[c.current]
		if IsFullyRestricted(c.info.Rules, g.Mode) {
			continue
		}
		c.setupGizmo(g, true)
		c.notifyMode()
		return
	}

	c.current = start
	c.mode = ModeNone
	c.notifyMode()
}

// setupGizmo shows g on the target, or hides it and clears the mode.
func (c *GizmoController) setupGizmo(g *GizmoInstance, enable bool) {
	if c.target != 0 && enable && c.info.Transform != nil {
		g.Show(c.gizmoPose())
		c.mode = g.Mode
		return
	}
	g.Hide()
	c.mode = ModeNone
}

func (c *GizmoController) notifyMode() {
	c.logger.Debugf("gizmo mode %s (index %d)", c.mode, c.current)
	if c.OnModeChanged != nil {
		c.OnModeChanged(c.mode)
	}
}

// applyRestrictions refreshes per-axis flags on every gizmo for the target.
func (c *GizmoController) applyRestrictions() {
	for _, g := range c.Gizmos {
		g.ApplyRestrictions(c.info.Rules)
	}
}

// Drag applies pointer deltas (dy up-positive) to the target for every handle
// that is pressed and allowed. Deltas are scaled by dt.
func (c *GizmoController) Drag(dx, dy, dt float32) {
	g := c.ActiveGizmo()
	if g == nil || c.target == 0 || c.info.Transform == nil || c.mode == ModeNone {
		return
	}

	for _, h := range g.Axes {
		if !h.Pressed || !AxisAllowed(c.info.Rules, g.Mode, h.Axis) {
			continue
		}

		tr := c.info.Transform
		switch c.mode {
		case ModeTranslation:
			tr.Translate(c.TranslateScaleOffset(h.Axis, dx, dy, dt))
		case ModeScale:
			tr.Scale = tr.Scale.Add(c.TranslateScaleOffset(h.Axis, dx, dy, dt))
		case ModeRotation:
			tr.Rotate(c.RotationAxis(h.Axis), c.RotationDelta(h.Speed, dx, dy, dt))
		case ModeNone:
		default:
			panic(unknownMode(c.mode))
		}

		c.setupGizmo(g, true)
	}
}

// TranslateScaleOffset is the world axis aligned offset for one drag frame.
// X and Z both read the horizontal delta along the camera's right vector and
// differ only in the component kept; Y uses the vertical delta and up vector.
func (c *GizmoController) TranslateScaleOffset(axis AxisType, dx, dy, dt float32) mgl32.Vec3 {
	delta := c.translateScaleDelta(axis, dx, dy, dt)
	switch axis {
	case AxisX, AxisZ:
		return axis.Mask(c.Camera.Right().Mul(delta))
	case AxisY:
		return axis.Mask(c.Camera.Up().Mul(delta))
	case AxisNone:
		return mgl32.Vec3{}
	default:
		panic(unknownAxis(axis))
	}
}

func (c *GizmoController) translateScaleDelta(axis AxisType, dx, dy, dt float32) float32 {
	if c.info.Transform == nil {
		return 0
	}
	distance := c.Camera.Position.Sub(c.info.Transform.Position).Len() * 2
	delta := dt * distance * c.SpeedMultiplier

	switch axis {
	case AxisX, AxisZ:
		return dx * delta
	case AxisY:
		return dy * delta
	case AxisNone:
		return 0
	default:
		panic(unknownAxis(axis))
	}
}

// RotationDelta is the rotation in degrees for one drag frame.
func (c *GizmoController) RotationDelta(speed, dx, dy, dt float32) float32 {
	return (dx - dy) * c.SpeedMultiplier * dt * speed
}

// RotationAxis is the negated, doubled camera basis vector for axis with the
// off-axis components removed.
func (c *GizmoController) RotationAxis(axis AxisType) mgl32.Vec3 {
	switch axis {
	case AxisX:
		return AxisX.Mask(c.Camera.Right().Mul(2)).Mul(-1)
	case AxisY:
		return AxisY.Mask(c.Camera.Up().Mul(2)).Mul(-1)
	case AxisZ:
		return AxisZ.Mask(c.Camera.Forward().Mul(2)).Mul(-1)
	case AxisNone:
		return mgl32.Vec3{}
	default:
		panic(unknownAxis(axis))
	}
}

// Track keeps the active gizmo on its target. Called every frame.
func (c *GizmoController) Track() {
	g := c.ActiveGizmo()
	if g == nil || c.target == 0 {
		return
	}
	c.positionGizmo(g)
}

func (c *GizmoController) positionGizmo(g *GizmoInstance) {
	if c.info.Transform == nil {
		return
	}
	g.SetPose(c.gizmoPose())
}

// gizmoPose is the target position plus its offset, and the target rotation.
func (c *GizmoController) gizmoPose() (mgl32.Vec3, mgl32.Quat) {
	return c.info.Transform.Position.Add(c.info.Offset), c.info.Transform.Rotation
}

func (c *GizmoController) String() string {
	return fmt.Sprintf("GizmoController{target: %d, mode: %s, index: %d}", c.target, c.mode, c.current)
}

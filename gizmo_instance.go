package gizmo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GizmoInstance groups the handles of one mode. It owns its handles and
// drives their visibility directly while one of them is dragged.
type GizmoInstance struct {
	Mode     GizmoMode
	Axes     []*AxisHandle
	Active   bool
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Update runs the handles in order and dispatches their events to the
// siblings immediately, so a handle hidden by an earlier sibling is skipped in
// the same frame.
func (g *GizmoInstance) Update(held bool, picker HandlePicker) {
	if !g.Active {
		return
	}
	for _, h := range g.Axes {
		switch h.Update(held, picker) {
		case AxisEventMoving:
			g.movement(h.Axis)
		case AxisEventStopped:
			g.movementStopped()
		case AxisEventNone:
		}
	}
}

// movement keeps only the handles of the dragged axis visible.
func (g *GizmoInstance) movement(axis AxisType) {
	for _, h := range g.Axes {
		h.Visible = h.Axis == axis
	}
	g.syncColliders()
}

func (g *GizmoInstance) movementStopped() {
	for _, h := range g.Axes {
		h.release()
	}
	g.syncColliders()
}

// ResetDrag ends any drag in progress and shows every handle again.
func (g *GizmoInstance) ResetDrag() {
	g.movementStopped()
}

// Dragging reports whether any handle is latched.
func (g *GizmoInstance) Dragging() bool {
	for _, h := range g.Axes {
		if h.clicked {
			return true
		}
	}
	return false
}

// PressedAxes lists the handles that are pressed and allowed this frame.
func (g *GizmoInstance) PressedAxes() []*AxisHandle {
	var pressed []*AxisHandle
	for _, h := range g.Axes {
		if h.Pressed && h.Enabled {
			pressed = append(pressed, h)
		}
	}
	return pressed
}

func (g *GizmoInstance) Show(position mgl32.Vec3, rotation mgl32.Quat) {
	g.Active = true
	g.SetPose(position, rotation)
}

func (g *GizmoInstance) Hide() {
	g.Active = false
	g.movementStopped()
}

// SetPose moves the gizmo and its handle colliders.
func (g *GizmoInstance) SetPose(position mgl32.Vec3, rotation mgl32.Quat) {
	g.Position = position
	g.Rotation = rotation
	for _, h := range g.Axes {
		for _, c := range h.colliders {
			c.transform.Position = position
			c.transform.Rotation = rotation
		}
	}
	g.syncColliders()
}

// ApplyRestrictions sets each handle's Enabled flag and its meshes' flags
// from the target's rules for this gizmo's mode.
func (g *GizmoInstance) ApplyRestrictions(rules []RestrictRule) {
	for _, h := range g.Axes {
		h.Enabled = AxisAllowed(rules, g.Mode, h.Axis)
		for _, m := range h.Meshes {
			m.Enabled = h.Enabled
		}
		if !h.Enabled {
			h.clicked = false
			h.Pressed = false
		}
	}
	g.syncColliders()
}

// Handle returns the first handle for axis, or nil.
func (g *GizmoInstance) Handle(axis AxisType) *AxisHandle {
	for _, h := range g.Axes {
		if h.Axis == axis {
			return h
		}
	}
	return nil
}

func (g *GizmoInstance) syncColliders() {
	for _, h := range g.Axes {
		interactive := g.Active && h.Visible && h.Enabled
		for _, c := range h.colliders {
			c.collider.Disabled = !interactive
		}
	}
}

type AxisPrefab struct {
	Axis  AxisType
	Speed float32
	// Meshes are names registered with the AssetServer on instantiation.
	Meshes []string
	// Layer is where the handle's collider lives, ClickLayer what its
	// hit-test looks at. Both default to LayerGizmo.
	Layer      LayerMask
	ClickLayer LayerMask
	Collider   ColliderComponent
}

// GizmoPrefab describes one gizmo mode the controller can cycle to.
type GizmoPrefab struct {
	Mode GizmoMode
	Axes []AxisPrefab
}

const (
	defaultHandleSpeed  = 100
	handleLength        = 2.2
	handleThickness     = 0.25
	scaleHandleLength   = 1.8
	rotationRingRadius  = 2.0
	rotationRingHalfGap = 0.05
)

// DefaultPrefabs returns Translation, Rotation and Scale gizmos with one handle
// per world axis.
func DefaultPrefabs() []GizmoPrefab {
	axes := []AxisType{AxisX, AxisY, AxisZ}

	translation := GizmoPrefab{Mode: ModeTranslation}
	rotation := GizmoPrefab{Mode: ModeRotation}
	scale := GizmoPrefab{Mode: ModeScale}

	for _, axis := range axes {
		translation.Axes = append(translation.Axes, AxisPrefab{
			Axis:     axis,
			Speed:    defaultHandleSpeed,
			Meshes:   []string{fmt.Sprintf("translate_%s_shaft", axis), fmt.Sprintf("translate_%s_cone", axis)},
			Collider: stickCollider(axis, handleLength),
		})
		rotation.Axes = append(rotation.Axes, AxisPrefab{
			Axis:     axis,
			Speed:    defaultHandleSpeed,
			Meshes:   []string{fmt.Sprintf("rotate_%s_ring", axis)},
			Collider: ringCollider(axis),
		})
		scale.Axes = append(scale.Axes, AxisPrefab{
			Axis:     axis,
			Speed:    defaultHandleSpeed,
			Meshes:   []string{fmt.Sprintf("scale_%s_shaft", axis), fmt.Sprintf("scale_%s_cube", axis)},
			Collider: stickCollider(axis, scaleHandleLength),
		})
	}

	return []GizmoPrefab{translation, rotation, scale}
}

// stickCollider is a box running from the gizmo origin along axis.
func stickCollider(axis AxisType, length float32) ColliderComponent {
	half := float32(handleThickness / 2)
	extents := mgl32.Vec3{half, half, half}.Add(axis.Unit().Mul(length/2 - half))
	return ColliderComponent{
		Shape:       ColliderBox,
		Center:      axis.Unit().Mul(length / 2),
		HalfExtents: extents,
	}
}

// ringCollider is a flat box covering the ring in the plane normal to axis.
// Rings of different axes overlap near the origin.
func ringCollider(axis AxisType) ColliderComponent {
	r := float32(rotationRingRadius)
	extents := mgl32.Vec3{r, r, r}.Sub(axis.Unit().Mul(r - rotationRingHalfGap))
	return ColliderComponent{
		Shape:       ColliderBox,
		HalfExtents: extents,
	}
}

// instantiateGizmo spawns one hidden collider entity per handle.
func instantiateGizmo(cmd *Commands, assets *AssetServer, prefab GizmoPrefab) *GizmoInstance {
	g := &GizmoInstance{
		Mode:     prefab.Mode,
		Rotation: mgl32.QuatIdent(),
	}

	for _, ap := range prefab.Axes {
		h := &AxisHandle{
			Axis:       ap.Axis,
			Speed:      ap.Speed,
			ClickLayer: ap.ClickLayer,
			Visible:    true,
			Enabled:    true,
		}
		if h.Speed == 0 {
			h.Speed = defaultHandleSpeed
		}
		if h.ClickLayer == 0 {
			h.ClickLayer = LayerGizmo
		}
		for _, name := range ap.Meshes {
			h.Meshes = append(h.Meshes, &MeshRef{Id: assets.RegisterMesh(name), Name: name, Enabled: true})
		}

		tr := &TransformComponent{Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
		col := ap.Collider
		col.Layer = ap.Layer
		if col.Layer == 0 {
			col.Layer = LayerGizmo
		}
		col.Disabled = true
		eid := cmd.AddEntity(tr, &col, &HandleTag{Handle: h})
		h.colliders = append(h.colliders, handleCollider{eid: eid, transform: tr, collider: &col})

		g.Axes = append(g.Axes, h)
	}

	return g
}

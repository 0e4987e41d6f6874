package gizmo

import (
	"fmt"

	"github.com/gekko3d/gizmo/core"
)

// HandleTag marks a collider entity as part of an axis handle, so it is never
// selected as a target.
type HandleTag struct {
	Handle *AxisHandle
}

type AxisEvent int

const (
	AxisEventNone AxisEvent = iota
	// AxisEventMoving: the handle is being dragged this frame.
	AxisEventMoving
	// AxisEventStopped: the primary button is up.
	AxisEventStopped
)

// MeshRef is an opaque reference to a handle's visual mesh. Enabled mirrors
// the restriction rules of the current target.
type MeshRef struct {
	Id      AssetId
	Name    string
	Enabled bool
}

// AxisHandle is one draggable affordance of a GizmoInstance.
type AxisHandle struct {
	Axis       AxisType
	Pressed    bool
	Speed      float32
	Meshes     []*MeshRef
	ClickLayer LayerMask

	// Visible is cleared while a sibling handle is dragged.
	Visible bool
	// Enabled is cleared when the target's rules exclude this axis.
	Enabled bool

	clicked   bool
	colliders []handleCollider
}

type handleCollider struct {
	eid       EntityId
	transform *TransformComponent
	collider  *ColliderComponent
}

func (h *AxisHandle) String() string {
	return fmt.Sprintf("handle(%s)", h.Axis)
}

// HandlePicker resolves the handle under the pointer for a layer mask.
type HandlePicker interface {
	PickHandle(mask LayerMask) *AxisHandle
}

// Update derives Pressed for this frame: the primary button is held and the
// handle was already being dragged or a fresh hit-test lands on it.
// Disabled or hidden handles never become pressed.
func (h *AxisHandle) Update(held bool, picker HandlePicker) AxisEvent {
	if !held {
		h.Pressed = false
		return AxisEventStopped
	}
	if !h.Enabled || !h.Visible {
		h.Pressed = false
		return AxisEventNone
	}

	if !h.clicked {
		h.clicked = picker.PickHandle(h.ClickLayer) == h
	}
	h.Pressed = h.clicked
	if h.clicked {
		return AxisEventMoving
	}
	return AxisEventNone
}

func (h *AxisHandle) release() {
	h.clicked = false
	h.Pressed = false
	h.Visible = true
}

// rayPicker casts from the camera through the pointer and takes the first
// handle among the hits. Hits come in query order, so overlapping handles
// resolve by spawn order rather than distance.
type rayPicker struct {
	camera    *core.Camera
	raycaster Raycaster
	input     *Input
}

func (p rayPicker) PickHandle(mask LayerMask) *AxisHandle {
	if p.camera == nil {
		panic(ErrNoCamera)
	}
	ray := p.camera.ScreenPointToRay(p.input.MouseX, p.input.MouseY, p.input.WindowWidth, p.input.WindowHeight)
	for _, hit := range p.raycaster.RaycastAll(ray, mask) {
		if hit.Handle != nil {
			return hit.Handle
		}
	}
	return nil
}

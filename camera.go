package gizmo

import (
	"errors"

	"github.com/gekko3d/gizmo/core"
)

// TransformComponent is the transform owned by a scene object. The gizmo
// controller mutates it in place.
type TransformComponent = core.Transform

// CameraComponent puts a camera in the scene. The gizmo module picks the one
// flagged Main when it is not given a camera explicitly.
type CameraComponent struct {
	core.Camera
	Main bool
}

var ErrNoMainCamera = errors.New("could not find main camera")

// findMainCamera returns the first camera flagged Main, falling back to the
// first camera of any kind.
func findMainCamera(cmd *Commands) *core.Camera {
	var main, first *core.Camera
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent) bool {
		if first == nil {
			first = &cam.Camera
		}
		if cam.Main {
			main = &cam.Camera
			return false
		}
		return true
	})
	if main != nil {
		return main
	}
	return first
}

package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/core"
)

// Raw wheel deltas are scaled into axis units before the scroll speed applies.
const scrollAxisScale = 0.1

type FlyingCameraModule struct{}

func (m FlyingCameraModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(FlyingCameraSystem).
			InStage(Update),
	)
}

// FlyingCameraComponent floats a camera entity towards a target position
// steered by the keyboard and wheel. The view turns with the pointer while
// the right button is held or the camera is being steered.
type FlyingCameraComponent struct {
	MoveSpeed            float32
	ScrollSpeed          float32
	SensitivityX         float32
	SensitivityY         float32
	MinPitch             float32
	MaxPitch             float32
	RotationAcceleration float32
	MinHeight            float32

	target      mgl32.Vec3
	yaw         float32
	pitch       float32
	initialized bool
}

func NewFlyingCamera() *FlyingCameraComponent {
	return &FlyingCameraComponent{
		MoveSpeed:            0.15,
		ScrollSpeed:          2,
		SensitivityX:         4,
		SensitivityY:         4,
		MinPitch:             -40,
		MaxPitch:             40,
		RotationAcceleration: 40,
		MinHeight:            -1,
	}
}

// Target is where the camera is floating towards.
func (fly *FlyingCameraComponent) Target() mgl32.Vec3 {
	return fly.target
}

// YawPitch returns the steering angles in degrees.
func (fly *FlyingCameraComponent) YawPitch() (float32, float32) {
	return fly.yaw, fly.pitch
}

func (fly *FlyingCameraComponent) init(cam *core.Camera) {
	fly.target = cam.Position
	f := cam.Forward()
	fly.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(f.X()), float64(-f.Z()))))
	fly.pitch = mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(f.Y(), -1, 1)))))
	fly.pitch = mgl32.Clamp(fly.pitch, fly.MinPitch, fly.MaxPitch)
	fly.initialized = true
}

// orientation is the rotation for the current yaw and pitch: yaw turns right
// around world up, pitch tilts up around the camera's right axis.
func (fly *FlyingCameraComponent) orientation() mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(-fly.yaw), core.WorldUp)
	pitch := mgl32.QuatRotate(mgl32.DegToRad(fly.pitch), core.WorldRight)
	return yaw.Mul(pitch).Normalize()
}

func FlyingCameraSystem(cmd *Commands, input *Input, time *Time) {
	dt := time.Seconds()

	MakeQuery2[CameraComponent, FlyingCameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, fly *FlyingCameraComponent) bool {
		if !fly.initialized {
			fly.init(&cam.Camera)
		}
		fly.step(&cam.Camera, input, dt)
		return true
	})
}

func (fly *FlyingCameraComponent) step(cam *core.Camera, input *Input, dt float32) {
	cam.Position = core.LerpVec3(cam.Position, fly.target, 3*dt)

	forward := input.Vertical() * fly.MoveSpeed
	sideways := input.Horizontal() * fly.MoveSpeed * 0.8

	if input.Pressed[MouseButtonRight] || forward != 0 || sideways != 0 {
		dx, dy := input.PointerAxes()
		fly.yaw += dx * fly.SensitivityX
		fly.pitch = mgl32.Clamp(fly.pitch+dy*fly.SensitivityY, fly.MinPitch, fly.MaxPitch)
	}

	cam.Rotation = mgl32.QuatSlerp(cam.Rotation, fly.orientation(), mgl32.Clamp(fly.RotationAcceleration*dt, 0, 1)).Normalize()

	forward += float32(input.ScrollY) * scrollAxisScale * fly.ScrollSpeed
	fly.target = fly.target.Add(cam.Rotation.Rotate(core.WorldForward.Mul(forward)))
	fly.target = fly.target.Add(cam.Rotation.Rotate(core.WorldRight.Mul(sideways)))
	if fly.target.Y() < fly.MinHeight {
		fly.target[1] = fly.MinHeight
	}
}

package gizmo

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/core"
)

func newFlyingScene(t *testing.T) (*App, *Input, *CameraComponent, *FlyingCameraComponent) {
	t.Helper()
	app := NewApp()
	cmd := app.Commands()
	input := &Input{}
	cmd.AddResources(input, &Time{Dt: 100 * time.Millisecond})
	app.UseModules(FlyingCameraModule{})

	cam := &CameraComponent{Camera: *core.NewCamera(), Main: true}
	fly := NewFlyingCamera()
	cmd.AddEntity(cam, fly)
	return app, input, cam, fly
}

func TestFlyingCamera_Defaults(t *testing.T) {
	fly := NewFlyingCamera()

	assert.Equal(t, float32(0.15), fly.MoveSpeed)
	assert.Equal(t, float32(2), fly.ScrollSpeed)
	assert.Equal(t, float32(-40), fly.MinPitch)
	assert.Equal(t, float32(40), fly.MaxPitch)
	assert.Equal(t, float32(-1), fly.MinHeight)
}

func TestFlyingCamera_IdleKeepsPose(t *testing.T) {
	app, _, cam, fly := newFlyingScene(t)
	start := cam.Position

	app.RunFrames(5)

	assert.True(t, fly.initialized)
	assert.InDelta(t, 0, cam.Position.Sub(start).Len(), 1e-4)
	assert.InDelta(t, 0, cam.Rotation.Sub(mgl32.QuatIdent()).Len(), 1e-4)
}

func TestFlyingCamera_ForwardFloatsTowardsTarget(t *testing.T) {
	app, input, cam, fly := newFlyingScene(t)
	start := cam.Position

	input.SetButton(KeyW, true)
	app.Step()

	// The target moves immediately; the camera only starts easing towards it.
	assert.InDelta(t, start.Z()-0.15, fly.Target().Z(), 1e-4)
	assert.InDelta(t, start.Z(), cam.Position.Z(), 1e-4)

	input.SetButton(KeyW, false)
	app.RunFrames(3)
	assert.Less(t, cam.Position.Z(), start.Z())
	assert.Greater(t, cam.Position.Z(), fly.Target().Z())
}

func TestFlyingCamera_PointerTurnsOnlyWithRightButton(t *testing.T) {
	app, input, _, fly := newFlyingScene(t)

	input.MoveMouse(0, 0)
	input.MoveMouse(10, 0)
	app.Step()
	yaw, _ := fly.YawPitch()
	assert.Zero(t, yaw)

	input.BeginFrame()
	input.SetButton(MouseButtonRight, true)
	input.MoveMouse(20, -1000)
	app.Step()

	yaw, pitch := fly.YawPitch()
	assert.InDelta(t, 10*pointerAxisScale*4, yaw, 1e-4)
	assert.Equal(t, float32(40), pitch, "pitch is clamped")
}

func TestFlyingCamera_RotationFollowsYawPitch(t *testing.T) {
	fly := NewFlyingCamera()
	fly.yaw = 90

	cam := core.NewCamera()
	fly.RotationAcceleration = 1000
	fly.initialized = true
	fly.step(cam, &Input{}, 0.1)

	f := cam.Forward()
	assert.InDelta(t, 1, f.X(), 1e-4, "positive yaw turns right")
	assert.InDelta(t, 0, f.Z(), 1e-4)
}

func TestFlyingCamera_InitFromCurrentView(t *testing.T) {
	cam := core.NewCamera()
	cam.Rotation = mgl32.QuatRotate(mgl32.DegToRad(-30), core.WorldUp).Mul(mgl32.QuatRotate(mgl32.DegToRad(20), core.WorldRight))

	fly := NewFlyingCamera()
	fly.init(cam)

	yaw, pitch := fly.YawPitch()
	assert.InDelta(t, 30, yaw, 1e-3)
	assert.InDelta(t, 20, pitch, 1e-3)
	assert.InDelta(t, 0, fly.orientation().Sub(cam.Rotation).Len(), 1e-4)
}

func TestFlyingCamera_MinHeight(t *testing.T) {
	fly := NewFlyingCamera()
	cam := core.NewCamera()
	cam.Position = mgl32.Vec3{0, -0.95, 0}
	fly.init(cam)
	fly.pitch = -40
	cam.Rotation = fly.orientation()

	input := &Input{}
	input.SetButton(KeyW, true)
	for i := 0; i < 20; i++ {
		fly.step(cam, input, 0.1)
	}

	require.GreaterOrEqual(t, fly.Target().Y(), float32(-1))
	assert.InDelta(t, -1, fly.Target().Y(), 1e-5)
}

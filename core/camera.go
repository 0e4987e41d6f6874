package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	FovY     float32 // degrees
	Near     float32
	Far      float32
}

func NewCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{0, 2, 10},
		Rotation: mgl32.QuatIdent(),
		FovY:     60,
		Near:     0.1,
		Far:      1000,
	}
}

func (c *Camera) Right() mgl32.Vec3   { return c.Rotation.Rotate(WorldRight) }
func (c *Camera) Up() mgl32.Vec3      { return c.Rotation.Rotate(WorldUp) }
func (c *Camera) Forward() mgl32.Vec3 { return c.Rotation.Rotate(WorldForward) }

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	eye := c.Position
	return mgl32.LookAtV(eye, eye.Add(c.Forward()), c.Up())
}

func (c *Camera) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// ScreenPointToRay builds a world space ray through the pointer position.
// Screen coordinates have their origin at the top left corner.
func (c *Camera) ScreenPointToRay(x, y float64, width, height int) Ray {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	ndcX := float32(2.0*x/float64(width) - 1.0)
	ndcY := float32(1.0 - 2.0*y/float64(height))

	aspect := float32(width) / float32(height)
	invViewProj := c.GetProjectionMatrix(aspect).Mul4(c.GetViewMatrix()).Inv()

	near := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 1, 1})

	return Ray{
		Origin:    near,
		Direction: far.Sub(near).Normalize(),
	}
}

func unproject(inv mgl32.Mat4, clip mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(clip)
	return p.Vec3().Mul(1 / p.W())
}

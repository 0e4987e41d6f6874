package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	WorldRight   = mgl32.Vec3{1, 0, 0}
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldForward = mgl32.Vec3{0, 0, -1}
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() *Transform {
	return &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Translate moves the transform by v expressed in its own (rotated) frame.
func (t *Transform) Translate(v mgl32.Vec3) {
	t.Position = t.Position.Add(t.Rotation.Rotate(v))
}

// Rotate turns the transform by degrees around axis, given in its own frame.
// A zero axis leaves the rotation untouched.
func (t *Transform) Rotate(axis mgl32.Vec3, degrees float32) {
	if axis.Len() < 1e-6 || degrees == 0 {
		return
	}
	delta := mgl32.QuatRotate(mgl32.DegToRad(degrees), axis.Normalize())
	t.Rotation = t.Rotation.Mul(delta).Normalize()
}

func (t *Transform) Right() mgl32.Vec3   { return t.Rotation.Rotate(WorldRight) }
func (t *Transform) Up() mgl32.Vec3      { return t.Rotation.Rotate(WorldUp) }
func (t *Transform) Forward() mgl32.Vec3 { return t.Rotation.Rotate(WorldForward) }

func (t *Transform) ObjectToWorld() mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

// WorldToObject returns inv(S) * inv(R) * inv(T). Scale components must be non-zero.
func (t *Transform) WorldToObject() mgl32.Mat4 {
	invScale := mgl32.Scale3D(1.0/t.Scale.X(), 1.0/t.Scale.Y(), 1.0/t.Scale.Z())
	invRotate := t.Rotation.Conjugate().Mat4()
	invTranslate := mgl32.Translate3D(-t.Position.X(), -t.Position.Y(), -t.Position.Z())

	return invScale.Mul4(invRotate).Mul4(invTranslate)
}

// PointToLocal maps a world space point into object space without building a matrix.
func (t *Transform) PointToLocal(p mgl32.Vec3) mgl32.Vec3 {
	local := t.Rotation.Conjugate().Rotate(p.Sub(t.Position))
	return divVec(local, t.Scale)
}

// DirectionToLocal maps a world space direction into object space. The result
// is not normalized so that ray parameters stay valid in both spaces.
func (t *Transform) DirectionToLocal(d mgl32.Vec3) mgl32.Vec3 {
	return divVec(t.Rotation.Conjugate().Rotate(d), t.Scale)
}

func divVec(v, s mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X() / s.X(), v.Y() / s.Y(), v.Z() / s.Z()}
}

// LerpVec3 interpolates from a to b, t is clamped to [0, 1].
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	t = mgl32.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

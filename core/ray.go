package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectAABB runs the slab test and returns the entry distance.
// A ray starting inside the box reports t = 0.
func (r Ray) IntersectAABB(min, max mgl32.Vec3) (float32, bool) {
	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))

	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Direction[i]
		if mgl32.Abs(d) < 1e-8 {
			if o < min[i] || o > max[i] {
				return 0, false
			}
			continue
		}

		inv := 1 / d
		t1 := (min[i] - o) * inv
		t2 := (max[i] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return 0, true
	}
	return tMin, true
}

func (r Ray) IntersectSphere(center mgl32.Vec3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - a*c
	if disc < 0 || a == 0 {
		return 0, false
	}

	sq := float32(math.Sqrt(float64(disc)))
	t := (-b - sq) / a
	if t < 0 {
		t = (-b + sq) / a
		if t < 0 {
			return 0, false
		}
		// Origin inside the sphere.
		return 0, true
	}
	return t, true
}

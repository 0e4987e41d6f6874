package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/core"
)

type LayerMask uint32

const (
	LayerDefault LayerMask = 1 << 0
	LayerGizmo   LayerMask = 1 << 5
	LayerAll     LayerMask = ^LayerMask(0)
)

func (m LayerMask) Contains(layer LayerMask) bool {
	return m&layer != 0
}

type ColliderShape int

const (
	ColliderBox ColliderShape = iota
	ColliderSphere
)

// ColliderComponent makes an entity with a TransformComponent raycastable.
// Center, HalfExtents and Radius are in the entity's local space.
type ColliderComponent struct {
	Shape       ColliderShape
	Center      mgl32.Vec3
	HalfExtents mgl32.Vec3
	Radius      float32
	Layer       LayerMask
	Disabled    bool
}

func (c *ColliderComponent) layer() LayerMask {
	if c.Layer == 0 {
		return LayerDefault
	}
	return c.Layer
}

type RaycastHit struct {
	Entity   EntityId
	Distance float32
	Point    mgl32.Vec3
	// Handle is set when the collider belongs to a gizmo axis handle.
	Handle *AxisHandle
}

// Raycaster is the spatial query the gizmo controller and its handles use.
type Raycaster interface {
	// Raycast returns the closest hit.
	Raycast(ray core.Ray, mask LayerMask) (RaycastHit, bool)
	// RaycastAll returns every hit in query order, not sorted by distance.
	RaycastAll(ray core.Ray, mask LayerMask) []RaycastHit
}

// PhysicsWorld answers raycasts against the colliders stored in the Ecs.
type PhysicsWorld struct {
	ecs *Ecs
}

func NewPhysicsWorld(app *App) *PhysicsWorld {
	return &PhysicsWorld{ecs: app.ecs}
}

var _ Raycaster = (*PhysicsWorld)(nil)

func (p *PhysicsWorld) RaycastAll(ray core.Ray, mask LayerMask) []RaycastHit {
	var hits []RaycastHit
	Query2[TransformComponent, ColliderComponent]{ecs: p.ecs}.Map(func(eid EntityId, tr *TransformComponent, col *ColliderComponent) bool {
		if hit, ok := p.intersect(ray, mask, eid, tr, col); ok {
			hits = append(hits, hit)
		}
		return true
	})
	return hits
}

func (p *PhysicsWorld) Raycast(ray core.Ray, mask LayerMask) (RaycastHit, bool) {
	var best RaycastHit
	found := false
	for _, hit := range p.RaycastAll(ray, mask) {
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}

func (p *PhysicsWorld) intersect(ray core.Ray, mask LayerMask, eid EntityId, tr *TransformComponent, col *ColliderComponent) (RaycastHit, bool) {
	if col.Disabled || !mask.Contains(col.layer()) {
		return RaycastHit{}, false
	}

	var t float32
	var ok bool
	switch col.Shape {
	case ColliderBox:
		// Slab test in local space; the parameter t is shared with world space
		// because the local direction is not renormalized.
		local := core.Ray{
			Origin:    tr.PointToLocal(ray.Origin),
			Direction: tr.DirectionToLocal(ray.Direction),
		}
		t, ok = local.IntersectAABB(col.Center.Sub(col.HalfExtents), col.Center.Add(col.HalfExtents))
	case ColliderSphere:
		center := tr.Position.Add(tr.Rotation.Rotate(mulVec(col.Center, tr.Scale)))
		radius := col.Radius * maxComponent(tr.Scale)
		t, ok = ray.IntersectSphere(center, radius)
	}
	if !ok {
		return RaycastHit{}, false
	}

	hit := RaycastHit{
		Entity:   eid,
		Distance: t,
		Point:    ray.At(t),
	}
	if tag := getComponent[HandleTag](p.ecs, eid); tag != nil {
		hit.Handle = tag.Handle
	}
	return hit, true
}

func mulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func maxComponent(v mgl32.Vec3) float32 {
	m := mgl32.Abs(v.X())
	if y := mgl32.Abs(v.Y()); y > m {
		m = y
	}
	if z := mgl32.Abs(v.Z()); z > m {
		m = z
	}
	return m
}

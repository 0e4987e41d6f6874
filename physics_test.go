package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/core"
)

func unitBoxAt(pos mgl32.Vec3) (*TransformComponent, *ColliderComponent) {
	tr := core.NewTransform()
	tr.Position = pos
	return tr, &ColliderComponent{Shape: ColliderBox, HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5}}
}

var rayDownZ = core.Ray{Origin: mgl32.Vec3{0, 0, 10}, Direction: mgl32.Vec3{0, 0, -1}}

func TestPhysicsWorld_RaycastClosestAndQueryOrder(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	farTr, farCol := unitBoxAt(mgl32.Vec3{0, 0, -5})
	far := cmd.AddEntity(farTr, farCol)
	nearTr, nearCol := unitBoxAt(mgl32.Vec3{0, 0, 0})
	near := cmd.AddEntity(nearTr, nearCol)
	app.FlushCommands()

	world := NewPhysicsWorld(app)

	hits := world.RaycastAll(rayDownZ, LayerAll)
	require.Len(t, hits, 2)
	assert.Equal(t, far, hits[0].Entity, "RaycastAll keeps query order")
	assert.Equal(t, near, hits[1].Entity)

	hit, ok := world.Raycast(rayDownZ, LayerAll)
	require.True(t, ok)
	assert.Equal(t, near, hit.Entity)
	assert.InDelta(t, 9.5, hit.Distance, 1e-4)
	assert.InDelta(t, 0.5, hit.Point.Z(), 1e-4)
	assert.Nil(t, hit.Handle)
}

func TestPhysicsWorld_SkipsDisabledAndMaskedColliders(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	tr, col := unitBoxAt(mgl32.Vec3{})
	col.Disabled = true
	cmd.AddEntity(tr, col)

	gizmoTr, gizmoCol := unitBoxAt(mgl32.Vec3{0, 0, -2})
	gizmoCol.Layer = LayerGizmo
	gizmoEid := cmd.AddEntity(gizmoTr, gizmoCol)
	app.FlushCommands()

	world := NewPhysicsWorld(app)

	_, ok := world.Raycast(rayDownZ, LayerDefault)
	assert.False(t, ok)

	hit, ok := world.Raycast(rayDownZ, LayerGizmo)
	require.True(t, ok)
	assert.Equal(t, gizmoEid, hit.Entity)
}

func TestPhysicsWorld_BoxHonoursTransform(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	tr, col := unitBoxAt(mgl32.Vec3{})
	tr.Scale = mgl32.Vec3{2, 2, 2}
	cmd.AddEntity(tr, col)
	app.FlushCommands()

	world := NewPhysicsWorld(app)
	hit, ok := world.Raycast(rayDownZ, LayerAll)
	require.True(t, ok)
	assert.InDelta(t, 9, hit.Distance, 1e-4)

	// A thin box along X rotated onto Z still blocks a ray along Z through its end.
	thin := core.NewTransform()
	thin.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	thinCol := &ColliderComponent{Shape: ColliderBox, Center: mgl32.Vec3{2, 0, 0}, HalfExtents: mgl32.Vec3{1, 0.1, 0.1}}
	app2 := NewApp()
	app2.Commands().AddEntity(thin, thinCol)
	app2.FlushCommands()

	ray := core.Ray{Origin: mgl32.Vec3{0, 10, -2}, Direction: mgl32.Vec3{0, -1, 0}}
	hit, ok = NewPhysicsWorld(app2).Raycast(ray, LayerAll)
	require.True(t, ok)
	assert.InDelta(t, 9.9, hit.Distance, 1e-3)
}

func TestPhysicsWorld_Sphere(t *testing.T) {
	app := NewApp()
	tr := core.NewTransform()
	tr.Scale = mgl32.Vec3{1, 3, 1}
	app.Commands().AddEntity(tr, &ColliderComponent{Shape: ColliderSphere, Radius: 1})
	app.FlushCommands()

	hit, ok := NewPhysicsWorld(app).Raycast(rayDownZ, LayerAll)
	require.True(t, ok)
	assert.InDelta(t, 7, hit.Distance, 1e-4, "radius scales with the largest component")
}

func TestPhysicsWorld_ReportsHandle(t *testing.T) {
	app := NewApp()
	handle := &AxisHandle{Axis: AxisX}
	tr, col := unitBoxAt(mgl32.Vec3{})
	app.Commands().AddEntity(tr, col, &HandleTag{Handle: handle})
	app.FlushCommands()

	hit, ok := NewPhysicsWorld(app).Raycast(rayDownZ, LayerAll)
	require.True(t, ok)
	assert.Same(t, handle, hit.Handle)
}

func TestLayerMask_Contains(t *testing.T) {
	assert.True(t, LayerAll.Contains(LayerGizmo))
	assert.False(t, LayerDefault.Contains(LayerGizmo))
	assert.Equal(t, LayerDefault, (&ColliderComponent{}).layer())
}

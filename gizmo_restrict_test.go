package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/core"
)

func TestRestrictions_NoRulesAllowEverything(t *testing.T) {
	for _, mode := range []GizmoMode{ModeTranslation, ModeRotation, ModeScale} {
		assert.False(t, IsFullyRestricted(nil, mode))
		for _, axis := range []AxisType{AxisX, AxisY, AxisZ} {
			assert.True(t, AxisAllowed(nil, mode, axis), "%s %s", mode, axis)
		}
	}
}

func TestRestrictions_FullyRestrictedMode(t *testing.T) {
	rules := []RestrictRule{{Mode: ModeRotation, Axis: AxisNone}}

	assert.True(t, IsFullyRestricted(rules, ModeRotation))
	assert.False(t, IsFullyRestricted(rules, ModeTranslation))
	assert.False(t, AxisAllowed(rules, ModeRotation, AxisX))
	assert.True(t, AxisAllowed(rules, ModeScale, AxisX))
}

func TestRestrictions_Whitelist(t *testing.T) {
	rules := []RestrictRule{
		{Mode: ModeTranslation, Axis: AxisY},
		{Mode: ModeTranslation, Axis: AxisZ},
	}

	assert.False(t, AxisAllowed(rules, ModeTranslation, AxisX))
	assert.True(t, AxisAllowed(rules, ModeTranslation, AxisY))
	assert.True(t, AxisAllowed(rules, ModeTranslation, AxisZ))
	assert.True(t, AxisAllowed(rules, ModeScale, AxisX))
	assert.False(t, IsFullyRestricted(rules, ModeTranslation))
}

func TestEcsTargetResolver(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	tr := core.NewTransform()
	rules := []RestrictRule{{Mode: ModeScale, Axis: AxisNone}}
	full := cmd.AddEntity(tr,
		&RestrictionsComponent{Rules: rules},
		&PositionOffsetComponent{Offset: mgl32.Vec3{0, 1, 0}},
	)
	bare := cmd.AddEntity(core.NewTransform())
	noTransform := cmd.AddEntity(&NameComponent{Name: "label"})
	app.FlushCommands()

	resolver := NewEcsTargetResolver(app)

	info, ok := resolver.ResolveTarget(full)
	require.True(t, ok)
	assert.Same(t, tr, info.Transform)
	assert.Equal(t, rules, info.Rules)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, info.Offset)

	rules[0].Mode = ModeTranslation
	assert.Equal(t, ModeScale, info.Rules[0].Mode, "rules are copied at resolve time")

	info, ok = resolver.ResolveTarget(bare)
	require.True(t, ok)
	assert.Empty(t, info.Rules)
	assert.Equal(t, mgl32.Vec3{}, info.Offset)

	_, ok = resolver.ResolveTarget(noTransform)
	assert.False(t, ok)
	_, ok = resolver.ResolveTarget(0)
	assert.False(t, ok)
}

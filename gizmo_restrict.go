package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RestrictRule limits a mode on one target. Axis AxisNone disables the mode
// entirely; any other axis whitelists that axis for the mode.
type RestrictRule struct {
	Mode GizmoMode `yaml:"mode"`
	Axis AxisType  `yaml:"axis"`
}

// RestrictionsComponent attaches zero or more rules to a target.
type RestrictionsComponent struct {
	Rules []RestrictRule
}

// PositionOffsetComponent shifts where the gizmo is drawn relative to its target.
type PositionOffsetComponent struct {
	Offset mgl32.Vec3
}

// IsFullyRestricted reports whether mode is disabled for the rules' owner.
func IsFullyRestricted(rules []RestrictRule, mode GizmoMode) bool {
	for _, r := range rules {
		if r.Mode == mode && r.Axis == AxisNone {
			return true
		}
	}
	return false
}

// AxisAllowed: with no rule for mode every axis is allowed, otherwise only the
// listed axes are.
func AxisAllowed(rules []RestrictRule, mode GizmoMode, axis AxisType) bool {
	restricted := false
	for _, r := range rules {
		if r.Mode != mode {
			continue
		}
		if r.Axis == axis {
			return true
		}
		restricted = true
	}
	return !restricted
}

// TargetInfo is everything the controller needs about a selected object,
// resolved once when it is selected.
type TargetInfo struct {
	Transform *TransformComponent
	Rules     []RestrictRule
	Offset    mgl32.Vec3
}

// TargetResolver looks up a target's transform, restriction rules and gizmo
// offset. ok is false when the entity cannot be manipulated.
type TargetResolver interface {
	ResolveTarget(eid EntityId) (TargetInfo, bool)
}

type ecsTargetResolver struct {
	ecs *Ecs
}

// NewEcsTargetResolver reads TransformComponent, RestrictionsComponent and
// PositionOffsetComponent from the app's entities.
func NewEcsTargetResolver(app *App) TargetResolver {
	return ecsTargetResolver{ecs: app.ecs}
}

func (r ecsTargetResolver) ResolveTarget(eid EntityId) (TargetInfo, bool) {
	tr := getComponent[TransformComponent](r.ecs, eid)
	if tr == nil {
		return TargetInfo{}, false
	}

	info := TargetInfo{Transform: tr}
	if restrictions := getComponent[RestrictionsComponent](r.ecs, eid); restrictions != nil {
		info.Rules = append([]RestrictRule(nil), restrictions.Rules...)
	}
	if offset := getComponent[PositionOffsetComponent](r.ecs, eid); offset != nil {
		info.Offset = offset.Offset
	}
	return info, true
}

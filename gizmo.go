package gizmo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrUnknownAxis = errors.New("unknown gizmo axis")
	ErrUnknownMode = errors.New("unknown gizmo mode")
)

// AxisType is the axis a handle controls. The set is closed: helpers switch
// over every value and panic on anything else.
type AxisType int

const (
	AxisNone AxisType = iota
	AxisX
	AxisY
	AxisZ
)

var axisNames = map[AxisType]string{
	AxisNone: "none",
	AxisX:    "x",
	AxisY:    "y",
	AxisZ:    "z",
}

func (a AxisType) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AxisType(%d)", int(a))
}

// Unit is the world axis vector, zero for AxisNone.
func (a AxisType) Unit() mgl32.Vec3 {
	switch a {
	case AxisNone:
		return mgl32.Vec3{}
	case AxisX:
		return mgl32.Vec3{1, 0, 0}
	case AxisY:
		return mgl32.Vec3{0, 1, 0}
	case AxisZ:
		return mgl32.Vec3{0, 0, 1}
	default:
		panic(unknownAxis(a))
	}
}

// Mask keeps only the component of v matching the axis.
func (a AxisType) Mask(v mgl32.Vec3) mgl32.Vec3 {
	switch a {
	case AxisNone:
		return mgl32.Vec3{}
	case AxisX:
		return mgl32.Vec3{v.X(), 0, 0}
	case AxisY:
		return mgl32.Vec3{0, v.Y(), 0}
	case AxisZ:
		return mgl32.Vec3{0, 0, v.Z()}
	default:
		panic(unknownAxis(a))
	}
}

func (a AxisType) MarshalText() ([]byte, error) {
	name, ok := axisNames[a]
	if !ok {
		return nil, unknownAxis(a)
	}
	return []byte(name), nil
}

func (a *AxisType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for axis, name := range axisNames {
		if name == s {
			*a = axis
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownAxis, string(text))
}

type GizmoMode int

const (
	ModeNone GizmoMode = iota
	ModeTranslation
	ModeRotation
	ModeScale
)

var modeNames = map[GizmoMode]string{
	ModeNone:        "none",
	ModeTranslation: "translation",
	ModeRotation:    "rotation",
	ModeScale:       "scale",
}

func (m GizmoMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("GizmoMode(%d)", int(m))
}

func (m GizmoMode) MarshalText() ([]byte, error) {
	name, ok := modeNames[m]
	if !ok {
		return nil, unknownMode(m)
	}
	return []byte(name), nil
}

func (m *GizmoMode) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for mode, name := range modeNames {
		if name == s {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownMode, string(text))
}

func unknownMode(m GizmoMode) error {
	return fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
}

func unknownAxis(a AxisType) error {
	return fmt.Errorf("%w: %d", ErrUnknownAxis, int(a))
}

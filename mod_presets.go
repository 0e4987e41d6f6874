package gizmo

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ObjectData is one manipulable object of a scene preset.
type ObjectData struct {
	Name         string         `yaml:"name,omitempty"`
	Position     [3]float32     `yaml:"position"`
	Rotation     [4]float32     `yaml:"rotation"` // w, x, y, z
	Scale        [3]float32     `yaml:"scale"`
	Collider     *ColliderData  `yaml:"collider,omitempty"`
	Restrictions []RestrictRule `yaml:"restrictions,omitempty"`
	Offset       *[3]float32    `yaml:"offset,omitempty"`
}

type ColliderData struct {
	Shape       string     `yaml:"shape"` // box or sphere
	Center      [3]float32 `yaml:"center"`
	HalfExtents [3]float32 `yaml:"half_extents,omitempty"`
	Radius      float32    `yaml:"radius,omitempty"`
}

type PresetData struct {
	Objects []ObjectData `yaml:"objects"`
}

// NameComponent labels preset objects.
type NameComponent struct {
	Name string
}

// SavePreset writes every object with a transform, skipping gizmo handles.
func SavePreset(cmd *Commands, filename string) error {
	var preset PresetData

	MakeQuery1[TransformComponent](cmd).Map(func(eid EntityId, tr *TransformComponent) bool {
		if HasComponent[HandleTag](cmd, eid) {
			return true
		}

		data := ObjectData{
			Position: tr.Position,
			Rotation: [4]float32{tr.Rotation.W, tr.Rotation.X(), tr.Rotation.Y(), tr.Rotation.Z()},
			Scale:    tr.Scale,
		}
		if name := GetComponent[NameComponent](cmd, eid); name != nil {
			data.Name = name.Name
		}
		if col := GetComponent[ColliderComponent](cmd, eid); col != nil {
			data.Collider = colliderData(col)
		}
		if restrictions := GetComponent[RestrictionsComponent](cmd, eid); restrictions != nil {
			data.Restrictions = restrictions.Rules
		}
		if offset := GetComponent[PositionOffsetComponent](cmd, eid); offset != nil {
			o := [3]float32(offset.Offset)
			data.Offset = &o
		}

		preset.Objects = append(preset.Objects, data)
		return true
	})

	bytes, err := yaml.Marshal(preset)
	if err != nil {
		return fmt.Errorf("marshal preset: %w", err)
	}
	if err := os.WriteFile(filename, bytes, 0644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}

// LoadPreset spawns the preset's objects. They become visible to queries
// after the current stage.
func LoadPreset(cmd *Commands, filename string) ([]EntityId, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	var preset PresetData
	if err := yaml.Unmarshal(bytes, &preset); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", filename, err)
	}

	// Validate everything before spawning anything.
	components := make([][]any, 0, len(preset.Objects))
	for i, data := range preset.Objects {
		comps, err := data.components()
		if err != nil {
			return nil, fmt.Errorf("preset %s object %d: %w", filename, i, err)
		}
		components = append(components, comps)
	}

	newEntities := make([]EntityId, 0, len(components))
	for _, comps := range components {
		newEntities = append(newEntities, cmd.AddEntity(comps...))
	}
	cmd.Logger().Debugf("loaded %d objects from %s", len(newEntities), filename)
	return newEntities, nil
}

func (data ObjectData) components() ([]any, error) {
	rotation := mgl32.QuatIdent()
	if data.Rotation != [4]float32{} {
		rotation = mgl32.Quat{W: data.Rotation[0], V: mgl32.Vec3{data.Rotation[1], data.Rotation[2], data.Rotation[3]}}.Normalize()
	}
	scale := mgl32.Vec3(data.Scale)
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}

	comps := []any{&TransformComponent{
		Position: data.Position,
		Rotation: rotation,
		Scale:    scale,
	}}

	if data.Name != "" {
		comps = append(comps, &NameComponent{Name: data.Name})
	}
	if data.Collider != nil {
		col, err := data.Collider.component()
		if err != nil {
			return nil, err
		}
		comps = append(comps, col)
	}
	if len(data.Restrictions) > 0 {
		comps = append(comps, &RestrictionsComponent{Rules: data.Restrictions})
	}
	if data.Offset != nil {
		comps = append(comps, &PositionOffsetComponent{Offset: *data.Offset})
	}
	return comps, nil
}

func colliderData(col *ColliderComponent) *ColliderData {
	data := &ColliderData{Center: col.Center}
	switch col.Shape {
	case ColliderBox:
		data.Shape = "box"
		data.HalfExtents = col.HalfExtents
	case ColliderSphere:
		data.Shape = "sphere"
		data.Radius = col.Radius
	}
	return data
}

func (data *ColliderData) component() (*ColliderComponent, error) {
	col := &ColliderComponent{Center: data.Center}
	switch data.Shape {
	case "box", "":
		col.Shape = ColliderBox
		col.HalfExtents = data.HalfExtents
	case "sphere":
		col.Shape = ColliderSphere
		col.Radius = data.Radius
	default:
		return nil, fmt.Errorf("unknown collider shape %q", data.Shape)
	}
	return col, nil
}

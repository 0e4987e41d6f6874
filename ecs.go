package gizmo

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// EntityId 0 is never allocated and means "no entity".
type EntityId uint64

type entity struct {
	id         EntityId
	components map[reflect.Type]any // pointers to structs
}

// Ecs stores entities in insertion order. Queries walk that order, which makes
// raycast and picking results deterministic.
type Ecs struct {
	entities    []*entity
	entityIndex map[EntityId]*entity

	idGeneratorLock sync.Mutex
	entityIdCounter EntityId
}

func MakeEcs() Ecs {
	return Ecs{
		entities:        make([]*entity, 0),
		entityIndex:     make(map[EntityId]*entity),
		entityIdCounter: EntityId(0),
	}
}

func (ecs *Ecs) addEntity(components ...any) EntityId {
	entityId := ecs.nextEntityId()
	return ecs.insertEntity(entityId, components...)
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	e := &entity{
		id:         entityId,
		components: make(map[reflect.Type]any, len(components)),
	}
	for _, component := range components {
		writeComponent(e, component)
	}

	ecs.entities = append(ecs.entities, e)
	ecs.entityIndex[entityId] = e
	return entityId
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	if _, ok := ecs.entityIndex[entityId]; !ok {
		return
	}
	delete(ecs.entityIndex, entityId)
	ecs.entities = slices.DeleteFunc(ecs.entities, func(e *entity) bool {
		return e.id == entityId
	})
}

func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	e, ok := ecs.entityIndex[entityId]
	if !ok {
		panic(fmt.Sprintf("entity %d does not exist", entityId))
	}
	for _, component := range components {
		writeComponent(e, component)
	}
}

func (ecs *Ecs) removeComponents(entityId EntityId, components ...any) {
	e, ok := ecs.entityIndex[entityId]
	if !ok {
		return
	}
	for _, component := range components {
		delete(e.components, componentType(component))
	}
}

func (ecs *Ecs) hasEntity(entityId EntityId) bool {
	_, ok := ecs.entityIndex[entityId]
	return ok
}

func (ecs *Ecs) component(entityId EntityId, t reflect.Type) any {
	e, ok := ecs.entityIndex[entityId]
	if !ok {
		return nil
	}
	return e.components[t]
}

// writeComponent keeps pointers as given, so callers holding the pointer see
// later mutations. Values are copied into fresh storage.
func writeComponent(e *entity, component any) {
	t := componentType(component)

	value := reflect.ValueOf(component)
	if value.Kind() == reflect.Pointer {
		e.components[t] = component
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(value)
	e.components[t] = ptr.Interface()
}

func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t == nil {
		panic("component should be a struct")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic("component should be a struct")
	}
	return t
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.idGeneratorLock.Lock()
	defer ecs.idGeneratorLock.Unlock()

	ecs.entityIdCounter += 1
	return ecs.entityIdCounter
}

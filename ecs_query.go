package gizmo

import (
	"reflect"
)

type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]             { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B]       { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] { return Query3[A, B, C]{ecs: cmd.app.ecs} }

// Map calls m for each matching entity in insertion order until m returns false.
func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	ta := reflect.TypeFor[A]()

	for _, e := range q.ecs.entities {
		a, ok := e.components[ta]
		if !ok {
			continue
		}
		if !m(e.id, a.(*A)) {
			return
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	ta, tb := reflect.TypeFor[A](), reflect.TypeFor[B]()

	for _, e := range q.ecs.entities {
		a, okA := e.components[ta]
		b, okB := e.components[tb]
		if !okA || !okB {
			continue
		}
		if !m(e.id, a.(*A), b.(*B)) {
			return
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool) {
	ta, tb, tc := reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()

	for _, e := range q.ecs.entities {
		a, okA := e.components[ta]
		b, okB := e.components[tb]
		c, okC := e.components[tc]
		if !okA || !okB || !okC {
			continue
		}
		if !m(e.id, a.(*A), b.(*B), c.(*C)) {
			return
		}
	}
}

// GetComponent returns the entity's component of type T, or nil.
func GetComponent[T any](cmd *Commands, eid EntityId) *T {
	return getComponent[T](cmd.app.ecs, eid)
}

func HasComponent[T any](cmd *Commands, eid EntityId) bool {
	return getComponent[T](cmd.app.ecs, eid) != nil
}

func getComponent[T any](ecs *Ecs, eid EntityId) *T {
	c := ecs.component(eid, reflect.TypeFor[T]())
	if c == nil {
		return nil
	}
	return c.(*T)
}

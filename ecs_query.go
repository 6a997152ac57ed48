package rigkit

import (
	"reflect"
)

// Typed entity queries over the scene store. Map visits matching entities
// in ascending id order and stops early when the visitor returns false.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]             { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B]       { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] { return Query3[A, B, C]{ecs: cmd.app.ecs} }

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	ta := typeOf[A]()

	for _, entityId := range q.ecs.order {
		ca, ok := q.ecs.getComponent(entityId, ta)
		if !ok {
			continue
		}
		if !m(entityId, ca.(*A)) {
			return
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	ta := typeOf[A]()
	tb := typeOf[B]()

	for _, entityId := range q.ecs.order {
		ca, ok := q.ecs.getComponent(entityId, ta)
		if !ok {
			continue
		}
		cb, ok := q.ecs.getComponent(entityId, tb)
		if !ok {
			continue
		}
		if !m(entityId, ca.(*A), cb.(*B)) {
			return
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool) {
	ta := typeOf[A]()
	tb := typeOf[B]()
	tc := typeOf[C]()

	for _, entityId := range q.ecs.order {
		ca, ok := q.ecs.getComponent(entityId, ta)
		if !ok {
			continue
		}
		cb, ok := q.ecs.getComponent(entityId, tb)
		if !ok {
			continue
		}
		cc, ok := q.ecs.getComponent(entityId, tc)
		if !ok {
			continue
		}
		if !m(entityId, ca.(*A), cb.(*B), cc.(*C)) {
			return
		}
	}
}

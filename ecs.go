package rigkit

import (
	"reflect"
	"slices"
)

type EntityId uint64

// Ecs is the flat entity/component store standing in for the host
// application's scene graph. Components are stored behind pointers so
// queries can mutate them in place. Entities are always enumerated in
// ascending id order, which keeps every query (including vertex-selection
// lookups) deterministic across runs.
type Ecs struct {
	entityIdCounter EntityId

	order      []EntityId
	components map[EntityId]map[reflect.Type]any
}

func MakeEcs() Ecs {
	return Ecs{
		entityIdCounter: EntityId(0),
		components:      make(map[EntityId]map[reflect.Type]any),
	}
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.entityIdCounter++
	return ecs.entityIdCounter
}

// componentType resolves the component key for a value or pointer.
func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func (ecs *Ecs) alive(entityId EntityId) bool {
	_, ok := ecs.components[entityId]
	return ok
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	if _, ok := ecs.components[entityId]; !ok {
		idx, _ := slices.BinarySearch(ecs.order, entityId)
		ecs.order = slices.Insert(ecs.order, idx, entityId)
		ecs.components[entityId] = make(map[reflect.Type]any)
	}
	for _, component := range components {
		ecs.writeComponent(entityId, component)
	}
	return entityId
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	if _, ok := ecs.components[entityId]; !ok {
		return
	}
	delete(ecs.components, entityId)
	if idx, found := slices.BinarySearch(ecs.order, entityId); found {
		ecs.order = slices.Delete(ecs.order, idx, idx+1)
	}
}

func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	if _, ok := ecs.components[entityId]; !ok {
		return
	}
	for _, component := range components {
		ecs.writeComponent(entityId, component)
	}
}

func (ecs *Ecs) removeComponents(entityId EntityId, components ...any) {
	byType, ok := ecs.components[entityId]
	if !ok {
		return
	}
	for _, component := range components {
		delete(byType, componentType(component))
	}
}

// writeComponent stores a component, normalizing values to pointers so
// callers may pass either &Comp{} or Comp{}.
func (ecs *Ecs) writeComponent(entityId EntityId, component any) {
	v := reflect.ValueOf(component)
	if v.Kind() != reflect.Pointer {
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		v = ptr
	}
	ecs.components[entityId][v.Type().Elem()] = v.Interface()
}

func (ecs *Ecs) getComponent(entityId EntityId, t reflect.Type) (any, bool) {
	byType, ok := ecs.components[entityId]
	if !ok {
		return nil, false
	}
	c, ok := byType[t]
	return c, ok
}

// allComponents returns dereferenced copies of every component on the
// entity, or nil when the entity is dead.
func (ecs *Ecs) allComponents(entityId EntityId) []any {
	byType, ok := ecs.components[entityId]
	if !ok {
		return nil
	}
	var res []any
	for _, c := range byType {
		res = append(res, reflect.ValueOf(c).Elem().Interface())
	}
	return res
}

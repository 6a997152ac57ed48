package rigkit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// ResolveLookAt determines the point every camera of a rig aims at. It
// never fails: each source that cannot deliver falls through to the next.
//
// Priority:
//  1. The first selected vertex of the active mesh object, when
//     UseSelectedVertex is set.
//  2. The indexed vertex of the named object, when ObjectName and
//     VertexIndex are both set.
//  3. The explicit LookAtX/Y/Z coordinates (origin by default).
func ResolveLookAt(cmd *Commands, cfg *RigConfig) mgl32.Vec3 {
	log := cmd.Logger()

	if cfg.UseSelectedVertex {
		if p, err := selectedVertexWorld(cmd); err == nil {
			return p
		} else {
			log.Debugf("look-at: selected vertex unavailable (%v), falling through", err)
		}
	}

	if cfg.ObjectName != "" && cfg.VertexIndex >= 0 {
		if p, err := namedVertexWorld(cmd, cfg.ObjectName, cfg.VertexIndex); err == nil {
			return p
		} else {
			log.Debugf("look-at: named vertex unavailable (%v), falling through", err)
		}
	}

	return mgl32.Vec3{cfg.LookAtX, cfg.LookAtY, cfg.LookAtZ}
}

// selectedVertexWorld returns the world position of the first selected
// vertex on the active object. "First" is the lowest selected index, so
// the result is stable no matter how the selection was accumulated.
func selectedVertexWorld(cmd *Commands) (mgl32.Vec3, error) {
	var (
		activeFound bool
		mesh        *MeshComponent
		transform   *TransformComponent
	)
	MakeQuery1[ActiveObjectComponent](cmd).Map(func(eid EntityId, _ *ActiveObjectComponent) bool {
		activeFound = true
		for _, c := range cmd.GetAllComponents(eid) {
			switch comp := c.(type) {
			case MeshComponent:
				mesh = &comp
			case TransformComponent:
				transform = &comp
			}
		}
		return false
	})

	if !activeFound {
		return mgl32.Vec3{}, errors.New("no active object")
	}
	if mesh == nil || transform == nil {
		return mgl32.Vec3{}, errors.New("active object is not a mesh")
	}
	if len(mesh.Selected) == 0 {
		return mgl32.Vec3{}, errors.New("no vertices selected")
	}

	idx := slices.Min(mesh.Selected)
	if idx < 0 || idx >= len(mesh.Vertices) {
		return mgl32.Vec3{}, fmt.Errorf("selected vertex %d out of range", idx)
	}

	return transform.Apply(mesh.Vertices[idx]), nil
}

// namedVertexWorld returns the world position of the indexed vertex on
// the named object.
func namedVertexWorld(cmd *Commands, objectName string, vertexIndex int) (mgl32.Vec3, error) {
	eid, ok := FindObjectByName(cmd, objectName)
	if !ok {
		return mgl32.Vec3{}, fmt.Errorf("object %q not found", objectName)
	}

	var (
		mesh      *MeshComponent
		transform *TransformComponent
	)
	for _, c := range cmd.GetAllComponents(eid) {
		switch comp := c.(type) {
		case MeshComponent:
			mesh = &comp
		case TransformComponent:
			transform = &comp
		}
	}
	if mesh == nil || transform == nil {
		return mgl32.Vec3{}, fmt.Errorf("object %q is not a mesh", objectName)
	}
	if vertexIndex < 0 || vertexIndex >= len(mesh.Vertices) {
		return mgl32.Vec3{}, fmt.Errorf("vertex index %d out of range for object %q", vertexIndex, objectName)
	}

	return transform.Apply(mesh.Vertices[vertexIndex]), nil
}

package rigkit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshComponent holds a mesh-like object's vertex positions in object
// space, plus the host's current vertex selection as indices into
// Vertices.
type MeshComponent struct {
	Vertices []mgl32.Vec3
	Selected []int
}

// ActiveObjectComponent marks the host's active object. At most one
// entity should carry it; when several do, the lowest entity id wins.
type ActiveObjectComponent struct{}

type NameComponent struct {
	Name string
}

// FindObjectByName returns the first (lowest-id) entity with the given
// name.
func FindObjectByName(cmd *Commands, name string) (EntityId, bool) {
	var (
		found  bool
		result EntityId
	)
	MakeQuery1[NameComponent](cmd).Map(func(eid EntityId, n *NameComponent) bool {
		if n.Name == name {
			result = eid
			found = true
			return false
		}
		return true
	})
	return result, found
}

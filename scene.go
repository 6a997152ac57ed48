package rigkit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SceneDef declares the initial state of a scene: the mesh objects a rig
// run can aim at. Tests and embedding applications use it to seed the
// world before the generator runs.
type SceneDef struct {
	Meshes []MeshObjectDef
}

// MeshObjectDef defines one named mesh object.
type MeshObjectDef struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Vertices []mgl32.Vec3
	Selected []int // selected vertex indices
	Active   bool  // marks the host's active object
}

// LoadScene iterates through the SceneDef and spawns entities.
func LoadScene(cmd *Commands, scene *SceneDef) []EntityId {
	var eids []EntityId
	for _, mesh := range scene.Meshes {
		eids = append(eids, spawnMeshObject(cmd, mesh))
	}
	return eids
}

func spawnMeshObject(cmd *Commands, def MeshObjectDef) EntityId {
	rotation := def.Rotation
	if rotation == (mgl32.Quat{}) {
		rotation = mgl32.QuatIdent()
	}
	scale := def.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}

	comps := []any{
		&NameComponent{Name: def.Name},
		&TransformComponent{
			Position: def.Position,
			Rotation: rotation,
			Scale:    scale,
		},
		&MeshComponent{
			Vertices: def.Vertices,
			Selected: def.Selected,
		},
	}
	if def.Active {
		comps = append(comps, &ActiveObjectComponent{})
	}

	return cmd.AddEntity(comps...)
}

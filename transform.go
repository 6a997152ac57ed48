package rigkit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransformComponent is an entity's world-space pose.
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Apply maps a point from the entity's local space to world space.
func (t *TransformComponent) Apply(local mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{
		local.X() * t.Scale.X(),
		local.Y() * t.Scale.Y(),
		local.Z() * t.Scale.Z(),
	}
	return t.Position.Add(t.Rotation.Rotate(scaled))
}

// Forward is the entity's local -Z axis in world space (GL camera
// convention).
func (t *TransformComponent) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// LocalTransformComponent is a pose relative to the entity's Parent.
type LocalTransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

type Parent struct {
	Entity EntityId
}

type HierarchyModule struct{}

func (HierarchyModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(TransformHierarchySystem).
			InStage(PostUpdate),
	)
}

// TransformHierarchySystem recomputes world transforms of parented
// entities from their parent's world transform and their local transform.
// Runs in passes so deeper hierarchies settle; stops as soon as a pass
// changes nothing.
func TransformHierarchySystem(cmd *Commands) {
	for pass := 0; pass < 8; pass++ {
		changed := false
		MakeQuery3[LocalTransformComponent, Parent, TransformComponent](cmd).Map(func(eid EntityId, local *LocalTransformComponent, parent *Parent, world *TransformComponent) bool {
			var parentWorld *TransformComponent
			for _, c := range cmd.GetAllComponents(parent.Entity) {
				if pw, ok := c.(TransformComponent); ok {
					parentWorld = &pw
					break
				}
			}
			if parentWorld == nil {
				return true
			}

			// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos)
			scaledLocalPos := mgl32.Vec3{
				local.Position.X() * parentWorld.Scale.X(),
				local.Position.Y() * parentWorld.Scale.Y(),
				local.Position.Z() * parentWorld.Scale.Z(),
			}
			newPos := parentWorld.Position.Add(parentWorld.Rotation.Rotate(scaledLocalPos))

			// WorldRot = ParentRot * LocalRot
			newRot := parentWorld.Rotation.Mul(local.Rotation).Normalize()

			// WorldScale = ParentScale * LocalScale
			newScale := mgl32.Vec3{
				parentWorld.Scale.X() * local.Scale.X(),
				parentWorld.Scale.Y() * local.Scale.Y(),
				parentWorld.Scale.Z() * local.Scale.Z(),
			}

			if newPos != world.Position || newRot != world.Rotation || newScale != world.Scale {
				world.Position = newPos
				world.Rotation = newRot
				world.Scale = newScale
				changed = true
			}
			return true
		})
		if !changed {
			break
		}
	}
}

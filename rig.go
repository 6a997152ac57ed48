package rigkit

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// RigTag links an entity to the generator run that created it.
type RigTag struct {
	Rig uuid.UUID
}

// CameraRigModule populates the scene with a ring of cameras and
// companion point lights, all aimed at a single resolved target.
//
// Rand may be set for reproducible placement; when nil, a wall-clock
// seeded source is used so each run gets fresh height variation.
type CameraRigModule struct {
	Config RigConfig
	Rand   *rand.Rand
}

func (m CameraRigModule) Install(app *App, cmd *Commands) {
	rng := m.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cfg := m.Config

	cmd.AddResources(&cfg, rng)
	app.UseSystem(
		System(BuildRigSystem).
			InStage(Startup),
	)
}

// BuildRigSystem runs the whole generation pass: optional scene cleanup,
// one look-at resolution, then camera/light assembly in index order, one
// pair per flush.
func BuildRigSystem(cmd *Commands, cfg *RigConfig, rng *rand.Rand) {
	log := cmd.Logger()
	rigID := uuid.New()

	if cfg.CleanScene {
		removed := RemoveCamerasAndLights(cmd)
		cmd.app.FlushCommands()
		log.Infof("rig %s: removed %d existing cameras and lights", rigID, removed)
	}

	target := ResolveLookAt(cmd, cfg)
	log.Infof("rig %s: placing %d cameras, radius %.2f, target (%.2f, %.2f, %.2f)",
		rigID, cfg.NumCameras, cfg.Radius, target.X(), target.Y(), target.Z())

	for i := 1; i <= cfg.NumCameras; i++ {
		spec := PlanCamera(i, cfg.NumCameras, cfg, target, rng)
		assembleCamera(cmd, spec, cfg, rigID)
		cmd.app.FlushCommands()
	}
}

// RemoveCamerasAndLights queues removal of every camera and light entity
// and returns how many were queued.
func RemoveCamerasAndLights(cmd *Commands) int {
	doomed := make(map[EntityId]struct{})
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, _ *CameraComponent) bool {
		doomed[eid] = struct{}{}
		return true
	})
	MakeQuery1[LightComponent](cmd).Map(func(eid EntityId, _ *LightComponent) bool {
		doomed[eid] = struct{}{}
		return true
	})
	for eid := range doomed {
		cmd.RemoveEntity(eid)
	}
	return len(doomed)
}

// assembleCamera realizes one CameraSpec: a camera entity plus a point
// light parented to it, offset along the camera's forward axis.
func assembleCamera(cmd *Commands, spec CameraSpec, cfg *RigConfig, rigID uuid.UUID) {
	camera := cmd.AddEntity(
		&NameComponent{Name: fmt.Sprintf("Camera_%d", spec.Index)},
		&TransformComponent{
			Position: spec.Position,
			Rotation: spec.Rotation,
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		&CameraComponent{Fov: 60, Near: 0.1, Far: 1000},
		&RigTag{Rig: rigID},
	)

	// The light's world pose is seeded directly so it is valid even before
	// the hierarchy system runs; afterwards the Parent link keeps it rigid
	// with the camera.
	lightWorld := spec.Position.Add(spec.Rotation.Rotate(spec.LightLocal))
	cmd.AddEntity(
		&NameComponent{Name: fmt.Sprintf("Light_%d", spec.Index)},
		&Parent{Entity: camera},
		&LocalTransformComponent{
			Position: spec.LightLocal,
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		&TransformComponent{
			Position: lightWorld,
			Rotation: spec.Rotation,
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		&LightComponent{
			Type:      LightTypePoint,
			Color:     [3]float32{1, 1, 1},
			Intensity: cfg.LightEnergy,
		},
		&RigTag{Rig: rigID},
	)
}

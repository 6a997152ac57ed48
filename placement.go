package rigkit

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraSpec is one planned camera of a rig: its ring position, the
// rotation aiming it at the target, and the companion light's offset in
// camera-local space.
type CameraSpec struct {
	Index      int // 1-based
	Position   mgl32.Vec3
	Rotation   mgl32.Quat
	LightLocal mgl32.Vec3
}

// Height is carried in z, so the ring lies in the xy plane and z is up.
var worldUp = mgl32.Vec3{0, 0, 1}

// PlanCamera computes the spec for camera index (1-based) of count.
// Cameras are spaced evenly around a circle of cfg.Radius; each gets an
// independent uniform height lift in [0, cfg.HeightVariation) from rng.
// A negative radius reflects the ring; a zero radius collapses it to a
// point above the origin.
func PlanCamera(index, count int, cfg *RigConfig, target mgl32.Vec3, rng *rand.Rand) CameraSpec {
	angle := float64(index-1) * (2 * math.Pi / float64(count))

	lift := float32(0)
	if cfg.HeightVariation > 0 {
		lift = rng.Float32() * cfg.HeightVariation
	}

	position := mgl32.Vec3{
		cfg.Radius * float32(math.Cos(angle)),
		cfg.Radius * float32(math.Sin(angle)),
		cfg.BaseHeight + lift,
	}

	return CameraSpec{
		Index:      index,
		Position:   position,
		Rotation:   LookAtRotation(position, target),
		LightLocal: mgl32.Vec3{0, 0, -cfg.LightOffset},
	}
}

// LookAtRotation returns the rotation that points a -Z-forward, +Y-up
// camera at eye toward target, with roll pinned by the world up axis.
// When eye coincides with target the orientation is undefined and the
// identity rotation is returned. When the view direction is vertical the
// up hint switches to +Y so the basis stays well formed.
func LookAtRotation(eye, target mgl32.Vec3) mgl32.Quat {
	direction := target.Sub(eye)
	if direction.Len() < 1e-6 {
		return mgl32.QuatIdent()
	}
	forward := direction.Normalize()

	up := worldUp
	right := forward.Cross(up)
	if right.Len() < 1e-6 {
		up = mgl32.Vec3{0, 1, 0}
		right = forward.Cross(up)
	}
	right = right.Normalize()
	up = right.Cross(forward).Normalize()

	m := mgl32.Ident4()
	m.SetCol(0, right.Vec4(0))
	m.SetCol(1, up.Vec4(0))
	m.SetCol(2, forward.Mul(-1).Vec4(0))

	return mgl32.Mat4ToQuat(m).Normalize()
}

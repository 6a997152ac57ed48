package rigkit

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
)

// LightComponent marks an entity as a light source. Pose lives in the
// entity's TransformComponent.
type LightComponent struct {
	Type      LightType
	Color     [3]float32 // RGB
	Intensity float32
	Range     float32 // For point/spot; 0 means unbounded
}

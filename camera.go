package rigkit

// CameraComponent marks an entity as a camera. Pose lives in the entity's
// TransformComponent; this carries lens parameters only.
type CameraComponent struct {
	Fov  float32 // vertical field of view, degrees
	Near float32
	Far  float32
}

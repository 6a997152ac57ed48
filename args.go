package rigkit

import (
	"github.com/spf13/pflag"
)

// RigConfig holds one generation run's parameters. It is built once by
// ParseArgs (or test setup) and not mutated afterwards.
type RigConfig struct {
	NumCameras      int
	Radius          float32
	BaseHeight      float32
	HeightVariation float32

	LookAtX float32
	LookAtY float32
	LookAtZ float32

	UseSelectedVertex bool
	ObjectName        string
	VertexIndex       int // -1 means unset

	LightEnergy float32
	LightOffset float32
	CleanScene  bool
}

// ParseArgs parses command line arguments into a RigConfig. Unknown and
// positional arguments are ignored, so the tool can be driven from host
// command lines that carry their own flags.
func ParseArgs(args []string) (*RigConfig, error) {
	fs := pflag.NewFlagSet("rigkit", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true

	cfg := &RigConfig{}
	fs.IntVar(&cfg.NumCameras, "num_cameras", 256, "number of cameras to place on the ring")
	fs.Float32Var(&cfg.Radius, "radius", 25.0, "radius of the circle the cameras are placed on")
	fs.Float32Var(&cfg.BaseHeight, "base_height", 3.0, "minimum camera height")
	fs.Float32Var(&cfg.HeightVariation, "height_variation", 30.0, "maximum random extra height per camera")

	fs.Float32Var(&cfg.LookAtX, "look_at_x", 0.0, "x coordinate of the look-at point")
	fs.Float32Var(&cfg.LookAtY, "look_at_y", 0.0, "y coordinate of the look-at point")
	fs.Float32Var(&cfg.LookAtZ, "look_at_z", 0.0, "z coordinate of the look-at point")

	fs.BoolVar(&cfg.UseSelectedVertex, "use_selected_vertex", false, "aim at the first selected vertex of the active mesh object")
	fs.StringVar(&cfg.ObjectName, "object_name", "", "object whose vertex is the look-at point")
	fs.IntVar(&cfg.VertexIndex, "vertex_index", -1, "vertex index in object_name to aim at")

	fs.Float32Var(&cfg.LightEnergy, "light_energy", 1000.0, "intensity of the companion point lights")
	fs.Float32Var(&cfg.LightOffset, "light_offset", 2.0, "light distance in front of each camera")
	fs.BoolVar(&cfg.CleanScene, "clean_scene", false, "remove existing cameras and lights first")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

package rigkit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// anchorScene seeds a scene with one active mesh ("Anchor") whose second
// vertex is selected, and one inert mesh ("Prop").
func anchorScene(t *testing.T) (*App, *Commands) {
	t.Helper()

	app := NewApp()
	cmd := app.Commands()

	LoadScene(cmd, &SceneDef{
		Meshes: []MeshObjectDef{
			{
				Name:     "Anchor",
				Position: mgl32.Vec3{10, 0, 0},
				Vertices: []mgl32.Vec3{{1, 2, 3}, {4, 5, 6}},
				Selected: []int{1},
				Active:   true,
			},
			{
				Name:     "Prop",
				Position: mgl32.Vec3{-5, 0, 0},
				Vertices: []mgl32.Vec3{{0, 0, 1}},
			},
		},
	})
	app.FlushCommands()

	return app, cmd
}

func TestResolveSelectedVertexWins(t *testing.T) {
	_, cmd := anchorScene(t)

	// All three sources are viable; the selection must win.
	cfg := &RigConfig{
		UseSelectedVertex: true,
		ObjectName:        "Anchor",
		VertexIndex:       0,
		LookAtX:           9, LookAtY: 9, LookAtZ: 9,
	}

	got := ResolveLookAt(cmd, cfg)
	want := mgl32.Vec3{14, 5, 6} // vertex 1 of Anchor, translated by (10, 0, 0)
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveNamedVertexWins(t *testing.T) {
	_, cmd := anchorScene(t)

	cfg := &RigConfig{
		ObjectName:  "Anchor",
		VertexIndex: 0,
		LookAtX:     9, LookAtY: 9, LookAtZ: 9,
	}

	got := ResolveLookAt(cmd, cfg)
	want := mgl32.Vec3{11, 2, 3}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveExplicitCoordinates(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	got := ResolveLookAt(cmd, &RigConfig{LookAtX: 1, LookAtY: 2, LookAtZ: 3, VertexIndex: -1})
	if got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("expected explicit coordinates, got %v", got)
	}

	got = ResolveLookAt(cmd, &RigConfig{VertexIndex: -1})
	if got != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("expected origin default, got %v", got)
	}
}

func TestResolveRotatedTransform(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	// 90 degrees around z maps local +x to world +y.
	LoadScene(cmd, &SceneDef{
		Meshes: []MeshObjectDef{{
			Name:     "Spinner",
			Position: mgl32.Vec3{0, 0, 5},
			Rotation: mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1}),
			Vertices: []mgl32.Vec3{{2, 0, 0}},
		}},
	})
	app.FlushCommands()

	got := ResolveLookAt(cmd, &RigConfig{ObjectName: "Spinner", VertexIndex: 0})
	want := mgl32.Vec3{0, 2, 5}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveFallThroughCases(t *testing.T) {
	fallback := mgl32.Vec3{7, 8, 9}

	cases := []struct {
		name  string
		scene *SceneDef
		cfg   RigConfig
	}{
		{
			name:  "no active object",
			scene: &SceneDef{},
			cfg:   RigConfig{UseSelectedVertex: true, VertexIndex: -1},
		},
		{
			name:  "active object has no selection",
			scene: &SceneDef{Meshes: []MeshObjectDef{{Name: "A", Vertices: []mgl32.Vec3{{0, 0, 0}}, Active: true}}},
			cfg:   RigConfig{UseSelectedVertex: true, VertexIndex: -1},
		},
		{
			name:  "selected index out of range",
			scene: &SceneDef{Meshes: []MeshObjectDef{{Name: "A", Vertices: []mgl32.Vec3{{0, 0, 0}}, Selected: []int{5}, Active: true}}},
			cfg:   RigConfig{UseSelectedVertex: true, VertexIndex: -1},
		},
		{
			name:  "named object not found",
			scene: &SceneDef{},
			cfg:   RigConfig{ObjectName: "Missing", VertexIndex: 0},
		},
		{
			name:  "named vertex out of range",
			scene: &SceneDef{Meshes: []MeshObjectDef{{Name: "A", Vertices: []mgl32.Vec3{{0, 0, 0}}}}},
			cfg:   RigConfig{ObjectName: "A", VertexIndex: 99},
		},
	}

	for _, tc := range cases {
		app := NewApp()
		cmd := app.Commands()
		LoadScene(cmd, tc.scene)
		app.FlushCommands()

		cfg := tc.cfg
		cfg.LookAtX, cfg.LookAtY, cfg.LookAtZ = fallback.X(), fallback.Y(), fallback.Z()

		got := ResolveLookAt(cmd, &cfg)
		if got != fallback {
			t.Errorf("%s: expected fall-through to %v, got %v", tc.name, fallback, got)
		}
	}
}

func TestResolveActiveObjectNotMesh(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	// An active object without mesh data cannot supply a vertex.
	cmd.AddEntity(
		&NameComponent{Name: "Empty"},
		&ActiveObjectComponent{},
	)
	app.FlushCommands()

	got := ResolveLookAt(cmd, &RigConfig{UseSelectedVertex: true, VertexIndex: -1, LookAtX: 3})
	if got != (mgl32.Vec3{3, 0, 0}) {
		t.Errorf("expected fall-through to explicit coordinates, got %v", got)
	}
}

func TestResolveDeterministicTieBreak(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	// Several selected vertices: the lowest index must win regardless of
	// the order the selection was recorded in.
	LoadScene(cmd, &SceneDef{
		Meshes: []MeshObjectDef{{
			Name:     "Multi",
			Vertices: []mgl32.Vec3{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}},
			Selected: []int{2, 0, 1},
			Active:   true,
		}},
	})
	app.FlushCommands()

	got := ResolveLookAt(cmd, &RigConfig{UseSelectedVertex: true, VertexIndex: -1})
	if got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("expected vertex 0, got %v", got)
	}
}

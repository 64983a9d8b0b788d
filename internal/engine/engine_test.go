package engine

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"solar-raster/internal/camera"
	"solar-raster/internal/config"
	"solar-raster/internal/mathutil"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/scene"
)

func testConfig(ss int) config.Config {
	cfg := config.Config{
		Width:        64,
		Height:       48,
		Supersample:  ss,
		Workers:      2,
		SphereStacks: 12,
		SphereSlices: 16,
		RingSegments: 24,
	}
	cfg.Resolve(config.Flags{})
	return cfg
}

func starOnly() *scene.System {
	return &scene.System{Bodies: []scene.Body{
		{Name: "Sun", Kind: pipeline.Star, Parent: -1, Scale: 1},
	}}
}

func lookAtOrigin() *camera.Orbit {
	cam := camera.New(45)
	cam.Focus(mathutil.Vec3{}, 5)
	return cam
}

func pixel(img *image.NRGBA, x, y int) [4]uint8 {
	i := img.PixOffset(x, y)
	return [4]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

func TestFrameDrawsStar(t *testing.T) {
	for _, ss := range []int{1, 2} {
		e, err := New(testConfig(ss), starOnly())
		if err != nil {
			t.Fatal(err)
		}
		img := e.Frame(0, lookAtOrigin(), Options{})
		if got := img.Bounds(); got.Dx() != 64 || got.Dy() != 48 {
			t.Fatalf("ss=%d: bounds = %v", ss, got)
		}
		if c := pixel(img, 32, 24); c[0] < 128 {
			t.Errorf("ss=%d: center = %v, want a lit star", ss, c)
		}
		if c := pixel(img, 0, 0); c != [4]uint8{0, 0, 0, 255} {
			t.Errorf("ss=%d: corner = %v, want background", ss, c)
		}
		st := e.Stats()
		if st.Bodies != 1 || st.Written == 0 {
			t.Errorf("ss=%d: stats = %+v", ss, st)
		}
		// A closed sphere shows roughly half its faces.
		if st.Culled == 0 || st.Culled >= st.Triangles {
			t.Errorf("ss=%d: culled %d of %d triangles", ss, st.Culled, st.Triangles)
		}
	}
}

func TestFrameWireframe(t *testing.T) {
	e, err := New(testConfig(1), starOnly())
	if err != nil {
		t.Fatal(err)
	}
	e.Frame(0, lookAtOrigin(), Options{Wireframe: true})
	st := e.Stats()
	if st.Written != 0 || st.Triangles == 0 {
		t.Errorf("wireframe stats = %+v", st)
	}
}

func TestFrameDefaultSystem(t *testing.T) {
	e, err := New(testConfig(1), scene.DefaultSystem())
	if err != nil {
		t.Fatal(err)
	}
	cam := camera.New(45)
	img := e.Frame(1.5, cam, Options{HUD: []string{"t=1.5"}})
	if e.Stats().Bodies == 0 {
		t.Fatal("no bodies drawn from the default pose")
	}
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 255 {
			t.Fatalf("pixel %d not opaque", i/4)
		}
	}
}

func TestFrameSkipsBodiesBehindCamera(t *testing.T) {
	e, err := New(testConfig(1), starOnly())
	if err != nil {
		t.Fatal(err)
	}
	// Eye at z=10 looking toward +z, away from the star at the origin.
	cam := camera.New(45)
	cam.Yaw, cam.Pitch = 180, 0
	cam.Target = mathutil.Vec3{0, 0, 20}
	cam.Distance = 10
	e.Frame(0, cam, Options{})
	if got := e.Stats().Bodies; got != 0 {
		t.Errorf("bodies drawn = %d, want 0", got)
	}
}

func TestFocus(t *testing.T) {
	e, err := New(testConfig(1), scene.DefaultSystem())
	if err != nil {
		t.Fatal(err)
	}
	cam := camera.New(45)
	if !e.Focus(cam, 2, 0) {
		t.Fatal("focus on Earth failed")
	}
	earth := e.System().Placements(0)[2]
	if cam.Target != earth.Position {
		t.Errorf("target = %v, want %v", cam.Target, earth.Position)
	}
	if e.Focus(cam, 99, 0) || e.Focus(cam, -1, 0) {
		t.Error("focus accepted an out-of-range index")
	}
}

func TestCenter(t *testing.T) {
	e, err := New(testConfig(1), starOnly())
	if err != nil {
		t.Fatal(err)
	}
	x, y, ok := e.Center(lookAtOrigin(), mathutil.Vec3{})
	if !ok || math.Abs(x-32) > 1e-6 || math.Abs(y-24) > 1e-6 {
		t.Errorf("center = (%v, %v, %v), want (32, 24, true)", x, y, ok)
	}
}

func near(a, b [4]uint8) bool {
	for i := range a {
		if d := int(a[i]) - int(b[i]); d < -1 || d > 1 {
			return false
		}
	}
	return true
}

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestBackdrop(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Nebula.png"), color.NRGBA{10, 20, 30, 255})

	cfg := testConfig(1)
	cfg.BackdropDir = dir
	cfg.Backdrop = "nebula"
	e, err := New(cfg, starOnly())
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Backdrops(); len(got) != 1 || got[0] != "nebula" {
		t.Errorf("backdrops = %v", got)
	}
	img := e.Frame(0, lookAtOrigin(), Options{})
	if c := pixel(img, 0, 0); !near(c, [4]uint8{10, 20, 30, 255}) {
		t.Errorf("corner = %v, want backdrop", c)
	}

	e.SelectBackdrop("")
	img = e.Frame(0, lookAtOrigin(), Options{})
	if c := pixel(img, 0, 0); c != [4]uint8{0, 0, 0, 255} {
		t.Errorf("corner after clear = %v", c)
	}
	if e.SelectBackdrop("missing") {
		t.Error("selected a missing backdrop")
	}
}

func TestNewErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"missing mesh", func(c *config.Config) { c.MeshOBJ = filepath.Join(dir, "none.obj") }},
		{"missing backdrop file", func(c *config.Config) { c.Backdrop = filepath.Join(dir, "none.png") }},
		{"unknown backdrop name", func(c *config.Config) { c.BackdropDir = dir; c.Backdrop = "nothing" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(1)
			tc.modify(&cfg)
			if _, err := New(cfg, starOnly()); err == nil {
				t.Error("expected error")
			}
		})
	}

	bad := &scene.System{Bodies: []scene.Body{{Name: "x", Parent: 0, Scale: 1}}}
	if _, err := New(testConfig(1), bad); err == nil {
		t.Error("expected error for invalid system")
	}
}

func TestPlanetMeshOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.obj")
	obj := `v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
f 1 2 3 4
f 5 8 7 6
f 1 5 6 2
f 2 6 7 3
f 3 7 8 4
f 5 1 4 8
`
	if err := os.WriteFile(path, []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(1)
	cfg.MeshOBJ = path
	sys := &scene.System{Bodies: []scene.Body{
		{Name: "Box", Kind: pipeline.Rocky, Parent: -1, Scale: 1},
	}}
	e, err := New(cfg, sys)
	if err != nil {
		t.Fatal(err)
	}
	e.Frame(0, lookAtOrigin(), Options{})
	if got := e.Stats().Triangles; got != 12 {
		t.Errorf("triangles = %d, want 12 from the cube", got)
	}
}

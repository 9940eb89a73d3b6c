package renderer

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/achilleasa/modelsnap/asset"
	"github.com/achilleasa/modelsnap/scene"
	"github.com/achilleasa/modelsnap/types"
)

func TestSnapshotRun(t *testing.T) {
	opts := Options{
		FrameW:       16,
		FrameH:       8,
		OutputPath:   filepath.Join(t.TempDir(), "snapshot.png"),
		FramesToSkip: 3,
	}
	eng := makeMockEngine(opts, 0xff)

	r, err := newSnapshot(unitCubeModel(), opts, eng)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		t.Fatal(err)
	}

	if eng.setupCalls != 1 {
		t.Fatalf("expected exactly one engine setup; got %d", eng.setupCalls)
	}
	if eng.readbacks != 1 {
		t.Fatalf("expected exactly one readback per run; got %d", eng.readbacks)
	}

	stats := r.Stats()
	if exp := opts.FramesToSkip + 1; stats.CapturedFrame != exp {
		t.Fatalf("expected capture on frame %d; got %d", exp, stats.CapturedFrame)
	}
	// One extra frame renders after the readback is issued.
	if exp := opts.FramesToSkip + 2; stats.FramesRendered != exp {
		t.Fatalf("expected %d rendered frames; got %d", exp, stats.FramesRendered)
	}

	f, err := os.Open(opts.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != int(opts.FrameW) || img.Bounds().Dy() != int(opts.FrameH) {
		t.Fatalf("expected a %dx%d snapshot; got %dx%d",
			opts.FrameW, opts.FrameH, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestSnapshotCameraAppliedEveryFrame(t *testing.T) {
	opts := Options{
		FrameW:       8,
		FrameH:       8,
		OutputPath:   filepath.Join(t.TempDir(), "snapshot.png"),
		FramesToSkip: 2,
	}
	eng := makeMockEngine(opts, 0x80)

	r, err := newSnapshot(unitCubeModel(), opts, eng)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		t.Fatal(err)
	}

	if eng.frames != int(r.Stats().FramesRendered) {
		t.Fatalf("expected %d engine render calls; got %d", r.Stats().FramesRendered, eng.frames)
	}
	for index, near := range eng.nearPlanes {
		if near != eng.nearPlanes[0] {
			t.Fatalf("[frame %d] expected the camera rig to be re-applied identically; got near %f vs %f",
				index, near, eng.nearPlanes[0])
		}
	}
}

func TestSnapshotOptionValidation(t *testing.T) {
	type spec struct {
		model  *asset.Model
		opts   Options
		expErr error
	}
	specs := []spec{
		{nil, Options{FrameW: 8, FrameH: 8, OutputPath: "out.png"}, ErrModelNotDefined},
		{unitCubeModel(), Options{FrameH: 8, OutputPath: "out.png"}, ErrInvalidFrameDims},
		{unitCubeModel(), Options{FrameW: 8, OutputPath: "out.png"}, ErrInvalidFrameDims},
		{unitCubeModel(), Options{FrameW: 8, FrameH: 8}, ErrMissingOutputPath},
	}

	for index, s := range specs {
		if _, err := newSnapshot(s.model, s.opts, makeMockEngine(s.opts, 0)); err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}
}

func TestSnapshotDegenerateModel(t *testing.T) {
	model := &asset.Model{
		MinBound: types.XYZ(-1, 0, -1),
		MaxBound: types.XYZ(1, 0, 1),
	}
	opts := Options{FrameW: 8, FrameH: 8, OutputPath: "out.png"}

	if _, err := newSnapshot(model, opts, makeMockEngine(opts, 0)); err != scene.ErrDegenerateBounds {
		t.Fatalf("expected ErrDegenerateBounds; got %v", err)
	}
}

func TestSnapshotEncoderFailureIsFatal(t *testing.T) {
	opts := Options{
		FrameW:       8,
		FrameH:       8,
		OutputPath:   "/nonexistent-dir/snapshot.png",
		FramesToSkip: 1,
	}
	eng := makeMockEngine(opts, 0)

	r, err := newSnapshot(unitCubeModel(), opts, eng)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err == nil {
		t.Fatal("expected the run to fail when the snapshot cannot be written")
	}
}

func unitCubeModel() *asset.Model {
	return &asset.Model{
		MinBound: types.XYZ(-1, -1, -1),
		MaxBound: types.XYZ(1, 1, 1),
	}
}

type mockEngine struct {
	opts Options
	fill uint8

	setupCalls int
	frames     int
	readbacks  int
	nearPlanes []float32
}

func makeMockEngine(opts Options, fill uint8) *mockEngine {
	return &mockEngine{opts: opts, fill: fill}
}

func (m *mockEngine) Setup(model *asset.Model, tf scene.FrameTransform) error {
	m.setupCalls++
	return nil
}

func (m *mockEngine) RenderFrame(cam *scene.Camera) {
	m.frames++
	m.nearPlanes = append(m.nearPlanes, cam.Near)
}

func (m *mockEngine) ReadPixels() []uint8 {
	m.readbacks++
	return bytes.Repeat([]uint8{m.fill}, int(m.opts.FrameW)*int(m.opts.FrameH)*3)
}

func (m *mockEngine) Close() {
}

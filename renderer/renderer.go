package renderer

import (
	"time"

	"github.com/achilleasa/modelsnap/asset"
	"github.com/achilleasa/modelsnap/log"
	"github.com/achilleasa/modelsnap/scene"
)

var logger = log.New("renderer")

type Renderer interface {
	// Render frames until the capture completes and write out the PNG.
	Render() error

	// Shutdown renderer and release the backend.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// snapshotRenderer drives a one-shot render-and-capture run: setup, then a
// single-threaded frame loop of pre-render (camera rig), render and
// post-render (capture gate) steps until the readback signal fires.
type snapshotRenderer struct {
	opts  Options
	model *asset.Model

	room   scene.Room
	tf     scene.FrameTransform
	camera *scene.Camera

	eng  engine
	gate *captureGate

	// Single-shot readback signal. The channel is buffered so the readback
	// goroutine can never block, and it is written to exactly once.
	captureSig chan error

	stats FrameStats
}

// Create a renderer that frames the model and captures a single PNG snapshot.
func NewSnapshot(model *asset.Model, opts Options) (Renderer, error) {
	return newSnapshot(model, opts, newAenoEngine(opts))
}

func newSnapshot(model *asset.Model, opts Options, eng engine) (*snapshotRenderer, error) {
	if model == nil {
		return nil, ErrModelNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrameDims
	}
	if opts.OutputPath == "" {
		return nil, ErrMissingOutputPath
	}
	if opts.CaptureTimeout == 0 {
		opts.CaptureTimeout = DefaultCaptureTimeout
	}

	room := scene.NewRoom(opts.Aspect())
	tf, err := scene.FrameModel(room, model.MinBound, model.MaxBound)
	if err != nil {
		return nil, err
	}

	return &snapshotRenderer{
		opts:       opts,
		model:      model,
		room:       room,
		tf:         tf,
		camera:     scene.NewCamera(opts.Aspect()),
		eng:        eng,
		gate:       newCaptureGate(opts.FramesToSkip),
		captureSig: make(chan error, 1),
	}, nil
}

func (r *snapshotRenderer) Render() error {
	if err := r.eng.Setup(r.model, r.tf); err != nil {
		return err
	}
	logger.Infof("framed model with scale %.3f at %v", r.tf.Scale, r.tf.Translation)

	start := time.Now()
	for {
		// The camera rig is re-applied on every pre-render step; engine
		// internals may touch camera state between frames.
		r.camera.Update(r.room, r.tf.RoomDepth)

		r.eng.RenderFrame(r.camera)
		r.stats.FramesRendered++

		if r.gate.Advance() {
			r.issueReadback()
		}

		if r.gate.Issued() && r.gate.Frame() > r.stats.CapturedFrame {
			// One more frame has rendered since the readback was
			// issued; now block until the signal fires.
			err := r.awaitCapture()
			r.stats.RenderTime = time.Since(start)
			return err
		}
	}
}

// Issue the single frame readback. The pixel copy happens synchronously
// against the settled frame; conversion and encoding run asynchronously and
// report through the capture signal.
func (r *snapshotRenderer) issueReadback() {
	logger.Notice("capturing frame")
	r.stats.CapturedFrame = r.gate.Frame()

	pixels := r.eng.ReadPixels()
	w := int(r.opts.FrameW)
	h := int(r.opts.FrameH)
	path := r.opts.OutputPath

	go func() {
		start := time.Now()
		err := writeSnapshot(path, w, h, w*3, pixels)
		r.stats.CaptureTime = time.Since(start)
		r.captureSig <- err
	}()
}

func (r *snapshotRenderer) awaitCapture() error {
	select {
	case err := <-r.captureSig:
		r.gate.Complete()
		if err != nil {
			return err
		}
		logger.Noticef("wrote snapshot to %s", r.opts.OutputPath)
		return nil
	case <-time.After(r.opts.CaptureTimeout):
		return ErrCaptureTimeout
	}
}

func (r *snapshotRenderer) Close() {
	r.eng.Close()
}

func (r *snapshotRenderer) Stats() FrameStats {
	return r.stats
}

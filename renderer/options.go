package renderer

import "time"

const (
	// Number of frames to let the engine settle before capturing. Transforms
	// and lighting applied at setup time need a few frames to stabilize
	// before the visible frame is representative.
	DefaultFramesToSkip = 10

	// How long to wait for the readback to complete before giving up.
	DefaultCaptureTimeout = 10 * time.Second
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Destination for the captured PNG.
	OutputPath string

	// Optional directory with environment images for ambient lighting.
	IBLDirectory string

	// Frames to render before the capture is issued.
	FramesToSkip uint32

	// Upper bound on the readback wait; zero selects the default.
	CaptureTimeout time.Duration
}

// Get the output aspect ratio.
func (o Options) Aspect() float32 {
	return float32(o.FrameW) / float32(o.FrameH)
}

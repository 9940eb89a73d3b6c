package renderer

import "time"

type FrameStats struct {
	// Total number of frames rendered before the run ended.
	FramesRendered uint32

	// The frame counter value when the readback was issued.
	CapturedFrame uint32

	// Total wall time spent in the render loop.
	RenderTime time.Duration

	// Time spent converting and encoding the captured pixels.
	CaptureTime time.Duration
}

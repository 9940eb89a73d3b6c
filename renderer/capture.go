package renderer

type captureState uint8

const (
	// Frames are still rendering; the engine has not settled yet.
	captureWaiting captureState = iota

	// The readback has been issued and its signal is pending.
	captureIssued

	// The readback signal fired; the run can shut down.
	captureDone
)

// The captureGate decides when the single frame readback fires. It is driven
// purely by a monotonically increasing frame counter; nothing can cancel or
// reset it once the readback has been issued.
type captureGate struct {
	state captureState
	frame uint32
	skip  uint32
}

func newCaptureGate(framesToSkip uint32) *captureGate {
	return &captureGate{skip: framesToSkip}
}

// Advance records a completed frame and reports whether the readback should
// be issued now. It returns true exactly once per run, on the frame where the
// counter reaches skip+1; the extra frame accounts for the double-buffered
// back buffer.
func (g *captureGate) Advance() bool {
	g.frame++
	if g.state == captureWaiting && g.frame == g.skip+1 {
		g.state = captureIssued
		return true
	}
	return false
}

// Issued reports whether the readback is in flight.
func (g *captureGate) Issued() bool {
	return g.state == captureIssued
}

// Complete marks the readback signal as received.
func (g *captureGate) Complete() {
	if g.state == captureIssued {
		g.state = captureDone
	}
}

// Done reports whether the run can shut down.
func (g *captureGate) Done() bool {
	return g.state == captureDone
}

// Frame returns the current frame counter value.
func (g *captureGate) Frame() uint32 {
	return g.frame
}

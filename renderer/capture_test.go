package renderer

import "testing"

func TestCaptureGateFiresOnce(t *testing.T) {
	gate := newCaptureGate(10)

	fired := 0
	firedAt := uint32(0)
	for frame := 0; frame < 100; frame++ {
		if gate.Advance() {
			fired++
			firedAt = gate.Frame()
		}
	}

	if fired != 1 {
		t.Fatalf("expected the gate to fire exactly once; fired %d times", fired)
	}
	if exp := uint32(11); firedAt != exp {
		t.Fatalf("expected the gate to fire on frame %d; fired on frame %d", exp, firedAt)
	}
}

func TestCaptureGateWaitsForSkippedFrames(t *testing.T) {
	gate := newCaptureGate(5)

	for frame := 0; frame < 5; frame++ {
		if gate.Advance() {
			t.Fatalf("gate fired while still waiting, on frame %d", gate.Frame())
		}
		if gate.Issued() || gate.Done() {
			t.Fatalf("unexpected gate state on frame %d", gate.Frame())
		}
	}
}

func TestCaptureGateTransitions(t *testing.T) {
	gate := newCaptureGate(0)

	// Completing before the readback is issued must be a no-op.
	gate.Complete()
	if gate.Done() {
		t.Fatal("expected gate not to be done before the readback was issued")
	}

	if !gate.Advance() {
		t.Fatal("expected gate with no skipped frames to fire on frame 1")
	}
	if !gate.Issued() {
		t.Fatal("expected gate to report an in-flight readback")
	}

	gate.Complete()
	if !gate.Done() {
		t.Fatal("expected gate to be done after completion")
	}

	// The counter keeps increasing but the gate never fires again.
	for frame := 0; frame < 10; frame++ {
		if gate.Advance() {
			t.Fatal("gate fired after completion")
		}
	}
}

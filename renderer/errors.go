package renderer

import "errors"

var (
	ErrInvalidFrameDims  = errors.New("renderer: frame dimensions must be positive")
	ErrMissingOutputPath = errors.New("renderer: no output path defined")
	ErrModelNotDefined   = errors.New("renderer: no model defined")
	ErrCaptureTimeout    = errors.New("renderer: timed out waiting for frame readback")
)

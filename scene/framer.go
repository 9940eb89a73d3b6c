package scene

import (
	"errors"

	"github.com/achilleasa/modelsnap/types"
)

// Returned by FrameModel when the model bounding box has a zero-sized axis.
// The upstream viewer divides by the axis size so a degenerate box would
// produce an infinite scale; we reject it instead.
var ErrDegenerateBounds = errors.New("scene: model bounding box has a zero-sized axis")

// A FrameTransform positions a model inside a room. The same uniform scale is
// applied on all axes so the model keeps its proportions.
type FrameTransform struct {
	// Uniform scale applied to the model root.
	Scale float32

	// Translation applied to the model root after scaling.
	Translation types.Vec3

	// The effective room depth used for camera placement. Tall models
	// shrink the depth to their larger horizontal extent so the camera can
	// move in closer.
	RoomDepth float32
}

// Fit a model bounding box inside the room. The scale is the smallest of the
// three per-axis room/model size ratios divided by the room padding, which
// guarantees the scaled model fits the room on every axis. The translation
// centers the scaled model on the room center.
func FrameModel(room Room, modelMin, modelMax types.Vec3) (FrameTransform, error) {
	modelSize := modelMax.Sub(modelMin)
	if modelSize.MinComponent() <= 0 {
		return FrameTransform{}, ErrDegenerateBounds
	}

	roomSize := room.Size()
	scale := roomSize.Div(modelSize).MinComponent() / RoomPaddingScale

	modelCenter := modelMin.Add(modelSize.Mul(0.5))
	translation := room.Center().Sub(modelCenter.Mul(scale))

	return FrameTransform{
		Scale:       scale,
		Translation: translation,
		RoomDepth:   roomDepth(roomSize, modelSize, scale),
	}, nil
}

// Pick the effective room depth. If the model is taller than it is wide or
// deep, the depth collapses to the scaled larger horizontal extent; otherwise
// the nominal room depth is used.
func roomDepth(roomSize, modelSize types.Vec3, scale float32) float32 {
	if modelSize[1] >= modelSize[0] && modelSize[1] >= modelSize[2] {
		larger := modelSize[0]
		if modelSize[2] > larger {
			larger = modelSize[2]
		}
		return larger * scale * RoomPaddingScale
	}

	depth := roomSize[2]
	if depth < 0 {
		depth = -depth
	}
	return depth
}

package scene

import "github.com/achilleasa/modelsnap/types"

const (
	// The fixed height of the virtual room models are framed in. This
	// matches the framing convention of the web-based model viewer so
	// snapshots and interactive views compose identically.
	FramedHeight = 10.0

	// Padding applied when fitting a model so it never touches the room
	// bounds.
	RoomPaddingScale = 1.01
)

// A Room is the axis-aligned volume that a model gets framed in. Its height is
// fixed; its width and depth are derived from the output aspect ratio.
type Room struct {
	Min types.Vec3
	Max types.Vec3
}

// Create the room volume for the given output aspect ratio.
func NewRoom(aspect float32) Room {
	halfWidth := aspect * FramedHeight / 2.0
	return Room{
		Min: types.XYZ(-halfWidth, 0, -halfWidth),
		Max: types.XYZ(halfWidth, FramedHeight, halfWidth),
	}
}

// Get the per-axis room size.
func (r Room) Size() types.Vec3 {
	return r.Max.Sub(r.Min)
}

// Get the room center.
func (r Room) Center() types.Vec3 {
	return r.Min.Add(r.Size().Mul(0.5))
}

// Get the room height.
func (r Room) Height() float32 {
	return r.Max[1] - r.Min[1]
}

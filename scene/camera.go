package scene

import (
	"math"

	"github.com/achilleasa/modelsnap/types"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Vertical field of view in degrees.
	DefaultFOV = 45.0

	// Fixed far plane distance.
	FarPlane = 100.0
)

// The camera type derives a perspective projection and pose from the room
// geometry. The camera never rotates; it sits on the room's vertical midline
// and looks down the negative z axis.
type Camera struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	Position types.Vec3

	projMat mgl32.Mat4
	viewMat mgl32.Mat4
}

func NewCamera(aspect float32) *Camera {
	return &Camera{
		FOV:     DefaultFOV,
		Aspect:  aspect,
		Far:     FarPlane,
		projMat: mgl32.Ident4(),
		viewMat: mgl32.Ident4(),
	}
}

// Recompute the projection and pose from the room geometry. The near plane is
// placed so the room height exactly fills the vertical field of view, and the
// camera backs off along z by half the effective room depth plus the near
// distance. Callers invoke this every pre-render step; the projection is
// cheap to rebuild and other engine state may have touched the camera since
// the previous frame.
func (c *Camera) Update(room Room, roomDepth float32) {
	halfFov := float64(c.FOV) / 2.0 * math.Pi / 180.0
	c.Near = (room.Height() / 2.0) / float32(math.Tan(halfFov))

	c.projMat = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)

	c.Position = types.XYZ(0, room.Height()/2.0, roomDepth/2.0+c.Near)
	c.viewMat = mgl32.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2])
}

// Get the combined view-projection matrix.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.projMat.Mul4(c.viewMat)
}

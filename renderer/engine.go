package renderer

import (
	"image"

	"github.com/achilleasa/modelsnap/asset"
	"github.com/achilleasa/modelsnap/scene"
	"github.com/achilleasa/modelsnap/types"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/netisu/aeno"
)

// The engine interface is implemented by the rasterization backend driving a
// snapshot run.
type engine interface {
	// Prepare the backend: apply the frame transform to the model and set
	// up lighting.
	Setup(model *asset.Model, tf scene.FrameTransform) error

	// Rasterize one frame with the supplied camera.
	RenderFrame(cam *scene.Camera)

	// Copy the current color buffer out as tightly packed RGB8 rows.
	ReadPixels() []uint8

	// Release backend resources.
	Close()
}

// aenoEngine rasterizes frames with the aeno software renderer.
type aenoEngine struct {
	opts Options
	ctx  *aeno.Context
	mesh *aeno.Mesh

	// Direction from a surface towards the sun light.
	sun aeno.Vector

	ambient    aeno.Color
	background aeno.Color
}

func newAenoEngine(opts Options) *aenoEngine {
	return &aenoEngine{
		opts: opts,
		ctx:  aeno.NewContext(int(opts.FrameW), int(opts.FrameH), nil),
	}
}

func (e *aenoEngine) Setup(model *asset.Model, tf scene.FrameTransform) error {
	// Scale first, then translate, like the web viewer frames its models.
	s := float64(tf.Scale)
	matrix := aeno.Scale(aeno.V(s, s, s)).Translate(vecToAeno(tf.Translation))
	model.Mesh.Transform(matrix)
	e.mesh = model.Mesh

	// An overhead white sun, plus an ambient term taken from the
	// environment images when available.
	e.sun = vecToAeno(types.XYZ(0, 1, 0).Normalize())
	ambient, background, err := loadEnvironment(e.opts.IBLDirectory)
	if err != nil {
		return err
	}
	e.ambient = ambient
	e.background = background
	return nil
}

func (e *aenoEngine) RenderFrame(cam *scene.Camera) {
	shader := aeno.NewPhongShader(matToAeno(cam.ViewProjection()), e.sun, vecToAeno(cam.Position),
		e.ambient, aeno.Color{R: 0.9, G: 0.9, B: 0.9, A: 1})

	e.ctx.ClearDepthBuffer()
	e.ctx.ClearColorBufferWith(e.background)
	e.ctx.Shader = shader
	e.ctx.DrawMesh(e.mesh, aeno.NewObject(e.mesh))
}

func (e *aenoEngine) ReadPixels() []uint8 {
	return packRGB(e.ctx.Image())
}

func (e *aenoEngine) Close() {
	e.mesh = nil
	e.ctx = nil
}

// Copy an image into tightly packed RGB8 rows, dropping alpha.
func packRGB(img image.Image) []uint8 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := make([]uint8, w*h*3)
	di := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out[di+0] = uint8(r >> 8)
			out[di+1] = uint8(g >> 8)
			out[di+2] = uint8(b >> 8)
			di += 3
		}
	}
	return out
}

func vecToAeno(v types.Vec3) aeno.Vector {
	return aeno.V(float64(v[0]), float64(v[1]), float64(v[2]))
}

// Convert a column-major mgl32 matrix into aeno's row-field representation.
func matToAeno(m mgl32.Mat4) aeno.Matrix {
	return aeno.Matrix{
		X00: float64(m.At(0, 0)), X01: float64(m.At(0, 1)), X02: float64(m.At(0, 2)), X03: float64(m.At(0, 3)),
		X10: float64(m.At(1, 0)), X11: float64(m.At(1, 1)), X12: float64(m.At(1, 2)), X13: float64(m.At(1, 3)),
		X20: float64(m.At(2, 0)), X21: float64(m.At(2, 1)), X22: float64(m.At(2, 2)), X23: float64(m.At(2, 3)),
		X30: float64(m.At(3, 0)), X31: float64(m.At(3, 1)), X32: float64(m.At(3, 2)), X33: float64(m.At(3, 3)),
	}
}

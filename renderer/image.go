package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Convert a tightly or loosely packed RGB8 buffer into a planar float32 image
// with each channel normalized to [0,1]. No gamma decode is applied; the
// captured pixels are already display-referred and the encoder expects them
// that way.
func normalizeRGB(w, h, stride int, src []uint8) []float32 {
	out := make([]float32, w*h*3)
	di := 0
	for y := 0; y < h; y++ {
		row := src[y*stride : y*stride+w*3]
		for x := 0; x < w*3; x++ {
			out[di] = float32(row[x]) / 255.0
			di++
		}
	}
	return out
}

// Encode a planar float32 image as an opaque PNG.
func encodePNG(w io.Writer, width, height int, pix []float32) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	si := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			di := img.PixOffset(x, y)
			img.Pix[di+0] = floatToByte(pix[si+0])
			img.Pix[di+1] = floatToByte(pix[si+1])
			img.Pix[di+2] = floatToByte(pix[si+2])
			img.Pix[di+3] = 0xff
			si += 3
		}
	}
	return png.Encode(w, img)
}

func floatToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// Convert a captured RGB8 buffer and write it out as a PNG. Exactly one file
// is written; encoder failures are fatal to the run.
func writeSnapshot(path string, w, h, stride int, rgb []uint8) error {
	pix := normalizeRGB(w, h, stride, rgb)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("renderer: could not create %s: %s", path, err)
	}
	defer f.Close()

	if err = encodePNG(f, w, h, pix); err != nil {
		return fmt.Errorf("renderer: could not encode %s: %s", path, err)
	}
	return nil
}

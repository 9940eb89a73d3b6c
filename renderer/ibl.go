package renderer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	_ "image/jpeg"
	_ "image/png"

	"github.com/netisu/aeno"
)

// Neutral studio values used when no environment images are supplied.
var (
	defaultAmbient    = aeno.Color{R: 0.25, G: 0.25, B: 0.25, A: 1}
	defaultBackground = aeno.Color{R: 0.95, G: 0.95, B: 0.95, A: 1}
)

// Derive the ambient light term and background color from the images in an
// IBL directory. The first decodable image wins: its mean color drives the
// ambient term and a horizon sample, yawed a quarter turn the way the web
// viewer orients its environment, becomes the background. An empty dir name
// selects the neutral defaults.
func loadEnvironment(dir string) (ambient, background aeno.Color, err error) {
	if dir == "" {
		return defaultAmbient, defaultBackground, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ambient, background, fmt.Errorf("renderer: could not read IBL directory %s: %s", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		env, err := decodeImage(filepath.Join(dir, name))
		if err != nil {
			logger.Debugf("skipping %s: %s", name, err)
			continue
		}

		bounds := env.Bounds()

		// Quarter turn around an equirectangular panorama lands a
		// quarter of the width from the left edge.
		sx := bounds.Min.X + bounds.Dx()/4
		sy := bounds.Min.Y + bounds.Dy()/2
		r, g, b, _ := env.At(sx, sy).RGBA()
		background = aeno.Color{
			R: float64(r) / 0xffff,
			G: float64(g) / 0xffff,
			B: float64(b) / 0xffff,
			A: 1,
		}

		return meanColor(env), background, nil
	}

	return ambient, background, fmt.Errorf("renderer: no decodable environment image in %s", dir)
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// Average an image down to a single color.
func meanColor(img image.Image) aeno.Color {
	bounds := img.Bounds()
	var sumR, sumG, sumB float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += float64(r)
			sumG += float64(g)
			sumB += float64(b)
		}
	}

	texels := float64(bounds.Dx() * bounds.Dy())
	if texels == 0 {
		return defaultAmbient
	}
	scaler := 1.0 / (texels * 0xffff)
	return aeno.Color{R: sumR * scaler, G: sumG * scaler, B: sumB * scaler, A: 1}
}

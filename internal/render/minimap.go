package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"roguelike3d/internal/biome"
	"roguelike3d/internal/gamemap"
)

// MinimapScale is the default number of pixels per tile.
const MinimapScale = 10

// Minimap rasterizes the grid top-down, drawing each tile's symbol in its
// biome colour. Void tiles stay transparent.
func Minimap(grid *gamemap.Grid, b *biome.Biome, scale int) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, errors.New("minimap: scale must be positive")
	}
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("minimap font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(scale),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("minimap face: %w", err)
	}
	defer face.Close()

	img := image.NewRGBA(image.Rect(0, 0, grid.Width*scale, grid.Height*scale))
	descent := face.Metrics().Descent.Ceil()
	d := &font.Drawer{Dst: img, Face: face}
	for z := 0; z < grid.Height; z++ {
		for x := 0; x < grid.Width; x++ {
			sym := grid.At(x, z).Symbol
			if sym == gamemap.Void {
				continue
			}
			d.Src = image.NewUniform(b.Colour(sym))
			d.Dot = fixed.P(x*scale, (z+1)*scale-descent)
			d.DrawString(string(sym))
		}
	}
	return img, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteMinimap renders the minimap and saves it as a PNG file.
func WriteMinimap(path string, grid *gamemap.Grid, b *biome.Biome, scale int) error {
	img, err := Minimap(grid, b, scale)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("minimap: %w", err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("minimap encode: %w", err)
	}
	return f.Close()
}

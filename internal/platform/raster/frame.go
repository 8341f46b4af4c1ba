// Package raster strokes simulation shapes onto an image with gg, for
// headless frame export.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-roids/internal/games/roids/sim"
)

// Options controls frame size and colours.
type Options struct {
	Width, Height  int     // output pixels
	WorldW, WorldH float64 // world extent mapped onto the image
	LineWidth      float64
	Background     color.Color
	Ship           color.Color
	Asteroid       color.Color
	Shot           color.Color
}

// DefaultOptions maps the world one unit per pixel on a dark background.
func DefaultOptions(worldW, worldH float64) Options {
	return Options{
		Width:      int(worldW),
		Height:     int(worldH),
		WorldW:     worldW,
		WorldH:     worldH,
		LineWidth:  2,
		Background: color.RGBA{12, 12, 28, 255},
		Ship:       color.RGBA{120, 220, 255, 255},
		Asteroid:   color.RGBA{200, 200, 210, 255},
		Shot:       color.RGBA{255, 220, 80, 255},
	}
}

func (o Options) strokeColor(k sim.Kind) color.Color {
	switch k {
	case sim.KindShip:
		return o.Ship
	case sim.KindShot:
		return o.Shot
	default:
		return o.Asteroid
	}
}

// Draw renders the shapes into a new image.
func Draw(shapes []sim.Shape, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.WorldW <= 0 || opts.WorldH <= 0 {
		return nil, fmt.Errorf("raster: invalid frame %dx%d for world %vx%v", opts.Width, opts.Height, opts.WorldW, opts.WorldH)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(opts.Background)
	dc.DrawRectangle(0, 0, float64(opts.Width), float64(opts.Height))
	dc.Fill()

	sx := float64(opts.Width) / opts.WorldW
	sy := float64(opts.Height) / opts.WorldH
	dc.SetLineWidth(opts.LineWidth)

	for _, shape := range shapes {
		pts := shape.Points
		if len(pts) < 2 {
			continue
		}
		dc.SetColor(opts.strokeColor(shape.Kind))
		for i := 0; i < len(pts)-1; i++ {
			dc.DrawLine(pts[i].X*sx, pts[i].Y*sy, pts[i+1].X*sx, pts[i+1].Y*sy)
		}
		if shape.Closed {
			last := pts[len(pts)-1]
			dc.DrawLine(last.X*sx, last.Y*sy, pts[0].X*sx, pts[0].Y*sy)
		}
		dc.Stroke()
	}

	return dc.Image(), nil
}

// EncodePNG renders the shapes and writes them to w as PNG.
func EncodePNG(w io.Writer, shapes []sim.Shape, opts Options) error {
	img, err := Draw(shapes, opts)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}
	return nil
}

// SavePNG renders the shapes to a PNG file at path.
func SavePNG(path string, shapes []sim.Shape, opts Options) error {
	img, err := Draw(shapes, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

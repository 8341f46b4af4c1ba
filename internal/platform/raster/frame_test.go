package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-roids/internal/affine"
	"github.com/vovakirdan/tui-roids/internal/games/roids/sim"
)

func sameRGB(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar == br && ag == bg && ab == bb
}

func testShapes() []sim.Shape {
	return []sim.Shape{{
		Kind: sim.KindShip,
		Points: affine.Polygon{
			affine.Point(100, 60),
			affine.Point(93, 40),
			affine.Point(107, 40),
		},
		Closed: true,
	}}
}

func TestDraw(t *testing.T) {
	opts := DefaultOptions(200, 100)
	img, err := Draw(testShapes(), opts)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("bounds = %v, want 200x100", b)
	}
	if !sameRGB(img.At(5, 5), opts.Background) {
		t.Errorf("corner pixel = %v, want background", img.At(5, 5))
	}
	// The closing edge runs along y = 40.
	if sameRGB(img.At(100, 40), opts.Background) {
		t.Error("outline pixel not stroked")
	}
}

func TestDrawScalesWorld(t *testing.T) {
	opts := DefaultOptions(200, 100)
	opts.Width, opts.Height = 400, 200

	img, err := Draw(testShapes(), opts)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if sameRGB(img.At(200, 80), opts.Background) {
		t.Error("scaled outline pixel not stroked")
	}
}

func TestDrawInvalid(t *testing.T) {
	opts := DefaultOptions(0, 0)
	if _, err := Draw(nil, opts); err == nil {
		t.Error("expected error for empty frame")
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, testShapes(), DefaultOptions(200, 100)); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("width = %d, want 200", img.Bounds().Dx())
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(path, testShapes(), DefaultOptions(200, 100)); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("frame not written: %v", err)
	}
}

package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-roids/internal/affine"
)

func assertPoints(t *testing.T, got affine.Polygon, want [][2]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i, w := range want {
		if !approx(got[i].X, w[0]) || !approx(got[i].Y, w[1]) {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, got[i].X, got[i].Y, w[0], w[1])
		}
	}
}

func TestShapeOfShip(t *testing.T) {
	cfg := testConfig()
	ship := Entity{Kind: KindShip, Position: affine.Point(100, 50)}

	s := ShapeOf(ship, cfg)
	if s.Kind != KindShip || !s.Closed {
		t.Fatalf("shape = %+v, want closed ship", s)
	}
	assertPoints(t, s.Points, [][2]float64{{100, 60}, {93, 40}, {107, 40}})
}

func TestShapeOfRotatesBeforeTranslating(t *testing.T) {
	cfg := testConfig()
	ship := Entity{Kind: KindShip, Position: affine.Point(100, 50), Angle: math.Pi / 2}

	s := ShapeOf(ship, cfg)
	// Nose (0,10) turned by π/2 lands at (+10, 0) relative to the ship.
	if !approx(s.Points[0].X, 110) || !approx(s.Points[0].Y, 50) {
		t.Errorf("nose = (%v, %v), want (110, 50)", s.Points[0].X, s.Points[0].Y)
	}
}

func TestShapeOfAsteroidScalesTemplateOnly(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		radius float64
		want   [2]float64 // first template point (0,20) in world space
	}{
		{20, [2]float64{300, 220}},
		{10, [2]float64{300, 210}},
		{5, [2]float64{300, 205}},
	}

	for _, tt := range tests {
		a := rock(300, 200, tt.radius)
		s := ShapeOf(a, cfg)
		if len(s.Points) != len(asteroidTemplate) || !s.Closed {
			t.Fatalf("radius %v: got %d points closed=%v", tt.radius, len(s.Points), s.Closed)
		}
		if !approx(s.Points[0].X, tt.want[0]) || !approx(s.Points[0].Y, tt.want[1]) {
			t.Errorf("radius %v: first point = (%v, %v), want %v", tt.radius, s.Points[0].X, s.Points[0].Y, tt.want)
		}
		for i, p := range s.Points {
			if p.W != 1 {
				t.Errorf("radius %v: point %d W = %v", tt.radius, i, p.W)
			}
		}
	}
}

func TestShapeOfShot(t *testing.T) {
	cfg := testConfig()
	shot := stillShot(5, 5, 10)
	shot.Angle = math.Pi / 2

	s := ShapeOf(shot, cfg)
	if s.Kind != KindShot || s.Closed {
		t.Fatalf("shape = %+v, want open shot segment", s)
	}
	assertPoints(t, s.Points, [][2]float64{{5, 5}, {9, 5}})
}

func TestShapeOfLeavesTemplatesIntact(t *testing.T) {
	cfg := testConfig()
	before := append(affine.Polygon(nil), asteroidTemplate...)
	ShapeOf(rock(10, 10, 5), cfg)
	for i := range before {
		if before[i] != asteroidTemplate[i] {
			t.Fatalf("template point %d mutated", i)
		}
	}
}

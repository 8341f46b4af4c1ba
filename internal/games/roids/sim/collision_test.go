package sim

import (
	"testing"

	"github.com/vovakirdan/tui-roids/internal/affine"
)

func circle(x, y, r float64) Entity {
	return Entity{Position: affine.Point(x, y), CollisionRadius: r}
}

func TestIsCollided(t *testing.T) {
	tests := []struct {
		name string
		a, b Entity
		want bool
	}{
		{"overlapping", circle(0, 0, 3), circle(4, 0, 3), true},
		{"apart", circle(0, 0, 3), circle(10, 0, 3), false},
		// 25 is under (3+3)² = 36 but not under 3² + 3² = 18.
		{"squared radii, not summed", circle(0, 0, 3), circle(5, 0, 3), false},
		{"exact boundary is not a hit", circle(0, 0, 3), circle(3, 4, 4), false},
		{"just inside boundary", circle(0, 0, 3), circle(3, 3.99, 4), true},
		{"same centre", circle(50, 50, 1), circle(50, 50, 1), true},
		{"no wrap-around distance", circle(1, 300, 5), circle(799, 300, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCollided(tt.a, tt.b, 800, 600); got != tt.want {
				t.Errorf("IsCollided = %v, want %v", got, tt.want)
			}
			if got := IsCollided(tt.b, tt.a, 800, 600); got != tt.want {
				t.Errorf("IsCollided reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrappedPosition(t *testing.T) {
	tests := []struct {
		name         string
		e            Entity
		wantX, wantY float64
	}{
		{"inside", circle(100, 100, 5), 100, 100},
		{"x past edge beyond radius", circle(810, 100, 5), 10, 100},
		{"x past edge within radius", circle(803, 100, 5), 803, 100},
		// Each axis corrects its own coordinate: a y overflow never moves x.
		{"y past edge beyond radius", circle(100, 610, 5), 100, 10},
		{"both axes", circle(810, 610, 5), 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := WrappedPosition(tt.e, 800, 600)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("WrappedPosition = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestIsCollidedUsesWrappedPosition(t *testing.T) {
	overflow := circle(100, 610, 5)
	near := circle(100, 12, 5)
	if !IsCollided(overflow, near, 800, 600) {
		t.Error("expected hit after wrapping y")
	}
}

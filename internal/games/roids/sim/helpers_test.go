package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-roids/internal/affine"
	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func testConfig() config.RoidsConfig {
	return config.DefaultRoidsConfig()
}

// newQuietState builds a state and swaps the random wave for the given asteroids.
func newQuietState(t *testing.T, asteroids ...Entity) *State {
	t.Helper()
	s, err := New(testConfig(), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Asteroids = asteroids
	return s
}

func rock(x, y, r float64) Entity {
	return Entity{
		Kind:            KindAsteroid,
		Position:        affine.Point(x, y),
		Velocity:        affine.Point(0, 0),
		CollisionRadius: r,
	}
}

func stillShot(x, y float64, ttl int) Entity {
	return Entity{
		Kind:            KindShot,
		Position:        affine.Point(x, y),
		Velocity:        affine.Point(0, 0),
		CollisionRadius: 1,
		TTL:             ttl,
	}
}

func frame(events ...core.Event) core.InputFrame {
	in := core.NewInputFrame()
	for _, e := range events {
		in.Push(e)
	}
	return in
}

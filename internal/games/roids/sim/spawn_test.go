package sim

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-roids/internal/affine"
)

func TestSpawnAsteroids(t *testing.T) {
	cfg := testConfig()
	ac := cfg.Asteroids
	zone := ExclusionZone(affine.Point(400, 300), ac.ExclusionRadius)

	for _, seed := range []int64{1, 7, 42, 1234} {
		rng := rand.New(rand.NewSource(seed))
		rocks, err := SpawnAsteroids(rng, ac.Initial, zone, cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(rocks) != ac.Initial {
			t.Fatalf("seed %d: got %d asteroids, want %d", seed, len(rocks), ac.Initial)
		}

		for i, a := range rocks {
			if a.Kind != KindAsteroid || a.CollisionRadius != ac.Radius {
				t.Errorf("seed %d #%d: kind %v radius %v", seed, i, a.Kind, a.CollisionRadius)
			}
			if IsCollided(a, zone, cfg.World.Width, cfg.World.Height) {
				t.Errorf("seed %d #%d: spawned inside exclusion zone at (%v, %v)", seed, i, a.Position.X, a.Position.Y)
			}
			if a.Position.X < 0 || a.Position.X >= cfg.World.Width || a.Position.Y < 0 || a.Position.Y >= cfg.World.Height {
				t.Errorf("seed %d #%d: position (%v, %v) outside world", seed, i, a.Position.X, a.Position.Y)
			}
			speed := math.Hypot(a.Velocity.X, a.Velocity.Y)
			if speed < ac.SpeedMin-eps || speed >= ac.SpeedMax+eps {
				t.Errorf("seed %d #%d: speed %v outside [%v, %v)", seed, i, speed, ac.SpeedMin, ac.SpeedMax)
			}
			if a.Angle < ac.AngleMin || a.Angle >= ac.AngleMax {
				t.Errorf("seed %d #%d: angle %v outside [%v, %v)", seed, i, a.Angle, ac.AngleMin, ac.AngleMax)
			}
			if a.AngleSpeed < ac.SpinMin || a.AngleSpeed >= ac.SpinMax {
				t.Errorf("seed %d #%d: spin %v outside [%v, %v)", seed, i, a.AngleSpeed, ac.SpinMin, ac.SpinMax)
			}
			if a.Acceleration != 0 {
				t.Errorf("seed %d #%d: asteroid has thrust %v", seed, i, a.Acceleration)
			}
		}
	}
}

func TestSpawnAsteroidsZero(t *testing.T) {
	cfg := testConfig()
	rocks, err := SpawnAsteroids(rand.New(rand.NewSource(1)), 0, ExclusionZone(affine.Point(0, 0), 10), cfg)
	if err != nil || len(rocks) != 0 {
		t.Errorf("got %d asteroids, err %v; want none", len(rocks), err)
	}
}

func TestSpawnAsteroidsExhausted(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.MaxAttempts = 5
	// Covers the whole world, so every candidate is rejected.
	zone := ExclusionZone(affine.Point(400, 300), 5000)

	rocks, err := SpawnAsteroids(rand.New(rand.NewSource(1)), 3, zone, cfg)
	if !errors.Is(err, ErrSpawnExhausted) {
		t.Fatalf("err = %v, want ErrSpawnExhausted", err)
	}
	if len(rocks) != 0 {
		t.Errorf("got %d asteroids, want 0", len(rocks))
	}
}

func TestSpawnAsteroidsDeterministic(t *testing.T) {
	cfg := testConfig()
	zone := ExclusionZone(affine.Point(400, 300), cfg.Asteroids.ExclusionRadius)

	a, _ := SpawnAsteroids(rand.New(rand.NewSource(99)), 6, zone, cfg)
	b, _ := SpawnAsteroids(rand.New(rand.NewSource(99)), 6, zone, cfg)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("asteroid %d differs between runs with the same seed", i)
		}
	}
}

func TestSplit(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(3))

	parent := rock(100, 100, 20)
	parent.Velocity = affine.Point(1, 0)

	children := Split(rng, parent, cfg)
	if len(children) != cfg.Asteroids.SplitCount {
		t.Fatalf("got %d children, want %d", len(children), cfg.Asteroids.SplitCount)
	}

	wantHeadings := []float64{math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi}
	seen := make(map[float64]bool)
	for i, c := range children {
		if c.CollisionRadius != 10 {
			t.Errorf("child %d radius = %v, want 10", i, c.CollisionRadius)
		}
		if c.Position != parent.Position {
			t.Errorf("child %d position = %+v, want parent's", i, c.Position)
		}
		if !approx(c.Angle, wantHeadings[i]) {
			t.Errorf("child %d heading = %v, want %v", i, c.Angle, wantHeadings[i])
		}
		if seen[c.Angle] {
			t.Errorf("child %d repeats heading %v", i, c.Angle)
		}
		seen[c.Angle] = true

		kx := c.Velocity.X - parent.Velocity.X
		ky := c.Velocity.Y - parent.Velocity.Y
		if !approx(math.Hypot(kx, ky), cfg.Asteroids.SplitKick) {
			t.Errorf("child %d kick magnitude = %v, want %v", i, math.Hypot(kx, ky), cfg.Asteroids.SplitKick)
		}
		for _, v := range []float64{c.Velocity.X, c.Velocity.Y, c.Angle, c.AngleSpeed} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("child %d has non-finite field: %+v", i, c)
			}
		}
	}

	// Heading π/2 kicks along +x.
	if !approx(children[0].Velocity.X, 1.5) || !approx(children[0].Velocity.Y, 0) {
		t.Errorf("first child velocity = (%v, %v), want (1.5, 0)", children[0].Velocity.X, children[0].Velocity.Y)
	}
}

func TestSplitThreshold(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		radius float64
		want   int
	}{
		{40, 4},
		{20, 4},
		{10, 4}, // at the threshold still splits
		{9.99, 0},
		{5, 0},
	}
	for _, tt := range tests {
		if got := len(Split(rng, rock(50, 50, tt.radius), cfg)); got != tt.want {
			t.Errorf("Split(radius %v) = %d children, want %d", tt.radius, got, tt.want)
		}
	}
}

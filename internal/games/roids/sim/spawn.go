package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-roids/internal/affine"
	"github.com/vovakirdan/tui-roids/internal/config"
)

// ErrSpawnExhausted is returned when rejection sampling cannot place the
// requested asteroids outside the exclusion zone.
var ErrSpawnExhausted = errors.New("sim: spawn attempts exhausted")

// SpawnAsteroids places n asteroids uniformly in the world, rejecting any
// candidate that collides with exclusion. Attempts are capped at
// n * cfg.Asteroids.MaxAttempts; on exhaustion the asteroids placed so far
// are returned with a wrapped ErrSpawnExhausted.
func SpawnAsteroids(rng *rand.Rand, n int, exclusion Entity, cfg config.RoidsConfig) ([]Entity, error) {
	worldW, worldH := cfg.World.Width, cfg.World.Height
	ac := cfg.Asteroids

	placed := make([]Entity, 0, n)
	maxAttempts := n * ac.MaxAttempts

	for attempts := 0; len(placed) < n; attempts++ {
		if attempts >= maxAttempts {
			return placed, fmt.Errorf("%w: placed %d of %d after %d attempts", ErrSpawnExhausted, len(placed), n, attempts)
		}

		x := wrapAxis(rng.Float64()*worldW, worldW)
		y := wrapAxis(rng.Float64()*worldH, worldH)
		speed := uniform(rng, ac.SpeedMin, ac.SpeedMax)
		direction := rng.Float64() * fullTurn

		candidate := Entity{
			Kind:            KindAsteroid,
			Position:        affine.Point(x, y),
			Velocity:        alongHeading(direction, speed),
			CollisionRadius: ac.Radius,
		}
		if IsCollided(candidate, exclusion, worldW, worldH) {
			continue
		}

		candidate.Angle = uniform(rng, ac.AngleMin, ac.AngleMax)
		candidate.AngleSpeed = uniform(rng, ac.SpinMin, ac.SpinMax)
		placed = append(placed, candidate)
	}

	return placed, nil
}

// ExclusionZone returns a collision-only entity centred on pos.
func ExclusionZone(pos affine.Vec3, radius float64) Entity {
	return Entity{
		Kind:            KindShip,
		Position:        affine.Point(pos.X, pos.Y),
		CollisionRadius: radius,
	}
}

// Split fragments a hit asteroid. At or above the split threshold it
// returns cfg.Asteroids.SplitCount children at the parent position with
// half the radius; below it returns nil.
//
// Child i heads along 2π·(i+1)/count: the fan counter starts at one so no
// child ever gets a zero divisor, and the last child points along 2π.
func Split(rng *rand.Rand, parent Entity, cfg config.RoidsConfig) []Entity {
	ac := cfg.Asteroids
	if parent.CollisionRadius < ac.SplitThreshold {
		return nil
	}

	children := make([]Entity, 0, ac.SplitCount)
	for i := 0; i < ac.SplitCount; i++ {
		heading := fanHeading(i, ac.SplitCount)
		children = append(children, Entity{
			Kind:            KindAsteroid,
			Position:        parent.Position,
			Velocity:        parent.Velocity.AddXY(alongHeading(heading, ac.SplitKick)),
			Angle:           heading,
			AngleSpeed:      uniform(rng, ac.SpinMin, ac.SpinMax),
			CollisionRadius: parent.CollisionRadius / 2,
		})
	}
	return children
}

func fanHeading(i, count int) float64 {
	return fullTurn * float64(i+1) / float64(count)
}

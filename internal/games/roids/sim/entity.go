// Package sim is the simulation core of the asteroids game: kinematics,
// toroidal wrap, shape generation, collision, spawning/splitting and the
// projectile lifecycle. It has no rendering or terminal dependencies; hosts
// feed it core.InputFrame values and stroke the shapes it returns.
//
// A State is driven from a single goroutine and is not safe for concurrent use.
package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-roids/internal/affine"
	"github.com/vovakirdan/tui-roids/internal/config"
)

// Kind tags what an Entity represents.
type Kind uint8

const (
	KindShip Kind = iota
	KindAsteroid
	KindShot
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindShot:
		return "shot"
	default:
		return "unknown"
	}
}

// Entity is the kinematic and collision record shared by every simulated
// object. Position and Velocity are homogeneous with W fixed at 1.
type Entity struct {
	Kind            Kind
	Position        affine.Vec3
	Velocity        affine.Vec3
	Acceleration    float64 // thrust along the current heading, per tick
	Angle           float64 // heading in radians
	AngleSpeed      float64 // added to Angle every tick
	CollisionRadius float64
	TTL             int // remaining ticks, shots only
}

// NewShip creates the player ship from the config, at rest.
func NewShip(cfg config.RoidsConfig) Entity {
	x, y := cfg.ShipStart()
	return Entity{
		Kind:            KindShip,
		Position:        affine.Point(x, y),
		Velocity:        affine.Point(0, 0),
		Angle:           cfg.Ship.Angle,
		CollisionRadius: cfg.Ship.Radius,
	}
}

// heading returns the rotation for the entity's current angle.
func (e Entity) heading() affine.Mat3 {
	return affine.Rotator(e.Angle)
}

// alongHeading returns (0, length) rotated into the entity's heading.
func alongHeading(angle, length float64) affine.Vec3 {
	return affine.Point(0, length).Mul(affine.Rotator(angle))
}

// uniform samples [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

const fullTurn = 2 * math.Pi

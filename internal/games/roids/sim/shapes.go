package sim

import (
	"github.com/vovakirdan/tui-roids/internal/affine"
	"github.com/vovakirdan/tui-roids/internal/config"
)

// Silhouettes in local space, nose along +y.
var (
	shipTemplate = affine.Polygon{
		affine.Point(0, 10),
		affine.Point(-7, -10),
		affine.Point(7, -10),
	}

	// asteroidTemplate is drawn at radius 20 and scaled per asteroid.
	asteroidTemplate = affine.Polygon{
		affine.Point(0, 20),
		affine.Point(3, 18),
		affine.Point(20, 0),
		affine.Point(10, -20),
		affine.Point(1, -10),
		affine.Point(3, -20),
		affine.Point(-15, -15),
		affine.Point(-10, 0),
		affine.Point(-14, 11),
	}
)

// Shape is a world-space outline ready for a host to stroke.
// Closed shapes join the last point back to the first; shots are an open segment.
type Shape struct {
	Kind   Kind
	Points affine.Polygon
	Closed bool
}

// placement returns R(angle)·T(position): rotate about the local origin,
// then move into the world.
func placement(e Entity) affine.Mat3 {
	return e.heading().Mul(affine.Translator(e.Position.X, e.Position.Y))
}

// ShapeOf maps the entity's template into world space.
func ShapeOf(e Entity, cfg config.RoidsConfig) Shape {
	switch e.Kind {
	case KindAsteroid:
		// S·R·T: the scaler leaves W alone, so translation is never scaled.
		scale := affine.Scaler(e.CollisionRadius / cfg.Asteroids.BaseRadius)
		pts := asteroidTemplate.Transform(scale.Mul(placement(e)))
		return Shape{Kind: KindAsteroid, Points: pts, Closed: true}
	case KindShot:
		segment := affine.Polygon{affine.Point(0, 0), affine.Point(0, cfg.Shots.Length)}
		return Shape{Kind: KindShot, Points: segment.Transform(placement(e)), Closed: false}
	default:
		return Shape{Kind: KindShip, Points: shipTemplate.Transform(placement(e)), Closed: true}
	}
}

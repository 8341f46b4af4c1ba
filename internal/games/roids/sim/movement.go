package sim

import "github.com/vovakirdan/tui-roids/internal/affine"

// Move advances one entity by one tick and wraps it into the world.
//
// The thrust vector uses the angle after this tick's spin. There is no
// drag: velocity only changes through thrust.
func Move(e *Entity, worldW, worldH float64) {
	e.Angle += e.AngleSpeed

	thrust := affine.Point(0, e.Acceleration).Mul(e.heading())
	e.Velocity = e.Velocity.AddXY(thrust)
	e.Position = e.Position.AddXY(e.Velocity)

	e.Position.X = wrapAxis(e.Position.X, worldW)
	e.Position.Y = wrapAxis(e.Position.Y, worldH)
}

// MoveAll advances every entity in place.
func MoveAll(entities []Entity, worldW, worldH float64) {
	for i := range entities {
		Move(&entities[i], worldW, worldH)
	}
}

// wrapAxis folds v into [0, size) with a single step, so callers must keep
// per-tick speeds below one world dimension.
func wrapAxis(v, size float64) float64 {
	if v >= size {
		v -= size
	}
	if v < 0 {
		v += size
		// A tiny negative plus size can round up to size itself.
		if v >= size {
			v = 0
		}
	}
	return v
}

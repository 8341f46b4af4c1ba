package roids

import "math"

// Snapshot captures the complete simulation state for determinism testing.
// Entity fields are flattened into float slices.
type Snapshot struct {
	Tick          uint64
	Wave          int
	ShipDestroyed bool

	// Ship is 7 floats: X, Y, VX, VY, Angle, AngleSpeed, Acceleration
	Ship []float64

	// Each asteroid is 7 floats: X, Y, VX, VY, Angle, AngleSpeed, Radius
	AsteroidCount int
	AsteroidData  []float64

	// Each shot is 5 floats: X, Y, VX, VY, TTL
	ShotCount int
	ShotData  []float64
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	s := g.state

	ship := []float64{
		s.Ship.Position.X, s.Ship.Position.Y,
		s.Ship.Velocity.X, s.Ship.Velocity.Y,
		s.Ship.Angle, s.Ship.AngleSpeed, s.Ship.Acceleration,
	}

	asteroidData := make([]float64, 0, len(s.Asteroids)*7)
	for _, a := range s.Asteroids {
		asteroidData = append(asteroidData,
			a.Position.X, a.Position.Y,
			a.Velocity.X, a.Velocity.Y,
			a.Angle, a.AngleSpeed, a.CollisionRadius)
	}

	shotData := make([]float64, 0, len(s.Shots)*5)
	for _, shot := range s.Shots {
		shotData = append(shotData,
			shot.Position.X, shot.Position.Y,
			shot.Velocity.X, shot.Velocity.Y,
			float64(shot.TTL))
	}

	return Snapshot{
		Tick:          s.Tick,
		Wave:          s.Wave,
		ShipDestroyed: s.ShipDestroyed,
		Ship:          ship,
		AsteroidCount: len(s.Asteroids),
		AsteroidData:  asteroidData,
		ShotCount:     len(s.Shots),
		ShotData:      shotData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by bit pattern, so equal hashes mean bit-identical runs.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Wave)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AsteroidCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotCount)     //#nosec G115 -- hash computation
	if snap.ShipDestroyed {
		h = h*31 + 1
	}

	for _, v := range snap.Ship {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.AsteroidData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.ShotData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

package roids

import (
	"math"

	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/games/roids/sim"
)

// Autopilot is a scripted player for headless runs. It turns toward the
// nearest asteroid and fires when lined up, emitting the same press and
// release events a keyboard host would.
type Autopilot struct {
	Tolerance float64 // heading error accepted before firing, radians
	FireEvery uint64  // minimum ticks between shots

	turning  core.Key
	nextFire uint64
}

// NewAutopilot returns a pilot with default aim and fire rate.
func NewAutopilot() *Autopilot {
	return &Autopilot{Tolerance: 0.15, FireEvery: 8}
}

// Next returns the input for the coming tick of s.
func (p *Autopilot) Next(s *sim.State) core.InputFrame {
	in := core.NewInputFrame()
	if s == nil || s.ShipDestroyed {
		return in
	}

	bearing, ok := nearestBearing(s)
	want := core.KeyNone
	if ok {
		switch diff := angleDiff(bearing, s.Ship.Angle); {
		case diff > p.Tolerance:
			want = core.KeyLeft
		case diff < -p.Tolerance:
			want = core.KeyRight
		}
	}

	if want != p.turning {
		if p.turning != core.KeyNone {
			in.Push(core.ReleaseEvent(p.turning))
		}
		if want != core.KeyNone {
			in.Push(core.PressEvent(want, false))
		}
		p.turning = want
	}

	if ok && want == core.KeyNone && s.Tick >= p.nextFire {
		in.Push(core.PressEvent(core.KeySpace, false))
		p.nextFire = s.Tick + p.FireEvery
	}
	return in
}

// nearestBearing returns the heading from the ship to the closest asteroid.
// Heading a points along (sin a, cos a).
func nearestBearing(s *sim.State) (float64, bool) {
	best := math.Inf(1)
	var dx, dy float64
	for _, a := range s.Asteroids {
		ax := a.Position.X - s.Ship.Position.X
		ay := a.Position.Y - s.Ship.Position.Y
		if d := ax*ax + ay*ay; d < best {
			best, dx, dy = d, ax, ay
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return math.Atan2(dx, dy), true
}

// angleDiff returns target minus current folded into (-π, π].
func angleDiff(target, current float64) float64 {
	d := math.Mod(target-current, 2*math.Pi)
	switch {
	case d > math.Pi:
		d -= 2 * math.Pi
	case d <= -math.Pi:
		d += 2 * math.Pi
	}
	return d
}

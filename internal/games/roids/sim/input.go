package sim

import "github.com/vovakirdan/tui-roids/internal/core"

// handleEvent applies one input event to the ship and reports whether it
// asks to quit.
//
// Presses adjust the controls once per physical press: auto-repeat presses
// are ignored. Releases always return the control to neutral.
func (s *State) handleEvent(e core.Event, res *StepResult) (quit bool) {
	switch e.Type {
	case core.EventQuit:
		return true

	case core.EventKeyDown:
		if e.Key == core.KeyEscape {
			return true
		}
		if e.Repeat || s.ShipDestroyed {
			return false
		}
		switch e.Key {
		case core.KeyLeft:
			s.Ship.AngleSpeed += s.cfg.Ship.TurnSpeed
		case core.KeyRight:
			s.Ship.AngleSpeed -= s.cfg.Ship.TurnSpeed
		case core.KeyUp:
			s.Ship.Acceleration += s.cfg.Ship.Thrust
		case core.KeyDown:
			s.Ship.Acceleration -= s.cfg.Ship.Thrust
		case core.KeySpace:
			if s.canFire() {
				s.Shots = append(s.Shots, Fire(s.Ship, s.cfg))
				res.Fired++
			}
		}

	case core.EventKeyUp:
		switch e.Key {
		case core.KeyLeft, core.KeyRight:
			s.Ship.AngleSpeed = 0
		case core.KeyUp, core.KeyDown:
			s.Ship.Acceleration = 0
		}
	}
	return false
}

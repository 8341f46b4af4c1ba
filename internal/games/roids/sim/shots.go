package sim

import "github.com/vovakirdan/tui-roids/internal/config"

// Fire creates a shot just ahead of the ship's nose. The shot inherits the
// ship's velocity plus the launch speed along the ship's heading.
func Fire(ship Entity, cfg config.RoidsConfig) Entity {
	muzzle := alongHeading(ship.Angle, ship.CollisionRadius+cfg.Shots.Offset)
	launch := alongHeading(ship.Angle, cfg.Shots.LaunchSpeed)

	pos := ship.Position.AddXY(muzzle)
	pos.X = wrapAxis(pos.X, cfg.World.Width)
	pos.Y = wrapAxis(pos.Y, cfg.World.Height)

	return Entity{
		Kind:            KindShot,
		Position:        pos,
		Velocity:        ship.Velocity.AddXY(launch),
		Angle:           ship.Angle,
		CollisionRadius: cfg.Shots.Radius,
		TTL:             cfg.Shots.TTL,
	}
}

// ageShots integrates live shots and counts down their TTL. A shot that
// entered the tick with TTL 0 is marked spent instead and left in place, so
// it is dropped on the tick after its countdown ends.
func (s *State) ageShots(res *StepResult) {
	w, h := s.cfg.World.Width, s.cfg.World.Height
	for j := range s.Shots {
		shot := &s.Shots[j]
		if shot.TTL <= 0 {
			s.spentShots[j] = true
			res.Expired++
			continue
		}
		Move(shot, w, h)
		shot.TTL--
	}
}

// canFire reports whether another shot fits under the live cap.
func (s *State) canFire() bool {
	return s.cfg.Shots.MaxLive <= 0 || len(s.Shots) < s.cfg.Shots.MaxLive
}

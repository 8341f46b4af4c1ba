package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-roids/internal/affine"
	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/core"
)

// State owns every entity in the simulation. Asteroids and shots live in
// dense slices; changes found during the collision pass are queued and
// committed after the pass so no slice is modified while it is iterated.
type State struct {
	Ship          Entity
	Asteroids     []Entity
	Shots         []Entity
	Tick          uint64
	Wave          int
	ShipDestroyed bool

	cfg config.RoidsConfig
	rng *rand.Rand

	// Per-tick scratch for the two-phase commit, indexed like the slices.
	hitAsteroids []bool
	spentShots   []bool
	pending      []Entity
}

// SplitEvent records one asteroid hit by a shot.
type SplitEvent struct {
	Position affine.Vec3
	Radius   float64 // radius of the asteroid that was hit
	Children int     // 0 when the asteroid was below the split threshold
}

// StepResult contains information about what happened during a simulation step.
type StepResult struct {
	Tick          uint64
	Quit          bool
	Fired         int
	Expired       int
	Splits        []SplitEvent
	ShipDestroyed bool
	WaveSpawned   int   // wave number spawned this tick, 0 if none
	Err           error // spawn failure for a new wave, if any
}

// New validates cfg, places the ship and spawns the first wave.
func New(cfg config.RoidsConfig, seed int64) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &State{
		Ship: NewShip(cfg),
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
	}
	if err := s.spawnWave(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.RoidsConfig {
	return s.cfg
}

// spawnWave fills the field with a new wave, keeping clear of the ship.
func (s *State) spawnWave() error {
	s.Wave++
	zone := ExclusionZone(s.Ship.Position, s.cfg.Asteroids.ExclusionRadius)
	asteroids, err := SpawnAsteroids(s.rng, s.cfg.Asteroids.Initial, zone, s.cfg)
	s.Asteroids = append(s.Asteroids, asteroids...)
	if err != nil {
		return fmt.Errorf("sim: wave %d: %w", s.Wave, err)
	}
	return nil
}

// Step advances the simulation by one tick.
//
// Order: input, ship, asteroids, shots, collisions, commit. A quit event
// returns immediately without simulating the tick. Once the ship is
// destroyed the world is frozen and only quit is honoured.
func (s *State) Step(in core.InputFrame) StepResult {
	res := StepResult{Tick: s.Tick}

	for _, e := range in.Events {
		if s.handleEvent(e, &res) {
			res.Quit = true
			return res
		}
	}

	if s.ShipDestroyed {
		return res
	}

	s.Tick++
	res.Tick = s.Tick
	w, h := s.cfg.World.Width, s.cfg.World.Height

	s.resetMarks()

	Move(&s.Ship, w, h)
	MoveAll(s.Asteroids, w, h)
	s.ageShots(&res)

	s.resolveCollisions(&res)
	s.commit()

	if len(s.Asteroids) == 0 && !s.ShipDestroyed {
		if err := s.spawnWave(); err != nil {
			res.Err = err
		}
		res.WaveSpawned = s.Wave
	}

	return res
}

// resetMarks sizes the scratch slices to the current collections.
func (s *State) resetMarks() {
	s.hitAsteroids = resetBools(s.hitAsteroids, len(s.Asteroids))
	s.spentShots = resetBools(s.spentShots, len(s.Shots))
	s.pending = s.pending[:0]
}

func resetBools(b []bool, n int) []bool {
	if cap(b) < n {
		return make([]bool, n)
	}
	b = b[:n]
	for i := range b {
		b[i] = false
	}
	return b
}

// resolveCollisions runs the collision pass against the positions of this
// tick. Hits are only marked here; commit applies them.
//
// Each shot can consume at most one asteroid and each asteroid at most one
// shot. Children queued by a split are not tested until the next tick.
func (s *State) resolveCollisions(res *StepResult) {
	w, h := s.cfg.World.Width, s.cfg.World.Height

	// Ship against asteroids ends the game.
	for i := range s.Asteroids {
		if IsCollided(s.Ship, s.Asteroids[i], w, h) {
			s.ShipDestroyed = true
			res.ShipDestroyed = true
			break
		}
	}

	for i := range s.Asteroids {
		for j := range s.Shots {
			if s.spentShots[j] {
				continue
			}
			if !IsCollided(s.Shots[j], s.Asteroids[i], w, h) {
				continue
			}

			s.spentShots[j] = true
			s.hitAsteroids[i] = true

			children := Split(s.rng, s.Asteroids[i], s.cfg)
			s.pending = append(s.pending, children...)
			res.Splits = append(res.Splits, SplitEvent{
				Position: s.Asteroids[i].Position,
				Radius:   s.Asteroids[i].CollisionRadius,
				Children: len(children),
			})
			break
		}
	}
}

// commit drops marked entities and appends queued children.
func (s *State) commit() {
	s.Asteroids = compact(s.Asteroids, s.hitAsteroids)
	s.Asteroids = append(s.Asteroids, s.pending...)
	s.Shots = compact(s.Shots, s.spentShots)
	s.pending = s.pending[:0]
}

// compact keeps items whose drop flag is false, reusing the backing array.
func compact(items []Entity, drop []bool) []Entity {
	kept := items[:0]
	for i, e := range items {
		if !drop[i] {
			kept = append(kept, e)
		}
	}
	return kept
}

// Shapes returns world-space outlines for rendering: the ship (while it
// survives), then asteroids, then shots.
func (s *State) Shapes() []Shape {
	out := make([]Shape, 0, 1+len(s.Asteroids)+len(s.Shots))
	if !s.ShipDestroyed {
		out = append(out, ShapeOf(s.Ship, s.cfg))
	}
	for _, a := range s.Asteroids {
		out = append(out, ShapeOf(a, s.cfg))
	}
	for _, shot := range s.Shots {
		out = append(out, ShapeOf(shot, s.cfg))
	}
	return out
}

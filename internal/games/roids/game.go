// Package roids adapts the asteroids simulation to the arcade Game interface.
package roids

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/games/roids/sim"
	"github.com/vovakirdan/tui-roids/internal/logging"
	"github.com/vovakirdan/tui-roids/internal/registry"
)

// Package-level settings applied to games created by the registry.
var (
	configPath string
	logger     = logging.Discard()
)

// SetConfigPath sets a custom config file for games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// Stats accumulates simulation events since the last Reset.
type Stats struct {
	Fired   int
	Hits    int // shots that struck an asteroid
	Debris  int // child asteroids created by splits
	Expired int
	Waves   int
}

// Game implements registry.Game for the asteroids simulation.
type Game struct {
	load   func() (config.RoidsConfig, error)
	cfg    config.RoidsConfig
	rt     core.RuntimeConfig
	state  *sim.State
	last   sim.StepResult
	stats  Stats
	quit   bool
	logger *log.Logger
}

// New creates a game that loads its config through config.LoadRoids.
func New() *Game {
	path := configPath
	return &Game{
		load:   func() (config.RoidsConfig, error) { return config.LoadRoids(path) },
		logger: logger,
	}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(cfg config.RoidsConfig) *Game {
	return &Game{
		load:   func() (config.RoidsConfig, error) { return cfg, nil },
		logger: logger,
	}
}

func init() {
	registry.Register("roids", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "roids"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Roids"
}

// Reset loads the config and starts a fresh simulation from rt.Seed.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	cfg, err := g.load()
	if err != nil {
		return fmt.Errorf("roids: load config: %w", err)
	}

	state, err := sim.New(cfg, rt.Seed)
	if err != nil {
		return fmt.Errorf("roids: %w", err)
	}

	g.cfg = cfg
	g.rt = rt
	g.state = state
	g.last = sim.StepResult{}
	g.stats = Stats{Waves: state.Wave}
	g.quit = false

	g.logger.Info("game reset",
		"seed", rt.Seed,
		"world", fmt.Sprintf("%vx%v", cfg.World.Width, cfg.World.Height),
		"asteroids", len(state.Asteroids))
	return nil
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{State: g.State()}
	}

	res := g.state.Step(in)
	g.last = res
	g.record(res)

	return core.StepResult{State: g.State()}
}

// record folds one tick's events into the stats and logs the notable ones.
func (g *Game) record(res sim.StepResult) {
	if res.Quit {
		g.quit = true
		g.logger.Info("quit requested", "tick", res.Tick)
		return
	}

	g.stats.Fired += res.Fired
	g.stats.Expired += res.Expired
	for _, split := range res.Splits {
		g.stats.Hits++
		g.stats.Debris += split.Children
		g.logger.Debug("asteroid hit",
			"tick", res.Tick,
			"radius", split.Radius,
			"children", split.Children)
	}

	if res.ShipDestroyed {
		g.logger.Info("ship destroyed", "tick", res.Tick, "wave", g.state.Wave, "hits", g.stats.Hits)
	}
	if res.WaveSpawned > 0 {
		g.stats.Waves = res.WaveSpawned
		g.logger.Info("wave spawned", "tick", res.Tick, "wave", res.WaveSpawned, "asteroids", len(g.state.Asteroids))
	}
	if res.Err != nil {
		g.logger.Warn("wave spawn incomplete", "error", res.Err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{Quit: g.quit}
	}
	return core.GameState{
		Tick:      g.state.Tick,
		Asteroids: len(g.state.Asteroids),
		Shots:     len(g.state.Shots),
		Wave:      g.state.Wave,
		GameOver:  g.state.ShipDestroyed,
		Quit:      g.quit,
	}
}

// Stats returns the counters accumulated since the last Reset.
func (g *Game) Stats() Stats {
	return g.stats
}

// LastStep returns the simulation result of the most recent tick.
func (g *Game) LastStep() sim.StepResult {
	return g.last
}

// Sim exposes the underlying simulation, nil before Reset.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Config returns the config loaded by the last Reset.
func (g *Game) Config() config.RoidsConfig {
	return g.cfg
}

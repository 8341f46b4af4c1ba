// Package config provides YAML-based tuning configuration for the
// asteroids simulation. Every gameplay constant lives here so tests and
// custom config files can vary them deterministically.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// RoidsConfig contains all configuration for the asteroids simulation.
type RoidsConfig struct {
	World     WorldConfig    `yaml:"world"`
	Ship      ShipConfig     `yaml:"ship"`
	Asteroids AsteroidConfig `yaml:"asteroids"`
	Shots     ShotConfig     `yaml:"shots"`
}

// WorldConfig defines the toroidal world size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	StartX    float64 `yaml:"start_x"` // 0 means world centre
	StartY    float64 `yaml:"start_y"` // 0 means world centre
	Angle     float64 `yaml:"angle"`
	Radius    float64 `yaml:"radius"`
	TurnSpeed float64 `yaml:"turn_speed"` // radians per tick while turning
	Thrust    float64 `yaml:"thrust"`     // acceleration per tick while thrusting
}

// AsteroidConfig defines spawning and splitting.
type AsteroidConfig struct {
	Initial         int     `yaml:"initial"`         // asteroids per wave
	Radius          float64 `yaml:"radius"`          // radius of a freshly spawned asteroid
	BaseRadius      float64 `yaml:"base_radius"`     // radius of the silhouette template
	SplitThreshold  float64 `yaml:"split_threshold"` // minimum radius that fragments
	SplitCount      int     `yaml:"split_count"`
	SplitKick       float64 `yaml:"split_kick"` // extra speed along each child heading
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max"`
	AngleMin        float64 `yaml:"angle_min"`
	AngleMax        float64 `yaml:"angle_max"`
	SpinMin         float64 `yaml:"spin_min"`
	SpinMax         float64 `yaml:"spin_max"`
	ExclusionRadius float64 `yaml:"exclusion_radius"` // keep-out radius around the ship at spawn
	MaxAttempts     int     `yaml:"max_attempts_per_asteroid"`
}

// ShotConfig defines projectiles.
type ShotConfig struct {
	TTL         int     `yaml:"ttl"` // lifetime in ticks
	LaunchSpeed float64 `yaml:"launch_speed"`
	Offset      float64 `yaml:"offset"` // added to ship radius for the muzzle position
	Radius      float64 `yaml:"radius"`
	Length      float64 `yaml:"length"`   // rendered segment length
	MaxLive     int     `yaml:"max_live"` // 0 = unlimited
}

// ShipStart returns the ship spawn position, defaulting to the world centre.
func (c RoidsConfig) ShipStart() (x, y float64) {
	x, y = c.Ship.StartX, c.Ship.StartY
	if x == 0 && y == 0 {
		return c.World.Width / 2, c.World.Height / 2
	}
	return x, y
}

// Validate checks that the config describes a playable world.
func (c RoidsConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Ship.Radius <= 0:
		return fmt.Errorf("%w: ship radius %v", ErrInvalidConfig, c.Ship.Radius)
	case c.Asteroids.Radius <= 0 || c.Asteroids.BaseRadius <= 0:
		return fmt.Errorf("%w: asteroid radius %v (base %v)", ErrInvalidConfig, c.Asteroids.Radius, c.Asteroids.BaseRadius)
	case c.Asteroids.Initial < 0:
		return fmt.Errorf("%w: initial asteroids %d", ErrInvalidConfig, c.Asteroids.Initial)
	case c.Asteroids.SplitThreshold <= 0:
		return fmt.Errorf("%w: split threshold %v", ErrInvalidConfig, c.Asteroids.SplitThreshold)
	case c.Asteroids.SplitCount < 1:
		return fmt.Errorf("%w: split count %d", ErrInvalidConfig, c.Asteroids.SplitCount)
	case c.Asteroids.SpeedMin > c.Asteroids.SpeedMax:
		return fmt.Errorf("%w: asteroid speed range [%v, %v)", ErrInvalidConfig, c.Asteroids.SpeedMin, c.Asteroids.SpeedMax)
	case c.Asteroids.AngleMin > c.Asteroids.AngleMax || c.Asteroids.SpinMin > c.Asteroids.SpinMax:
		return fmt.Errorf("%w: asteroid heading/spin range", ErrInvalidConfig)
	case c.Asteroids.MaxAttempts < 1:
		return fmt.Errorf("%w: max spawn attempts %d", ErrInvalidConfig, c.Asteroids.MaxAttempts)
	case c.Shots.TTL <= 0:
		return fmt.Errorf("%w: shot ttl %d", ErrInvalidConfig, c.Shots.TTL)
	case c.Shots.Radius <= 0:
		return fmt.Errorf("%w: shot radius %v", ErrInvalidConfig, c.Shots.Radius)
	}

	// Wrap is a single subtraction per tick, so no speed may cross a whole world.
	limit := min(c.World.Width, c.World.Height)
	if c.Asteroids.SpeedMax >= limit || c.Shots.LaunchSpeed >= limit {
		return fmt.Errorf("%w: speeds must stay below %v per tick", ErrInvalidConfig, limit)
	}
	return nil
}

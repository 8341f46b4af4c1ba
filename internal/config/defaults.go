package config

import (
	_ "embed"
)

//go:embed defaults/roids.yaml
var defaultRoidsYAML []byte

// DefaultRoidsConfig returns the built-in asteroids configuration.
// It matches defaults/roids.yaml and is the fallback if the embed fails to parse.
func DefaultRoidsConfig() RoidsConfig {
	return RoidsConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Angle:     0,
			Radius:    3.5,
			TurnSpeed: 0.1,
			Thrust:    0.1,
		},
		Asteroids: AsteroidConfig{
			Initial:         6,
			Radius:          20,
			BaseRadius:      20,
			SplitThreshold:  10,
			SplitCount:      4,
			SplitKick:       0.5,
			SpeedMin:        0.2,
			SpeedMax:        0.4,
			AngleMin:        0.01,
			AngleMax:        1.0,
			SpinMin:         -0.2,
			SpinMax:         0.2,
			ExclusionRadius: 80,
			MaxAttempts:     1000,
		},
		Shots: ShotConfig{
			TTL:         60,
			LaunchSpeed: 5,
			Offset:      5,
			Radius:      1,
			Length:      4,
			MaxLive:     0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "roids":
		return defaultRoidsYAML
	default:
		return nil
	}
}

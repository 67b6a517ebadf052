package pong

import (
	"image/color"
	"strconv"
)

const (
	PaddleWidth      = 18.0
	PaddleHeight     = 120.0
	BallRadius       = 12.0
	InitialBallSpeed = 8.0
	MaxBallSpeed     = 40.0
	SpeedIncrement   = 0.2 // per paddle hit
	OpponentGain     = 0.1 // fraction of the tracking error closed per tick
	NetWidth         = 5.0
	NetDashPitch     = 15.0
	NetDashLength    = 10.0
	ScoreFontSize    = 60.0
	TicksPerSecond   = 60 // displacement is per tick, so speeds assume this rate
)

var (
	colorBackground = color.RGBA{A: 255}
	colorForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Config controls the arena and match setup. Physics constants are fixed.
type Config struct {
	Width  int
	Height int

	Seed int64

	// AutoPlayer drives the player paddle with the tracking controller and
	// ignores pointer input.
	AutoPlayer bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, Seed: 1}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["auto"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.AutoPlayer = parsed
		}
	}
	return c
}

// Package config resolves game settings from defaults, an optional .env file and
// VI_MAZE_* environment variables. Settings are read once at startup.
package config

import (
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is the cause of every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// MaxGridSize is the largest grid whose physics step fits a tick
const MaxGridSize = 40

// Environment variable names
const (
	EnvGridSize        = "VI_MAZE_GRID_SIZE"
	EnvWidth           = "VI_MAZE_WIDTH"
	EnvHeight          = "VI_MAZE_HEIGHT"
	EnvWallThickness   = "VI_MAZE_WALL_THICKNESS"
	EnvBorderThickness = "VI_MAZE_BORDER_THICKNESS"
	EnvVelocityStep    = "VI_MAZE_VELOCITY_STEP"
	EnvGoalScale       = "VI_MAZE_GOAL_SCALE"
	EnvBallScale       = "VI_MAZE_BALL_SCALE"
	EnvGravity         = "VI_MAZE_GRAVITY"
	EnvFrictionAir     = "VI_MAZE_FRICTION_AIR"
	EnvMaxSpeed        = "VI_MAZE_MAX_SPEED"
	EnvTickInterval    = "VI_MAZE_TICK_MS"
	EnvSeed            = "VI_MAZE_SEED"
	EnvAudioEnabled    = "VI_MAZE_AUDIO_ENABLED"
	EnvDebug           = "VI_MAZE_DEBUG"
)

// Config holds every tunable of a session
type Config struct {
	GridSize        int     // Cells per side
	Width           float64 // World width in pixels
	Height          float64 // World height in pixels
	WallThickness   float64 // Inner wall thickness in pixels
	BorderThickness float64 // Outer border thickness in pixels
	VelocityStep    float64 // Velocity change per directional input, pixels per tick
	GoalScale       float64 // Goal side as a fraction of a cell
	BallScale       float64 // Ball radius as a fraction of a cell
	Gravity         float64 // Downward acceleration after the win, pixels per tick²
	FrictionAir     float64 // Velocity fraction lost per tick, [0, 1)
	MaxSpeed        float64 // Speed cap in pixels per tick, 0 = uncapped
	TickInterval    time.Duration
	Seed            uint64 // 0 = time based
	AudioEnabled    bool
	Debug           bool // Enables file logging
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		GridSize:        6,
		Width:           600,
		Height:          600,
		WallThickness:   5,
		BorderThickness: 2,
		VelocityStep:    5,
		GoalScale:       0.7,
		BallScale:       0.25,
		Gravity:         0.3,
		FrictionAir:     0,
		MaxSpeed:        30,
		TickInterval:    16 * time.Millisecond,
		Seed:            0,
		AudioEnabled:    true,
		Debug:           false,
	}
}

// Load applies environment overrides on top of Default and validates the result.
// Without envFiles, ./.env is read when present. Named envFiles must exist.
// Variables already set in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFiles(envFiles []string) error {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, "load .env")
		}
		return nil
	}
	if err := godotenv.Load(envFiles...); err != nil {
		return errors.Wrapf(err, "load %s", strings.Join(envFiles, ", "))
	}
	return nil
}

// ApplyEnv overrides fields from VI_MAZE_* variables. Unset variables are skipped;
// malformed values are errors.
func (c *Config) ApplyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvGridSize, &c.GridSize},
	}
	for _, e := range ints {
		if v, ok := os.LookupEnv(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", e.key, v, err)
			}
			*e.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
		{EnvWallThickness, &c.WallThickness},
		{EnvBorderThickness, &c.BorderThickness},
		{EnvVelocityStep, &c.VelocityStep},
		{EnvGoalScale, &c.GoalScale},
		{EnvBallScale, &c.BallScale},
		{EnvGravity, &c.Gravity},
		{EnvFrictionAir, &c.FrictionAir},
		{EnvMaxSpeed, &c.MaxSpeed},
	}
	for _, e := range floats {
		if v, ok := os.LookupEnv(e.key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", e.key, v, err)
			}
			*e.dst = f
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvAudioEnabled, &c.AudioEnabled},
		{EnvDebug, &c.Debug},
	}
	for _, e := range bools {
		if v, ok := os.LookupEnv(e.key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", e.key, v, err)
			}
			*e.dst = b
		}
	}

	if v, ok := os.LookupEnv(EnvTickInterval); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", EnvTickInterval, v, err)
		}
		c.TickInterval = time.Duration(ms) * time.Millisecond
	}

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s=%q: %v", EnvSeed, v, err)
		}
		c.Seed = seed
	}

	return nil
}

// Validate checks ranges. The returned error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.GridSize < 2 || c.GridSize > MaxGridSize:
		return errors.Wrapf(ErrInvalidConfig, "grid size %d, need [2, %d]", c.GridSize, MaxGridSize)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "world size %gx%g", c.Width, c.Height)
	case c.WallThickness <= 0:
		return errors.Wrapf(ErrInvalidConfig, "wall thickness %g", c.WallThickness)
	case c.BorderThickness <= 0:
		return errors.Wrapf(ErrInvalidConfig, "border thickness %g", c.BorderThickness)
	case c.VelocityStep <= 0:
		return errors.Wrapf(ErrInvalidConfig, "velocity step %g", c.VelocityStep)
	case c.GoalScale <= 0 || c.GoalScale > 1:
		return errors.Wrapf(ErrInvalidConfig, "goal scale %g, need (0, 1]", c.GoalScale)
	case c.BallScale <= 0 || c.BallScale > 0.5:
		return errors.Wrapf(ErrInvalidConfig, "ball scale %g, need (0, 0.5]", c.BallScale)
	case c.FrictionAir < 0 || c.FrictionAir >= 1:
		return errors.Wrapf(ErrInvalidConfig, "air friction %g, need [0, 1)", c.FrictionAir)
	case c.MaxSpeed < 0:
		return errors.Wrapf(ErrInvalidConfig, "max speed %g", c.MaxSpeed)
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick interval %v", c.TickInterval)
	}

	// The ball must pass between two walls of adjacent cells
	unitX, unitY := c.CellSize(c.GridSize)
	unit := math.Min(unitX, unitY)
	corridor := unit - c.WallThickness
	if diameter := 2 * c.BallScale * unit; diameter >= corridor {
		return errors.Wrapf(ErrInvalidConfig, "ball diameter %g does not fit a %g px corridor (cell %g, wall %g)",
			diameter, corridor, unit, c.WallThickness)
	}
	return nil
}

// CellSize returns the pixel width and height of one cell of a size×size grid
func (c *Config) CellSize(size int) (unitX, unitY float64) {
	return c.Width / float64(size), c.Height / float64(size)
}

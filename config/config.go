package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "LEGSIM"

	LayoutSingle  = "single"
	LayoutHexapod = "hexapod"

	GaitOscillate = "oscillate"
	GaitTripod    = "tripod"
	GaitRipple    = "ripple"
)

type Config struct {
	Sim    SimConfig    `mapstructure:"sim"`
	Render RenderConfig `mapstructure:"render"`
	Camera CameraConfig `mapstructure:"camera"`
	Log    LogConfig    `mapstructure:"log"`
}

type SimConfig struct {
	// Frames per second of the run loop.
	FPS int `mapstructure:"fps"`

	// Stop after this much simulated time, or this many frames. Zero means run
	// until interrupted.
	Duration time.Duration `mapstructure:"duration"`
	Frames   int           `mapstructure:"frames"`

	// If non-zero, every tick advances by exactly this much, regardless of the
	// wall clock. Makes runs reproducible.
	FixedDT time.Duration `mapstructure:"fixed_dt"`

	Layout string `mapstructure:"layout"`
	Gait   string `mapstructure:"gait"`

	// Oscillate every non-root joint of every leg, rather than only the femur
	// and tibia of the first.
	DriveAll bool `mapstructure:"drive_all"`

	// The time taken for every leg to step once, for walking gaits.
	StepPeriod time.Duration `mapstructure:"step_period"`

	// Root each leg at its mount on the body rather than at the origin.
	Mounted bool `mapstructure:"mounted"`

	// Include the static body shape in each frame.
	Body bool `mapstructure:"body"`
}

type RenderConfig struct {
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type CameraConfig struct {
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
	Z     float64 `mapstructure:"z"`
	Zoom  float64 `mapstructure:"zoom"`
	Width int     `mapstructure:"width"`
	// Height of the viewport, in pixels. Only used for the aspect ratio.
	Height int `mapstructure:"height"`

	// Degrees per second to orbit around the origin. Zero holds still.
	Orbit float64 `mapstructure:"orbit"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	// Optional log file, rotated by size. Empty means stderr only.
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sim.fps", 60)
	v.SetDefault("sim.duration", time.Duration(0))
	v.SetDefault("sim.frames", 0)
	v.SetDefault("sim.fixed_dt", time.Duration(0))
	v.SetDefault("sim.layout", LayoutSingle)
	v.SetDefault("sim.gait", GaitOscillate)
	v.SetDefault("sim.drive_all", false)
	v.SetDefault("sim.step_period", 2*time.Second)
	v.SetDefault("sim.mounted", false)
	v.SetDefault("sim.body", false)

	v.SetDefault("render.format", "json")
	v.SetDefault("render.output", "-")

	v.SetDefault("camera.x", 0.0)
	v.SetDefault("camera.y", 0.0)
	v.SetDefault("camera.z", 3.0)
	v.SetDefault("camera.zoom", 45.0)
	v.SetDefault("camera.width", 800)
	v.SetDefault("camera.height", 600)
	v.SetDefault("camera.orbit", 0.0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
}

// New returns a viper instance with defaults registered and environment
// variables (LEGSIM_SIM_FPS, etc) bound. If path is non-empty, that config file
// is read too.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return v, nil
}

// Load unmarshals and validates the config held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate returns an error describing every invalid value, or nil.
func (c *Config) Validate() error {
	var errs []error

	if c.Sim.FPS <= 0 {
		errs = append(errs, fmt.Errorf("sim.fps must be positive, got %d", c.Sim.FPS))
	}

	if c.Sim.Duration < 0 {
		errs = append(errs, fmt.Errorf("sim.duration must not be negative, got %s", c.Sim.Duration))
	}

	if c.Sim.Frames < 0 {
		errs = append(errs, fmt.Errorf("sim.frames must not be negative, got %d", c.Sim.Frames))
	}

	if c.Sim.FixedDT < 0 {
		errs = append(errs, fmt.Errorf("sim.fixed_dt must not be negative, got %s", c.Sim.FixedDT))
	}

	switch c.Sim.Layout {
	case LayoutSingle, LayoutHexapod:
	default:
		errs = append(errs, fmt.Errorf("unknown sim.layout: %q", c.Sim.Layout))
	}

	switch c.Sim.Gait {
	case GaitOscillate:
	case GaitTripod, GaitRipple:
		if c.Sim.StepPeriod <= 0 {
			errs = append(errs, fmt.Errorf("sim.step_period must be positive, got %s", c.Sim.StepPeriod))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown sim.gait: %q", c.Sim.Gait))
	}

	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		errs = append(errs, fmt.Errorf("camera viewport must be positive, got %dx%d", c.Camera.Width, c.Camera.Height))
	}

	return errors.Join(errs...)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 60, c.Sim.FPS)
	assert.Equal(t, time.Duration(0), c.Sim.Duration)
	assert.Equal(t, LayoutSingle, c.Sim.Layout)
	assert.Equal(t, GaitOscillate, c.Sim.Gait)
	assert.Equal(t, 2*time.Second, c.Sim.StepPeriod)
	assert.Equal(t, "json", c.Render.Format)
	assert.Equal(t, "-", c.Render.Output)
	assert.Equal(t, 3.0, c.Camera.Z)
	assert.Equal(t, 45.0, c.Camera.Zoom)
	assert.Equal(t, 800, c.Camera.Width)
	assert.Equal(t, "info", c.Log.Level)
}

func TestEnv(t *testing.T) {
	t.Setenv("LEGSIM_SIM_FPS", "30")
	t.Setenv("LEGSIM_SIM_FIXED_DT", "10ms")
	t.Setenv("LEGSIM_SIM_LAYOUT", "hexapod")

	v, err := New("")
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 30, c.Sim.FPS)
	assert.Equal(t, 10*time.Millisecond, c.Sim.FixedDT)
	assert.Equal(t, LayoutHexapod, c.Sim.Layout)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legsim.yaml")
	err := os.WriteFile(path, []byte("sim:\n  gait: tripod\n  duration: 5s\ncamera:\n  orbit: 10\n"), 0o644)
	require.NoError(t, err)

	v, err := New(path)
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, GaitTripod, c.Sim.Gait)
	assert.Equal(t, 5*time.Second, c.Sim.Duration)
	assert.Equal(t, 10.0, c.Camera.Orbit)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)

	tests := []struct {
		name string
		fn   func(c *Config)
		msg  string
	}{
		{"fps", func(c *Config) { c.Sim.FPS = 0 }, "sim.fps"},
		{"duration", func(c *Config) { c.Sim.Duration = -time.Second }, "sim.duration"},
		{"frames", func(c *Config) { c.Sim.Frames = -1 }, "sim.frames"},
		{"fixed_dt", func(c *Config) { c.Sim.FixedDT = -time.Millisecond }, "sim.fixed_dt"},
		{"layout", func(c *Config) { c.Sim.Layout = "octopod" }, "sim.layout"},
		{"gait", func(c *Config) { c.Sim.Gait = "gallop" }, "sim.gait"},
		{"step_period", func(c *Config) { c.Sim.Gait = GaitRipple; c.Sim.StepPeriod = 0 }, "sim.step_period"},
		{"viewport", func(c *Config) { c.Camera.Height = 0 }, "viewport"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := *c
			tt.fn(&cc)
			err := cc.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	// Every problem is reported, not just the first.
	cc := *c
	cc.Sim.FPS = 0
	cc.Sim.Layout = "octopod"
	err = cc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sim.fps")
	assert.Contains(t, err.Error(), "sim.layout")
}

func TestConfigureLogging(t *testing.T) {
	l := logrus.New()

	cl, err := ConfigureLogging(l, LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NoError(t, cl.Close())
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	_, err = ConfigureLogging(l, LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = ConfigureLogging(l, LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "legsim.log")
	cl, err = ConfigureLogging(l, LogConfig{Level: "info", File: path, MaxSize: 1})
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, cl.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello")
}

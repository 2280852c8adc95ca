package legsim_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/adammck/legsim"
	"github.com/adammck/legsim/camera"
	"github.com/adammck/legsim/config"
	fakeclock "github.com/adammck/legsim/fake/clock"
	"github.com/adammck/legsim/legs"
	"github.com/adammck/legsim/pose"
	"github.com/adammck/legsim/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder is a renderer which keeps every frame.
type recorder struct {
	frames []render.Frame
	err    error
	closed bool
}

func (r *recorder) Draw(f render.Frame) error {
	if r.err != nil {
		return r.err
	}

	r.frames = append(r.frames, f)
	return nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

var epoch = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)

func TestStep(t *testing.T) {
	s := legsim.NewReference()

	s.Step(0)
	assert.Equal(t, 0.0, s.Robot.Angle(0, 1))
	assert.Equal(t, 0.0, s.Robot.Angle(0, 2))

	s.Step(0.1)
	assert.InDelta(t, 0.1, s.Robot.Angle(0, 1), 1e-9)
	assert.InDelta(t, 0.1, s.Robot.Angle(0, 2), 1e-9)
	assert.Equal(t, 0.0, s.Robot.Angle(0, 0))
	assert.InDelta(t, 0.1, s.Time(), 1e-9)

	// Ignored.
	s.Step(-1)
	assert.InDelta(t, 0.1, s.Robot.Angle(0, 1), 1e-9)
	assert.InDelta(t, 0.1, s.Time(), 1e-9)
}

func TestShapes(t *testing.T) {
	s := legsim.NewReference()
	assert.Len(t, s.Shapes(), 3)

	s.Body = true
	shapes := s.Shapes()
	require.Len(t, shapes, 4)
	assert.Equal(t, pose.Body(), shapes[0])
	assert.Equal(t, pose.SegmentColor(0), shapes[1].Color)

	h := legsim.New(legs.NewHexapodRobot(), nil)
	assert.Len(t, h.Shapes(), 18)
}

func TestRunFixedDT(t *testing.T) {
	s := legsim.NewReference()
	rec := &recorder{}

	err := legsim.Run(context.Background(), s, camera.New(camera.DefaultPosition), rec, fakeclock.New(epoch), legsim.RunOptions{
		FPS:     60,
		Frames:  5,
		FixedDT: 100 * time.Millisecond,
	})
	require.NoError(t, err)
	require.Len(t, rec.frames, 5)

	// The first frame is the initial pose.
	assert.Equal(t, 0.0, rec.frames[0].DT)
	assert.Equal(t, 0.0, rec.frames[0].Time)

	for i, f := range rec.frames {
		assert.Equal(t, i, f.Index)
		assert.Len(t, f.Shapes, 3)
		if i > 0 {
			assert.InDelta(t, 0.1, f.DT, 1e-9)
		}
	}

	assert.InDelta(t, 0.4, rec.frames[4].Time, 1e-9)
	assert.InDelta(t, 0.4, s.Robot.Angle(0, 2), 1e-9)
}

func TestRunClockDT(t *testing.T) {
	s := legsim.NewReference()
	rec := &recorder{}

	// The fake ticker fires exactly 1/50s apart.
	err := legsim.Run(context.Background(), s, camera.New(camera.DefaultPosition), rec, fakeclock.New(epoch), legsim.RunOptions{
		FPS:      50,
		Duration: 190 * time.Millisecond,
	})
	require.NoError(t, err)

	require.Len(t, rec.frames, 11)
	assert.InDelta(t, 0.02, rec.frames[1].DT, 1e-9)
	assert.InDelta(t, 0.2, s.Time(), 1e-9)
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	err := legsim.Run(ctx, legsim.NewReference(), camera.New(camera.DefaultPosition), rec, fakeclock.New(epoch), legsim.RunOptions{FPS: 60})
	require.NoError(t, err)

	assert.Empty(t, rec.frames)
}

func TestRunRenderError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{err: boom}

	err := legsim.Run(context.Background(), legsim.NewReference(), camera.New(camera.DefaultPosition), rec, fakeclock.New(epoch), legsim.RunOptions{FPS: 60})
	assert.ErrorIs(t, err, boom)
}

func TestRunInvalidFPS(t *testing.T) {
	err := legsim.Run(context.Background(), legsim.NewReference(), camera.New(camera.DefaultPosition), &recorder{}, fakeclock.New(epoch), legsim.RunOptions{})
	assert.Error(t, err)
}

func TestRunOrbit(t *testing.T) {
	cam := camera.New(camera.DefaultPosition)
	rec := &recorder{}

	// 90°/s for one second swings the camera a quarter turn around the
	// origin, keeping its distance.
	err := legsim.Run(context.Background(), legsim.NewReference(), cam, rec, fakeclock.New(epoch), legsim.RunOptions{
		FPS:     10,
		Frames:  11,
		FixedDT: 100 * time.Millisecond,
		Orbit:   90,
	})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, cam.Position.Magnitude(), 1e-9)
	assert.InDelta(t, 3.0, math.Abs(cam.Position.X), 1e-9)
	assert.InDelta(t, 0.0, cam.Position.Z, 1e-9)
	assert.NotEqual(t, rec.frames[0].View, rec.frames[10].View)
}

func TestNewFromConfig(t *testing.T) {
	v, err := config.New("")
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	s, err := legsim.NewFromConfig(c.Sim)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Robot.NumLegs())
	assert.Len(t, s.Shapes(), 3)

	c.Sim.Layout = config.LayoutHexapod
	c.Sim.Gait = config.GaitTripod
	c.Sim.Body = true
	c.Sim.Mounted = true
	s, err = legsim.NewFromConfig(c.Sim)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Robot.NumLegs())
	assert.Len(t, s.Shapes(), 19)
	assert.True(t, s.Builder.Mounted)

	c.Sim.Layout = "octopod"
	_, err = legsim.NewFromConfig(c.Sim)
	assert.Error(t, err)

	c.Sim.Layout = config.LayoutSingle
	c.Sim.Gait = config.GaitRipple
	c.Sim.StepPeriod = 0
	_, err = legsim.NewFromConfig(c.Sim)
	assert.Error(t, err)
}

func TestNewCamera(t *testing.T) {
	cam := legsim.NewCamera(config.CameraConfig{Z: 5, Zoom: 30, Width: 1000, Height: 500})
	assert.Equal(t, 5.0, cam.Position.Z)
	assert.Equal(t, 30.0, cam.Zoom)
	assert.Equal(t, 2.0, cam.Aspect)
}

package legsim

import (
	"fmt"

	"github.com/adammck/legsim/camera"
	"github.com/adammck/legsim/config"
	"github.com/adammck/legsim/gait"
	"github.com/adammck/legsim/legs"
	"github.com/adammck/legsim/math3d"
)

// NewFromConfig builds the simulation described by the sim section of a config.
func NewFromConfig(c config.SimConfig) (*Simulation, error) {
	var r *legs.Robot
	switch c.Layout {
	case config.LayoutSingle:
		r = legs.NewSingleLegRobot()
	case config.LayoutHexapod:
		r = legs.NewHexapodRobot()
	default:
		return nil, fmt.Errorf("unknown layout: %q", c.Layout)
	}

	var ctrl gait.Controller
	switch c.Gait {
	case config.GaitOscillate:
		if c.DriveAll {
			ctrl = gait.AllLegsOscillator(r)
		} else {
			ctrl = gait.ReferenceOscillator()
		}

	case config.GaitTripod, config.GaitRipple:
		groupSize := 3
		if c.Gait == config.GaitRipple {
			groupSize = 2
		}

		w, err := gait.NewWalk(groupSize, c.StepPeriod)
		if err != nil {
			return nil, fmt.Errorf("error creating %s gait: %w", c.Gait, err)
		}
		ctrl = w

	default:
		return nil, fmt.Errorf("unknown gait: %q", c.Gait)
	}

	s := New(r, ctrl)
	s.Builder.Mounted = c.Mounted
	s.Body = c.Body

	log.Infof("created %s simulation with %d legs, %s gait", c.Layout, r.NumLegs(), c.Gait)
	return s, nil
}

// NewCamera returns a camera placed and zoomed per the camera config.
func NewCamera(c config.CameraConfig) *camera.Camera {
	cam := camera.New(math3d.Vector3{X: c.X, Y: c.Y, Z: c.Z})
	cam.Scroll(camera.DefaultZoom - c.Zoom)
	cam.Aspect = float64(c.Width) / float64(c.Height)
	return cam
}

// Options returns the run loop options from the config.
func Options(c *config.Config) RunOptions {
	return RunOptions{
		FPS:      c.Sim.FPS,
		Duration: c.Sim.Duration,
		Frames:   c.Sim.Frames,
		FixedDT:  c.Sim.FixedDT,
		Orbit:    c.Camera.Orbit,
	}
}

package legsim

import (
	"context"
	"fmt"
	"time"

	"github.com/adammck/legsim/camera"
	"github.com/adammck/legsim/clock"
	"github.com/adammck/legsim/math3d"
	"github.com/adammck/legsim/render"
)

type RunOptions struct {
	FPS int

	// Stop after this much simulated time, or after this many frames. Zero
	// means no limit.
	Duration time.Duration
	Frames   int

	// If non-zero, every tick advances exactly this much, instead of the time
	// between ticks.
	FixedDT time.Duration

	// Degrees per second to orbit the camera around the origin.
	Orbit float64
}

// Run steps the simulation once per tick of the clock, and hands every frame to
// the renderer, until the context is cancelled or a limit is reached. The first
// frame is drawn with dt=0, i.e. the initial pose. A renderer error stops the
// loop and is returned.
func Run(ctx context.Context, s *Simulation, cam *camera.Camera, r render.Renderer, clk clock.Clock, opts RunOptions) error {
	if opts.FPS <= 0 {
		return fmt.Errorf("invalid fps: %d", opts.FPS)
	}

	t := clk.NewTicker(time.Second / time.Duration(opts.FPS))
	defer t.Stop()

	log.Infof("starting loop at %d fps", opts.FPS)

	var last time.Time
	for i := 0; ; i++ {
		var now time.Time

		select {
		case <-ctx.Done():
			log.Infof("stopped after %d frames: %s", i, ctx.Err())
			return nil
		case now = <-t.C():
		}

		// Both might be ready at once, and select doesn't prefer either.
		if ctx.Err() != nil {
			log.Infof("stopped after %d frames: %s", i, ctx.Err())
			return nil
		}

		dt := 0.0
		if i > 0 {
			if opts.FixedDT > 0 {
				dt = opts.FixedDT.Seconds()
			} else {
				dt = now.Sub(last).Seconds()
			}
		}
		last = now

		s.Step(dt)

		if opts.Orbit != 0 {
			cam.Orbit(math3d.ZeroVector3, opts.Orbit*dt)
		}

		err := r.Draw(render.Frame{
			Index:      i,
			Time:       s.Time(),
			DT:         dt,
			Shapes:     s.Shapes(),
			View:       cam.View(),
			Projection: cam.Projection(),
		})
		if err != nil {
			return fmt.Errorf("error drawing frame %d: %w", i, err)
		}

		if opts.Frames > 0 && i+1 >= opts.Frames {
			log.Infof("stopped after %d frames", i+1)
			return nil
		}

		if opts.Duration > 0 && s.Time() >= opts.Duration.Seconds() {
			log.Infof("stopped after %.3fs", s.Time())
			return nil
		}
	}
}

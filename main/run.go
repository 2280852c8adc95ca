package main

import (
	"fmt"
	"time"

	"github.com/adammck/legsim"
	"github.com/adammck/legsim/clock"
	"github.com/adammck/legsim/render"
	"github.com/spf13/cobra"
)

func newRunCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation, writing a frame of shapes every tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}

	f := cmd.Flags()
	f.Int("fps", 60, "frames per second")
	f.Duration("duration", 0, "stop after this much simulated time (0 runs until interrupted)")
	f.Int("frames", 0, "stop after this many frames (0 runs until interrupted)")
	f.Duration("fixed-dt", 0, "advance exactly this much per frame, rather than by the wall clock")
	f.String("layout", "single", "robot layout (single or hexapod)")
	f.String("gait", "oscillate", "controller (oscillate, tripod or ripple)")
	f.Bool("drive-all", false, "oscillate every joint of every leg")
	f.Duration("step-period", 2*time.Second, "time for every leg to step once, when walking")
	f.Bool("mounted", false, "root each leg at its mount on the body")
	f.Bool("body", false, "include the body in each frame")
	f.String("format", render.FormatJSON, "frame format (json or log)")
	f.StringP("output", "o", render.Stdout, "frame output path (- for stdout)")
	f.Float64("orbit", 0, "orbit the camera around the origin, in degrees per second")
	f.Float64("zoom", 45, "camera field of view, in degrees")

	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	s, err := legsim.NewFromConfig(a.cfg.Sim)
	if err != nil {
		return err
	}

	r, err := render.Open(a.cfg.Render.Format, a.cfg.Render.Output)
	if err != nil {
		return err
	}

	cam := legsim.NewCamera(a.cfg.Camera)
	log.Infof("run %s: %s", a.runID, cam)

	err = legsim.Run(cmd.Context(), s, cam, r, clock.Real{}, legsim.Options(a.cfg))
	cerr := r.Close()
	if err != nil {
		return err
	}

	if cerr != nil {
		return fmt.Errorf("error closing renderer: %w", cerr)
	}

	return nil
}

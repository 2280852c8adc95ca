package gait

import (
	"fmt"
	"math"
	"time"

	"github.com/adammck/legsim/legs"
)

const (

	// How far (in radians) the coxa sweeps either side of center.
	coxaSweep = math.Pi / 8

	// The femur angle (radians) at the top of a step. The tibia tucks in by half
	// as much, to keep the foot clear of the ground.
	femurLift = math.Pi / 6
)

// Walk is a scripted controller which plays back a precomputed Cycle, mapping
// swing onto the coxa and lift onto the femur and tibia. Unlike Oscillator, the
// pose depends only on the time elapsed, not on the previous pose.
type Walk struct {
	cycle  Cycle
	period time.Duration
	t      float64
}

// NewWalk creates a walking controller. groupSize is the number of legs lifted
// at once (2 or 3), and period is the time taken for every leg to step once.
func NewWalk(groupSize int, period time.Duration) (*Walk, error) {
	if period <= 0 {
		return nil, fmt.Errorf("invalid walk period: %s", period)
	}

	// 60 frames per step is plenty; playback snaps to the nearest frame.
	c, err := MakeCycle(groupSize, 60)
	if err != nil {
		return nil, err
	}

	return &Walk{
		cycle:  c,
		period: period,
	}, nil
}

// frame returns the index of the frame which should be shown now.
func (w *Walk) frame() int {
	r := math.Mod(w.t/w.period.Seconds(), 1)
	return int(r * float64(w.cycle.Length()))
}

func (w *Walk) Tick(r *legs.Robot, dt float64) {
	w.t += dt
	n := w.frame()

	for i := 0; i < r.NumLegs(); i++ {
		f := w.cycle.Frame(i, n)

		// Limits are enforced by the robot. The angles here are well inside
		// them for the reference leg, but other geometries might not be.
		r.SetMotorAngle(i, 0, (f.Swing-0.5)*2*coxaSweep)
		r.SetMotorAngle(i, 1, f.Lift*femurLift)
		r.SetMotorAngle(i, 2, -f.Lift*femurLift/2)
	}
}

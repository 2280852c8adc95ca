// Package legsim simulates articulated legs. Each tick, a controller nudges the
// joint angles of a robot, and the pose of every segment is rebuilt from those
// angles as a list of boxes for something else to draw.
package legsim

import (
	"github.com/adammck/legsim/gait"
	"github.com/adammck/legsim/legs"
	"github.com/adammck/legsim/pose"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "legsim",
})

type Simulation struct {
	Robot      *legs.Robot
	Controller gait.Controller
	Builder    pose.Builder

	// If true, the static body is included (first) in the shapes.
	Body bool

	// Simulated seconds since the start.
	t float64
}

// New creates a simulation of the given robot, driven by the given controller.
func New(r *legs.Robot, c gait.Controller) *Simulation {
	return &Simulation{
		Robot:      r,
		Controller: c,
	}
}

// NewReference returns the simplest simulation: a single leg, with its femur
// and tibia oscillating.
func NewReference() *Simulation {
	return New(legs.NewSingleLegRobot(), gait.ReferenceOscillator())
}

// Step advances the simulation by dt seconds. Negative dt is a caller bug.
func (s *Simulation) Step(dt float64) {
	if dt < 0 {
		log.Warnf("ignoring negative dt: %f", dt)
		return
	}

	s.Controller.Tick(s.Robot, dt)
	s.t += dt
}

// Time returns the simulated time, in seconds.
func (s *Simulation) Time() float64 {
	return s.t
}

// Shapes returns the shapes to draw for the current state. That's three per
// leg, preceded by the body if it's enabled.
func (s *Simulation) Shapes() []pose.Shape {
	shapes := s.Builder.Shapes(s.Robot)
	if !s.Body {
		return shapes
	}

	return append([]pose.Shape{pose.Body()}, shapes...)
}

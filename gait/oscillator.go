package gait

import (
	"github.com/adammck/legsim/legs"
)

const (

	// The rate at which each joint moves, in radians per second.
	oscillationRate = 1.0
)

// Direction is the way a joint is currently moving.
type Direction int

const (
	Forward Direction = +1
	Reverse Direction = -1
)

// Oscillator swings each of its joints back and forth between their limits at
// a constant rate. A joint reverses on the tick which would have carried it
// past a limit; that tick leaves it exactly on the limit. Joints are
// independent, so their relative phase depends only on their ranges.
type Oscillator struct {
	joints []Joint
	dirs   []Direction
}

// NewOscillator creates an oscillator for the given joints, all initially
// moving forwards.
func NewOscillator(joints ...Joint) *Oscillator {
	o := &Oscillator{
		joints: make([]Joint, len(joints)),
		dirs:   make([]Direction, len(joints)),
	}

	copy(o.joints, joints)
	for i := range o.dirs {
		o.dirs[i] = Forward
	}

	return o
}

// ReferenceOscillator drives the femur and tibia of the first leg, leaving the
// coxa still.
func ReferenceOscillator() *Oscillator {
	return NewOscillator(
		Joint{Leg: 0, Segment: 1},
		Joint{Leg: 0, Segment: 2},
	)
}

// AllLegsOscillator drives every non-root segment of every leg of the robot.
func AllLegsOscillator(r *legs.Robot) *Oscillator {
	var joints []Joint
	for l := 0; l < r.NumLegs(); l++ {
		for s := 1; s < legs.NumSegments; s++ {
			joints = append(joints, Joint{Leg: l, Segment: s})
		}
	}

	return NewOscillator(joints...)
}

// Joints returns the joints driven by the oscillator, in the order they are
// ticked.
func (o *Oscillator) Joints() []Joint {
	j := make([]Joint, len(o.joints))
	copy(j, o.joints)
	return j
}

// Direction returns the current direction of the i'th joint.
func (o *Oscillator) Direction(i int) Direction {
	return o.dirs[i]
}

func (o *Oscillator) Tick(r *legs.Robot, dt float64) {
	for i, j := range o.joints {
		a := r.Angle(j.Leg, j.Segment) + (dt * oscillationRate * float64(o.dirs[i]))

		if !r.SetMotorAngle(j.Leg, j.Segment, a) {
			o.dirs[i] = -o.dirs[i]
			log.Debugf("leg %d segment %d hit limit at %+.3f, dir=%+d", j.Leg, j.Segment, r.Angle(j.Leg, j.Segment), o.dirs[i])
		}
	}
}

package legs

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "legs",
})

// Robot owns the joint geometry and angles of every leg. Angles are only ever
// changed through SetMotorAngle, so every segment stays within its limits.
//
// Indices passed to the methods of Robot must address an existing leg and
// segment. Anything else is a programming error, and panics.
type Robot struct {
	legs []Leg
}

// NewRobot creates a robot with the given legs. The number of legs is fixed for
// the lifetime of the robot. Panics if any segment has inconsistent limits.
func NewRobot(legs ...Leg) *Robot {
	r := &Robot{
		legs: make([]Leg, len(legs)),
	}

	for i, leg := range legs {
		leg.validate()
		r.legs[i] = leg
	}

	log.Debugf("new robot with %d legs", len(r.legs))
	return r
}

// NumLegs returns the number of legs attached to the robot.
func (r *Robot) NumLegs() int {
	return len(r.legs)
}

// Leg returns a copy of the leg at the given index. Changes to the copy are
// not reflected in the robot.
func (r *Robot) Leg(legIndex int) Leg {
	return r.legs[legIndex]
}

// Angle returns the current angle of a single joint.
func (r *Robot) Angle(legIndex, segmentIndex int) float64 {
	return r.legs[legIndex].Segments[segmentIndex].Angle
}

// SetMotorAngle moves a joint to the requested angle. If the angle is beyond
// either limit, the joint is moved to that limit instead and false is
// returned. Callers which care which limit was hit must compare the resulting
// angle with the segment's Min and Max.
func (r *Robot) SetMotorAngle(legIndex, segmentIndex int, angle float64) bool {
	return r.legs[legIndex].Segments[segmentIndex].setAngle(angle)
}

// Package gait contains the controllers which move a robot's joints over time.
// Controllers hold their own state; the robot only holds geometry and angles.
package gait

import (
	"github.com/adammck/legsim/legs"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "gait",
})

// Controller advances the joints of a robot by one tick. dt is the time since
// the previous tick in seconds, and is never negative.
type Controller interface {
	Tick(r *legs.Robot, dt float64)
}

// Joint addresses a single segment of a single leg.
type Joint struct {
	Leg     int
	Segment int
}

package legs

import (
	"fmt"

	"github.com/adammck/legsim/math3d"
	"github.com/adammck/legsim/utils"
)

const (

	// Every leg is a coxa, femur, and tibia. The chain is a fixed-size array, so
	// the length is enforced by the type rather than checked at runtime.
	NumSegments = 3
)

type Leg struct {
	Name string

	// Ordered root to tip. Segment i is the child of segment i-1.
	Segments [NumSegments]Segment

	// The fixed mounting pose of the leg relative to the body: a rotation of
	// BaseAngle radians around BaseAxis, then a translation by BaseOffset.
	BaseAxis   math3d.Vector3
	BaseAngle  float64
	BaseOffset math3d.Vector3
}

func (leg Leg) String() string {
	return fmt.Sprintf("&Leg{%s: %v %v %v @ %s %+.2f°}", leg.Name, leg.Segments[0], leg.Segments[1], leg.Segments[2], leg.BaseOffset, utils.Deg(leg.BaseAngle))
}

// Matrix returns a 4x4 matrix to transform a vector in the leg's coordinate
// space into the parent (body) space.
func (leg Leg) Matrix() math3d.Matrix44 {
	return math3d.MakeMatrix44(leg.BaseOffset, leg.BaseAxis, leg.BaseAngle)
}

func (leg Leg) validate() {
	for _, s := range leg.Segments {
		s.validate()
	}
}

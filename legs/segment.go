package legs

import (
	"fmt"

	"github.com/adammck/legsim/math3d"
	"github.com/adammck/legsim/utils"
)

// Segment is one joint plus the rigid link which it moves. Angles are in
// radians.
type Segment struct {
	Name string

	// The axis of this segment's motor, in the parent segment's frame.
	Axis math3d.Vector3

	// Inclusive bounds of the joint. Min must not exceed Max.
	Min float64
	Max float64

	// Current joint angle. Always within [Min, Max].
	Angle float64

	// Translation, in this segment's own (unrotated) frame, to the origin of
	// the next segment in the chain.
	Connect math3d.Vector3

	// Physical extent of the link. Only used for rendering.
	Dimensions math3d.Vector3

	// Translation which centers the link's geometry on the joint axis. This is
	// cosmetic; it never propagates down the chain.
	BaseOffset math3d.Vector3
}

func (s Segment) String() string {
	return fmt.Sprintf("&Seg{%s: %+.2f° [%+.2f°, %+.2f°]}", s.Name, utils.Deg(s.Angle), utils.Deg(s.Min), utils.Deg(s.Max))
}

// Rotation returns the matrix which rotates by the current joint angle around
// the joint axis.
func (s Segment) Rotation() math3d.Matrix44 {
	return math3d.MakeRotationMatrix(s.Axis, s.Angle)
}

// validate panics if the segment's limits or angle are inconsistent. Geometry
// is hard-coded, so this can only be a programming error.
func (s Segment) validate() {
	if s.Min > s.Max {
		panic(fmt.Sprintf("segment %s: min angle %v exceeds max angle %v", s.Name, s.Min, s.Max))
	}

	if s.Angle < s.Min || s.Angle > s.Max {
		panic(fmt.Sprintf("segment %s: angle %v outside [%v, %v]", s.Name, s.Angle, s.Min, s.Max))
	}
}

// setAngle moves the joint to the given angle, clamping it to the limits.
// Returns false if clamping was necessary.
func (s *Segment) setAngle(a float64) bool {
	if a > s.Max {
		s.Angle = s.Max
		return false
	}

	if a < s.Min {
		s.Angle = s.Min
		return false
	}

	s.Angle = a
	return true
}

package legs

import (
	"math"

	"github.com/adammck/legsim/math3d"
)

const (

	// Half the extent of the body on the X and Z axes. Legs are mounted along
	// the long (X) edges.
	bodyHalfLength = 1.5
	bodyHalfWidth  = 1.0

	// The spacing (on the X axis) between the front, mid, and back legs.
	legSpacing = 1.25
)

var (
	// BodyDimensions is the size of the static body box which the legs are
	// mounted to.
	BodyDimensions = math3d.Vector3{X: bodyHalfLength * 2, Y: 0.5, Z: bodyHalfWidth * 2}
)

// ReferenceLeg returns the leg geometry which every robot is built from: a coxa
// which swings around the vertical axis, then a femur and tibia which both
// pitch around Z. All angles start at zero, with the leg sticking straight out
// along +X.
func ReferenceLeg(name string) Leg {
	return Leg{
		Name: name,
		Segments: [NumSegments]Segment{
			{
				Name:       "coxa",
				Axis:       math3d.AxisY,
				Min:        -math.Pi,
				Max:        math.Pi,
				Connect:    math3d.Vector3{X: 1},
				Dimensions: math3d.Vector3{X: 1, Y: 1, Z: 1},
				BaseOffset: math3d.Vector3{X: 0.5},
			},
			{
				Name:       "femur",
				Axis:       math3d.AxisZ,
				Min:        -math.Pi / 2,
				Max:        math.Pi / 2,
				Connect:    math3d.Vector3{X: 3},
				Dimensions: math3d.Vector3{X: 3, Y: 1, Z: 1},
				BaseOffset: math3d.Vector3{X: 1.5},
			},
			{
				Name:       "tibia",
				Axis:       math3d.AxisZ,
				Min:        -math.Pi / 4,
				Max:        math.Pi / 4,
				Connect:    math3d.Vector3{X: 3},
				Dimensions: math3d.Vector3{X: 3, Y: 1, Z: 1},
				BaseOffset: math3d.Vector3{X: 1.5},
			},
		},
		BaseAxis: math3d.AxisY,
	}
}

// NewSingleLegRobot creates the reference configuration: a single leg, mounted
// at the origin with no rotation.
func NewSingleLegRobot() *Robot {
	return NewRobot(ReferenceLeg("leg0"))
}

// NewHexapodRobot creates a robot with six reference legs mounted around the
// edge of the body, each rotated to point directly away from it.
func NewHexapodRobot() *Robot {
	return NewRobot(
		mountedLeg("FL", -legSpacing, +1), // Front Left  - 0
		mountedLeg("FR", -legSpacing, -1), // Front Right - 1
		mountedLeg("MR", 0, -1),           // Mid Right   - 2
		mountedLeg("BR", +legSpacing, -1), // Back Right  - 3
		mountedLeg("BL", +legSpacing, +1), // Back Left   - 4
		mountedLeg("ML", 0, +1),           // Mid Left    - 5
	)
}

// mountedLeg returns a reference leg mounted at x along the body, on the +Z
// (side=+1) or -Z (side=-1) edge. The leg points along +X in its own space, so
// is turned a quarter around Y to face outwards.
func mountedLeg(name string, x float64, side float64) Leg {
	leg := ReferenceLeg(name)
	leg.BaseOffset = math3d.Vector3{X: x, Z: side * bodyHalfWidth}
	leg.BaseAngle = -side * math.Pi / 2
	return leg
}

package math3d

import (
	"fmt"
	"math"

	"github.com/adammck/legsim/utils"
)

// EulerAngles is an orientation expressed as rotations (in radians) around the
// vertical axis, then the lateral axis, then the forward axis.
type EulerAngles struct {
	Heading float64 // y
	Pitch   float64 // x
	Bank    float64 // z
}

var (
	IdentityOrientation = EulerAngles{}
)

// MakeEulerAngles returns an orientation from angles given in degrees.
func MakeEulerAngles(h float64, p float64, b float64) EulerAngles {
	return EulerAngles{utils.Rad(h), utils.Rad(p), utils.Rad(b)}
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{h=%+.2f° p=%+.2f° b=%+.2f°}", utils.Deg(ea.Heading), utils.Deg(ea.Pitch), utils.Deg(ea.Bank))
}

// Forward returns the unit vector which points in the direction described by
// the heading and pitch, where a heading of zero looks down +X and positive
// headings turn towards +Z. Bank doesn't change the direction, only the roll
// around it.
func (ea EulerAngles) Forward() Vector3 {
	cp := math.Cos(ea.Pitch)
	return Vector3{
		X: math.Cos(ea.Heading) * cp,
		Y: math.Sin(ea.Pitch),
		Z: math.Sin(ea.Heading) * cp,
	}.Unit()
}

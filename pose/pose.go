// Package pose turns the joint angles of a robot into oriented boxes in world
// space, for a renderer to draw.
//
// Each leg is a chain of segments. The world transform of segment j is built
// from the transform of segment j-1 by first translating by the parent's
// connect offset, then rotating by segment j's own joint angle:
//
//	S(0) = R(0)
//	S(j) = R(j) * T(connect(j-1)) * S(j-1)
//
// using the row-vector convention of math3d, where products apply left to
// right. The shape drawn for segment j is T(baseOffset(j)) * S(j). The base
// offset is cosmetic, so it is never carried down the chain. Swapping the order
// of T and R gives a different (wrong) pose.
package pose

import (
	"fmt"

	"github.com/adammck/legsim/legs"
	"github.com/adammck/legsim/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "pose",
})

// Color is an RGB color, with each component between 0 and 1.
type Color struct {
	R float64
	G float64
	B float64
}

func (c Color) Array() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

var (
	// BodyColor is the color of the static body shape.
	BodyColor = Color{0, 1, 1}
)

// SegmentColor returns the color of the segment at the given position in its
// chain. Purely cosmetic.
func SegmentColor(j int) Color {
	return Color{R: float64(j) / 2, G: 1, B: 1}
}

// Shape is a box to be drawn: its size, where it is, and what color it is. A
// unit cube centered on the origin, scaled by Dimensions then transformed by
// Transform, gives the box in world space.
type Shape struct {
	Dimensions math3d.Vector3
	Transform  math3d.Matrix44
	Color      Color
}

func (s Shape) String() string {
	return fmt.Sprintf("&Shape{%s at %s}", s.Dimensions, s.Transform.Translation())
}

// Body returns the shape of the static body which legs are mounted to.
func Body() Shape {
	return Shape{
		Dimensions: legs.BodyDimensions,
		Transform:  math3d.IdentityMatrix44,
		Color:      BodyColor,
	}
}

// Builder builds shapes from the current state of a robot. The zero value
// roots every leg at the world origin.
type Builder struct {

	// If true, each leg's chain starts from its mounting pose on the body
	// rather than from the origin.
	Mounted bool
}

// Shapes returns one shape per segment of every leg of the robot: leg by leg,
// root to tip. The result is rebuilt from scratch every call, and doesn't
// modify the robot.
func (b Builder) Shapes(r *legs.Robot) []Shape {
	shapes := make([]Shape, 0, r.NumLegs()*legs.NumSegments)

	for i := 0; i < r.NumLegs(); i++ {
		leg := r.Leg(i)

		root := math3d.IdentityMatrix44
		if b.Mounted {
			root = leg.Matrix()
		}

		ls := LegShapes(leg, root)
		shapes = append(shapes, ls[:]...)
	}

	log.Debugf("built %d shapes", len(shapes))
	return shapes
}

// LegShapes returns the shapes of the segments of a single leg, root to tip,
// where root transforms from the leg's space into world space.
func LegShapes(leg legs.Leg, root math3d.Matrix44) [legs.NumSegments]Shape {
	var shapes [legs.NumSegments]Shape

	for j, m := range Chain(leg, root) {
		seg := leg.Segments[j]
		shapes[j] = Shape{
			Dimensions: seg.Dimensions,
			Transform:  math3d.MultiplyMatrices(math3d.MakeTranslationMatrix(seg.BaseOffset), m),
			Color:      SegmentColor(j),
		}
	}

	return shapes
}

// Chain returns the world transform of each segment of the leg, root to tip.
// These are the joint frames: rotated by the joint angle, but not including
// the cosmetic base offset.
func Chain(leg legs.Leg, root math3d.Matrix44) [legs.NumSegments]math3d.Matrix44 {
	var chain [legs.NumSegments]math3d.Matrix44
	m := root

	for j, seg := range leg.Segments {
		if j > 0 {
			m = math3d.MultiplyMatrices(math3d.MakeTranslationMatrix(leg.Segments[j-1].Connect), m)
		}

		m = math3d.MultiplyMatrices(seg.Rotation(), m)
		chain[j] = m
	}

	return chain
}

// Tip returns the position, in the same space as root, of the end of the last
// segment of the leg.
func Tip(leg legs.Leg, root math3d.Matrix44) math3d.Vector3 {
	chain := Chain(leg, root)
	last := legs.NumSegments - 1
	return leg.Segments[last].Connect.MultiplyByMatrix44(chain[last])
}

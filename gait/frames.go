package gait

import (
	"fmt"
	"math"
)

const (
	numLegs = 6
)

// Frame is the position of a single leg at one point in the gait cycle, as
// ratios. Swing is how far through its sweep the foot is (0 is fully back, 1 is
// fully forward), and Lift is how far off the ground it is.
type Frame struct {
	Swing float64
	Lift  float64
}

type Frames []Frame

// Cycle is a precomputed gait: a list of frames for each of six legs, all the
// same length. Robots with fewer legs use a prefix; robots with more wrap
// around.
type Cycle struct {
	legs   [numLegs]Frames
	length int
}

// Length returns the number of frames in a full cycle of the gait, such that the
// feet are back in their original position.
func (c *Cycle) Length() int {
	return c.length
}

// Frame returns the frame for the given leg index at the given frame number.
// Both wrap around, which spares the caller from checking bounds.
func (c *Cycle) Frame(leg int, n int) Frame {
	return c.legs[leg%numLegs][n%c.length]
}

// MakeCycle precomputes a gait in which legs are lifted groupSize at a time,
// each lift taking framesPerStep frames. Only groups of two (ripple) and three
// (tripod) are supported.
func MakeCycle(groupSize int, framesPerStep int) (Cycle, error) {
	if framesPerStep < 1 {
		return Cycle{}, fmt.Errorf("invalid frames per step: %d", framesPerStep)
	}

	framesPerCycle := framesPerStep * (numLegs / groupSize)
	cc, err := curveCenters(groupSize, framesPerCycle)
	if err != nil {
		return Cycle{}, err
	}

	var legs [numLegs]Frames
	for i := 0; i < numLegs; i += 1 {
		legs[i] = singleLegCycle(framesPerCycle, framesPerStep, cc[i])
	}

	return Cycle{
		legs:   legs,
		length: framesPerCycle,
	}, nil
}

// curveCenters returns the frame at which each leg is at the top of its step.
func curveCenters(groupSize int, framesPerCycle int) ([numLegs]float64, error) {
	switch groupSize {

	// Two at a time (three groups):
	//
	// |1|2|3|4|5|6|7|8|9|0|1|2|
	// |---4---|---4---|---4---|
	//     ^       ^       ^
	//     2       6      10
	case 2:
		p := float64(framesPerCycle) / 12
		return [numLegs]float64{
			0: p * 2,
			1: p * 6,
			2: p * 10,
			3: p * 2,
			4: p * 6,
			5: p * 10,
		}, nil

	// Three (two groups), alternating sides:
	//
	// |1|2|3|4|5|6|7|8|9|0|1|2|
	// |-----6-----|-----6-----|
	//       ^           ^
	//       3           9
	case 3:
		p := float64(framesPerCycle) / 12
		return [numLegs]float64{
			0: p * 3,
			1: p * 9,
			2: p * 3,
			3: p * 9,
			4: p * 3,
			5: p * 9,
		}, nil

	default:
		return [numLegs]float64{}, fmt.Errorf("invalid group size: %d", groupSize)
	}
}

func singleLegCycle(framesPerCycle, framesPerStep int, stepCurveCenter float64) Frames {
	frameList := make(Frames, framesPerCycle)
	fps := float64(framesPerStep)
	fpc := float64(framesPerCycle)

	curveStart := stepCurveCenter - fps/2
	curveEnd := stepCurveCenter + fps/2
	stance := fpc - fps

	for i := 0.0; i < fpc; i += 1.0 {
		f := Frame{}

		// Step height is a bell curve
		f.Lift = math.Pow(2, -math.Pow((i-stepCurveCenter)*((math.E*2)/fps), 2))

		// While lifted, the foot sweeps forwards along a sine from 0 to 1. While
		// planted, it's dragged back linearly, ready for the next step.
		switch {
		case i < curveStart:
			f.Swing = 1 - ((i + fpc - curveEnd) / stance)

		case i > curveEnd:
			f.Swing = 1 - ((i - curveEnd) / stance)

		default:
			x := (i - curveStart) / fps
			f.Swing = 0.5 - (math.Cos(x*math.Pi) / 2)
		}

		frameList[int(i)] = f
	}

	return frameList
}

package gait

import (
	"math"
	"testing"

	"github.com/adammck/legsim/legs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tibiaOnly returns an oscillator for the tibia of the first leg, which has a
// range of [-π/4, π/4].
func tibiaOnly() *Oscillator {
	return NewOscillator(Joint{Leg: 0, Segment: 2})
}

func TestOscillatorTriangleWave(t *testing.T) {
	r := legs.NewSingleLegRobot()
	o := tibiaOnly()
	q := math.Pi / 4

	type eg struct {
		angle float64
		dir   Direction
	}

	// Landing exactly on a limit is accepted. The following tick overshoots, is
	// clamped to the same limit, and reverses.
	examples := []eg{
		{+q, Forward},
		{+q, Reverse},
		{+0, Reverse},
		{-q, Reverse},
		{-q, Forward},
		{+0, Forward},
		{+q, Forward},
		{+q, Reverse},
	}

	for i, x := range examples {
		o.Tick(r, q)
		assert.InDelta(t, x.angle, r.Angle(0, 2), 1e-12, "tick %d", i+1)
		assert.Equal(t, x.dir, o.Direction(0), "tick %d", i+1)
	}
}

func TestOscillatorClampsOvershoot(t *testing.T) {
	r := legs.NewSingleLegRobot()
	o := tibiaOnly()
	q := math.Pi / 4

	exp := []float64{0.3, 0.6, q, q - 0.3, q - 0.6, q - 0.9, q - 1.2, q - 1.5, -q, -q + 0.3}
	for i, e := range exp {
		o.Tick(r, 0.3)
		assert.InDelta(t, e, r.Angle(0, 2), 1e-9, "tick %d", i+1)
	}
}

func TestOscillatorZeroDt(t *testing.T) {
	r := legs.NewSingleLegRobot()
	o := ReferenceOscillator()

	o.Tick(r, 0.2)
	before := r.Leg(0)

	for i := 0; i < 10; i++ {
		o.Tick(r, 0)
	}

	assert.Equal(t, before, r.Leg(0))
	assert.Equal(t, Forward, o.Direction(0))
	assert.Equal(t, Forward, o.Direction(1))
}

func TestOscillatorZeroWidthRangeTogglesEveryTick(t *testing.T) {
	leg := legs.ReferenceLeg("stiff")
	leg.Segments[1].Min = 0
	leg.Segments[1].Max = 0
	r := legs.NewRobot(leg)
	o := NewOscillator(Joint{Leg: 0, Segment: 1})

	dir := Forward
	for i := 0; i < 6; i++ {
		o.Tick(r, 0.1)
		dir = -dir
		assert.Equal(t, dir, o.Direction(0), "tick %d", i+1)
		assert.Equal(t, 0.0, r.Angle(0, 1))
	}
}

func TestReferenceOscillatorLeavesCoxaAlone(t *testing.T) {
	r := legs.NewSingleLegRobot()
	o := ReferenceOscillator()

	for i := 0; i < 100; i++ {
		o.Tick(r, 0.05)
	}

	assert.Equal(t, 0.0, r.Angle(0, 0))
	assert.NotEqual(t, 0.0, r.Angle(0, 1))
	assert.NotEqual(t, 0.0, r.Angle(0, 2))
}

func TestReferenceOscillatorJointsAreIndependent(t *testing.T) {
	r := legs.NewSingleLegRobot()
	o := ReferenceOscillator()

	// After one second, the tibia (±π/4) has already bounced off its limit but
	// the femur (±π/2) has not.
	for i := 0; i < 10; i++ {
		o.Tick(r, 0.1)
	}

	assert.InDelta(t, 1.0, r.Angle(0, 1), 1e-9)
	assert.Equal(t, Forward, o.Direction(0))
	assert.InDelta(t, math.Pi/4-0.2, r.Angle(0, 2), 1e-9)
	assert.Equal(t, Reverse, o.Direction(1))
}

func TestAllLegsOscillator(t *testing.T) {
	r := legs.NewHexapodRobot()
	o := AllLegsOscillator(r)

	joints := o.Joints()
	require.Len(t, joints, r.NumLegs()*(legs.NumSegments-1))
	assert.Equal(t, Joint{Leg: 0, Segment: 1}, joints[0])
	assert.Equal(t, Joint{Leg: 5, Segment: 2}, joints[len(joints)-1])

	o.Tick(r, 0.25)
	for l := 0; l < r.NumLegs(); l++ {
		assert.Equal(t, 0.0, r.Angle(l, 0))
		assert.InDelta(t, 0.25, r.Angle(l, 1), 1e-12)
		assert.InDelta(t, 0.25, r.Angle(l, 2), 1e-12)
	}
}

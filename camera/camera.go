package camera

import (
	"fmt"
	"math"

	"github.com/adammck/legsim/math3d"
	"github.com/adammck/legsim/utils"
)

// Movement is a direction which the camera can be moved in, relative to where
// it is looking. This keeps the camera independent of any particular input
// system.
type Movement int

const (
	MoveForward Movement = iota
	MoveBackward
	MoveLeft
	MoveRight
)

const (

	// Defaults. Yaw of -90° looks down -Z, at the origin from the default
	// position.
	DefaultYaw         = -90.0 // degrees
	DefaultPitch       = 0.0   // degrees
	DefaultSpeed       = 2.5   // units per second
	DefaultSensitivity = 0.1   // degrees per pixel
	DefaultZoom        = 45.0  // degrees of vertical field of view
	DefaultAspect      = 800.0 / 600.0
	DefaultNear        = 0.1
	DefaultFar         = 100.0

	// Pitch is constrained to avoid flipping over the top.
	maxPitch = 89.0

	minZoom = 1.0
	maxZoom = 45.0
)

var (
	DefaultPosition = math3d.Vector3{X: 0, Y: 0, Z: 3}
)

// Camera is a free-look camera which flies around the scene, with the
// orientation stored as heading (yaw) and pitch.
type Camera struct {
	Position    math3d.Vector3
	Orientation math3d.EulerAngles
	WorldUp     math3d.Vector3

	Speed       float64
	Sensitivity float64

	// Vertical field of view, in degrees.
	Zoom float64

	Aspect float64
	Near   float64
	Far    float64
}

// New returns a camera at the given position, with the default orientation and
// options.
func New(pos math3d.Vector3) *Camera {
	return &Camera{
		Position:    pos,
		Orientation: math3d.MakeEulerAngles(DefaultYaw, DefaultPitch, 0),
		WorldUp:     math3d.AxisY,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
		Aspect:      DefaultAspect,
		Near:        DefaultNear,
		Far:         DefaultFar,
	}
}

func (c Camera) String() string {
	return fmt.Sprintf("&Camera{%s %s zoom=%.1f°}", c.Position, c.Orientation, c.Zoom)
}

// Front returns the unit vector which the camera is looking along.
func (c *Camera) Front() math3d.Vector3 {
	return c.Orientation.Forward()
}

// Right returns the unit vector pointing to the right of the camera.
func (c *Camera) Right() math3d.Vector3 {
	return c.Front().Cross(c.WorldUp).Unit()
}

// Up returns the unit vector pointing out of the top of the camera.
func (c *Camera) Up() math3d.Vector3 {
	return c.Right().Cross(c.Front()).Unit()
}

// Move flies the camera in the given direction, for dt seconds.
func (c *Camera) Move(m Movement, dt float64) {
	v := c.Speed * dt

	switch m {
	case MoveForward:
		c.Position = c.Position.Add(c.Front().MultiplyByScalar(v))
	case MoveBackward:
		c.Position = c.Position.Subtract(c.Front().MultiplyByScalar(v))
	case MoveLeft:
		c.Position = c.Position.Subtract(c.Right().MultiplyByScalar(v))
	case MoveRight:
		c.Position = c.Position.Add(c.Right().MultiplyByScalar(v))
	default:
		panic("invalid movement")
	}
}

// Look turns the camera by the given mouse offsets, in pixels. Positive dx
// turns right, and positive dy looks up.
func (c *Camera) Look(dx, dy float64) {
	yaw := utils.Deg(c.Orientation.Heading) + (dx * c.Sensitivity)
	pitch := utils.Deg(c.Orientation.Pitch) + (dy * c.Sensitivity)
	pitch = utils.Clamp(pitch, -maxPitch, maxPitch)

	c.Orientation.Heading = utils.Rad(yaw)
	c.Orientation.Pitch = utils.Rad(pitch)
}

// Scroll zooms the camera in (positive) or out (negative).
func (c *Camera) Scroll(dy float64) {
	c.Zoom = utils.Clamp(c.Zoom-dy, minZoom, maxZoom)
}

// World returns a matrix which transforms a vector in camera space into world
// space. The camera looks down its own -Z axis.
func (c *Camera) World() math3d.Matrix44 {
	m := math3d.IdentityMatrix44
	m.SetBasis(c.Right(), c.Up(), c.Front().MultiplyByScalar(-1))
	m.SetTranslation(c.Position)
	return m
}

// View returns a matrix which transforms a vector in world space into camera
// space.
func (c *Camera) View() math3d.Matrix44 {
	return c.World().Inverse()
}

// Projection returns the perspective projection for the current zoom.
func (c *Camera) Projection() math3d.Matrix44 {
	return math3d.MakePerspectiveMatrix(utils.Rad(c.Zoom), c.Aspect, c.Near, c.Far)
}

// Orbit swings the camera around target, about the world up axis, by the given
// number of degrees. Afterwards it is looking directly at target.
func (c *Camera) Orbit(target math3d.Vector3, degrees float64) {
	rot := math3d.MakeRotationMatrix(c.WorldUp, utils.Rad(degrees))
	off := c.Position.Subtract(target).MultiplyByMatrix44(rot)
	c.Position = target.Add(off)

	dir := target.Subtract(c.Position).Unit()
	c.Orientation.Heading = math.Atan2(dir.Z, dir.X)
	c.Orientation.Pitch = math.Asin(utils.Clamp(dir.Y, -1, 1))
}

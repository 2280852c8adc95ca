package math3d

import (
	"fmt"
	"math"
)

// Matrix44 is a 4x4 transformation matrix using the row-vector convention: a
// point is transformed by multiplying it on the left (v * M), and the
// translation lives in the fourth row. Transforms therefore compose left to
// right in the order they are applied, i.e. MultiplyMatrices(a, b) applies a
// first, then b.
type Matrix44 struct {
	m11 float64 // 0
	m12 float64 // 1
	m13 float64 // 2
	m14 float64 // 3
	m21 float64 // 4
	m22 float64 // 5
	m23 float64 // 6
	m24 float64 // 7
	m31 float64 // 8
	m32 float64 // 9
	m33 float64 // 10
	m34 float64 // 11
	m41 float64 // 12
	m42 float64 // 13
	m43 float64 // 14
	m44 float64 // 15
}

var (
	IdentityMatrix44 = Matrix44{
		m11: 1,
		m22: 1,
		m33: 1,
		m44: 1,
	}
)

// MakeMatrix44FromElements builds a matrix from rows of elements, in the same
// layout as returned by Elements.
func MakeMatrix44FromElements(e [4][4]float64) Matrix44 {
	return Matrix44{
		e[0][0], e[0][1], e[0][2], e[0][3],
		e[1][0], e[1][1], e[1][2], e[1][3],
		e[2][0], e[2][1], e[2][2], e[2][3],
		e[3][0], e[3][1], e[3][2], e[3][3],
	}
}

// MakeTranslationMatrix returns a matrix which moves points by v.
func MakeTranslationMatrix(v Vector3) Matrix44 {
	m := IdentityMatrix44
	m.SetTranslation(v)
	return m
}

// MakeRotationMatrix returns a matrix which rotates points by angle (radians)
// around the given axis, following the right-hand rule. The axis is normalized
// first, so it need only point the right way. A zero axis yields the identity.
func MakeRotationMatrix(axis Vector3, angle float64) Matrix44 {
	m := IdentityMatrix44
	m.SetAxisAngle(axis, angle)
	return m
}

// MakeMatrix44 returns a matrix which rotates around the axis, then translates
// by v. This is the pose of a rigid body mounted at v.
func MakeMatrix44(v Vector3, axis Vector3, angle float64) Matrix44 {
	m := MakeRotationMatrix(axis, angle)
	m.SetTranslation(v)
	return m
}

// MakePerspectiveMatrix returns a projection matrix for the given vertical
// field of view (radians), aspect ratio, and clipping planes. This is the
// transpose of the usual OpenGL perspective matrix, to fit the row-vector
// convention.
func MakePerspectiveMatrix(fovy, aspect, near, far float64) Matrix44 {
	f := 1 / math.Tan(fovy/2)
	return Matrix44{
		m11: f / aspect,
		m22: f,
		m33: (far + near) / (near - far),
		m34: -1,
		m43: (2 * far * near) / (near - far),
	}
}

func (m Matrix44) String() string {
	return fmt.Sprintf(
		"&M44{%+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f}",
		m.m11, m.m12, m.m13, m.m14,
		m.m21, m.m22, m.m23, m.m24,
		m.m31, m.m32, m.m33, m.m34,
		m.m41, m.m42, m.m43, m.m44)
}

// Elements returns the matrix as a 4x4 array of float64s, row by row.
func (m Matrix44) Elements() [4][4]float64 {
	return [4][4]float64{
		{m.m11, m.m12, m.m13, m.m14},
		{m.m21, m.m22, m.m23, m.m24},
		{m.m31, m.m32, m.m33, m.m34},
		{m.m41, m.m42, m.m43, m.m44},
	}
}

// Array returns the sixteen elements in storage order. Because of the
// row-vector convention, this is exactly the column-major layout which OpenGL
// expects for a column-vector matrix, so it can be uploaded as-is.
func (m Matrix44) Array() [16]float64 {
	return [16]float64{
		m.m11, m.m12, m.m13, m.m14,
		m.m21, m.m22, m.m23, m.m24,
		m.m31, m.m32, m.m33, m.m34,
		m.m41, m.m42, m.m43, m.m44,
	}
}

// Translation returns the translation component of the matrix, which is where
// the origin of the local space ends up.
func (m Matrix44) Translation() Vector3 {
	return Vector3{m.m41, m.m42, m.m43}
}

// Transpose returns the matrix flipped over its diagonal.
func (m Matrix44) Transpose() Matrix44 {
	return Matrix44{
		m.m11, m.m21, m.m31, m.m41,
		m.m12, m.m22, m.m32, m.m42,
		m.m13, m.m23, m.m33, m.m43,
		m.m14, m.m24, m.m34, m.m44,
	}
}

// InDelta returns true if every element of the matrix is within delta of the
// corresponding element of mm.
func (m Matrix44) InDelta(mm Matrix44, delta float64) bool {
	a := m.Array()
	b := mm.Array()
	for i := range a {
		if math.Abs(a[i]-b[i]) > delta {
			return false
		}
	}

	return true
}

// Inverse returns the inverse of the matrix, or the zero matrix if it has
// none.
//
// This implementation is stolen from threejs. The sixteen expressions are the
// adjugate, which is then scaled by the reciprocal of the determinant.
//
// See: https://github.com/mrdoob/three.js/blob/master/src/math/Matrix4.js
func (m Matrix44) Inverse() Matrix44 {
	a := Matrix44{
		(m.m23 * m.m34 * m.m42) - (m.m24 * m.m33 * m.m42) + (m.m24 * m.m32 * m.m43) - (m.m22 * m.m34 * m.m43) - (m.m23 * m.m32 * m.m44) + (m.m22 * m.m33 * m.m44),
		(m.m14 * m.m33 * m.m42) - (m.m13 * m.m34 * m.m42) - (m.m14 * m.m32 * m.m43) + (m.m12 * m.m34 * m.m43) + (m.m13 * m.m32 * m.m44) - (m.m12 * m.m33 * m.m44),
		(m.m13 * m.m24 * m.m42) - (m.m14 * m.m23 * m.m42) + (m.m14 * m.m22 * m.m43) - (m.m12 * m.m24 * m.m43) - (m.m13 * m.m22 * m.m44) + (m.m12 * m.m23 * m.m44),
		(m.m14 * m.m23 * m.m32) - (m.m13 * m.m24 * m.m32) - (m.m14 * m.m22 * m.m33) + (m.m12 * m.m24 * m.m33) + (m.m13 * m.m22 * m.m34) - (m.m12 * m.m23 * m.m34),
		(m.m24 * m.m33 * m.m41) - (m.m23 * m.m34 * m.m41) - (m.m24 * m.m31 * m.m43) + (m.m21 * m.m34 * m.m43) + (m.m23 * m.m31 * m.m44) - (m.m21 * m.m33 * m.m44),
		(m.m13 * m.m34 * m.m41) - (m.m14 * m.m33 * m.m41) + (m.m14 * m.m31 * m.m43) - (m.m11 * m.m34 * m.m43) - (m.m13 * m.m31 * m.m44) + (m.m11 * m.m33 * m.m44),
		(m.m14 * m.m23 * m.m41) - (m.m13 * m.m24 * m.m41) - (m.m14 * m.m21 * m.m43) + (m.m11 * m.m24 * m.m43) + (m.m13 * m.m21 * m.m44) - (m.m11 * m.m23 * m.m44),
		(m.m13 * m.m24 * m.m31) - (m.m14 * m.m23 * m.m31) + (m.m14 * m.m21 * m.m33) - (m.m11 * m.m24 * m.m33) - (m.m13 * m.m21 * m.m34) + (m.m11 * m.m23 * m.m34),
		(m.m22 * m.m34 * m.m41) - (m.m24 * m.m32 * m.m41) + (m.m24 * m.m31 * m.m42) - (m.m21 * m.m34 * m.m42) - (m.m22 * m.m31 * m.m44) + (m.m21 * m.m32 * m.m44),
		(m.m14 * m.m32 * m.m41) - (m.m12 * m.m34 * m.m41) - (m.m14 * m.m31 * m.m42) + (m.m11 * m.m34 * m.m42) + (m.m12 * m.m31 * m.m44) - (m.m11 * m.m32 * m.m44),
		(m.m12 * m.m24 * m.m41) - (m.m14 * m.m22 * m.m41) + (m.m14 * m.m21 * m.m42) - (m.m11 * m.m24 * m.m42) - (m.m12 * m.m21 * m.m44) + (m.m11 * m.m22 * m.m44),
		(m.m14 * m.m22 * m.m31) - (m.m12 * m.m24 * m.m31) - (m.m14 * m.m21 * m.m32) + (m.m11 * m.m24 * m.m32) + (m.m12 * m.m21 * m.m34) - (m.m11 * m.m22 * m.m34),
		(m.m23 * m.m32 * m.m41) - (m.m22 * m.m33 * m.m41) - (m.m23 * m.m31 * m.m42) + (m.m21 * m.m33 * m.m42) + (m.m22 * m.m31 * m.m43) - (m.m21 * m.m32 * m.m43),
		(m.m12 * m.m33 * m.m41) - (m.m13 * m.m32 * m.m41) + (m.m13 * m.m31 * m.m42) - (m.m11 * m.m33 * m.m42) - (m.m12 * m.m31 * m.m43) + (m.m11 * m.m32 * m.m43),
		(m.m13 * m.m22 * m.m41) - (m.m12 * m.m23 * m.m41) - (m.m13 * m.m21 * m.m42) + (m.m11 * m.m23 * m.m42) + (m.m12 * m.m21 * m.m43) - (m.m11 * m.m22 * m.m43),
		(m.m12 * m.m23 * m.m31) - (m.m13 * m.m22 * m.m31) + (m.m13 * m.m21 * m.m32) - (m.m11 * m.m23 * m.m32) - (m.m12 * m.m21 * m.m33) + (m.m11 * m.m22 * m.m33),
	}

	det := (m.m11 * a.m11) + (m.m21 * a.m12) + (m.m31 * a.m13) + (m.m41 * a.m14)
	if det == 0 {
		return Matrix44{}
	}

	return a.multiplyByScalar(1 / det)
}

func (m Matrix44) multiplyByScalar(s float64) Matrix44 {
	e := m.Array()
	for i := range e {
		e[i] *= s
	}

	return Matrix44{
		e[0], e[1], e[2], e[3],
		e[4], e[5], e[6], e[7],
		e[8], e[9], e[10], e[11],
		e[12], e[13], e[14], e[15],
	}
}

// MultiplyMatrices multiplies two 4x4 matrices together. The result applies a,
// then b.
func MultiplyMatrices(a Matrix44, b Matrix44) Matrix44 {
	return Matrix44{
		(a.m11 * b.m11) + (a.m12 * b.m21) + (a.m13 * b.m31) + (a.m14 * b.m41),
		(a.m11 * b.m12) + (a.m12 * b.m22) + (a.m13 * b.m32) + (a.m14 * b.m42),
		(a.m11 * b.m13) + (a.m12 * b.m23) + (a.m13 * b.m33) + (a.m14 * b.m43),
		(a.m11 * b.m14) + (a.m12 * b.m24) + (a.m13 * b.m34) + (a.m14 * b.m44),
		(a.m21 * b.m11) + (a.m22 * b.m21) + (a.m23 * b.m31) + (a.m24 * b.m41),
		(a.m21 * b.m12) + (a.m22 * b.m22) + (a.m23 * b.m32) + (a.m24 * b.m42),
		(a.m21 * b.m13) + (a.m22 * b.m23) + (a.m23 * b.m33) + (a.m24 * b.m43),
		(a.m21 * b.m14) + (a.m22 * b.m24) + (a.m23 * b.m34) + (a.m24 * b.m44),
		(a.m31 * b.m11) + (a.m32 * b.m21) + (a.m33 * b.m31) + (a.m34 * b.m41),
		(a.m31 * b.m12) + (a.m32 * b.m22) + (a.m33 * b.m32) + (a.m34 * b.m42),
		(a.m31 * b.m13) + (a.m32 * b.m23) + (a.m33 * b.m33) + (a.m34 * b.m43),
		(a.m31 * b.m14) + (a.m32 * b.m24) + (a.m33 * b.m34) + (a.m34 * b.m44),
		(a.m41 * b.m11) + (a.m42 * b.m21) + (a.m43 * b.m31) + (a.m44 * b.m41),
		(a.m41 * b.m12) + (a.m42 * b.m22) + (a.m43 * b.m32) + (a.m44 * b.m42),
		(a.m41 * b.m13) + (a.m42 * b.m23) + (a.m43 * b.m33) + (a.m44 * b.m43),
		(a.m41 * b.m14) + (a.m42 * b.m24) + (a.m43 * b.m34) + (a.m44 * b.m44),
	}
}

// SetAxisAngle overwrites the upper 3x3 of the matrix with a rotation of angle
// radians around axis (Rodrigues' formula, transposed for row vectors). The
// translation row is left alone.
func (m *Matrix44) SetAxisAngle(axis Vector3, angle float64) {
	u := axis.Unit()
	if u.Zero() {
		u, angle = AxisX, 0
	}

	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c

	m.m11 = (t * u.X * u.X) + c
	m.m12 = (t * u.X * u.Y) + (s * u.Z)
	m.m13 = (t * u.X * u.Z) - (s * u.Y)
	m.m14 = 0
	m.m21 = (t * u.X * u.Y) - (s * u.Z)
	m.m22 = (t * u.Y * u.Y) + c
	m.m23 = (t * u.Y * u.Z) + (s * u.X)
	m.m24 = 0
	m.m31 = (t * u.X * u.Z) + (s * u.Y)
	m.m32 = (t * u.Y * u.Z) - (s * u.X)
	m.m33 = (t * u.Z * u.Z) + c
	m.m34 = 0
	m.m44 = 1
}

// SetBasis overwrites the upper 3x3 of the matrix with the given axes, such
// that the local X, Y, and Z axes map onto x, y, and z.
func (m *Matrix44) SetBasis(x, y, z Vector3) {
	m.m11, m.m12, m.m13, m.m14 = x.X, x.Y, x.Z, 0
	m.m21, m.m22, m.m23, m.m24 = y.X, y.Y, y.Z, 0
	m.m31, m.m32, m.m33, m.m34 = z.X, z.Y, z.Z, 0
	m.m44 = 1
}

// SetTranslation sets the translation of a matrix by overwriting the fourth
// row. Other cells are left alone.
func (m *Matrix44) SetTranslation(v Vector3) {
	m.m41 = v.X
	m.m42 = v.Y
	m.m43 = v.Z
}

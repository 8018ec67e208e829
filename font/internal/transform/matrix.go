/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package transform provides the affine transforms used to place composite glyph components.
package transform

import (
	"fmt"
	"math"
)

// Matrix is a 2D affine transform applied to row vectors:
//
//	[x' y' 1] = [x y 1] * | a  b  0 |
//	                      | c  d  0 |
//	                      | tx ty 1 |
//
// so that x' = a*x + c*y + tx and y' = b*x + d*y + ty.
type Matrix [9]float64

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return NewMatrix(1, 0, 0, 1, 0, 0)
}

// TranslationMatrix returns a transform that translates by (`tx`, `ty`).
func TranslationMatrix(tx, ty float64) Matrix {
	return NewMatrix(1, 0, 0, 1, tx, ty)
}

// NewMatrix returns an affine transform matrix laid out as described for Matrix.
func NewMatrix(a, b, c, d, tx, ty float64) Matrix {
	return Matrix{
		a, b, 0,
		c, d, 0,
		tx, ty, 1,
	}
}

// String returns a string describing `m`.
func (m Matrix) String() string {
	a, b, c, d, tx, ty := m[0], m[1], m[3], m[4], m[6], m[7]
	return fmt.Sprintf("[%7.4f,%7.4f,%7.4f,%7.4f:%7.4f,%7.4f]", a, b, c, d, tx, ty)
}

// Mult returns `m` × `b`, the transform that applies `m` and then `b`.
func (m Matrix) Mult(b Matrix) Matrix {
	var p Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[3*i+k] * b[3*k+j]
			}
			p[3*i+j] = sum
		}
	}
	return p
}

// Translation returns the translation part of `m`.
func (m Matrix) Translation() (float64, float64) {
	return m[6], m[7]
}

// Transform returns coordinates `x`, `y` transformed by `m`.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	xp := x*m[0] + y*m[3] + m[6]
	yp := x*m[1] + y*m[4] + m[7]
	return xp, yp
}

// Angle returns the angle of the rotation in `m` in degrees, in [0, 360).
func (m Matrix) Angle() float64 {
	theta := math.Atan2(-m[1], m[0])
	if theta < 0.0 {
		theta += 2 * math.Pi
	}
	return theta / math.Pi * 180.0
}

// Inverse returns the inverse of `m` and a bool flag indicating whether it exists.
func (m Matrix) Inverse() (Matrix, bool) {
	a, b, c, d, tx, ty := m[0], m[1], m[3], m[4], m[6], m[7]
	det := a*d - b*c
	if math.Abs(det) < minDeterminant {
		return Matrix{}, false
	}
	aI, bI, cI, dI := d/det, -b/det, -c/det, a/det
	txI := -(tx*aI + ty*cI)
	tyI := -(tx*bI + ty*dI)
	return NewMatrix(aI, bI, cI, dI, txI, tyI), true
}

// minDeterminant is the smallest determinant treated as invertible.
const minDeterminant = 1.0e-30

package xsatmgr

import (
	"fmt"
	"strings"
)

// ColorMatrix is a row-major 3x3 linear transform applied to RGB pixel
// values before display.
type ColorMatrix [9]float64

// Identity returns the identity transform, which leaves colors unchanged.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Saturation returns the luminance-preserving saturation matrix for the
// given level. A level of 1 reproduces the identity, 0 collapses every
// channel to the average of all three (grayscale). Levels outside [0, 1]
// extrapolate and are not clamped; the fixed-point encoder handles the
// resulting negative coefficients.
func Saturation(level float64) ColorMatrix {
	s := (1 - level) / 3
	return ColorMatrix{
		s + level, s, s,
		s, s + level, s,
		s, s, s + level,
	}
}

// Apply transforms an RGB triple by the matrix.
func (m ColorMatrix) Apply(r, g, b float64) (float64, float64, float64) {
	return m[0]*r + m[1]*g + m[2]*b,
		m[3]*r + m[4]*g + m[5]*b,
		m[6]*r + m[7]*g + m[8]*b
}

// String formats the matrix one row per line, four decimal places per
// coefficient.
func (m ColorMatrix) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&sb, "%2.4f:%2.4f:%2.4f\n", m[row*3], m[row*3+1], m[row*3+2])
	}
	return sb.String()
}

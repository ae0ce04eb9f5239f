package xsatmgr

// Fixed is one CTM coefficient in the signed-magnitude Q31.32 fixed-point
// format the DRM color management interface expects: bit 63 carries the
// sign, the low 63 bits carry abs(value) * 2^32. This is not two's
// complement, so the sign and magnitude are kept as separate fields and
// only assembled into a raw word at the wire boundary.
type Fixed struct {
	Negative  bool
	Magnitude uint64
}

// FixedFromFloat64 converts a coefficient to signed-magnitude Q31.32.
// The scaled magnitude is truncated toward zero, matching the hardware
// contract. A negative zero input produces the all-zero encoding; the
// `f < 0` comparison is false for -0.0, so no sign bit is ever set on a
// zero value.
func FixedFromFloat64(f float64) Fixed {
	if f < 0 {
		return Fixed{Negative: true, Magnitude: uint64(-f * (1 << 32))}
	}
	return Fixed{Magnitude: uint64(f * (1 << 32))}
}

// Float64 converts back to a float, losing at most 2^-32 of the original
// coefficient's absolute value.
func (f Fixed) Float64() float64 {
	v := float64(f.Magnitude) / (1 << 32)
	if f.Negative {
		return -v
	}
	return v
}

// Bits assembles the raw 64-bit wire word: sign in bit 63, magnitude in
// the low 63 bits.
func (f Fixed) Bits() uint64 {
	bits := f.Magnitude & (1<<63 - 1)
	if f.Negative {
		bits |= 1 << 63
	}
	return bits
}

// FixedFromBits is the inverse of Bits.
func FixedFromBits(bits uint64) Fixed {
	return Fixed{
		Negative:  bits>>63 != 0,
		Magnitude: bits & (1<<63 - 1),
	}
}

// FixedCTM is a ColorMatrix encoded entry-wise in signed-magnitude Q31.32.
type FixedCTM [9]Fixed

// EncodeCTM converts a color matrix to its fixed-point representation.
func EncodeCTM(m ColorMatrix) FixedCTM {
	var ctm FixedCTM
	for i, c := range m {
		ctm[i] = FixedFromFloat64(c)
	}
	return ctm
}

// DecodeCTM converts a fixed-point matrix back to floats. Each recovered
// coefficient is within 2^-32 of the value originally encoded.
func DecodeCTM(ctm FixedCTM) ColorMatrix {
	var m ColorMatrix
	for i, f := range ctm {
		m[i] = f.Float64()
	}
	return m
}

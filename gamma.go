package xsatmgr

import "math"

// LUTSize is the number of entries in a de/regamma lookup table, matching
// the LUT size advertised by amdgpu.
const LUTSize = 4096

// LUTEntry is one gamma lookup table entry. On the wire each entry
// occupies four 16-bit words: red, green, blue and a reserved word,
// matching struct drm_color_lut.
type LUTEntry struct {
	Red, Green, Blue uint16
}

// LUT is a de/regamma curve sampled over the full input range.
type LUT []LUTEntry

// LinearLUT returns the identity ramp: input passed through unchanged.
func LinearLUT() LUT {
	return rampLUT(func(x float64) float64 { return x })
}

// SRGBDecodeLUT returns the degamma curve mapping sRGB-encoded values to
// linear light.
func SRGBDecodeLUT() LUT {
	return rampLUT(srgbDecode)
}

// SRGBEncodeLUT returns the regamma curve mapping linear light back to
// sRGB-encoded values.
func SRGBEncodeLUT() LUT {
	return rampLUT(srgbEncode)
}

func rampLUT(curve func(float64) float64) LUT {
	lut := make(LUT, LUTSize)
	for i := range lut {
		x := float64(i) / (LUTSize - 1)
		v := uint16(math.Round(curve(x) * 0xFFFF))
		lut[i] = LUTEntry{Red: v, Green: v, Blue: v}
	}
	return lut
}

// Piecewise sRGB transfer functions, IEC 61966-2-1.
func srgbDecode(u float64) float64 {
	if u <= 0.04045 {
		return u / 12.92
	}
	return math.Pow((u+0.055)/1.055, 2.4)
}

func srgbEncode(l float64) float64 {
	if l <= 0.0031308 {
		return 12.92 * l
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// PackLUT lays the table out as 16-bit property elements: red, green,
// blue, reserved (zero) per entry. Each element is returned in the low
// half of a uint32 slot, the width the Session write interface carries.
func PackLUT(lut LUT) []uint32 {
	words := make([]uint32, 0, len(lut)*4)
	for _, e := range lut {
		words = append(words, uint32(e.Red), uint32(e.Green), uint32(e.Blue), 0)
	}
	return words
}

package xsatmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRamp(t *testing.T, lut LUT) {
	t.Helper()
	require.Len(t, lut, LUTSize)
	assert.Equal(t, LUTEntry{}, lut[0])
	assert.Equal(t, LUTEntry{Red: 0xFFFF, Green: 0xFFFF, Blue: 0xFFFF}, lut[LUTSize-1])
	for i := 1; i < len(lut); i++ {
		assert.GreaterOrEqual(t, lut[i].Red, lut[i-1].Red, "entry %d not monotonic", i)
		assert.Equal(t, lut[i].Red, lut[i].Green, "entry %d not gray", i)
		assert.Equal(t, lut[i].Red, lut[i].Blue, "entry %d not gray", i)
	}
}

func TestLinearLUT(t *testing.T) {
	lut := LinearLUT()
	assertRamp(t, lut)
	// midpoint of the ramp sits at half scale
	assert.InDelta(t, 0x8000, int(lut[LUTSize/2].Red), 16)
}

func TestSRGBLUTs(t *testing.T) {
	decode := SRGBDecodeLUT()
	encode := SRGBEncodeLUT()
	assertRamp(t, decode)
	assertRamp(t, encode)

	t.Run("DecodeBowsBelowLinear", func(t *testing.T) {
		mid := LUTSize / 2
		assert.Less(t, decode[mid].Red, LinearLUT()[mid].Red)
		assert.Greater(t, encode[mid].Red, LinearLUT()[mid].Red)
	})

	t.Run("CurvesInvertEachOther", func(t *testing.T) {
		for _, x := range []float64{0, 0.001, 0.04045, 0.2, 0.5, 0.75, 1} {
			assert.InDelta(t, x, srgbEncode(srgbDecode(x)), 1e-12, "input %v", x)
		}
	})
}

func TestPackLUT(t *testing.T) {
	lut := SRGBEncodeLUT()
	words := PackLUT(lut)
	require.Len(t, words, 4*LUTSize)
	for i, e := range lut {
		assert.Equal(t, uint32(e.Red), words[i*4])
		assert.Equal(t, uint32(e.Green), words[i*4+1])
		assert.Equal(t, uint32(e.Blue), words[i*4+2])
		assert.Zero(t, words[i*4+3], "reserved word of entry %d", i)
	}
}

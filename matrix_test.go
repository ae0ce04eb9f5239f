package xsatmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, ColorMatrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, Identity())
}

func TestSaturation(t *testing.T) {
	t.Run("FullSaturationIsIdentity", func(t *testing.T) {
		assert.Equal(t, Identity(), Saturation(1))
	})

	t.Run("ZeroDesaturatesToAverage", func(t *testing.T) {
		m := Saturation(0)
		for i, c := range m {
			assert.InDelta(t, 1.0/3.0, c, 1e-15, "entry %d", i)
		}
	})

	t.Run("Half", func(t *testing.T) {
		expected := ColorMatrix{
			0.6667, 0.1667, 0.1667,
			0.1667, 0.6667, 0.1667,
			0.1667, 0.1667, 0.6667,
		}
		m := Saturation(0.5)
		for i := range expected {
			assert.InDelta(t, expected[i], m[i], 1e-4, "entry %d", i)
		}
	})

	t.Run("NegativeExtrapolation", func(t *testing.T) {
		m := Saturation(-1)
		for i, c := range m {
			if i%4 == 0 {
				assert.InDelta(t, -1.0/3.0, c, 1e-15, "diagonal entry %d", i)
			} else {
				assert.InDelta(t, 2.0/3.0, c, 1e-15, "off-diagonal entry %d", i)
			}
		}
	})
}

func TestColorMatrixApply(t *testing.T) {
	t.Run("IdentityPassesThrough", func(t *testing.T) {
		r, g, b := Identity().Apply(0.2, 0.5, 0.8)
		assert.Equal(t, 0.2, r)
		assert.Equal(t, 0.5, g)
		assert.Equal(t, 0.8, b)
	})

	t.Run("FullDesaturationAverages", func(t *testing.T) {
		r, g, b := Saturation(0).Apply(0.2, 0.5, 0.8)
		assert.InDelta(t, 0.5, r, 1e-15)
		assert.InDelta(t, 0.5, g, 1e-15)
		assert.InDelta(t, 0.5, b, 1e-15)
	})
}

func TestColorMatrixString(t *testing.T) {
	assert.Equal(t,
		"1.0000:0.0000:0.0000\n0.0000:1.0000:0.0000\n0.0000:0.0000:1.0000\n",
		Identity().String())
}

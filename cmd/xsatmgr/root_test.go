package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NogradThGin/xsatmgr"
)

func TestParseCTMRequest(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		m, err := parseCTMRequest("identity")
		require.NoError(t, err)
		assert.Equal(t, xsatmgr.Identity(), m)
	})

	t.Run("LegacyDefault", func(t *testing.T) {
		m, err := parseCTMRequest("default")
		require.NoError(t, err)
		assert.Equal(t, xsatmgr.Identity(), m)
	})

	t.Run("Level", func(t *testing.T) {
		m, err := parseCTMRequest("0.5")
		require.NoError(t, err)
		assert.Equal(t, xsatmgr.Saturation(0.5), m)
	})

	t.Run("ZeroIsValidAndNotIdentity", func(t *testing.T) {
		m, err := parseCTMRequest("0")
		require.NoError(t, err)
		assert.Equal(t, xsatmgr.Saturation(0), m)
		assert.NotEqual(t, xsatmgr.Identity(), m)
	})

	t.Run("Unparseable", func(t *testing.T) {
		_, err := parseCTMRequest("vivid")
		assert.Error(t, err)
	})

	t.Run("NonFinite", func(t *testing.T) {
		for _, opt := range []string{"NaN", "Inf", "-Inf"} {
			_, err := parseCTMRequest(opt)
			assert.Error(t, err, "input %q", opt)
		}
	})
}

func TestParseLUTRequest(t *testing.T) {
	t.Run("Linear", func(t *testing.T) {
		lut, err := parseLUTRequest("linear", false)
		require.NoError(t, err)
		assert.Equal(t, xsatmgr.LinearLUT(), lut)
	})

	t.Run("SRGBDirections", func(t *testing.T) {
		degamma, err := parseLUTRequest("srgb", false)
		require.NoError(t, err)
		regamma, err := parseLUTRequest("srgb", true)
		require.NoError(t, err)
		assert.Equal(t, xsatmgr.SRGBDecodeLUT(), degamma)
		assert.Equal(t, xsatmgr.SRGBEncodeLUT(), regamma)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := parseLUTRequest("bt1886", false)
		assert.Error(t, err)
	})
}

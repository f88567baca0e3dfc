package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/core/coretest"
)

// Trimmed msdf-atlas-gen output: 32px native size, 4px distance range,
// 512x256 atlas with a bottom-left y origin.
const msdfFixture = `{
  "atlas": {
    "type": "msdf",
    "distanceRange": 4,
    "size": 32,
    "width": 512,
    "height": 256,
    "yOrigin": "bottom"
  },
  "metrics": {
    "emSize": 1,
    "lineHeight": 1.2,
    "ascender": 0.75,
    "descender": -0.25
  },
  "glyphs": [
    {
      "unicode": 65,
      "advance": 0.6,
      "planeBounds": {"left": 0.05, "bottom": -0.02, "right": 0.55, "top": 0.7},
      "atlasBounds": {"left": 10, "bottom": 20, "right": 26, "top": 43}
    },
    {
      "unicode": 32,
      "advance": 0.25
    }
  ]
}`

func TestParseMSDFMetrics(t *testing.T) {
	dev := coretest.NewFakeDevice()
	atlas, err := dev.CreateTexture(core.TextureDesc{Width: 512, Height: 256})
	require.NoError(t, err)

	f, err := ParseMSDF([]byte(msdfFixture), atlas)
	require.NoError(t, err)

	assert.Equal(t, float32(32), f.SDFSize())
	assert.Equal(t, float32(4), f.SDFSpread())
	assert.Equal(t, float32(24), f.Ascent()) // 0.75 em * 32
	assert.Equal(t, float32(8), f.Descent()) // -(-0.25 em) * 32
	assert.Equal(t, atlas, f.AtlasTexture())
}

func TestParseMSDFGlyphConversion(t *testing.T) {
	f, err := ParseMSDF([]byte(msdfFixture), nil)
	require.NoError(t, err)

	g, ok := f.Glyph('A')
	require.True(t, ok)
	assert.InDelta(t, 19.2, g.Advance, 1e-4)  // 0.6 em * 32
	assert.InDelta(t, 1.6, g.BearingX, 1e-4)  // 0.05 em * 32
	assert.InDelta(t, 22.4, g.BearingY, 1e-4) // plane top * 32
	assert.InDelta(t, 16.0, g.W, 1e-4)        // (0.55-0.05) em * 32
	assert.InDelta(t, 23.04, g.H, 1e-3)       // (0.7-(-0.02)) em * 32
}

func TestParseMSDFUVFlipsBottomOrigin(t *testing.T) {
	f, err := ParseMSDF([]byte(msdfFixture), nil)
	require.NoError(t, err)

	g, _ := f.Glyph('A')
	assert.InDelta(t, 10.0/512, g.U0, 1e-6)
	assert.InDelta(t, 26.0/512, g.U1, 1e-6)
	// Bottom-left origin: atlas top row 43 maps to v = 1 - 43/256.
	assert.InDelta(t, 1-43.0/256, g.V0, 1e-6)
	assert.InDelta(t, 1-20.0/256, g.V1, 1e-6)
	// Renders top-down: V0 above V1.
	assert.Less(t, g.V0, g.V1)
}

func TestParseMSDFWhitespaceGlyph(t *testing.T) {
	f, err := ParseMSDF([]byte(msdfFixture), nil)
	require.NoError(t, err)

	g, ok := f.Glyph(' ')
	require.True(t, ok)
	assert.InDelta(t, 8.0, g.Advance, 1e-4) // 0.25 em * 32
	assert.Zero(t, g.W)
	assert.Zero(t, g.H)
}

func TestParseMSDFRejectsBadInput(t *testing.T) {
	_, err := ParseMSDF([]byte("{not json"), nil)
	assert.Error(t, err)

	_, err = ParseMSDF([]byte(`{"atlas":{"size":0,"width":0,"height":0}}`), nil)
	assert.Error(t, err)
}

func TestSDFMeasureText(t *testing.T) {
	f, err := ParseMSDF([]byte(msdfFixture), nil)
	require.NoError(t, err)

	// At native size "A A" = 19.2 + 8 + 19.2 wide; missing glyphs measure 0.
	got := f.MeasureText("A A", 32)
	assert.InDelta(t, 46.4, got.X, 1e-3)
	assert.InDelta(t, 32.0, got.Y, 1e-3) // ascent+descent

	// Linear in the requested size.
	half := f.MeasureText("A A", 16)
	assert.InDelta(t, got.X/2, half.X, 1e-3)
}

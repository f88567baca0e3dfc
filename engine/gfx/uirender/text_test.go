package uirender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldergfx/alder/engine/colors"
	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/core/coretest"
	"github.com/aldergfx/alder/engine/geom"
)

// fakeFont serves a tiny fixed glyph set at a native size of 16px: ascent 13,
// descent 5, every glyph 8x10 with advance 10, except the space which has no
// image. It backs both font interfaces.
type fakeFont struct {
	atlas  core.Texture
	spread float32
}

func (f *fakeFont) Glyph(cp rune) (Glyph, bool) {
	switch cp {
	case ' ':
		return Glyph{Advance: 10}, true
	case 'A', 'B', 'C', 'x', 'é':
		return Glyph{
			BearingX: 1, BearingY: 10,
			W: 8, H: 10, Advance: 10,
			U0: 0.1, V0: 0.1, U1: 0.2, V1: 0.2,
		}, true
	}
	return Glyph{}, false
}

func (f *fakeFont) MeasureText(s string, size float32) geom.Vec2 {
	scale := size / 16
	var w, lineW float32
	lines := float32(1)
	for i := 0; i < len(s); {
		cp, n := DecodeRune(s, i)
		i += n
		if cp == '\n' {
			lines++
			lineW = 0
			continue
		}
		if g, ok := f.Glyph(cp); ok {
			lineW += g.Advance * scale
		}
		if lineW > w {
			w = lineW
		}
	}
	return geom.V(w, lines*size*lineHeightFactor)
}

func (f *fakeFont) Ascent() float32            { return 13 }
func (f *fakeFont) Descent() float32           { return 5 }
func (f *fakeFont) SDFSize() float32           { return 16 }
func (f *fakeFont) SDFSpread() float32         { return f.spread }
func (f *fakeFont) FontSize() float32          { return 16 }
func (f *fakeFont) AtlasTexture() core.Texture { return f.atlas }

func newFakeFont(t *testing.T, dev *coretest.FakeDevice) *fakeFont {
	t.Helper()
	return &fakeFont{atlas: makeTextures(t, dev, 1)[0], spread: 4}
}

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cp   rune
		n    int
	}{
		{"ascii", "A", 'A', 1},
		{"two byte", "é", 0xE9, 2},
		{"three byte", "€", 0x20AC, 3},
		{"four byte", "\U0001D11E", 0x1D11E, 4},
		{"stray continuation", "\x80", 0x80, 1},
		{"invalid leading", "\xFF", 0xFF, 1},
		{"truncated two byte", "\xC3", 0x03, 1},
		{"truncated three byte", "\xE2\x82", 0x82, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, n := DecodeRune(tt.in, 0)
			assert.Equal(t, tt.cp, cp)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestDecodeRuneMidString(t *testing.T) {
	s := "aé€"
	cp, n := DecodeRune(s, 0)
	assert.Equal(t, 'a', cp)
	cp2, n2 := DecodeRune(s, n)
	assert.Equal(t, rune(0xE9), cp2)
	cp3, _ := DecodeRune(s, n+n2)
	assert.Equal(t, rune(0x20AC), cp3)
}

func TestDrawTextSDFMode(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	font := newFakeFont(t, dev)

	rd.Begin(identity, 1)
	rd.DrawText("A", geom.V(0, 0), font, 32, colors.White)
	rd.End()

	require.Len(t, dev.Submissions, 1)
	v := vertex(dev.Submissions[0].Verts, 0, 0)
	assert.Equal(t, float32(modeSDFGlyph), v[19])
	// screenPxRange = size / native * spread = 32/16*4.
	assert.Equal(t, float32(8), v[18])
	assert.Equal(t, 1, rd.Stats().TextQuadCount)
}

func TestDrawBitmapTextMode(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	font := newFakeFont(t, dev)

	rd.Begin(identity, 1)
	rd.DrawBitmapText("A", geom.V(0, 0), font, 16, colors.White)
	rd.End()

	v := vertex(dev.Submissions[0].Verts, 0, 0)
	assert.Equal(t, float32(modeBitmapGlyph), v[19])
	assert.Zero(t, v[18])
}

func TestGlyphPlacement(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	font := newFakeFont(t, dev)

	// Native size: scale 1. Pen at (10, 20); baseline at 20+13=33; glyph top
	// at 33-10=23, left at 10+1=11.
	rd.Begin(identity, 1)
	rd.DrawBitmapText("AB", geom.V(10, 20), font, 16, colors.White)
	rd.End()

	verts := dev.Submissions[0].Verts
	a := vertex(verts, 0, 0)
	b := vertex(verts, 1, 0)
	assert.Equal(t, float32(11), a[0])
	assert.Equal(t, float32(23), a[1])
	// Second glyph starts one advance further.
	assert.Equal(t, float32(21), b[0])
	assert.Equal(t, float32(23), b[1])
}

func TestNewlineResetsPen(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	font := newFakeFont(t, dev)

	rd.Begin(identity, 1)
	rd.DrawBitmapText("A\nB", geom.V(0, 0), font, 16, colors.White)
	rd.End()

	verts := dev.Submissions[0].Verts
	a := vertex(verts, 0, 0)
	b := vertex(verts, 1, 0)
	assert.Equal(t, a[0], b[0], "second line restarts at the origin x")
	// Baseline drops by size * 1.2 = 19.2; top-left snaps to round(3+19.2).
	assert.Equal(t, float32(22), b[1])
	assert.Equal(t, 2, rd.Stats().TextQuadCount)
}

func TestMissingGlyphSkippedWithoutAdvance(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	font := newFakeFont(t, dev)

	rd.Begin(identity, 1)
	rd.DrawBitmapText("A�B", geom.V(0, 0), font, 16, colors.White)
	rd.End()

	require.Equal(t, 2, rd.Stats().TextQuadCount)
	verts := dev.Submissions[0].Verts
	a := vertex(verts, 0, 0)
	b := vertex(verts, 1, 0)
	// B sits exactly one advance after A: the unknown rune moved nothing.
	assert.Equal(t, a[0]+10, b[0])
}

func TestSpaceAdvancesWithoutQuad(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	font := newFakeFont(t, dev)

	rd.Begin(identity, 1)
	rd.DrawBitmapText("A B", geom.V(0, 0), font, 16, colors.White)
	rd.End()

	require.Equal(t, 2, rd.Stats().TextQuadCount)
	verts := dev.Submissions[0].Verts
	a := vertex(verts, 0, 0)
	b := vertex(verts, 1, 0)
	assert.Equal(t, a[0]+20, b[0], "space advanced the pen by one advance")
}

func TestEmptyTextIsNoop(t *testing.T) {
	rd, _ := newTestRenderer(t, 16)
	font := &fakeFont{spread: 4}

	rd.Begin(identity, 1)
	rd.DrawText("", geom.V(0, 0), font, 16, colors.White)
	rd.DrawBitmapText("", geom.V(0, 0), font, 16, colors.White)
	rd.DrawText("A", geom.V(0, 0), font, 0, colors.White)
	rd.End()
	assert.Zero(t, rd.Stats().QuadCount)
}

func TestTextRunBindsAtlasOnce(t *testing.T) {
	rd, dev := newTestRenderer(t, 64)
	font := newFakeFont(t, dev)

	rd.Begin(identity, 1)
	rd.DrawBitmapText("ABCABC", geom.V(0, 0), font, 16, colors.White)
	rd.End()

	require.Len(t, dev.Submissions, 1)
	// White in slot 0, atlas in slot 1, nothing else.
	assert.Len(t, dev.Submissions[0].Samplers, 2)
	assert.Equal(t, font.atlas, dev.Submissions[0].Samplers["uTex[1]"])
}

func TestMidRunFlushRebindsAtlas(t *testing.T) {
	// Capacity of two quads: a three-glyph run flushes inside the loop, which
	// drains the slot table. The third glyph must land on a rebound atlas.
	rd, dev := newTestRenderer(t, 2)
	font := newFakeFont(t, dev)

	rd.Begin(identity, 1)
	rd.DrawBitmapText("ABC", geom.V(0, 0), font, 16, colors.White)
	rd.End()

	require.Len(t, dev.Submissions, 2)
	for _, sub := range dev.Submissions {
		assert.Equal(t, font.atlas, sub.Samplers["uTex[1]"])
		// Every glyph vertex references slot 1.
		for q := 0; q < sub.IndexCount/indsPerQuad; q++ {
			assert.Equal(t, float32(1), vertex(sub.Verts, q, 0)[17])
		}
	}
	assert.Equal(t, 3, rd.Stats().QuadCount)
}

func TestAlignOrigin(t *testing.T) {
	font := &fakeFont{spread: 4}
	bounds := geom.R(0, 0, 100, 40)

	// "AB" at native size measures 20 wide; visual height 18.
	got := alignOrigin("AB", bounds, font, 16, 16, HAlignCenter, VAlignCenter)
	assert.Equal(t, geom.V(40, 11), got)

	got = alignOrigin("AB", bounds, font, 16, 16, HAlignLeft, VAlignTop)
	assert.Equal(t, geom.V(0, 0), got)

	got = alignOrigin("AB", bounds, font, 16, 16, HAlignRight, VAlignBottom)
	assert.Equal(t, geom.V(80, 22), got)
}

func TestDrawTextInBoundsUsesAlignment(t *testing.T) {
	rd, dev := newTestRenderer(t, 16)
	font := newFakeFont(t, dev)

	rd.Begin(identity, 1)
	rd.DrawBitmapTextInBounds("A", geom.R(0, 0, 100, 40), font, 16, colors.White, HAlignCenter, VAlignCenter)
	rd.End()

	// Origin (45, 11): glyph left 45+1, top 11+13-10.
	v := vertex(dev.Submissions[0].Verts, 0, 0)
	assert.Equal(t, float32(46), v[0])
	assert.Equal(t, float32(14), v[1])
}

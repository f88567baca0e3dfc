package uirender

import (
	"github.com/aldergfx/alder/engine/colors"
	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/geom"
)

// lineHeightFactor converts a font size into a newline advance.
const lineHeightFactor = 1.2

// Glyph holds metrics for one codepoint in pixels at the font's native size,
// plus the UV sub-rect of its image in the atlas.
type Glyph struct {
	BearingX float32 // pen to glyph left edge
	BearingY float32 // baseline to glyph top
	W, H     float32
	Advance  float32
	U0, V0   float32
	U1, V1   float32
}

// FontMetrics is the surface shared by both font backends. All values are in
// pixels at the font's native size; Descent is the positive distance below
// the baseline.
type FontMetrics interface {
	Glyph(cp rune) (Glyph, bool)
	MeasureText(s string, size float32) geom.Vec2
	Ascent() float32
	Descent() float32
}

// SDFFont provides distance-field glyphs baked by an msdf-style generator.
type SDFFont interface {
	FontMetrics
	SDFSize() float32   // native size the field was generated at
	SDFSpread() float32 // distance range in native pixels
	AtlasTexture() core.Texture
}

// BitmapFont provides pre-rasterized coverage glyphs.
type BitmapFont interface {
	FontMetrics
	FontSize() float32
	AtlasTexture() core.Texture
}

type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
	HAlignStretch
)

type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
	VAlignStretch
)

// DrawText draws s with its top-left pen origin at pos using a
// distance-field font.
func (rd *Renderer) DrawText(s string, pos geom.Vec2, font SDFFont, size float32, color colors.Color) {
	if !rd.initialized || s == "" || size <= 0 {
		return
	}
	rd.drawTextRun(s, pos, size, color, glyphRun{
		font:      font,
		atlas:     font.AtlasTexture(),
		native:    font.SDFSize(),
		mode:      modeSDFGlyph,
		thickness: size / font.SDFSize() * font.SDFSpread(), // screenPxRange
	})
}

// DrawBitmapText draws s with its top-left pen origin at pos using a
// bitmap-atlas font.
func (rd *Renderer) DrawBitmapText(s string, pos geom.Vec2, font BitmapFont, size float32, color colors.Color) {
	if !rd.initialized || s == "" || size <= 0 {
		return
	}
	rd.drawTextRun(s, pos, size, color, glyphRun{
		font:   font,
		atlas:  font.AtlasTexture(),
		native: font.FontSize(),
		mode:   modeBitmapGlyph,
	})
}

// DrawTextInBounds aligns s within bounds and draws it with an SDF font.
func (rd *Renderer) DrawTextInBounds(s string, bounds geom.Rect, font SDFFont, size float32, color colors.Color, h HAlign, v VAlign) {
	if !rd.initialized || s == "" || size <= 0 {
		return
	}
	origin := alignOrigin(s, bounds, font, font.SDFSize(), size, h, v)
	rd.DrawText(s, origin, font, size, color)
}

// DrawBitmapTextInBounds aligns s within bounds and draws it with a bitmap
// font.
func (rd *Renderer) DrawBitmapTextInBounds(s string, bounds geom.Rect, font BitmapFont, size float32, color colors.Color, h HAlign, v VAlign) {
	if !rd.initialized || s == "" || size <= 0 {
		return
	}
	origin := alignOrigin(s, bounds, font, font.FontSize(), size, h, v)
	rd.DrawBitmapText(s, origin, font, size, color)
}

// alignOrigin offsets the text origin inside bounds. The visual height is
// the font's ascent+descent scaled to the requested size; the final origin
// is rounded to whole units.
func alignOrigin(s string, bounds geom.Rect, font FontMetrics, native, size float32, h HAlign, v VAlign) geom.Vec2 {
	measured := font.MeasureText(s, size)
	scale := size / native
	visualH := (font.Ascent() + font.Descent()) * scale

	var dx, dy float32
	switch h {
	case HAlignCenter:
		dx = (bounds.W - measured.X) / 2
	case HAlignRight:
		dx = bounds.W - measured.X
	}
	switch v {
	case VAlignCenter:
		dy = (bounds.H - visualH) / 2
	case VAlignBottom:
		dy = bounds.H - visualH
	}
	return geom.V(roundPx(bounds.X+dx), roundPx(bounds.Y+dy))
}

// glyphRun carries the per-call constants of one text draw.
type glyphRun struct {
	font      FontMetrics
	atlas     core.Texture
	native    float32
	mode      float32
	thickness float32 // screenPxRange for SDF glyphs, 0 for bitmap
}

func (rd *Renderer) drawTextRun(s string, pos geom.Vec2, size float32, color colors.Color, run glyphRun) {
	// Atlas is bound once per call, not per glyph. A capacity flush inside
	// the loop drains the slot table, so the slot is re-validated after
	// each capacity check; the check is a single array load on the common
	// path.
	slot := rd.bindTexture(run.atlas)

	scale := size / run.native
	ascent := run.font.Ascent() * scale
	lineStartX := pos.X
	penX, penY := pos.X, pos.Y

	for i := 0; i < len(s); {
		cp, n := DecodeRune(s, i)
		i += n

		if cp == '\n' {
			penX = lineStartX
			penY += size * lineHeightFactor
			continue
		}

		g, ok := run.font.Glyph(cp)
		if !ok {
			// Unknown codepoint: skip without advancing.
			continue
		}

		gw := g.W * scale
		gh := g.H * scale
		if gw > 0 && gh > 0 {
			// The capacity check must run before the slot check: a full
			// batch flushes here and drains the slot table, and the quad
			// below has to land in the batch the atlas is bound to.
			rd.ensureQuadCapacity()
			if rd.texArr[int(slot)] != run.atlas {
				slot = rd.bindTexture(run.atlas)
			}
			gx := roundPx(penX + g.BearingX*scale)
			gy := roundPx(penY + ascent - g.BearingY*scale)
			rd.pushQuad(geom.R(gx, gy, gw, gh), color, quadSrc{
				slot: slot,
				u0:   g.U0, v0: g.V0,
				u1: g.U1, v1: g.V1,
				thickness: run.thickness,
				mode:      run.mode,
			})
		}
		penX += g.Advance * scale
	}
}

// DecodeRune decodes one UTF-8 codepoint starting at byte i of s and returns
// it with the number of bytes consumed. An invalid leading byte (including a
// continuation byte in leading position) is consumed as a single byte so the
// walk always makes forward progress. If the string ends mid-sequence the
// bits gathered so far are returned.
func DecodeRune(s string, i int) (rune, int) {
	b := s[i]
	switch {
	case b&0x80 == 0:
		return rune(b), 1
	case b&0xE0 == 0xC0:
		return decodeTail(s, i, rune(b&0x1F), 2)
	case b&0xF0 == 0xE0:
		return decodeTail(s, i, rune(b&0x0F), 3)
	case b&0xF8 == 0xF0:
		return decodeTail(s, i, rune(b&0x07), 4)
	default:
		return rune(b), 1
	}
}

func decodeTail(s string, i int, bits rune, size int) (rune, int) {
	n := 1
	for ; n < size && i+n < len(s); n++ {
		bits = bits<<6 | rune(s[i+n]&0x3F)
	}
	return bits, n
}

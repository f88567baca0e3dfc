package uirender

import "github.com/aldergfx/alder/engine/core"

const (
	// MaxTextureSlots bounds per-draw-call texture reads. Slot 0 always
	// holds the 1x1 white texture used for solid fills.
	MaxTextureSlots = 8

	// DefaultMaxQuads sizes the batch at 20,000 vertices / 30,000 indices.
	DefaultMaxQuads = 5000

	vertsPerQuad = 4
	indsPerQuad  = 6

	// Vertex: pos3 + color4 + uv2 + cornerRadii4 + rectSize2 + localPos2
	// + texIndex1 + thickness1 + mode1 => 20 floats.
	vStride = 20
)

// Vertex mode discriminator. Explicit, so the fragment shader never has to
// sniff texel channels to tell glyphs from shapes. For SDF glyphs the
// thickness field carries screenPxRange instead of a border width; a glyph
// never has a border, so the two uses cannot collide.
const (
	modeSolid       = 0
	modeBitmapGlyph = 1
	modeSDFGlyph    = 2
)

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},      // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 3 * 4},  // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 7 * 4},  // uv
		{Location: 3, Size: 4, Type: core.AttribFloat32, Offset: 9 * 4},  // corner radii (TL,TR,BR,BL)
		{Location: 4, Size: 2, Type: core.AttribFloat32, Offset: 13 * 4}, // rect size
		{Location: 5, Size: 2, Type: core.AttribFloat32, Offset: 15 * 4}, // local pos relative to center
		{Location: 6, Size: 1, Type: core.AttribFloat32, Offset: 17 * 4}, // texture slot index
		{Location: 7, Size: 1, Type: core.AttribFloat32, Offset: 18 * 4}, // border thickness / screenPxRange
		{Location: 8, Size: 1, Type: core.AttribFloat32, Offset: 19 * 4}, // mode
	},
}

// quadIndices builds the fixed index pattern for maxQuads quads. Each quad i
// contributes {4i, 4i+1, 4i+2, 4i+2, 4i+3, 4i}. The buffer is uploaded once
// at init and never changes; a flush draws a prefix of it.
func quadIndices(maxQuads int) []uint32 {
	inds := make([]uint32, 0, maxQuads*indsPerQuad)
	for i := 0; i < maxQuads; i++ {
		base := uint32(i * vertsPerQuad)
		inds = append(inds, base, base+1, base+2, base+2, base+3, base)
	}
	return inds
}

// BatchStats captures per-frame counters. Reset at Begin, read-only to
// clients via Stats.
type BatchStats struct {
	DrawCalls     int
	QuadCount     int
	TextQuadCount int
	ClipChanges   int
}

func (s BatchStats) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }
func (s BatchStats) TotalIndexCount() int  { return s.QuadCount * indsPerQuad }

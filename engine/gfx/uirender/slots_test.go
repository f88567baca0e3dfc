package uirender

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldergfx/alder/engine/colors"
	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/core/coretest"
	"github.com/aldergfx/alder/engine/geom"
)

func makeTextures(t *testing.T, dev *coretest.FakeDevice, n int) []core.Texture {
	t.Helper()
	out := make([]core.Texture, n)
	for i := range out {
		tex, err := dev.CreateTexture(core.TextureDesc{Width: 1, Height: 1})
		require.NoError(t, err)
		out[i] = tex
	}
	return out
}

func TestSameTextureReusesSlot(t *testing.T) {
	rd, dev := newTestRenderer(t, 64)
	tex := makeTextures(t, dev, 1)[0]

	rd.Begin(identity, 1)
	for i := 0; i < 10; i++ {
		rd.DrawTexturedRect(geom.R(float32(i)*10, 0, 8, 8), tex, colors.White, geom.V(0, 0), geom.V(1, 1))
	}
	rd.End()

	assert.Equal(t, 1, rd.Stats().DrawCalls)
}

func TestSevenDistinctTexturesFitOneBatch(t *testing.T) {
	rd, dev := newTestRenderer(t, 64)
	texs := makeTextures(t, dev, 7)

	rd.Begin(identity, 1)
	for i, tex := range texs {
		rd.DrawTexturedRect(geom.R(float32(i)*10, 0, 8, 8), tex, colors.White, geom.V(0, 0), geom.V(1, 1))
	}
	rd.End()

	// Slot 0 holds the white texture, leaving seven user slots.
	assert.Equal(t, 1, rd.Stats().DrawCalls)
}

func TestEighthDistinctTextureForcesFlush(t *testing.T) {
	rd, dev := newTestRenderer(t, 64)
	texs := makeTextures(t, dev, 8)

	rd.Begin(identity, 1)
	for i, tex := range texs {
		rd.DrawTexturedRect(geom.R(float32(i)*10, 0, 8, 8), tex, colors.White, geom.V(0, 0), geom.V(1, 1))
	}
	rd.End()

	require.Equal(t, 2, rd.Stats().DrawCalls)
	require.Len(t, dev.Submissions, 2)
	// First submission carries seven user quads, the second the overflow quad.
	assert.Equal(t, 7*indsPerQuad, dev.Submissions[0].IndexCount)
	assert.Equal(t, 1*indsPerQuad, dev.Submissions[1].IndexCount)
}

func TestFlushDrainsSlotTable(t *testing.T) {
	rd, dev := newTestRenderer(t, 64)
	texs := makeTextures(t, dev, 8)

	rd.Begin(identity, 1)
	for i, tex := range texs {
		rd.DrawTexturedRect(geom.R(float32(i)*10, 0, 8, 8), tex, colors.White, geom.V(0, 0), geom.V(1, 1))
	}
	rd.End()

	require.Len(t, dev.Submissions, 2)
	first := dev.Submissions[0].Samplers
	second := dev.Submissions[1].Samplers

	// First batch: white plus seven user textures.
	assert.Len(t, first, 8)
	assert.Equal(t, rd.WhiteTexture(), first["uTex[0]"])
	for i := 0; i < 7; i++ {
		assert.Equal(t, texs[i], first[fmt.Sprintf("uTex[%d]", i+1)])
	}

	// Overflow batch restarts with white in slot 0 and the eighth texture
	// in slot 1.
	assert.Len(t, second, 2)
	assert.Equal(t, rd.WhiteTexture(), second["uTex[0]"])
	assert.Equal(t, texs[7], second["uTex[1]"])
}

func TestSolidQuadsUseWhiteSlot(t *testing.T) {
	rd, dev := newTestRenderer(t, 64)
	rd.Begin(identity, 1)
	rd.DrawRect(geom.R(0, 0, 10, 10), colors.Red)
	rd.End()

	require.Len(t, dev.Submissions, 1)
	s := dev.Submissions[0]
	assert.Len(t, s.Samplers, 1)
	assert.Equal(t, rd.WhiteTexture(), s.Samplers["uTex[0]"])
	// texIndex attribute (float offset 17) is 0 on every vertex.
	for v := 0; v < 4; v++ {
		assert.Zero(t, s.Verts[v*vStride+17])
	}
}

func TestTexturedRectAtCapacityRebindsSlot(t *testing.T) {
	// Capacity of two quads: the textured draw arrives with the batch exactly
	// full, so the capacity flush drains the slot table before the quad is
	// emitted. The overflow submission must still bind the texture in the
	// slot its vertices reference.
	rd, dev := newTestRenderer(t, 2)
	tex := makeTextures(t, dev, 1)[0]

	rd.Begin(identity, 1)
	rd.DrawRect(geom.R(0, 0, 8, 8), colors.White)
	rd.DrawRect(geom.R(10, 0, 8, 8), colors.White)
	rd.DrawTexturedRect(geom.R(20, 0, 8, 8), tex, colors.White, geom.V(0, 0), geom.V(1, 1))
	rd.End()

	require.Len(t, dev.Submissions, 2)
	last := dev.Submissions[1]
	slot := int(vertex(last.Verts, 0, 0)[17])
	assert.Equal(t, 1, slot)
	assert.Equal(t, tex, last.Samplers[fmt.Sprintf("uTex[%d]", slot)])
}

func TestMixedSolidAndTexturedShareBatch(t *testing.T) {
	rd, dev := newTestRenderer(t, 64)
	tex := makeTextures(t, dev, 1)[0]

	rd.Begin(identity, 1)
	rd.DrawRect(geom.R(0, 0, 10, 10), colors.White)
	rd.DrawTexturedRect(geom.R(20, 0, 10, 10), tex, colors.White, geom.V(0, 0), geom.V(1, 1))
	rd.DrawRect(geom.R(40, 0, 10, 10), colors.White)
	rd.End()

	require.Len(t, dev.Submissions, 1)
	s := dev.Submissions[0]
	assert.Equal(t, 3*indsPerQuad, s.IndexCount)
	// Second quad's vertices carry slot 1.
	assert.Equal(t, float32(1), s.Verts[1*4*vStride+17])
}

// Package uirender is a batched, immediate-mode 2D overlay renderer.
//
// Draw calls accumulate quads in a vertex buffer and are submitted in as few
// indexed draws as possible. Rounded corners and distance-field text are
// resolved per fragment from metadata carried on each vertex; the geometry
// is always an axis-aligned quad. All calls must happen between Begin and
// End on the thread that owns the graphics context.
package uirender

import (
	"fmt"
	"strconv"

	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/geom"
)

type Renderer struct {
	dev   core.Device
	pipe  core.Pipeline
	mesh  core.Mesh
	white core.Texture // 1x1 white (slot 0)

	texArr [MaxTextureSlots]core.Texture
	texCnt int

	verts     []float32
	quadCount int
	maxQuads  int

	clipStack []geom.Rect
	clipRect  geom.Rect // intersection of the whole stack

	samplers map[string]core.Texture
	uniforms map[string]any
	texNames [MaxTextureSlots]string

	proj  [16]float32
	dpr   float32
	stats BatchStats

	initialized bool
}

// New creates the renderer's GPU resources through dev. On failure the
// returned renderer is non-nil but inert: IsInitialized reports false and
// every draw call is a no-op, so a failed init never crashes a UI walk.
func New(dev core.Device, maxQuads int) (*Renderer, error) {
	if maxQuads <= 0 {
		maxQuads = DefaultMaxQuads
	}
	rd := &Renderer{
		dev:      dev,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		dpr:      1,
	}
	rd.samplers = make(map[string]core.Texture, MaxTextureSlots)
	rd.uniforms = make(map[string]any, 2)
	for i := 0; i < MaxTextureSlots; i++ {
		rd.texNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}

	dialect := pickDialect(dev.Caps())
	logger().Debug("uirender init", "dialect", dialect.Name(), "maxQuads", maxQuads)

	pipe, err := dev.CreatePipeline(core.PipelineDesc{
		VertexSource:   dialect.VertexSource(),
		FragmentSource: dialect.FragmentSource(),
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		logger().Error("uirender pipeline creation failed", "err", err)
		return rd, fmt.Errorf("create pipeline: %w", err)
	}
	rd.pipe = pipe

	white, err := dev.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		logger().Error("uirender white texture creation failed", "err", err)
		dev.DestroyPipeline(pipe)
		return rd, fmt.Errorf("create white texture: %w", err)
	}
	rd.white = white

	// One reusable mesh sized for the biggest batch. The index buffer is
	// the full fixed quad pattern; flushes draw a prefix of it.
	mesh, err := dev.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  quadIndices(maxQuads),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		logger().Error("uirender mesh creation failed", "err", err)
		dev.DestroyTexture(white)
		dev.DestroyPipeline(pipe)
		return rd, fmt.Errorf("create mesh: %w", err)
	}
	rd.mesh = mesh

	rd.initialized = true
	rd.resetBatch()
	return rd, nil
}

// IsInitialized reports whether GPU resources exist. When false every other
// method is a safe no-op.
func (rd *Renderer) IsInitialized() bool { return rd.initialized }

// Shutdown releases GPU resources. The renderer cannot be reused afterwards;
// construct a new one.
func (rd *Renderer) Shutdown() {
	if !rd.initialized {
		return
	}
	rd.dev.DestroyMesh(rd.mesh)
	rd.dev.DestroyTexture(rd.white)
	rd.dev.DestroyPipeline(rd.pipe)
	rd.initialized = false
}

// Begin starts a frame: stores the projection and device-pixel-ratio, resets
// statistics and all batch/clip/texture state. dpr <= 0 defaults to 1.
func (rd *Renderer) Begin(projection [16]float32, dpr float32) {
	if !rd.initialized {
		return
	}
	if dpr <= 0 {
		dpr = 1
	}
	rd.proj = projection
	rd.dpr = dpr
	rd.stats = BatchStats{}
	rd.clipStack = rd.clipStack[:0]
	rd.clipRect = geom.Rect{}
	rd.dev.DisableScissor()
	rd.resetBatch()
}

// End submits any pending geometry and disables scissoring.
func (rd *Renderer) End() {
	if !rd.initialized {
		return
	}
	rd.flush()
	rd.dev.DisableScissor()
}

// Flush forces a GPU submission of whatever is batched. A flush with no
// pending vertices is a no-op and does not count a draw call.
func (rd *Renderer) Flush() {
	if !rd.initialized {
		return
	}
	rd.flush()
}

// Stats returns the current frame statistics snapshot.
func (rd *Renderer) Stats() BatchStats { return rd.stats }

func (rd *Renderer) ResetStats() { rd.stats = BatchStats{} }

// --- internals ---

func (rd *Renderer) flush() {
	if rd.quadCount == 0 {
		return
	}

	if err := rd.dev.UpdateMeshVertices(rd.mesh, rd.verts); err != nil {
		logger().Error("uirender vertex upload failed", "err", err)
		rd.resetBatch()
		return
	}

	clear(rd.samplers)
	for i := 0; i < rd.texCnt; i++ {
		rd.samplers[rd.texNames[i]] = rd.texArr[i]
	}

	clear(rd.uniforms)
	rd.uniforms["uProj"] = rd.proj

	rd.dev.Draw(core.DrawCmd{
		Pipe:       rd.pipe,
		Mesh:       rd.mesh,
		IndexCount: rd.quadCount * indsPerQuad,
		Uniforms:   rd.uniforms,
		Samplers:   rd.samplers,
	})
	rd.stats.DrawCalls++

	rd.resetBatch()
}

func (rd *Renderer) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.quadCount = 0
	for i := range rd.texArr {
		rd.texArr[i] = nil
	}
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}

// WhiteTexture exposes the default 1x1 opaque texture bound to slot 0.
func (rd *Renderer) WhiteTexture() core.Texture { return rd.white }

package core

// Texture, Mesh and Pipeline are opaque handles owned by a Device. Devices
// hand out pointer types, so handles stay comparable and callers may use
// them in slot tables and maps.
type Texture = any
type Mesh = any
type Pipeline = any

// TextureFormat enumerates the pixel formats the engine uploads.
type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // tightly packed, row-major, top-left origin; may be nil
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU, WrapV  string // "clamp" | "repeat"
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int // component count
	Type     AttribType
	Offset   int // bytes from vertex start
}

type VertexLayout struct {
	Stride     int // bytes per vertex
	Attributes []VertexAttrib
}

// MeshDesc sizes a mesh at creation. Vertices may be updated later via
// UpdateMeshVertices up to the created size; Indices are immutable.
type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool // standard "over" compositing: srcAlpha, 1-srcAlpha
}

// DrawCmd is one indexed draw submission. IndexCount limits the draw to a
// prefix of the mesh's index buffer; 0 draws all of it.
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int
	Uniforms   map[string]any
	Samplers   map[string]Texture
}

// Capabilities reports what the device detected at init time.
type Capabilities struct {
	ES              bool // GLSL ES dialect required
	MaxTextureUnits int
	Vendor          string
	Renderer        string
	Version         string
}

// Device abstracts the graphics backend. Everything the renderer touches on
// the GPU goes through an explicit Device handle; no ambient bound state is
// assumed by callers.
type Device interface {
	Init() error
	Shutdown()
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Caps() Capabilities
	FramebufferSize() (int, int)

	CreateTexture(TextureDesc) (Texture, error)
	DestroyTexture(Texture)
	CreateMesh(MeshDesc) (Mesh, error)
	UpdateMeshVertices(Mesh, []float32) error
	DestroyMesh(Mesh)
	CreatePipeline(PipelineDesc) (Pipeline, error)
	DestroyPipeline(Pipeline)

	// SetScissor clips rendering to a rect in framebuffer pixels,
	// top-left origin. A zero-area rect clips everything.
	SetScissor(x, y, w, h int32)
	DisableScissor()

	Draw(DrawCmd)
}

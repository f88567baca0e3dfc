// Package gldevice implements core.Device on desktop OpenGL via go-gl.
package gldevice

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/aldergfx/alder/engine/core"
)

type glTexture struct{ id uint32 }

type glMesh struct {
	vao, vbo, ibo uint32
	vertexFloats  int // allocated VBO size
	indexCount    int
}

type glPipeline struct {
	prog     uint32
	desc     core.PipelineDesc
	uniforms map[string]int32 // location cache
}

// Device drives a single GL context. The owning window must have made the
// context current (and called gl.Init) before New.
type Device struct {
	win  core.Window
	caps core.Capabilities
}

func New(win core.Window, _ core.Config) (*Device, error) {
	d := &Device{win: win}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) Init() error {
	version := gl.GoStr(gl.GetString(gl.VERSION))
	if version == "" {
		return fmt.Errorf("no current GL context")
	}
	var units int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &units)
	d.caps = core.Capabilities{
		ES:              strings.Contains(version, "OpenGL ES"),
		MaxTextureUnits: int(units),
		Vendor:          gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:        gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:         version,
	}
	return nil
}

func (d *Device) Shutdown() {}

func (d *Device) Caps() core.Capabilities { return d.caps }

func (d *Device) FramebufferSize() (int, int) { return d.win.FramebufferSize() }

func (d *Device) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (d *Device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("texture size %dx%d", desc.Width, desc.Height)
	}
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterEnum(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterEnum(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapEnum(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapEnum(desc.WrapV))

	var pix unsafe.Pointer
	if len(desc.Pixels) > 0 {
		if len(desc.Pixels) < desc.Width*desc.Height*4 {
			gl.DeleteTextures(1, &id)
			return nil, fmt.Errorf("texture pixels: have %d bytes, need %d", len(desc.Pixels), desc.Width*desc.Height*4)
		}
		pix = gl.Ptr(desc.Pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, pix)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &glTexture{id: id}, nil
}

func (d *Device) DestroyTexture(t core.Texture) {
	if gt, ok := t.(*glTexture); ok && gt.id != 0 {
		gl.DeleteTextures(1, &gt.id)
		gt.id = 0
	}
}

func (d *Device) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	m := &glMesh{vertexFloats: len(desc.Vertices), indexCount: len(desc.Indices)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, gl.Ptr(desc.Indices), gl.STATIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointer(uint32(a.Location), int32(a.Size), gl.FLOAT, false, int32(desc.Layout.Stride), unsafe.Pointer(uintptr(a.Offset)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return m, nil
}

func (d *Device) UpdateMeshVertices(mesh core.Mesh, verts []float32) error {
	m, ok := mesh.(*glMesh)
	if !ok {
		return fmt.Errorf("mesh not owned by this device")
	}
	if len(verts) > m.vertexFloats {
		return fmt.Errorf("vertex update of %d floats exceeds mesh size %d", len(verts), m.vertexFloats)
	}
	if len(verts) == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (d *Device) DestroyMesh(mesh core.Mesh) {
	if m, ok := mesh.(*glMesh); ok {
		gl.DeleteBuffers(1, &m.ibo)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
}

func (d *Device) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, err
	}
	return &glPipeline{prog: prog, desc: desc, uniforms: map[string]int32{}}, nil
}

func (d *Device) DestroyPipeline(p core.Pipeline) {
	if gp, ok := p.(*glPipeline); ok && gp.prog != 0 {
		gl.DeleteProgram(gp.prog)
		gp.prog = 0
	}
}

// SetScissor takes a rect in framebuffer pixels with top-left origin and
// converts to GL's bottom-left convention. Zero-area rects clip everything.
func (d *Device) SetScissor(x, y, w, h int32) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	_, fbH := d.win.FramebufferSize()
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x, int32(fbH)-y-h, w, h)
}

func (d *Device) DisableScissor() {
	gl.Disable(gl.SCISSOR_TEST)
}

func (d *Device) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*glPipeline)
	if !ok {
		return
	}
	m, ok := cmd.Mesh.(*glMesh)
	if !ok {
		return
	}

	gl.UseProgram(p.prog)

	if p.desc.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.desc.Blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	for name, v := range cmd.Uniforms {
		loc := p.uniformLoc(name)
		if loc < 0 {
			continue
		}
		switch u := v.(type) {
		case [16]float32:
			gl.UniformMatrix4fv(loc, 1, false, &u[0])
		case [4]float32:
			gl.Uniform4fv(loc, 1, &u[0])
		case float32:
			gl.Uniform1f(loc, u)
		case int:
			gl.Uniform1i(loc, int32(u))
		}
	}

	unit := int32(0)
	for name, tex := range cmd.Samplers {
		gt, ok := tex.(*glTexture)
		if !ok {
			continue
		}
		loc := p.uniformLoc(name)
		if loc < 0 {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, gt.id)
		gl.Uniform1i(loc, unit)
		unit++
	}

	count := cmd.IndexCount
	if count <= 0 || count > m.indexCount {
		count = m.indexCount
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (p *glPipeline) uniformLoc(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.prog, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func filterEnum(s string) int32 {
	if s == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrapEnum(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// Package coretest provides an in-memory core.Device for renderer and font
// tests. It records every submission and scissor change instead of touching
// a GPU.
package coretest

import (
	"errors"

	"github.com/aldergfx/alder/engine/core"
)

type FakeTexture struct{ Name string }

type FakeMesh struct {
	Desc  core.MeshDesc
	Verts []float32 // last uploaded vertex data
}

type FakePipeline struct{ Desc core.PipelineDesc }

// ScissorCall records one SetScissor; Disabled marks a DisableScissor call.
type ScissorCall struct {
	X, Y, W, H int32
	Disabled   bool
}

// Submission is one recorded Draw, with the vertex data as it was at the
// time of the call (copied, since the renderer reuses its slice).
type Submission struct {
	IndexCount int
	Verts      []float32
	Samplers   map[string]core.Texture
	Uniforms   map[string]any
}

type FakeDevice struct {
	Caps_ core.Capabilities
	FbW   int
	FbH   int

	// Failure injection for init-failure paths.
	FailPipeline bool
	FailTexture  bool
	FailMesh     bool

	Submissions []Submission
	Scissors    []ScissorCall
	Textures    []*FakeTexture
	Destroyed   int
}

func NewFakeDevice() *FakeDevice {
	return &FakeDevice{
		Caps_: core.Capabilities{MaxTextureUnits: 16, Vendor: "fake", Renderer: "fake", Version: "3.3"},
		FbW:   800, FbH: 600,
	}
}

func (d *FakeDevice) Init() error                 { return nil }
func (d *FakeDevice) Shutdown()                   {}
func (d *FakeDevice) Resize(w, h int)             { d.FbW, d.FbH = w, h }
func (d *FakeDevice) Clear(r, g, b, a float32)    {}
func (d *FakeDevice) Caps() core.Capabilities     { return d.Caps_ }
func (d *FakeDevice) FramebufferSize() (int, int) { return d.FbW, d.FbH }

func (d *FakeDevice) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if d.FailTexture {
		return nil, errors.New("texture creation disabled")
	}
	t := &FakeTexture{}
	d.Textures = append(d.Textures, t)
	return t, nil
}

func (d *FakeDevice) DestroyTexture(core.Texture) { d.Destroyed++ }

func (d *FakeDevice) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if d.FailMesh {
		return nil, errors.New("mesh creation disabled")
	}
	return &FakeMesh{Desc: desc}, nil
}

func (d *FakeDevice) UpdateMeshVertices(mesh core.Mesh, verts []float32) error {
	m, ok := mesh.(*FakeMesh)
	if !ok {
		return errors.New("mesh not owned by this device")
	}
	m.Verts = append(m.Verts[:0], verts...)
	return nil
}

func (d *FakeDevice) DestroyMesh(core.Mesh) { d.Destroyed++ }

func (d *FakeDevice) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	if d.FailPipeline {
		return nil, errors.New("pipeline creation disabled")
	}
	return &FakePipeline{Desc: desc}, nil
}

func (d *FakeDevice) DestroyPipeline(core.Pipeline) { d.Destroyed++ }

func (d *FakeDevice) SetScissor(x, y, w, h int32) {
	d.Scissors = append(d.Scissors, ScissorCall{X: x, Y: y, W: w, H: h})
}

func (d *FakeDevice) DisableScissor() {
	d.Scissors = append(d.Scissors, ScissorCall{Disabled: true})
}

func (d *FakeDevice) Draw(cmd core.DrawCmd) {
	sub := Submission{
		IndexCount: cmd.IndexCount,
		Samplers:   make(map[string]core.Texture, len(cmd.Samplers)),
		Uniforms:   make(map[string]any, len(cmd.Uniforms)),
	}
	if m, ok := cmd.Mesh.(*FakeMesh); ok {
		sub.Verts = append(sub.Verts, m.Verts...)
	}
	for k, v := range cmd.Samplers {
		sub.Samplers[k] = v
	}
	for k, v := range cmd.Uniforms {
		sub.Uniforms[k] = v
	}
	d.Submissions = append(d.Submissions, sub)
}

package uirender

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldergfx/alder/engine/core"
)

func TestPickDialect(t *testing.T) {
	assert.Equal(t, "glsl330", pickDialect(core.Capabilities{}).Name())
	assert.Equal(t, "glsles300", pickDialect(core.Capabilities{ES: true}).Name())
}

func TestDialectVersionHeaders(t *testing.T) {
	d := glsl330{}
	assert.True(t, strings.HasPrefix(d.VertexSource(), "#version 330 core\n"))
	assert.True(t, strings.HasPrefix(d.FragmentSource(), "#version 330 core\n"))

	es := glslES300{}
	assert.True(t, strings.HasPrefix(es.VertexSource(), "#version 300 es\n"))
	assert.True(t, strings.HasPrefix(es.FragmentSource(), "#version 300 es\nprecision highp float;\n"))
}

func TestShaderBindsAllSlots(t *testing.T) {
	// The sampler array size and the batch slot limit must agree.
	frag := glsl330{}.FragmentSource()
	assert.Contains(t, frag, "uniform sampler2D uTex[8]")
	for i := 0; i < MaxTextureSlots; i++ {
		assert.Contains(t, frag, "uTex["+string(rune('0'+i))+"]")
	}
}

func TestShaderAttributeLocationsMatchLayout(t *testing.T) {
	vert := glsl330{}.VertexSource()
	for _, a := range quadVertexLayout.Attributes {
		assert.Contains(t, vert, "layout(location="+string(rune('0'+a.Location))+")")
	}
}

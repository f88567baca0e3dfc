package uirender

import "github.com/aldergfx/alder/engine/core"

// Dialect is a shading-language strategy. The right one is picked once at
// New from the device capability report; primitive emission never branches
// on it.
type Dialect interface {
	Name() string
	VertexSource() string
	FragmentSource() string
}

func pickDialect(caps core.Capabilities) Dialect {
	if caps.ES {
		return glslES300{}
	}
	return glsl330{}
}

type glsl330 struct{}

func (glsl330) Name() string           { return "glsl330" }
func (glsl330) VertexSource() string   { return "#version 330 core\n" + vertexBody }
func (glsl330) FragmentSource() string { return "#version 330 core\n" + fragmentBody }

type glslES300 struct{}

func (glslES300) Name() string         { return "glsles300" }
func (glslES300) VertexSource() string { return "#version 300 es\n" + vertexBody }
func (glslES300) FragmentSource() string {
	return "#version 300 es\nprecision highp float;\n" + fragmentBody
}

const vertexBody = `
layout(location=0) in vec3 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
layout(location=3) in vec4 aRadii;
layout(location=4) in vec2 aRectSize;
layout(location=5) in vec2 aLocalPos;
layout(location=6) in float aTexIndex;
layout(location=7) in float aThickness;
layout(location=8) in float aMode;

uniform mat4 uProj;

out vec4 vColor;
out vec2 vUV;
out vec4 vRadii;
out vec2 vRectSize;
out vec2 vLocalPos;
flat out float vTexIndex;
flat out float vThickness;
flat out float vMode;

void main() {
    vColor = aColor;
    vUV = aUV;
    vRadii = aRadii;
    vRectSize = aRectSize;
    vLocalPos = aLocalPos;
    vTexIndex = aTexIndex;
    vThickness = aThickness;
    vMode = aMode;
    gl_Position = uProj * vec4(aPos, 1.0);
}
`

const fragmentBody = `
in vec4 vColor;
in vec2 vUV;
in vec4 vRadii;
in vec2 vRectSize;
in vec2 vLocalPos;
flat in float vTexIndex;
flat in float vThickness;
flat in float vMode;

uniform sampler2D uTex[8];

out vec4 FragColor;

vec4 sampleSlot(int i, vec2 uv) {
    switch (i) {
    case 0: return texture(uTex[0], uv);
    case 1: return texture(uTex[1], uv);
    case 2: return texture(uTex[2], uv);
    case 3: return texture(uTex[3], uv);
    case 4: return texture(uTex[4], uv);
    case 5: return texture(uTex[5], uv);
    case 6: return texture(uTex[6], uv);
    case 7: return texture(uTex[7], uv);
    }
    return vec4(1.0);
}

// Signed distance to a box with independent per-corner radii. The radius is
// selected by the sign of the local coordinate: x=TL y=TR z=BR w=BL.
float roundedBoxSDF(vec2 p, vec2 halfSize, vec4 radii) {
    float r = (p.x < 0.0) ? ((p.y < 0.0) ? radii.x : radii.w)
                          : ((p.y < 0.0) ? radii.y : radii.z);
    vec2 q = abs(p) - halfSize + vec2(r);
    return min(max(q.x, q.y), 0.0) + length(max(q, vec2(0.0))) - r;
}

float median3(float a, float b, float c) {
    return max(min(a, b), min(max(a, b), c));
}

void main() {
    vec4 texel = sampleSlot(int(vTexIndex + 0.5), vUV);
    vec4 col = vColor;

    if (vMode > 1.5) {
        // Distance-field glyph: vThickness carries screenPxRange.
        float d = median3(texel.r, texel.g, texel.b);
        float a = clamp((d - 0.5) * vThickness + 0.5, 0.0, 1.0);
        col.a *= a;
    } else if (vMode > 0.5) {
        // Bitmap glyph: straight sample tinted by vertex color.
        col *= texel;
    } else {
        col *= texel;
        bool rounded = (vRadii.x + vRadii.y + vRadii.z + vRadii.w) > 0.0;
        if (rounded || vThickness > 0.0) {
            float d = roundedBoxSDF(vLocalPos, vRectSize * 0.5, vRadii);
            float aa = 1.0;
            float cov = 1.0 - smoothstep(-aa * 0.5, aa * 0.5, d);
            if (vThickness > 0.0) {
                // Ring: subtract the coverage of the inset shape.
                cov -= 1.0 - smoothstep(-aa * 0.5, aa * 0.5, d + vThickness);
            }
            col.a *= cov;
        }
    }

    if (col.a < 0.01) {
        discard;
    }
    FragColor = col;
}
`

package text

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aldergfx/alder/engine/assets"
	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/geom"
	"github.com/aldergfx/alder/engine/gfx/uirender"
)

// SDFFont wraps a pre-baked multi-channel distance field atlas, as emitted
// by msdf-atlas-gen (JSON metrics + PNG atlas). It implements
// uirender.SDFFont. Metrics are converted from em units to pixels at the
// field's native generation size once, at load time.
type SDFFont struct {
	nativeSize float32
	spread     float32 // distance range in native pixels
	ascent     float32
	descent    float32
	glyphs     map[rune]uirender.Glyph
	tex        core.Texture
}

func (f *SDFFont) Glyph(cp rune) (uirender.Glyph, bool) {
	g, ok := f.glyphs[cp]
	return g, ok
}

func (f *SDFFont) Ascent() float32            { return f.ascent }
func (f *SDFFont) Descent() float32           { return f.descent }
func (f *SDFFont) SDFSize() float32           { return f.nativeSize }
func (f *SDFFont) SDFSpread() float32         { return f.spread }
func (f *SDFFont) AtlasTexture() core.Texture { return f.tex }
func (f *SDFFont) MeasureText(s string, size float32) geom.Vec2 {
	return measure(f, f.nativeSize, s, size)
}

// msdf-atlas-gen JSON layout.
type msdfFile struct {
	Atlas struct {
		DistanceRange float32 `json:"distanceRange"`
		Size          float32 `json:"size"`
		Width         int     `json:"width"`
		Height        int     `json:"height"`
		YOrigin       string  `json:"yOrigin"`
	} `json:"atlas"`
	Metrics struct {
		Ascender  float32 `json:"ascender"`
		Descender float32 `json:"descender"`
	} `json:"metrics"`
	Glyphs []struct {
		Unicode     int32      `json:"unicode"`
		Advance     float32    `json:"advance"`
		PlaneBounds *msdfBound `json:"planeBounds"`
		AtlasBounds *msdfBound `json:"atlasBounds"`
	} `json:"glyphs"`
}

type msdfBound struct {
	Left, Bottom, Right, Top float32
}

// ParseMSDF decodes msdf-atlas-gen JSON metrics against an already-uploaded
// atlas texture.
func ParseMSDF(jsonData []byte, atlas core.Texture) (*SDFFont, error) {
	var file msdfFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse msdf metrics: %w", err)
	}
	if file.Atlas.Size <= 0 || file.Atlas.Width <= 0 || file.Atlas.Height <= 0 {
		return nil, fmt.Errorf("msdf metrics: missing atlas dimensions")
	}

	size := file.Atlas.Size
	invW := 1 / float32(file.Atlas.Width)
	invH := 1 / float32(file.Atlas.Height)
	yBottom := file.Atlas.YOrigin != "top"

	f := &SDFFont{
		nativeSize: size,
		spread:     file.Atlas.DistanceRange,
		ascent:     file.Metrics.Ascender * size,
		descent:    -file.Metrics.Descender * size, // descender is negative in em space
		glyphs:     make(map[rune]uirender.Glyph, len(file.Glyphs)),
		tex:        atlas,
	}

	for _, g := range file.Glyphs {
		glyph := uirender.Glyph{Advance: g.Advance * size}
		if g.PlaneBounds != nil && g.AtlasBounds != nil {
			pb, ab := g.PlaneBounds, g.AtlasBounds
			glyph.BearingX = pb.Left * size
			glyph.BearingY = pb.Top * size // plane space is y-up: top is baseline-to-top
			glyph.W = (pb.Right - pb.Left) * size
			glyph.H = (pb.Top - pb.Bottom) * size

			glyph.U0 = ab.Left * invW
			glyph.U1 = ab.Right * invW
			if yBottom {
				glyph.V0 = 1 - ab.Top*invH
				glyph.V1 = 1 - ab.Bottom*invH
			} else {
				glyph.V0 = ab.Top * invH
				glyph.V1 = ab.Bottom * invH
			}
		}
		f.glyphs[rune(g.Unicode)] = glyph
	}
	return f, nil
}

// LoadMSDF reads the metrics JSON and atlas PNG from disk and uploads the
// atlas through dev.
func LoadMSDF(dev core.Device, jsonPath, atlasPath string) (*SDFFont, error) {
	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read msdf metrics: %w", err)
	}
	w, h, pixels, err := assets.LoadPNG(atlasPath)
	if err != nil {
		return nil, fmt.Errorf("read msdf atlas: %w", err)
	}
	tex, err := dev.CreateTexture(core.TextureDesc{
		Width: w, Height: h,
		Format:    core.TextureRGBA8,
		Pixels:    pixels,
		MinFilter: "linear", MagFilter: "linear",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, err
	}
	return ParseMSDF(jsonData, tex)
}

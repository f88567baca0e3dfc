// Package text provides the font backends consumed by uirender: a bitmap
// atlas rasterized from a TTF at load time, and a pre-baked msdf atlas.
package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/geom"
	"github.com/aldergfx/alder/engine/gfx/uirender"
)

// BitmapFont is a glyph atlas rasterized at a fixed native size, with white
// glyphs and alpha coverage. It implements uirender.BitmapFont.
type BitmapFont struct {
	sizePx  float32
	ascent  float32
	descent float32 // positive distance below baseline
	glyphs  map[rune]uirender.Glyph
	tex     core.Texture
	atlasW  int
	atlasH  int

	closeFace func()
}

func (f *BitmapFont) Glyph(cp rune) (uirender.Glyph, bool) {
	g, ok := f.glyphs[cp]
	return g, ok
}

func (f *BitmapFont) Ascent() float32            { return f.ascent }
func (f *BitmapFont) Descent() float32           { return f.descent }
func (f *BitmapFont) FontSize() float32          { return f.sizePx }
func (f *BitmapFont) AtlasTexture() core.Texture { return f.tex }
func (f *BitmapFont) MeasureText(s string, size float32) geom.Vec2 {
	return measure(f, f.sizePx, s, size)
}

func (f *BitmapFont) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

// measure walks s with the same decoding and advance rules the layout engine
// uses, so measured widths match what gets drawn.
func measure(f uirender.FontMetrics, native float32, s string, size float32) geom.Vec2 {
	scale := size / native
	var width, lineW float32
	height := (f.Ascent() + f.Descent()) * scale

	for i := 0; i < len(s); {
		cp, n := uirender.DecodeRune(s, i)
		i += n
		if cp == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += size * 1.2
			continue
		}
		if g, ok := f.Glyph(cp); ok {
			lineW += g.Advance * scale
		}
	}
	if lineW > width {
		width = lineW
	}
	return geom.V(width, height)
}

// LoadTTF reads a TTF file and builds the atlas at sizePx.
func LoadTTF(dev core.Device, path string, sizePx float32) (*BitmapFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseTTF(dev, data, sizePx)
}

// ParseTTF builds a monochrome (white) glyph atlas with alpha coverage from
// in-memory TTF data and uploads it through dev.
func ParseTTF(dev core.Device, ttfData []byte, sizePx float32) (*BitmapFont, error) {
	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(m.Descent.Round())

	// Target rune set (latin-1). Expand later as needed.
	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var measures []meas
	for rr := rune(32); rr <= rune(255); rr++ {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measures = append(measures, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Round(),
			h:   (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()), // baseline to top
		})
	}

	// Simple shelf packer (rows). Start at 256^2 and grow until it fits.
	const padding = 2
	atlasSize := 256
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measures))

		for _, g := range measures {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			_ = face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.RGBA{}}, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]uirender.Glyph, len(measures))
	inv := 1 / float32(atlasSize)
	for _, g := range measures {
		glyph := uirender.Glyph{
			Advance:  g.adv,
			BearingX: g.bx,
			BearingY: g.by,
			W:        float32(g.w),
			H:        float32(g.h),
		}
		if g.w > 0 && g.h > 0 {
			p := pos[g.r]
			// The drawer dot sits on the baseline; shift so the glyph
			// lands at its packed cell.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))

			glyph.U0 = float32(p.X) * inv
			glyph.V0 = float32(p.Y) * inv
			glyph.U1 = float32(p.X+g.w) * inv
			glyph.V1 = float32(p.Y+g.h) * inv
		}
		glyphs[g.r] = glyph
	}

	tex, err := dev.CreateTexture(core.TextureDesc{
		Width: atlasSize, Height: atlasSize,
		Format:    core.TextureRGBA8,
		Pixels:    dst.Pix,
		MinFilter: "linear", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		_ = face.Close()
		return nil, err
	}

	return &BitmapFont{
		sizePx:    sizePx,
		ascent:    ascent,
		descent:   descent,
		glyphs:    glyphs,
		tex:       tex,
		atlasW:    atlasSize,
		atlasH:    atlasSize,
		closeFace: func() { _ = face.Close() },
	}, nil
}

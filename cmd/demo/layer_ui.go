package main

import (
	"github.com/aldergfx/alder/engine/colors"
	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/geom"
	"github.com/aldergfx/alder/engine/gfx/uirender"
	"github.com/aldergfx/alder/engine/profiler"
	"github.com/aldergfx/alder/engine/scene"
	"github.com/aldergfx/alder/engine/scratch"
	"github.com/aldergfx/alder/engine/text"
	"github.com/aldergfx/alder/engine/ui"
)

// UILayer exercises the renderer surface: panels, buttons with interaction
// state, a clipped scrolling list, lines and a textured quad.
type UILayer struct {
	cam    *scene.UICamera
	r2d    *uirender.Renderer
	bitmap *text.BitmapFont
	sdf    *text.SDFFont
	theme  ui.Theme

	checker  core.Texture
	scrollY  float32
	buttons  [3]ui.WidgetState
	clicked  int
}

var buttonLabels = [3]string{"Play", "Options", "Quit"}

func (l *UILayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	scale := e.Window.ContentScale()
	l.cam = scene.NewUICamera(int(float32(w)/scale), int(float32(h)/scale))
	l.theme = ui.DefaultTheme()

	l.checker = makeCheckerTexture(e.Device, 64, 8)
}

func (l *UILayer) OnDetach(e *core.Engine) {
	if l.checker != nil {
		e.Device.DestroyTexture(l.checker)
	}
}

func (l *UILayer) OnUpdate(e *core.Engine, dt float64) {
	mx, my := e.Input.Mouse()
	m := geom.V(float32(mx), float32(my))

	for i := range l.buttons {
		r := l.buttonRect(i)
		st := &l.buttons[i]
		st.Visible = true
		st.Hovered = r.Contains(m)
		st.Pressed = st.Hovered && e.Input.IsMouseDown(core.MouseButtonLeft)
		if st.Hovered && e.Input.WasMouseReleased(core.MouseButtonLeft) {
			l.clicked = i
			if i == 2 {
				e.Window.RequestClose()
			}
		}
	}
}

func (l *UILayer) buttonRect(i int) geom.Rect {
	return geom.R(40, 96+float32(i)*56, 180, 40)
}

func (l *UILayer) OnRender(e *core.Engine, alpha float64) {
	done := profiler.Start("UILayer.OnRender")
	defer done()

	scratch.Reset()

	r := l.r2d
	r.Begin(l.cam.Projection(), e.Window.ContentScale())
	{
		// Side panel
		panel := geom.R(24, 24, 212, 460)
		r.DrawRoundedRect(panel, l.theme.Surface.WithAlpha(0.92), geom.Radii(10))
		r.DrawRoundedRectOutline(panel, l.theme.Outline, geom.Radii(10), 1)

		l.drawTitle(r, "alder", geom.R(24, 36, 212, 28))

		for i := range l.buttons {
			l.drawButton(r, i)
		}

		r.DrawLine(geom.V(40, 280), geom.V(220, 280), l.theme.Outline, 1)

		// Clipped, scrollable list
		list := geom.R(40, 296, 180, 160)
		r.DrawRect(list, l.theme.SurfacePressed)
		r.PushClipRect(list)
		for i := 0; i < 24; i++ {
			y := list.Y + 4 + float32(i)*22 - l.scrollY
			mark := scratch.Mark()
			scratch.F().S("item ").I(i)
			r.DrawBitmapText(scratch.StringViewFrom(mark), geom.V(list.X+8, y), l.bitmap, 14, l.theme.TextPrimary)
		}
		r.PopClipRect()

		// Textured quad from an atlas sub-rect
		r.DrawSubTexture(geom.R(280, 96, 128, 128),
			uirender.FromGrid(l.checker, 0, 0, 32, 32, 64, 64), colors.White)
	}
	r.End()
}

func (l *UILayer) drawTitle(r *uirender.Renderer, s string, bounds geom.Rect) {
	if l.sdf != nil {
		r.DrawTextInBounds(s, bounds, l.sdf, 22, l.theme.TextPrimary, uirender.HAlignCenter, uirender.VAlignCenter)
		return
	}
	r.DrawBitmapTextInBounds(s, bounds, l.bitmap, 22, l.theme.TextPrimary, uirender.HAlignCenter, uirender.VAlignCenter)
}

func (l *UILayer) drawButton(r *uirender.Renderer, i int) {
	rect := l.buttonRect(i)
	st := l.buttons[i]
	st.Focused = l.clicked == i
	style := l.theme.Resolve(st)

	r.DrawRoundedRect(rect, style.Background, style.Radii)
	r.DrawRoundedRectOutline(rect, style.Border, style.Radii, style.BorderWidth)
	if l.sdf != nil {
		r.DrawTextInBounds(buttonLabels[i], rect, l.sdf, 16, style.Text, uirender.HAlignCenter, uirender.VAlignCenter)
	} else {
		r.DrawBitmapTextInBounds(buttonLabels[i], rect, l.bitmap, 16, style.Text, uirender.HAlignCenter, uirender.VAlignCenter)
	}
}

func (l *UILayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		scale := e.Window.ContentScale()
		l.cam.SetViewport(int(float32(v.W)/scale), int(float32(v.H)/scale))
	case core.EventScroll:
		l.scrollY -= float32(v.Yoff) * 12
		if l.scrollY < 0 {
			l.scrollY = 0
		}
		return true
	}
	return false
}

// makeCheckerTexture builds a two-tone checkerboard for the textured-quad
// demo; cell is the checker size in pixels.
func makeCheckerTexture(dev core.Device, size, cell int) core.Texture {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			c := byte(70)
			if (x/cell+y/cell)%2 == 0 {
				c = 180
			}
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c, c, c, 255
		}
	}
	tex, err := dev.CreateTexture(core.TextureDesc{
		Width: size, Height: size,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "repeat", WrapV: "repeat",
	})
	if err != nil {
		panic(err)
	}
	return tex
}

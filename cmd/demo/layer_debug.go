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
)

// DebugLayer paints the previous frame's renderer statistics and runtime
// counters in the top-right corner. All label strings are built in the
// scratch buffer, so a steady overlay allocates nothing per frame.
type DebugLayer struct {
	cam   *scene.UICamera
	r2d   *uirender.Renderer
	font  *text.BitmapFont
	stats *uirender.BatchStats
}

func (l *DebugLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	scale := e.Window.ContentScale()
	l.cam = scene.NewUICamera(int(float32(w)/scale), int(float32(h)/scale))
}

func (l *DebugLayer) OnDetach(e *core.Engine) {}

func (l *DebugLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *DebugLayer) OnRender(e *core.Engine, alpha float64) {
	r := l.r2d
	w := l.cam.Width()

	panel := geom.R(w-240, 16, 224, 148)
	r.Begin(l.cam.Projection(), e.Window.ContentScale())
	{
		r.DrawRoundedRect(panel, colors.Black.WithAlpha(0.55), geom.Radii(6))

		y := panel.Y + 10
		l.line(panel, &y, func() {
			scratch.F().S("draw calls: ").I(l.stats.DrawCalls)
		})
		l.line(panel, &y, func() {
			scratch.F().S("quads: ").I(l.stats.QuadCount).S("  text: ").I(l.stats.TextQuadCount)
		})
		l.line(panel, &y, func() {
			scratch.F().S("vertices: ").I(l.stats.TotalVertexCount())
		})
		l.line(panel, &y, func() {
			scratch.F().S("clip changes: ").I(l.stats.ClipChanges)
		})
		l.line(panel, &y, func() {
			scratch.F().S("ui render: ").F32(profiler.AverageMillis("UILayer.OnRender"), 3).S(" ms")
		})
		l.line(panel, &y, func() {
			scratch.F().S("heap: ").F32(float32(profiler.MemoryUsage())/(1<<20), 2).S(" MB")
		})
		l.line(panel, &y, func() {
			scratch.F().S("gpu: ").S(e.Device.Caps().Renderer)
		})
	}
	r.End()
}

func (l *DebugLayer) line(panel geom.Rect, y *float32, build func()) {
	mark := scratch.Mark()
	build()
	l.r2d.DrawBitmapText(scratch.StringViewFrom(mark), geom.V(panel.X+10, *y), l.font, 12, colors.Yellow)
	*y += 18
}

func (l *DebugLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		scale := e.Window.ContentScale()
		l.cam.SetViewport(int(float32(v.W)/scale), int(float32(v.H)/scale))
	}
	return false
}

package uirender

import (
	"github.com/chewxy/math32"

	"github.com/aldergfx/alder/engine/geom"
)

// PushClipRect narrows the clip region to the intersection of rect with the
// current effective clip. Pending geometry is flushed first so quads already
// batched are drawn under the old clip.
func (rd *Renderer) PushClipRect(rect geom.Rect) {
	if !rd.initialized {
		return
	}
	rd.flush()

	if len(rd.clipStack) == 0 {
		rd.clipRect = rect
	} else {
		rd.clipRect = rd.clipRect.Intersect(rect)
	}
	rd.clipStack = append(rd.clipStack, rect)
	rd.stats.ClipChanges++
	rd.applyScissor()
}

// PopClipRect restores the clip region that was in effect before the last
// push. The effective clip is recomputed from scratch over the remaining
// stack entries; intersection is associative and commutative, so this is
// always correct at O(depth) cost per pop.
func (rd *Renderer) PopClipRect() {
	if !rd.initialized || len(rd.clipStack) == 0 {
		return
	}
	rd.flush()

	rd.clipStack = rd.clipStack[:len(rd.clipStack)-1]
	rd.clipRect = geom.Rect{}
	for i, r := range rd.clipStack {
		if i == 0 {
			rd.clipRect = r
		} else {
			rd.clipRect = rd.clipRect.Intersect(r)
		}
	}
	rd.stats.ClipChanges++

	if len(rd.clipStack) == 0 {
		rd.dev.DisableScissor()
		return
	}
	rd.applyScissor()
}

// CurrentClipRect returns the effective clip, or the empty rect when no clip
// is pushed.
func (rd *Renderer) CurrentClipRect() geom.Rect { return rd.clipRect }

// applyScissor converts the effective clip from UI units (top-left origin)
// to framebuffer pixels. An empty intersection clips everything rather than
// nothing.
func (rd *Renderer) applyScissor() {
	c := rd.clipRect
	if c.IsEmpty() {
		rd.dev.SetScissor(0, 0, 0, 0)
		return
	}
	x := int32(math32.Floor(c.X * rd.dpr))
	y := int32(math32.Floor(c.Y * rd.dpr))
	w := int32(math32.Ceil(c.W * rd.dpr))
	h := int32(math32.Ceil(c.H * rd.dpr))
	rd.dev.SetScissor(x, y, w, h)
}

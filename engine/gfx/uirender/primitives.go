package uirender

import (
	"github.com/chewxy/math32"

	"github.com/aldergfx/alder/engine/colors"
	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/geom"
)

// DrawRect fills an axis-aligned rectangle with a solid color.
func (rd *Renderer) DrawRect(rect geom.Rect, color colors.Color) {
	if !rd.initialized || rect.IsEmpty() {
		return
	}
	rd.pushQuad(rect, color, quadSrc{u1: 1, v1: 1})
}

// DrawRoundedRect fills a rectangle with per-corner rounding. The corners are
// resolved per fragment from a signed distance function; the geometry stays a
// plain quad.
func (rd *Renderer) DrawRoundedRect(rect geom.Rect, color colors.Color, radii geom.CornerRadii) {
	if !rd.initialized || rect.IsEmpty() {
		return
	}
	rd.pushQuad(rect, color, quadSrc{u1: 1, v1: 1, radii: radii})
}

// DrawRoundedRectOutline strokes a ring of the given thickness along the
// rectangle's (possibly rounded) edge.
func (rd *Renderer) DrawRoundedRectOutline(rect geom.Rect, color colors.Color, radii geom.CornerRadii, thickness float32) {
	if !rd.initialized || rect.IsEmpty() || thickness <= 0 {
		return
	}
	rd.pushQuad(rect, color, quadSrc{u1: 1, v1: 1, radii: radii, thickness: thickness})
}

// DrawTexturedRect draws tex over rect with the requested UV sub-rectangle,
// tinted by the vertex color.
func (rd *Renderer) DrawTexturedRect(rect geom.Rect, tex core.Texture, tint colors.Color, uvMin, uvMax geom.Vec2) {
	if !rd.initialized || rect.IsEmpty() {
		return
	}
	// Capacity check precedes the bind: a full batch flushes here and drains
	// the slot table, and the quad must land in the batch that binds tex.
	rd.ensureQuadCapacity()
	slot := rd.bindTexture(tex)
	rd.pushQuad(rect, tint, quadSrc{
		slot: slot,
		u0:   uvMin.X, v0: uvMin.Y,
		u1: uvMax.X, v1: uvMax.Y,
	})
}

// DrawSubTexture draws a SubTexture over rect.
func (rd *Renderer) DrawSubTexture(rect geom.Rect, sub SubTexture, tint colors.Color) {
	rd.DrawTexturedRect(rect, sub.Texture, tint, geom.V(sub.U0, sub.V0), geom.V(sub.U1, sub.V1))
}

// DrawLine strokes the segment p1-p2 with the given thickness. Near-zero
// length segments are skipped.
func (rd *Renderer) DrawLine(p1, p2 geom.Vec2, color colors.Color, thickness float32) {
	if !rd.initialized || thickness <= 0 {
		return
	}
	d := p2.Sub(p1)
	length := d.Length()
	if length < 1e-4 {
		return
	}
	// Perpendicular offset of thickness/2 from the normalized direction.
	half := thickness * 0.5
	nx := -d.Y / length * half
	ny := d.X / length * half

	rd.ensureQuadCapacity()
	base := [4]geom.Vec2{
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p2.X - nx, Y: p2.Y - ny},
		{X: p2.X + nx, Y: p2.Y + ny},
	}
	uvs := [4][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	for i, p := range base {
		rd.verts = append(rd.verts,
			p.X, p.Y, 0,
			color[0], color[1], color[2], color[3],
			uvs[i][0], uvs[i][1],
			0, 0, 0, 0, // no rounding on strokes
			length, thickness,
			0, 0, // local pos unused when radii and thickness are zero
			0,         // slot 0: white
			0,         // thickness field: none
			modeSolid, // mode
		)
	}
	rd.quadCount++
	rd.stats.QuadCount++
}

type quadSrc struct {
	slot           float32
	u0, v0, u1, v1 float32
	radii          geom.CornerRadii
	thickness      float32
	mode           float32
}

// pushQuad emits one axis-aligned quad: 4 vertices, CCW from top-left, paired
// with the fixed {4i,4i+1,4i+2, 4i+2,4i+3,4i} index pattern.
func (rd *Renderer) pushQuad(r geom.Rect, color colors.Color, q quadSrc) {
	rd.ensureQuadCapacity()

	halfW := r.W * 0.5
	halfH := r.H * 0.5
	cx := r.X + halfW
	cy := r.Y + halfH

	// TL, BL, BR, TR. localPos is relative to the quad center so the
	// fragment stage can evaluate the rounded-box distance field.
	corners := [4][4]float32{
		{-halfW, -halfH, q.u0, q.v0},
		{-halfW, halfH, q.u0, q.v1},
		{halfW, halfH, q.u1, q.v1},
		{halfW, -halfH, q.u1, q.v0},
	}

	for _, p := range corners {
		rd.verts = append(rd.verts,
			cx+p[0], cy+p[1], 0,
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			q.radii.TopLeft, q.radii.TopRight, q.radii.BottomRight, q.radii.BottomLeft,
			r.W, r.H,
			p[0], p[1],
			q.slot,
			q.thickness,
			q.mode,
		)
	}
	rd.quadCount++
	rd.stats.QuadCount++
	if q.mode != modeSolid {
		rd.stats.TextQuadCount++
	}
}

// roundPx snaps a UI coordinate to a whole unit.
func roundPx(v float32) float32 { return math32.Round(v) }

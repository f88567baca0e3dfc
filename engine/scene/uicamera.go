package scene

// UICamera produces the pixel-space orthographic projection a UI overlay
// renders with: origin at the top-left, X right, Y down, sized to the
// framebuffer in logical units.
type UICamera struct {
	w, h  float32
	proj  [16]float32
	dirty bool
}

func NewUICamera(width, height int) *UICamera {
	c := &UICamera{w: float32(width), h: float32(height), dirty: true}
	c.recalculate()
	return c
}

func (c *UICamera) SetViewport(w, h int) {
	c.w, c.h = float32(w), float32(h)
	c.dirty = true
}

func (c *UICamera) Width() float32  { return c.w }
func (c *UICamera) Height() float32 { return c.h }

func (c *UICamera) Projection() [16]float32 {
	if c.dirty {
		c.recalculate()
	}
	return c.proj
}

func (c *UICamera) recalculate() {
	// top < bottom flips Y so positive Y runs down the screen.
	c.proj = ortho(0, c.w, c.h, 0, -1, 1)
	c.dirty = false
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

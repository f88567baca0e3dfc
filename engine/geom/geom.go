package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D point or extent in UI units (origin top-left, Y down).
type Vec2 struct {
	X, Y float32
}

func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Length() float32 { return math32.Hypot(v.X, v.Y) }

// Rect is an axis-aligned box, origin top-left, Y down.
// Width/height <= 0 represents an empty rect.
type Rect struct {
	X, Y, W, H float32
}

func R(x, y, w, h float32) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Min() Vec2    { return Vec2{r.X, r.Y} }
func (r Rect) Max() Vec2    { return Vec2{r.X + r.W, r.Y + r.H} }
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W*0.5, r.Y + r.H*0.5} }

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the overlap of r and o. Disjoint rects yield an
// empty rect (zero or negative size); callers must check IsEmpty.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math32.Max(r.X, o.X)
	y0 := math32.Max(r.Y, o.Y)
	x1 := math32.Min(r.X+r.W, o.X+o.W)
	y1 := math32.Min(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks the rect by the given edge spacing.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}

// Insets is four-sided edge spacing.
type Insets struct {
	Top, Right, Bottom, Left float32
}

func UniformInsets(v float32) Insets { return Insets{Top: v, Right: v, Bottom: v, Left: v} }

// CornerRadii holds per-corner rounding, each >= 0.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

func Radii(all float32) CornerRadii {
	return CornerRadii{TopLeft: all, TopRight: all, BottomRight: all, BottomLeft: all}
}

func (c CornerRadii) IsZero() bool {
	return c.TopLeft == 0 && c.TopRight == 0 && c.BottomRight == 0 && c.BottomLeft == 0
}

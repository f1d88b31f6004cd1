// Package core provides fundamental types and utilities shared by the game and
// the platform layer. It has no external dependencies (especially no Bubble Tea)
// so gameplay logic stays pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned box in arena units, stored by center and half extents.
// Physics uses it for ball, paddle and block overlap tests.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// BoxAt builds a box centered at (x, y) with full width w and height h.
func BoxAt(x, y, w, h float64) Box {
	return Box{Center: Vec2{X: x, Y: y}, HalfW: w / 2, HalfH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.HalfW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.HalfW }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Center.Y - b.HalfH }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Center.Y + b.HalfH }

// Overlap returns the penetration depth along each axis. Both values are
// positive only when the boxes intersect; touching edges do not count.
func (b Box) Overlap(o Box) (dx, dy float64) {
	dx = (b.HalfW + o.HalfW) - absF(b.Center.X-o.Center.X)
	dy = (b.HalfH + o.HalfH) - absF(b.Center.Y-o.Center.Y)
	return dx, dy
}

// Intersects reports whether the two boxes overlap with positive area.
func (b Box) Intersects(o Box) bool {
	dx, dy := b.Overlap(o)
	return dx > 0 && dy > 0
}

// Clamp restricts an int to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp interpolates linearly between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

package game

// Rect is an axis-aligned rectangle in world coordinates, top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned
// rectangle. The circle center is clamped into the rectangle to find the
// closest point, then the squared distance is compared against the squared
// radius.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	closestX := clamp(cx, r.X, r.Right())
	closestY := clamp(cy, r.Y, r.Bottom())

	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy < radius*radius
}

// RectsIntersect reports whether two axis-aligned rectangles have a
// non-empty intersection.
func RectsIntersect(a, b Rect) bool {
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

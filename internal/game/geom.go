package game

// Rect is an axis-aligned bounding box in court coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterY returns the vertical center of the rectangle
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects reports whether the two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
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

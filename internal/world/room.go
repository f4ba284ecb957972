package world

// Rect is an axis-aligned room rectangle. The border (x1, y1, x2, y2) stays
// wall; only the interior is carved.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRect creates a rectangle with its top-left corner at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center coordinates of the room.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the given point lies in the carved interior.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// Intersects returns true if this room overlaps or touches another room.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}

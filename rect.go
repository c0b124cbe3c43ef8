package tui

// Rect is a rectangle in terminal cell coordinates. The layout engine
// computes one per element; this core only reads them for hit-testing.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

package core

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Surface receives shape-drawing calls in world coordinates.
// Implementations decide how world units map onto their output;
// the terminal canvas rasterizes them onto a Screen.
type Surface interface {
	// FillRect fills the rectangle with top-left (x, y).
	FillRect(x, y, w, h float64, c Color)
	// FillCircle fills a disc.
	FillCircle(cx, cy, r float64, c Color)
	// StrokeCircle outlines a circle.
	StrokeCircle(cx, cy, r float64, c Color)
	// FillPath fills the closed polygon through pts.
	FillPath(pts []Point, c Color)
	// Text draws s horizontally centred on x.
	Text(x, y float64, s string, c Color)
}

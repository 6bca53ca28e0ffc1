package tui

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/shield-runner/internal/core"
)

// Runes used to rasterize shapes.
const (
	fillRune   = '█'
	strokeRune = '▒'
	dotRune    = '•'
)

// Canvas rasterizes world-space draw calls onto a Screen.
// Each cell covers cellW x cellH world units; a cell is painted when its
// centre lies inside the shape. Shapes too small to cover any centre still
// paint the cell they sit in, so particles and eyes stay visible.
type Canvas struct {
	screen *core.Screen
	cellW  float64
	cellH  float64

	raster *vector.Rasterizer
	mask   *image.Alpha
}

// NewCanvas creates a canvas drawing onto screen.
func NewCanvas(screen *core.Screen, cellW, cellH float64) *Canvas {
	return &Canvas{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		raster: vector.NewRasterizer(1, 1),
	}
}

// WorldSize returns the world extent covered by the screen.
func (c *Canvas) WorldSize() (w, h float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

// span returns the inclusive range of cells whose centres fall in [lo, hi).
// An empty range collapses to the cell containing lo.
func span(lo, hi, size float64) (first, last int, covered bool) {
	first = int(math.Ceil(lo/size - 0.5))
	last = int(math.Ceil(hi/size-0.5)) - 1
	if last < first {
		cell := int(math.Floor(lo / size))
		return cell, cell, false
	}
	return first, last, true
}

func (c *Canvas) centre(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

func (c *Canvas) cellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

func (c *Canvas) FillRect(x, y, w, h float64, col core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1, _ := span(x, x+w, c.cellW)
	y0, y1, _ := span(y, y+h, c.cellH)
	for row := y0; row <= y1; row++ {
		for cx := x0; cx <= x1; cx++ {
			c.screen.SetColor(cx, row, fillRune, col)
		}
	}
}

func (c *Canvas) FillCircle(cx, cy, r float64, col core.Color) {
	if r <= 0 {
		return
	}
	painted := c.circle(cx, cy, func(d float64) bool { return d <= r }, r, fillRune, col)
	if !painted {
		x, y := c.cellOf(cx, cy)
		c.screen.SetColor(x, y, dotRune, col)
	}
}

func (c *Canvas) StrokeCircle(cx, cy, r float64, col core.Color) {
	if r <= 0 {
		return
	}
	band := math.Max(c.cellW, c.cellH) / 2
	c.circle(cx, cy, func(d float64) bool { return math.Abs(d-r) <= band }, r+band, strokeRune, col)
}

// circle paints every cell around (cx, cy) within reach whose centre
// distance satisfies inside. It reports whether anything was painted.
func (c *Canvas) circle(cx, cy float64, inside func(d float64) bool, reach float64, ch rune, col core.Color) bool {
	x0, x1, _ := span(cx-reach, cx+reach, c.cellW)
	y0, y1, _ := span(cy-reach, cy+reach, c.cellH)
	painted := false
	for row := y0; row <= y1; row++ {
		for cell := x0; cell <= x1; cell++ {
			px, py := c.centre(cell, row)
			if inside(math.Hypot(px-cx, py-cy)) {
				c.screen.SetColor(cell, row, ch, col)
				painted = true
			}
		}
	}
	return painted
}

// FillPath rasterizes the polygon at cell resolution and paints cells that
// are at least half covered.
func (c *Canvas) FillPath(pts []core.Point, col core.Color) {
	if len(pts) < 3 {
		return
	}
	w, h := c.screen.Width(), c.screen.Height()
	if w == 0 || h == 0 {
		return
	}

	c.raster.Reset(w, h)
	c.raster.MoveTo(float32(pts[0].X/c.cellW), float32(pts[0].Y/c.cellH))
	for _, p := range pts[1:] {
		c.raster.LineTo(float32(p.X/c.cellW), float32(p.Y/c.cellH))
	}
	c.raster.ClosePath()

	bounds := image.Rect(0, 0, w, h)
	if c.mask == nil || c.mask.Bounds() != bounds {
		c.mask = image.NewAlpha(bounds)
	} else {
		clear(c.mask.Pix)
	}
	c.raster.Draw(c.mask, bounds, image.Opaque, image.Point{})

	painted := false
	for y := range h {
		for x := range w {
			if c.mask.AlphaAt(x, y).A >= 0x80 {
				c.screen.SetColor(x, y, fillRune, col)
				painted = true
			}
		}
	}
	if painted {
		return
	}

	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	x, y := c.cellOf(sx/n, sy/n)
	c.screen.SetColor(x, y, dotRune, col)
}

func (c *Canvas) Text(x, y float64, s string, col core.Color) {
	cx, row := c.cellOf(x, y)
	c.screen.DrawTextColor(cx-len([]rune(s))/2, row, s, col)
}

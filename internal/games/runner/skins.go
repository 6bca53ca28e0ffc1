package runner

import (
	"math"

	"github.com/vovakirdan/shield-runner/internal/core"
	"github.com/vovakirdan/shield-runner/internal/registry"
)

// DefaultSkin is the skin used when a stored or requested skin is unknown.
const DefaultSkin = "ball"

// Ball is a green circle.
type Ball struct{}

func (Ball) ID() string        { return "ball" }
func (Ball) Title() string     { return "Ball" }
func (Ball) Color() core.Color { return core.ColorBrightGreen }

func (b Ball) Draw(dst core.Surface, x, y, r float64) {
	dst.FillCircle(x, y, r, b.Color())
	drawEyes(dst, x, y, 3, 5)
}

// Human is a yellow rounded square.
type Human struct{}

func (Human) ID() string        { return "human" }
func (Human) Title() string     { return "Human" }
func (Human) Color() core.Color { return core.ColorBrightYellow }

func (h Human) Draw(dst core.Surface, x, y, r float64) {
	dst.FillPath(roundedRect(x-r, y-r, r*2, r*2, 6), h.Color())
	drawEyes(dst, x, y, 4, 5)
}

// Animal is a pink circle with two ears.
type Animal struct{}

func (Animal) ID() string        { return "animal" }
func (Animal) Title() string     { return "Animal" }
func (Animal) Color() core.Color { return core.ColorPink }

func (a Animal) Draw(dst core.Surface, x, y, r float64) {
	dst.FillCircle(x, y, r, a.Color())
	dst.FillPath(ellipse(x-r*0.45, y-r*0.9, r*0.25, r*0.6), a.Color())
	dst.FillPath(ellipse(x+r*0.45, y-r*0.9, r*0.25, r*0.6), a.Color())
	drawEyes(dst, x, y, 3, 4)
}

func drawEyes(dst core.Surface, x, y, size, spacing float64) {
	dst.FillCircle(x-spacing, y-2, size, core.ColorBlack)
	dst.FillCircle(x+spacing, y-2, size, core.ColorBlack)
}

// roundedRect approximates a rounded rectangle as a polygon.
func roundedRect(x, y, w, h, radius float64) []core.Point {
	radius = math.Min(radius, math.Min(w/2, h/2))
	corners := []struct {
		cx, cy, start float64
	}{
		{x + w - radius, y + radius, -math.Pi / 2},
		{x + w - radius, y + h - radius, 0},
		{x + radius, y + h - radius, math.Pi / 2},
		{x + radius, y + radius, math.Pi},
	}

	const steps = 4
	pts := make([]core.Point, 0, len(corners)*(steps+1))
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			a := c.start + float64(i)*(math.Pi/2)/steps
			pts = append(pts, core.Point{X: c.cx + radius*math.Cos(a), Y: c.cy + radius*math.Sin(a)})
		}
	}
	return pts
}

// ellipse approximates an axis-aligned ellipse as a polygon.
func ellipse(cx, cy, rx, ry float64) []core.Point {
	const steps = 16
	pts := make([]core.Point, steps)
	for i := range steps {
		a := float64(i) * 2 * math.Pi / steps
		pts[i] = core.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}

// ResolveSkin returns the registered skin for id, falling back to DefaultSkin.
func ResolveSkin(id string) registry.Skin {
	return registry.Resolve(id, DefaultSkin)
}

// Register the skins with the registry
func init() {
	registry.Register(Ball{})
	registry.Register(Human{})
	registry.Register(Animal{})
}

package runner

import "github.com/vovakirdan/shield-runner/internal/core"

// Render issues the draw calls for the current frame. Everything is in
// world coordinates; the HUD is left to the platform.
func (w *World) Render(dst core.Surface) {
	// Ground
	dst.FillRect(0, w.GroundY, w.ViewW, w.ViewH-w.GroundY, core.ColorDarkGreen)
	dst.FillRect(0, w.GroundY, w.ViewW, 2, core.ColorBrightGreen)

	for _, o := range w.Obstacles() {
		drawObstacle(dst, o, w.GroundY)
	}

	h := w.Hero
	if h.Shielding {
		dst.FillCircle(h.X, h.Y, h.Radius+8, core.ColorDarkGreen)
		dst.StrokeCircle(h.X, h.Y, h.Radius+8, core.ColorBrightGreen)
	}
	if skin := ResolveSkin(h.Skin); skin != nil {
		skin.Draw(dst, h.X, h.Y, h.Radius)
	}

	for _, p := range w.Particles() {
		dst.FillCircle(p.X, p.Y, p.Size, p.Color)
	}

	if w.Announcement > 0 {
		dst.Text(w.ViewW/2, w.ViewH/3, "SHIELD UNLOCKED", core.ColorBrightGreen)
	}
}

func drawObstacle(dst core.Surface, o Obstacle, groundY float64) {
	if o.Kind == Spike {
		dst.FillPath([]core.Point{
			{X: o.X, Y: groundY},
			{X: o.X + o.Width/2, Y: groundY - o.Height},
			{X: o.X + o.Width, Y: groundY},
		}, core.ColorRed)
		return
	}
	dst.FillRect(o.X, groundY-o.Height, o.Width, o.Height, core.ColorYellow)
}

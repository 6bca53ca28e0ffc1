package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shield-runner/internal/core"
)

// solidColors also paint the cell background, so the ground and the
// shield bubble read as filled areas rather than rows of block glyphs.
var solidColors = map[core.Color]bool{
	core.ColorDarkGreen: true,
}

// backdrop is the background behind stroke cells. The shield ring is the
// only stroke and always sits on the bubble.
const backdrop = core.ColorDarkGreen

var (
	cellStyles   [core.NumColors]lipgloss.Style
	strokeStyles [core.NumColors]lipgloss.Style
)

func init() {
	for i := range core.NumColors {
		c := core.Color(i)
		style := lipgloss.NewStyle()
		if code := c.Code(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
			if solidColors[c] {
				style = style.Background(lipgloss.Color(code))
			}
		}
		cellStyles[i] = style
		strokeStyles[i] = style.Background(lipgloss.Color(backdrop.Code()))
	}
}

// colorStyle returns the style for a cell of colour c.
func colorStyle(c core.Color) lipgloss.Style {
	if int(c) >= core.NumColors {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// cellStyle picks the style for a single cell. Shield ring cells keep
// their colour but take the bubble's background.
func cellStyle(cell core.Cell) lipgloss.Style {
	if cell.Rune == strokeRune && int(cell.Color) < core.NumColors {
		return strokeStyles[cell.Color]
	}
	return colorStyle(cell.Color)
}

// sameRun reports whether two cells can share one styled run.
func sameRun(a, b core.Cell) bool {
	return a.Color == b.Color && (a.Rune == strokeRune) == (b.Rune == strokeRune)
}

// RenderScreen converts the screen buffer into styled terminal text,
// one escape sequence per run of identically styled cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			first := s.GetCell(x, y)
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if !sameRun(first, cell) {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(cellStyle(first).Render(run.String()))
		}
	}
	return sb.String()
}

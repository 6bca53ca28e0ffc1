package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shield-runner/internal/core"
	"github.com/vovakirdan/shield-runner/internal/games/runner"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(1, 3)

	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// viewPlayfield draws the world and any run overlay.
func (m Model) viewPlayfield() string {
	m.screen.Clear()
	m.session.Render(m.canvas)

	switch m.session.Mode() {
	case runner.ModePaused:
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume  |  H for menu")
	case runner.ModeGameOver:
		drawCenteredMessage(m.screen, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", m.session.LastScore(), m.session.Best()))
	}

	return RenderScreen(m.screen)
}

// drawCenteredMessage draws a boxed two-line message in the middle of dst.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

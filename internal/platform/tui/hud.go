package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shield-runner/internal/games/runner"
)

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

const shieldHint = "hold mouse or press enter to shield"

// shieldFraction returns the shield energy as a fraction of the maximum.
func (m Model) shieldFraction() float64 {
	maxEnergy := m.cfg.Shield.MaxEnergy
	if maxEnergy <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, m.session.World().Hero.Energy/maxEnergy))
}

// viewHUD renders score, best score, the shield bar and the sound flag.
// The hint says how to unlock the shield until it unlocks, then how to
// use it. The label is upper case while the shield is up.
func (m Model) viewHUD() string {
	w := m.session.World()

	state := w.ShieldState()
	bar := m.barOff.ViewAs(m.shieldFraction())
	if state != runner.ShieldLocked {
		bar = m.bar.ViewAs(m.shieldFraction())
	}
	label := "Shield "
	if state == runner.ShieldActive {
		label = "SHIELD "
	}

	sound := "off"
	if m.session.SoundEnabled() {
		sound = "on"
	}

	parts := []string{
		hudLabelStyle.Render("Score ") + hudValueStyle.Render(fmt.Sprintf("%d", int(math.Floor(w.Score)))),
		hudLabelStyle.Render("Best ") + hudValueStyle.Render(fmt.Sprintf("%d", m.session.Best())),
		hudLabelStyle.Render(label) + bar,
		hudLabelStyle.Render("Sound ") + sound,
	}
	if state == runner.ShieldLocked {
		parts = append(parts, hintStyle.Render(fmt.Sprintf("shield unlocks at %d", int(m.cfg.Shield.UnlockScore))))
	} else {
		parts = append(parts, hintStyle.Render(shieldHint))
	}
	return strings.Join(parts, "   ")
}

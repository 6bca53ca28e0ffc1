package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuItem is an entry on the main menu.
type menuItem int

const (
	menuPlay menuItem = iota
	menuSkins
	menuSound
	menuQuit
	menuItemCount
)

func (m Model) menuLabel(item menuItem) string {
	switch item {
	case menuPlay:
		return "Play"
	case menuSkins:
		return "Skins"
	case menuSound:
		if m.session.SoundEnabled() {
			return "Sound: on"
		}
		return "Sound: off"
	default:
		return "Quit"
	}
}

// updateMenu handles cursor navigation on the main menu.
func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < int(menuItemCount)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Skins):
		m.openSkins()
	case key.Matches(msg, m.keys.Select):
		switch menuItem(m.cursor) {
		case menuPlay:
			m.session.Start()
		case menuSkins:
			m.openSkins()
		case menuSound:
			m.session.ToggleMute()
		case menuQuit:
			m.quitting = true
			return tea.Quit
		}
	}
	return nil
}

// openSkins shows the picker with the cursor on the selected skin.
func (m *Model) openSkins() {
	m.session.OpenSkins()
	m.cursor = 0
	for i, s := range m.skins {
		if s.ID == m.session.Skin() {
			m.cursor = i
		}
	}
}

// updateSkins handles the skin picker. Selecting a skin keeps the picker
// open so the choice can be compared against the others.
func (m *Model) updateSkins(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.skins)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Pick):
		if i := pickIndex(msg.String()); i >= 0 && i < len(m.skins) {
			m.cursor = i
			m.session.SetSkin(m.skins[i].ID)
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.skins) {
			m.session.SetSkin(m.skins[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Back):
		m.session.Home()
		m.cursor = int(menuSkins)
	}
}

// viewMenu renders the main menu panel.
func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("S H I E L D   R U N N E R"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Best: %d", m.session.Best()))
	if last := m.session.LastScore(); last > 0 {
		b.WriteString(fmt.Sprintf("   Last: %d", last))
	}
	b.WriteString("\n\n")

	for i := range int(menuItemCount) {
		b.WriteString(cursorLine(i == m.cursor, m.menuLabel(menuItem(i))))
		b.WriteString("\n")
	}

	return m.place(panelStyle.Render(strings.TrimRight(b.String(), "\n")))
}

// viewSkins renders the skin picker with a swatch per skin.
func (m Model) viewSkins() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SKINS"))
	b.WriteString("\n\n")

	for i, s := range m.skins {
		swatch := colorStyle(s.Color).Render("●")
		label := fmt.Sprintf("%d. %s %s", i+1, swatch, s.Title)
		if s.ID == m.session.Skin() {
			label += selectedStyle.Render("  (selected)")
		}
		b.WriteString(cursorLine(i == m.cursor, label))
		b.WriteString("\n")
	}

	return m.place(panelStyle.Render(strings.TrimRight(b.String(), "\n")))
}

// place centres content in the playfield area.
func (m Model) place(content string) string {
	return lipgloss.Place(m.width, m.screen.Height(), lipgloss.Center, lipgloss.Center, content)
}

func cursorLine(active bool, label string) string {
	if active {
		return cursorStyle.Render("> ") + label
	}
	return "  " + label
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shield-runner/internal/audio"
	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/games/runner"
	"github.com/vovakirdan/shield-runner/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemory()
	m := NewModel(Options{
		Config: config.DefaultRunnerConfig(),
		FPS:    60,
		Seed:   7,
		Width:  80,
		Height: 24,
		Audio:  audio.NewNop(),
		Prefs:  storage.NewPrefs(mem, nil),
	})
	return m, mem
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func currentTick(m Model) TickMsg {
	return TickMsg{Gen: m.ticker.gate.Generation()}
}

func startRun(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, keyEnter)
	require.Equal(t, runner.ModePlaying, m.Session().Mode())
	return m
}

func TestModelLayout(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 24-hudRows, m.screen.Height())
	w := m.Session().World()
	assert.InDelta(t, 800.0, w.ViewW, 1e-9)
	assert.InDelta(t, 440.0, w.ViewH, 1e-9)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 28, m.screen.Height())
	assert.InDelta(t, 1000.0, w.ViewW, 1e-9)
	assert.InDelta(t, 448.0, w.GroundY, 1e-9)
}

func TestModelStartsRunFromMenu(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, runner.ModeMenu, m.Session().Mode())
	assert.False(t, m.ticker.Running())

	m, cmd := send(t, m, keyEnter)

	assert.Equal(t, runner.ModePlaying, m.Session().Mode())
	assert.True(t, m.ticker.Running())
	assert.NotNil(t, cmd, "first tick is scheduled")
}

func TestModelTicksOnlyCurrentGeneration(t *testing.T) {
	m, _ := newTestModel(t)
	m = startRun(t, m)
	stale := TickMsg{Gen: m.ticker.gate.Generation() - 1}

	m, _ = send(t, m, stale)
	assert.Equal(t, 0, m.Session().World().Frames)

	m, cmd := send(t, m, currentTick(m))
	assert.Equal(t, 1, m.Session().World().Frames)
	assert.NotNil(t, cmd, "next tick is armed")
}

func TestModelRunsUntilGameOver(t *testing.T) {
	m, mem := newTestModel(t)
	m = startRun(t, m)

	for range 5000 {
		if m.Session().Mode() != runner.ModePlaying {
			break
		}
		m, _ = send(t, m, currentTick(m))
	}

	require.Equal(t, runner.ModeGameOver, m.Session().Mode())
	assert.False(t, m.ticker.Running())

	frames := m.Session().World().Frames
	m, cmd := send(t, m, TickMsg{Gen: m.ticker.gate.Generation()})
	assert.Nil(t, cmd)
	assert.Equal(t, frames, m.Session().World().Frames)
	assert.Contains(t, m.View(), "GAME OVER")

	if m.Session().Best() > 0 {
		v, ok, err := mem.Load(runner.KeyBestScore)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotEmpty(t, v)
	}

	m, _ = send(t, m, keyRunes("r"))
	assert.Equal(t, runner.ModePlaying, m.Session().Mode())
	assert.Equal(t, 0, m.Session().World().Frames)
}

func TestModelSpaceJumps(t *testing.T) {
	m, _ := newTestModel(t)
	m = startRun(t, m)

	m, _ = send(t, m, keySpace)

	hero := m.Session().World().Hero
	assert.Less(t, hero.VY, 0.0)
	assert.False(t, m.holding)
}

func TestModelShieldKeyLatches(t *testing.T) {
	m, _ := newTestModel(t)
	m = startRun(t, m)

	m, _ = send(t, m, keyEnter)
	assert.True(t, m.holding)
	assert.True(t, m.Session().World().Gesture().Pressing())

	m, _ = send(t, m, keyEnter)
	assert.False(t, m.holding)
	assert.False(t, m.Session().World().Gesture().Pressing())
}

func TestModelMouse(t *testing.T) {
	m, _ := newTestModel(t)
	m = startRun(t, m)

	m, _ = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, m.mouseDown, "right button ignored")

	m, _ = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.mouseDown)
	assert.True(t, m.Session().World().Gesture().Pressing())
	assert.Less(t, m.Session().World().Hero.VY, 0.0, "locked shield jumps on press")

	m, _ = send(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, m.mouseDown)
	assert.False(t, m.Session().World().Gesture().Pressing())
}

func TestModelMouseIgnoredOnMenu(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, m.mouseDown)
	assert.Equal(t, runner.ModeMenu, m.Session().Mode())
}

func TestModelBlurPausesAndReleases(t *testing.T) {
	m, _ := newTestModel(t)
	m = startRun(t, m)
	m, _ = send(t, m, keyEnter)
	require.True(t, m.holding)

	m, cmd := send(t, m, tea.BlurMsg{})

	assert.Equal(t, runner.ModePaused, m.Session().Mode())
	assert.False(t, m.holding)
	assert.False(t, m.Session().World().Gesture().Pressing())
	assert.False(t, m.ticker.Running())
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "PAUSED")

	m, cmd = send(t, m, keyRunes("p"))
	assert.Equal(t, runner.ModePlaying, m.Session().Mode())
	assert.NotNil(t, cmd)
}

func TestModelPausedHome(t *testing.T) {
	m, _ := newTestModel(t)
	m = startRun(t, m)
	m, _ = send(t, m, keyRunes("p"))
	require.Equal(t, runner.ModePaused, m.Session().Mode())

	m, _ = send(t, m, keyRunes("h"))

	assert.Equal(t, runner.ModeMenu, m.Session().Mode())
	assert.Equal(t, 0, m.cursor)
}

func TestModelMenuNavigation(t *testing.T) {
	m, mem := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, int(menuSound), m.cursor)
	assert.Contains(t, m.View(), "Sound: on")

	m, _ = send(t, m, keyEnter)
	assert.False(t, m.Session().SoundEnabled())
	v, _, _ := mem.Load(runner.KeySound)
	assert.Equal(t, "0", v)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, int(menuQuit), m.cursor, "cursor stops at the last item")

	m, cmd := send(t, m, keyEnter)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelSkinPicker(t *testing.T) {
	m, mem := newTestModel(t)

	m, _ = send(t, m, keyRunes("s"))
	require.Equal(t, runner.ModeSkins, m.Session().Mode())
	assert.Equal(t, 0, m.cursor, "cursor starts on the selected skin")
	require.GreaterOrEqual(t, len(m.skins), 2)

	m, _ = send(t, m, keyRunes("2"))
	assert.Equal(t, m.skins[1].ID, m.Session().Skin())
	v, _, _ := mem.Load(runner.KeySkin)
	assert.Equal(t, m.skins[1].ID, v)
	assert.Contains(t, m.View(), "(selected)")

	m, _ = send(t, m, keyRunes("9"))
	assert.Equal(t, m.skins[1].ID, m.Session().Skin(), "out of range pick ignored")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, runner.ModeMenu, m.Session().Mode())
	assert.Equal(t, int(menuSkins), m.cursor)
}

func TestModelMuteAnywhere(t *testing.T) {
	m, _ := newTestModel(t)
	m = startRun(t, m)

	m, _ = send(t, m, keyRunes("m"))

	assert.False(t, m.Session().SoundEnabled())
	assert.Equal(t, runner.ModePlaying, m.Session().Mode())
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m = startRun(t, m)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelHUD(t *testing.T) {
	m, _ := newTestModel(t)

	hud := m.viewHUD()
	assert.Contains(t, hud, "Score")
	assert.Contains(t, hud, "shield unlocks at 200")
	assert.InDelta(t, 1.0, m.shieldFraction(), 1e-9)

	m.Session().World().ShieldUnlocked = true
	m.Session().World().Hero.Energy = 25
	hud = m.viewHUD()
	assert.NotContains(t, hud, "shield unlocks")
	assert.Contains(t, hud, shieldHint)
	assert.InDelta(t, 0.25, m.shieldFraction(), 1e-9)

	m.Session().World().Hero.Shielding = true
	assert.Contains(t, m.viewHUD(), "SHIELD")
}

func TestPlayingHelpShowsShieldAfterUnlock(t *testing.T) {
	keys := DefaultKeyMap()

	locked := keys.For(runner.ModePlaying, false).ShortHelp()
	for _, b := range locked {
		assert.NotEqual(t, "enter", b.Help().Key, "shield key listed before unlock")
	}

	unlocked := keys.For(runner.ModePlaying, true).ShortHelp()
	assert.Contains(t, unlocked, keys.Shield)
	assert.Len(t, unlocked, len(locked)+1)
}

func TestUserPrefix(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{"alice", "user.alice."},
		{"", "user._."},
		{"../etc", "user._2e_2e_2fetc."},
		{"Bob", "user._42ob."},
		{"bob smith", "user.bob_20smith."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, userPrefix(tt.user), tt.user)
	}
}

func TestUserPrefixDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, user := range []string{"bob.x", "bob x", "bob_x", "bob_2ex", "BOB", "bob", "_", ""} {
		p := userPrefix(user)
		if prev, ok := seen[p]; ok {
			t.Fatalf("%q and %q share prefix %q", prev, user, p)
		}
		seen[p] = user
	}
}

func TestPickIndex(t *testing.T) {
	assert.Equal(t, 0, pickIndex("1"))
	assert.Equal(t, 8, pickIndex("9"))
	assert.Equal(t, -1, pickIndex("0"))
	assert.Equal(t, -1, pickIndex("12"))
	assert.Equal(t, -1, pickIndex("a"))
}

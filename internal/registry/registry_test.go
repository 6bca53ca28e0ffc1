package registry

import (
	"testing"

	"github.com/vovakirdan/shield-runner/internal/core"
)

type stubSkin struct {
	id string
}

func (s stubSkin) ID() string                                   { return s.id }
func (s stubSkin) Title() string                                { return "Stub " + s.id }
func (s stubSkin) Color() core.Color                            { return core.ColorWhite }
func (s stubSkin) Draw(core.Surface, float64, float64, float64) {}

// withCleanRegistry swaps the global registry for the duration of a test.
func withCleanRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	savedSkins, savedOrder := skins, order
	skins, order = make(map[string]Skin), nil
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		skins, order = savedSkins, savedOrder
		mu.Unlock()
	})
}

func TestRegisterAndList(t *testing.T) {
	withCleanRegistry(t)

	Register(stubSkin{"ball"})
	Register(stubSkin{"human"})
	Register(stubSkin{"animal"})

	list := List()
	if len(list) != 3 {
		t.Fatalf("List() returned %d skins, want 3", len(list))
	}
	want := []string{"ball", "human", "animal"}
	for i, info := range list {
		if info.ID != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, info.ID, want[i])
		}
		if info.Title != "Stub "+want[i] {
			t.Errorf("List()[%d].Title = %q", i, info.Title)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withCleanRegistry(t)

	Register(stubSkin{"ball"})
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(stubSkin{"ball"})
}

func TestResolve(t *testing.T) {
	withCleanRegistry(t)

	if Resolve("ball", "ball") != nil {
		t.Error("empty registry should resolve to nil")
	}

	Register(stubSkin{"human"})
	Register(stubSkin{"ball"})

	tests := []struct {
		id, fallback, want string
	}{
		{"human", "ball", "human"},
		{"robot", "ball", "ball"},
		{"", "ball", "ball"},
		{"robot", "ghost", "human"},
	}
	for _, tt := range tests {
		got := Resolve(tt.id, tt.fallback)
		if got == nil || got.ID() != tt.want {
			t.Errorf("Resolve(%q, %q) = %v, want %q", tt.id, tt.fallback, got, tt.want)
		}
	}

	if _, ok := Lookup("robot"); ok {
		t.Error("Lookup found unregistered skin")
	}
	if !Exists("ball") || Exists("robot") {
		t.Error("Exists misreports registration")
	}
}

// Package registry provides a global registry for character appearances.
// Skins register themselves in init() functions, allowing the platform
// to list and select them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/shield-runner/internal/core"
)

// Skin is a character appearance variant.
// Skins are stateless: they only know how to draw the character body.
type Skin interface {
	// ID returns a unique identifier (e.g., "ball"). Persisted as the selected skin.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Color returns the main body color, used by previews and the HUD.
	Color() core.Color

	// Draw paints the character centred on (x, y) with radius r.
	Draw(dst core.Surface, x, y, r float64)
}

// SkinInfo contains metadata about a registered skin.
type SkinInfo struct {
	ID    string
	Title string
	Color core.Color
}

var (
	skins = make(map[string]Skin)
	order []string
	mu    sync.RWMutex
)

// Register adds a skin to the registry.
// Typically called from an init() function.
// Panics if a skin with the same ID is already registered.
func Register(s Skin) {
	mu.Lock()
	defer mu.Unlock()

	id := s.ID()
	if _, exists := skins[id]; exists {
		panic(fmt.Sprintf("registry: skin %q already registered", id))
	}

	skins[id] = s
	order = append(order, id)
}

// List returns information about all registered skins in registration order.
// The order is stable, so the n-th entry can be bound to a number key.
func List() []SkinInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SkinInfo, 0, len(order))
	for _, id := range order {
		s := skins[id]
		result = append(result, SkinInfo{
			ID:    id,
			Title: s.Title(),
			Color: s.Color(),
		})
	}
	return result
}

// Lookup returns the skin with the given ID.
func Lookup(id string) (Skin, bool) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := skins[id]
	return s, ok
}

// Resolve returns the skin with the given ID, or the fallback skin when the
// ID is unknown. If the fallback is unknown too, the first registered skin
// is returned. Resolve returns nil only when nothing is registered.
func Resolve(id, fallback string) Skin {
	mu.RLock()
	defer mu.RUnlock()

	if s, ok := skins[id]; ok {
		return s
	}
	if s, ok := skins[fallback]; ok {
		return s
	}
	if len(order) > 0 {
		return skins[order[0]]
	}
	return nil
}

// Exists checks if a skin with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := skins[id]
	return ok
}

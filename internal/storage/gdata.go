package storage

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// GDataStore keeps each preference as a separate item in the per-user
// application data directory managed by gdata.
type GDataStore struct {
	m *gdata.Manager
}

// OpenGData opens the application data directory for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open app data for %s: %w", appName, err)
	}
	return &GDataStore{m: m}, nil
}

// Load returns the item stored under key. Empty items count as missing.
func (g *GDataStore) Load(key string) (string, bool, error) {
	data, err := g.m.LoadItem(key)
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot load %q: %w", key, err)
	}
	if len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}

// Save writes the item stored under key.
func (g *GDataStore) Save(key, value string) error {
	if err := g.m.SaveItem(key, []byte(value)); err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", key, err)
	}
	return nil
}

// Delete clears the item by saving empty data.
func (g *GDataStore) Delete(key string) error {
	if err := g.m.SaveItem(key, nil); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; every Save is written through.
func (g *GDataStore) Close() error {
	return nil
}

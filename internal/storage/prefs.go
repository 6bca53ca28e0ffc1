package storage

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Backend is a fallible string key/value store.
type Backend interface {
	// Load returns the value for key; ok is false if it was never saved.
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
	Delete(key string) error
	Close() error
}

// Backend kinds accepted by OpenBackend.
const (
	KindSQLite = "sqlite"
	KindGData  = "gdata"
	KindMemory = "memory"
	KindNone   = "none"
)

// AppName names the per-user data directory used by the gdata backend.
const AppName = "shield-runner"

// OpenBackend opens the backend of the given kind. KindNone returns a nil
// backend, which Prefs treats as permanently unavailable.
func OpenBackend(kind, dbPath string) (Backend, error) {
	switch kind {
	case KindSQLite, "":
		if dbPath == "" {
			dbPath = DefaultDBPath
		}
		store, err := Open(dbPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case KindGData:
		store, err := OpenGData(AppName)
		if err != nil {
			return nil, err
		}
		return store, nil
	case KindMemory:
		return NewMemory(), nil
	case KindNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q (want sqlite, gdata, memory or none)", kind)
	}
}

// Prefs is the preference service used by the game. It never fails:
// reads fall back to the caller's default and writes report success.
// Backend errors are logged at warn level.
type Prefs struct {
	backend Backend
	log     *log.Logger
}

// NewPrefs wraps backend. A nil backend makes every Get return its
// fallback and every Set return false. A nil logger discards output.
func NewPrefs(backend Backend, logger *log.Logger) *Prefs {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Prefs{backend: backend, log: logger}
}

// Available reports whether a backend is attached.
func (p *Prefs) Available() bool {
	return p.backend != nil
}

// Get returns the stored value for key, or fallback.
func (p *Prefs) Get(key, fallback string) string {
	if p.backend == nil {
		return fallback
	}
	v, ok, err := p.backend.Load(key)
	if err != nil {
		p.log.Warn("cannot read preference", "key", key, "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return v
}

// Set stores value under key and reports whether it was saved.
func (p *Prefs) Set(key, value string) bool {
	if p.backend == nil {
		return false
	}
	if err := p.backend.Save(key, value); err != nil {
		p.log.Warn("cannot write preference", "key", key, "error", err)
		return false
	}
	return true
}

// Reset deletes the given keys.
func (p *Prefs) Reset(keys ...string) error {
	if p.backend == nil {
		return errors.New("storage: no backend configured")
	}
	var errs []error
	for _, k := range keys {
		if err := p.backend.Delete(k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes the backend.
func (p *Prefs) Close() error {
	if p.backend == nil {
		return nil
	}
	return p.backend.Close()
}

// prefixed namespaces every key of a shared backend.
type prefixed struct {
	Backend
	prefix string
}

// WithPrefix returns a view of backend whose keys are prefixed.
// Closing the view does not close the shared backend.
func WithPrefix(backend Backend, prefix string) Backend {
	if backend == nil {
		return nil
	}
	return prefixed{Backend: backend, prefix: prefix}
}

func (p prefixed) Load(key string) (string, bool, error) { return p.Backend.Load(p.prefix + key) }
func (p prefixed) Save(key, value string) error          { return p.Backend.Save(p.prefix+key, value) }
func (p prefixed) Delete(key string) error               { return p.Backend.Delete(p.prefix + key) }
func (p prefixed) Close() error                          { return nil }

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/medbook/pkg/model"
)

// Persistence defines the persistence contract for the record book.
type Persistence interface {
	Load(ctx context.Context) (model.Snapshot, error)
	Save(ctx context.Context, s model.Snapshot) error
	Theme() (string, error)
	SetTheme(name string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	keyPersons      = "book-persons"
	keyAppointments = "book-appointments"
	keyRevision     = "book-revision"
	keyTheme        = "prefs-theme"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		s, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = s
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No cache: another medbook process may rewrite the files.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string

	mu       sync.Mutex
	revision string
}

func (p *persistence) readJSON(key string, v any) (bool, error) {
	if !p.d.Has(key) {
		return false, nil
	}
	data, err := p.d.Read(key)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

func (p *persistence) writeJSON(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

// Load reads the stored book. A missing book is an empty snapshot.
func (p *persistence) Load(ctx context.Context) (model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.Snapshot{}, err
	}
	var (
		persons []personRecord
		appts   []appointmentRecord
	)
	if _, err := p.readJSON(keyPersons, &persons); err != nil {
		return model.Snapshot{}, err
	}
	if _, err := p.readJSON(keyAppointments, &appts); err != nil {
		return model.Snapshot{}, err
	}
	s, err := toSnapshot(persons, appts, time.Now())
	if err != nil {
		return model.Snapshot{}, err
	}
	// Reject duplicates and orphans the same way the model does.
	if _, err := model.FromSnapshot(s); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	p.mu.Lock()
	p.revision = p.readRevision()
	p.mu.Unlock()
	return s, nil
}

// Save writes the whole book, then bumps the revision so watchers in other
// processes notice.
func (p *persistence) Save(ctx context.Context, s model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	persons, appts := fromSnapshot(s)
	if err := p.writeJSON(keyPersons, persons); err != nil {
		return fmt.Errorf("store: write persons: %w", err)
	}
	if err := p.writeJSON(keyAppointments, appts); err != nil {
		return fmt.Errorf("store: write appointments: %w", err)
	}

	rev := uuid.NewString()
	p.mu.Lock()
	p.revision = rev
	p.mu.Unlock()
	if err := p.d.WriteString(keyRevision, rev); err != nil {
		return fmt.Errorf("store: write revision: %w", err)
	}
	return nil
}

func (p *persistence) readRevision() string {
	if !p.d.Has(keyRevision) {
		return ""
	}
	return strings.TrimSpace(p.d.ReadString(keyRevision))
}

// foreignRevision reports whether the stored revision was written by someone
// else since this persistence last loaded or saved.
func (p *persistence) foreignRevision() bool {
	rev := p.readRevision()
	p.mu.Lock()
	defer p.mu.Unlock()
	return rev != "" && rev != p.revision
}

// Theme returns the saved theme name, or "" when none was saved.
func (p *persistence) Theme() (string, error) {
	if !p.d.Has(keyTheme) {
		return "", nil
	}
	b, err := p.d.Read(keyTheme)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// SetTheme remembers the theme for the next session.
func (p *persistence) SetTheme(name string) error {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	return p.d.WriteString(keyTheme, name)
}

// keyToPathTransform maps "book-persons" to <base>/book/persons.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

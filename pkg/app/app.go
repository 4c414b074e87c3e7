package app

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"
	"time"

	"tableflip.dev/medbook/pkg/logging"
	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/model"
	"tableflip.dev/medbook/pkg/parser"
	"tableflip.dev/medbook/pkg/store"
)

// Service runs command text against the record book and persists the result.
// It wraps the model and persistence so the shell, exec and mcp surfaces share
// one pipeline. Calls are serialised.
type Service struct {
	Persistence store.Persistence
	Log         *logging.Logger

	mu    sync.Mutex
	model *model.Model
}

// New loads the book from p. A nil p keeps the book in memory only. Data that
// cannot be read is logged and replaced by an empty book, which the next
// mutating command overwrites.
func New(ctx context.Context, p store.Persistence, log *logging.Logger) (*Service, error) {
	if log == nil {
		log = logging.Default()
	}
	s := &Service{Persistence: p, Log: log, model: model.New()}
	if p == nil {
		return s, nil
	}
	if err := s.load(ctx); err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return nil, err
		}
		log.Warn("data file not in the correct format, starting with an empty book", "error", err)
	}
	return s, nil
}

func (s *Service) load(ctx context.Context) error {
	snap, err := s.Persistence.Load(ctx)
	if err != nil {
		return err
	}
	m, err := model.FromSnapshot(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrCorrupt, err)
	}
	s.model = m
	return nil
}

// Execute parses text, runs it and saves the book when the command changed
// it. Parse failures are *parser.ParseError, execution failures
// *logic.CommandError. A save failure is reported as logic.ErrStorage after
// the change has already been applied in memory.
func (s *Service) Execute(ctx context.Context, text string) (logic.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, err := parser.Parse(text)
	if err != nil {
		s.Log.Debug("parse failed", "input", text, "error", err)
		return logic.Result{}, err
	}
	res, err := cmd.Execute(s.model)
	if err != nil {
		s.Log.Info("command failed", "input", text, "error", err)
		return logic.Result{}, err
	}
	s.Log.Debug("command executed", "input", text, "feedback", res.Feedback)

	if cmd.Mutates() && s.Persistence != nil {
		if err := s.Persistence.Save(ctx, s.model.Snapshot()); err != nil {
			s.Log.Error("save failed", "error", err)
			return res, &logic.CommandError{Err: logic.ErrStorage, Detail: err.Error()}
		}
	}
	if res.HasTheme() && s.Persistence != nil {
		if err := s.Persistence.SetTheme(path.Base(res.ThemePath)); err != nil {
			s.Log.Warn("could not remember theme", "error", err)
		}
	}
	return res, nil
}

// Read runs fn with exclusive access to the model. fn must not keep m.
func (s *Service) Read(fn func(m *model.Model)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.model)
}

// Reload replaces the in-memory book with what is stored, keeping the clock.
func (s *Service) Reload(ctx context.Context) error {
	if s.Persistence == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.model.Now
	if err := s.load(ctx); err != nil {
		return err
	}
	s.model.SetClock(now)
	return nil
}

// SetClock overrides the model's notion of now.
func (s *Service) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SetClock(now)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// Theme returns the remembered theme name, or fallback when none is saved.
func (s *Service) Theme(fallback string) string {
	if s.Persistence == nil {
		return fallback
	}
	name, err := s.Persistence.Theme()
	if err != nil || name == "" {
		return fallback
	}
	return name
}

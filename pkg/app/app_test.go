package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/medbook/pkg/logging"
	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/model"
	"tableflip.dev/medbook/pkg/parser"
	"tableflip.dev/medbook/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	snap    model.Snapshot
	theme   string
	saves   int
	saveErr error
	loadErr error
}

func (m *memoryPersistence) Load(context.Context) (model.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap, m.loadErr
}

func (m *memoryPersistence) Save(_ context.Context, s model.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snap = s
	m.saves++
	return nil
}

func (m *memoryPersistence) Theme() (string, error) { return m.theme, nil }

func (m *memoryPersistence) SetTheme(name string) error {
	m.theme = name
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func fixedNow() time.Time {
	return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)
}

func newService(t *testing.T, p *memoryPersistence) *Service {
	t.Helper()
	s, err := New(context.Background(), p, logging.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.SetClock(fixedNow)
	return s
}

func mustExec(t *testing.T, s *Service, text string) logic.Result {
	t.Helper()
	res, err := s.Execute(context.Background(), text)
	if err != nil {
		t.Fatalf("Execute(%q): %v", text, err)
	}
	return res
}

func seed(t *testing.T, s *Service) {
	t.Helper()
	mustExec(t, s, "add n/Alice Pauline id/S1234567A p/94351253 t/friends")
	mustExec(t, s, "add n/Benson Meier id/S2345678B p/98765432")
	mustExec(t, s, "add n/Carl Kurz id/T3456789C p/95352563")
}

func TestExecuteSavesMutatingCommands(t *testing.T) {
	p := &memoryPersistence{}
	s := newService(t, p)
	seed(t, s)
	if p.saves != 3 {
		t.Fatalf("saves = %d, want 3", p.saves)
	}

	mustExec(t, s, "list")
	mustExec(t, s, "find alice")
	if p.saves != 3 {
		t.Fatalf("read-only commands saved: %d", p.saves)
	}

	mustExec(t, s, "edit 1 p/98765432 t/")
	if p.saves != 4 {
		t.Fatalf("saves = %d, want 4", p.saves)
	}
	got := p.snap.Persons[0]
	if got.Phone() != "98765432" || len(got.Tags()) != 0 {
		t.Fatalf("saved person = %s", got)
	}
}

func TestExecuteParseFailureLeavesBook(t *testing.T) {
	p := &memoryPersistence{}
	s := newService(t, p)
	seed(t, s)

	_, err := s.Execute(context.Background(), "add n/John n/Jon id/S7654321A p/123")
	var pe *parser.ParseError
	if !errors.As(err, &pe) || !errors.Is(err, parser.ErrDuplicatePrefix) {
		t.Fatalf("expected duplicate prefix parse error, got %v", err)
	}
	if p.saves != 3 {
		t.Fatalf("failed parse saved the book")
	}
}

func TestExecuteEditWithoutFields(t *testing.T) {
	p := &memoryPersistence{}
	s := newService(t, p)
	seed(t, s)

	_, err := s.Execute(context.Background(), "edit 2 ")
	if !errors.Is(err, logic.ErrNotEdited) {
		t.Fatalf("expected ErrNotEdited, got %v", err)
	}
	if p.saves != 3 {
		t.Fatalf("failed edit saved the book")
	}
}

func TestExecuteDeleteOutOfRange(t *testing.T) {
	s := newService(t, &memoryPersistence{})
	seed(t, s)

	_, err := s.Execute(context.Background(), "delete 5")
	if !errors.Is(err, logic.ErrInvalidPersonIndex) {
		t.Fatalf("expected ErrInvalidPersonIndex, got %v", err)
	}
	if got := s.Summary().Persons; got != 3 {
		t.Fatalf("persons = %d", got)
	}
}

func TestExecuteStorageFailure(t *testing.T) {
	p := &memoryPersistence{}
	s := newService(t, p)
	p.saveErr = errors.New("disk full")

	res, err := s.Execute(context.Background(), "add n/Alice id/S1234567A p/123")
	if !errors.Is(err, logic.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("error lost its cause: %v", err)
	}
	if !strings.Contains(err.Error(), "applied in this session but not saved") {
		t.Fatalf("error does not say the change is live: %v", err)
	}
	if res.Feedback == "" {
		t.Fatal("result should still describe the applied change")
	}
	if got := s.Summary().Persons; got != 1 {
		t.Fatalf("in-memory book should keep the change, persons = %d", got)
	}
}

func TestNewStartsEmptyOnCorruptData(t *testing.T) {
	p := &memoryPersistence{loadErr: store.ErrCorrupt}
	s, err := New(context.Background(), p, logging.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.Summary().Persons; got != 0 {
		t.Fatalf("persons = %d", got)
	}

	p.loadErr = errors.New("permission denied")
	if _, err := New(context.Background(), p, logging.Discard()); err == nil {
		t.Fatal("expected other load errors to surface")
	}
}

func TestThemeIsRemembered(t *testing.T) {
	p := &memoryPersistence{}
	s := newService(t, p)

	if got := s.Theme("dark"); got != "dark" {
		t.Fatalf("Theme() = %q", got)
	}
	res := mustExec(t, s, "theme light")
	if res.ThemePath != "themes/light" {
		t.Fatalf("theme path = %q", res.ThemePath)
	}
	if got := s.Theme("dark"); got != "light" {
		t.Fatalf("Theme() = %q", got)
	}
}

func TestReloadPicksUpStoredBook(t *testing.T) {
	p := &memoryPersistence{}
	s := newService(t, p)
	seed(t, s)

	other := newService(t, p)
	mustExec(t, other, "delete 1")

	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := s.Summary().Persons; got != 2 {
		t.Fatalf("persons = %d", got)
	}
}

func TestReportAndSummary(t *testing.T) {
	s := newService(t, &memoryPersistence{})
	seed(t, s)
	mustExec(t, s, "addappt 2 adt/2024-06-03 09:00 note/Follow up")
	mustExec(t, s, "addappt 1 adt/2024-06-02 10:00")
	mustExec(t, s, "addappt 1 adt/2024-05-01 10:00")
	mustExec(t, s, "addappt 1 adt/2024-06-01 11:00")

	sum := s.Summary()
	if sum.Appointments != 4 || sum.Upcoming != 2 || sum.Past != 2 {
		t.Fatalf("summary = %+v", sum)
	}

	res := s.Report(time.Date(2024, time.June, 7, 0, 0, 0, 0, time.Local), fixedNow().Add(-2*time.Hour))
	if res.Total != 3 {
		t.Fatalf("total = %d", res.Total)
	}
	if len(res.Sections) != 2 {
		t.Fatalf("sections = %d", len(res.Sections))
	}
	alice := res.Sections[0]
	if alice.Person.Name() != "Alice Pauline" || len(alice.Appointments) != 2 {
		t.Fatalf("first section = %+v", alice)
	}
	if !alice.Appointments[0].When().Before(alice.Appointments[1].When()) {
		t.Fatal("appointments not sorted by time")
	}
}

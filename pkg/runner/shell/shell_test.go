package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/logging"
	"tableflip.dev/medbook/pkg/tui/theme"
)

func init() {
	color.NoColor = true
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func newModel(t *testing.T) *Model {
	t.Helper()
	svc, err := app.New(context.Background(), nil, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	svc.SetClock(func() time.Time { return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local) })
	m := New(context.Background(), svc, theme.Dark())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// submit types text into the command box, presses enter and feeds the
// resulting message back, returning the follow-up command.
func submit(t *testing.T, m *Model, text string) tea.Cmd {
	t.Helper()
	m.input.SetValue(text)
	_, cmd := m.Update(enter)
	if cmd == nil {
		t.Fatalf("no command for %q", text)
	}
	msg, ok := cmd().(resultMsg)
	if !ok {
		t.Fatalf("unexpected message for %q", text)
	}
	_, next := m.Update(msg)
	return next
}

func TestSubmitSuccessClearsInput(t *testing.T) {
	m := newModel(t)
	submit(t, m, "add n/Alice Pauline id/S1234567A p/94351253 t/friends")

	if m.failed {
		t.Fatalf("unexpected failure: %s", m.feedback)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
	if len(m.display.Persons) != 1 {
		t.Fatalf("persons = %d", len(m.display.Persons))
	}
	view := m.View()
	for _, want := range []string{"Persons (1)", "Alice Pauline", "[friends]", "New person added"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSubmitFailureKeepsInput(t *testing.T) {
	m := newModel(t)
	submit(t, m, "delete 3")

	if !m.failed {
		t.Fatal("expected failure")
	}
	if m.input.Value() != "delete 3" {
		t.Errorf("input = %q", m.input.Value())
	}
	if !strings.Contains(m.feedback, "person index provided is invalid") {
		t.Errorf("feedback = %q", m.feedback)
	}
}

func TestEnterIgnoredWhileCommandRuns(t *testing.T) {
	m := newModel(t)
	m.input.SetValue("add n/Alice Pauline id/S1234567A p/94351253")
	_, first := m.Update(enter)
	if first == nil {
		t.Fatal("no command for the first submission")
	}

	m.input.SetValue("delete 1")
	if _, second := m.Update(enter); second != nil {
		t.Fatal("second submission ran before the first finished")
	}

	m.Update(first())
	if m.failed || len(m.display.Persons) != 1 {
		t.Fatalf("first command did not land: %s", m.feedback)
	}
	m.input.SetValue("delete 1")
	_, next := m.Update(enter)
	if next == nil {
		t.Fatal("enter still blocked after the result arrived")
	}
	m.Update(next())
	if len(m.display.Persons) != 0 {
		t.Fatalf("persons = %d", len(m.display.Persons))
	}
}

func TestDeleteAppointmentUsesShownNumbers(t *testing.T) {
	m := newModel(t)
	submit(t, m, "add n/Alice Pauline id/S1234567A p/94351253")
	submit(t, m, "addappt 1 adt/2024-05-03 09:00 note/Old")
	submit(t, m, "addappt 1 adt/2024-06-03 09:00 note/Scan")

	// An unstyled theme keeps the rendered rows free of escape codes.
	side := sideColumn(theme.Theme{}, m.display, 60, 30)
	for _, want := range []string{"1. 2024-06-03 09:00", "2. 2024-05-03 09:00"} {
		if !strings.Contains(side, want) {
			t.Errorf("side column missing %q:\n%s", want, side)
		}
	}

	submit(t, m, "deleteappt 1")
	if m.failed {
		t.Fatalf("deleteappt failed: %s", m.feedback)
	}
	if len(m.display.Upcoming) != 0 || len(m.display.Past) != 1 || m.display.Past[0].Note() != "Old" {
		t.Fatalf("wrong appointment removed: upcoming=%v past=%v", m.display.Upcoming, m.display.Past)
	}
}

func TestEmptyEnterDoesNothing(t *testing.T) {
	m := newModel(t)
	if _, cmd := m.Update(enter); cmd != nil {
		t.Fatal("expected no command")
	}
}

func TestViewShowsDetailAndAppointments(t *testing.T) {
	m := newModel(t)
	submit(t, m, "add n/Alice Pauline id/S1234567A p/94351253 b/O+")
	submit(t, m, "addappt 1 adt/2024-06-03 09:00 note/Scan")
	submit(t, m, "addappt 1 adt/2024-05-03 09:00")
	submit(t, m, "view 1")

	if m.display.Viewed == nil {
		t.Fatal("no viewed person")
	}
	view := m.View()
	for _, want := range []string{"Person", "O+", "Upcoming (1)", "Past (1)", "Scan"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newModel(t)
	submit(t, m, "help")
	if !m.showHelp {
		t.Fatal("help not shown")
	}
	if !strings.Contains(m.View(), "esc to close") {
		t.Error("help overlay not rendered")
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.showHelp {
		t.Fatal("help not closed")
	}
}

func TestThemeSwitch(t *testing.T) {
	m := newModel(t)
	submit(t, m, "theme light")
	if m.theme.Name != theme.LightName {
		t.Fatalf("theme = %q", m.theme.Name)
	}
}

func TestExitQuits(t *testing.T) {
	m := newModel(t)
	cmd := submit(t, m, "exit")
	if !m.quitting {
		t.Fatal("not quitting")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit message")
	}
	if m.View() != "" {
		t.Error("view not cleared on quit")
	}
}

func TestHistoryRecall(t *testing.T) {
	m := newModel(t)
	submit(t, m, "list")
	submit(t, m, "appointments")

	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if got := m.input.Value(); got != "appointments" {
		t.Fatalf("first recall = %q", got)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if got := m.input.Value(); got != "list" {
		t.Fatalf("second recall = %q", got)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := m.input.Value(); got != "" {
		t.Fatalf("past the end = %q", got)
	}
}

func TestScript(t *testing.T) {
	svc, err := app.New(context.Background(), nil, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	in := strings.NewReader(strings.Join([]string{
		"# seed",
		"add n/Alice Pauline id/S1234567A p/94351253",
		"",
		"delete 7",
		"list",
		"exit",
		"clear",
	}, "\n"))
	var out bytes.Buffer
	s := &Shell{Service: svc, In: in, Out: &out}

	err = s.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "1 command(s) failed") {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	for _, want := range []string{"New person added", "person index provided is invalid", "Listed all persons", "Exiting"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if svc.Summary().Persons != 1 {
		t.Error("commands after exit were run")
	}
}

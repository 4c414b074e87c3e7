package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"

	"tableflip.dev/medbook/pkg/model"
	"tableflip.dev/medbook/pkg/person"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T, base string) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func sample() model.Snapshot {
	dob, _ := person.NewDateOfBirth("1990-04-01", time.Now())
	alice := person.New(person.Fields{
		Name:           "Alice Pauline",
		IdentityNumber: "S1234567A",
		Phone:          "94351253",
		Email:          "alice@example.com",
		DateOfBirth:    dob,
		BloodType:      "AB+",
		Tags:           person.NewSet[person.Tag]("friends", "diabetic"),
		Allergies:      person.NewSet[person.Allergy]("peanut"),
		Remark:         "Prefers mornings",
	})
	benson := person.New(person.Fields{
		Name:           "Benson Meier",
		IdentityNumber: "T2345678B",
		Phone:          "98765432",
	})
	when := time.Date(2030, time.March, 1, 14, 30, 0, 0, time.Local)
	return model.Snapshot{
		Persons: []person.Person{benson, alice},
		Appointments: []person.Appointment{
			person.NewAppointment(alice.IdentityNumber(), when, "Blood test"),
			person.NewAppointment(benson.IdentityNumber(), when.Add(time.Hour), ""),
		},
	}
}

func TestLoadEmptyBook(t *testing.T) {
	p := load(t, t.TempDir())
	s, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Persons) != 0 || len(s.Appointments) != 0 {
		t.Fatalf("expected empty book, got %+v", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	base := t.TempDir()
	want := sample()
	ctx := context.Background()

	if err := load(t, base).Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := load(t, base).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got.Persons) != len(want.Persons) {
		t.Fatalf("persons = %d, want %d", len(got.Persons), len(want.Persons))
	}
	for i := range want.Persons {
		if !got.Persons[i].Equal(want.Persons[i]) {
			t.Errorf("person %d = %s, want %s", i, got.Persons[i], want.Persons[i])
		}
	}
	if len(got.Appointments) != len(want.Appointments) {
		t.Fatalf("appointments = %d", len(got.Appointments))
	}
	for i, a := range want.Appointments {
		g := got.Appointments[i]
		if g.ID() != a.ID() || g.Owner() != a.Owner() || !g.When().Equal(a.When()) || g.Note() != a.Note() {
			t.Errorf("appointment %d = %s, want %s", i, g, a)
		}
	}
}

func TestLoadRejectsCorruptData(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "book")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := map[string]string{
		"not json":       `{{{`,
		"bad identity":   `[{"name":"Alice","identityNumber":"X1","phone":"123"}]`,
		"duplicate keys": `[{"name":"A","identityNumber":"S1234567A","phone":"123"},{"name":"B","identityNumber":"S1234567A","phone":"456"}]`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if err := os.WriteFile(filepath.Join(dir, "persons"), []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := load(t, base).Load(context.Background())
			if !errors.Is(err, ErrCorrupt) {
				t.Fatalf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}

func TestThemePreference(t *testing.T) {
	p := load(t, t.TempDir())
	if name, err := p.Theme(); err != nil || name != "" {
		t.Fatalf("Theme() = %q, %v", name, err)
	}
	if err := p.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if name, _ := p.Theme(); name != "light" {
		t.Fatalf("Theme() = %q", name)
	}
}

func TestSettingsBasePathExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	s := &Settings{Path: "~/.medbook.db"}
	if got := s.BasePath(); got != filepath.Join("/home/tester", ".medbook.db") {
		t.Fatalf("BasePath() = %q", got)
	}
}

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	t.Setenv("MEDBOOK_CONFIG_PATH", t.TempDir())
	t.Setenv("MEDBOOK_PATH", "/tmp/book")
	t.Setenv("MEDBOOK_LOG_LEVEL", "debug")

	s, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if s.Path != "/tmp/book" {
		t.Errorf("path = %q", s.Path)
	}
	if s.Log.Level != "debug" || s.Log.Format != "text" {
		t.Errorf("log = %+v", s.Log)
	}
}

package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/logging"
	"tableflip.dev/medbook/pkg/store"
)

func TestInfo(t *testing.T) {
	t.Setenv(ConfigPathEnv, "/etc/medbook")
	ctx := context.Background()
	svc, err := app.New(ctx, nil, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Execute(ctx, "add n/Alice id/S1234567A p/94351253"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n := &Info{Config: &store.Settings{Path: "/tmp/book"}, Service: svc, Out: &buf}
	if err := n.Do(ctx); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"using /etc/medbook", "Config.path: /tmp/book", "Persons:", "default"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoNoService(t *testing.T) {
	n := &Info{Config: &store.Settings{Path: "/tmp/book"}, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestInfoJSON(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	svc, err := app.New(context.Background(), nil, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	n := &Info{Config: &store.Settings{Path: "/tmp/book"}, Service: svc, JSON: true, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := `{"dataPath":"/tmp/book","theme":"default","summary":{"persons":0,"appointments":0,"upcoming":0,"past":0}}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Fatalf("got %s", got)
	}
}

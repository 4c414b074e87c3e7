package store

import (
	"context"
	"testing"
	"time"
)

func TestWatchReportsForeignSaves(t *testing.T) {
	base := t.TempDir()
	mine := load(t, base)
	other := load(t, base)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the directory tree so the watcher subscribes to it.
	if err := mine.Save(ctx, sample()); err != nil {
		t.Fatalf("save: %v", err)
	}
	ch, err := mine.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if err := other.Save(ctx, sample()); err != nil {
		t.Fatalf("save from other process: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventBookChanged {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for book change event")
		}
	}
}

func TestWatchIgnoresOwnSaves(t *testing.T) {
	base := t.TempDir()
	p := load(t, base)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := p.Save(ctx, sample()); err != nil {
		t.Fatalf("save: %v", err)
	}
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := p.Save(ctx, sample()); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Type == EventBookChanged {
			t.Fatal("own save reported as a foreign change")
		}
	case <-time.After(300 * time.Millisecond):
	}
}

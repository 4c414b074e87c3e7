package shell

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/store"
	"tableflip.dev/medbook/pkg/tui/theme"
)

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

type reloadedMsg struct {
	err error
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent reacts to another process changing the stored book or
// the remembered theme.
func (m *Model) handleWatchEvent(ev store.Event) tea.Cmd {
	switch ev.Type {
	case store.EventBookChanged:
		svc, ctx := m.svc, m.ctx
		return func() tea.Msg {
			return reloadedMsg{err: svc.Reload(ctx)}
		}
	case store.EventPreferencesChanged:
		m.setTheme(theme.Resolve(m.svc.Theme(m.theme.Name)))
		m.layout()
	}
	return nil
}

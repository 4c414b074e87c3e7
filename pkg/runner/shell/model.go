// Package shell runs the interactive medbook terminal and its line-by-line
// script mode.
package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/store"
	"tableflip.dev/medbook/pkg/tui/theme"
)

const (
	welcome       = "Welcome to medbook! Type help to see every command."
	commandHeight = 3
	resultHeight  = 5
	historyLimit  = 100
)

// Model is the Bubble Tea model of the shell.
type Model struct {
	svc   *app.Service
	ctx   context.Context
	theme theme.Theme

	input   textinput.Model
	persons viewport.Model
	help    *helpOverlay

	display  app.Display
	feedback string
	failed   bool
	showHelp bool
	quitting bool
	// busy is set while a submitted command runs; Enter is ignored until its
	// result arrives so commands execute in the order they were typed.
	busy bool

	history []string
	recall  int

	width  int
	height int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds a shell over svc styled with t.
func New(ctx context.Context, svc *app.Service, t theme.Theme) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter command here..."
	ti.CharLimit = 1024
	ti.Prompt = ""
	ti.Focus()

	m := &Model{
		svc:      svc,
		ctx:      ctx,
		input:    ti,
		persons:  viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		help:     newHelpOverlay(),
		feedback: welcome,
		width:    100,
		height:   30,
	}
	m.persons.MouseWheelEnabled = true
	m.setTheme(t)
	m.refresh()
	m.layout()
	return m
}

func (m *Model) setTheme(t theme.Theme) {
	m.theme = t
	m.input.Styles.Cursor.Color = lipgloss.Color(t.Command.Cursor)
	m.input.Styles.Cursor.Shape = tea.CursorUnderline
}

// refresh copies the display state out of the service.
func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	m.display = m.svc.Display()
	m.persons.SetContent(personRows(m.theme, m.display.Persons, m.listInnerWidth()))
}

func (m *Model) listWidth() int { return m.width * 3 / 5 }

func (m *Model) listInnerWidth() int {
	return max(m.listWidth()-m.theme.Panel.Frame.GetHorizontalFrameSize(), 1)
}

func (m *Model) bodyHeight() int {
	return max(m.height-commandHeight-resultHeight, 6)
}

// layout sizes the viewports to the terminal.
func (m *Model) layout() {
	frame := m.theme.Panel.Frame
	m.persons.SetWidth(m.listInnerWidth())
	// One line of the frame body is the title.
	m.persons.SetHeight(max(m.bodyHeight()-frame.GetVerticalFrameSize()-1, 1))
	m.input.SetWidth(max(m.width-frame.GetHorizontalFrameSize()-2, 1))
	m.persons.SetContent(personRows(m.theme, m.display.Persons, m.listInnerWidth()))

	modal := m.theme.Modal.Frame
	m.help.SetSize(m.width*4/5-modal.GetHorizontalFrameSize(), m.height*4/5-modal.GetVerticalFrameSize()-1, m.theme)
}

func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

// resultMsg carries the outcome of one executed command line.
type resultMsg struct {
	text string
	res  logic.Result
	err  error
}

// execute runs text off the update loop.
func (m *Model) execute(text string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return resultMsg{text: text, err: errors.New("no record book is open")}
		}
		res, err := svc.Execute(ctx, text)
		return resultMsg{text: text, res: res, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case resultMsg:
		if cmd := m.handleResult(msg); cmd != nil {
			return m, cmd
		}
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			// Memory-only books have nothing to watch.
			return m, nil
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()

	case watchEventMsg:
		cmds = append(cmds, m.handleWatchEvent(msg.event), m.waitForWatch())
		return m, tea.Batch(cmds...)

	case watchStoppedMsg:
		m.stopWatch()
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.feedback, m.failed = "Could not reload the record book: "+msg.err.Error(), true
		} else {
			m.feedback, m.failed = "Record book changed on disk; reloaded.", false
		}
		m.refresh()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.showHelp {
			switch msg.String() {
			case "esc", "q", "enter":
				m.showHelp = false
				return m, nil
			}
			return m, m.help.Update(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.busy {
			return nil, true
		}
		m.busy = true
		m.remember(text)
		return m.execute(text), true
	case "up":
		m.recallHistory(-1)
		return nil, true
	case "down":
		m.recallHistory(1)
		return nil, true
	case "pgup", "pgdown":
		vp, cmd := m.persons.Update(msg)
		m.persons = vp
		return cmd, true
	}
	return nil, false
}

// handleResult applies a command outcome: the input is cleared only when
// the command succeeded so a mistyped command can be fixed in place.
func (m *Model) handleResult(msg resultMsg) tea.Cmd {
	m.busy = false
	if msg.err != nil {
		m.feedback, m.failed = msg.err.Error(), true
		// Storage failures still changed the book.
		m.refresh()
		return nil
	}

	m.feedback, m.failed = msg.res.Feedback, false
	m.input.SetValue("")
	if msg.res.HasTheme() {
		m.setTheme(theme.FromPath(msg.res.ThemePath))
		m.layout()
	}
	m.refresh()
	if msg.res.Help {
		m.showHelp = true
	}
	if msg.res.Exit {
		_, cmd := m.quit()
		return cmd
	}
	return nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.stopWatch()
	return m, tea.Quit
}

func (m *Model) remember(text string) {
	if n := len(m.history); n == 0 || m.history[n-1] != text {
		m.history = append(m.history, text)
		if len(m.history) > historyLimit {
			m.history = m.history[1:]
		}
	}
	m.recall = len(m.history)
}

func (m *Model) recallHistory(step int) {
	if len(m.history) == 0 {
		return
	}
	m.recall = min(max(m.recall+step, 0), len(m.history))
	if m.recall == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.recall])
	m.input.CursorEnd()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	left := panel(t, countTitle("Persons", len(m.display.Persons)), m.persons.View(), m.listWidth(), m.bodyHeight(), !m.showHelp)
	side := sideColumn(t, m.display, m.width-m.listWidth(), m.bodyHeight())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, side)

	result := feedbackBox(t, m.feedback, m.failed, m.width, resultHeight)

	inner := max(m.width-t.Panel.ActiveFrame.GetHorizontalFrameSize(), 1)
	command := t.Panel.ActiveFrame.Width(inner).Render(t.Command.Prompt.Render("> ") + m.input.View())

	screen := lipgloss.JoinVertical(lipgloss.Left, body, result, command)
	if !m.showHelp {
		return screen
	}
	modal := t.Modal.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Modal.Title.Render("Help · esc to close"),
		m.help.View(),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

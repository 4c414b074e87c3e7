package shell

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"tableflip.dev/medbook/pkg/tui/theme"
)

//go:embed help.md
var helpMarkdown string

// helpOverlay renders the command reference inside a scrollable viewport.
type helpOverlay struct {
	viewport viewport.Model
	style    string
	width    int
	height   int
	err      error
}

func newHelpOverlay() *helpOverlay {
	vp := viewport.New(viewport.WithWidth(1), viewport.WithHeight(1))
	vp.MouseWheelEnabled = true
	return &helpOverlay{viewport: vp}
}

func (h *helpOverlay) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := h.viewport.Update(msg)
	h.viewport = vp
	return cmd
}

// SetSize fits the overlay to the inner area of the modal frame and renders
// the markdown again when the wrap width or the style changed.
func (h *helpOverlay) SetSize(width, height int, t theme.Theme) {
	width, height = max(width, 20), max(height, 4)
	style := t.Name
	if style != theme.LightName {
		style = theme.DarkName
	}
	if width == h.width && height == h.height && style == h.style {
		return
	}
	h.width, h.height, h.style = width, height, style

	h.viewport.SetWidth(width)
	h.viewport.SetHeight(height)
	h.render()
}

func (h *helpOverlay) render() {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(h.style),
		glamour.WithWordWrap(max(h.width-2, 10)),
	)
	if err == nil {
		var content string
		if content, err = renderer.Render(strings.TrimSpace(helpMarkdown)); err == nil {
			h.err = nil
			h.viewport.SetContent(content)
			h.viewport.SetYOffset(0)
			return
		}
	}
	h.err = err
	h.viewport.SetContent(helpMarkdown)
}

func (h *helpOverlay) View() string {
	return h.viewport.View()
}

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/printers"
	"tableflip.dev/medbook/pkg/tui/theme"
)

// Shell runs medbook interactively. When In is not a terminal it reads one
// command per line instead and prints each result.
type Shell struct {
	Service *app.Service
	// Theme is the configured theme name. The remembered theme wins over
	// it; an empty value picks one from the terminal background.
	Theme string

	In  io.Reader
	Out io.Writer
}

func (s *Shell) in() io.Reader {
	if s.In == nil {
		return os.Stdin
	}
	return s.In
}

func (s *Shell) out() io.Writer {
	if s.Out == nil {
		return color.Output
	}
	return s.Out
}

func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *Shell) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not start shell, no record book")
	}
	if !interactive(s.in()) {
		return s.Script(ctx)
	}

	t := theme.Resolve(s.Service.Theme(s.Theme))
	p := tea.NewProgram(New(ctx, s.Service, t), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Script executes every line of In until it runs out or a command asks to
// exit. Failures are printed and do not stop the script; the returned error
// counts them.
func (s *Shell) Script(ctx context.Context) error {
	pp := &printers.PrettyPrint{Out: s.out()}
	scanner := bufio.NewScanner(s.in())
	failed := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := s.Service.Execute(ctx, line)
		if err != nil {
			failed++
			pp.Error(err)
			continue
		}
		if res.Help {
			pp.Outcome(res, s.Service.Display())
			continue
		}
		pp.Feedback(res)
		if res.Exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d command(s) failed", failed)
	}
	return nil
}

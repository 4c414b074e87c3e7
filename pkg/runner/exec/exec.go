// Package exec runs a single command line against the record book.
package exec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/printers"
)

// Exec runs Text once and prints what it did.
type Exec struct {
	Service *app.Service
	Text    string
	JSON    bool
	Out     io.Writer
}

func (e *Exec) out() io.Writer {
	if e.Out == nil {
		return color.Output
	}
	return e.Out
}

func (e *Exec) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not exec, no service")
	}

	res, err := e.Service.Execute(ctx, e.Text)
	if err != nil && res.Feedback == "" {
		return err
	}
	d := e.Service.Display()

	if e.JSON {
		b, jerr := json.Marshal(d.Outcome(res))
		if jerr != nil {
			return jerr
		}
		_, _ = fmt.Fprintln(e.out(), string(b))
		return err
	}

	pp := &printers.PrettyPrint{Out: e.out()}
	pp.Outcome(res, d)
	return err
}

// Package report prints the appointments falling inside a time window.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/person"
	"tableflip.dev/medbook/pkg/printers"
	"tableflip.dev/medbook/pkg/timeutil"
)

type Report struct {
	Service *app.Service
	// Last and Next are windows such as "3d" or "1w2d". An empty Last looks
	// back nowhere; an empty Next uses timeutil.DefaultWindow.
	Last     string
	Next     string
	Calendar bool
	JSON     bool
	Out      io.Writer
}

func (r *Report) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not report, no record book")
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}

	var (
		back  time.Duration
		label []string
	)
	if strings.TrimSpace(r.Last) != "" {
		d, l, err := timeutil.ParseWindow(r.Last)
		if err != nil {
			return err
		}
		back = d
		label = append(label, "last "+l)
	}
	ahead, l, err := timeutil.ParseWindow(r.Next)
	if err != nil {
		return err
	}
	label = append(label, "next "+l)

	res := r.Service.ReportAround(back, ahead)
	if r.JSON {
		b, err := json.Marshal(res.DTO(r.Service.Now()))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := &printers.PrettyPrint{Out: out}
	pp.Window(strings.Join(label, ", "), res)
	if !r.Calendar {
		return nil
	}
	var appts []person.Appointment
	for _, s := range res.Sections {
		appts = append(appts, s.Appointments...)
	}
	for month := res.Since; !month.After(res.Until); month = printers.NextMonth(month) {
		pp.Calendar(month, appts...)
	}
	return nil
}

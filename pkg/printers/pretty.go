// Package printers renders record book views for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/person"
)

// PrettyPrint writes coloured tables to Out.
type PrettyPrint struct {
	Out io.Writer
	// Width wraps long free text; zero means 80.
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Feedback prints the result message of a command.
func (pp *PrettyPrint) Feedback(res logic.Result) {
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(res.Feedback, pp.width()))
}

// Error prints a failure in red.
func (pp *PrettyPrint) Error(err error) {
	r := color.New(color.FgRed)
	_, _ = r.Fprintln(pp.out(), wordwrap.String(err.Error(), pp.width()))
}

// Persons prints the indexed person list as shown to the user.
func (pp *PrettyPrint) Persons(persons ...person.Person) {
	pp.TitleWithCount("Persons", len(persons), "person")
	if len(persons) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	tag := color.New(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Name"), bold.Sprint("Identity"), bold.Sprint("Phone"), bold.Sprint("Tags"))
	for i, p := range persons {
		tags := make([]string, 0, len(p.Tags()))
		for _, t := range p.Tags() {
			tags = append(tags, t.String())
		}
		tbl.AddRow(faint.Sprintf("%d.", i+1), p.Name(), p.IdentityNumber(), p.Phone(), tag.Sprint(strings.Join(tags, " ")))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Person prints every field of p, skipping unset ones.
func (pp *PrettyPrint) Person(p person.Person) {
	pp.Title(p.Name().String())

	label := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = uint(pp.width())

	row := func(name string, v fmt.Stringer) {
		if s := v.String(); s != "" {
			tbl.AddRow(label.Sprint(name), s)
		}
	}
	row("Identity Number", p.IdentityNumber())
	row("Phone", p.Phone())
	row("Email", p.Email())
	row("Address", p.Address())
	row("Date of Birth", p.DateOfBirth())
	row("Gender", p.Gender())
	row("Blood Type", p.BloodType())
	row("Emergency Contact", p.EmergencyContact())
	row("Smoking", p.SmokingRecord())
	row("Alcohol", p.AlcoholicRecord())
	row("Medical History", p.PastMedicalHistory())
	row("Tags", joined(p.Tags()))
	row("Allergies", joined(p.Allergies()))
	row("Medicines", joined(p.Medicines()))
	row("Remark", p.Remark())
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

type joinedValues string

func (j joinedValues) String() string { return string(j) }

func joined[T fmt.Stringer](vs []T) joinedValues {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return joinedValues(strings.Join(parts, ", "))
}

// Appointments prints an indexed appointment list. names resolves owners to
// display names; unknown owners fall back to the identity number.
func (pp *PrettyPrint) Appointments(title string, names map[person.IdentityNumber]person.Name, appts ...person.Appointment) {
	pp.AppointmentsFrom(title, names, 1, appts...)
}

// AppointmentsFrom is Appointments numbering the rows from first.
func (pp *PrettyPrint) AppointmentsFrom(title string, names map[person.IdentityNumber]person.Name, first int, appts ...person.Appointment) {
	pp.TitleWithCount(title, len(appts), "appointment")
	if len(appts) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	when := color.New(color.FgHiYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("When"), bold.Sprint("Person"), bold.Sprint("Note"))
	for i, a := range appts {
		who := a.Owner().String()
		if n, ok := names[a.Owner()]; ok {
			who = n.String()
		}
		tbl.AddRow(faint.Sprintf("%d.", first+i), when.Sprint(a.When().Format(person.AppointmentLayout)), who, a.Note())
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Names indexes persons by identity number for Appointments.
func Names(persons []person.Person) map[person.IdentityNumber]person.Name {
	out := make(map[person.IdentityNumber]person.Name, len(persons))
	for _, p := range persons {
		out[p.IdentityNumber()] = p.Name()
	}
	return out
}

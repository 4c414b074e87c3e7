package printers

import (
	"fmt"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/person"
)

// Outcome prints a command's feedback followed by the lists it affects. A
// view result shows the viewed person and their appointments, help prints
// the verb summary, and everything else shows the filtered lists. Past
// appointments continue the numbering of the upcoming ones.
func (pp *PrettyPrint) Outcome(res logic.Result, d app.Display) {
	pp.Feedback(res)
	pp.NewLine()

	switch {
	case res.Exit || res.HasTheme():
		return
	case res.Help:
		pp.Title("Commands")
		_, _ = fmt.Fprintln(pp.out(), logic.HelpMessage)
		pp.NewLine()
	case res.View && d.Viewed != nil:
		pp.Person(*d.Viewed)
		pp.NewLine()
		pp.appointmentPanes(d)
	default:
		pp.Persons(d.Persons...)
		pp.appointmentPanes(d)
	}
}

func (pp *PrettyPrint) appointmentPanes(d app.Display) {
	pp.AppointmentsFrom("Upcoming", d.Names, 1, d.Upcoming...)
	pp.AppointmentsFrom("Past", d.Names, len(d.Upcoming)+1, d.Past...)
}

// Window prints a report window grouped by person.
func (pp *PrettyPrint) Window(label string, r app.ReportResult) {
	pp.Title(fmt.Sprintf("Appointments · %s (%s → %s)", label,
		r.Since.Local().Format(person.AppointmentLayout),
		r.Until.Local().Format(person.AppointmentLayout)))
	if r.Total == 0 {
		pp.none()
		return
	}
	pp.NewLine()
	for _, s := range r.Sections {
		names := map[person.IdentityNumber]person.Name{s.Person.IdentityNumber(): s.Person.Name()}
		pp.Appointments(s.Person.Name().String(), names, s.Appointments...)
	}
}

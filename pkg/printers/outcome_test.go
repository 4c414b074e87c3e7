package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/person"
)

func TestOutcome(t *testing.T) {
	when := time.Date(2024, time.March, 1, 14, 30, 0, 0, time.Local)
	d := app.Display{
		Persons:  []person.Person{alice},
		Upcoming: []person.Appointment{person.NewAppointment(alice.IdentityNumber(), when, "Scan")},
		Names:    Names([]person.Person{alice}),
	}

	tests := map[string]struct {
		res     logic.Result
		display app.Display
		want    []string
		notWant []string
	}{
		"list": {
			res:     logic.Result{Feedback: "Listed all persons"},
			display: d,
			want:    []string{"Listed all persons", "Persons - 1 person", "Upcoming - 1 appointment", "Scan"},
		},
		"view": {
			res:     logic.Result{Feedback: "Viewing Person: Alice Pauline", View: true},
			display: app.Display{Viewed: &alice, Upcoming: d.Upcoming, Names: d.Names},
			want:    []string{"alice@example.com", "Upcoming", "Past - 0 appointments"},
			notWant: []string{"Persons -"},
		},
		"help": {
			res:     logic.Result{Feedback: "Opened help window.", Help: true},
			display: d,
			want:    []string{"Commands", "addappt INDEX"},
			notWant: []string{"Persons -"},
		},
		"exit": {
			res:     logic.Result{Feedback: "bye", Exit: true},
			display: d,
			want:    []string{"bye"},
			notWant: []string{"Persons -"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			(&PrettyPrint{Out: &buf}).Outcome(tc.res, tc.display)
			out := buf.String()
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output has %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestWindowEmpty(t *testing.T) {
	var buf bytes.Buffer
	since := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	(&PrettyPrint{Out: &buf}).Window("next 1w", app.ReportResult{Since: since, Until: since.AddDate(0, 0, 7)})
	if !strings.Contains(buf.String(), "next 1w") || !strings.Contains(buf.String(), "none") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestOutcomeNumbersPastAfterUpcoming(t *testing.T) {
	soon := time.Date(2024, time.March, 2, 9, 0, 0, 0, time.Local)
	d := app.Display{
		Upcoming: []person.Appointment{person.NewAppointment(alice.IdentityNumber(), soon, "Scan")},
		Past:     []person.Appointment{person.NewAppointment(alice.IdentityNumber(), soon.AddDate(0, 0, -7), "Bloods")},
		Names:    Names([]person.Person{alice}),
	}
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Outcome(logic.Result{Feedback: "Listed all appointments"}, d)

	out := buf.String()
	past := out[strings.Index(out, "Past"):]
	if !strings.Contains(past, "2.") || strings.Contains(past, "1.") {
		t.Fatalf("past rows should continue from 2:\n%s", past)
	}
}

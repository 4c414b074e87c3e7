package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/person"
)

func init() {
	color.NoColor = true
}

var alice = person.New(person.Fields{
	Name:           "Alice Pauline",
	IdentityNumber: "S1234567A",
	Phone:          "94351253",
	Email:          "alice@example.com",
	Tags:           person.NewSet[person.Tag]("friends"),
	Allergies:      person.NewSet[person.Allergy]("peanut", "dust"),
})

func TestPersons(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Persons(alice)

	out := buf.String()
	for _, want := range []string{"Persons - 1 person\n", "1.", "Alice Pauline", "S1234567A", "[friends]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPersonsEmpty(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Persons()
	if !strings.Contains(buf.String(), "0 persons") || !strings.Contains(buf.String(), "none") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestPersonSkipsUnsetFields(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Person(alice)

	out := buf.String()
	if !strings.Contains(out, "dust, peanut") {
		t.Errorf("allergies not joined in order:\n%s", out)
	}
	if strings.Contains(out, "Blood Type") {
		t.Errorf("unset field printed:\n%s", out)
	}
}

func TestAppointmentsUsesNames(t *testing.T) {
	when := time.Date(2024, time.March, 1, 14, 30, 0, 0, time.Local)
	appts := []person.Appointment{
		person.NewAppointment(alice.IdentityNumber(), when, "Blood test"),
		person.NewAppointment("T7654321Z", when, ""),
	}

	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Appointments("Upcoming", Names([]person.Person{alice}), appts...)

	out := buf.String()
	for _, want := range []string{"Upcoming - 2 appointments", "2024-03-01 14:30", "Alice Pauline", "Blood test", "T7654321Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFeedbackWraps(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf, Width: 10}).Feedback(logic.Result{Feedback: "one two three four"})
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len(line) > 10 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
}

func TestCountByDay(t *testing.T) {
	march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	appts := []person.Appointment{
		person.NewAppointment("S1234567A", time.Date(2024, time.March, 5, 9, 0, 0, 0, time.Local), ""),
		person.NewAppointment("S1234567A", time.Date(2024, time.March, 5, 15, 0, 0, 0, time.Local), ""),
		person.NewAppointment("S1234567A", time.Date(2024, time.April, 5, 9, 0, 0, 0, time.Local), ""),
	}
	count := CountByDay(march, appts...)
	if len(count) != 31 {
		t.Fatalf("days = %d", len(count))
	}
	if count[4] != 2 {
		t.Fatalf("march 5 = %d", count[4])
	}
	total := 0
	for _, c := range count {
		total += c
	}
	if total != 2 {
		t.Fatalf("total = %d", total)
	}
}

func TestDaysIn(t *testing.T) {
	tests := map[time.Month]int{time.February: 29, time.April: 30, time.December: 31}
	for m, want := range tests {
		if got := DaysIn(time.Date(2024, m, 10, 0, 0, 0, 0, time.Local)); got != want {
			t.Errorf("%s: %d, want %d", m, got, want)
		}
	}
}

package app

import (
	"sort"
	"time"

	"tableflip.dev/medbook/pkg/model"
	"tableflip.dev/medbook/pkg/person"
)

// ReportSection groups the appointments of one person.
type ReportSection struct {
	Person       person.Person
	Appointments []person.Appointment
}

// ReportResult lists appointments inside a time window, per person.
type ReportResult struct {
	Since    time.Time
	Until    time.Time
	Sections []ReportSection
	Total    int
}

// Report returns every appointment between since and until inclusive,
// grouped by person in book order and sorted by time within each person.
func (s *Service) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}
	var res ReportResult
	s.Read(func(m *model.Model) {
		res = report(m, since, until)
	})
	return res
}

func report(m *model.Model, since, until time.Time) ReportResult {
	grouped := make(map[person.IdentityNumber][]person.Appointment)
	total := 0
	for _, a := range m.Appointments() {
		if a.When().Before(since) || a.When().After(until) {
			continue
		}
		grouped[a.Owner()] = append(grouped[a.Owner()], a)
		total++
	}

	res := ReportResult{Since: since, Until: until, Total: total}
	for _, p := range m.Persons() {
		appts, ok := grouped[p.IdentityNumber()]
		if !ok {
			continue
		}
		sort.SliceStable(appts, func(i, j int) bool {
			return appts[i].When().Before(appts[j].When())
		})
		res.Sections = append(res.Sections, ReportSection{Person: p, Appointments: appts})
	}
	return res
}

// Summary counts what is in the book.
type Summary struct {
	Persons      int `json:"persons"`
	Appointments int `json:"appointments"`
	Upcoming     int `json:"upcoming"`
	Past         int `json:"past"`
}

// Summary returns the current counts. Upcoming and past cover the whole book
// regardless of the current view.
func (s *Service) Summary() Summary {
	var sum Summary
	s.Read(func(m *model.Model) {
		now := m.Now()
		sum.Persons = len(m.Persons())
		for _, a := range m.Appointments() {
			sum.Appointments++
			if a.IsUpcoming(now) {
				sum.Upcoming++
			} else {
				sum.Past++
			}
		}
	})
	return sum
}

// ReportAround reports from past before now until ahead after now, using
// the book's clock.
func (s *Service) ReportAround(past, ahead time.Duration) ReportResult {
	now := s.Now()
	return s.Report(now.Add(-past), now.Add(ahead))
}

// ReportSectionDTO lists one person's appointments inside a report window.
type ReportSectionDTO struct {
	Person       string           `json:"person"`
	Identity     string           `json:"identityNumber"`
	Appointments []AppointmentDTO `json:"appointments"`
}

// ReportDTO is the transport form of a ReportResult.
type ReportDTO struct {
	Since    string             `json:"since"`
	Until    string             `json:"until"`
	Total    int                `json:"total"`
	Sections []ReportSectionDTO `json:"sections"`
}

// DTO projects r. Appointments are flagged upcoming relative to now.
func (r ReportResult) DTO(now time.Time) ReportDTO {
	out := ReportDTO{
		Since:    r.Since.Format(person.AppointmentLayout),
		Until:    r.Until.Format(person.AppointmentLayout),
		Total:    r.Total,
		Sections: []ReportSectionDTO{},
	}
	for _, sec := range r.Sections {
		d := Display{Names: map[person.IdentityNumber]person.Name{sec.Person.IdentityNumber(): sec.Person.Name()}}
		for _, a := range sec.Appointments {
			if a.IsUpcoming(now) {
				d.Upcoming = append(d.Upcoming, a)
			}
		}
		out.Sections = append(out.Sections, ReportSectionDTO{
			Person:       sec.Person.Name().String(),
			Identity:     sec.Person.IdentityNumber().String(),
			Appointments: d.AppointmentDTOs(sec.Appointments),
		})
	}
	return out
}

// Now is the book's notion of the current time.
func (s *Service) Now() time.Time {
	var now time.Time
	s.Read(func(m *model.Model) { now = m.Now() })
	return now
}

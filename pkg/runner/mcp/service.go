// Package mcp provides the Model Context Protocol server integration for medbook.
package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/model"
	"tableflip.dev/medbook/pkg/person"
	"tableflip.dev/medbook/pkg/timeutil"
)

// Service adapts the record book to the read and command shapes the MCP
// server exposes. Reads go straight to the master lists so they never
// disturb the filter a shell user is looking at.
type Service struct {
	App *app.Service
}

// ErrPersonNotFound is returned when no person has the requested identity number.
var ErrPersonNotFound = errors.New("person not found")

// AppointmentScope selects which appointments ListAppointments returns.
type AppointmentScope string

const (
	ScopeAll      AppointmentScope = "all"
	ScopeUpcoming AppointmentScope = "upcoming"
	ScopePast     AppointmentScope = "past"
)

// PersonDetail is a person with their appointments.
type PersonDetail struct {
	Person       app.PersonDTO        `json:"person"`
	Appointments []app.AppointmentDTO `json:"appointments"`
}

// NewService builds a service wrapper around a.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) ready() error {
	if s.App == nil {
		return errors.New("record book is not configured")
	}
	return nil
}

// Execute runs one command line and returns the result with the lists it
// left displayed.
func (s *Service) Execute(ctx context.Context, command string) (app.Outcome, error) {
	if err := s.ready(); err != nil {
		return app.Outcome{}, err
	}
	res, err := s.App.Execute(ctx, command)
	if err != nil && res.Feedback == "" {
		return app.Outcome{}, err
	}
	return s.App.Display().Outcome(res), err
}

// ListPersons returns every person in book order, or only those whose name
// contains one of the words in query.
func (s *Service) ListPersons(ctx context.Context, query string) ([]app.PersonDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var out []person.Person
	s.App.Read(func(m *model.Model) {
		out = m.Persons()
		if words := strings.Fields(query); len(words) > 0 {
			keep := model.NameContainsKeywords(words)
			matched := out[:0:0]
			for _, p := range out {
				if keep(p) {
					matched = append(matched, p)
				}
			}
			out = matched
		}
	})
	return app.PersonDTOs(out), nil
}

// ListAppointments returns the appointments in scope, in book order.
func (s *Service) ListAppointments(ctx context.Context, scope AppointmentScope) ([]app.AppointmentDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if scope == "" {
		scope = ScopeAll
	}
	var (
		d   app.Display
		err error
	)
	s.App.Read(func(m *model.Model) {
		d, err = master(m, scope)
	})
	if err != nil {
		return nil, err
	}
	return d.AppointmentDTOs(d.Appointments), nil
}

func master(m *model.Model, scope AppointmentScope) (app.Display, error) {
	now := m.Now()
	d := app.Display{Names: make(map[person.IdentityNumber]person.Name)}
	for _, p := range m.Persons() {
		d.Names[p.IdentityNumber()] = p.Name()
	}
	for _, a := range m.Appointments() {
		upcoming := a.IsUpcoming(now)
		if upcoming {
			d.Upcoming = append(d.Upcoming, a)
		}
		switch scope {
		case ScopeAll:
		case ScopeUpcoming:
			if !upcoming {
				continue
			}
		case ScopePast:
			if upcoming {
				continue
			}
		default:
			return app.Display{}, errors.New("unknown appointment scope " + string(scope))
		}
		d.Appointments = append(d.Appointments, a)
	}
	return d, nil
}

// PersonByIdentity looks up a person and their appointments.
func (s *Service) PersonByIdentity(ctx context.Context, id string) (PersonDetail, error) {
	if err := s.ready(); err != nil {
		return PersonDetail{}, err
	}
	key := person.IdentityNumber(strings.ToUpper(strings.TrimSpace(id)))

	var (
		detail PersonDetail
		found  bool
	)
	s.App.Read(func(m *model.Model) {
		p, ok := m.PersonByIdentity(key)
		if !ok {
			return
		}
		found = true
		d, _ := master(m, ScopeAll)
		var own []person.Appointment
		for _, a := range d.Appointments {
			if a.BelongsTo(p) {
				own = append(own, a)
			}
		}
		detail = PersonDetail{
			Person:       app.ToPersonDTO(0, p),
			Appointments: d.AppointmentDTOs(own),
		}
	})
	if !found {
		return PersonDetail{}, ErrPersonNotFound
	}
	return detail, nil
}

// Report lists appointments from last before now until next after now.
// An empty last looks back nowhere; an empty next looks one week ahead.
func (s *Service) Report(ctx context.Context, last, next string) (app.ReportDTO, error) {
	if err := s.ready(); err != nil {
		return app.ReportDTO{}, err
	}
	var back time.Duration
	if strings.TrimSpace(last) != "" {
		d, _, err := timeutil.ParseWindow(last)
		if err != nil {
			return app.ReportDTO{}, err
		}
		back = d
	}
	ahead, _, err := timeutil.ParseWindow(next)
	if err != nil {
		return app.ReportDTO{}, err
	}
	return s.App.ReportAround(back, ahead).DTO(s.App.Now()), nil
}

// Summary returns the book's counts.
func (s *Service) Summary(ctx context.Context) (app.Summary, error) {
	if err := s.ready(); err != nil {
		return app.Summary{}, err
	}
	return s.App.Summary(), nil
}

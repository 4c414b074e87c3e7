// Package model owns the master person and appointment collections and the
// filtered views derived from them.
package model

import (
	"errors"
	"time"

	"tableflip.dev/medbook/pkg/person"
)

var (
	// ErrDuplicatePerson is returned when an insert or replace would leave two
	// persons with the same identity number.
	ErrDuplicatePerson = errors.New("model: duplicate person")
	// ErrPersonNotFound is returned when the target person is not in the book.
	ErrPersonNotFound = errors.New("model: person not found")
	// ErrAppointmentNotFound is returned when the target appointment is not in the book.
	ErrAppointmentNotFound = errors.New("model: appointment not found")
	// ErrUnknownOwner is returned when an appointment references no person.
	ErrUnknownOwner = errors.New("model: appointment owner not found")
)

// ShowAllPersons keeps every person.
func ShowAllPersons(person.Person) bool { return true }

// ShowAllAppointments keeps every appointment.
func ShowAllAppointments(person.Appointment) bool { return true }

// Model is the in-memory record book. It is not safe for concurrent use;
// callers process one command at a time.
type Model struct {
	persons      []person.Person
	appointments []person.Appointment

	filteredPersons      *FilteredList[person.Person]
	filteredAppointments *FilteredList[person.Appointment]

	viewed *person.IdentityNumber
	now    func() time.Time
}

// New returns an empty Model.
func New() *Model {
	m := &Model{now: time.Now}
	m.filteredPersons = newFilteredList(func() []person.Person { return m.persons })
	m.filteredAppointments = newFilteredList(func() []person.Appointment { return m.appointments })
	return m
}

// FromSnapshot returns a Model holding the snapshot contents. Duplicate
// persons and orphaned appointments are rejected.
func FromSnapshot(s Snapshot) (*Model, error) {
	m := New()
	for _, p := range s.Persons {
		if err := m.AddPerson(p); err != nil {
			return nil, err
		}
	}
	for _, a := range s.Appointments {
		if err := m.AddAppointment(a); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Snapshot is the ordered content of a Model.
type Snapshot struct {
	Persons      []person.Person
	Appointments []person.Appointment
}

// Snapshot copies the master collections.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Persons:      m.Persons(),
		Appointments: m.Appointments(),
	}
}

// SetClock overrides the source of "now" used to partition appointments.
func (m *Model) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	m.now = now
}

// Now returns the model's current instant.
func (m *Model) Now() time.Time { return m.now() }

// Persons returns a copy of the master person collection.
func (m *Model) Persons() []person.Person {
	return append([]person.Person(nil), m.persons...)
}

// Appointments returns a copy of the master appointment collection.
func (m *Model) Appointments() []person.Appointment {
	return append([]person.Appointment(nil), m.appointments...)
}

// HasPerson reports whether a person with the same identity number exists.
func (m *Model) HasPerson(p person.Person) bool {
	return m.indexOfIdentity(p.IdentityNumber()) >= 0
}

// PersonByIdentity looks up a person by natural key.
func (m *Model) PersonByIdentity(id person.IdentityNumber) (person.Person, bool) {
	if i := m.indexOfIdentity(id); i >= 0 {
		return m.persons[i], true
	}
	return person.Person{}, false
}

func (m *Model) indexOfIdentity(id person.IdentityNumber) int {
	for i, p := range m.persons {
		if p.IdentityNumber() == id {
			return i
		}
	}
	return -1
}

// AddPerson appends p. It fails if p duplicates an existing identity number.
func (m *Model) AddPerson(p person.Person) error {
	if m.HasPerson(p) {
		return ErrDuplicatePerson
	}
	m.persons = append(m.persons, p)
	m.refreshPersons()
	return nil
}

// RemovePerson removes p together with its appointments.
func (m *Model) RemovePerson(p person.Person) error {
	i := m.indexOfIdentity(p.IdentityNumber())
	if i < 0 {
		return ErrPersonNotFound
	}
	m.persons = append(m.persons[:i:i], m.persons[i+1:]...)

	kept := m.appointments[:0:0]
	for _, a := range m.appointments {
		if !a.BelongsTo(p) {
			kept = append(kept, a)
		}
	}
	m.appointments = kept
	m.refreshPersons()
	if m.viewed != nil && *m.viewed == p.IdentityNumber() {
		m.ClearViewedPerson()
		return nil
	}
	m.refreshAppointments()
	return nil
}

// ReplacePerson swaps target for edited at the same position. It fails if
// edited's identity number belongs to a person other than target. When the
// identity number changes, appointments follow the person.
func (m *Model) ReplacePerson(target, edited person.Person) error {
	i := m.indexOfIdentity(target.IdentityNumber())
	if i < 0 {
		return ErrPersonNotFound
	}
	if !target.SameIdentity(edited) && m.HasPerson(edited) {
		return ErrDuplicatePerson
	}
	m.persons = append([]person.Person(nil), m.persons...)
	m.persons[i] = edited

	if oldID, newID := target.IdentityNumber(), edited.IdentityNumber(); oldID != newID {
		appts := make([]person.Appointment, len(m.appointments))
		for j, a := range m.appointments {
			if a.Owner() == oldID {
				a = a.WithOwner(newID)
			}
			appts[j] = a
		}
		m.appointments = appts
		if m.viewed != nil && *m.viewed == oldID {
			m.viewed = &newID
			m.filteredAppointments.SetPredicate(AppointmentsOf(newID))
		} else {
			m.refreshAppointments()
		}
	}
	m.refreshPersons()
	return nil
}

// AddAppointment appends a. Its owner must be in the book.
func (m *Model) AddAppointment(a person.Appointment) error {
	if m.indexOfIdentity(a.Owner()) < 0 {
		return ErrUnknownOwner
	}
	m.appointments = append(m.appointments, a)
	m.refreshAppointments()
	return nil
}

// RemoveAppointment removes the appointment with a's identifier.
func (m *Model) RemoveAppointment(a person.Appointment) error {
	for i, it := range m.appointments {
		if it.ID() == a.ID() {
			m.appointments = append(m.appointments[:i:i], m.appointments[i+1:]...)
			m.refreshAppointments()
			return nil
		}
	}
	return ErrAppointmentNotFound
}

// Clear empties both master collections.
func (m *Model) Clear() {
	m.persons = nil
	m.appointments = nil
	m.refreshPersons()
	m.ClearViewedPerson()
}

// FilteredPersons is the person view shown to the user.
func (m *Model) FilteredPersons() *FilteredList[person.Person] { return m.filteredPersons }

// FilteredAppointments is the appointment view shown to the user.
func (m *Model) FilteredAppointments() *FilteredList[person.Appointment] {
	return m.filteredAppointments
}

// UpdateFilteredPersonList sets the person view predicate.
func (m *Model) UpdateFilteredPersonList(p Predicate[person.Person]) {
	m.filteredPersons.SetPredicate(p)
}

// UpdateFilteredAppointmentList sets the appointment view predicate.
func (m *Model) UpdateFilteredAppointmentList(p Predicate[person.Appointment]) {
	m.filteredAppointments.SetPredicate(p)
}

// SetViewedPerson narrows the appointment view to p's appointments.
func (m *Model) SetViewedPerson(p person.Person) error {
	id := p.IdentityNumber()
	if m.indexOfIdentity(id) < 0 {
		return ErrPersonNotFound
	}
	m.viewed = &id
	m.filteredAppointments.SetPredicate(AppointmentsOf(id))
	return nil
}

// ClearViewedPerson widens the appointment view back to every appointment.
func (m *Model) ClearViewedPerson() {
	m.viewed = nil
	m.filteredAppointments.SetPredicate(ShowAllAppointments)
}

// ViewedPerson returns the person the partitions are scoped to, if any.
func (m *Model) ViewedPerson() (person.Person, bool) {
	if m.viewed == nil {
		return person.Person{}, false
	}
	return m.PersonByIdentity(*m.viewed)
}

// UpcomingAppointments returns the visible appointments strictly after now,
// evaluated at call time.
func (m *Model) UpcomingAppointments() []person.Appointment {
	up, _ := m.partition()
	return up
}

// PastAppointments returns the visible appointments at or before now,
// evaluated at call time.
func (m *Model) PastAppointments() []person.Appointment {
	_, past := m.partition()
	return past
}

// DisplayedAppointments is the appointment view in the order it is shown and
// numbered: upcoming first, then past. Appointment indices refer to it.
func (m *Model) DisplayedAppointments() []person.Appointment {
	up, past := m.partition()
	return append(up, past...)
}

func (m *Model) partition() (upcoming, past []person.Appointment) {
	now := m.now()
	for _, a := range m.filteredAppointments.Items() {
		if a.IsUpcoming(now) {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}
	return upcoming, past
}

func (m *Model) refreshPersons()      { m.filteredPersons.Refresh() }
func (m *Model) refreshAppointments() { m.filteredAppointments.Refresh() }

package person

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentLayout is the accepted appointment date-time format.
const AppointmentLayout = "2006-01-02 15:04"

const (
	AppointmentTimeConstraints = "Appointment date-times should be of the format YYYY-MM-DD HH:MM"
	AppointmentNoteConstraints = "Appointment notes can take any values, and it should not be blank"
)

// NewAppointmentTime parses raw in the local time zone.
func NewAppointmentTime(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(AppointmentLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, invalid(AppointmentTimeConstraints)
	}
	return t, nil
}

// NewAppointmentNote accepts anything that is not blank.
func NewAppointmentNote(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", invalid(AppointmentNoteConstraints)
	}
	return raw, nil
}

// Appointment links a Person, by identity number, to a point in time.
// Whether it is upcoming or past is derived at query time, never stored.
type Appointment struct {
	id    uuid.UUID
	owner IdentityNumber
	when  time.Time
	note  string
}

// NewAppointment creates an appointment with a fresh identifier.
func NewAppointment(owner IdentityNumber, when time.Time, note string) Appointment {
	return RestoreAppointment(uuid.New(), owner, when, note)
}

// RestoreAppointment rebuilds an appointment read back from storage.
func RestoreAppointment(id uuid.UUID, owner IdentityNumber, when time.Time, note string) Appointment {
	return Appointment{id: id, owner: owner, when: when, note: note}
}

func (a Appointment) ID() uuid.UUID                 { return a.id }
func (a Appointment) Owner() IdentityNumber         { return a.owner }
func (a Appointment) When() time.Time               { return a.when }
func (a Appointment) Note() string                  { return a.note }
func (a Appointment) BelongsTo(p Person) bool       { return a.owner == p.IdentityNumber() }
func (a Appointment) IsUpcoming(now time.Time) bool { return a.when.After(now) }

// WithOwner returns a copy re-linked to owner.
func (a Appointment) WithOwner(owner IdentityNumber) Appointment {
	a.owner = owner
	return a
}

func (a Appointment) String() string {
	s := a.when.Format(AppointmentLayout) + " (" + string(a.owner) + ")"
	if a.note != "" {
		s += " " + a.note
	}
	return s
}

package logic

import (
	"time"

	"tableflip.dev/medbook/pkg/model"
	"tableflip.dev/medbook/pkg/person"
)

const (
	AddAppointmentWord    = "addappt"
	DeleteAppointmentWord = "deleteappt"
	AppointmentsWord      = "appointments"
)

// AddAppointment books an appointment for the person at Index.
type AddAppointment struct {
	Index Index
	When  time.Time
	Note  string
}

func (AddAppointment) Mutates() bool { return true }

func (c AddAppointment) Execute(m *model.Model) (Result, error) {
	owner, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	appt := person.NewAppointment(owner.IdentityNumber(), c.When, c.Note)
	if err := m.AddAppointment(appt); err != nil {
		return Result{}, err
	}
	return Feedback("New appointment added for %s: %s", owner.Name(), appt.When().Format(person.AppointmentLayout)), nil
}

// DeleteAppointment cancels the appointment at Index of the displayed
// appointments, numbered upcoming first and then past.
type DeleteAppointment struct {
	Index Index
}

func (DeleteAppointment) Mutates() bool { return true }

func (c DeleteAppointment) Execute(m *model.Model) (Result, error) {
	shown := m.DisplayedAppointments()
	if c.Index < 0 || int(c.Index) >= len(shown) {
		return Result{}, fail(ErrInvalidAppointmentIndex)
	}
	appt := shown[c.Index]
	if err := m.RemoveAppointment(appt); err != nil {
		return Result{}, err
	}
	return Feedback("Deleted Appointment: %s", appt), nil
}

// Appointments resets the appointment view so the upcoming and past
// partitions cover every appointment.
type Appointments struct{}

func (Appointments) Mutates() bool { return false }

func (Appointments) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredAppointmentList(model.ShowAllAppointments)
	m.ClearViewedPerson()
	return Feedback("Listed all appointments"), nil
}

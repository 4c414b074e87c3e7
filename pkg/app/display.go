package app

import (
	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/model"
	"tableflip.dev/medbook/pkg/person"
)

// Display is a copy of everything a surface shows after a command: the
// filtered person list, the filtered appointment list split around now, and
// the viewed person if any. Appointments is Upcoming followed by Past, the
// order appointment indices refer to.
type Display struct {
	Persons      []person.Person
	Appointments []person.Appointment
	Upcoming     []person.Appointment
	Past         []person.Appointment
	Viewed       *person.Person
	Names        map[person.IdentityNumber]person.Name
}

// Display captures the current display state.
func (s *Service) Display() Display {
	var d Display
	s.Read(func(m *model.Model) {
		d = Display{
			Persons:      m.FilteredPersons().Items(),
			Appointments: m.DisplayedAppointments(),
			Names:        make(map[person.IdentityNumber]person.Name),
		}
		for _, a := range d.Appointments {
			if a.IsUpcoming(m.Now()) {
				d.Upcoming = append(d.Upcoming, a)
			} else {
				d.Past = append(d.Past, a)
			}
		}
		for _, p := range m.Persons() {
			d.Names[p.IdentityNumber()] = p.Name()
		}
		if p, ok := m.ViewedPerson(); ok {
			d.Viewed = &p
		}
	})
	return d
}

// PersonDTO is a transport-friendly projection of a person.
type PersonDTO struct {
	Index              int      `json:"index,omitempty"`
	Name               string   `json:"name"`
	IdentityNumber     string   `json:"identityNumber"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email,omitempty"`
	Address            string   `json:"address,omitempty"`
	DateOfBirth        string   `json:"dateOfBirth,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	BloodType          string   `json:"bloodType,omitempty"`
	EmergencyContact   string   `json:"emergencyContact,omitempty"`
	SmokingRecord      string   `json:"smokingRecord,omitempty"`
	AlcoholicRecord    string   `json:"alcoholicRecord,omitempty"`
	PastMedicalHistory string   `json:"pastMedicalHistory,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	Medicines          []string `json:"medicines,omitempty"`
	Remark             string   `json:"remark,omitempty"`
}

// AppointmentDTO is a transport-friendly projection of an appointment.
type AppointmentDTO struct {
	Index    int    `json:"index,omitempty"`
	ID       string `json:"id"`
	Owner    string `json:"owner"`
	Name     string `json:"name,omitempty"`
	When     string `json:"when"`
	Note     string `json:"note,omitempty"`
	Upcoming bool   `json:"upcoming"`
}

func values[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// ToPersonDTO projects p. index is one-based; zero omits it.
func ToPersonDTO(index int, p person.Person) PersonDTO {
	return PersonDTO{
		Index:              index,
		Name:               p.Name().String(),
		IdentityNumber:     p.IdentityNumber().String(),
		Phone:              p.Phone().String(),
		Email:              p.Email().String(),
		Address:            p.Address().String(),
		DateOfBirth:        p.DateOfBirth().String(),
		Gender:             p.Gender().String(),
		BloodType:          p.BloodType().String(),
		EmergencyContact:   p.EmergencyContact().String(),
		SmokingRecord:      p.SmokingRecord().String(),
		AlcoholicRecord:    p.AlcoholicRecord().String(),
		PastMedicalHistory: p.PastMedicalHistory().String(),
		Tags:               values(p.Tags()),
		Allergies:          values(p.Allergies()),
		Medicines:          values(p.Medicines()),
		Remark:             p.Remark().String(),
	}
}

// PersonDTOs projects an indexed list.
func PersonDTOs(ps []person.Person) []PersonDTO {
	out := make([]PersonDTO, len(ps))
	for i, p := range ps {
		out[i] = ToPersonDTO(i+1, p)
	}
	return out
}

// AppointmentDTOs projects an indexed list. Upcoming is judged against the
// Display's split.
func (d Display) AppointmentDTOs(appts []person.Appointment) []AppointmentDTO {
	upcoming := make(map[string]bool, len(d.Upcoming))
	for _, a := range d.Upcoming {
		upcoming[a.ID().String()] = true
	}
	out := make([]AppointmentDTO, len(appts))
	for i, a := range appts {
		out[i] = AppointmentDTO{
			Index:    i + 1,
			ID:       a.ID().String(),
			Owner:    a.Owner().String(),
			Name:     d.Names[a.Owner()].String(),
			When:     a.When().Format(person.AppointmentLayout),
			Note:     a.Note(),
			Upcoming: upcoming[a.ID().String()],
		}
	}
	return out
}

// Outcome is a command result together with the lists it left displayed.
type Outcome struct {
	logic.Result
	Persons      []PersonDTO      `json:"persons"`
	Appointments []AppointmentDTO `json:"appointments"`
	Viewed       *PersonDTO       `json:"viewed,omitempty"`
}

// Outcome pairs res with the display state.
func (d Display) Outcome(res logic.Result) Outcome {
	o := Outcome{
		Result:       res,
		Persons:      PersonDTOs(d.Persons),
		Appointments: d.AppointmentDTOs(d.Appointments),
	}
	if d.Viewed != nil {
		v := ToPersonDTO(0, *d.Viewed)
		o.Viewed = &v
	}
	return o
}

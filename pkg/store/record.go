package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/medbook/pkg/model"
	"tableflip.dev/medbook/pkg/person"
)

// ErrCorrupt is returned when stored data cannot be turned back into a valid
// book.
var ErrCorrupt = errors.New("store: data file not in the correct format")

type personRecord struct {
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

type appointmentRecord struct {
	ID    uuid.UUID `json:"id"`
	Owner string    `json:"owner"`
	When  time.Time `json:"when"`
	Note  string    `json:"note,omitempty"`
}

func stringsOf[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

func toPersonRecord(p person.Person) personRecord {
	return personRecord{
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
		Tags:               stringsOf(p.Tags()),
		Allergies:          stringsOf(p.Allergies()),
		Medicines:          stringsOf(p.Medicines()),
		Remark:             p.Remark().String(),
	}
}

// restore runs every stored value back through its constructor so a hand
// edited file cannot smuggle in invalid data.
func (r personRecord) restore(today time.Time) (person.Person, error) {
	var (
		f    person.Fields
		errs []error
	)
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	var err error
	f.Name, err = person.NewName(r.Name)
	check(err)
	f.IdentityNumber, err = person.NewIdentityNumber(r.IdentityNumber)
	check(err)
	f.Phone, err = person.NewPhone(r.Phone)
	check(err)
	if r.Email != "" {
		f.Email, err = person.NewEmail(r.Email)
		check(err)
	}
	if r.Address != "" {
		f.Address, err = person.NewAddress(r.Address)
		check(err)
	}
	if r.DateOfBirth != "" {
		f.DateOfBirth, err = person.NewDateOfBirth(r.DateOfBirth, today)
		check(err)
	}
	if r.Gender != "" {
		f.Gender, err = person.NewGender(r.Gender)
		check(err)
	}
	if r.BloodType != "" {
		f.BloodType, err = person.NewBloodType(r.BloodType)
		check(err)
	}
	if r.EmergencyContact != "" {
		f.EmergencyContact, err = person.NewEmergencyContact(r.EmergencyContact)
		check(err)
	}
	if r.SmokingRecord != "" {
		f.SmokingRecord, err = person.NewHabit(r.SmokingRecord)
		check(err)
	}
	if r.AlcoholicRecord != "" {
		f.AlcoholicRecord, err = person.NewHabit(r.AlcoholicRecord)
		check(err)
	}
	if r.PastMedicalHistory != "" {
		f.PastMedicalHistory, err = person.NewPastMedicalHistory(r.PastMedicalHistory)
		check(err)
	}
	f.Tags, err = restoreSet(r.Tags, person.NewTag)
	check(err)
	f.Allergies, err = restoreSet(r.Allergies, person.NewAllergy)
	check(err)
	f.Medicines, err = restoreSet(r.Medicines, person.NewMedicine)
	check(err)
	f.Remark, err = person.NewRemark(r.Remark)
	check(err)

	if len(errs) > 0 {
		return person.Person{}, fmt.Errorf("%w: person %q: %w", ErrCorrupt, r.IdentityNumber, errors.Join(errs...))
	}
	return person.New(f), nil
}

func restoreSet[T ~string](raws []string, parse func(string) (T, error)) (person.Set[T], error) {
	vals := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := parse(raw)
		if err != nil {
			return person.Set[T]{}, err
		}
		vals = append(vals, v)
	}
	return person.NewSet(vals...), nil
}

func toAppointmentRecord(a person.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:    a.ID(),
		Owner: a.Owner().String(),
		When:  a.When(),
		Note:  a.Note(),
	}
}

func (r appointmentRecord) restore() (person.Appointment, error) {
	owner, err := person.NewIdentityNumber(r.Owner)
	if err != nil {
		return person.Appointment{}, fmt.Errorf("%w: appointment %s: %w", ErrCorrupt, r.ID, err)
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return person.RestoreAppointment(r.ID, owner, r.When.Local(), r.Note), nil
}

func toSnapshot(persons []personRecord, appts []appointmentRecord, today time.Time) (model.Snapshot, error) {
	var s model.Snapshot
	for _, r := range persons {
		p, err := r.restore(today)
		if err != nil {
			return model.Snapshot{}, err
		}
		s.Persons = append(s.Persons, p)
	}
	for _, r := range appts {
		a, err := r.restore()
		if err != nil {
			return model.Snapshot{}, err
		}
		s.Appointments = append(s.Appointments, a)
	}
	return s, nil
}

func fromSnapshot(s model.Snapshot) ([]personRecord, []appointmentRecord) {
	persons := make([]personRecord, len(s.Persons))
	for i, p := range s.Persons {
		persons[i] = toPersonRecord(p)
	}
	appts := make([]appointmentRecord, len(s.Appointments))
	for i, a := range s.Appointments {
		appts[i] = toAppointmentRecord(a)
	}
	return persons, appts
}

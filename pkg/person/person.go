package person

import (
	"fmt"
	"strings"
)

// Fields holds the raw, already validated attributes of a Person. It is the
// only way to construct a Person and the shape Patch operates on.
type Fields struct {
	Name               Name
	IdentityNumber     IdentityNumber
	Phone              Phone
	Email              Email
	Address            Address
	DateOfBirth        DateOfBirth
	Gender             Gender
	BloodType          BloodType
	EmergencyContact   EmergencyContact
	SmokingRecord      SmokingRecord
	AlcoholicRecord    AlcoholicRecord
	PastMedicalHistory PastMedicalHistory
	Tags               Set[Tag]
	Allergies          Set[Allergy]
	Medicines          Set[Medicine]
	Remark             Remark
}

// Person is an immutable patient record. Every edit produces a new Person.
type Person struct {
	f Fields
}

// New returns a Person holding a copy of f.
func New(f Fields) Person {
	return Person{f: f}
}

// Fields returns a copy of the person's attributes.
func (p Person) Fields() Fields { return p.f }

func (p Person) Name() Name                             { return p.f.Name }
func (p Person) IdentityNumber() IdentityNumber         { return p.f.IdentityNumber }
func (p Person) Phone() Phone                           { return p.f.Phone }
func (p Person) Email() Email                           { return p.f.Email }
func (p Person) Address() Address                       { return p.f.Address }
func (p Person) DateOfBirth() DateOfBirth               { return p.f.DateOfBirth }
func (p Person) Gender() Gender                         { return p.f.Gender }
func (p Person) BloodType() BloodType                   { return p.f.BloodType }
func (p Person) EmergencyContact() EmergencyContact     { return p.f.EmergencyContact }
func (p Person) SmokingRecord() SmokingRecord           { return p.f.SmokingRecord }
func (p Person) AlcoholicRecord() AlcoholicRecord       { return p.f.AlcoholicRecord }
func (p Person) PastMedicalHistory() PastMedicalHistory { return p.f.PastMedicalHistory }
func (p Person) Tags() []Tag                            { return p.f.Tags.Values() }
func (p Person) Allergies() []Allergy                   { return p.f.Allergies.Values() }
func (p Person) Medicines() []Medicine                  { return p.f.Medicines.Values() }
func (p Person) Remark() Remark                         { return p.f.Remark }

// WithRemark returns a copy of p carrying r.
func (p Person) WithRemark(r Remark) Person {
	f := p.f
	f.Remark = r
	return New(f)
}

// SameIdentity reports whether both records share the natural key.
func (p Person) SameIdentity(other Person) bool {
	return p.f.IdentityNumber == other.f.IdentityNumber
}

// Equal compares every attribute.
func (p Person) Equal(other Person) bool {
	a, b := p.f, other.f
	return a.Name == b.Name &&
		a.IdentityNumber == b.IdentityNumber &&
		a.Phone == b.Phone &&
		a.Email == b.Email &&
		a.Address == b.Address &&
		a.DateOfBirth.Equal(b.DateOfBirth.Time) &&
		a.Gender == b.Gender &&
		a.BloodType == b.BloodType &&
		a.EmergencyContact == b.EmergencyContact &&
		a.SmokingRecord == b.SmokingRecord &&
		a.AlcoholicRecord == b.AlcoholicRecord &&
		a.PastMedicalHistory == b.PastMedicalHistory &&
		a.Tags.Equal(b.Tags) &&
		a.Allergies.Equal(b.Allergies) &&
		a.Medicines.Equal(b.Medicines) &&
		a.Remark == b.Remark
}

func (p Person) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s; Identity Number: %s; Phone: %s", p.f.Name, p.f.IdentityNumber, p.f.Phone)
	if p.f.Email != "" {
		fmt.Fprintf(&sb, "; Email: %s", p.f.Email)
	}
	if p.f.Address != "" {
		fmt.Fprintf(&sb, "; Address: %s", p.f.Address)
	}
	if !p.f.DateOfBirth.IsZero() {
		fmt.Fprintf(&sb, "; Date of Birth: %s", p.f.DateOfBirth)
	}
	if p.f.Gender != "" {
		fmt.Fprintf(&sb, "; Gender: %s", p.f.Gender)
	}
	if p.f.BloodType != "" {
		fmt.Fprintf(&sb, "; Blood Type: %s", p.f.BloodType)
	}
	if tags := p.Tags(); len(tags) > 0 {
		sb.WriteString("; Tags: ")
		for _, t := range tags {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}

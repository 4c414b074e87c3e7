package person

// Patch describes a partial edit of a Person. A nil slot leaves the field
// untouched; a set slot replaces the field wholesale. Set-valued slots are
// never merged with the original values.
type Patch struct {
	Name               *Name
	IdentityNumber     *IdentityNumber
	Phone              *Phone
	Email              *Email
	Address            *Address
	DateOfBirth        *DateOfBirth
	Gender             *Gender
	BloodType          *BloodType
	EmergencyContact   *EmergencyContact
	SmokingRecord      *SmokingRecord
	AlcoholicRecord    *AlcoholicRecord
	PastMedicalHistory *PastMedicalHistory
	Tags               *Set[Tag]
	Allergies          *Set[Allergy]
	Medicines          *Set[Medicine]
}

// IsAnyFieldEdited reports whether at least one slot is set.
func (d Patch) IsAnyFieldEdited() bool {
	return d.Name != nil || d.IdentityNumber != nil || d.Phone != nil ||
		d.Email != nil || d.Address != nil || d.DateOfBirth != nil ||
		d.Gender != nil || d.BloodType != nil || d.EmergencyContact != nil ||
		d.SmokingRecord != nil || d.AlcoholicRecord != nil ||
		d.PastMedicalHistory != nil || d.Tags != nil || d.Allergies != nil ||
		d.Medicines != nil
}

// Apply returns a new Person with every set slot replaced. The remark is not
// editable through a Patch and is always carried over.
func (d Patch) Apply(p Person) Person {
	f := p.Fields()
	pick(&f.Name, d.Name)
	pick(&f.IdentityNumber, d.IdentityNumber)
	pick(&f.Phone, d.Phone)
	pick(&f.Email, d.Email)
	pick(&f.Address, d.Address)
	pick(&f.DateOfBirth, d.DateOfBirth)
	pick(&f.Gender, d.Gender)
	pick(&f.BloodType, d.BloodType)
	pick(&f.EmergencyContact, d.EmergencyContact)
	pick(&f.SmokingRecord, d.SmokingRecord)
	pick(&f.AlcoholicRecord, d.AlcoholicRecord)
	pick(&f.PastMedicalHistory, d.PastMedicalHistory)
	pick(&f.Tags, d.Tags)
	pick(&f.Allergies, d.Allergies)
	pick(&f.Medicines, d.Medicines)
	return New(f)
}

func pick[T any](dst *T, slot *T) {
	if slot != nil {
		*dst = *slot
	}
}

// Ptr returns a pointer to v, for filling Patch slots.
func Ptr[T any](v T) *T { return &v }

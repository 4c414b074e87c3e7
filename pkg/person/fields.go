// Package person defines the validated field values, the immutable Person
// and Appointment records, and the Patch used to edit a Person.
package person

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidField is wrapped by every constructor in this package when the
// raw value fails its format rule.
var ErrInvalidField = errors.New("invalid field")

// ConstraintError reports which format rule a raw value broke.
type ConstraintError struct {
	Constraint string
}

func (e *ConstraintError) Error() string { return e.Constraint }

func (e *ConstraintError) Unwrap() error { return ErrInvalidField }

func invalid(constraint string) error {
	return &ConstraintError{Constraint: constraint}
}

const (
	// DateLayout is the layout accepted for dates of birth.
	DateLayout = "2006-01-02"

	NameConstraints             = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	IdentityNumberConstraints   = "Identity numbers should start with S, T, F, G or M, followed by 7 digits and end with a letter, e.g. S1234567A"
	PhoneConstraints            = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints            = "Emails should be of the format local-part@domain, the local part may contain alphanumerics and + _ . - but not start or end with them, and the domain must end with a label of at least 2 characters"
	AddressConstraints          = "Addresses can take any values, and it should not be blank"
	DateOfBirthConstraints      = "Dates of birth should be of the format YYYY-MM-DD and must not be in the future"
	GenderConstraints           = "Gender should be one of M, F or O"
	BloodTypeConstraints        = "Blood type should be one of A+, A-, B+, B-, AB+, AB-, O+, O-"
	EmergencyContactConstraints = "Emergency contacts should only contain numbers, and it should be at least 3 digits long"
	HabitConstraints            = "Records should be one of Y (yes), N (no) or F (former)"
	HistoryConstraints          = "Past medical history can take any values, and it should not be blank"
	TagConstraints              = "Tags names should be alphanumeric"
	AllergyConstraints          = "Allergies should only contain alphanumeric characters, spaces and hyphens, and it should not be blank"
	MedicineConstraints         = "Medicines should only contain alphanumeric characters, spaces and hyphens, and it should not be blank"
	RemarkConstraints           = "Remarks can take any values, and it should not start with whitespace"
)

var (
	nameRegex     = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	identityRegex = regexp.MustCompile(`^[STFGM]\d{7}[A-Z]$`)
	phoneRegex    = regexp.MustCompile(`^\d{3,}$`)
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9+_.\-]*[A-Za-z0-9])?@(?:[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?\.)*[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?$`)
	tagRegex      = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
	substRegex    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} \-]*$`)
)

// Name is a person's display name.
type Name string

// NewName validates and returns a Name.
func NewName(raw string) (Name, error) {
	if !nameRegex.MatchString(raw) {
		return "", invalid(NameConstraints)
	}
	return Name(raw), nil
}

func (n Name) String() string { return string(n) }

// IdentityNumber is the natural key of a Person.
type IdentityNumber string

// NewIdentityNumber upper-cases and validates the raw value.
func NewIdentityNumber(raw string) (IdentityNumber, error) {
	v := strings.ToUpper(raw)
	if !identityRegex.MatchString(v) {
		return "", invalid(IdentityNumberConstraints)
	}
	return IdentityNumber(v), nil
}

func (i IdentityNumber) String() string { return string(i) }

// Phone is a contact number.
type Phone string

// NewPhone validates and returns a Phone.
func NewPhone(raw string) (Phone, error) {
	if !phoneRegex.MatchString(raw) {
		return "", invalid(PhoneConstraints)
	}
	return Phone(raw), nil
}

func (p Phone) String() string { return string(p) }

// Email is a contact address.
type Email string

// NewEmail validates and returns an Email. The last domain label must be at
// least two characters long.
func NewEmail(raw string) (Email, error) {
	if !emailRegex.MatchString(raw) {
		return "", invalid(EmailConstraints)
	}
	domain := raw[strings.LastIndex(raw, "@")+1:]
	labels := strings.Split(domain, ".")
	if len(labels[len(labels)-1]) < 2 {
		return "", invalid(EmailConstraints)
	}
	return Email(raw), nil
}

func (e Email) String() string { return string(e) }

// Address is a postal address.
type Address string

// NewAddress accepts anything that is not blank.
func NewAddress(raw string) (Address, error) {
	if strings.TrimSpace(raw) == "" {
		return "", invalid(AddressConstraints)
	}
	return Address(raw), nil
}

func (a Address) String() string { return string(a) }

// DateOfBirth is a calendar date with no time component.
type DateOfBirth struct {
	time.Time
}

// NewDateOfBirth parses raw as YYYY-MM-DD and rejects dates after today.
func NewDateOfBirth(raw string, today time.Time) (DateOfBirth, error) {
	t, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		return DateOfBirth{}, invalid(DateOfBirthConstraints)
	}
	y, m, d := today.Date()
	if t.After(time.Date(y, m, d, 0, 0, 0, 0, time.Local)) {
		return DateOfBirth{}, invalid(DateOfBirthConstraints)
	}
	return DateOfBirth{Time: t}, nil
}

func (d DateOfBirth) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Gender is one of M, F or O.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
	Other  Gender = "O"
)

// NewGender accepts m, f or o in any case.
func NewGender(raw string) (Gender, error) {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(raw))); g {
	case Male, Female, Other:
		return g, nil
	}
	return "", invalid(GenderConstraints)
}

func (g Gender) String() string { return string(g) }

// BloodType is an ABO group with rhesus factor.
type BloodType string

var bloodTypes = map[BloodType]struct{}{
	"A+": {}, "A-": {}, "B+": {}, "B-": {}, "AB+": {}, "AB-": {}, "O+": {}, "O-": {},
}

// NewBloodType accepts the eight ABO/Rh groups in any case.
func NewBloodType(raw string) (BloodType, error) {
	b := BloodType(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := bloodTypes[b]; !ok {
		return "", invalid(BloodTypeConstraints)
	}
	return b, nil
}

func (b BloodType) String() string { return string(b) }

// EmergencyContact is the number to call for the person.
type EmergencyContact string

// NewEmergencyContact follows the phone number rule.
func NewEmergencyContact(raw string) (EmergencyContact, error) {
	if !phoneRegex.MatchString(raw) {
		return "", invalid(EmergencyContactConstraints)
	}
	return EmergencyContact(raw), nil
}

func (e EmergencyContact) String() string { return string(e) }

// Habit records yes/no/former for smoking and alcohol.
type Habit string

const (
	HabitYes    Habit = "Y"
	HabitNo     Habit = "N"
	HabitFormer Habit = "F"
)

// NewHabit accepts y, n or f in any case.
func NewHabit(raw string) (Habit, error) {
	switch h := Habit(strings.ToUpper(strings.TrimSpace(raw))); h {
	case HabitYes, HabitNo, HabitFormer:
		return h, nil
	}
	return "", invalid(HabitConstraints)
}

func (h Habit) String() string { return string(h) }

// SmokingRecord and AlcoholicRecord share the Habit rule.
type (
	SmokingRecord   = Habit
	AlcoholicRecord = Habit
)

// PastMedicalHistory is free text.
type PastMedicalHistory string

// NewPastMedicalHistory accepts anything that is not blank.
func NewPastMedicalHistory(raw string) (PastMedicalHistory, error) {
	if strings.TrimSpace(raw) == "" {
		return "", invalid(HistoryConstraints)
	}
	return PastMedicalHistory(raw), nil
}

func (h PastMedicalHistory) String() string { return string(h) }

// Tag is a free-form single word label.
type Tag string

// NewTag validates and returns a Tag.
func NewTag(raw string) (Tag, error) {
	if !tagRegex.MatchString(raw) {
		return "", invalid(TagConstraints)
	}
	return Tag(raw), nil
}

func (t Tag) String() string { return "[" + string(t) + "]" }

// Allergy names a substance the person reacts to.
type Allergy string

// NewAllergy validates and returns an Allergy.
func NewAllergy(raw string) (Allergy, error) {
	if !substRegex.MatchString(raw) {
		return "", invalid(AllergyConstraints)
	}
	return Allergy(raw), nil
}

func (a Allergy) String() string { return string(a) }

// Medicine names a medication the person takes.
type Medicine string

// NewMedicine validates and returns a Medicine.
func NewMedicine(raw string) (Medicine, error) {
	if !substRegex.MatchString(raw) {
		return "", invalid(MedicineConstraints)
	}
	return Medicine(raw), nil
}

func (m Medicine) String() string { return string(m) }

// Remark is an optional note attached to a person. The empty Remark means no
// remark.
type Remark string

// NewRemark accepts the empty string (clear) or text that does not start
// with whitespace.
func NewRemark(raw string) (Remark, error) {
	if raw == "" {
		return "", nil
	}
	if strings.TrimLeft(raw, " \t\r\n") != raw {
		return "", invalid(RemarkConstraints)
	}
	return Remark(raw), nil
}

func (r Remark) String() string { return string(r) }

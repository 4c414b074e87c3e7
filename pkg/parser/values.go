package parser

import (
	"strconv"
	"strings"
	"time"

	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/person"
)

// Now is the clock used to reject future dates of birth.
var Now = time.Now

// ParseIndex converts a one-based position into a logic.Index. Leading and
// trailing whitespace is ignored; signs, zero and non-digits are rejected.
func ParseIndex(raw string) (logic.Index, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "+-") {
		return 0, &ParseError{Err: ErrInvalidIndex}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, &ParseError{Err: ErrInvalidIndex}
	}
	return logic.FromOneBased(n), nil
}

func field(err error) error {
	if err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

func ParseName(raw string) (person.Name, error) {
	v, err := person.NewName(strings.TrimSpace(raw))
	return v, field(err)
}

func ParseIdentityNumber(raw string) (person.IdentityNumber, error) {
	v, err := person.NewIdentityNumber(strings.TrimSpace(raw))
	return v, field(err)
}

func ParsePhone(raw string) (person.Phone, error) {
	v, err := person.NewPhone(strings.TrimSpace(raw))
	return v, field(err)
}

func ParseEmail(raw string) (person.Email, error) {
	v, err := person.NewEmail(strings.TrimSpace(raw))
	return v, field(err)
}

func ParseAddress(raw string) (person.Address, error) {
	v, err := person.NewAddress(strings.TrimSpace(raw))
	return v, field(err)
}

func ParseDateOfBirth(raw string) (person.DateOfBirth, error) {
	v, err := person.NewDateOfBirth(strings.TrimSpace(raw), Now())
	return v, field(err)
}

func ParseGender(raw string) (person.Gender, error) {
	v, err := person.NewGender(raw)
	return v, field(err)
}

func ParseBloodType(raw string) (person.BloodType, error) {
	v, err := person.NewBloodType(raw)
	return v, field(err)
}

func ParseEmergencyContact(raw string) (person.EmergencyContact, error) {
	v, err := person.NewEmergencyContact(strings.TrimSpace(raw))
	return v, field(err)
}

func ParseSmokingRecord(raw string) (person.SmokingRecord, error) {
	v, err := person.NewHabit(raw)
	return v, field(err)
}

func ParseAlcoholicRecord(raw string) (person.AlcoholicRecord, error) {
	v, err := person.NewHabit(raw)
	return v, field(err)
}

func ParsePastMedicalHistory(raw string) (person.PastMedicalHistory, error) {
	v, err := person.NewPastMedicalHistory(strings.TrimSpace(raw))
	return v, field(err)
}

func ParseRemark(raw string) (person.Remark, error) {
	v, err := person.NewRemark(strings.TrimSpace(raw))
	return v, field(err)
}

func ParseAppointmentTime(raw string) (time.Time, error) {
	v, err := person.NewAppointmentTime(raw)
	return v, field(err)
}

func ParseAppointmentNote(raw string) (string, error) {
	v, err := person.NewAppointmentNote(strings.TrimSpace(raw))
	return v, field(err)
}

func parseSet[T ~string](raws []string, parse func(string) (T, error)) (person.Set[T], error) {
	vals := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := parse(strings.TrimSpace(raw))
		if err != nil {
			return person.Set[T]{}, &ParseError{Err: err}
		}
		vals = append(vals, v)
	}
	return person.NewSet(vals...), nil
}

// ParseTags validates every raw tag.
func ParseTags(raws []string) (person.Set[person.Tag], error) {
	return parseSet(raws, person.NewTag)
}

// ParseAllergies validates every raw allergy.
func ParseAllergies(raws []string) (person.Set[person.Allergy], error) {
	return parseSet(raws, person.NewAllergy)
}

// ParseMedicines validates every raw medicine.
func ParseMedicines(raws []string) (person.Set[person.Medicine], error) {
	return parseSet(raws, person.NewMedicine)
}

// optionalSet applies the edit rule for multi-valued fields: no occurrence
// means "leave alone" (nil), a single empty occurrence means "clear" (empty
// set), anything else is parsed as the replacement set.
func optionalSet[T ~string](raws []string, parse func([]string) (person.Set[T], error)) (*person.Set[T], error) {
	if len(raws) == 0 {
		return nil, nil
	}
	if len(raws) == 1 && raws[0] == "" {
		empty := person.NewSet[T]()
		return &empty, nil
	}
	s, err := parse(raws)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Themes maps theme names to the stylesheet path handed to the shell.
var Themes = map[string]string{
	"dark":  "themes/dark",
	"light": "themes/light",
}

// ParseTheme resolves a theme name to its path.
func ParseTheme(raw string) (string, string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	path, ok := Themes[name]
	if !ok {
		return "", "", &ParseError{Err: ErrUnknownTheme, Detail: raw}
	}
	return name, path, nil
}

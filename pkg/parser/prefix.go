package parser

// Field prefixes.
const (
	PrefixName               Prefix = "n/"
	PrefixIdentityNumber     Prefix = "id/"
	PrefixPhone              Prefix = "p/"
	PrefixEmail              Prefix = "e/"
	PrefixAddress            Prefix = "a/"
	PrefixDateOfBirth        Prefix = "dob/"
	PrefixGender             Prefix = "g/"
	PrefixBloodType          Prefix = "b/"
	PrefixEmergencyContact   Prefix = "ec/"
	PrefixSmokingRecord      Prefix = "s/"
	PrefixAlcoholicRecord    Prefix = "ar/"
	PrefixPastMedicalHistory Prefix = "pmh/"
	PrefixTag                Prefix = "t/"
	PrefixAllergy            Prefix = "al/"
	PrefixMedicine           Prefix = "m/"
	PrefixRemark             Prefix = "r/"
	PrefixAppointmentTime    Prefix = "adt/"
	PrefixAppointmentNote    Prefix = "note/"
)

// singlePersonPrefixes may occur at most once in add and edit.
var singlePersonPrefixes = []Prefix{
	PrefixName,
	PrefixIdentityNumber,
	PrefixPhone,
	PrefixEmail,
	PrefixAddress,
	PrefixDateOfBirth,
	PrefixGender,
	PrefixBloodType,
	PrefixEmergencyContact,
	PrefixSmokingRecord,
	PrefixAlcoholicRecord,
	PrefixPastMedicalHistory,
}

// personPrefixes is every prefix add and edit recognise.
var personPrefixes = append(append([]Prefix{}, singlePersonPrefixes...),
	PrefixTag, PrefixAllergy, PrefixMedicine)

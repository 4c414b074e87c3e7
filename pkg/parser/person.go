package parser

import (
	"strings"

	"tableflip.dev/medbook/pkg/logic"
	"tableflip.dev/medbook/pkg/person"
)

const (
	AddUsage = logic.AddWord + ": Adds a person to the record book. " +
		"Parameters: n/NAME id/IDENTITY_NUMBER p/PHONE [e/EMAIL] [a/ADDRESS] [dob/DATE_OF_BIRTH] " +
		"[g/GENDER] [b/BLOOD_TYPE] [ec/EMERGENCY_CONTACT] [s/SMOKING_RECORD] [ar/ALCOHOLIC_RECORD] " +
		"[pmh/PAST_MEDICAL_HISTORY] [t/TAG]... [al/ALLERGY]... [m/MEDICINE]...\n" +
		"Example: " + logic.AddWord + " n/John Doe id/S1234567A p/98765432 e/johnd@example.com t/diabetic"
	EditUsage = logic.EditWord + ": Edits the person identified by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [id/IDENTITY_NUMBER] [p/PHONE] [e/EMAIL] ... [t/TAG]...\n" +
		"Example: " + logic.EditWord + " 1 p/91234567 e/johndoe@example.com"
	DeleteUsage = logic.DeleteWord + ": Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + logic.DeleteWord + " 1"
	ListUsage = logic.ListWord + ": Lists all persons."
	FindUsage = logic.FindWord + ": Finds all persons whose names contain any of the specified keywords (case-insensitive).\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + logic.FindWord + " alice bob charlie"
	ViewUsage = logic.ViewWord + ": Shows the details and appointments of the person identified by the index number.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + logic.ViewWord + " 1"
	RemarkUsage = logic.RemarkWord + ": Edits the remark of the person identified by the index number. " +
		"An empty remark removes it.\n" +
		"Parameters: INDEX (must be a positive integer) r/[REMARK]\n" +
		"Example: " + logic.RemarkWord + " 1 r/Likes to swim."
)

func parseAdd(args string) (logic.Command, error) {
	mm := Tokenize(args, personPrefixes...)
	if !mm.ArePrefixesPresent(PrefixName, PrefixIdentityNumber, PrefixPhone) || mm.Preamble() != "" {
		return nil, formatError(AddUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(singlePersonPrefixes...); err != nil {
		return nil, withUsage(err, AddUsage)
	}

	p, err := buildPatch(mm)
	if err != nil {
		return nil, withUsage(err, AddUsage)
	}
	return logic.Add{Person: p.Apply(person.New(person.Fields{}))}, nil
}

func parseEdit(args string) (logic.Command, error) {
	mm := Tokenize(args, personPrefixes...)
	index, err := ParseIndex(mm.Preamble())
	if err != nil {
		return nil, formatError(EditUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(singlePersonPrefixes...); err != nil {
		return nil, withUsage(err, EditUsage)
	}
	p, err := buildPatch(mm)
	if err != nil {
		return nil, withUsage(err, EditUsage)
	}
	return logic.Edit{Index: index, Patch: p}, nil
}

// buildPatch fills a slot for every prefix that occurred. Multi-valued
// prefixes follow the optionalSet rule.
func buildPatch(mm ArgumentMultimap) (person.Patch, error) {
	var (
		d   person.Patch
		err error
	)
	if d.Name, err = optional(mm, PrefixName, ParseName); err != nil {
		return d, err
	}
	if d.IdentityNumber, err = optional(mm, PrefixIdentityNumber, ParseIdentityNumber); err != nil {
		return d, err
	}
	if d.Phone, err = optional(mm, PrefixPhone, ParsePhone); err != nil {
		return d, err
	}
	if d.Email, err = optional(mm, PrefixEmail, ParseEmail); err != nil {
		return d, err
	}
	if d.Address, err = optional(mm, PrefixAddress, ParseAddress); err != nil {
		return d, err
	}
	if d.DateOfBirth, err = optional(mm, PrefixDateOfBirth, ParseDateOfBirth); err != nil {
		return d, err
	}
	if d.Gender, err = optional(mm, PrefixGender, ParseGender); err != nil {
		return d, err
	}
	if d.BloodType, err = optional(mm, PrefixBloodType, ParseBloodType); err != nil {
		return d, err
	}
	if d.EmergencyContact, err = optional(mm, PrefixEmergencyContact, ParseEmergencyContact); err != nil {
		return d, err
	}
	if d.SmokingRecord, err = optional(mm, PrefixSmokingRecord, ParseSmokingRecord); err != nil {
		return d, err
	}
	if d.AlcoholicRecord, err = optional(mm, PrefixAlcoholicRecord, ParseAlcoholicRecord); err != nil {
		return d, err
	}
	if d.PastMedicalHistory, err = optional(mm, PrefixPastMedicalHistory, ParsePastMedicalHistory); err != nil {
		return d, err
	}
	if d.Tags, err = optionalSet(mm.AllValues(PrefixTag), ParseTags); err != nil {
		return d, err
	}
	if d.Allergies, err = optionalSet(mm.AllValues(PrefixAllergy), ParseAllergies); err != nil {
		return d, err
	}
	if d.Medicines, err = optionalSet(mm.AllValues(PrefixMedicine), ParseMedicines); err != nil {
		return d, err
	}
	return d, nil
}

func optional[T any](mm ArgumentMultimap, p Prefix, parse func(string) (T, error)) (*T, error) {
	raw, ok := mm.Value(p)
	if !ok {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseDelete(args string) (logic.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, formatError(DeleteUsage)
	}
	return logic.Delete{Index: index}, nil
}

func parseFind(args string) (logic.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, formatError(FindUsage)
	}
	return logic.Find{Keywords: keywords}, nil
}

func parseView(args string) (logic.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, formatError(ViewUsage)
	}
	return logic.View{Index: index}, nil
}

func parseRemark(args string) (logic.Command, error) {
	mm := Tokenize(args, PrefixRemark)
	index, err := ParseIndex(mm.Preamble())
	if err != nil || !mm.ArePrefixesPresent(PrefixRemark) {
		return nil, formatError(RemarkUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(PrefixRemark); err != nil {
		return nil, withUsage(err, RemarkUsage)
	}
	raw, _ := mm.Value(PrefixRemark)
	r, err := ParseRemark(raw)
	if err != nil {
		return nil, withUsage(err, RemarkUsage)
	}
	return logic.Remark{Index: index, Remark: r}, nil
}

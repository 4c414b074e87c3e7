package parser

import (
	"tableflip.dev/medbook/pkg/logic"
)

const (
	AddAppointmentUsage = logic.AddAppointmentWord + ": Adds an appointment for the person identified by the index number.\n" +
		"Parameters: INDEX (must be a positive integer) adt/YYYY-MM-DD HH:MM [note/NOTE]\n" +
		"Example: " + logic.AddAppointmentWord + " 1 adt/2024-03-01 14:30 note/Blood test"
	DeleteAppointmentUsage = logic.DeleteAppointmentWord + ": Deletes the appointment identified by the index number used in the displayed appointment list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + logic.DeleteAppointmentWord + " 1"
	AppointmentsUsage = logic.AppointmentsWord + ": Lists all appointments."
)

func parseAddAppointment(args string) (logic.Command, error) {
	mm := Tokenize(args, PrefixAppointmentTime, PrefixAppointmentNote)
	index, err := ParseIndex(mm.Preamble())
	if err != nil || !mm.ArePrefixesPresent(PrefixAppointmentTime) {
		return nil, formatError(AddAppointmentUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixesFor(PrefixAppointmentTime, PrefixAppointmentNote); err != nil {
		return nil, withUsage(err, AddAppointmentUsage)
	}
	raw, _ := mm.Value(PrefixAppointmentTime)
	when, err := ParseAppointmentTime(raw)
	if err != nil {
		return nil, withUsage(err, AddAppointmentUsage)
	}
	note, err := optional(mm, PrefixAppointmentNote, ParseAppointmentNote)
	if err != nil {
		return nil, withUsage(err, AddAppointmentUsage)
	}
	cmd := logic.AddAppointment{Index: index, When: when}
	if note != nil {
		cmd.Note = *note
	}
	return cmd, nil
}

func parseDeleteAppointment(args string) (logic.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, formatError(DeleteAppointmentUsage)
	}
	return logic.DeleteAppointment{Index: index}, nil
}

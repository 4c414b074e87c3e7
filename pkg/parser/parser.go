package parser

import (
	"sort"
	"strings"
	"unicode"

	"tableflip.dev/medbook/pkg/logic"
)

type verbParser func(args string) (logic.Command, error)

// noArgs builds a parser for verbs that ignore their arguments.
func noArgs(c logic.Command) verbParser {
	return func(string) (logic.Command, error) { return c, nil }
}

var verbs = map[string]verbParser{
	logic.AddWord:               parseAdd,
	logic.EditWord:              parseEdit,
	logic.DeleteWord:            parseDelete,
	logic.ListWord:              noArgs(logic.List{}),
	logic.FindWord:              parseFind,
	logic.ViewWord:              parseView,
	logic.RemarkWord:            parseRemark,
	logic.AddAppointmentWord:    parseAddAppointment,
	logic.DeleteAppointmentWord: parseDeleteAppointment,
	logic.AppointmentsWord:      noArgs(logic.Appointments{}),
	logic.ClearWord:             noArgs(logic.Clear{}),
	logic.ThemeWord:             parseTheme,
	logic.HelpWord:              noArgs(logic.Help{}),
	logic.ExitWord:              noArgs(logic.Exit{}),
}

// Verbs returns the known command words, sorted.
func Verbs() []string {
	out := make([]string, 0, len(verbs))
	for w := range verbs {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Parse turns one line of user input into a command. It never touches the
// model; every failure is a *ParseError.
func Parse(text string) (logic.Command, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, formatError(HelpUsage)
	}
	word, args := splitWord(text)
	parse, ok := verbs[word]
	if !ok {
		return nil, &ParseError{Err: ErrUnknownCommand, Detail: word}
	}
	return parse(args)
}

func splitWord(text string) (string, string) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], text[i:]
}

package logic

import (
	"tableflip.dev/medbook/pkg/model"
)

const (
	ClearWord = "clear"
	ThemeWord = "theme"
	HelpWord  = "help"
	ExitWord  = "exit"
)

// HelpMessage lists every verb; the shell shows it in its help pane.
const HelpMessage = `add n/NAME id/ID p/PHONE [e/EMAIL] [a/ADDRESS] [dob/DATE] [g/GENDER] [b/BLOOD] [ec/CONTACT] [s/SMOKING] [ar/ALCOHOL] [pmh/HISTORY] [t/TAG]... [al/ALLERGY]... [m/MEDICINE]...
edit INDEX [PREFIX/VALUE]...
delete INDEX
list
find KEYWORD [MORE_KEYWORDS]...
view INDEX
remark INDEX r/[REMARK]
addappt INDEX adt/YYYY-MM-DD HH:MM [note/NOTE]
deleteappt INDEX
appointments
clear
theme dark|light
help
exit`

// Clear empties the book.
type Clear struct{}

func (Clear) Mutates() bool { return true }

func (Clear) Execute(m *model.Model) (Result, error) {
	m.Clear()
	return Feedback("All records have been cleared!"), nil
}

// Theme asks the shell to switch to ThemePath.
type Theme struct {
	Name      string
	ThemePath string
}

func (Theme) Mutates() bool { return false }

func (c Theme) Execute(*model.Model) (Result, error) {
	return Result{
		Feedback:  "Theme changed to " + c.Name,
		ThemePath: c.ThemePath,
	}, nil
}

// Help asks the shell to show usage.
type Help struct{}

func (Help) Mutates() bool { return false }

func (Help) Execute(*model.Model) (Result, error) {
	return Result{Feedback: "Opened help window.", Help: true}, nil
}

// Exit asks the shell to quit.
type Exit struct{}

func (Exit) Mutates() bool { return false }

func (Exit) Execute(*model.Model) (Result, error) {
	return Result{Feedback: "Exiting medbook as requested ...", Exit: true}, nil
}

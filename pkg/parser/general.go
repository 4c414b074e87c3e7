package parser

import (
	"tableflip.dev/medbook/pkg/logic"
)

const (
	ClearUsage = logic.ClearWord + ": Clears all persons and appointments."
	ThemeUsage = logic.ThemeWord + ": Switches the colour theme.\n" +
		"Parameters: dark|light\n" +
		"Example: " + logic.ThemeWord + " light"
	HelpUsage = logic.HelpWord + ": Shows program usage instructions.\n" +
		"Example: " + logic.HelpWord
	ExitUsage = logic.ExitWord + ": Exits the program."
)

func parseTheme(args string) (logic.Command, error) {
	name, path, err := ParseTheme(args)
	if err != nil {
		return nil, withUsage(err, ThemeUsage)
	}
	return logic.Theme{Name: name, ThemePath: path}, nil
}

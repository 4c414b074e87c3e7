package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/medbook/pkg/app"
	"tableflip.dev/medbook/pkg/person"
	"tableflip.dev/medbook/pkg/tui/theme"
)

func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// personRows renders the indexed person list, two lines per person.
func personRows(t theme.Theme, persons []person.Person, width int) string {
	if len(persons) == 0 {
		return t.List.Faint.Render("No persons to show.")
	}
	var b strings.Builder
	for i, p := range persons {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := t.List.Index.Render(fmt.Sprintf("%d.", i+1)) + " " + t.List.Name.Render(p.Name().String())
		for _, tag := range p.Tags() {
			line += " " + t.List.Tag.Render(tag.String())
		}
		b.WriteString(clip(line, width))
		b.WriteByte('\n')

		sub := p.IdentityNumber().String() + " · " + p.Phone().String()
		if r := p.Remark(); r != "" {
			sub += " · " + r.String()
		}
		b.WriteString(clip("   "+t.List.Faint.Render(sub), width))
	}
	return b.String()
}

// appointmentRows renders an appointment list numbered from first, resolving
// owners through names.
func appointmentRows(t theme.Theme, appts []person.Appointment, names map[person.IdentityNumber]person.Name, first, width int) string {
	if len(appts) == 0 {
		return t.List.Faint.Render("None.")
	}
	rows := make([]string, len(appts))
	for i, a := range appts {
		who := a.Owner().String()
		if n, ok := names[a.Owner()]; ok {
			who = n.String()
		}
		line := t.List.Index.Render(fmt.Sprintf("%d.", first+i)) + " " +
			t.List.When.Render(a.When().Format(person.AppointmentLayout)) + " " + who
		if a.Note() != "" {
			line += " " + t.List.Faint.Render(a.Note())
		}
		rows[i] = clip(line, width)
	}
	return strings.Join(rows, "\n")
}

// detailRows renders every set field of p.
func detailRows(t theme.Theme, p person.Person, width int) string {
	var rows []string
	add := func(label string, v fmt.Stringer) {
		s := v.String()
		if s == "" {
			return
		}
		rows = append(rows, clip(t.List.Faint.Render(label+":")+" "+s, width))
	}
	rows = append(rows, t.List.Name.Render(p.Name().String()))
	add("Identity", p.IdentityNumber())
	add("Phone", p.Phone())
	add("Email", p.Email())
	add("Address", p.Address())
	add("Born", p.DateOfBirth())
	add("Gender", p.Gender())
	add("Blood", p.BloodType())
	add("Emergency", p.EmergencyContact())
	add("Smoking", p.SmokingRecord())
	add("Alcohol", p.AlcoholicRecord())
	add("History", p.PastMedicalHistory())
	add("Tags", joinList(p.Tags()))
	add("Allergies", joinList(p.Allergies()))
	add("Medicines", joinList(p.Medicines()))
	add("Remark", p.Remark())
	return strings.Join(rows, "\n")
}

type list string

func (l list) String() string { return string(l) }

func joinList[T fmt.Stringer](vs []T) list {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return list(strings.Join(parts, ", "))
}

// panel draws body inside a titled frame of the given outer size.
func panel(t theme.Theme, title, body string, width, height int, active bool) string {
	frame := t.Panel.Frame
	if active {
		frame = t.Panel.ActiveFrame
	}
	innerW := max(width-frame.GetHorizontalFrameSize(), 1)
	innerH := max(height-frame.GetVerticalFrameSize(), 1)

	lines := append([]string{t.Panel.Title.Render(clip(title, innerW))}, strings.Split(body, "\n")...)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return frame.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

// feedbackBox wraps the last result message to width.
func feedbackBox(t theme.Theme, text string, failed bool, width, height int) string {
	style := t.Command.Feedback
	if failed {
		style = t.Command.Error
	}
	innerW := max(width-t.Panel.Frame.GetHorizontalFrameSize(), 1)
	innerH := max(height-t.Panel.Frame.GetVerticalFrameSize(), 1)
	lines := strings.Split(wordwrap.String(text, innerW), "\n")
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return t.Panel.Frame.Width(innerW).Height(innerH).Render(style.Render(strings.Join(lines, "\n")))
}

func countTitle(title string, n int) string {
	return fmt.Sprintf("%s (%d)", title, n)
}

// sideColumn lays the display state out as the side column: the viewed person
// when there is one, then upcoming and past appointments. Past rows continue
// the upcoming numbering so deleteappt indices match what is shown.
func sideColumn(t theme.Theme, d app.Display, width, height int) string {
	var blocks []string
	remaining := height
	if d.Viewed != nil {
		h := remaining / 2
		blocks = append(blocks, panel(t, "Person", detailRows(t, *d.Viewed, width-4), width, h, false))
		remaining -= h
	}
	up := remaining / 2
	past := remaining - up
	blocks = append(blocks,
		panel(t, countTitle("Upcoming", len(d.Upcoming)), appointmentRows(t, d.Upcoming, d.Names, 1, width-4), width, up, false),
		panel(t, countTitle("Past", len(d.Past)), appointmentRows(t, d.Past, d.Names, len(d.Upcoming)+1, width-4), width, past, false),
	)
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

package logic

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/medbook/pkg/model"
	"tableflip.dev/medbook/pkg/person"
)

const (
	AddWord    = "add"
	EditWord   = "edit"
	DeleteWord = "delete"
	ListWord   = "list"
	FindWord   = "find"
	ViewWord   = "view"
	RemarkWord = "remark"
)

func personAt(m *model.Model, i Index) (person.Person, error) {
	p, ok := m.FilteredPersons().At(int(i))
	if !ok {
		return person.Person{}, fail(ErrInvalidPersonIndex)
	}
	return p, nil
}

// Add inserts a new person.
type Add struct {
	Person person.Person
}

func (c Add) Mutates() bool { return true }

func (c Add) Execute(m *model.Model) (Result, error) {
	if err := m.AddPerson(c.Person); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, fail(ErrDuplicatePerson)
		}
		return Result{}, err
	}
	return Feedback("New person added: %s", c.Person), nil
}

// Edit applies a patch to the person at Index.
type Edit struct {
	Index Index
	Patch person.Patch
}

func (c Edit) Mutates() bool { return true }

func (c Edit) Execute(m *model.Model) (Result, error) {
	if !c.Patch.IsAnyFieldEdited() {
		return Result{}, fail(ErrNotEdited)
	}
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Patch.Apply(target)
	if err := m.ReplacePerson(target, edited); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, fail(ErrDuplicatePerson)
		}
		return Result{}, err
	}
	m.UpdateFilteredPersonList(model.ShowAllPersons)
	return Feedback("Edited Person: %s", edited), nil
}

// Delete removes the person at Index along with their appointments.
type Delete struct {
	Index Index
}

func (c Delete) Mutates() bool { return true }

func (c Delete) Execute(m *model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.RemovePerson(target); err != nil {
		return Result{}, err
	}
	return Feedback("Deleted Person: %s", target), nil
}

// List shows every person.
type List struct{}

func (List) Mutates() bool { return false }

func (List) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredPersonList(model.ShowAllPersons)
	m.ClearViewedPerson()
	return Feedback("Listed all persons"), nil
}

// Find filters persons by name keywords.
type Find struct {
	Keywords []string
}

func (Find) Mutates() bool { return false }

func (c Find) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredPersonList(model.NameContainsKeywords(c.Keywords))
	n := m.FilteredPersons().Len()
	if n == 1 {
		return Feedback("1 person listed!"), nil
	}
	return Feedback("%d persons listed!", n), nil
}

// View selects the person at Index for the detail pane and scopes the
// appointment partitions to them.
type View struct {
	Index Index
}

func (View) Mutates() bool { return false }

func (c View) Execute(m *model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.SetViewedPerson(target); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Viewing Person: %s", target.Name()),
		View:     true,
	}, nil
}

// Remark sets or clears the remark of the person at Index.
type Remark struct {
	Index  Index
	Remark person.Remark
}

func (Remark) Mutates() bool { return true }

func (c Remark) Execute(m *model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target.WithRemark(c.Remark)
	if err := m.ReplacePerson(target, edited); err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(c.Remark.String()) == "" {
		return Feedback("Removed remark from Person: %s", edited.Name()), nil
	}
	return Feedback("Added remark to Person: %s", edited.Name()), nil
}

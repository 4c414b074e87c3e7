package model

import (
	"strings"

	"tableflip.dev/medbook/pkg/person"
)

// NameContainsKeywords keeps persons whose name contains any of the keywords
// as a whole word, ignoring case.
func NameContainsKeywords(keywords []string) Predicate[person.Person] {
	want := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			want[k] = struct{}{}
		}
	}
	return func(p person.Person) bool {
		for _, w := range strings.Fields(strings.ToLower(p.Name().String())) {
			if _, ok := want[w]; ok {
				return true
			}
		}
		return false
	}
}

// AppointmentsOf keeps the appointments owned by id.
func AppointmentsOf(id person.IdentityNumber) Predicate[person.Appointment] {
	return func(a person.Appointment) bool { return a.Owner() == id }
}

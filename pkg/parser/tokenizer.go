// Package parser turns command text into logic commands.
package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of one field's raw value, e.g. "p/".
type Prefix string

func (p Prefix) String() string { return string(p) }

// ArgumentMultimap maps each recognised prefix to the raw values that
// followed it, in the order they appeared.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble is the trimmed text before the first recognised prefix.
func (a ArgumentMultimap) Preamble() string { return a.preamble }

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p. It is empty, never nil, for a
// recognised prefix that did not occur.
func (a ArgumentMultimap) AllValues(p Prefix) []string {
	out := make([]string, len(a.values[p]))
	copy(out, a.values[p])
	return out
}

// ArePrefixesPresent reports whether every prefix occurred at least once.
func (a ArgumentMultimap) ArePrefixesPresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if len(a.values[p]) == 0 {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixesFor fails on the first single-valued prefix that
// occurred more than once.
func (a ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	for _, p := range prefixes {
		if len(a.values[p]) > 1 {
			return &ParseError{Err: ErrDuplicatePrefix, Detail: string(p)}
		}
	}
	return nil
}

type occurrence struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and the values following each of the
// given prefixes. A prefix only counts at the start of args or right after
// whitespace; anything else is literal text. No validation happens here.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	mm := ArgumentMultimap{
		values: make(map[Prefix][]string, len(prefixes)),
	}
	for _, p := range prefixes {
		mm.values[p] = []string{}
	}

	found := findOccurrences(args, prefixes)
	if len(found) == 0 {
		mm.preamble = strings.TrimSpace(args)
		return mm
	}

	mm.preamble = strings.TrimSpace(args[:found[0].start])
	for i, occ := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		value := strings.TrimSpace(args[occ.start+len(occ.prefix) : end])
		mm.values[occ.prefix] = append(mm.values[occ.prefix], value)
	}
	return mm
}

func findOccurrences(args string, prefixes []Prefix) []occurrence {
	var found []occurrence
	for i := 0; i < len(args); i++ {
		if i > 0 {
			if r, _ := utf8.DecodeLastRuneInString(args[:i]); !unicode.IsSpace(r) {
				continue
			}
		}
		for _, p := range prefixes {
			if p != "" && strings.HasPrefix(args[i:], string(p)) {
				found = append(found, occurrence{prefix: p, start: i})
				i += len(p) - 1
				break
			}
		}
	}
	return found
}

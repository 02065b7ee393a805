package pokemon

import (
	"fmt"
	"strings"
)

// Label is an adjective and a pokémon name. It is a small value type:
// copy it freely and compare it with ==.
type Label struct {
	adj  string
	name string
}

// FromPair wraps two strings into a Label without checking them against
// the tables. Use Decode to get a validated Label from text.
func FromPair(adjective, name string) Label {
	return Label{adj: adjective, name: name}
}

// Decode is the inverse of Label.String for labels made from the tables.
func Decode(s string) (Label, error) {
	adj, name, ok := strings.Cut(s, " ")
	if !ok {
		return Label{}, fmt.Errorf("%w: %q", ErrNotFound, s)
	}
	if _, ok := adjectiveIndex[adj]; !ok {
		return Label{}, fmt.Errorf("%w: %q", ErrNotFound, s)
	}
	if _, ok := pokemonIndex[name]; !ok {
		return Label{}, fmt.Errorf("%w: %q", ErrNotFound, s)
	}
	return Label{adj: adj, name: name}, nil
}

// Adjective returns the capitalized first word, such as "Busy".
func (l Label) Adjective() string { return l.adj }

// Name returns the pokémon part, such as "bulbasaur".
func (l Label) Name() string { return l.name }

// IsZero reports whether l is the zero Label.
func (l Label) IsZero() bool {
	return l.adj == "" && l.name == ""
}

// Indices returns the table positions of the adjective and the pokémon.
// ok is false when either part is not in its table, which only happens
// for labels built with FromPair.
func (l Label) Indices() (adj, name int, ok bool) {
	adj, aok := adjectiveIndex[l.adj]
	name, nok := pokemonIndex[l.name]
	if !aok || !nok {
		return 0, 0, false
	}
	return adj, name, true
}

// String renders "<adjective> <name>".
func (l Label) String() string {
	return l.adj + " " + l.name
}

// Equal reports whether both parts of l and other match byte for byte.
func (l Label) Equal(other Label) bool {
	return l == other
}

// EqualString reports whether s is exactly the rendered form of l.
func (l Label) EqualString(s string) bool {
	// Compare without allocating the rendered string.
	return len(s) == len(l.adj)+1+len(l.name) &&
		strings.HasPrefix(s, l.adj) &&
		s[len(l.adj)] == ' ' &&
		strings.HasSuffix(s, l.name)
}

// EqualString reports whether s equals the rendered form of l. It is the
// string-first counterpart of Label.EqualString.
func EqualString(s string, l Label) bool {
	return l.EqualString(s)
}

// MarshalText renders l as String does.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes text with Decode.
func (l *Label) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text))
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}

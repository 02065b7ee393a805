// Package pokemon translates a UUID into a pokémon name such as "Busy bulbasaur".
// The names give people something easy to say when talking about objects.
//
// The mapping is not injective: several UUIDs give the same name. Context
// (like the owner of the object) is expected to dedup the search.
package pokemon

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when text is not an adjective and a pokémon
	// from the tables joined by a single space.
	ErrNotFound = errors.New("label not found")

	// ErrInvalidID is returned when text does not parse as a UUID.
	ErrInvalidID = errors.New("invalid UUID")
)

const (
	adjectiveOffset = 0
	pokemonOffset   = 8
)

var (
	adjectiveIndex = indexOf(adjectives[:])
	pokemonIndex   = indexOf(pokemons[:])
)

func indexOf(table []string) map[string]int {
	m := make(map[string]int, len(table))
	for i, s := range table {
		m[s] = i
	}
	return m
}

// deriveIndex multiplies the 4 bytes at offset with the 4 bytes that follow,
// pairwise, and reduces the sum modulo n. The sum is at most 4*255*255.
func deriveIndex(id [16]byte, offset, n int) int {
	sum := 0
	for i := 0; i < 4; i++ {
		sum += int(id[offset+i]) * int(id[offset+4+i])
	}
	return sum % n
}

func indices(id uuid.UUID) (adj, pok int) {
	adj = deriveIndex(id, adjectiveOffset, len(adjectives))
	pok = deriveIndex(id, pokemonOffset, len(pokemons))
	return adj, pok
}

// Encode converts a UUID into a Label. The same UUID always gives the same Label.
func Encode(id uuid.UUID) Label {
	adj, pok := indices(id)
	return Label{adj: adjectives[adj], name: pokemons[pok]}
}

// EncodeString parses s as a UUID and encodes it.
func EncodeString(s string) (Label, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Label{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return Encode(id), nil
}

// Adjectives returns a copy of the adjective table.
func Adjectives() []string {
	out := make([]string, len(adjectives))
	copy(out, adjectives[:])
	return out
}

// Pokemons returns a copy of the pokémon table.
func Pokemons() []string {
	out := make([]string, len(pokemons))
	copy(out, pokemons[:])
	return out
}

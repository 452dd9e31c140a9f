package faction

import (
	"errors"
	"fmt"
	"strings"
)

// RelationLevel is the qualitative standing between two factions.
type RelationLevel uint8

const (
	Hostile RelationLevel = iota
	Unfriendly
	NeutralRelation
	Friendly
	Allied
)

var relationNames = [...]string{"Hostile", "Unfriendly", "Neutral", "Friendly", "Allied"}

// Modifier returns the numeric weight of the level, from -2 (Hostile) to +2 (Allied).
func (l RelationLevel) Modifier() int {
	return int(l) - int(NeutralRelation)
}

func (l RelationLevel) String() string {
	if int(l) < len(relationNames) {
		return relationNames[l]
	}
	return fmt.Sprintf("RelationLevel(%d)", uint8(l))
}

// LevelFromModifier maps a modifier back to a level, clamping to [-2, +2].
func LevelFromModifier(m int) RelationLevel {
	m = max(-2, min(2, m))
	return RelationLevel(m + int(NeutralRelation))
}

// ParseRelationLevel resolves a level name such as "hostile" or "Allied".
func ParseRelationLevel(s string) (RelationLevel, error) {
	for i, name := range relationNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return RelationLevel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown relation level %q", s)
}

// ErrSelfRelation is returned when a faction is related to itself.
// Self pairs are Allied by convention and never stored.
var ErrSelfRelation = errors.New("a faction cannot hold a relation with itself")

type pair struct {
	a, b Faction
}

// newPair orders the two factions so (a, b) and (b, a) share a key.
func newPair(a, b Faction) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

// Relations maps unordered pairs of distinct factions to a RelationLevel.
// It is built once at startup and only read afterwards.
type Relations struct {
	table map[pair]RelationLevel
}

// NewRelations returns an empty table.
func NewRelations() *Relations {
	return &Relations{table: make(map[pair]RelationLevel)}
}

// DefaultRelations builds the lore relation table from the embedded catalog.
func DefaultRelations() *Relations {
	r := NewRelations()
	for _, entry := range catalog.relations {
		a, okA := Parse(entry.A)
		b, okB := Parse(entry.B)
		level, err := ParseRelationLevel(entry.Level)
		if !okA || !okB || err != nil {
			continue
		}
		_ = r.Set(a, b, level)
	}
	return r
}

// Set records the relation for the unordered pair {a, b}.
func (r *Relations) Set(a, b Faction, level RelationLevel) error {
	if a == b {
		return ErrSelfRelation
	}
	if !a.Valid() || !b.Valid() {
		return fmt.Errorf("invalid faction pair (%d, %d)", a, b)
	}
	r.table[newPair(a, b)] = level
	return nil
}

// RelationOf returns the standing between a and b. A faction is always Allied
// with itself; pairs missing from the table default to Neutral.
func (r *Relations) RelationOf(a, b Faction) RelationLevel {
	if a == b {
		return Allied
	}
	if r == nil {
		return NeutralRelation
	}
	if level, ok := r.table[pair{a: a, b: b}]; ok {
		return level
	}
	if level, ok := r.table[pair{a: b, b: a}]; ok {
		return level
	}
	return NeutralRelation
}

// Len returns the number of stored pairs.
func (r *Relations) Len() int {
	return len(r.table)
}

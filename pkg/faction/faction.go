package faction

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Faction identifies one of the powers of the Dark Rift.
type Faction uint8

const (
	Cosmicons  Faction = iota // Order and authority, descendants of spiral beings
	Spirats                   // Anarchic space pirates
	Webes                     // Liberated AI beings
	Celestials                // Ancient entities maintaining balance
	Spades                    // Darker forces
	Archs                     // Ancient conquerors of the cosmos
	Neutral                   // Independent traders, refugees, etc.
)

// All lists every faction in declaration order.
var All = []Faction{Cosmicons, Spirats, Webes, Celestials, Spades, Archs, Neutral}

// Major lists the aligned factions, excluding the Neutral catch-all.
var Major = []Faction{Cosmicons, Spirats, Webes, Celestials, Spades, Archs}

// Alignment is the lore tag describing a faction's stance towards the spiral.
type Alignment string

const (
	AlignmentSpiral     Alignment = "spiral"     // Infinite potential, willpower, free will
	AlignmentAntispiral Alignment = "antispiral" // Finite but powerful, order over chaos
	AlignmentNeutral    Alignment = "neutral"
)

// Valid reports whether f is a declared faction.
func (f Faction) Valid() bool {
	return f <= Neutral
}

// Key returns the catalog key, e.g. "cosmicons".
func (f Faction) Key() string {
	return f.meta().Key
}

// Name returns the display name.
func (f Faction) Name() string {
	return f.meta().Name
}

// Description returns the lore blurb for the faction.
func (f Faction) Description() string {
	return f.meta().Description
}

// Color returns the faction's hex color tag, e.g. "#3366cc".
func (f Faction) Color() string {
	return f.meta().Color
}

// Alignment returns the faction's spiral alignment.
func (f Faction) Alignment() Alignment {
	return f.meta().Alignment
}

func (f Faction) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Faction(%d)", uint8(f))
	}
	return f.Name()
}

func (f Faction) meta() Metadata {
	if !f.Valid() {
		return Metadata{Name: "Unknown", Alignment: AlignmentNeutral}
	}
	return catalog.factions[f]
}

// Parse resolves a faction from its key or display name, ignoring case.
// "Independent" and "neutral" both resolve to Neutral.
func Parse(s string) (Faction, bool) {
	folded := cases.Fold().String(strings.TrimSpace(s))
	if folded == "" {
		return 0, false
	}
	for _, f := range All {
		m := catalog.factions[f]
		if folded == cases.Fold().String(m.Key) || folded == cases.Fold().String(m.Name) {
			return f, true
		}
	}
	return 0, false
}

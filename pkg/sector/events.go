package sector

import (
	"fmt"
	"math/rand/v2"

	"github.com/jwebster45206/star-drifter/pkg/faction"
)

// EventType is the kind of predefined event attached to a sector.
type EventType uint8

const (
	EventEncounter EventType = iota
	EventDiscovery
	EventHazard
	EventOpportunity
	EventStory
)

func (t EventType) String() string {
	switch t {
	case EventEncounter:
		return "encounter"
	case EventDiscovery:
		return "discovery"
	case EventHazard:
		return "hazard"
	case EventOpportunity:
		return "opportunity"
	case EventStory:
		return "story"
	default:
		return "unknown"
	}
}

// SectorEvent is a predefined encounter seed attached at generation time.
// It becomes a full encounter when the player arrives.
type SectorEvent struct {
	Type        EventType
	Description string
	Faction     *faction.Faction // nil when no faction is involved
}

// Chances used when attaching predefined events.
const (
	distressAssistChance = 0.7
	patrolChance         = 0.3
)

// AttachEvents returns the predefined events for a new sector of type t.
func AttachEvents(t SectorType, rng *rand.Rand) []SectorEvent {
	switch t {
	case Combat:
		f, class := faction.RollEncounter(rng)
		return []SectorEvent{{
			Type:        EventEncounter,
			Description: fmt.Sprintf("A %s %s ship blocks your path!", f.Name(), class),
			Faction:     &f,
		}}

	case Distress:
		if chance(rng, distressAssistChance) {
			return []SectorEvent{{
				Type:        EventOpportunity,
				Description: "A damaged ship requests assistance.",
			}}
		}
		pirates := faction.Spirats
		return []SectorEvent{{
			Type:        EventHazard,
			Description: "The distress signal is a trap!",
			Faction:     &pirates,
		}}

	case AetheriumField:
		return []SectorEvent{{
			Type:        EventDiscovery,
			Description: "Rare Aetherium crystals detected! Mining could be profitable but dangerous.",
		}}

	case CelestialSite:
		celestials := faction.Celestials
		return []SectorEvent{{
			Type:        EventStory,
			Description: "Ancient Celestial ruins pulse with mysterious energy.",
			Faction:     &celestials,
		}}

	default:
		if chance(rng, patrolChance) {
			f, _ := faction.RollEncounter(rng)
			return []SectorEvent{{
				Type:        EventEncounter,
				Description: fmt.Sprintf("You encounter a %s patrol.", f.Name()),
				Faction:     &f,
			}}
		}
		return nil
	}
}

func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

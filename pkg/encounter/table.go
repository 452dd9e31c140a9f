package encounter

import (
	"fmt"
	"math/rand/v2"

	"github.com/jwebster45206/star-drifter/pkg/crew"
	"github.com/jwebster45206/star-drifter/pkg/faction"
	"github.com/jwebster45206/star-drifter/pkg/sector"
)

// Select builds the encounter for an arrival at s. A sector with predefined
// events uses one of them, chosen uniformly; any other sector rolls a
// fallback encounter.
func Select(s *sector.Sector, rng *rand.Rand) *Encounter {
	if len(s.Events) > 0 {
		ev := s.Events[rng.IntN(len(s.Events))]
		return FromSectorEvent(ev, s.DangerLevel)
	}
	return Fallback(s.DangerLevel, rng)
}

// FromSectorEvent expands a predefined sector event into a full encounter.
func FromSectorEvent(ev sector.SectorEvent, danger int) *Encounter {
	switch ev.Type {
	case sector.EventEncounter:
		f := factionOr(ev.Faction, faction.Spirats)
		return &Encounter{
			Kind:        KindCombat,
			Title:       f.Name() + " Encounter",
			Description: ev.Description,
			Faction:     &f,
			Choices: []Choice{
				{Text: "Engage in combat", Outcome: Combat{Faction: f, Difficulty: danger}},
				{
					Text:         "Attempt to negotiate",
					Requirements: []Requirement{CrewSkill{Skill: crew.Diplomacy, Level: 2}},
					Outcome:      FactionChange{Faction: f, Delta: 1},
				},
				{
					Text:         "Try to escape",
					Requirements: []Requirement{FuelAtLeast{Amount: 2}},
					Outcome:      Loss{Fuel: 1},
				},
				{Text: "Ignore and continue", Outcome: Continue{}},
			},
		}

	case sector.EventDiscovery:
		return &Encounter{
			Kind:        KindDiscovery,
			Title:       "Discovery",
			Description: ev.Description,
			Faction:     ev.Faction,
			Choices: []Choice{
				{Text: "Investigate carefully", Outcome: Reward{Scrap: 10 + danger*5}},
				{Text: "Quick salvage and leave", Outcome: Reward{Scrap: 5}},
				{Text: "Ignore and continue", Outcome: Continue{}},
			},
		}

	case sector.EventOpportunity:
		return &Encounter{
			Kind:        KindDiplomacy,
			Title:       "Distress Call",
			Description: ev.Description,
			Choices: []Choice{
				{
					Text:         "Offer assistance",
					Requirements: []Requirement{ScrapAtLeast{Amount: 5}},
					Outcome:      Reward{Fuel: 2, Crew: "Grateful Survivor"},
				},
				{Text: "Demand payment first", Outcome: Reward{Scrap: 15}},
				{Text: "Ignore the distress call", Outcome: Continue{}},
			},
		}

	case sector.EventHazard:
		return &Encounter{
			Kind:        KindHazard,
			Title:       "Space Hazard",
			Description: ev.Description,
			Choices: []Choice{
				{
					Text:         "Navigate carefully",
					Requirements: []Requirement{CrewSkill{Skill: crew.Piloting, Level: 2}},
					Outcome:      Loss{Fuel: 1},
				},
				{Text: "Push through quickly", Outcome: Loss{Fuel: 0.5, HullDamage: 5}},
				{
					Text:         "Find alternate route",
					Requirements: []Requirement{FuelAtLeast{Amount: 3}},
					Outcome:      Loss{Fuel: 2},
				},
				{Text: "Avoid the hazard", Outcome: Continue{}},
			},
		}

	default: // sector.EventStory
		f := factionOr(ev.Faction, faction.Celestials)
		return &Encounter{
			Kind:        KindStory,
			Title:       f.Name() + " Artifact",
			Description: ev.Description,
			Faction:     &f,
			Choices: []Choice{
				{
					Text:         "Study the ancient technology",
					Requirements: []Requirement{CrewSkill{Skill: crew.Science, Level: 3}},
					Outcome: Discovery{
						Item:        "Ancient Knowledge",
						Description: "Your crew gains insight into advanced technologies.",
					},
				},
				{Text: "Salvage what you can", Outcome: Reward{Scrap: 20}},
				{Text: "Leave it undisturbed", Outcome: FactionChange{Faction: f, Delta: 2}},
			},
		}
	}
}

// Fallback rolls one of the generic encounters for a sector without
// predefined events. Rewards scale with danger.
func Fallback(danger int, rng *rand.Rand) *Encounter {
	switch roll := rng.IntN(100); {
	case roll <= 30:
		return merchant()
	case roll <= 50:
		return anomaly(danger)
	case roll <= 70:
		return derelict(danger)
	case roll <= 85:
		return pirates(danger)
	default:
		return patrol(faction.RandomMajor(rng), danger)
	}
}

func merchant() *Encounter {
	neutral := faction.Neutral
	return &Encounter{
		Kind:        KindTrade,
		Title:       "Traveling Merchant",
		Description: "A merchant ship hails you, offering to trade supplies.",
		Faction:     &neutral,
		Choices: []Choice{
			{
				Text:         "Trade scrap for fuel",
				Requirements: []Requirement{ScrapAtLeast{Amount: 10}},
				Outcome:      Reward{Scrap: -10, Fuel: 3},
			},
			{
				Text:         "Trade fuel for scrap",
				Requirements: []Requirement{FuelAtLeast{Amount: 2}},
				Outcome:      Reward{Scrap: 15, Fuel: -2},
			},
			{Text: "Decline and continue", Outcome: Continue{}},
		},
	}
}

func anomaly(danger int) *Encounter {
	return &Encounter{
		Kind:        KindAnomaly,
		Title:       "Cosmic Anomaly",
		Description: "Your sensors detect a strange energy signature ahead.",
		Choices: []Choice{
			{Text: "Investigate the anomaly", Outcome: Reward{Scrap: danger * 8}},
			{
				Text:         "Scan from a safe distance",
				Requirements: []Requirement{CrewSkill{Skill: crew.Sensors, Level: 2}},
				Outcome:      Reward{Scrap: danger * 3},
			},
			{Text: "Ignore and continue", Outcome: Continue{}},
		},
	}
}

func derelict(danger int) *Encounter {
	return &Encounter{
		Kind:        KindDiscovery,
		Title:       "Derelict Ship",
		Description: "You discover the wreckage of an ancient vessel drifting in space.",
		Choices: []Choice{
			{Text: "Board and explore", Outcome: Reward{Scrap: danger * 6, Fuel: 1}},
			{Text: "Salvage from outside", Outcome: Reward{Scrap: danger * 3}},
			{Text: "Leave it alone", Outcome: Continue{}},
		},
	}
}

func pirates(danger int) *Encounter {
	spirats := faction.Spirats
	tribute := danger * 5
	return &Encounter{
		Kind:        KindCombat,
		Title:       "Spirat Raiders",
		Description: "Spirat pirates emerge from an asteroid field, demanding tribute!",
		Faction:     &spirats,
		Choices: []Choice{
			{Text: "Fight the pirates", Outcome: Combat{Faction: spirats, Difficulty: danger + 1}},
			{
				Text:         "Pay tribute",
				Requirements: []Requirement{ScrapAtLeast{Amount: tribute}},
				Outcome:      Loss{Scrap: tribute},
			},
			{
				Text: "Try to outrun them",
				Requirements: []Requirement{
					FuelAtLeast{Amount: 3},
					CrewSkill{Skill: crew.Engines, Level: 2},
				},
				Outcome: Loss{Fuel: 2, HullDamage: 2},
			},
			{Text: "Ignore and continue", Outcome: Continue{}},
		},
	}
}

func patrol(f faction.Faction, danger int) *Encounter {
	return &Encounter{
		Kind:        KindDiplomacy,
		Title:       f.Name() + " Patrol",
		Description: fmt.Sprintf("A %s patrol ship approaches your vessel.", f.Name()),
		Faction:     &f,
		Choices: []Choice{
			{Text: "Hail them peacefully", Outcome: FactionChange{Faction: f, Delta: 1}},
			{Text: "Prepare for combat", Outcome: Combat{Faction: f, Difficulty: danger}},
			{
				Text:         "Try to avoid them",
				Requirements: []Requirement{FuelAtLeast{Amount: 2}},
				Outcome:      Loss{Fuel: 1.5},
			},
			{Text: "Ignore and continue", Outcome: Continue{}},
		},
	}
}

func factionOr(f *faction.Faction, def faction.Faction) faction.Faction {
	if f != nil {
		return *f
	}
	return def
}

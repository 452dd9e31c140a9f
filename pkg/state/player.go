package state

import (
	"github.com/jwebster45206/star-drifter/pkg/crew"
	"github.com/jwebster45206/star-drifter/pkg/faction"
)

// Player groups everything an encounter outcome can change: resources,
// the crew roster and faction standing.
type Player struct {
	*Resources
	Crew     *crew.Roster
	Standing *faction.Standing
}

// NewPlayer creates a player with the default crew.
func NewPlayer(fuel float64, scrap int) (*Player, error) {
	roster, err := crew.DefaultRoster()
	if err != nil {
		return nil, err
	}
	return &Player{
		Resources: NewResources(fuel, scrap),
		Crew:      roster,
		Standing:  faction.NewStanding(),
	}, nil
}

// SkillLevel returns the crew's best level in skill.
func (p *Player) SkillLevel(skill string) int {
	return p.Crew.SkillLevel(skill)
}

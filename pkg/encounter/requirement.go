package encounter

import "fmt"

// ResourceView exposes the player state that requirements are checked against.
// It lets this package gate choices without importing the session state.
type ResourceView interface {
	Fuel() float64
	Scrap() int
	// SkillLevel returns the best level any crew member has in skill, or 0.
	SkillLevel(skill string) int
}

// Requirement is a precondition on a choice. The set of variants is closed:
// FuelAtLeast, ScrapAtLeast and CrewSkill.
type Requirement interface {
	// Met reports whether the requirement holds. It never mutates r.
	Met(r ResourceView) bool
	String() string
	requirement()
}

// FuelAtLeast holds when fuel >= Amount.
type FuelAtLeast struct {
	Amount float64
}

func (q FuelAtLeast) Met(r ResourceView) bool { return r.Fuel() >= q.Amount }
func (q FuelAtLeast) String() string          { return fmt.Sprintf("%.1f fuel", q.Amount) }
func (FuelAtLeast) requirement()              {}

// ScrapAtLeast holds when scrap >= Amount.
type ScrapAtLeast struct {
	Amount int
}

func (q ScrapAtLeast) Met(r ResourceView) bool { return r.Scrap() >= q.Amount }
func (q ScrapAtLeast) String() string          { return fmt.Sprintf("%d scrap", q.Amount) }
func (ScrapAtLeast) requirement()              {}

// CrewSkill holds when some crew member has Skill at Level or higher.
type CrewSkill struct {
	Skill string
	Level int
}

func (q CrewSkill) Met(r ResourceView) bool { return r.SkillLevel(q.Skill) >= q.Level }
func (q CrewSkill) String() string          { return fmt.Sprintf("%s %d", q.Skill, q.Level) }
func (CrewSkill) requirement()              {}

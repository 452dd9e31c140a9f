package crew

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/star-drifter/pkg/faction"
)

// Skill names used by crew attributes and encounter requirements.
const (
	Piloting  = "piloting"
	Engines   = "engines"
	Weapons   = "weapons"
	Shields   = "shields"
	Sensors   = "sensors"
	Science   = "science"
	Diplomacy = "diplomacy"
)

// Skills lists every skill a crew member can hold.
var Skills = []string{Piloting, Engines, Weapons, Shields, Sensors, Science, Diplomacy}

// Defaults for crew members that do not set them.
const (
	DefaultMaxHP  = 100
	DefaultAC     = 10
	BaselineSkill = 1
)

// MemberSpec is the serializable description of a crew member.
type MemberSpec struct {
	Name    string          `json:"name"`
	Faction faction.Faction `json:"faction"`
	Skills  map[string]int  `json:"skills,omitempty"`
	HP      int             `json:"hp,omitempty"`
	MaxHP   int             `json:"max_hp,omitempty"`
	AC      int             `json:"ac,omitempty"`
}

// Member is the runtime form of a crew member.
type Member struct {
	Spec  *MemberSpec
	Actor *d20.Actor // built from Spec
}

// NewMemberFromSpec builds a crew member and its d20 actor. Skills are stored
// as actor attributes keyed by lower-case skill name.
func NewMemberFromSpec(spec *MemberSpec) (*Member, error) {
	if spec == nil {
		return nil, fmt.Errorf("spec cannot be nil")
	}
	if strings.TrimSpace(spec.Name) == "" {
		return nil, fmt.Errorf("crew member needs a name")
	}

	maxHP := spec.MaxHP
	if maxHP <= 0 {
		maxHP = DefaultMaxHP
	}
	ac := spec.AC
	if ac <= 0 {
		ac = DefaultAC
	}

	attrs := make(map[string]int, len(spec.Skills))
	for skill, level := range spec.Skills {
		attrs[strings.ToLower(skill)] = level
	}

	actor, err := d20.NewActor(spec.Name).
		WithHP(maxHP).
		WithAC(ac).
		WithAttributes(attrs).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}

	if spec.HP > 0 && spec.HP != maxHP {
		if err := actor.SetHP(spec.HP); err != nil {
			return nil, fmt.Errorf("failed to set HP: %w", err)
		}
	}

	return &Member{Spec: spec, Actor: actor}, nil
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.Spec.Name
}

// Skill returns the member's level in skill, or 0 if untrained.
func (m *Member) Skill(skill string) int {
	if v, ok := m.Actor.Attribute(strings.ToLower(skill)); ok {
		return v
	}
	return 0
}

// Recruit builds a new crew member with baseline skills.
func Recruit(name string, f faction.Faction) (*Member, error) {
	skills := make(map[string]int, len(Skills))
	for _, s := range Skills {
		skills[s] = BaselineSkill
	}
	return NewMemberFromSpec(&MemberSpec{Name: name, Faction: f, Skills: skills})
}

// CaptainSpec describes the starting captain.
func CaptainSpec() *MemberSpec {
	return &MemberSpec{
		Name:    "Captain Nova",
		Faction: faction.Cosmicons,
		Skills: map[string]int{
			Piloting: 2,
			Engines:  1,
			Weapons:  2,
			Shields:  1,
		},
	}
}

package encounter

import (
	"github.com/jwebster45206/star-drifter/pkg/faction"
)

// Kind is the display category of an encounter.
type Kind uint8

const (
	KindCombat Kind = iota
	KindDiplomacy
	KindDiscovery
	KindHazard
	KindTrade
	KindStory
	KindAnomaly
)

func (k Kind) String() string {
	switch k {
	case KindCombat:
		return "combat"
	case KindDiplomacy:
		return "diplomacy"
	case KindDiscovery:
		return "discovery"
	case KindHazard:
		return "hazard"
	case KindTrade:
		return "trade"
	case KindStory:
		return "story"
	case KindAnomaly:
		return "anomaly"
	default:
		return "unknown"
	}
}

// MaxChoices is the most choices an encounter offers.
const MaxChoices = 4

// Encounter is a titled situation with one to MaxChoices choices.
type Encounter struct {
	Kind        Kind
	Title       string
	Description string
	Faction     *faction.Faction // nil when no faction is involved
	Choices     []Choice
}

// Choice is one selectable option. Every requirement must hold for it to be chosen.
type Choice struct {
	Text         string
	Requirements []Requirement
	Outcome      Outcome
}

// Applicable reports whether every requirement of the choice holds for r.
func (c Choice) Applicable(r ResourceView) bool {
	for _, req := range c.Requirements {
		if !req.Met(r) {
			return false
		}
	}
	return true
}

// Unmet returns the requirements that do not hold for r.
func (c Choice) Unmet(r ResourceView) []Requirement {
	var unmet []Requirement
	for _, req := range c.Requirements {
		if !req.Met(r) {
			unmet = append(unmet, req)
		}
	}
	return unmet
}

// View is the read-only snapshot of an encounter used for display.
type View struct {
	Kind        Kind
	Title       string
	Description string
	Choices     []ChoiceView
}

// ChoiceView is the display form of a choice.
type ChoiceView struct {
	Text         string
	Requirements []string
}

// View copies the encounter's display fields.
func (e *Encounter) View() View {
	v := View{
		Kind:        e.Kind,
		Title:       e.Title,
		Description: e.Description,
		Choices:     make([]ChoiceView, 0, len(e.Choices)),
	}
	for _, c := range e.Choices {
		cv := ChoiceView{Text: c.Text}
		for _, req := range c.Requirements {
			cv.Requirements = append(cv.Requirements, req.String())
		}
		v.Choices = append(v.Choices, cv)
	}
	return v
}

// ChoiceTexts returns the choice texts in order.
func (v View) ChoiceTexts() []string {
	texts := make([]string, len(v.Choices))
	for i, c := range v.Choices {
		texts[i] = c.Text
	}
	return texts
}

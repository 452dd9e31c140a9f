package encounter

import (
	"fmt"

	"github.com/jwebster45206/star-drifter/pkg/faction"
)

// Outcome is the effect of a chosen option. Callers dispatch on the variant
// through Accept, so a new variant fails to compile until every visitor
// handles it.
type Outcome interface {
	Accept(v OutcomeVisitor)
}

// OutcomeVisitor handles each outcome variant.
type OutcomeVisitor interface {
	VisitCombat(Combat)
	VisitReward(Reward)
	VisitLoss(Loss)
	VisitFactionChange(FactionChange)
	VisitDiscovery(Discovery)
	VisitContinue(Continue)
}

// Combat starts a fight that an external combat system resolves.
type Combat struct {
	Faction    faction.Faction
	Difficulty int
}

// Reward adds the deltas to player resources. Negative deltas are allowed
// for trades. Crew, when set, names a new crew member.
type Reward struct {
	Scrap int
	Fuel  float64
	Crew  string
}

// Loss subtracts the amounts from player resources.
type Loss struct {
	Scrap      int
	Fuel       float64
	HullDamage float64
}

// FactionChange shifts the player's standing with a faction.
type FactionChange struct {
	Faction faction.Faction
	Delta   int
}

// Discovery records a found item.
type Discovery struct {
	Item        string
	Description string
}

// Continue does nothing.
type Continue struct{}

func (o Combat) Accept(v OutcomeVisitor)        { v.VisitCombat(o) }
func (o Reward) Accept(v OutcomeVisitor)        { v.VisitReward(o) }
func (o Loss) Accept(v OutcomeVisitor)          { v.VisitLoss(o) }
func (o FactionChange) Accept(v OutcomeVisitor) { v.VisitFactionChange(o) }
func (o Discovery) Accept(v OutcomeVisitor)     { v.VisitDiscovery(o) }
func (o Continue) Accept(v OutcomeVisitor)      { v.VisitContinue(o) }

// Describe returns a one-line summary of the outcome.
func Describe(o Outcome) string {
	var d describer
	o.Accept(&d)
	return d.text
}

type describer struct {
	text string
}

func (d *describer) VisitCombat(o Combat) {
	d.text = fmt.Sprintf("Combat initiated with %s (difficulty: %d)", o.Faction.Name(), o.Difficulty)
}

func (d *describer) VisitReward(o Reward) {
	d.text = fmt.Sprintf("Scrap %+d, fuel %+.1f", o.Scrap, o.Fuel)
	if o.Crew != "" {
		d.text += fmt.Sprintf(", %s joins the crew", o.Crew)
	}
}

func (d *describer) VisitLoss(o Loss) {
	d.text = fmt.Sprintf("Scrap -%d, fuel -%.1f", o.Scrap, o.Fuel)
	if o.HullDamage > 0 {
		d.text += fmt.Sprintf(", hull took %.1f damage", o.HullDamage)
	}
}

func (d *describer) VisitFactionChange(o FactionChange) {
	d.text = fmt.Sprintf("Standing with %s changed by %+d", o.Faction.Name(), o.Delta)
}

func (d *describer) VisitDiscovery(o Discovery) {
	d.text = fmt.Sprintf("Discovery: %s - %s", o.Item, o.Description)
}

func (d *describer) VisitContinue(Continue) {
	d.text = "You continue on your journey..."
}

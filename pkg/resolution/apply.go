package resolution

import (
	"github.com/jwebster45206/star-drifter/pkg/crew"
	"github.com/jwebster45206/star-drifter/pkg/encounter"
	"github.com/jwebster45206/star-drifter/pkg/faction"
	"github.com/jwebster45206/star-drifter/pkg/notify"
)

// applier applies one outcome to the machine's player and records the
// notifications it produces.
type applier struct {
	m        *Machine
	sectorID int
}

func (a *applier) record(kind notify.Kind, o encounter.Outcome, data map[string]any) {
	a.m.recorder.Record(notify.Notification{
		Kind:     kind,
		Message:  encounter.Describe(o),
		SectorID: a.sectorID,
		Data:     data,
	})
}

func (a *applier) VisitCombat(o encounter.Combat) {
	a.record(notify.KindCombatStarted, o, map[string]any{
		"faction":    o.Faction.Key(),
		"difficulty": o.Difficulty,
	})
}

func (a *applier) VisitReward(o encounter.Reward) {
	p := a.m.player
	p.AddScrap(o.Scrap)
	p.AddFuel(o.Fuel)

	if o.Crew == "" {
		return
	}
	member, err := crew.Recruit(o.Crew, faction.Neutral)
	if err != nil {
		a.m.logger.Warn("Failed to recruit crew member", "name", o.Crew, "error", err)
		return
	}
	p.Crew.Add(member)
	a.record(notify.KindCrewJoined, o, map[string]any{
		"name":      o.Crew,
		"crew_size": p.Crew.Len(),
	})
}

func (a *applier) VisitLoss(o encounter.Loss) {
	p := a.m.player
	p.AddScrap(-o.Scrap)
	p.AddFuel(-o.Fuel)

	if o.HullDamage > 0 {
		a.record(notify.KindHullDamaged, o, map[string]any{
			"damage": o.HullDamage,
		})
	}
}

func (a *applier) VisitFactionChange(o encounter.FactionChange) {
	standing := a.m.player.Standing.Adjust(o.Faction, o.Delta)
	a.record(notify.KindFactionChanged, o, map[string]any{
		"faction":  o.Faction.Key(),
		"delta":    o.Delta,
		"standing": standing,
		"level":    a.m.player.Standing.Level(o.Faction).String(),
	})
}

func (a *applier) VisitDiscovery(o encounter.Discovery) {
	a.record(notify.KindDiscovery, o, map[string]any{
		"item": o.Item,
	})
}

func (a *applier) VisitContinue(encounter.Continue) {}

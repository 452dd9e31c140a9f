package resolution

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/jwebster45206/star-drifter/pkg/crew"
	"github.com/jwebster45206/star-drifter/pkg/encounter"
	"github.com/jwebster45206/star-drifter/pkg/faction"
	"github.com/jwebster45206/star-drifter/pkg/notify"
	"github.com/jwebster45206/star-drifter/pkg/sector"
	"github.com/jwebster45206/star-drifter/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T, fuel float64, scrap int) (*Machine, *state.Player, *notify.Outbox) {
	t.Helper()
	player, err := state.NewPlayer(fuel, scrap)
	require.NoError(t, err)

	outbox := notify.NewOutbox()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	m := NewMachine(player, rand.New(rand.NewPCG(1, 1)), outbox, logger)
	return m, player, outbox
}

func single(outcome encounter.Outcome, reqs ...encounter.Requirement) *encounter.Encounter {
	return &encounter.Encounter{
		Title: "Test",
		Choices: []encounter.Choice{
			{Text: "Do it", Requirements: reqs, Outcome: outcome},
			{Text: "Leave", Outcome: encounter.Continue{}},
		},
	}
}

func TestChoose_NoActiveEncounter(t *testing.T) {
	m, _, _ := newTestMachine(t, 50, 15)

	_, err := m.Choose(0)
	assert.ErrorIs(t, err, ErrNoActiveEncounter)
	assert.Equal(t, Idle, m.State())
}

func TestChoose_InvalidIndex(t *testing.T) {
	m, player, _ := newTestMachine(t, 50, 15)
	require.True(t, m.Activate(single(encounter.Reward{Scrap: 5}), 1))

	for _, idx := range []int{-1, 2, 9} {
		_, err := m.Choose(idx)
		assert.ErrorIs(t, err, ErrInvalidChoice)
	}
	assert.Equal(t, Active, m.State())
	assert.Equal(t, 15, player.Scrap())
}

func TestChoose_FuelGating(t *testing.T) {
	m, player, outbox := newTestMachine(t, 2.0, 15)
	require.True(t, m.Activate(single(encounter.Loss{Fuel: 2}, encounter.FuelAtLeast{Amount: 3.0}), 4))

	_, err := m.Choose(0)
	require.ErrorIs(t, err, ErrRequirementNotMet)
	assert.Equal(t, Active, m.State())
	assert.Equal(t, 2.0, player.Fuel())
	assert.Equal(t, 15, player.Scrap())

	rejected := outbox.Drain()
	require.Len(t, rejected, 1)
	assert.Equal(t, notify.KindChoiceRejected, rejected[0].Kind)
	assert.Equal(t, 4, rejected[0].SectorID)

	player.AddFuel(1.0)
	outcome, err := m.Choose(0)
	require.NoError(t, err)
	assert.Equal(t, encounter.Loss{Fuel: 2}, outcome)
	assert.Equal(t, Idle, m.State())
	assert.Equal(t, 1.0, player.Fuel())

	_, ok := m.Active()
	assert.False(t, ok)
}

func TestChoose_CrewSkillGating(t *testing.T) {
	m, player, _ := newTestMachine(t, 50, 15)
	require.True(t, m.Activate(single(encounter.Continue{}, encounter.CrewSkill{Skill: crew.Diplomacy, Level: 1}), 1))

	_, err := m.Choose(0)
	require.ErrorIs(t, err, ErrRequirementNotMet)

	survivor, err := crew.Recruit("Ambassador", faction.Webes)
	require.NoError(t, err)
	player.Crew.Add(survivor)

	_, err = m.Choose(0)
	assert.NoError(t, err)
}

func TestChoose_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		outcome   encounter.Outcome
		wantFuel  float64
		wantScrap int
	}{
		{"loss larger than scrap", encounter.Loss{Scrap: 999}, 50, 0},
		{"loss larger than fuel", encounter.Loss{Fuel: 80}, 0, 15},
		{"negative reward", encounter.Reward{Scrap: -40, Fuel: -60}, 0, 0},
		{"reward", encounter.Reward{Scrap: 20, Fuel: 2.5}, 52.5, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, player, _ := newTestMachine(t, 50, 15)
			require.True(t, m.Activate(single(tt.outcome), 1))

			_, err := m.Choose(0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFuel, player.Fuel())
			assert.Equal(t, tt.wantScrap, player.Scrap())
		})
	}
}

func TestChoose_Notifications(t *testing.T) {
	tests := []struct {
		name     string
		outcome  encounter.Outcome
		wantKind []notify.Kind
	}{
		{"combat", encounter.Combat{Faction: faction.Spirats, Difficulty: 3}, []notify.Kind{notify.KindCombatStarted}},
		{"hull damage", encounter.Loss{Fuel: 0.5, HullDamage: 5}, []notify.Kind{notify.KindHullDamaged}},
		{"loss without damage", encounter.Loss{Fuel: 1}, nil},
		{"crew", encounter.Reward{Fuel: 2, Crew: "Grateful Survivor"}, []notify.Kind{notify.KindCrewJoined}},
		{"plain reward", encounter.Reward{Scrap: 5}, nil},
		{"faction", encounter.FactionChange{Faction: faction.Webes, Delta: 2}, []notify.Kind{notify.KindFactionChanged}},
		{"discovery", encounter.Discovery{Item: "Ancient Knowledge"}, []notify.Kind{notify.KindDiscovery}},
		{"continue", encounter.Continue{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, outbox := newTestMachine(t, 50, 15)
			require.True(t, m.Activate(single(tt.outcome), 2))

			_, err := m.Choose(0)
			require.NoError(t, err)

			var kinds []notify.Kind
			for _, n := range outbox.Drain() {
				kinds = append(kinds, n.Kind)
				assert.Equal(t, 2, n.SectorID)
				assert.NotEmpty(t, n.Message)
			}
			assert.Equal(t, tt.wantKind, kinds)
		})
	}
}

func TestChoose_AppliesCrewAndStanding(t *testing.T) {
	m, player, _ := newTestMachine(t, 50, 15)

	require.True(t, m.Activate(single(encounter.Reward{Fuel: 2, Crew: "Grateful Survivor"}), 1))
	_, err := m.Choose(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Captain Nova", "Grateful Survivor"}, player.Crew.Names())

	require.True(t, m.Activate(single(encounter.FactionChange{Faction: faction.Celestials, Delta: 2}), 1))
	_, err = m.Choose(0)
	require.NoError(t, err)
	assert.Equal(t, 2, player.Standing.Get(faction.Celestials))
	assert.Equal(t, faction.Allied, player.Standing.Level(faction.Celestials))
}

func TestChoose_AppliesOnce(t *testing.T) {
	m, player, _ := newTestMachine(t, 50, 15)
	require.True(t, m.Activate(single(encounter.Reward{Scrap: 10}), 1))

	_, err := m.Choose(0)
	require.NoError(t, err)
	_, err = m.Choose(0)
	assert.ErrorIs(t, err, ErrNoActiveEncounter)
	assert.Equal(t, 25, player.Scrap())
}

func TestTrigger_IdempotentWhileActive(t *testing.T) {
	m, player, _ := newTestMachine(t, 50, 15)
	s := &sector.Sector{ID: 3, DangerLevel: 2}

	require.True(t, m.Trigger(s))
	first, ok := m.Active()
	require.True(t, ok)

	other := &sector.Sector{ID: 4, DangerLevel: 9}
	for range 10 {
		assert.False(t, m.Trigger(other))
	}
	again, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, first, again)
	assert.Equal(t, 50.0, player.Fuel())
	assert.Equal(t, 15, player.Scrap())

	assert.False(t, m.Activate(single(encounter.Continue{}), 5))
}

func TestTrigger_UsesPredefinedEvent(t *testing.T) {
	m, _, _ := newTestMachine(t, 50, 15)
	spades := faction.Spades
	s := &sector.Sector{
		ID:          7,
		DangerLevel: 6,
		Events: []sector.SectorEvent{{
			Type:        sector.EventEncounter,
			Description: "A Spades Fighter ship blocks your path!",
			Faction:     &spades,
		}},
	}

	require.True(t, m.Trigger(s))
	v, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, "Spades Encounter", v.Title)
	assert.Equal(t, "A Spades Fighter ship blocks your path!", v.Description)
	assert.Len(t, v.Choices, 4)
}

func TestClear(t *testing.T) {
	m, _, _ := newTestMachine(t, 50, 15)
	require.True(t, m.Activate(single(encounter.Continue{}), 1))

	m.Clear()
	assert.Equal(t, Idle, m.State())
	assert.False(t, m.Activate(&encounter.Encounter{Title: "empty"}, 1), "encounters need at least one choice")
}

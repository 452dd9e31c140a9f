package game

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jwebster45206/star-drifter/internal/services/broadcast"
	"github.com/jwebster45206/star-drifter/pkg/encounter"
	"github.com/jwebster45206/star-drifter/pkg/faction"
	"github.com/jwebster45206/star-drifter/pkg/navigation"
	"github.com/jwebster45206/star-drifter/pkg/notify"
	"github.com/jwebster45206/star-drifter/pkg/resolution"
	"github.com/jwebster45206/star-drifter/pkg/sector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

func newTestSession(t *testing.T, seed uint64) *Session {
	t.Helper()
	opts := DefaultOptions()
	opts.Seed = seed
	opts.Logger = testLogger
	s, err := NewSession(opts)
	require.NoError(t, err)
	return s
}

func fourChoices() *encounter.Encounter {
	return &encounter.Encounter{
		Title: "Crossroads",
		Choices: []encounter.Choice{
			{Text: "Take scrap", Outcome: encounter.Reward{Scrap: 5}},
			{Text: "Pay fuel", Requirements: []encounter.Requirement{encounter.FuelAtLeast{Amount: 100}}, Outcome: encounter.Loss{Fuel: 1}},
			{Text: "Hail", Outcome: encounter.FactionChange{Faction: faction.Webes, Delta: 1}},
			{Text: "Leave", Outcome: encounter.Continue{}},
		},
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, 77)

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, uint64(77), s.Seed)

	res := s.Resources()
	assert.Equal(t, 50.0, res.Fuel)
	assert.Equal(t, 15, res.Scrap)
	assert.Equal(t, sector.StartID, res.CurrentSector)

	snap := s.MapSnapshot()
	assert.Equal(t, sector.StartID, snap.CurrentID)
	assert.Zero(t, snap.DistanceTraveled)

	assert.Equal(t, resolution.Idle, s.EncounterState())
	assert.Equal(t, []string{"Captain Nova"}, s.Crew())
	assert.Equal(t, faction.Allied, s.RelationOf(faction.Spades, faction.Spades))
	assert.NotEmpty(t, s.Destinations())
}

func TestNewSession_RandomSeed(t *testing.T) {
	s, err := NewSession(Options{StartFuel: 5, StartScrap: 1})
	require.NoError(t, err)
	assert.NotZero(t, s.Seed)
}

func TestNewSession_SeedReproducesMap(t *testing.T) {
	a := newTestSession(t, 1234)
	b := newTestSession(t, 1234)
	assert.Equal(t, a.MapSnapshot(), b.MapSnapshot())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAttemptTravel_Scenario(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		s := newTestSession(t, seed)
		target := s.Destinations()[0]

		arrival, err := s.AttemptTravel(target)
		require.NoError(t, err)

		res := s.Resources()
		snap := s.MapSnapshot()
		assert.Equal(t, 49.0, res.Fuel)
		assert.Equal(t, 15, res.Scrap)
		assert.Equal(t, 1, snap.DistanceTraveled)
		assert.Equal(t, target, snap.CurrentID)

		cur, ok := snap.Current()
		require.True(t, ok)
		assert.True(t, cur.Visited)

		_, active := s.ActiveEncounter()
		assert.Equal(t, arrival.EncounterStarted, active)
		assert.True(t, active, "every arrival resolves to a predefined or fallback encounter")

		pending := s.Pending()
		require.NotEmpty(t, pending)
		assert.Equal(t, notify.KindArrived, pending[0].Kind)
	}
}

func TestAttemptTravel_RejectedLeavesState(t *testing.T) {
	s := newTestSession(t, 5)
	before := s.MapSnapshot()

	_, err := s.AttemptTravel(9999)
	assert.ErrorIs(t, err, navigation.ErrNotConnected)
	assert.Equal(t, before, s.MapSnapshot())
	assert.Equal(t, 50.0, s.Resources().Fuel)

	pending := s.Drain()
	require.Len(t, pending, 1)
	assert.Equal(t, notify.KindTravelRejected, pending[0].Kind)
}

func TestRunCycle_ChoiceKeyIsNotReusedForTravel(t *testing.T) {
	s := newTestSession(t, 8)
	require.True(t, s.machine.Activate(fourChoices(), sector.StartID))

	res := s.RunCycle(Press(1))

	assert.True(t, res.ChoiceAttempted)
	require.NoError(t, res.ChoiceErr)
	assert.Equal(t, encounter.Reward{Scrap: 5}, res.Outcome)
	assert.False(t, res.TravelAttempted, "digit 1 was consumed by the choice")
	assert.Equal(t, sector.StartID, s.MapSnapshot().CurrentID)
	assert.Equal(t, 20, s.Resources().Scrap)
	assert.Equal(t, resolution.Idle, s.EncounterState())
	assert.Empty(t, s.consumed)

	// The marker only lasts one cycle.
	res = s.RunCycle(Press(1))
	assert.False(t, res.ChoiceAttempted)
	assert.True(t, res.TravelAttempted)
	require.NoError(t, res.TravelErr)
	assert.Equal(t, 1, s.MapSnapshot().DistanceTraveled)
}

func TestRunCycle_ActiveEncounterBlocksTravel(t *testing.T) {
	s := newTestSession(t, 8)
	require.True(t, s.machine.Activate(fourChoices(), sector.StartID))

	// Only 1-3 select choices, so 4 does nothing while the encounter is active.
	res := s.RunCycle(Press(4))
	assert.False(t, res.ChoiceAttempted)
	assert.False(t, res.TravelAttempted)
	assert.Equal(t, resolution.Active, s.EncounterState())

	res = s.RunCycle(Press(2))
	assert.True(t, res.ChoiceAttempted)
	assert.ErrorIs(t, res.ChoiceErr, resolution.ErrRequirementNotMet)
	assert.False(t, res.TravelAttempted)
	assert.Equal(t, resolution.Active, s.EncounterState())
	assert.Equal(t, 50.0, s.Resources().Fuel)

	res = s.RunCycle(Press(3))
	require.NoError(t, res.ChoiceErr)
	assert.Equal(t, map[faction.Faction]int{faction.Webes: 1}, s.Standing())
}

func TestRunCycle_FirstChoiceKeyWins(t *testing.T) {
	s := newTestSession(t, 8)
	require.True(t, s.machine.Activate(fourChoices(), sector.StartID))

	res := s.RunCycle(Press(3, 1))
	require.NoError(t, res.ChoiceErr)
	assert.Equal(t, encounter.Reward{Scrap: 5}, res.Outcome)
}

func TestRunCycle_NoFuel(t *testing.T) {
	s := newTestSession(t, 3)
	s.player.AddFuel(-50)

	res := s.RunCycle(Press(1))
	assert.True(t, res.TravelAttempted)
	assert.ErrorIs(t, res.TravelErr, navigation.ErrInsufficientFuel)
	assert.Equal(t, sector.StartID, s.MapSnapshot().CurrentID)
}

func TestRunCycle_NoKeys(t *testing.T) {
	s := newTestSession(t, 3)
	res := s.RunCycle(Input{})
	assert.Equal(t, CycleResult{}, res)
}

type failingSink struct {
	calls int
}

func (f *failingSink) Publish(context.Context, uuid.UUID, []notify.Notification) error {
	f.calls++
	return errors.New("redis down")
}

type memorySink struct {
	got []notify.Notification
}

func (m *memorySink) Publish(_ context.Context, _ uuid.UUID, batch []notify.Notification) error {
	m.got = append(m.got, batch...)
	return nil
}

func TestFlush(t *testing.T) {
	s := newTestSession(t, 4)
	ctx := context.Background()

	require.NoError(t, s.Flush(ctx, &failingSink{}), "nothing pending means no publish")

	_, err := s.AttemptTravel(s.Destinations()[0])
	require.NoError(t, err)
	pending := len(s.Pending())
	require.Positive(t, pending)

	failing := &failingSink{}
	assert.Error(t, s.Flush(ctx, failing))
	assert.Equal(t, 1, failing.calls)
	assert.Len(t, s.Pending(), pending, "failed batch is kept")

	mem := &memorySink{}
	require.NoError(t, s.Flush(ctx, mem))
	assert.Len(t, mem.got, pending)
	assert.Empty(t, s.Pending())
}

func TestFlush_ToRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	client, err := broadcast.NewClient(ctx, "redis://"+mr.Addr(), testLogger)
	require.NoError(t, err)
	defer client.Close()
	b := broadcast.NewBroadcaster(client, 50, testLogger)

	s := newTestSession(t, 6)
	require.True(t, s.machine.Activate(fourChoices(), sector.StartID))
	res := s.RunCycle(Press(3))
	require.NoError(t, res.ChoiceErr)

	require.NoError(t, s.Flush(ctx, b))

	recent, err := b.Recent(ctx, s.ID, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, notify.KindFactionChanged, recent[0].Kind)
}

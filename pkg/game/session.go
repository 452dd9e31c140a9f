package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/jwebster45206/star-drifter/pkg/encounter"
	"github.com/jwebster45206/star-drifter/pkg/faction"
	"github.com/jwebster45206/star-drifter/pkg/navigation"
	"github.com/jwebster45206/star-drifter/pkg/notify"
	"github.com/jwebster45206/star-drifter/pkg/resolution"
	"github.com/jwebster45206/star-drifter/pkg/sector"
	"github.com/jwebster45206/star-drifter/pkg/state"
)

// streamSalt separates the PCG stream from the seed itself.
const streamSalt = 0x9e3779b97f4a7c15

// NewRNG returns the generator a session with this seed draws from.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamSalt))
}

// Options configures a new session.
type Options struct {
	Seed       uint64 // 0 picks a random seed
	StartFuel  float64
	StartScrap int
	Logger     *slog.Logger
}

// DefaultOptions returns the standard starting resources with a random seed.
func DefaultOptions() Options {
	return Options{
		StartFuel:  state.DefaultFuel,
		StartScrap: state.DefaultScrap,
	}
}

// Session owns all state for one run: the map, the player, the encounter
// machine and pending notifications. It is not safe for concurrent use.
type Session struct {
	ID   uuid.UUID
	Seed uint64

	sectors   *sector.SectorMap
	player    *state.Player
	relations *faction.Relations
	machine   *resolution.Machine
	nav       *navigation.Controller
	outbox    *notify.Outbox
	logger    *slog.Logger

	consumed []Key
}

// NewSession generates a map and sets up the player at the starting station.
func NewSession(opts Options) (*Session, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}

	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("session_id", id.String())

	player, err := state.NewPlayer(opts.StartFuel, opts.StartScrap)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	rng := NewRNG(seed)
	sectors := sector.NewGenerator(rng, logger).Generate()
	outbox := notify.NewOutbox()
	machine := resolution.NewMachine(player, rng, outbox, logger)

	s := &Session{
		ID:        id,
		Seed:      seed,
		sectors:   sectors,
		player:    player,
		relations: faction.DefaultRelations(),
		machine:   machine,
		nav:       navigation.NewController(sectors, player.Resources, machine, logger),
		outbox:    outbox,
		logger:    logger,
	}

	logger.Info("Session started",
		"seed", seed,
		"sectors", sectors.Len(),
		"layers", len(sectors.Layers),
		"fuel", player.Fuel(),
		"scrap", player.Scrap())
	return s, nil
}

// AttemptTravel jumps to the connected sector targetID.
func (s *Session) AttemptTravel(targetID int) (navigation.Arrival, error) {
	arrival, err := s.nav.Travel(targetID)
	if err != nil {
		s.logger.Debug("Travel rejected", "target", targetID, "error", err)
		s.outbox.Record(notify.Notification{
			Kind:     notify.KindTravelRejected,
			Message:  err.Error(),
			SectorID: s.sectors.CurrentID,
			Data:     map[string]any{"target": targetID},
		})
		return arrival, err
	}

	s.outbox.Record(notify.Notification{
		Kind:     notify.KindArrived,
		Message:  fmt.Sprintf("Arrived at %s", arrival.Sector.Name),
		SectorID: arrival.To,
		Data: map[string]any{
			"from":              arrival.From,
			"danger":            arrival.Sector.DangerLevel,
			"encounter_started": arrival.EncounterStarted,
		},
	})
	return arrival, nil
}

// AttemptChoice selects the active encounter's choice at index (0-based).
func (s *Session) AttemptChoice(index int) (encounter.Outcome, error) {
	return s.machine.Choose(index)
}

// EncounterState reports whether an encounter is active.
func (s *Session) EncounterState() resolution.State {
	return s.machine.State()
}

// MapSnapshot returns a read-only copy of the map.
func (s *Session) MapSnapshot() sector.MapView {
	return s.sectors.View()
}

// ActiveEncounter returns the active encounter's display snapshot.
func (s *Session) ActiveEncounter() (encounter.View, bool) {
	return s.machine.Active()
}

// Resources returns a copy of the player's resources.
func (s *Session) Resources() state.ResourceSnapshot {
	return s.player.Snapshot()
}

// Crew returns the crew names in joining order.
func (s *Session) Crew() []string {
	return s.player.Crew.Names()
}

// Standing returns the player's non-zero faction standings.
func (s *Session) Standing() map[faction.Faction]int {
	return s.player.Standing.Snapshot()
}

// RelationOf looks up the fixed relation between two factions.
func (s *Session) RelationOf(a, b faction.Faction) faction.RelationLevel {
	return s.relations.RelationOf(a, b)
}

// Destinations returns the sectors reachable in one jump, in key order:
// the first entry is bound to digit 1.
func (s *Session) Destinations() []int {
	return s.nav.Destinations()
}

// Pending returns buffered notifications without removing them.
func (s *Session) Pending() []notify.Notification {
	return s.outbox.Pending()
}

// Drain removes and returns buffered notifications.
func (s *Session) Drain() []notify.Notification {
	return s.outbox.Drain()
}

// Flush delivers buffered notifications to sink. On failure the batch is
// kept for the next flush.
func (s *Session) Flush(ctx context.Context, sink notify.Sink) error {
	batch := s.outbox.Drain()
	if len(batch) == 0 {
		return nil
	}
	if err := sink.Publish(ctx, s.ID, batch); err != nil {
		s.outbox.Requeue(batch)
		return fmt.Errorf("failed to flush %d notifications: %w", len(batch), err)
	}
	return nil
}

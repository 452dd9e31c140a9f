package resolution

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/jwebster45206/star-drifter/pkg/encounter"
	"github.com/jwebster45206/star-drifter/pkg/notify"
	"github.com/jwebster45206/star-drifter/pkg/sector"
	"github.com/jwebster45206/star-drifter/pkg/state"
)

var (
	ErrNoActiveEncounter = errors.New("no active encounter")
	ErrInvalidChoice     = errors.New("invalid choice")
	ErrRequirementNotMet = errors.New("requirements not met")
)

// State is the machine's position: Idle or Active.
type State uint8

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Machine owns the single active-encounter slot. It gates choices on their
// requirements and applies outcomes to the player.
type Machine struct {
	player   *state.Player
	rng      *rand.Rand
	recorder notify.Recorder
	logger   *slog.Logger

	active   *encounter.Encounter
	sectorID int
}

// NewMachine creates an idle machine. rng drives encounter selection and
// recorder receives the notifications produced by outcomes.
func NewMachine(player *state.Player, rng *rand.Rand, recorder notify.Recorder, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if recorder == nil {
		recorder = notify.NewOutbox()
	}
	return &Machine{
		player:   player,
		rng:      rng,
		recorder: recorder,
		logger:   logger,
	}
}

// State reports whether an encounter is active.
func (m *Machine) State() State {
	if m.active != nil {
		return Active
	}
	return Idle
}

// Trigger selects and activates the encounter for an arrival at s.
// It does nothing and returns false while another encounter is active.
func (m *Machine) Trigger(s *sector.Sector) bool {
	if m.active != nil {
		m.logger.Debug("Arrival ignored, encounter already active",
			"sector_id", s.ID,
			"active", m.active.Title)
		return false
	}
	return m.Activate(encounter.Select(s, m.rng), s.ID)
}

// Activate makes e the active encounter unless one is already active.
func (m *Machine) Activate(e *encounter.Encounter, sectorID int) bool {
	if m.active != nil || e == nil || len(e.Choices) == 0 {
		return false
	}
	m.active = e
	m.sectorID = sectorID
	m.logger.Info("Encounter activated",
		"sector_id", sectorID,
		"kind", e.Kind.String(),
		"title", e.Title)
	return true
}

// Active returns a snapshot of the active encounter.
func (m *Machine) Active() (encounter.View, bool) {
	if m.active == nil {
		return encounter.View{}, false
	}
	return m.active.View(), true
}

// Clear drops the active encounter without applying any outcome.
func (m *Machine) Clear() {
	m.active = nil
}

// Choose selects the choice at index (0-based). On success the outcome is
// applied once and the machine returns to Idle. On any error the machine
// and the player are left unchanged.
func (m *Machine) Choose(index int) (encounter.Outcome, error) {
	if m.active == nil {
		return nil, ErrNoActiveEncounter
	}
	if index < 0 || index >= len(m.active.Choices) {
		return nil, fmt.Errorf("%w: %d (encounter has %d choices)", ErrInvalidChoice, index+1, len(m.active.Choices))
	}

	choice := m.active.Choices[index]
	if unmet := choice.Unmet(m.player); len(unmet) > 0 {
		needs := make([]string, len(unmet))
		for i, req := range unmet {
			needs[i] = req.String()
		}
		m.logger.Debug("Choice rejected",
			"sector_id", m.sectorID,
			"choice", choice.Text,
			"unmet", needs)
		m.recorder.Record(notify.Notification{
			Kind:     notify.KindChoiceRejected,
			Message:  "Cannot choose this option - requirements not met!",
			SectorID: m.sectorID,
			Data:     map[string]any{"choice": choice.Text, "requires": needs},
		})
		return nil, fmt.Errorf("%w: requires %s", ErrRequirementNotMet, strings.Join(needs, ", "))
	}

	sectorID := m.sectorID
	m.active = nil
	choice.Outcome.Accept(&applier{m: m, sectorID: sectorID})

	m.logger.Info("Choice resolved",
		"sector_id", sectorID,
		"choice", choice.Text,
		"outcome", encounter.Describe(choice.Outcome),
		"fuel", m.player.Fuel(),
		"scrap", m.player.Scrap())
	return choice.Outcome, nil
}

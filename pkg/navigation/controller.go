package navigation

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/jwebster45206/star-drifter/pkg/sector"
	"github.com/jwebster45206/star-drifter/pkg/state"
)

// TravelCost is the fuel spent per jump.
const TravelCost = 1.0

var (
	ErrInsufficientFuel = errors.New("insufficient fuel")
	ErrNotConnected     = errors.New("sector is not connected to the current sector")
	ErrUnknownSector    = errors.New("unknown sector")
)

// ArrivalHandler is told about every completed jump. It reports whether an
// encounter started.
type ArrivalHandler interface {
	Trigger(s *sector.Sector) bool
}

// Arrival describes a completed jump.
type Arrival struct {
	From             int
	To               int
	Sector           sector.SectorView
	EncounterStarted bool
}

// Controller moves the player between connected sectors.
type Controller struct {
	sectors   *sector.SectorMap
	resources *state.Resources
	arrivals  ArrivalHandler
	logger    *slog.Logger
}

// NewController creates a controller over m. arrivals may be nil.
func NewController(m *sector.SectorMap, res *state.Resources, arrivals ArrivalHandler, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	res.CurrentSector = m.CurrentID
	return &Controller{
		sectors:   m,
		resources: res,
		arrivals:  arrivals,
		logger:    logger,
	}
}

// Destinations returns the sectors reachable in one jump, in connection order.
func (c *Controller) Destinations() []int {
	cur := c.sectors.Current()
	if cur == nil {
		return nil
	}
	return slices.Clone(cur.Connections)
}

// Travel jumps to targetID. Checks run in order: fuel, connection, existence.
// A failed check leaves all state untouched.
func (c *Controller) Travel(targetID int) (Arrival, error) {
	from := c.sectors.CurrentID

	if c.resources.Fuel() < TravelCost {
		return Arrival{}, fmt.Errorf("%w: have %.1f, need %.1f", ErrInsufficientFuel, c.resources.Fuel(), TravelCost)
	}
	cur := c.sectors.Current()
	if cur == nil || !cur.IsConnectedTo(targetID) {
		return Arrival{}, fmt.Errorf("%w: %d -> %d", ErrNotConnected, from, targetID)
	}
	target, ok := c.sectors.Get(targetID)
	if !ok {
		return Arrival{}, fmt.Errorf("%w: %d", ErrUnknownSector, targetID)
	}

	c.sectors.CurrentID = targetID
	c.sectors.DistanceTraveled++
	c.resources.CurrentSector = targetID
	c.resources.AddFuel(-TravelCost)
	target.Visited = true

	c.logger.Info("Travelled",
		"from", from,
		"to", targetID,
		"sector", target.Name,
		"danger", target.DangerLevel,
		"fuel", c.resources.Fuel(),
		"distance", c.sectors.DistanceTraveled)

	arrival := Arrival{From: from, To: targetID}
	if c.arrivals != nil {
		arrival.EncounterStarted = c.arrivals.Trigger(target)
	}
	arrival.Sector = target.View()
	return arrival, nil
}

package state

// Starting values for a new run.
const (
	DefaultFuel  = 50.0
	DefaultScrap = 15
)

// Resources is the player's consumable state. Fuel and scrap never drop
// below zero; every mutation clamps.
type Resources struct {
	CurrentSector int
	fuel          float64
	scrap         int
}

// NewResources returns resources at the given levels, clamped at zero.
func NewResources(fuel float64, scrap int) *Resources {
	r := &Resources{}
	r.AddFuel(fuel)
	r.AddScrap(scrap)
	return r
}

func (r *Resources) Fuel() float64 { return r.fuel }
func (r *Resources) Scrap() int    { return r.scrap }

// AddFuel applies a signed delta and returns the new fuel level.
func (r *Resources) AddFuel(delta float64) float64 {
	r.fuel = max(0, r.fuel+delta)
	return r.fuel
}

// AddScrap applies a signed delta and returns the new scrap count.
func (r *Resources) AddScrap(delta int) int {
	r.scrap = max(0, r.scrap+delta)
	return r.scrap
}

// ResourceSnapshot is a copy of the resources for display and notifications.
type ResourceSnapshot struct {
	CurrentSector int     `json:"current_sector"`
	Fuel          float64 `json:"fuel"`
	Scrap         int     `json:"scrap"`
}

// Snapshot copies the current values.
func (r *Resources) Snapshot() ResourceSnapshot {
	return ResourceSnapshot{
		CurrentSector: r.CurrentSector,
		Fuel:          r.fuel,
		Scrap:         r.scrap,
	}
}

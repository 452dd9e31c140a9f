package sector

import (
	"slices"
)

// StartID is the ID of the guaranteed-safe starting station.
const StartID = 0

// Sector is one discoverable location on the map.
type Sector struct {
	ID          int
	Type        SectorType
	Name        string
	Description string
	Layer       int   // distance from the starting sector, in layers
	Connections []int // IDs of connected sectors
	Visited     bool
	Events      []SectorEvent
	DangerLevel int
}

// IsConnectedTo reports whether id is in the sector's connection list.
func (s *Sector) IsConnectedTo(id int) bool {
	return slices.Contains(s.Connections, id)
}

// SectorMap owns every sector generated for a session.
type SectorMap struct {
	Sectors          map[int]*Sector
	Layers           [][]int // sector IDs per layer, layer 0 first
	CurrentID        int
	DistanceTraveled int
}

// Get returns the sector with the given ID.
func (m *SectorMap) Get(id int) (*Sector, bool) {
	s, ok := m.Sectors[id]
	return s, ok
}

// Current returns the sector the player is in, or nil if the map is empty.
func (m *SectorMap) Current() *Sector {
	return m.Sectors[m.CurrentID]
}

// Len returns the number of sectors.
func (m *SectorMap) Len() int {
	return len(m.Sectors)
}

// IDs returns all sector IDs in ascending order.
func (m *SectorMap) IDs() []int {
	ids := make([]int, 0, len(m.Sectors))
	for id := range m.Sectors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// SectorView is a read-only copy of a sector for display.
type SectorView struct {
	ID          int
	Type        SectorType
	Name        string
	Description string
	Layer       int
	Connections []int
	Visited     bool
	DangerLevel int
}

// MapView is a read-only snapshot of the map for display.
type MapView struct {
	Sectors          []SectorView // sorted by ID
	CurrentID        int
	DistanceTraveled int
}

// View copies a sector so callers cannot mutate the map through it.
func (s *Sector) View() SectorView {
	return SectorView{
		ID:          s.ID,
		Type:        s.Type,
		Name:        s.Name,
		Description: s.Description,
		Layer:       s.Layer,
		Connections: slices.Clone(s.Connections),
		Visited:     s.Visited,
		DangerLevel: s.DangerLevel,
	}
}

// View returns a snapshot of the whole map.
func (m *SectorMap) View() MapView {
	v := MapView{
		Sectors:          make([]SectorView, 0, len(m.Sectors)),
		CurrentID:        m.CurrentID,
		DistanceTraveled: m.DistanceTraveled,
	}
	for _, id := range m.IDs() {
		v.Sectors = append(v.Sectors, m.Sectors[id].View())
	}
	return v
}

// Sector looks up a sector in the snapshot.
func (v MapView) Sector(id int) (SectorView, bool) {
	i, found := slices.BinarySearchFunc(v.Sectors, id, func(s SectorView, id int) int {
		return s.ID - id
	})
	if !found {
		return SectorView{}, false
	}
	return v.Sectors[i], true
}

// Current returns the snapshot of the sector the player is in.
func (v MapView) Current() (SectorView, bool) {
	return v.Sector(v.CurrentID)
}

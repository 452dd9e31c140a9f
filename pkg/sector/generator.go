package sector

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// Map shape limits.
const (
	MinLayers       = 5
	MaxLayers       = 7
	MinLayerNodes   = 2
	MaxLayerNodes   = 4
	MaxPredecessors = 2
)

// Generator builds layered sector maps. Each node links back to one or two
// sectors of the previous layer, so every sector can reach the start.
type Generator struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewGenerator creates a generator drawing from rng. Pass a seeded PCG source
// for reproducible maps.
func NewGenerator(rng *rand.Rand, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{rng: rng, logger: logger}
}

// Generate builds a complete map with the player at the starting station.
func (g *Generator) Generate() *SectorMap {
	m := &SectorMap{
		Sectors:   make(map[int]*Sector),
		CurrentID: StartID,
	}

	numLayers := MinLayers + g.rng.IntN(MaxLayers-MinLayers+1)
	nextID := StartID

	start := g.newSector(nextID, Station, 0)
	m.Sectors[start.ID] = start
	m.Layers = append(m.Layers, []int{start.ID})
	nextID++

	for layer := 1; layer < numLayers; layer++ {
		nodes := MinLayerNodes + g.rng.IntN(MaxLayerNodes-MinLayerNodes+1)
		current := make([]int, 0, nodes)

		for range nodes {
			s := g.newSector(nextID, RollType(g.rng, layer), layer)
			m.Sectors[s.ID] = s
			current = append(current, s.ID)
			nextID++
		}

		prev := m.Layers[layer-1]
		for _, id := range current {
			for _, target := range g.pickPredecessors(prev) {
				m.Sectors[id].Connections = append(m.Sectors[id].Connections, target)
				m.Sectors[target].Connections = append(m.Sectors[target].Connections, id)
			}
		}

		m.Layers = append(m.Layers, current)
	}

	g.logger.Debug("Sector map generated",
		"layers", numLayers,
		"sectors", len(m.Sectors))
	return m
}

// pickPredecessors selects 1..min(2, len(prev)) distinct targets without replacement.
func (g *Generator) pickPredecessors(prev []int) []int {
	limit := min(MaxPredecessors, len(prev))
	if limit == 0 {
		return nil
	}
	count := 1 + g.rng.IntN(limit)
	perm := g.rng.Perm(len(prev))

	targets := make([]int, count)
	for i := range count {
		targets[i] = prev[perm[i]]
	}
	return targets
}

func (g *Generator) newSector(id int, t SectorType, distance int) *Sector {
	return &Sector{
		ID:          id,
		Type:        t,
		Name:        g.sectorName(t),
		Description: t.Description(),
		Layer:       distance,
		Events:      AttachEvents(t, g.rng),
		DangerLevel: DangerLevel(t, distance),
	}
}

func (g *Generator) sectorName(t SectorType) string {
	info := t.info()
	prefix := info.Prefixes[g.rng.IntN(len(info.Prefixes))]
	suffix := info.Suffixes[g.rng.IntN(len(info.Suffixes))]
	return prefix + " " + suffix
}

// RollType picks a sector type for a sector at the given distance. Rare
// types only appear once the distance factor, min(distance/10, 5), passes
// their threshold, and even then only on a further roll.
func RollType(rng *rand.Rand, distance int) SectorType {
	factor := min(float64(distance)/10.0, 5.0)

	switch roll := rng.IntN(100); {
	case roll <= 25:
		return Empty
	case roll <= 40:
		return Nebula
	case roll <= 55:
		return AsteroidField
	case roll <= 65:
		return Station
	case roll <= 75:
		return Distress
	case roll <= 85:
		return Combat
	case roll <= 90:
		return Anomaly
	case roll <= 95:
		if factor > 2.0 && chance(rng, 0.3) {
			return DarkRift
		}
		return Anomaly
	case roll <= 98:
		if factor > 1.0 && chance(rng, 0.4) {
			return CelestialSite
		}
		return Station
	default:
		if factor > 3.0 && chance(rng, 0.2) {
			return AetheriumField
		}
		return AsteroidField
	}
}

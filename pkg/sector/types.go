package sector

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// SectorType classifies a sector and drives its danger and encounters.
type SectorType uint8

const (
	Empty          SectorType = iota // Nothing of interest
	Nebula                           // Reduced sensors, possible hiding spots
	AsteroidField                    // Mining opportunities, navigation hazards
	Station                          // Trading, repairs, crew
	Distress                         // Ship in trouble
	Combat                           // Enemy encounter
	Anomaly                          // Strange cosmic phenomena
	DarkRift                         // Dangerous but rewarding areas
	CelestialSite                    // Ancient Celestial artifacts
	AetheriumField                   // Rare Aetherium deposits
)

// Types lists every sector type in declaration order.
var Types = []SectorType{
	Empty, Nebula, AsteroidField, Station, Distress,
	Combat, Anomaly, DarkRift, CelestialSite, AetheriumField,
}

//go:embed data/sector_types.yaml
var typesYAML []byte

type typeInfo struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	BaseDanger  int      `yaml:"base_danger"`
	Description string   `yaml:"description"`
	Prefixes    []string `yaml:"prefixes"`
	Suffixes    []string `yaml:"suffixes"`
}

var typeCatalog = mustLoadTypes(typesYAML)

func mustLoadTypes(data []byte) []typeInfo {
	infos, err := loadTypes(data)
	if err != nil {
		panic(fmt.Sprintf("sector: invalid embedded type catalog: %v", err))
	}
	return infos
}

func loadTypes(data []byte) ([]typeInfo, error) {
	var file struct {
		SectorTypes []typeInfo `yaml:"sector_types"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sector type catalog: %w", err)
	}
	if len(file.SectorTypes) != len(Types) {
		return nil, fmt.Errorf("expected %d sector types, got %d", len(Types), len(file.SectorTypes))
	}
	for _, info := range file.SectorTypes {
		if len(info.Prefixes) == 0 || len(info.Suffixes) == 0 {
			return nil, fmt.Errorf("sector type %q needs name prefixes and suffixes", info.Key)
		}
		if info.BaseDanger < 0 {
			return nil, fmt.Errorf("sector type %q has negative base danger", info.Key)
		}
	}
	return file.SectorTypes, nil
}

func (t SectorType) info() typeInfo {
	if int(t) >= len(typeCatalog) {
		return typeInfo{Key: "unknown", Name: "Unknown"}
	}
	return typeCatalog[t]
}

// Key returns the snake_case catalog key, e.g. "dark_rift".
func (t SectorType) Key() string { return t.info().Key }

// Name returns the display name, e.g. "Dark Rift".
func (t SectorType) Name() string { return t.info().Name }

// Description returns the flavor text shown for sectors of this type.
func (t SectorType) Description() string { return t.info().Description }

// BaseDanger returns the type's contribution to a sector's danger level.
func (t SectorType) BaseDanger() int { return t.info().BaseDanger }

func (t SectorType) String() string { return t.Name() }

// ParseType resolves a sector type by key or display name, ignoring case.
func ParseType(s string) (SectorType, bool) {
	folded := cases.Fold().String(strings.TrimSpace(s))
	for _, t := range Types {
		info := t.info()
		if folded == cases.Fold().String(info.Key) || folded == cases.Fold().String(info.Name) {
			return t, true
		}
	}
	return 0, false
}

// DangerLevel returns base danger plus one point per five layers of distance.
func DangerLevel(t SectorType, distance int) int {
	return t.BaseDanger() + distance/5
}

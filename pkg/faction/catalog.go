package faction

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/factions.yaml
var catalogYAML []byte

// Metadata is the immutable per-faction catalog entry.
type Metadata struct {
	Key         string    `yaml:"key"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Color       string    `yaml:"color"`
	Alignment   Alignment `yaml:"alignment"`
}

type relationEntry struct {
	A     string `yaml:"a"`
	B     string `yaml:"b"`
	Level string `yaml:"level"`
}

type catalogFile struct {
	Factions  []Metadata      `yaml:"factions"`
	Relations []relationEntry `yaml:"relations"`
}

type factionCatalog struct {
	factions  [Neutral + 1]Metadata
	relations []relationEntry
}

// catalog is loaded once at process start and never mutated.
var catalog = mustLoadCatalog(catalogYAML)

func mustLoadCatalog(data []byte) *factionCatalog {
	c, err := loadCatalog(data)
	if err != nil {
		panic(fmt.Sprintf("faction: invalid embedded catalog: %v", err))
	}
	return c
}

func loadCatalog(data []byte) (*factionCatalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse faction catalog: %w", err)
	}
	if len(file.Factions) != len(All) {
		return nil, fmt.Errorf("expected %d factions, got %d", len(All), len(file.Factions))
	}

	c := &factionCatalog{relations: file.Relations}
	// Catalog order matches the Faction constants.
	for i, m := range file.Factions {
		if m.Key == "" || m.Name == "" {
			return nil, fmt.Errorf("faction %d is missing a key or name", i)
		}
		switch m.Alignment {
		case AlignmentSpiral, AlignmentAntispiral, AlignmentNeutral:
		default:
			return nil, fmt.Errorf("faction %q has unknown alignment %q", m.Key, m.Alignment)
		}
		c.factions[i] = m
	}
	return c, nil
}

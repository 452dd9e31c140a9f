package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jwebster45206/star-drifter/pkg/encounter"
	"github.com/jwebster45206/star-drifter/pkg/game"
	"github.com/jwebster45206/star-drifter/pkg/sector"
)

func main() {
	from := flag.Uint64("from", 1, "first seed to generate")
	count := flag.Int("count", 100, "number of consecutive seeds")
	typeName := flag.String("type", "", "report how many maps contain this sector type")
	dotFile := flag.String("dot", "", "write the first map as Graphviz DOT to this file")
	flag.Parse()

	var want *sector.SectorType
	if *typeName != "" {
		t, ok := sector.ParseType(*typeName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown sector type: %s\n", *typeName)
			os.Exit(1)
		}
		want = &t
	}

	validator := &MapValidator{}
	found := 0
	for i := 0; i < *count; i++ {
		seed := *from + uint64(i)
		m := validator.validateSeed(seed)
		if m == nil {
			continue
		}
		if want != nil && containsType(m, *want) {
			found++
		}
		if i == 0 && *dotFile != "" {
			if err := writeDOT(*dotFile, m); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to write DOT: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if len(validator.errors) > 0 {
		fmt.Fprintf(os.Stderr, "Validation failed:\n%s\n", strings.Join(validator.errors, "\n"))
		os.Exit(1)
	}

	if want != nil {
		fmt.Printf("%s appeared in %d of %d maps\n", want.Name(), found, *count)
	}
	fmt.Printf("All %d maps are valid!\n", *count)
}

// MapValidator generates maps and collects every structural problem it finds.
type MapValidator struct {
	errors []string
}

func (v *MapValidator) validateSeed(seed uint64) *sector.SectorMap {
	m := sector.NewGenerator(game.NewRNG(seed), nil).Generate()

	if err := m.Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			v.addError(fmt.Sprintf("seed %d: %s", seed, line))
		}
		return nil
	}

	for _, id := range m.IDs() {
		s := m.Sectors[id]
		if len(s.Connections) > int(game.MaxTravelKey) {
			v.addError(fmt.Sprintf("seed %d: sector %d has %d exits, more than the number keys", seed, id, len(s.Connections)))
		}
		for _, ev := range s.Events {
			e := encounter.FromSectorEvent(ev, s.DangerLevel)
			v.validateEncounter(seed, id, e)
		}
	}
	return m
}

func (v *MapValidator) validateEncounter(seed uint64, id int, e *encounter.Encounter) {
	switch {
	case len(e.Choices) == 0:
		v.addError(fmt.Sprintf("seed %d: sector %d event %q has no choices", seed, id, e.Title))
	case len(e.Choices) > encounter.MaxChoices:
		v.addError(fmt.Sprintf("seed %d: sector %d event %q has %d choices, at most %d allowed", seed, id, e.Title, len(e.Choices), encounter.MaxChoices))
	}
}

func (v *MapValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func containsType(m *sector.SectorMap, t sector.SectorType) bool {
	for _, s := range m.Sectors {
		if s.Type == t {
			return true
		}
	}
	return false
}

func writeDOT(path string, m *sector.SectorMap) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return m.WriteDOT(f)
}

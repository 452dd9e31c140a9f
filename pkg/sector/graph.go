package sector

import (
	"errors"
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// Graph returns an undirected graph of the map keyed by sector ID.
func (m *SectorMap) Graph() (graph.Graph[int, int], error) {
	g := graph.New(graph.IntHash)

	for _, id := range m.IDs() {
		s := m.Sectors[id]
		if err := g.AddVertex(id,
			graph.VertexAttribute("label", fmt.Sprintf("%d: %s", id, s.Name)),
		); err != nil {
			return nil, fmt.Errorf("failed to add sector %d: %w", id, err)
		}
	}

	for _, id := range m.IDs() {
		for _, to := range m.Sectors[id].Connections {
			err := g.AddEdge(id, to)
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("failed to connect %d to %d: %w", id, to, err)
			}
		}
	}
	return g, nil
}

// Reachable returns the IDs reachable from start, including start itself.
func (m *SectorMap) Reachable(start int) ([]int, error) {
	g, err := m.Graph()
	if err != nil {
		return nil, err
	}

	var visited []int
	err = graph.BFS(g, start, func(id int) bool {
		visited = append(visited, id)
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("failed to traverse map from %d: %w", start, err)
	}
	return visited, nil
}

// Validate checks the structural guarantees of a generated map and reports
// every violation found.
func (m *SectorMap) Validate() error {
	var errs []error

	if len(m.Layers) == 0 || len(m.Layers[0]) != 1 {
		errs = append(errs, errors.New("layer 0 must contain exactly one sector"))
	}

	for _, id := range m.IDs() {
		s := m.Sectors[id]
		if s.ID != id {
			errs = append(errs, fmt.Errorf("sector stored under %d reports ID %d", id, s.ID))
		}
		if want := DangerLevel(s.Type, s.Layer); s.DangerLevel != want {
			errs = append(errs, fmt.Errorf("sector %d danger is %d, want %d", id, s.DangerLevel, want))
		}

		hasBackEdge := false
		for _, to := range s.Connections {
			if to == id {
				errs = append(errs, fmt.Errorf("sector %d connects to itself", id))
				continue
			}
			target, ok := m.Sectors[to]
			if !ok {
				errs = append(errs, fmt.Errorf("sector %d connects to unknown sector %d", id, to))
				continue
			}
			if !target.IsConnectedTo(id) {
				errs = append(errs, fmt.Errorf("connection %d -> %d has no reverse edge", id, to))
			}
			if target.Layer < s.Layer {
				hasBackEdge = true
			}
		}
		if s.Layer > 0 && !hasBackEdge {
			errs = append(errs, fmt.Errorf("sector %d in layer %d has no edge to an earlier layer", id, s.Layer))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	reachable, err := m.Reachable(StartID)
	if err != nil {
		return err
	}
	if len(reachable) != len(m.Sectors) {
		return fmt.Errorf("only %d of %d sectors are reachable from the start", len(reachable), len(m.Sectors))
	}
	return nil
}

// WriteDOT writes the map in Graphviz DOT format.
func (m *SectorMap) WriteDOT(w io.Writer) error {
	g, err := m.Graph()
	if err != nil {
		return err
	}
	if err := draw.DOT(g, w); err != nil {
		return fmt.Errorf("failed to render DOT: %w", err)
	}
	return nil
}

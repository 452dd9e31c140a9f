package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/star-drifter/pkg/encounter"
	"github.com/jwebster45206/star-drifter/pkg/faction"
	"github.com/jwebster45206/star-drifter/pkg/game"
	"github.com/jwebster45206/star-drifter/pkg/notify"
	"github.com/jwebster45206/star-drifter/pkg/sector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(t *testing.T, seed uint64) DrifterUI {
	t.Helper()
	opts := game.DefaultOptions()
	opts.Seed = seed
	s, err := game.NewSession(opts)
	require.NoError(t, err)

	m, _ := NewDrifterUI(s, nil).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(DrifterUI)
}

func press(t *testing.T, m DrifterUI, key string) DrifterUI {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated.(DrifterUI)
}

func TestDrifterUI_Travel(t *testing.T) {
	m := newTestUI(t, 21)
	require.True(t, m.ready)

	m = press(t, m, "1")

	snap := m.session.MapSnapshot()
	assert.Equal(t, 1, snap.DistanceTraveled)
	assert.Empty(t, m.session.Pending(), "notifications are drained without a sink")

	_, active := m.session.ActiveEncounter()
	assert.True(t, active)
	assert.Contains(t, m.View(), "encounter")
}

func TestDrifterUI_QuitModal(t *testing.T) {
	m := newTestUI(t, 3)

	m = press(t, m, "q")
	assert.True(t, m.showQuitModal)
	assert.Contains(t, m.View(), "Abandon Run?")

	m = press(t, m, "1")
	assert.Zero(t, m.session.MapSnapshot().DistanceTraveled, "keys are ignored while the modal is open")

	m = press(t, m, "n")
	assert.False(t, m.showQuitModal)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(DrifterUI)
	assert.True(t, m.showQuitModal)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDrifterUI_ViewBeforeResize(t *testing.T) {
	s, err := game.NewSession(game.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, NewDrifterUI(s, nil).View(), "Initializing")
}

func TestWriteEncounter(t *testing.T) {
	v := encounter.View{
		Title:       "Derelict Ship",
		Description: "A silent hulk drifts nearby.",
		Choices: []encounter.ChoiceView{
			{Text: "Salvage"},
			{Text: "Scan first", Requirements: []string{"sensors 2"}},
		},
	}

	out := writeEncounter(v, 40)
	assert.Contains(t, out, "DERELICT SHIP")
	assert.Contains(t, out, "1: Salvage")
	assert.Contains(t, out, "2: Scan first")
	assert.Contains(t, out, "[sensors 2]")
}

func TestWriteDestinations(t *testing.T) {
	snap := sector.MapView{
		Sectors: []sector.SectorView{
			{ID: 0, Name: "Haven Station", Type: sector.Station},
			{ID: 1, Name: "Crimson Veil", Type: sector.Nebula, DangerLevel: 2, Visited: true},
			{ID: 2, Name: "Silent Reach", Type: sector.Empty, DangerLevel: 1},
		},
	}

	out := writeDestinations(snap, []int{1, 2, 7})
	assert.Contains(t, out, "1: Crimson Veil (Nebula, danger 2) ✓")
	assert.Contains(t, out, "2: Silent Reach (Empty Space, danger 1)")
	assert.NotContains(t, out, "3:")
}

func TestWriteMap(t *testing.T) {
	snap := sector.MapView{
		Sectors: []sector.SectorView{
			{ID: 0, Layer: 0, Visited: true},
			{ID: 1, Layer: 1, Visited: true},
			{ID: 2, Layer: 1},
		},
		CurrentID: 1,
	}

	out := writeMap(snap)
	assert.Contains(t, out, "0  (0)")
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, " 2\n")
}

func TestWriteStanding(t *testing.T) {
	assert.Empty(t, writeStanding(nil))

	out := writeStanding(map[faction.Faction]int{faction.Webes: 1})
	assert.Contains(t, out, faction.Webes.Name()+" +1")
}

func TestFormatNotification(t *testing.T) {
	n := notify.Notification{Kind: notify.KindCrewJoined, Message: "Rhea joins the crew"}
	assert.Contains(t, formatNotification(n), "Rhea joins the crew")
}

package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/star-drifter/pkg/encounter"
	"github.com/jwebster45206/star-drifter/pkg/faction"
	"github.com/jwebster45206/star-drifter/pkg/game"
	"github.com/jwebster45206/star-drifter/pkg/notify"
	"github.com/jwebster45206/star-drifter/pkg/resolution"
	"github.com/jwebster45206/star-drifter/pkg/sector"
	"github.com/muesli/reflow/wordwrap"
)

const flushTimeout = 2 * time.Second

// DrifterUI is the BubbleTea model that drives one session.
type DrifterUI struct {
	session *game.Session
	sink    notify.Sink // nil when broadcast is disabled

	logViewport  viewport.Model
	metaViewport viewport.Model
	log          []string
	status       string

	ready         bool
	width         int
	height        int
	showQuitModal bool
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(1)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	requirementStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")) // yellow

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // teal
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

func NewDrifterUI(session *game.Session, sink notify.Sink) DrifterUI {
	logVp := viewport.New(60, 20)
	logVp.MouseWheelEnabled = true

	m := DrifterUI{
		session:      session,
		sink:         sink,
		logViewport:  logVp,
		metaViewport: viewport.New(30, 20),
	}
	start, _ := session.MapSnapshot().Current()
	m.log = append(m.log,
		titleStyle.Render("STAR DRIFTER"),
		fmt.Sprintf("You begin at %s. Seed %d.", start.Name, session.Seed),
		promptStyle.Render("Press 1-9 to jump to a connected sector, 1-3 to answer an encounter."),
	)
	return m
}

func (m DrifterUI) Init() tea.Cmd {
	return nil
}

func (m DrifterUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var vpCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth, metaWidth := m.panelWidths()
		m.logViewport.Width = logWidth - 3
		m.logViewport.Height = m.height - 2
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 2
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		}

		key := msg.String()
		switch {
		case key == "q":
			m.showQuitModal = true
			return m, nil
		case key == "c":
			if err := clipboard.WriteAll(strconv.FormatUint(m.session.Seed, 10)); err != nil {
				m.status = errorStyle.Render("Clipboard unavailable: " + err.Error())
			} else {
				m.status = "Seed copied to clipboard."
			}
			m.refresh()
			return m, nil
		case len(key) == 1 && key[0] >= '1' && key[0] <= '9':
			m.runCycle(game.Key(key[0] - '0'))
			return m, nil
		}
	}

	m.logViewport, vpCmd = m.logViewport.Update(msg)
	return m, vpCmd
}

// runCycle feeds one key press through the session and records what happened.
func (m *DrifterUI) runCycle(k game.Key) {
	res := m.session.RunCycle(game.Press(k))
	m.status = ""

	for _, n := range m.session.Pending() {
		m.log = append(m.log, formatNotification(n))
	}
	if res.TravelErr != nil {
		m.status = errorStyle.Render(res.TravelErr.Error())
	}
	if res.ChoiceErr != nil {
		m.status = errorStyle.Render(res.ChoiceErr.Error())
	}
	if res.ChoiceAttempted && res.ChoiceErr == nil {
		m.log = append(m.log, encounter.Describe(res.Outcome))
	}
	if res.TravelAttempted && res.TravelErr == nil {
		if v, ok := m.session.ActiveEncounter(); ok {
			m.log = append(m.log, titleStyle.Render(v.Title), v.Description)
		}
	}

	if m.sink != nil {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		if err := m.session.Flush(ctx, m.sink); err != nil {
			m.status = errorStyle.Render(err.Error())
		}
		cancel()
	} else {
		m.session.Drain()
	}

	m.refresh()
}

func (m *DrifterUI) refresh() {
	logWidth := max(m.logViewport.Width, 20)
	wrapped := make([]string, len(m.log))
	for i, line := range m.log {
		wrapped[i] = wordwrap.String(line, logWidth)
	}
	m.logViewport.SetContent(strings.Join(wrapped, "\n\n"))
	m.logViewport.GotoBottom()

	m.metaViewport.SetContent(writeMetadata(m.session, m.status, max(m.metaViewport.Width, 20)))
}

func (m DrifterUI) panelWidths() (int, int) {
	logWidth := int(float64(m.width)*0.6) - 2
	return logWidth, m.width - logWidth - 2
}

func formatNotification(n notify.Notification) string {
	switch n.Kind {
	case notify.KindChoiceRejected, notify.KindTravelRejected:
		return errorStyle.Render(n.Message)
	case notify.KindArrived:
		return currentStyle.Render(n.Message)
	case notify.KindCombatStarted, notify.KindHullDamaged:
		return requirementStyle.Render(n.Message)
	default:
		return choiceStyle.Render(n.Message)
	}
}

func writeMetadata(s *game.Session, status string, width int) string {
	var content strings.Builder
	snap := s.MapSnapshot()
	res := s.Resources()

	content.WriteString(titleStyle.Render("SHIP") + promptStyle.Render(" · "+stateLabel(s)) + "\n")
	content.WriteString(fmt.Sprintf("Fuel: %.1f\n", res.Fuel))
	content.WriteString(fmt.Sprintf("Scrap: %d\n", res.Scrap))
	content.WriteString(fmt.Sprintf("Distance: %d\n", snap.DistanceTraveled))
	content.WriteString("Crew: " + strings.Join(s.Crew(), ", ") + "\n")
	if standing := writeStanding(s.Standing()); standing != "" {
		content.WriteString(standing)
	}
	content.WriteString("\n")

	if v, ok := s.ActiveEncounter(); ok {
		content.WriteString(writeEncounter(v, width))
	} else {
		content.WriteString(writeDestinations(snap, s.Destinations()))
	}

	content.WriteString("\n" + titleStyle.Render("MAP") + "\n")
	content.WriteString(writeMap(snap))

	if status != "" {
		content.WriteString("\n" + wordwrap.String(status, width) + "\n")
	}
	content.WriteString("\n" + promptStyle.Render("c: copy seed • q: quit"))
	return content.String()
}

func writeStanding(standing map[faction.Faction]int) string {
	if len(standing) == 0 {
		return ""
	}
	factions := make([]faction.Faction, 0, len(standing))
	for f := range standing {
		factions = append(factions, f)
	}
	slices.Sort(factions)

	var b strings.Builder
	b.WriteString("Standing:\n")
	for _, f := range factions {
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Color())).Render(f.Name())
		fmt.Fprintf(&b, "• %s %+d (%s)\n", name, standing[f], faction.LevelFromModifier(standing[f]))
	}
	return b.String()
}

func writeEncounter(v encounter.View, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(v.Title)) + "\n")
	b.WriteString(wordwrap.String(v.Description, width) + "\n\n")
	for i, c := range v.Choices {
		line := fmt.Sprintf("%d: %s", i+1, c.Text)
		if i >= int(game.MaxChoiceKey) {
			line = promptStyle.Render(line)
		} else {
			line = choiceStyle.Render(line)
		}
		b.WriteString(line)
		if len(c.Requirements) > 0 {
			b.WriteString(requirementStyle.Render(" [" + strings.Join(c.Requirements, ", ") + "]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeDestinations(snap sector.MapView, destinations []int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("JUMP") + "\n")
	for i, id := range destinations {
		if i >= int(game.MaxTravelKey) {
			break
		}
		s, ok := snap.Sector(id)
		if !ok {
			continue
		}
		visited := ""
		if s.Visited {
			visited = " ✓"
		}
		fmt.Fprintf(&b, "%d: %s (%s, danger %d)%s\n", i+1, s.Name, s.Type, s.DangerLevel, visited)
	}
	return b.String()
}

// writeMap lists sectors by layer, marking the current one.
func writeMap(snap sector.MapView) string {
	layers := make(map[int][]sector.SectorView)
	maxLayer := 0
	for _, s := range snap.Sectors {
		layers[s.Layer] = append(layers[s.Layer], s)
		maxLayer = max(maxLayer, s.Layer)
	}

	var b strings.Builder
	for layer := 0; layer <= maxLayer; layer++ {
		cells := make([]string, 0, len(layers[layer]))
		for _, s := range layers[layer] {
			cell := strconv.Itoa(s.ID)
			switch {
			case s.ID == snap.CurrentID:
				cell = currentStyle.Render("[" + cell + "]")
			case s.Visited:
				cell = "(" + cell + ")"
			}
			cells = append(cells, cell)
		}
		fmt.Fprintf(&b, "%d  %s\n", layer, strings.Join(cells, " "))
	}
	return b.String()
}

func (m DrifterUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				return m, nil
			}
		}
	}

	return m, nil
}

func (m DrifterUI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Abandon Run?"))
	content.WriteString("\n\n")
	content.WriteString("Your drift ends here. There is no save.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m DrifterUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	logWidth, metaWidth := m.panelWidths()
	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 1).Render(m.logViewport.View())
	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 1).Render(m.metaViewport.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, metaPanel)
}

func stateLabel(s *game.Session) string {
	if s.EncounterState() == resolution.Active {
		return "encounter"
	}
	return "navigation"
}

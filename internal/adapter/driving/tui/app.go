// Package tui implements the terminal driving adapter: a Bubble Tea program
// that browses the credential catalog through one application.Session.
package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ericfisherdev/certpanel/internal/application"
	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// frameInterval is how often the entrance reveal is redrawn.
const frameInterval = 40 * time.Millisecond

// noResultsMessage is shown in place of the list when nothing matches.
const noResultsMessage = "No certifications found."

// revealTickMsg advances the entrance reveal of the plan with the given generation.
type revealTickMsg struct {
	generation uint64
}

// Model is the Bubble Tea model for the terminal browser. Bubble Tea delivers
// messages one at a time, so the session is never touched concurrently.
type Model struct {
	session *application.Session
	page    model.PageMeta

	plan        model.AnimationPlan
	revealStart time.Time
	now         func() time.Time

	cursor    int
	searching bool
	width     int
	quitting  bool
}

// New creates a Model over session. page supplies the header copy.
func New(session *application.Session, page model.PageMeta) Model {
	return Model{
		session:     session,
		page:        page,
		plan:        session.AnimationPlan(),
		now:         time.Now,
		revealStart: time.Now(),
	}
}

// Init starts the entrance reveal of the initial plan.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case revealTickMsg:
		// Ticks from a superseded plan stop here; the new plan has its own.
		if msg.generation != m.plan.Generation || m.revealDone() {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch {
		case m.session.SelectionState().IsOpen:
			return m.updateDetail(msg)
		case m.searching:
			return m.updateSearch(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.session.OnDetailClose()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	query := m.session.Query()

	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		return m, nil
	case tea.KeyBackspace:
		if query == "" {
			return m, nil
		}
		runes := []rune(query)
		return m.changeQuery(string(runes[:len(runes)-1]))
	case tea.KeySpace:
		return m.changeQuery(query + " ")
	case tea.KeyRunes:
		return m.changeQuery(query + string(msg.Runes))
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	records := m.session.FilteredRecords()

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.searching = true
	case "esc":
		if m.session.Query() != "" {
			return m.changeQuery("")
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(records)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor >= 0 && m.cursor < len(records) {
			m.session.OnRecordClick(records[m.cursor])
		}
	}

	return m, nil
}

// changeQuery forwards the query to the session and restarts the entrance
// reveal with the freshly computed plan.
func (m Model) changeQuery(query string) (tea.Model, tea.Cmd) {
	m.session.OnQueryChange(query)
	m.plan = m.session.AnimationPlan()
	m.revealStart = m.now()
	m.cursor = 0
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	generation := m.plan.Generation
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return revealTickMsg{generation: generation}
	})
}

// revealDone reports whether every step of the current plan has finished.
func (m Model) revealDone() bool {
	if len(m.plan.Steps) == 0 {
		return true
	}
	last := m.plan.Steps[len(m.plan.Steps)-1]
	return m.now().Sub(m.revealStart) >= last.End()
}

// progress returns how far step has entered, from 0 (hidden) to 1 (settled).
func (m Model) progress(step model.AnimationStep) float64 {
	elapsed := m.now().Sub(m.revealStart) - step.Delay
	switch {
	case elapsed < 0:
		return 0
	case step.Duration <= 0 || elapsed >= step.Duration:
		return 1
	}
	return float64(elapsed) / float64(step.Duration)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.page.Title))
	b.WriteString("\n")
	if m.page.Tagline != "" {
		b.WriteString(subtleStyle.Render(m.page.Tagline))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.viewSearch())
	b.WriteString("\n\n")

	if state := m.session.SelectionState(); state.IsOpen && state.SelectedRecord != nil {
		b.WriteString(m.viewDetail(*state.SelectedRecord))
	} else {
		b.WriteString(m.viewList())
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.hints()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewSearch() string {
	query := m.session.Query()
	if m.searching {
		return cursorStyle.Render("/ ") + query + cursorStyle.Render("_")
	}
	if query == "" {
		return hintStyle.Render("/ Search by name, issuer, or category...")
	}
	return subtleStyle.Render("/ ") + query
}

func (m Model) viewList() string {
	if len(m.plan.Steps) == 0 {
		return subtleStyle.Render(noResultsMessage) + "\n"
	}

	var b strings.Builder
	for i, step := range m.plan.Steps {
		if m.now().Sub(m.revealStart) < step.Delay {
			// Keep the row's space so later rows do not shift as it appears.
			b.WriteString("\n")
			continue
		}

		// The vertical entrance offset becomes a shrinking left indent.
		p := m.progress(step)
		indent := int(math.Ceil(step.OffsetY / 10 * (1 - p)))
		line := strings.Repeat(" ", indent) + m.viewRow(step.Record, i == m.cursor)
		if p < 1 {
			line = enteringStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewRow(r model.CredentialRecord, selected bool) string {
	marker := "  "
	name := nameStyle.Render(r.Name)
	if selected {
		marker = cursorStyle.Render("> ")
		name = cursorStyle.Render(r.Name)
	}
	return marker + statusStyle(r.Status).Render(statusBadge(r.Status)) + " " + name +
		subtleStyle.Render("  "+r.Issuer+" · "+r.Category)
}

func (m Model) viewDetail(r model.CredentialRecord) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(r.Name))
	b.WriteString("\n")
	b.WriteString(statusStyle(r.Status).Render(r.Status.Label()))
	b.WriteString("\n\n")

	writeField(&b, "Issuer", r.Issuer)
	writeField(&b, "Category", r.Category)
	writeField(&b, "Location", r.Location)
	if r.AchievedOn != nil {
		writeField(&b, "Met on", r.AchievedOn.Format("January 2, 2006"))
	}
	if len(r.Tags) > 0 {
		writeField(&b, "Tags", strings.Join(r.Tags, ", "))
	}
	writeField(&b, "Credential", r.CredentialURL)
	writeField(&b, "Proof", r.ProofURL)

	box := detailBoxStyle
	if m.width > 0 {
		box = box.Width(min(m.width-2, 80))
	}
	return box.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func (m Model) hints() string {
	switch {
	case m.session.SelectionState().IsOpen:
		return "esc close  q quit"
	case m.searching:
		return "type to filter  enter/esc done"
	default:
		return "/ search  ↑/↓ move  enter open  q quit"
	}
}

// writeField writes one labelled detail line; empty values are omitted.
func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(subtleStyle.Render(label + ": "))
	b.WriteString(value)
	b.WriteString("\n")
}

func statusStyle(s model.CredentialStatus) lipgloss.Style {
	if s == model.StatusAchieved {
		return achievedStyle
	}
	return desiredStyle
}

func statusBadge(s model.CredentialStatus) string {
	if s == model.StatusAchieved {
		return "●"
	}
	return "○"
}

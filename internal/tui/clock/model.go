package clock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mdwtime/foundation/utils/timex"
	"github.com/msto63/mdwtime/internal/slots"
)

// Config holds clock view configuration
type Config struct {
	// Target time the countdown runs to
	Target timex.TimeOfDay

	// Refresh interval
	Refresh time.Duration

	// Start in UTC mode
	UTC bool

	// Optional slot store for the active slot list
	Store slots.Store

	// Clock source, time.Now if nil
	Now func() time.Time
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Target:  timex.Midnight,
		Refresh: time.Second,
	}
}

// Model is the clock TUI model
type Model struct {
	// State
	width    int
	now      time.Time
	utc      bool
	active   []*slots.Slot
	err      error
	progress progress.Model

	// Configuration
	target  timex.TimeOfDay
	refresh time.Duration
	store   slots.Store
	clock   func() time.Time
}

// New creates a new clock model
func New(cfg Config) Model {
	if cfg.Refresh <= 0 {
		cfg.Refresh = time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	bar := progress.New(progress.WithGradient(string(ColorPrimary), string(ColorSecondary)))
	bar.Width = 40

	return Model{
		now:      cfg.Now(),
		utc:      cfg.UTC,
		progress: bar,
		target:   cfg.Target,
		refresh:  cfg.Refresh,
		store:    cfg.Store,
		clock:    cfg.Now,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.loadActiveSlots)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "u":
			m.utc = !m.utc
			return m, m.loadActiveSlots
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(max(msg.Width-20, 10), 60)

	case tickMsg:
		m.now = m.clock()
		return m, tea.Batch(m.tick(), m.loadActiveSlots)

	case activeSlotsMsg:
		m.active = msg.slots
		m.err = msg.err
	}

	return m, nil
}

// Current returns the displayed time of day
func (m Model) Current() timex.TimeOfDay {
	if m.utc {
		return timex.FromTime(m.now.UTC())
	}
	return timex.FromTime(m.now.Local())
}

// Countdown returns the time from now forward to the target
func (m Model) Countdown() timex.Span {
	ms := m.target.MillisOfDay() - m.Current().MillisOfDay()
	if ms < 0 {
		ms += timex.MillisPerDay
	}
	return timex.SpanOf(time.Duration(ms) * time.Millisecond)
}

// DayProgress returns the elapsed fraction of the day
func (m Model) DayProgress() float64 {
	return float64(m.Current().MillisOfDay()) / float64(timex.MillisPerDay)
}

// View renders the model
func (m Model) View() string {
	current := m.Current()

	zone := "Lokal"
	if m.utc {
		zone = "UTC"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("mdwtime · Uhr"))
	b.WriteString("\n\n")
	b.WriteString(ClockStyle.Render(current.Format(false)))
	b.WriteString("  " + LabelStyle.Render(zone))
	b.WriteString("\n\n")

	b.WriteString(row("Ziel", ValueStyle.Render(m.target.Format(true))))
	b.WriteString(row("Countdown", ValueStyle.Render(m.Countdown().String())))

	gap := m.target.Between(current)
	gapStyle := ValueStyle
	if gap.Negative() {
		gapStyle = NegativeValueStyle
	}
	b.WriteString(row("Abstand", gapStyle.Render(gap.String())))
	b.WriteString(row("Tag", m.progress.ViewAs(m.DayProgress())))

	if m.store != nil {
		b.WriteString("\n")
		b.WriteString(m.renderSlots(current))
	}

	body := PanelStyle.Render(b.String())
	help := HelpStyle.Render("u: UTC/Lokal umschalten • q: beenden")
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

func (m Model) renderSlots(current timex.TimeOfDay) string {
	if m.err != nil {
		return ErrorStyle.Render("Fehler: " + m.err.Error())
	}
	if len(m.active) == 0 {
		return LabelStyle.Render("Keine aktiven Slots")
	}

	lines := make([]string, 0, len(m.active))
	for _, s := range m.active {
		lines = append(lines, fmt.Sprintf("%s %s-%s  noch %s",
			SlotStyle.Render(s.Name), s.Start.Format(false), s.End.Format(false),
			s.Remaining(current).String()))
	}
	return strings.Join(lines, "\n")
}

func row(label, value string) string {
	return LabelStyle.Render(label) + value + "\n"
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadActiveSlots queries the store for slots containing the current time
func (m Model) loadActiveSlots() tea.Msg {
	if m.store == nil {
		return activeSlotsMsg{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	active, err := m.store.ActiveAt(ctx, m.Current())
	return activeSlotsMsg{slots: active, err: err}
}

// Run starts the clock TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

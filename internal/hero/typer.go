package hero

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Santi2307/santi-portfolio/internal/typewriter"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances the Typer whose id and tag it carries. Ticks with an
// outdated tag are dropped, so a reset never runs two tick chains.
type TickMsg struct {
	Time time.Time
	ID   int
	tag  int
}

// Typer is a bubbletea component around a typewriter.Machine.
type Typer struct {
	id      int
	tag     int
	phrases []string
	cfg     typewriter.Config
	mode    typewriter.Mode
	machine *typewriter.Machine
	text    string
}

func NewTyper(phrases []string, cfg typewriter.Config, mode typewriter.Mode) (Typer, error) {
	m, err := typewriter.NewMachine(phrases, cfg, mode)
	if err != nil {
		return Typer{}, err
	}
	return Typer{
		id:      nextID(),
		phrases: phrases,
		cfg:     cfg,
		mode:    mode,
		machine: m,
	}, nil
}

// ID identifies the Typer in TickMsg.
func (t Typer) ID() int { return t.id }

// Init schedules the first tick.
func (t Typer) Init() tea.Cmd {
	return t.tick()
}

func (t Typer) Update(msg tea.Msg) (Typer, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != t.id || tick.tag != t.tag || t.Done() {
		return t, nil
	}

	if text, changed := t.machine.Step(); changed {
		t.text = text
	}
	if t.Done() {
		return t, nil
	}

	t.tag++
	return t, t.tick()
}

// Reset rewinds to the first phrase and invalidates pending ticks. The
// returned command restarts the animation.
func (t Typer) Reset() (Typer, tea.Cmd) {
	// phrases were validated by NewTyper
	m, _ := typewriter.NewMachine(t.phrases, t.cfg, t.mode)
	t.machine = m
	t.text = ""
	t.tag++
	return t, t.tick()
}

func (t Typer) tick() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.machine.Delay(), func(now time.Time) tea.Msg {
		return TickMsg{Time: now, ID: id, tag: tag}
	})
}

// Done reports whether a one-shot animation has finished.
func (t Typer) Done() bool {
	return t.machine.State() == typewriter.Done
}

// Text is the currently visible text.
func (t Typer) Text() string { return t.text }

func (t Typer) View() string { return t.text }

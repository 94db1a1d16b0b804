// Package typewriter animates a rotating list of phrases the way a person
// types them: one character at a time, a pause, a quicker deletion, another
// pause, then the next phrase.
//
// Machine is the pure state machine and knows nothing about time beyond the
// delay it asks for before its next step. Start wraps a Machine in a
// timer-driven loop with a cancellation handle.
package typewriter

import (
	"fmt"
	"time"

	"github.com/rivo/uniseg"
)

// State is one of the animation phases.
type State int

const (
	Typing State = iota
	PauseAfterType
	Deleting
	PauseAfterDelete
	Done
)

func (s State) String() string {
	switch s {
	case Typing:
		return "typing"
	case PauseAfterType:
		return "pause-after-type"
	case Deleting:
		return "deleting"
	case PauseAfterDelete:
		return "pause-after-delete"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Mode selects between the endless rotation and the one-shot headline.
type Mode int

const (
	// Loop types and deletes every phrase forever.
	Loop Mode = iota
	// OneShot types a single phrase, pauses, and stops.
	OneShot
)

// Snapshot is a copy of the animator state at one point in time.
type Snapshot struct {
	Index    int
	Text     string
	Deleting bool
	State    State
}

type phrase struct {
	text string
	// ends[i] is the byte offset just past the i-th grapheme cluster.
	ends []int
}

func newPhrase(s string) phrase {
	p := phrase{text: s}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		p.ends = append(p.ends, to)
	}
	return p
}

// prefix returns the first n characters.
func (p phrase) prefix(n int) string {
	if n == 0 {
		return ""
	}
	return p.text[:p.ends[n-1]]
}

func (p phrase) length() int { return len(p.ends) }

// Machine advances one tick per Step call. It is not safe for concurrent
// use; the owner serializes access.
type Machine struct {
	phrases []phrase
	cfg     Config
	mode    Mode

	index   int
	visible int
	state   State
}

// NewMachine validates its input and returns a machine positioned at the
// first phrase with nothing typed. At least one phrase must be non-empty.
// OneShot mode takes exactly one phrase.
func NewMachine(phrases []string, cfg Config, mode Mode) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(phrases) == 0 {
		return nil, fmt.Errorf("%w: no phrases", ErrInvalidInput)
	}
	if mode == OneShot && len(phrases) != 1 {
		return nil, fmt.Errorf("%w: one-shot mode takes a single phrase, got %d", ErrInvalidInput, len(phrases))
	}

	m := &Machine{cfg: cfg, mode: mode}
	nonEmpty := false
	for _, s := range phrases {
		p := newPhrase(s)
		if p.length() > 0 {
			nonEmpty = true
		}
		m.phrases = append(m.phrases, p)
	}
	if !nonEmpty {
		return nil, fmt.Errorf("%w: all phrases are empty", ErrInvalidInput)
	}

	m.enterTyping()
	return m, nil
}

// enterTyping starts the current phrase. An empty phrase is complete
// before its first tick.
func (m *Machine) enterTyping() {
	m.visible = 0
	if m.current().length() == 0 {
		m.state = PauseAfterType
		return
	}
	m.state = Typing
}

func (m *Machine) current() phrase { return m.phrases[m.index] }

// State returns the current phase.
func (m *Machine) State() State { return m.state }

// Index returns the position of the current phrase.
func (m *Machine) Index() int { return m.index }

// Text returns the visible prefix of the current phrase.
func (m *Machine) Text() string { return m.current().prefix(m.visible) }

// Snapshot copies the current state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Index:    m.index,
		Text:     m.Text(),
		Deleting: m.state == Deleting,
		State:    m.state,
	}
}

// Delay is how long the owner waits before the next Step. It is zero once
// the machine is Done.
func (m *Machine) Delay() time.Duration {
	switch m.state {
	case Typing:
		return m.cfg.TypingSpeed
	case PauseAfterType:
		return m.cfg.PauseAfterTyping
	case Deleting:
		return m.cfg.DeletingSpeed
	case PauseAfterDelete:
		return m.cfg.PauseAfterDelete
	default:
		return 0
	}
}

// Step performs one tick. changed is true when the visible text differs
// from the previous tick; pause ticks never change it.
func (m *Machine) Step() (text string, changed bool) {
	switch m.state {
	case Typing:
		m.visible++
		if m.visible >= m.current().length() {
			m.state = PauseAfterType
		}
		return m.Text(), true

	case PauseAfterType:
		switch {
		case m.mode == OneShot:
			m.state = Done
		case m.visible == 0:
			m.state = PauseAfterDelete
		default:
			m.state = Deleting
		}

	case Deleting:
		m.visible--
		if m.visible <= 0 {
			m.state = PauseAfterDelete
		}
		return m.Text(), true

	case PauseAfterDelete:
		m.index = (m.index + 1) % len(m.phrases)
		m.enterTyping()
	}

	return m.Text(), false
}

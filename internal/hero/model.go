// Package hero renders the portfolio's hero section in a terminal: the
// greeting is typed once, then the job titles rotate underneath it.
package hero

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Santi2307/santi-portfolio/internal/content"
	"github.com/Santi2307/santi-portfolio/internal/typewriter"
)

var (
	primary = lipgloss.AdaptiveColor{Light: "#5B4BDB", Dark: "#8B7CFF"}
	muted   = lipgloss.AdaptiveColor{Light: "#6B7080", Dark: "#9AA0B4"}

	greetingStyle = lipgloss.NewStyle().Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primary)
	introStyle    = lipgloss.NewStyle().Foreground(muted).Width(72)
	helpStyle     = lipgloss.NewStyle().Foreground(muted).Italic(true)
	cursor        = lipgloss.NewStyle().Foreground(primary).Render("▌")
	frame         = lipgloss.NewStyle().Padding(1, 4)
)

type Model struct {
	greeting Typer
	titles   Typer
	intro    string

	showTitles bool
	width      int
}

func New(cfg typewriter.Config) (Model, error) {
	greeting, err := NewTyper([]string{content.Greeting}, cfg, typewriter.OneShot)
	if err != nil {
		return Model{}, err
	}
	titles, err := NewTyper(content.JobTitles, cfg, typewriter.Loop)
	if err != nil {
		return Model{}, err
	}
	return Model{
		greeting: greeting,
		titles:   titles,
		intro:    strings.Join(strings.Fields(content.HeroIntro), " "),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.greeting.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			var cmd tea.Cmd
			m.greeting, cmd = m.greeting.Reset()
			m.titles, _ = m.titles.Reset()
			m.showTitles = false
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case TickMsg:
		switch msg.ID {
		case m.greeting.ID():
			var cmd tea.Cmd
			m.greeting, cmd = m.greeting.Update(msg)
			if m.greeting.Done() && !m.showTitles {
				m.showTitles = true
				return m, m.titles.Init()
			}
			return m, cmd
		case m.titles.ID():
			var cmd tea.Cmd
			m.titles, cmd = m.titles.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(greetingStyle.Render(m.greeting.View()))
	b.WriteString(cursor)
	b.WriteString("\n\n")

	if m.showTitles {
		b.WriteString("I'm a ")
		b.WriteString(titleStyle.Render(m.titles.View()))
		b.WriteString(cursor)
	}
	b.WriteString("\n\n")

	b.WriteString(introStyle.Render(m.intro))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("r restart • q quit"))

	return frame.Render(b.String())
}

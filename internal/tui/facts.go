// SPDX-License-Identifier: MIT
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hyperion/pkg/platform"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065")).
			Bold(true)
)

// ScreenType defines which screen is currently active
type ScreenType int

const (
	SectionScreen ScreenType = iota
	DetailScreen
)

var (
	quitKeys  = key.NewBinding(key.WithKeys("q", "ctrl+c"))
	upKeys    = key.NewBinding(key.WithKeys("up", "k"))
	downKeys  = key.NewBinding(key.WithKeys("down", "j"))
	enterKeys = key.NewBinding(key.WithKeys("enter"))
	backKeys  = key.NewBinding(key.WithKeys("esc"))
)

// section groups the entries sharing a Section name, in first-seen order.
type section struct {
	name    string
	entries []platform.Entry
}

// FactsModel is the Bubble Tea model for browsing platform facts.
type FactsModel struct {
	sections      []section
	selectedIndex int
	viewport      viewport.Model
	ready         bool
	err           error
	activeScreen  ScreenType

	load func() platform.Facts
}

type factsMsg struct {
	facts platform.Facts
}

type errMsg struct {
	err error
}

// NewFactsModel creates a model that loads the facts of the running binary.
func NewFactsModel() FactsModel {
	return FactsModel{
		activeScreen: SectionScreen,
		load:         platform.Current,
	}
}

// Init loads the facts.
func (m FactsModel) Init() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		if load == nil {
			return errMsg{fmt.Errorf("no facts source")}
		}
		return factsMsg{load()}
	}
}

func groupSections(entries []platform.Entry) []section {
	var out []section
	index := map[string]int{}
	for _, e := range entries {
		i, ok := index[e.Section]
		if !ok {
			i = len(out)
			index[e.Section] = i
			out = append(out, section{name: e.Section})
		}
		out[i].entries = append(out[i].entries, e)
	}
	return out
}

func (m FactsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.viewport.Style = lipgloss.NewStyle()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		m.refresh()

	case factsMsg:
		m.sections = groupSections(msg.facts.Entries())
		m.refresh()

	case errMsg:
		m.err = msg.err

	case tea.KeyMsg:
		if key.Matches(msg, quitKeys) {
			return m, tea.Quit
		}

		switch m.activeScreen {
		case SectionScreen:
			switch {
			case key.Matches(msg, upKeys):
				if m.selectedIndex > 0 {
					m.selectedIndex--
				}
			case key.Matches(msg, downKeys):
				if m.selectedIndex < len(m.sections)-1 {
					m.selectedIndex++
				}
			case key.Matches(msg, enterKeys):
				if len(m.sections) > 0 {
					m.activeScreen = DetailScreen
				}
			}
		case DetailScreen:
			if key.Matches(msg, backKeys) {
				m.activeScreen = SectionScreen
			}
		}
		m.refresh()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *FactsModel) refresh() {
	if !m.ready {
		return
	}
	if m.activeScreen == DetailScreen {
		m.viewport.SetContent(m.renderDetail())
		return
	}
	m.viewport.SetContent(m.renderSections())
}

// View renders the UI
func (m FactsModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to exit.", m.err)
	}

	var title, help string
	if m.activeScreen == SectionScreen {
		title = titleStyle.Render("Platform Facts")
		help = infoStyle.Render("↑/↓: Navigate • Enter: Open • q: Quit")
	} else {
		title = titleStyle.Render("Platform Facts: " + m.sections[m.selectedIndex].name)
		help = infoStyle.Render("Esc: Back • q: Quit")
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, m.viewport.View(), help)
}

func (m FactsModel) renderSections() string {
	if len(m.sections) == 0 {
		return "No facts loaded."
	}

	var sb strings.Builder
	for i, s := range m.sections {
		line := fmt.Sprintf("  %s (%d)\n", s.name, len(s.entries))
		if i == m.selectedIndex {
			line = highlightStyle.Render(fmt.Sprintf("▶ %s (%d)", s.name, len(s.entries))) + "\n"
		}
		sb.WriteString(line)
	}
	return sb.String()
}

func (m FactsModel) renderDetail() string {
	s := m.sections[m.selectedIndex]

	width := 0
	for _, e := range s.entries {
		width = max(width, len(e.Name))
	}

	var sb strings.Builder
	for _, e := range s.entries {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, e.Name, highlightStyle.Render(e.Value))
	}
	return sb.String()
}

// StartFactsUI launches the Bubble Tea facts viewer.
func StartFactsUI() error {
	p := tea.NewProgram(
		NewFactsModel(),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

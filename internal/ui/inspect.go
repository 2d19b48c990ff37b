// Package ui provides the interactive parse inspector: a release name typed
// into the prompt is parsed on every keystroke and the resulting record is
// rendered next to it.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nomadcxx/sceneparse/internal/parser"
	"github.com/Nomadcxx/sceneparse/internal/render"
)

// Model represents the inspector state
type Model struct {
	p        *parser.Parser
	section  string
	input    textinput.Model
	viewport viewport.Model
	release  *parser.Release
	history  []string
	ready    bool
	width    int
	height   int
}

// NewModel creates an inspector bound to the given parser. The section is
// used as a classification hint for every parse.
func NewModel(p *parser.Parser, section string) Model {
	ti := textinput.New()
	ti.Placeholder = "Release.Name.2024.1080p.WEB.x264-GROUP"
	ti.CharLimit = 250
	ti.Width = 70
	ti.Focus()

	return Model{
		p:       p,
		section: section,
		input:   ti,
	}
}

// Release returns the record for the name currently in the prompt.
func (m Model) Release() *parser.Release {
	return m.release
}

// Init initializes the inspector
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.resultView())
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if name := strings.TrimSpace(m.input.Value()); name != "" {
				m.history = append(m.history, name)
			}
			m.input.SetValue("")
			m.release = nil
			if m.ready {
				m.viewport.SetContent(m.resultView())
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if name := strings.TrimSpace(m.input.Value()); name != "" {
		m.release = m.p.ParseWithHint(name, m.section)
	} else {
		m.release = nil
	}
	if m.ready {
		m.viewport.SetContent(m.resultView())
	}

	return m, cmd
}

// View renders the inspector
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("sceneparse inspector") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	if m.ready {
		b.WriteString(m.viewport.View() + "\n")
	} else {
		b.WriteString(m.resultView() + "\n")
	}
	b.WriteString(FooterStyle.Render(
		FormatKeybinding("enter", "clear") + "  " +
			FormatKeybinding("esc", "quit")))
	return b.String()
}

// resultView renders the current record, or a short hint when the prompt
// is empty.
func (m Model) resultView() string {
	if m.release == nil {
		return LabelStyle.Render("type a release name to parse it")
	}
	return render.Text(m.release, true)
}

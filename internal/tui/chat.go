// Package tui renders the preference conversation in the terminal.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cultrend/trendseer/internal/chat"
)

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	bodyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// replyMsg carries an assistant reply back into the update loop.
type replyMsg struct {
	text string
}

// Model is the bubbletea model for the chat surface.
type Model struct {
	engine  *chat.Engine
	session *chat.Session

	viewport viewport.Model
	input    textinput.Model
	lines    []string
	waiting  bool
	ready    bool
}

// NewModel creates the chat UI around an engine and session.
func NewModel(engine *chat.Engine, session *chat.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Tell me about your preferences..."
	ti.Focus()
	ti.CharLimit = 500

	m := Model{
		engine:  engine,
		session: session,
		input:   ti,
	}
	m.appendAssistant(chat.Greeting)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 3
		}
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				break
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				break
			}
			m.input.Reset()
			m.appendUser(text)
			m.waiting = true
			cmds = append(cmds, m.ask(text))
		}

	case replyMsg:
		m.waiting = false
		m.appendAssistant(msg.text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	status := hintStyle.Render("enter to send, esc to quit")
	if m.waiting {
		status = hintStyle.Render("analyzing your preferences...")
	}
	return m.viewport.View() + "\n" + m.input.View() + "\n" + status
}

// ask runs the engine off the update loop.
func (m Model) ask(text string) tea.Cmd {
	engine, session := m.engine, m.session
	return func() tea.Msg {
		reply := engine.Process(context.Background(), session, text)
		return replyMsg{text: reply}
	}
}

func (m *Model) appendUser(text string) {
	m.lines = append(m.lines, userStyle.Render("you")+" "+bodyStyle.Render(text))
	m.refresh()
}

func (m *Model) appendAssistant(text string) {
	m.lines = append(m.lines, assistantStyle.Render("trendseer")+" "+bodyStyle.Render(text))
	m.refresh()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n\n"))
	m.viewport.GotoBottom()
}

// Run starts the chat program and blocks until it exits.
func Run(engine *chat.Engine, session *chat.Session) error {
	p := tea.NewProgram(NewModel(engine, session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

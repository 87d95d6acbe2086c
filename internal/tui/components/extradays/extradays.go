package extradays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/teetime/internal/form"
)

type AddMsg struct{}

type RemoveMsg struct {
	Index int
}

type UpdateMsg struct {
	Index int
	Value string
}

type DoneMsg struct{}

var (
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

// Model renders the extra playable days list and turns key presses into
// edit messages. It never mutates the list itself.
type Model struct {
	entries []form.Entry
	cursor  int
	editing bool
	input   textinput.Model
}

func New(entries []form.Entry) Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	return Model{
		entries: entries,
		input:   ti,
	}
}

// SetEntries replaces the rows and keeps the cursor in range.
func (m *Model) SetEntries(entries []form.Entry) {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Select(index int) {
	if index >= 0 && index < len(m.entries) {
		m.cursor = index
	}
}

func (m Model) Cursor() int { return m.cursor }

func (m Model) Editing() bool { return m.editing }

// StartEditing focuses the input on the selected row.
func (m *Model) StartEditing() tea.Cmd {
	if len(m.entries) == 0 {
		return nil
	}
	m.editing = true
	m.input.SetValue(m.entries[m.cursor].Value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.editing {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.Type {
			case tea.KeyEnter:
				m.editing = false
				m.input.Blur()
				return m, emit(UpdateMsg{Index: m.cursor, Value: strings.TrimSpace(m.input.Value())})
			case tea.KeyEsc:
				m.editing = false
				m.input.Blur()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", "e":
		cmd := m.StartEditing()
		return m, cmd
	case "a":
		return m, emit(AddMsg{})
	case "x", "delete":
		return m, emit(RemoveMsg{Index: m.cursor})
	case "esc", "q":
		return m, emit(DoneMsg{})
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	for i, e := range m.entries {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		var value string
		switch {
		case i == m.cursor && m.editing:
			value = m.input.View()
		case strings.TrimSpace(e.Value) == "":
			value = placeholderStyle.Render("(empty)")
		case e.Invalid:
			value = invalidStyle.Render(e.Value + "  invalid or past date")
		default:
			value = e.Value
		}
		fmt.Fprintf(&b, "%s%s\n", marker, value)
	}
	return b.String()
}

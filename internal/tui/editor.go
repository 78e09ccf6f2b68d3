package tui

import (
	"strings"

	"codeberg.org/branchadmin/server/internal/assist"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const minContentWidth = 40

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskMsg:
		msg.task()
		m.syncFromPage()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(m.contentWidth() - 2)
		m.renderer = nil
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// notices are modal: nothing else reacts until they are dismissed
		if len(m.notices) > 0 {
			switch msg.Type {
			case tea.KeyEnter, tea.KeyEsc, tea.KeySpace:
				m.notices = m.notices[1:]
			case tea.KeyCtrlC:
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+g":
			m.generate()
			return m, nil

		case "ctrl+p":
			m.preview = !m.preview
			return m, nil
		}

		if m.preview {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if v := m.editor.Value(); v != m.field.Value() {
		m.field.SetValue(v)
	}

	return m, cmd
}

// clicks the page trigger the controller listens on
func (m *Model) generate() {
	m.field.SetValue(m.editor.Value())
	m.status = ""

	if !m.trigger.Click() {
		m.status = "a generation is already running"
	}

	m.syncFromPage()
}

// copies what the controller wrote into the field back into the editor
func (m *Model) syncFromPage() {
	if v := m.field.Value(); v != m.editor.Value() {
		m.editor.SetValue(v)
	}
}

func (m *Model) busy() bool {
	if m.state != nil && m.state() == assist.Requesting {
		return true
	}

	return m.indicator != nil && m.indicator.Visible()
}

func (m *Model) contentWidth() int {
	return max(m.width-4, minContentWidth)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Left,
		titleStyle.Render(m.title),
		modeStyle.Render("("+m.mode.String()+")"),
	)
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.preview {
		b.WriteString(boxStyle.Width(m.contentWidth()).Render(m.renderPreview()))
	} else {
		b.WriteString(boxStyle.Width(m.contentWidth()).Render(m.editor.View()))
	}
	b.WriteString("\n")

	switch {
	case m.busy():
		b.WriteString(m.spinner.View() + " " + infoStyle.Render("Generating..."))
	case !m.trigger.Enabled():
		b.WriteString(disabledStyle.Render("generate unavailable"))
	}
	b.WriteString("\n")

	if m.errors != nil {
		if text := strings.TrimSpace(m.errors.Text()); text != "" {
			b.WriteString(errorStyle.Render(text))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(infoStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[Ctrl+G: Generate] [Ctrl+P: Preview] [Ctrl+C: Quit]"))

	if len(m.notices) > 0 {
		notice := noticeStyle.Render(m.notices[0] + "\n\n" + infoStyle.Render("press enter to dismiss"))

		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, notice)
		}

		return notice
	}

	return b.String()
}

func (m *Model) renderPreview() string {
	text := m.field.Value()
	if strings.TrimSpace(text) == "" {
		return infoStyle.Render("nothing to preview yet")
	}

	if m.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(m.contentWidth()-4),
		)
		if err != nil {
			return text
		}
		m.renderer = r
	}

	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}

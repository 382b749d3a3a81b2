package tui

import "strings"

func (m Model) View() string {
	var b strings.Builder
	if m.ready {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderLog())
	}
	if m.busy {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" fetching..."))
	} else {
		b.WriteString(m.styles.Prompt.Render(prompt))
		b.WriteString(m.input.View())
	}
	return b.String()
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m Model) renderLog() string {
	var b strings.Builder
	for _, l := range m.log {
		b.WriteString(m.renderLine(l))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderLine(l line) string {
	switch l.kind {
	case lineCommand:
		return m.styles.Command.Render(l.text)
	case lineError:
		return m.styles.Error.Render(l.text)
	case lineSuccess:
		return m.styles.Success.Render(l.text)
	case lineComponent:
		return m.styles.Title.Render(l.text)
	default:
		return m.styles.Info.Render(l.text)
	}
}

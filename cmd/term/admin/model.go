// Package admin is the password-gated management console: one tab per
// content kind, schema-driven forms, and the usual list/edit/delete loop
// over the portfolio API.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/client"
	"termfolio/internal/portfolio"
)

const requestTimeout = 10 * time.Second

// apiClient is the slice of the API client the console needs.
type apiClient interface {
	Login(ctx context.Context, password string) (string, error)
	ListKind(ctx context.Context, kind string) ([]map[string]interface{}, error)
	CreateKind(ctx context.Context, kind string, fields map[string]interface{}) (map[string]interface{}, error)
	UpdateKind(ctx context.Context, kind, id string, fields map[string]interface{}) (map[string]interface{}, error)
	DeleteKind(ctx context.Context, kind, id string) error
	SetToken(tok string)
}

type state int

const (
	stateLogin state = iota
	stateList
	stateForm
	stateConfirmDelete
)

// Messages delivered by the API commands.
type (
	loginOKMsg struct{ token string }
	recordsMsg struct {
		kind    string
		records []map[string]interface{}
	}
	mutatedMsg struct{ note string }
	apiErrMsg  struct{ err error }
)

// Model is the bubbletea model for the admin console.
type Model struct {
	api    apiClient
	styles adminStyles

	state   state
	tab     int // index into portfolio.Kinds
	records []map[string]interface{}
	cursor  int
	form    *form
	status  string

	password textinput.Model

	// token persistence, overridable in tests
	saveToken  func(tok string) error
	clearToken func() error

	width  int
	height int
}

type adminStyles struct {
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	header      lipgloss.Style
	selected    lipgloss.Style
	row         lipgloss.Style
	status      lipgloss.Style
	errText     lipgloss.Style
	help        lipgloss.Style
}

func newAdminStyles() adminStyles {
	return adminStyles{
		tabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")).Underline(true),
		tabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#9e9e9e")),
		header:      lipgloss.NewStyle().Bold(true),
		selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
		row:         lipgloss.NewStyle(),
		status:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		errText:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		help:        lipgloss.NewStyle().Foreground(lipgloss.Color("#616161")),
	}
}

// New builds the console model. A token saved by a previous session is
// installed on the client so login is skipped until the server rejects it.
func New(api apiClient) Model {
	pw := textinput.New()
	pw.Placeholder = "admin password"
	pw.EchoMode = textinput.EchoPassword
	pw.Focus()

	m := Model{
		api:        api,
		styles:     newAdminStyles(),
		state:      stateLogin,
		password:   pw,
		saveToken:  client.SaveToken,
		clearToken: client.ClearToken,
	}
	if tok, err := client.LoadToken(); err == nil && tok != "" {
		api.SetToken(tok)
		m.state = stateList
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == stateList {
		return m.fetchCmd()
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginOKMsg:
		m.api.SetToken(msg.token)
		if err := m.saveToken(msg.token); err != nil {
			m.status = "logged in (token not persisted: " + err.Error() + ")"
		} else {
			m.status = "logged in"
		}
		m.state = stateList
		return m, m.fetchCmd()

	case recordsMsg:
		if msg.kind == m.kind() {
			m.records = msg.records
			if m.cursor >= len(m.records) {
				m.cursor = 0
			}
		}
		return m, nil

	case mutatedMsg:
		m.status = msg.note
		m.state = stateList
		m.form = nil
		return m, m.fetchCmd()

	case apiErrMsg:
		if errors.Is(msg.err, client.ErrUnauthorized) {
			// token expired or revoked, drop it and re-prompt
			_ = m.clearToken()
			m.api.SetToken("")
			m.state = stateLogin
			m.password.SetValue("")
			m.password.Focus()
			m.status = "session expired, log in again"
			return m, textinput.Blink
		}
		m.status = "error: " + msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case stateLogin:
			return m.updateLogin(msg)
		case stateList:
			return m.updateList(msg)
		case stateForm:
			return m.updateForm(msg)
		case stateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateLogin:
		m.password, cmd = m.password.Update(msg)
	case stateForm:
		if m.form != nil {
			cmd = m.form.update(msg)
		}
	}
	return m, cmd
}

func (m Model) kind() string { return portfolio.Kinds[m.tab] }

func (m Model) schema() portfolio.Schema { return portfolio.Schemas[m.kind()] }

func (m Model) selected() map[string]interface{} {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return nil
	}
	return m.records[m.cursor]
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		password := m.password.Value()
		api := m.api
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			tok, err := api.Login(ctx, password)
			if err != nil {
				return apiErrMsg{err}
			}
			return loginOKMsg{token: tok}
		}
	}
	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % len(portfolio.Kinds)
		m.cursor = 0
		m.records = nil
		return m, m.fetchCmd()
	case "shift+tab", "left", "h":
		m.tab = (m.tab - 1 + len(portfolio.Kinds)) % len(portfolio.Kinds)
		m.cursor = 0
		m.records = nil
		return m, m.fetchCmd()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		return m, nil
	case "r":
		return m, m.fetchCmd()
	case "n":
		f := newForm(m.schema(), nil)
		m.form = &f
		m.state = stateForm
		return m, textinput.Blink
	case "enter", "e":
		rec := m.selected()
		if rec == nil {
			return m, nil
		}
		f := newForm(m.schema(), rec)
		m.form = &f
		m.state = stateForm
		return m, textinput.Blink
	case "d":
		if m.selected() == nil {
			return m, nil
		}
		m.state = stateConfirmDelete
		return m, nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateList
		m.form = nil
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.next()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prev()
		return m, nil
	case tea.KeyEnter:
		if !m.form.onLastField() {
			m.form.next()
			return m, nil
		}
		return m, m.submitCmd()
	}
	return m, m.form.update(msg)
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		rec := m.selected()
		if rec == nil {
			m.state = stateList
			return m, nil
		}
		id, _ := rec["_id"].(string)
		kind := m.kind()
		singular := m.schema().Singular
		api := m.api
		m.state = stateList
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			if err := api.DeleteKind(ctx, kind, id); err != nil {
				return apiErrMsg{err}
			}
			return mutatedMsg{note: singular + " deleted"}
		}
	default:
		m.state = stateList
		return m, nil
	}
}

func (m Model) fetchCmd() tea.Cmd {
	kind := m.kind()
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		records, err := api.ListKind(ctx, kind)
		if err != nil {
			return apiErrMsg{err}
		}
		return recordsMsg{kind: kind, records: records}
	}
}

func (m Model) submitCmd() tea.Cmd {
	fields := m.form.values()
	editID := m.form.editID
	kind := m.kind()
	singular := m.schema().Singular
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var err error
		if editID == "" && kind != "resume" {
			_, err = api.CreateKind(ctx, kind, fields)
		} else {
			_, err = api.UpdateKind(ctx, kind, editID, fields)
		}
		if err != nil {
			return apiErrMsg{err}
		}
		if editID == "" {
			return mutatedMsg{note: singular + " created"}
		}
		return mutatedMsg{note: singular + " updated"}
	}
}

func (m Model) View() string {
	var b strings.Builder
	switch m.state {
	case stateLogin:
		b.WriteString(m.styles.header.Render("Admin login"))
		b.WriteString("\n\n")
		b.WriteString(m.password.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.help.Render("enter to log in, ctrl+c to quit"))
	case stateForm:
		b.WriteString(m.renderTabs())
		b.WriteString("\n\n")
		b.WriteString(m.form.view())
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render("tab next field, enter on last field saves, esc cancels"))
	case stateConfirmDelete:
		b.WriteString(m.renderTabs())
		b.WriteString("\n\n")
		b.WriteString(m.styles.errText.Render(fmt.Sprintf("Delete this %s? (y/n)", strings.ToLower(m.schema().Singular))))
	default:
		b.WriteString(m.renderTabs())
		b.WriteString("\n\n")
		b.WriteString(m.renderList())
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render("tab switch, n new, enter edit, d delete, r refresh, q quit"))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.status.Render(m.status))
	}
	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, kind := range portfolio.Kinds {
		label := portfolio.Schemas[kind].Singular
		if i == m.tab {
			tabs = append(tabs, m.styles.tabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.tabInactive.Render(label))
		}
	}
	return strings.Join(tabs, "  ")
}

func (m Model) renderList() string {
	if len(m.records) == 0 {
		return m.styles.help.Render("no records, press n to create one")
	}
	var b strings.Builder
	for i, rec := range m.records {
		text := recordSummary(m.schema(), rec)
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> " + text))
		} else {
			b.WriteString(m.styles.row.Render("  " + text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// recordSummary renders one list row from the record's first schema field.
func recordSummary(schema portfolio.Schema, rec map[string]interface{}) string {
	if len(schema.Fields) == 0 {
		return "(record)"
	}
	v := rec[schema.Fields[0].Name]
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fmt.Sprintf("%v", v)
}

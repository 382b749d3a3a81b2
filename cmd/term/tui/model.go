// Package tui is the visitor-facing terminal: a prompt, a scrollback log
// and a small command set that fetches portfolio content from the API.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/portfolio"
)

const prompt = "visitor@portfolio:~$ "

// lineKind classifies a scrollback line so the renderer can style it.
type lineKind int

const (
	lineInfo lineKind = iota
	lineCommand
	lineError
	lineSuccess
	lineComponent
)

type line struct {
	kind lineKind
	text string
}

// Fetcher is the slice of the API client the terminal needs.
type Fetcher interface {
	Projects(ctx context.Context) ([]portfolio.Project, error)
	Education(ctx context.Context) ([]portfolio.Education, error)
	Experience(ctx context.Context) ([]portfolio.Experience, error)
	TechStack(ctx context.Context) ([]portfolio.TechStack, error)
	Resume(ctx context.Context) (portfolio.Resume, error)
}

// Messages delivered by the fetch commands.
type (
	linesMsg struct{ lines []line }
	// resumeMsg carries the resume link so Update can decide whether to
	// open a browser.
	resumeMsg   struct{ link string }
	fetchErrMsg struct{ kind string }
)

// Model is the bubbletea model for the visitor terminal.
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   Styles

	fetch   Fetcher
	openURL func(url string) error

	log    []line
	busy   bool
	width  int
	height int
	ready  bool
}

// New builds the terminal model around an API fetcher.
func New(fetch Fetcher) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type 'help' to get started"
	ti.Focus()
	ti.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		input:   ti,
		spinner: sp,
		styles:  DefaultStyles(),
		fetch:   fetch,
		openURL: openBrowser,
	}
	m.log = append(m.log, banner(m.styles)...)
	return m
}

func banner(s Styles) []line {
	return []line{
		{lineInfo, "Welcome to the terminal portfolio."},
		{lineInfo, "Type 'help' to see the available commands."},
		{lineInfo, ""},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			cmdline := m.input.Value()
			m.input.SetValue("")
			return m.dispatch(cmdline)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 2
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.syncViewport()
		return m, nil

	case linesMsg:
		m.busy = false
		m.log = append(m.log, msg.lines...)
		m.syncViewport()
		return m, nil

	case resumeMsg:
		m.busy = false
		if msg.link != "" && msg.link != "#" {
			if err := m.openURL(msg.link); err != nil {
				m.log = append(m.log, line{lineError, "Failed to open the resume link."})
			} else {
				m.log = append(m.log, line{lineSuccess, "Opening resume..."})
			}
		} else {
			m.log = append(m.log, line{lineError, "Resume link not set by admin."})
		}
		m.syncViewport()
		return m, nil

	case fetchErrMsg:
		m.busy = false
		m.log = append(m.log, line{lineError, "Failed to fetch " + msg.kind + "."})
		m.syncViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch runs one command line. Data commands fetch asynchronously; only
// one fetch runs at a time, further input is refused until it finishes.
func (m Model) dispatch(cmdline string) (Model, tea.Cmd) {
	name := strings.ToLower(strings.TrimSpace(cmdline))
	if name == "" {
		return m, nil
	}
	m.log = append(m.log, line{lineCommand, prompt + name})

	switch name {
	case "help":
		m.log = append(m.log, helpLines()...)
		m.syncViewport()
		return m, nil

	case "clear":
		m.log = nil
		m.syncViewport()
		return m, nil

	case "projects", "education", "techstack", "experience", "resume":
		if m.busy {
			m.log = append(m.log, line{lineError, "A command is already running, please wait."})
			m.syncViewport()
			return m, nil
		}
		m.busy = true
		m.syncViewport()
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd(name))

	default:
		m.log = append(m.log, line{lineError, "Command not found: " + name})
		m.log = append(m.log, line{lineInfo, "Type 'help' to see the available commands."})
		m.syncViewport()
		return m, nil
	}
}

func helpLines() []line {
	return []line{
		{lineInfo, "Available commands:"},
		{lineComponent, "  help        show this help"},
		{lineComponent, "  projects    list portfolio projects"},
		{lineComponent, "  education   show education history"},
		{lineComponent, "  techstack   show technologies by category"},
		{lineComponent, "  experience  show work experience"},
		{lineComponent, "  resume      open the resume"},
		{lineComponent, "  clear       clear the screen"},
	}
}

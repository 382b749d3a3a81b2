package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"termfolio/internal/portfolio"
)

type fakeFetcher struct {
	projects   []portfolio.Project
	education  []portfolio.Education
	experience []portfolio.Experience
	techstack  []portfolio.TechStack
	resume     portfolio.Resume
	err        error
}

func (f *fakeFetcher) Projects(ctx context.Context) ([]portfolio.Project, error) {
	return f.projects, f.err
}
func (f *fakeFetcher) Education(ctx context.Context) ([]portfolio.Education, error) {
	return f.education, f.err
}
func (f *fakeFetcher) Experience(ctx context.Context) ([]portfolio.Experience, error) {
	return f.experience, f.err
}
func (f *fakeFetcher) TechStack(ctx context.Context) ([]portfolio.TechStack, error) {
	return f.techstack, f.err
}
func (f *fakeFetcher) Resume(ctx context.Context) (portfolio.Resume, error) {
	return f.resume, f.err
}

func lastLine(m Model) line {
	return m.log[len(m.log)-1]
}

func logTexts(m Model) []string {
	var out []string
	for _, l := range m.log {
		out = append(out, l.text)
	}
	return out
}

func TestUnknownCommand(t *testing.T) {
	m := New(&fakeFetcher{})
	m, cmd := m.dispatch("foobar")
	require.Nil(t, cmd)
	require.Contains(t, logTexts(m), "Command not found: foobar")
}

func TestHelpIsLocal(t *testing.T) {
	m := New(&fakeFetcher{})
	m, cmd := m.dispatch("help")
	require.Nil(t, cmd)
	require.Contains(t, logTexts(m), "Available commands:")
	require.False(t, m.busy)
}

func TestClearEmptiesLog(t *testing.T) {
	m := New(&fakeFetcher{})
	m, _ = m.dispatch("help")
	require.NotEmpty(t, m.log)
	m, _ = m.dispatch("clear")
	require.Empty(t, m.log)
}

func TestEmptyInputIsIgnored(t *testing.T) {
	m := New(&fakeFetcher{})
	before := len(m.log)
	m, cmd := m.dispatch("   ")
	require.Nil(t, cmd)
	require.Len(t, m.log, before)
}

func TestCommandsAreCaseInsensitive(t *testing.T) {
	m := New(&fakeFetcher{})
	m, cmd := m.dispatch("  PROJECTS ")
	require.NotNil(t, cmd)
	require.True(t, m.busy)
}

func TestDataCommandSetsBusy(t *testing.T) {
	m := New(&fakeFetcher{})
	m, cmd := m.dispatch("projects")
	require.NotNil(t, cmd)
	require.True(t, m.busy)
}

func TestBusyRejectsSecondCommand(t *testing.T) {
	m := New(&fakeFetcher{})
	m, _ = m.dispatch("projects")
	m, cmd := m.dispatch("education")
	require.Nil(t, cmd)
	require.Equal(t, lineError, lastLine(m).kind)
	require.Contains(t, lastLine(m).text, "already running")
}

func TestFetchResultClearsBusy(t *testing.T) {
	m := New(&fakeFetcher{})
	m, _ = m.dispatch("projects")

	next, _ := m.Update(linesMsg{lines: []line{{lineComponent, "* X"}}})
	m = next.(Model)
	require.False(t, m.busy)
	require.Contains(t, logTexts(m), "* X")
}

func TestFetchErrorLine(t *testing.T) {
	m := New(&fakeFetcher{})
	m, _ = m.dispatch("projects")

	next, _ := m.Update(fetchErrMsg{kind: "projects"})
	m = next.(Model)
	require.False(t, m.busy)
	require.Equal(t, "Failed to fetch projects.", lastLine(m).text)
	require.Equal(t, lineError, lastLine(m).kind)
}

func TestFetchCmdFormatsProjects(t *testing.T) {
	f := &fakeFetcher{projects: []portfolio.Project{
		{Title: "X", Description: "Y", TechBucket: []string{"Go", "Gin"}},
	}}
	m := New(f)
	msg := m.fetchCmd("projects")()
	lm, ok := msg.(linesMsg)
	require.True(t, ok)
	require.Equal(t, "* X", lm.lines[0].text)
	require.Contains(t, lm.lines[2].text, "Go, Gin")
}

func TestFetchCmdErrorMapsToErrMsg(t *testing.T) {
	m := New(&fakeFetcher{err: errors.New("boom")})
	msg := m.fetchCmd("education")()
	require.Equal(t, fetchErrMsg{kind: "education"}, msg)
}

func TestResumeOpensLink(t *testing.T) {
	m := New(&fakeFetcher{})
	var opened string
	m.openURL = func(url string) error {
		opened = url
		return nil
	}
	m.busy = true

	next, _ := m.Update(resumeMsg{link: "https://a.example/r.pdf"})
	m = next.(Model)
	require.Equal(t, "https://a.example/r.pdf", opened)
	require.Equal(t, "Opening resume...", lastLine(m).text)
	require.Equal(t, lineSuccess, lastLine(m).kind)
}

func TestResumeUnsetLink(t *testing.T) {
	for _, link := range []string{"", "#"} {
		m := New(&fakeFetcher{})
		m.openURL = func(url string) error {
			t.Fatalf("openURL called for unset link %q", link)
			return nil
		}
		next, _ := m.Update(resumeMsg{link: link})
		m = next.(Model)
		require.Equal(t, "Resume link not set by admin.", lastLine(m).text)
	}
}

func TestQuitKeys(t *testing.T) {
	m := New(&fakeFetcher{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestFormatEmptyCollections(t *testing.T) {
	require.Equal(t, "No projects yet.", formatProjects(nil)[0].text)
	require.Equal(t, "No education entries yet.", formatEducation(nil)[0].text)
	require.Equal(t, "No tech stack entries yet.", formatTechStack(nil)[0].text)
	require.Equal(t, "No experience entries yet.", formatExperience(nil)[0].text)
}

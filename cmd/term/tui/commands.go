package tui

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/portfolio"
)

const fetchTimeout = 10 * time.Second

// fetchCmd returns the tea.Cmd that loads one content kind and formats it
// into scrollback lines.
func (m Model) fetchCmd(kind string) tea.Cmd {
	fetch := m.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		switch kind {
		case "projects":
			items, err := fetch.Projects(ctx)
			if err != nil {
				return fetchErrMsg{kind}
			}
			return linesMsg{formatProjects(items)}
		case "education":
			items, err := fetch.Education(ctx)
			if err != nil {
				return fetchErrMsg{kind}
			}
			return linesMsg{formatEducation(items)}
		case "techstack":
			items, err := fetch.TechStack(ctx)
			if err != nil {
				return fetchErrMsg{kind}
			}
			return linesMsg{formatTechStack(items)}
		case "experience":
			items, err := fetch.Experience(ctx)
			if err != nil {
				return fetchErrMsg{kind}
			}
			return linesMsg{formatExperience(items)}
		case "resume":
			resume, err := fetch.Resume(ctx)
			if err != nil {
				return fetchErrMsg{kind}
			}
			return resumeMsg{link: resume.Link}
		}
		return fetchErrMsg{kind}
	}
}

func formatProjects(items []portfolio.Project) []line {
	if len(items) == 0 {
		return []line{{lineInfo, "No projects yet."}}
	}
	var out []line
	for _, p := range items {
		out = append(out, line{lineComponent, "* " + p.Title})
		out = append(out, line{lineInfo, "    " + p.Description})
		if len(p.TechBucket) > 0 {
			out = append(out, line{lineInfo, "    tech: " + strings.Join(p.TechBucket, ", ")})
		}
		if p.Link != "" {
			out = append(out, line{lineInfo, "    link: " + p.Link})
		}
	}
	return out
}

func formatEducation(items []portfolio.Education) []line {
	if len(items) == 0 {
		return []line{{lineInfo, "No education entries yet."}}
	}
	var out []line
	for _, e := range items {
		out = append(out, line{lineComponent, "* " + e.Degree + ", " + e.Institution + " (" + e.Year + ")"})
		if e.Details != "" {
			out = append(out, line{lineInfo, "    " + e.Details})
		}
	}
	return out
}

func formatTechStack(items []portfolio.TechStack) []line {
	if len(items) == 0 {
		return []line{{lineInfo, "No tech stack entries yet."}}
	}
	var out []line
	for _, t := range items {
		out = append(out, line{lineComponent, "* " + t.Category + ": " + strings.Join(t.Items, ", ")})
	}
	return out
}

func formatExperience(items []portfolio.Experience) []line {
	if len(items) == 0 {
		return []line{{lineInfo, "No experience entries yet."}}
	}
	var out []line
	for _, e := range items {
		out = append(out, line{lineComponent, "* " + e.Role + " @ " + e.Company + " (" + e.Duration + ")"})
		out = append(out, line{lineInfo, "    " + e.Description})
	}
	return out
}

// openBrowser launches the default browser on the resume link.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raghavdwd/folio/internal/activity"
	"github.com/raghavdwd/folio/internal/app"
	"github.com/raghavdwd/folio/internal/portfolio"
)

// contribMsg delivers the activity feed fetch result.
type contribMsg struct {
	report activity.Report
	err    error
}

type homeModel struct {
	app   *app.Application
	theme Theme

	vp      viewport.Model
	report  *activity.Report
	loading bool
	failed  bool
	width   int
}

func newHomeModel(application *app.Application, theme Theme) homeModel {
	vp := viewport.New(80, 20)
	return homeModel{
		app:     application,
		theme:   theme,
		vp:      vp,
		loading: true,
		width:   80,
	}
}

func (m homeModel) init() tea.Cmd {
	application := m.app
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		report, err := application.Activity.Fetch(ctx)
		return contribMsg{report: report, err: err}
	}
}

func (m *homeModel) setSize(width, height int) {
	m.width = width
	m.vp.Width = width
	if height < 3 {
		height = 3
	}
	m.vp.Height = height
	m.vp.SetContent(m.renderContent())
}

func (m homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contribMsg:
		m.loading = false
		if msg.err != nil {
			m.failed = true
			m.app.Log.WithError(msg.err).Error("activity fetch failed")
		} else {
			m.report = &msg.report
		}
		m.vp.SetContent(m.renderContent())
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m homeModel) view() string {
	return m.vp.View()
}

func (m homeModel) renderContent() string {
	var b strings.Builder
	t := m.theme

	b.WriteString(t.TopBarTitle.Render("Raghav — builder, CS student, terminal resident"))
	b.WriteString("\n")
	b.WriteString(t.Footer.Render(strings.TrimSpace(portfolio.BioInfo)))
	b.WriteString("\n\n")

	b.WriteString(t.PaneTitle.Render("PROJECTS"))
	b.WriteString("\n")
	for _, p := range portfolio.Projects {
		b.WriteString(t.ListSel.Render("▸ " + p.Title))
		b.WriteString("  ")
		b.WriteString(t.TextFaintStyle().Render(strings.Join(p.Tags, " · ")))
		b.WriteString("\n")
		b.WriteString("  " + p.Description + "\n")
		if p.Link != "" && p.Link != "#" {
			b.WriteString(t.Footer.Render("  " + p.Link))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(t.PaneTitle.Render("SKILLS"))
	b.WriteString("\n")
	b.WriteString(m.renderSkills())
	b.WriteString("\n")

	b.WriteString(t.PaneTitle.Render("EXPERIENCE"))
	b.WriteString("\n")
	for _, e := range portfolio.Experiences {
		b.WriteString(fmt.Sprintf("%s %s\n", t.ListSel.Render(e.Role), t.Footer.Render("@ "+e.Company+" · "+e.Period)))
		for _, line := range e.Description {
			b.WriteString("  - " + line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(t.PaneTitle.Render("GITHUB ACTIVITY"))
	b.WriteString("\n")
	b.WriteString(m.renderActivity())
	return b.String()
}

func (m homeModel) renderSkills() string {
	var b strings.Builder
	perRow := m.width / 30
	if perRow < 1 {
		perRow = 1
	}
	for i, s := range portfolio.Skills {
		cell := fmt.Sprintf("%s %s", s.Icon.Glyph(), s.Name)
		b.WriteString(lipgloss.NewStyle().Width(30).Render(cell))
		if (i+1)%perRow == 0 {
			b.WriteString("\n")
		}
	}
	if len(portfolio.Skills)%perRow != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// renderActivity draws the contribution heat map, one column per week, one
// row per weekday. Placeholder cells render blank; the grid is jagged on
// the right, matching the data.
func (m homeModel) renderActivity() string {
	t := m.theme
	if m.loading {
		return t.Footer.Render("loading activity…") + "\n"
	}
	if m.failed || m.report == nil {
		return t.Footer.Render("Unable to load activity. View on GitHub: "+portfolio.GitHubProfileURL) + "\n"
	}

	weeks := activity.BucketWeeks(m.report.Contributions)
	var b strings.Builder
	for row := 0; row < 7; row++ {
		for _, week := range weeks {
			if row >= len(week) {
				b.WriteString(" ")
				continue
			}
			b.WriteString(renderCell(week[row]))
		}
		b.WriteString("\n")
	}
	b.WriteString(t.Footer.Render(fmt.Sprintf("%d contributions last year · %s", m.report.TotalLastYear, portfolio.GitHubProfileURL)))
	b.WriteString("\n")
	return b.String()
}

func renderCell(d activity.Day) string {
	token := activity.LevelColor(d.Level)
	if token == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(token)).Render("■")
}

// TextFaintStyle exposes the faint foreground as a style; themes keep only
// colors for it.
func (t Theme) TextFaintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextFaint)
}

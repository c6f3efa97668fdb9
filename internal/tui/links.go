package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbletea"

	"github.com/raghavdwd/folio/internal/app"
	"github.com/raghavdwd/folio/internal/linkview"
	"github.com/raghavdwd/folio/internal/shorturl"
)

// loginResultMsg reports the access-code exchange.
type loginResultMsg struct{ err error }

// dashboardDataMsg carries the jointly fetched link list and analytics
// summary. Each half fails independently; one failing does not blank the
// other.
type dashboardDataMsg struct {
	links      []shorturl.Link
	summary    *shorturl.Summary
	listErr    error
	summaryErr error
}

// opDoneMsg reports a create or delete; success triggers a full refetch.
type opDoneMsg struct {
	notice string
	err    error
}

// linkStatsMsg carries one link's analytics for the detail panel.
type linkStatsMsg struct {
	stats shorturl.LinkAnalytics
	err   error
}

type linksModel struct {
	app     *app.Application
	theme   Theme
	started bool
	width   int
	height  int

	// login form
	code      textinput.Model
	loggingIn bool
	loginErr  string

	// list state
	loading    bool
	links      []shorturl.Link
	summary    *shorturl.Summary
	listErr    string
	summaryErr string
	controller *linkview.Controller
	search     textinput.Model
	cursor     int
	notice     string
	noticeErr  bool

	// per-link detail panel
	stats        *shorturl.LinkAnalytics
	statsErr     string
	statsLoading bool

	// create form
	creating    bool
	urlInput    textinput.Model
	slugInput   textinput.Model
	createField int
	createErr   string
	busy        bool
}

func newLinksModel(application *app.Application, theme Theme) linksModel {
	code := textinput.New()
	code.Placeholder = "access code"
	code.EchoMode = textinput.EchoPassword
	code.CharLimit = 128

	search := textinput.New()
	search.Placeholder = "search slug or target…"
	search.CharLimit = 256

	urlInput := textinput.New()
	urlInput.Placeholder = "https://target.example.com/page"
	urlInput.CharLimit = 2048

	slugInput := textinput.New()
	slugInput.Placeholder = "custom slug (optional)"
	slugInput.CharLimit = 64

	return linksModel{
		app:        application,
		theme:      theme,
		code:       code,
		search:     search,
		urlInput:   urlInput,
		slugInput:  slugInput,
		controller: linkview.NewController(application.Config.PageSize),
		width:      80,
		height:     20,
	}
}

func (m *linksModel) init() tea.Cmd {
	m.started = true
	if m.app.Session.Current().Authenticated {
		m.loading = true
		return tea.Batch(m.refreshCmd(), textinput.Blink)
	}
	m.code.Focus()
	return textinput.Blink
}

func (m *linksModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = width - 30
}

func (m linksModel) capturing() bool {
	return m.code.Focused() || m.search.Focused() || m.creating
}

// refreshCmd fetches the list and the summary concurrently and reports both
// at once, so the view never renders a half-updated pair.
func (m linksModel) refreshCmd() tea.Cmd {
	application := m.app
	token := application.Session.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var (
			wg      sync.WaitGroup
			links   []shorturl.Link
			summary shorturl.Summary
			listErr error
			sumErr  error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			links, listErr = application.Links.List(ctx, token)
		}()
		go func() {
			defer wg.Done()
			summary, sumErr = application.Links.Summary(ctx, token)
		}()
		wg.Wait()

		msg := dashboardDataMsg{links: links, listErr: listErr, summaryErr: sumErr}
		if sumErr == nil {
			msg.summary = &summary
		}
		return msg
	}
}

func (m linksModel) loginCmd(code string) tea.Cmd {
	application := m.app
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		ip := shorturl.LookupIP(ctx)
		token, err := application.Links.Login(ctx, code, ip)
		if err != nil {
			return loginResultMsg{err: err}
		}
		if err := application.Session.Login(token); err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{}
	}
}

func (m linksModel) createCmd(target, slug string) tea.Cmd {
	application := m.app
	token := application.Session.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		created, err := application.Links.Create(ctx, token, shorturl.CreatePayload{
			ContentType: "url",
			Content:     target,
			Slug:        slug,
		})
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{notice: "created " + created.ShortURL}
	}
}

func (m linksModel) statsCmd(slug string) tea.Cmd {
	application := m.app
	token := application.Session.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		stats, err := application.Links.LinkAnalytics(ctx, token, slug)
		return linkStatsMsg{stats: stats, err: err}
	}
}

func (m linksModel) deleteCmd(slug string) tea.Cmd {
	application := m.app
	token := application.Session.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := application.Links.Delete(ctx, token, slug); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{notice: "deleted /" + slug}
	}
}

func (m linksModel) update(msg tea.Msg) (linksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.loggingIn = false
		if msg.err != nil {
			m.loginErr = msg.err.Error()
			return m, nil
		}
		m.loginErr = ""
		m.code.Reset()
		m.code.Blur()
		m.loading = true
		return m, m.refreshCmd()

	case dashboardDataMsg:
		m.loading = false
		m.listErr = ""
		m.summaryErr = ""
		if msg.listErr != nil {
			m.listErr = msg.listErr.Error()
		} else {
			m.links = msg.links
		}
		if msg.summaryErr != nil {
			m.summaryErr = msg.summaryErr.Error()
		} else {
			m.summary = msg.summary
		}
		m.clampCursor()
		return m, nil

	case opDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = msg.err.Error()
			m.noticeErr = true
			if m.creating {
				m.createErr = msg.err.Error()
			}
			return m, nil
		}
		m.notice = msg.notice
		m.noticeErr = false
		m.creating = false
		m.createErr = ""
		m.urlInput.Reset()
		m.slugInput.Reset()
		m.loading = true
		// The cache is invalidated wholesale: refetch rather than patch.
		return m, m.refreshCmd()

	case linkStatsMsg:
		m.statsLoading = false
		if msg.err != nil {
			m.statsErr = msg.err.Error()
			return m, nil
		}
		m.statsErr = ""
		m.stats = &msg.stats
		return m, nil

	case tea.KeyMsg:
		if !m.app.Session.Current().Authenticated {
			return m.updateLogin(msg)
		}
		if m.creating {
			return m.updateCreate(msg)
		}
		return m.updateList(msg)
	}

	// Blink ticks and other component messages go to whichever input has
	// focus.
	var cmd tea.Cmd
	switch {
	case m.code.Focused():
		m.code, cmd = m.code.Update(msg)
	case m.creating && m.createField == 0:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case m.creating:
		m.slugInput, cmd = m.slugInput.Update(msg)
	case m.search.Focused():
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m linksModel) updateLogin(msg tea.KeyMsg) (linksModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		code := strings.TrimSpace(m.code.Value())
		if code == "" || m.loggingIn {
			return m, nil
		}
		m.loggingIn = true
		m.loginErr = ""
		return m, m.loginCmd(code)
	}

	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

func (m linksModel) updateCreate(msg tea.KeyMsg) (linksModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.creating = false
		m.createErr = ""
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.createField = 1 - m.createField
		if m.createField == 0 {
			m.slugInput.Blur()
			m.urlInput.Focus()
		} else {
			m.urlInput.Blur()
			m.slugInput.Focus()
		}
		return m, textinput.Blink
	case "enter":
		if m.busy {
			return m, nil
		}
		target := strings.TrimSpace(m.urlInput.Value())
		if err := shorturl.ValidateTarget(target); err != nil {
			// Validation failures stay inside the form; no network call.
			m.createErr = err.Error()
			return m, nil
		}
		m.createErr = ""
		m.busy = true
		return m, m.createCmd(target, strings.TrimSpace(m.slugInput.Value()))
	}

	var cmd tea.Cmd
	if m.createField == 0 {
		m.urlInput, cmd = m.urlInput.Update(msg)
	} else {
		m.slugInput, cmd = m.slugInput.Update(msg)
	}
	return m, cmd
}

func (m linksModel) updateList(msg tea.KeyMsg) (linksModel, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.controller.SetSearch(m.search.Value())
		m.clampCursor()
		return m, cmd
	}

	if m.stats != nil || m.statsLoading || m.statsErr != "" {
		switch msg.String() {
		case "esc", "a":
			m.stats = nil
			m.statsErr = ""
			m.statsLoading = false
		}
		return m, nil
	}

	switch msg.String() {
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "s":
		m.controller.CycleSort()
		m.cursor = 0
		return m, nil
	case "left", "h":
		m.controller.SetPage(m.controller.Query().Page - 1)
		m.cursor = 0
		return m, nil
	case "right", "l":
		m.controller.SetPage(m.controller.Query().Page + 1)
		m.cursor = 0
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		page, _ := m.controller.View(m.links)
		if m.cursor < len(page)-1 {
			m.cursor++
		}
		return m, nil
	case "a":
		page, _ := m.controller.View(m.links)
		if m.cursor < len(page) {
			m.statsLoading = true
			return m, m.statsCmd(page[m.cursor].Slug)
		}
		return m, nil
	case "n":
		m.creating = true
		m.createField = 0
		m.createErr = ""
		m.slugInput.Blur()
		m.urlInput.Focus()
		return m, textinput.Blink
	case "d":
		if m.busy {
			return m, nil
		}
		page, _ := m.controller.View(m.links)
		if m.cursor < len(page) {
			m.busy = true
			return m, m.deleteCmd(page[m.cursor].Slug)
		}
		return m, nil
	case "r":
		m.loading = true
		return m, m.refreshCmd()
	case "L":
		if err := m.app.Session.Logout(); err != nil {
			m.notice = err.Error()
			m.noticeErr = true
			return m, nil
		}
		m.links = nil
		m.summary = nil
		m.notice = ""
		m.code.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *linksModel) clampCursor() {
	page, _ := m.controller.View(m.links)
	if m.cursor >= len(page) {
		m.cursor = len(page) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m linksModel) footerHints() string {
	if !m.app.Session.Current().Authenticated {
		return "enter login · tab switch · ctrl+c quit"
	}
	if m.creating {
		return "enter create · tab next field · esc cancel"
	}
	if m.search.Focused() {
		return "type to filter · enter/esc done"
	}
	if m.stats != nil || m.statsLoading || m.statsErr != "" {
		return "esc close"
	}
	return "/ search · s sort · ←/→ page · a analytics · n new · d delete · r refresh · L logout"
}

func (m linksModel) view() string {
	if !m.app.Session.Current().Authenticated {
		return m.viewLogin()
	}
	if m.creating {
		return m.viewCreate()
	}
	if m.stats != nil || m.statsLoading || m.statsErr != "" {
		return m.viewStats()
	}
	return m.viewList()
}

func (m linksModel) viewStats() string {
	t := m.theme
	var b strings.Builder
	if m.statsLoading {
		b.WriteString(t.Spinner.Render("loading analytics…"))
		b.WriteString("\n")
		return b.String()
	}
	if m.statsErr != "" {
		b.WriteString(t.NoticeErr.Render(m.statsErr))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(t.PaneTitle.Render(fmt.Sprintf("/%s · %d visits", m.stats.Slug, m.stats.Visits)))
	b.WriteString("\n\n")

	peak := 0
	for _, d := range m.stats.ByDay {
		if d.Visits > peak {
			peak = d.Visits
		}
	}
	for _, d := range m.stats.ByDay {
		width := 0
		if peak > 0 {
			width = d.Visits * 30 / peak
		}
		bar := strings.Repeat("▇", width)
		b.WriteString(fmt.Sprintf("%s %4d ", d.Date, d.Visits))
		b.WriteString(t.ListSel.Render(bar))
		b.WriteString("\n")
	}
	if len(m.stats.ByDay) == 0 {
		b.WriteString(t.Footer.Render("no visits recorded yet"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m linksModel) viewLogin() string {
	t := m.theme
	var b strings.Builder
	b.WriteString(t.PaneTitle.Render("SHORT URL MANAGER"))
	b.WriteString("\n")
	b.WriteString(t.Footer.Render("Enter your access code to continue"))
	b.WriteString("\n\n")
	b.WriteString(t.InputBoxF.Width(min(m.width-2, 48)).Render(m.code.View()))
	b.WriteString("\n")
	if m.loggingIn {
		b.WriteString(t.Spinner.Render("authenticating…"))
		b.WriteString("\n")
	}
	if m.loginErr != "" {
		b.WriteString(t.NoticeErr.Render(m.loginErr))
		b.WriteString("\n")
	}
	return b.String()
}

func (m linksModel) viewCreate() string {
	t := m.theme
	var b strings.Builder
	b.WriteString(t.PaneTitle.Render("NEW SHORT URL"))
	b.WriteString("\n\n")

	urlBox, slugBox := t.InputBox, t.InputBox
	if m.createField == 0 {
		urlBox = t.InputBoxF
	} else {
		slugBox = t.InputBoxF
	}
	w := min(m.width-2, 64)
	b.WriteString(urlBox.Width(w).Render(m.urlInput.View()))
	b.WriteString("\n")
	b.WriteString(slugBox.Width(w).Render(m.slugInput.View()))
	b.WriteString("\n")
	if m.busy {
		b.WriteString(t.Spinner.Render("creating…"))
		b.WriteString("\n")
	}
	if m.createErr != "" {
		b.WriteString(t.NoticeErr.Render(m.createErr))
		b.WriteString("\n")
	}
	return b.String()
}

func (m linksModel) viewList() string {
	t := m.theme
	var b strings.Builder

	if m.loading {
		b.WriteString(t.Spinner.Render("loading dashboard…"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderSummary())
	b.WriteString("\n")

	q := m.controller.Query()
	searchBox := t.InputBox
	if m.search.Focused() {
		searchBox = t.InputBoxF
	}
	b.WriteString(searchBox.Width(min(m.width-26, 60)).Render(m.search.View()))
	b.WriteString(" ")
	b.WriteString(t.Footer.Render("sort: " + q.Sort.Label()))
	b.WriteString("\n")

	if m.listErr != "" {
		b.WriteString(t.NoticeErr.Render(m.listErr))
		b.WriteString("\n")
		return b.String()
	}

	page, total := m.controller.View(m.links)
	if len(page) == 0 {
		b.WriteString(t.Footer.Render("no links match — n creates one"))
		b.WriteString("\n")
	}
	for i, link := range page {
		line := fmt.Sprintf("/%s → %s", link.Slug, truncate(link.Content, m.width-30))
		meta := fmt.Sprintf("  %s · %d visits", link.CreatedAt.Format("2006-01-02"), link.Visits)
		if i == m.cursor {
			b.WriteString(t.ListSel.Render("▸ " + line))
		} else {
			b.WriteString(t.ListNormal.Render("  " + line))
		}
		b.WriteString(t.TextFaintStyle().Render(meta))
		b.WriteString("\n")
	}

	b.WriteString(t.Footer.Render(fmt.Sprintf("page %d/%d · %d links", m.controller.Query().Page, total, len(m.links))))
	b.WriteString("\n")

	if m.notice != "" {
		style := t.Notice
		if m.noticeErr {
			style = t.NoticeErr
		}
		b.WriteString(style.Render(m.notice))
		b.WriteString("\n")
	}
	return b.String()
}

func (m linksModel) renderSummary() string {
	t := m.theme
	if m.summaryErr != "" {
		return t.NoticeErr.Render("analytics unavailable: " + m.summaryErr)
	}
	if m.summary == nil {
		return t.Footer.Render("analytics: —")
	}
	parts := []string{
		fmt.Sprintf("%d links", m.summary.TotalLinks),
		fmt.Sprintf("%d visits", m.summary.TotalVisits),
	}
	for _, bt := range m.summary.ByType {
		parts = append(parts, fmt.Sprintf("%s %d", bt.ContentType, bt.Visits))
	}
	if len(m.summary.TopLinks) > 0 {
		top := m.summary.TopLinks[0]
		parts = append(parts, fmt.Sprintf("top /%s (%d)", top.Slug, top.Visits))
	}
	return t.PaneTitle.Render(strings.Join(parts, " · "))
}

func truncate(s string, max int) string {
	if max < 12 {
		max = 12
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

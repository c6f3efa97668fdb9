// Package tui is the terminal front end: the portfolio home tab, the chat
// assistant, and the login-gated link dashboard, all skinned by Theme.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"

	"github.com/raghavdwd/folio/internal/app"
)

type tab int

const (
	tabHome tab = iota
	tabChat
	tabLinks
)

var tabNames = []string{"Home", "Chat", "Links"}

// Model is the root bubbletea model. It owns the tab bar and delegates
// everything else to the per-tab models.
type Model struct {
	app    *app.Application
	theme  Theme
	active tab

	home  homeModel
	chat  chatModel
	links linksModel

	width  int
	height int
}

// New builds the root model. startTab selects the initial tab so the
// dashboard subcommand can land straight on Links.
func New(application *app.Application, startTab string) *Model {
	theme := NewTheme(application.Config.Theme)
	m := &Model{
		app:   application,
		theme: theme,
		home:  newHomeModel(application, theme),
		chat:  newChatModel(application, theme),
		links: newLinksModel(application, theme),
	}
	if strings.EqualFold(startTab, "links") || strings.EqualFold(startTab, "dashboard") {
		m.active = tabLinks
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.home.init(), m.chat.init()}
	if m.active == tabLinks {
		cmds = append(cmds, m.links.init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.setSize(msg.Width, msg.Height-chromeHeight)
		m.chat.setSize(msg.Width, msg.Height-chromeHeight)
		m.links.setSize(msg.Width, msg.Height-chromeHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			if !m.capturingInput() {
				return m.switchTab((m.active + 1) % 3)
			}
		case "shift+tab":
			if !m.capturingInput() {
				return m.switchTab((m.active + 2) % 3)
			}
		case "q":
			if !m.capturingInput() {
				return m, tea.Quit
			}
		}
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		var cmd tea.Cmd
		switch m.active {
		case tabHome:
			m.home, cmd = m.home.update(msg)
		case tabChat:
			m.chat, cmd = m.chat.update(msg)
		case tabLinks:
			m.links, cmd = m.links.update(msg)
		}
		return m, cmd
	}

	// Fetch results and ticks land on whichever tab issued them, even if the
	// user has switched away since.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.home, cmd = m.home.update(msg)
	cmds = append(cmds, cmd)
	m.chat, cmd = m.chat.update(msg)
	cmds = append(cmds, cmd)
	m.links, cmd = m.links.update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) switchTab(next tab) (tea.Model, tea.Cmd) {
	m.active = next
	if next == tabLinks && !m.links.started {
		return m, m.links.init()
	}
	return m, nil
}

// capturingInput reports whether the active tab owns the keyboard, in which
// case tab/q must reach the text field instead of the tab bar.
func (m *Model) capturingInput() bool {
	switch m.active {
	case tabChat:
		return m.chat.capturing()
	case tabLinks:
		return m.links.capturing()
	}
	return false
}

// chromeHeight is the tab bar plus the footer.
const chromeHeight = 3

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.active {
	case tabHome:
		b.WriteString(m.home.view())
	case tabChat:
		b.WriteString(m.chat.view())
	case tabLinks:
		b.WriteString(m.links.view())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(tabNames)+1)
	parts = append(parts, m.theme.TopBarTitle.Render("folio"))
	for i, name := range tabNames {
		label := fmt.Sprintf(" %s ", name)
		if tab(i) == m.active {
			parts = append(parts, m.theme.TabActive.Render(label))
		} else {
			parts = append(parts, m.theme.TabInactive.Render(label))
		}
	}
	return m.theme.TopBar.Render(strings.Join(parts, " "))
}

func (m *Model) renderFooter() string {
	hints := "tab switch · q quit"
	switch m.active {
	case tabHome:
		hints = "↑/↓ scroll · tab switch · q quit"
	case tabChat:
		hints = "enter send · esc blur · tab switch"
	case tabLinks:
		hints = m.links.footerHints()
	}
	return m.theme.Footer.Render(hints)
}

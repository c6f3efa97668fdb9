package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName selects one of the visual variants. The site shipped several
// alternate front ends; here they are skins over the same models.
type ThemeName string

const (
	// ThemeGlass is the emerald-on-slate dashboard look.
	ThemeGlass ThemeName = "glass"
	// ThemeMinimal is the zinc minimalist portfolio look.
	ThemeMinimal ThemeName = "minimal"
	// ThemeMidnight is the high-contrast blue variant.
	ThemeMidnight ThemeName = "midnight"
)

type Theme struct {
	Name ThemeName

	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	TextFaint   lipgloss.AdaptiveColor

	Accent   lipgloss.AdaptiveColor
	Success  lipgloss.AdaptiveColor
	Warn     lipgloss.AdaptiveColor
	Error    lipgloss.AdaptiveColor
	Border   lipgloss.AdaptiveColor
	BorderHi lipgloss.AdaptiveColor

	TopBar      lipgloss.Style
	TopBarTitle lipgloss.Style
	TopBarBadge lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	PaneTitle   lipgloss.Style
	Footer      lipgloss.Style
	InputBox    lipgloss.Style
	InputBoxF   lipgloss.Style
	Spinner     lipgloss.Style

	RoleYou lipgloss.Style
	RoleAI  lipgloss.Style
	RoleSys lipgloss.Style
	RoleErr lipgloss.Style

	ListSel    lipgloss.Style
	ListNormal lipgloss.Style
	Notice     lipgloss.Style
	NoticeErr  lipgloss.Style
}

// NewTheme picks the theme from config, with FOLIO_THEME and FOLIO_NO_COLOR
// taking precedence.
func NewTheme(name string) Theme {
	if env := os.Getenv("FOLIO_THEME"); env != "" {
		name = env
	}
	if os.Getenv("FOLIO_NO_COLOR") == "1" {
		return newNoColorTheme()
	}

	switch ThemeName(strings.ToLower(name)) {
	case ThemeMinimal:
		return newMinimalTheme()
	case ThemeMidnight:
		return newMidnightTheme()
	default:
		return newGlassTheme()
	}
}

func (t Theme) finish() Theme {
	t.TopBar = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.TopBarTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.TopBarBadge = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.TabActive = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Underline(true)
	t.TabInactive = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.Pane = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.PaneFocused = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.BorderHi).Padding(0, 1)
	t.PaneTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextMuted)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputBox = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.InputBoxF = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.BorderHi).Padding(0, 1)
	t.Spinner = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	t.RoleYou = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.RoleAI = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.RoleSys = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.RoleErr = lipgloss.NewStyle().Bold(true).Foreground(t.Error)

	t.ListSel = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.ListNormal = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.Notice = lipgloss.NewStyle().Foreground(t.Success)
	t.NoticeErr = lipgloss.NewStyle().Foreground(t.Error)
	return t
}

func newGlassTheme() Theme {
	return Theme{
		Name:        ThemeGlass,
		TextPrimary: lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f8fafc"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94a3b8"},
		TextFaint:   lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#64748b"},

		Accent:   lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10b981"},
		Success:  lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"},
		Warn:     lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"},
		Error:    lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"},
		Border:   lipgloss.AdaptiveColor{Light: "#cbd5e1", Dark: "#334155"},
		BorderHi: lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10b981"},
	}.finish()
}

func newMinimalTheme() Theme {
	return Theme{
		Name:        ThemeMinimal,
		TextPrimary: lipgloss.AdaptiveColor{Light: "#18181b", Dark: "#fafafa"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#52525b", Dark: "#a1a1aa"},
		TextFaint:   lipgloss.AdaptiveColor{Light: "#71717a", Dark: "#71717a"},

		Accent:   lipgloss.AdaptiveColor{Light: "#18181b", Dark: "#e4e4e7"},
		Success:  lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"},
		Warn:     lipgloss.AdaptiveColor{Light: "#a16207", Dark: "#facc15"},
		Error:    lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"},
		Border:   lipgloss.AdaptiveColor{Light: "#d4d4d8", Dark: "#3f3f46"},
		BorderHi: lipgloss.AdaptiveColor{Light: "#18181b", Dark: "#e4e4e7"},
	}.finish()
}

func newMidnightTheme() Theme {
	return Theme{
		Name:        ThemeMidnight,
		TextPrimary: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#eaeaea"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#374151", Dark: "#b7b7b7"},
		TextFaint:   lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#8d8d8d"},

		Accent:   lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#7aa2ff"},
		Success:  lipgloss.AdaptiveColor{Light: "#059669", Dark: "#46d1b7"},
		Warn:     lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f4b27d"},
		Error:    lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ff7a7a"},
		Border:   lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#2a2a2a"},
		BorderHi: lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#7aa2ff"},
	}.finish()
}

func newNoColorTheme() Theme {
	return Theme{
		Name:        "no-color",
		TextPrimary: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#333333", Dark: "#dddddd"},
		TextFaint:   lipgloss.AdaptiveColor{Light: "#555555", Dark: "#bbbbbb"},
		Border:      lipgloss.AdaptiveColor{Light: "#555555", Dark: "#777777"},
		BorderHi:    lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
	}.finish()
}

package tui

import "testing"

func TestNewThemeSelectsVariant(t *testing.T) {
	cases := []struct {
		cfg  string
		want ThemeName
	}{
		{"glass", ThemeGlass},
		{"minimal", ThemeMinimal},
		{"midnight", ThemeMidnight},
		{"", ThemeGlass},
		{"unknown", ThemeGlass},
		{"MINIMAL", ThemeMinimal},
	}
	for _, c := range cases {
		got := NewTheme(c.cfg)
		if got.Name != c.want {
			t.Fatalf("NewTheme(%q).Name = %q, want %q", c.cfg, got.Name, c.want)
		}
	}
}

func TestNewThemeEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_THEME", "midnight")
	got := NewTheme("glass")
	if got.Name != ThemeMidnight {
		t.Fatalf("env override ignored: got %q", got.Name)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Fatalf("truncate changed a short string: %q", got)
	}
	long := "https://example.com/a/very/long/path/that/keeps/going/and/going"
	got := truncate(long, 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("truncate(%q, 20) = %q (len %d)", long, got, len([]rune(got)))
	}
}

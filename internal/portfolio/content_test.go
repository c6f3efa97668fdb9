package portfolio

import "testing"

func TestIconGlyphResolution(t *testing.T) {
	if g := (Icon{Kind: IconGlyph, Ref: "backend"}).Glyph(); g != "◨" {
		t.Fatalf("expected backend glyph, got %q", g)
	}
	if g := (Icon{Kind: IconImage, Ref: "https://cdn.simpleicons.org/docker"}).Glyph(); g != "▣" {
		t.Fatalf("image icons render as the generic mark, got %q", g)
	}
	if g := (Icon{Kind: IconGlyph, Ref: "no-such-capability"}).Glyph(); g != "•" {
		t.Fatalf("unknown glyph names fall back to the default mark, got %q", g)
	}
	if g := (Icon{}).Glyph(); g != "•" {
		t.Fatalf("zero icon resolves to the default mark, got %q", g)
	}
}

func TestEverySkillRendersAGlyph(t *testing.T) {
	for _, s := range Skills {
		if s.Icon.Glyph() == "" {
			t.Fatalf("skill %q has no renderable glyph", s.Name)
		}
		if s.Level < 0 || s.Level > 100 {
			t.Fatalf("skill %q level out of range: %d", s.Name, s.Level)
		}
	}
}

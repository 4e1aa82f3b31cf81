package tui

import "testing"

func TestApplyGlyphPreference(t *testing.T) {
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	applyGlyphPreference("ASCII")
	if glyphs() != glyphSetASCII {
		t.Fatalf("expected ascii glyphs")
	}
	if got := glyphCheckbox(true); got != "[x]" {
		t.Fatalf("glyphCheckbox(true)=%q, want [x]", got)
	}

	// Unknown values leave the current set alone.
	applyGlyphPreference("emoji")
	if glyphs() != glyphSetASCII {
		t.Fatalf("expected unknown value to be ignored")
	}

	applyGlyphPreference("")
	if glyphs() != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs")
	}
	if got := glyphCheckbox(false); got != "☐" {
		t.Fatalf("glyphCheckbox(false)=%q, want ☐", got)
	}
}

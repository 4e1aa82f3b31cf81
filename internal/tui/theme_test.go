package tui

import "testing"

func TestColorFGBGHasDarkBackground(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		wantDark bool
		wantOK   bool
	}{
		{"", false, false},
		{"15;0", true, true},
		{"0;15", false, true},
		{"12;default;7", false, true},
		{"15;abc", false, false},
	}
	for _, tt := range tests {
		dark, ok := colorFGBGHasDarkBackground(tt.in)
		if dark != tt.wantDark || ok != tt.wantOK {
			t.Fatalf("colorFGBGHasDarkBackground(%q)=(%v,%v), want (%v,%v)", tt.in, dark, ok, tt.wantDark, tt.wantOK)
		}
	}
}

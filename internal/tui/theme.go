package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"photolicense-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor where possible and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted = ac("240", "243")

	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")

	colorCardBorder     = ac("250", "243")
	colorSelectedBorder = ac("27", "62")

	colorSurfaceFg = ac("235", "252")

	// Slightly elevated surface for controls/inputs so they remain visible on light terminals.
	colorControlBg = ac("252", "237")
	colorInputBg   = ac("254", "234")

	colorAccent   = ac("27", "62")
	colorAccentFg = ac("255", "235")

	colorCardMetaFg = ac("238", "250")

	colorStatusActive   = ac("28", "78")
	colorStatusExpiring = ac("136", "221")
	colorStatusExpired  = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func statusColor(s model.Status) lipgloss.AdaptiveColor {
	switch s {
	case model.StatusExpired:
		return colorStatusExpired
	case model.StatusExpiringSoon:
		return colorStatusExpiring
	default:
		return colorStatusActive
	}
}

func statusBadge(s model.Status) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(s)).
		Render(strings.ToUpper(s.Label()))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can accidentally
// disable colors in a TUI. We only honor NO_COLOR and otherwise follow the terminal.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector reports, trust the env.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile != termenv.TrueColor {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

var currentTheme = "auto"

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) the configured theme (light|dark|auto)
// 2) COLORFGBG heuristic (format like "15;0" = fg;bg)
// 3) macOS appearance
func applyThemePreference(theme string) {
	theme = strings.ToLower(strings.TrimSpace(theme))
	switch theme {
	case "light":
		currentTheme = theme
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		currentTheme = theme
		lipgloss.SetHasDarkBackground(true)
		return
	}
	currentTheme = "auto"

	if dark, ok := colorFGBGHasDarkBackground(os.Getenv("COLORFGBG")); ok {
		lipgloss.SetHasDarkBackground(dark)
		return
	}

	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
			return
		}
	}
}

// colorFGBGHasDarkBackground reads the last segment of COLORFGBG as the
// background palette index. 0-6 are dark colors in the common xterm palette.
func colorFGBGHasDarkBackground(v string) (dark bool, ok bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 {
		return false, false
	}
	return bg < 7, true
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and exits 1
	// in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height
// lines tall, so overlays and the footer land on stable rows.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func padOrCutANSI(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := xansi.StringWidth(s)
	switch {
	case cur < w:
		return s + strings.Repeat(" ", w-cur)
	case cur > w:
		// Terminate styling so a cut sequence doesn't bleed into the next line.
		return xansi.Cut(s, 0, w) + "\x1b[0m"
	default:
		return s
	}
}

const (
	modalMaxWidth = 72
	modalMinWidth = 30
)

// modalWidth picks the outer modal width for a terminal that is width columns wide.
func modalWidth(width int) int {
	w := width - 8
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < modalMinWidth {
		w = modalMinWidth
	}
	return w
}

var modalBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorAccent).
	Padding(0, 1)

// modalBodyWidth is the usable content width inside a modal of the given outer width.
func modalBodyWidth(width int) int {
	w := modalWidth(width) - modalBoxStyle.GetHorizontalFrameSize()
	if w < 10 {
		w = 10
	}
	return w
}

func renderModalBox(width int, title string, body string) string {
	bodyW := modalBodyWidth(width)
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Width(bodyW).
		Render(title)
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), bodyW))
	return modalBoxStyle.
		Width(bodyW + modalBoxStyle.GetHorizontalPadding()).
		Render(strings.Join([]string{head, rule, body}, "\n"))
}

// overlayCenter places the modal in the middle of a width x height screen.
func overlayCenter(modal string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}

package tui

import (
	"fmt"
	"io"
	"strings"

	"photolicense-cli/internal/publish"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type licenseCardDelegate struct {
	normalCard   lipgloss.Style
	selectedCard lipgloss.Style

	titleStyle lipgloss.Style
	metaStyle  lipgloss.Style
}

func newLicenseCardDelegate() licenseCardDelegate {
	base := lipgloss.NewStyle().
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)

	return licenseCardDelegate{
		normalCard:   base,
		selectedCard: base.BorderForeground(colorSelectedBorder),
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		metaStyle:    lipgloss.NewStyle().Foreground(colorCardMetaFg),
	}
}

func (d licenseCardDelegate) Height() int  { return 6 } // 4 inner lines + border top/bottom
func (d licenseCardDelegate) Spacing() int { return 1 }
func (d licenseCardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d licenseCardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	totalW := m.Width()
	if totalW < 12 {
		return
	}
	it, ok := item.(licenseItem)
	if !ok {
		return
	}

	card := d.normalCard
	if index == m.Index() {
		card = d.selectedCard
	}
	innerW := totalW - card.GetHorizontalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	card = card.Width(innerW + card.GetHorizontalPadding())

	fmt.Fprint(w, card.Render(strings.Join(licenseCardLines(it, innerW, d.titleStyle, d.metaStyle), "\n")))
}

func licenseCardLines(it licenseItem, innerW int, titleSt, metaSt lipgloss.Style) []string {
	l := it.license

	title := truncateToWidth(displayText(l.Photographer), innerW/2)
	badge := statusBadge(l.Status)
	head := titleSt.Render(title) + "  " + metaSt.Render(string(l.LicenseType))
	gap := innerW - lipgloss.Width(head) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	head = head + strings.Repeat(" ", gap) + badge

	until := "valid until " + displayDate(l.ExpiryDate)
	if hint := publish.ExpiryHint(l.ExpiryDate, it.now); hint != "" {
		until += " (" + hint + ")"
	}

	lines := []string{
		head,
		metaSt.Render("client " + displayText(l.ClientName) + "  |  " + until),
		metaSt.Render(publish.FormatUSD(l.Price) + "  |  " + publish.RenewalLabel(l)),
		metaSt.Render(truncateToWidth(usageChips(l.UsageRights), innerW)),
	}
	for i := range lines {
		lines[i] = padOrCutANSI(lines[i], innerW)
	}
	return lines
}

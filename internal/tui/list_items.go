package tui

import (
	"strings"
	"time"

	"photolicense-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type licenseItem struct {
	license model.License
	now     time.Time
}

func (i licenseItem) FilterValue() string {
	l := i.license
	return strings.Join([]string{l.Photographer, l.ClientName, string(l.LicenseType), l.PhotoURL}, " ")
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, newLicenseCardDelegate(), 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("license", "licenses")
	return l
}

func selectListItemByID(l *list.Model, id string) {
	for i, it := range l.Items() {
		if li, ok := it.(licenseItem); ok && li.license.ID == id {
			l.Select(i)
			return
		}
	}
}

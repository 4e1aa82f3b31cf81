package tui

import (
	"errors"
	"fmt"
	"strings"

	"photolicense-cli/internal/docs"
	"photolicense-cli/internal/form"
	"photolicense-cli/internal/model"
	"photolicense-cli/internal/publish"
	"photolicense-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header + blank line + footer
	chromeHeight = 4
)

type appModel struct {
	col *store.Collection
	log zerolog.Logger

	width  int
	height int

	list list.Model

	modal        modalKind
	form         licenseForm
	confirmFocus confirmModalFocus
	pendingID    string
	viewport     viewport.Model

	minibufferText string
	minibufferSeq  int

	externalEditorPath   string
	externalEditorBefore string

	// Side effects, swappable in tests.
	openURL  func(string) error
	copyText func(string) error
}

func newAppModel(col *store.Collection, log zerolog.Logger) appModel {
	m := appModel{
		col:      col,
		log:      log,
		width:    defaultWidth,
		height:   defaultHeight,
		list:     newList("Licenses", nil),
		openURL:  openURL,
		copyText: copyToClipboard,
	}
	m.viewport = viewport.New(modalBodyWidth(m.width), m.viewportHeight())
	m.refreshList()
	m.resize()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	seq := m.minibufferSeq
	next, cmd := m.update(msg)
	if next.minibufferSeq != seq && next.minibufferText != "" {
		cmd = tea.Batch(cmd, clearMinibufferAfter(next.minibufferSeq))
	}
	return next, cmd
}

func (m appModel) update(msg tea.Msg) (appModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case externalEditorDoneMsg:
		m.applyExternalEditorResult(msg)
		return m, nil

	case tea.KeyMsg:
		switch m.modal {
		case modalForm:
			return m.updateForm(msg)
		case modalConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modalDetail, modalHelp:
			return m.updateViewportModal(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.modal == modalNone {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "a":
		m.openForm(form.NewCreate())
		return m, nil
	case "?":
		m.openViewportModal(modalHelp, helpMarkdown())
		return m, nil
	}

	sel, ok := m.selected()
	switch msg.String() {
	case "e", "enter", "d", "x", "v", "o", "y", "Y":
		if !ok {
			m.showMinibuffer("No license selected")
			return m, nil
		}
	}

	switch msg.String() {
	case "e", "enter":
		m.openForm(form.NewEdit(sel))
		return m, nil
	case "d", "x":
		m.modal = modalConfirmDelete
		m.pendingID = sel.ID
		m.confirmFocus = confirmFocusCancel
		return m, nil
	case "v":
		m.pendingID = sel.ID
		m.openViewportModal(modalDetail, publish.RenderLicenseMarkdown(sel, m.col.Now()))
		return m, nil
	case "o":
		if err := m.openURL(sel.PhotoURL); err != nil {
			m.showMinibuffer("Can't open photo URL: " + err.Error())
			return m, nil
		}
		m.showMinibuffer("Opened " + sel.PhotoURL)
		return m, nil
	case "y":
		m.copyField("photo URL", sel.PhotoURL)
		return m, nil
	case "Y":
		m.copyField("client email", sel.ClientEmail)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *appModel) copyField(name, value string) {
	if strings.TrimSpace(value) == "" {
		m.showMinibuffer("No " + name + " to copy")
		return
	}
	if err := m.copyText(value); err != nil {
		m.showMinibuffer("Copy failed: " + err.Error())
		return
	}
	m.showMinibuffer("Copied " + name)
}

func (m *appModel) openForm(d form.Draft) {
	m.form = newLicenseForm(d, m.col.Now())
	m.modal = modalForm
}

func (m appModel) updateForm(msg tea.KeyMsg) (appModel, tea.Cmd) {
	action, cmd := m.form.update(msg)
	switch action {
	case formActionCancel:
		m.modal = modalNone
		m.form = licenseForm{}
		return m, nil
	case formActionEditTerms:
		c, err := m.openExternalEditorForTerms()
		if err != nil {
			m.showMinibuffer("Editor failed: " + err.Error())
			return m, nil
		}
		return m, c
	case formActionSubmit:
		m.submitForm()
		return m, nil
	}
	return m, cmd
}

func (m *appModel) submitForm() {
	d := m.form.Draft()
	rec, err := d.Commit(m.col)
	var verr *form.ValidationError
	switch {
	case errors.Is(err, form.ErrIncomplete):
		// Unfinished add form: stay open without feedback.
		return
	case errors.As(err, &verr):
		m.showMinibuffer(strings.ToUpper(verr.Error()[:1]) + verr.Error()[1:])
		return
	case errors.Is(err, form.ErrNotFound):
		m.modal = modalNone
		m.refreshList()
		m.showMinibuffer("License no longer exists")
		return
	case err != nil:
		m.log.Error().Err(err).Str("mode", d.Mode.String()).Msg("commit license")
		m.showMinibuffer("Save failed: " + err.Error())
		return
	}

	m.modal = modalNone
	m.form = licenseForm{}
	m.refreshList()
	selectListItemByID(&m.list, rec.ID)

	ev := "license updated"
	feedback := "Saved changes to " + rec.Photographer
	if d.Mode == form.ModeCreate {
		ev = "license created"
		feedback = "Added license for " + rec.Photographer
	}
	m.log.Info().
		Str("license_id", rec.ID).
		Str("license_type", string(rec.LicenseType)).
		Str("status", string(rec.Status)).
		Msg(ev)
	m.showMinibuffer(feedback)
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g", "n", "q":
		m.modal = modalNone
		m.pendingID = ""
		return m, nil
	case "tab", "shift+tab", "left", "right", "h", "l":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		m.deletePending()
		return m, nil
	case "enter", " ":
		if m.confirmFocus == confirmFocusConfirm {
			m.deletePending()
			return m, nil
		}
		m.modal = modalNone
		m.pendingID = ""
		return m, nil
	}
	return m, nil
}

func (m *appModel) deletePending() {
	id := m.pendingID
	m.modal = modalNone
	m.pendingID = ""

	idx := m.list.Index()
	if !m.col.Delete(id) {
		m.showMinibuffer("License no longer exists")
		m.refreshList()
		return
	}
	m.log.Info().Str("license_id", id).Msg("license deleted")
	m.refreshList()
	if n := len(m.list.Items()); n > 0 {
		if idx >= n {
			idx = n - 1
		}
		m.list.Select(idx)
	}
	m.showMinibuffer("Deleted license")
}

func (m *appModel) openViewportModal(kind modalKind, md string) {
	m.modal = kind
	m.viewport.Width = modalBodyWidth(m.width)
	m.viewport.Height = m.viewportHeight()
	m.viewport.SetContent(renderMarkdown(md, m.viewport.Width))
	m.viewport.GotoTop()
}

func (m appModel) updateViewportModal(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "ctrl+g", "v", "?":
		m.modal = modalNone
		m.pendingID = ""
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "e":
		if m.modal == modalDetail {
			if rec, ok := m.col.Get(m.pendingID); ok {
				m.pendingID = ""
				m.openForm(form.NewEdit(rec))
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *appModel) showMinibuffer(text string) {
	m.minibufferText = text
	m.minibufferSeq++
}

func (m appModel) selected() (model.License, bool) {
	it, ok := m.list.SelectedItem().(licenseItem)
	if !ok {
		return model.License{}, false
	}
	return it.license, true
}

func (m *appModel) refreshList() {
	curID := ""
	if sel, ok := m.selected(); ok {
		curID = sel.ID
	}
	now := m.col.Now()
	records := m.col.List()
	items := make([]list.Item, 0, len(records))
	for _, r := range records {
		items = append(items, licenseItem{license: r, now: now})
	}
	m.list.SetItems(items)
	if curID != "" {
		selectListItemByID(&m.list, curID)
	}
}

func (m appModel) bodyHeight() int {
	h := m.height - chromeHeight
	if h < 6 {
		h = 6
	}
	return h
}

func (m appModel) viewportHeight() int {
	// Modal border, title, rule and help line.
	h := m.bodyHeight() - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (m *appModel) resize() {
	w := m.width
	if w < 40 {
		w = 40
	}
	m.list.SetSize(w, m.bodyHeight())
	m.viewport.Width = modalBodyWidth(m.width)
	m.viewport.Height = m.viewportHeight()
}

func (m appModel) View() string {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}

	var body string
	switch m.modal {
	case modalForm:
		body = overlayCenter(m.form.view(w), w, m.bodyHeight())
	case modalConfirmDelete:
		body = overlayCenter(m.confirmDeleteView(w), w, m.bodyHeight())
	case modalDetail, modalHelp:
		body = overlayCenter(m.viewportModalView(w), w, m.bodyHeight())
	default:
		if len(m.list.Items()) == 0 {
			body = styleMuted().Render("No licenses yet. Press a to add one.")
		} else {
			body = m.list.View()
		}
	}

	return strings.Join([]string{
		m.headerView(w),
		"",
		normalizePane(body, w, m.bodyHeight()),
		m.footerView(w),
	}, "\n")
}

func (m appModel) headerView(w int) string {
	counts := m.col.Counts()
	title := lipgloss.NewStyle().Bold(true).Render("Photo Licenses")
	n := m.col.Len()
	noun := "licenses"
	if n == 1 {
		noun = "license"
	}
	parts := []string{
		fmt.Sprintf("%d %s", n, noun),
		fmt.Sprintf("%d %s", counts[model.StatusActive], model.StatusActive.Label()),
		fmt.Sprintf("%d %s", counts[model.StatusExpiringSoon], model.StatusExpiringSoon.Label()),
		fmt.Sprintf("%d %s", counts[model.StatusExpired], model.StatusExpired.Label()),
		publish.FormatUSD(m.col.Total()) + " total",
	}
	meta := styleMuted().Render(strings.Join(parts, "  "+glyphBullet()+"  "))
	return truncateToWidth(title+"  "+meta, w)
}

func (m appModel) footerView(w int) string {
	if m.minibufferText != "" {
		return padOrCutANSI(lipgloss.NewStyle().Foreground(colorSurfaceFg).Render(m.minibufferText), w)
	}
	hint := "a: add  e: edit  d: delete  v: view  o: open  y/Y: copy url/email  ?: help  q: quit"
	return padOrCutANSI(styleMuted().Render(hint), w)
}

func (m appModel) confirmDeleteView(w int) string {
	body := "Delete this license?"
	if rec, ok := m.col.Get(m.pendingID); ok {
		body = fmt.Sprintf("Delete the %s license for %s (%s)?",
			rec.LicenseType, displayText(rec.Photographer), displayText(rec.ClientName))
	}
	return renderConfirmModal(w, "Delete License", body, "Delete", "Cancel", m.confirmFocus)
}

func (m appModel) viewportModalView(w int) string {
	title := "Keys"
	help := "esc: close   up/down: scroll"
	if m.modal == modalDetail {
		title = "License " + glyphArrow() + " " + m.pendingID
		help = "esc: close   e: edit   up/down: scroll"
	}
	content := m.viewport.View() + "\n" + styleMuted().Render(help)
	return renderModalBox(w, title, content)
}

func helpMarkdown() string {
	md, ok := docs.Get("keys")
	if !ok {
		return "# Keys\n\nHelp is unavailable."
	}
	return md
}

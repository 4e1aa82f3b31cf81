package tui

import (
	"strings"
	"time"

	"photolicense-cli/internal/form"
	"photolicense-cli/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField is a focus stop in the license form, in display order.
type formField int

const (
	fieldPhotoURL formField = iota
	fieldPhotographer
	fieldClientName
	fieldClientEmail
	fieldLicenseType
	fieldPrice
	fieldStartDate
	fieldExpiryDate
	fieldRenewalTerms
	fieldAutoRenewal
	fieldUsageRights
	fieldSave
	fieldCancel
	formFieldCount
)

var formFieldLabels = map[formField]string{
	fieldPhotoURL:     "Photo URL",
	fieldPhotographer: "Photographer",
	fieldClientName:   "Client name",
	fieldClientEmail:  "Client email",
	fieldLicenseType:  "License type",
	fieldPrice:        "Price (USD)",
	fieldStartDate:    "Start date",
	fieldExpiryDate:   "Expiry date",
	fieldRenewalTerms: "Renewal terms",
	fieldAutoRenewal:  "Renewal",
	fieldUsageRights:  "Usage rights",
}

var formTextFields = []formField{
	fieldPhotoURL,
	fieldPhotographer,
	fieldClientName,
	fieldClientEmail,
	fieldPrice,
	fieldStartDate,
	fieldExpiryDate,
}

// formAction is what the app should do after the form handled a key.
type formAction int

const (
	formActionNone formAction = iota
	formActionSubmit
	formActionCancel
	formActionEditTerms
)

// licenseForm is the add/edit modal. Text values live in the bubbles inputs while
// the modal is open; draft holds everything else and is rebuilt on demand.
type licenseForm struct {
	draft  form.Draft
	focus  formField
	inputs map[formField]textinput.Model
	terms  textarea.Model

	rightCursor int
	now         time.Time
}

func newLicenseForm(d form.Draft, now time.Time) licenseForm {
	f := licenseForm{
		draft:  d,
		inputs: map[formField]textinput.Model{},
		now:    now,
	}

	values := map[formField]string{
		fieldPhotoURL:     d.PhotoURL,
		fieldPhotographer: d.Photographer,
		fieldClientName:   d.ClientName,
		fieldClientEmail:  d.ClientEmail,
		fieldPrice:        d.PriceText,
		fieldStartDate:    d.StartDate,
		fieldExpiryDate:   d.ExpiryDate,
	}
	placeholders := map[formField]string{
		fieldPhotoURL:     "https://...",
		fieldPhotographer: "required",
		fieldPrice:        "0.00",
		fieldStartDate:    "YYYY-MM-DD",
		fieldExpiryDate:   "YYYY-MM-DD",
	}
	for _, ff := range formTextFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[ff]
		in.CharLimit = 2048
		in.SetValue(values[ff])
		f.inputs[ff] = in
	}

	ta := textarea.New()
	ta.Placeholder = "Free text, markdown allowed"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(3)
	ta.SetValue(d.RenewalTerms)
	f.terms = ta

	f.setFocus(fieldPhotoURL)
	return f
}

func (f licenseForm) title() string {
	if f.draft.Mode == form.ModeEdit {
		return "Edit License"
	}
	return "Add New License"
}

func (f licenseForm) isTextField(ff formField) bool {
	_, ok := f.inputs[ff]
	return ok
}

func (f *licenseForm) setFocus(ff formField) {
	if ff < 0 {
		ff = formFieldCount - 1
	}
	if ff >= formFieldCount {
		ff = 0
	}
	for k, in := range f.inputs {
		if k == ff {
			in.Focus()
		} else {
			in.Blur()
		}
		f.inputs[k] = in
	}
	if ff == fieldRenewalTerms {
		f.terms.Focus()
	} else {
		f.terms.Blur()
	}
	f.focus = ff
}

// Draft returns the current form contents as a draft.
func (f licenseForm) Draft() form.Draft {
	d := f.draft
	d.PhotoURL = f.inputs[fieldPhotoURL].Value()
	d.Photographer = f.inputs[fieldPhotographer].Value()
	d.ClientName = f.inputs[fieldClientName].Value()
	d.ClientEmail = f.inputs[fieldClientEmail].Value()
	d.PriceText = f.inputs[fieldPrice].Value()
	d.StartDate = f.inputs[fieldStartDate].Value()
	d.ExpiryDate = f.inputs[fieldExpiryDate].Value()
	d.RenewalTerms = f.terms.Value()
	d.UsageRights = d.UsageRights.Clone()
	return d
}

func (f *licenseForm) setInputValue(ff formField, v string) {
	in := f.inputs[ff]
	in.SetValue(v)
	in.CursorEnd()
	f.inputs[ff] = in
}

func (f *licenseForm) setRenewalTerms(s string) {
	f.terms.SetValue(s)
}

func (f *licenseForm) currentRight() model.UsageRight {
	all := model.AllUsageRights()
	return all[f.rightCursor]
}

func (f *licenseForm) moveRightCursor(delta int) {
	n := len(model.AllUsageRights())
	f.rightCursor = ((f.rightCursor+delta)%n + n) % n
}

func (f *licenseForm) update(msg tea.KeyMsg) (formAction, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		return formActionCancel, nil
	case "ctrl+s":
		return formActionSubmit, nil
	case "ctrl+e":
		return formActionEditTerms, nil
	case "tab":
		f.setFocus(f.focus + 1)
		return formActionNone, nil
	case "shift+tab":
		f.setFocus(f.focus - 1)
		return formActionNone, nil
	}

	switch f.focus {
	case fieldLicenseType:
		switch msg.String() {
		case "left", "h":
			f.draft.CycleLicenseType(-1)
		case "right", "l", " ":
			f.draft.CycleLicenseType(1)
		case "enter", "down":
			f.setFocus(f.focus + 1)
		case "up":
			f.setFocus(f.focus - 1)
		}
		return formActionNone, nil

	case fieldAutoRenewal:
		switch msg.String() {
		case " ", "enter", "x":
			f.draft.AutoRenewal = !f.draft.AutoRenewal
		case "down":
			f.setFocus(f.focus + 1)
		case "up":
			f.setFocus(f.focus - 1)
		}
		return formActionNone, nil

	case fieldUsageRights:
		switch msg.String() {
		case " ", "enter", "x":
			f.draft.Toggle(f.currentRight())
		case "left", "h":
			f.moveRightCursor(-1)
		case "right", "l":
			f.moveRightCursor(1)
		case "down":
			f.setFocus(f.focus + 1)
		case "up":
			f.setFocus(f.focus - 1)
		}
		return formActionNone, nil

	case fieldSave, fieldCancel:
		switch msg.String() {
		case "enter", " ":
			if f.focus == fieldSave {
				return formActionSubmit, nil
			}
			return formActionCancel, nil
		case "left", "right", "h", "l":
			if f.focus == fieldSave {
				f.setFocus(fieldCancel)
			} else {
				f.setFocus(fieldSave)
			}
		case "up":
			f.setFocus(fieldUsageRights)
		}
		return formActionNone, nil

	case fieldRenewalTerms:
		var cmd tea.Cmd
		f.terms, cmd = f.terms.Update(msg)
		return formActionNone, cmd
	}

	if f.isTextField(f.focus) {
		switch msg.String() {
		case "enter", "down":
			if msg.String() == "down" && f.isDateField(f.focus) {
				f.bumpFocusedDate(-1, 0)
				return formActionNone, nil
			}
			f.setFocus(f.focus + 1)
			return formActionNone, nil
		case "up":
			if f.isDateField(f.focus) {
				f.bumpFocusedDate(1, 0)
				return formActionNone, nil
			}
			f.setFocus(f.focus - 1)
			return formActionNone, nil
		case "shift+up":
			if f.isDateField(f.focus) {
				f.bumpFocusedDate(0, 1)
			}
			return formActionNone, nil
		case "shift+down":
			if f.isDateField(f.focus) {
				f.bumpFocusedDate(0, -1)
			}
			return formActionNone, nil
		}
		in := f.inputs[f.focus]
		var cmd tea.Cmd
		in, cmd = in.Update(msg)
		f.inputs[f.focus] = in
		return formActionNone, cmd
	}
	return formActionNone, nil
}

func (f licenseForm) isDateField(ff formField) bool {
	return ff == fieldStartDate || ff == fieldExpiryDate
}

func (f *licenseForm) bumpFocusedDate(days, months int) {
	cur := f.inputs[f.focus].Value()
	f.setInputValue(f.focus, bumpDate(cur, days, months, f.now))
}

const formLabelWidth = 15

func (f licenseForm) view(width int) string {
	bodyW := modalBodyWidth(width)
	ctrlW := bodyW - formLabelWidth
	if ctrlW < 10 {
		ctrlW = 10
	}

	labelSt := lipgloss.NewStyle().Width(formLabelWidth).Foreground(colorMuted)
	labelFocusedSt := labelSt.Foreground(colorAccent).Bold(true)
	label := func(ff formField) string {
		txt := formFieldLabels[ff]
		if f.draft.Mode == form.ModeCreate && (ff == fieldPhotoURL || ff == fieldPhotographer || ff == fieldLicenseType) {
			txt += "*"
		}
		if f.focus == ff {
			return labelFocusedSt.Render(txt)
		}
		return labelSt.Render(txt)
	}
	row := func(ff formField, control string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label(ff), control)
	}

	var rows []string
	for ff := fieldPhotoURL; ff < fieldSave; ff++ {
		switch ff {
		case fieldLicenseType:
			txt := f.draft.LicenseTypeLabel()
			if f.focus == ff {
				txt = "< " + txt + " >"
			}
			rows = append(rows, row(ff, renderInputLine(ctrlW, txt)))
		case fieldRenewalTerms:
			ta := f.terms
			ta.SetWidth(ctrlW)
			rows = append(rows, row(ff, ta.View()))
		case fieldAutoRenewal:
			rows = append(rows, row(ff, f.renderCheckbox(f.draft.AutoRenewal, "Auto-renewal", f.focus == ff)))
		case fieldUsageRights:
			rows = append(rows, row(ff, f.renderUsageRights(ctrlW)))
		default:
			in := f.inputs[ff]
			in.Width = ctrlW - 3
			rows = append(rows, row(ff, renderInputLine(ctrlW, in.View())))
		}
	}

	rows = append(rows, "", f.renderButtons())
	help := "tab: next   space: toggle   left/right: change   up/down: ±1 day   ctrl+e: editor   ctrl+s: save   esc: cancel"
	rows = append(rows, "", styleMuted().Width(bodyW).Render(help))

	return renderModalBox(width, f.title(), strings.Join(rows, "\n"))
}

func (f licenseForm) renderCheckbox(checked bool, text string, focused bool) string {
	st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	if focused {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return st.Render(glyphCheckbox(checked) + " " + text)
}

func (f licenseForm) renderUsageRights(w int) string {
	var chips []string
	for i, r := range model.AllUsageRights() {
		focused := f.focus == fieldUsageRights && i == f.rightCursor
		chips = append(chips, f.renderCheckbox(f.draft.UsageRights.Has(r), string(r), focused))
	}
	// Wrap chips onto two lines when the modal is narrow.
	line := strings.Join(chips, "  ")
	if lipgloss.Width(line) <= w {
		return line
	}
	return strings.Join(chips[:2], "  ") + "\n" + strings.Join(chips[2:], "  ")
}

func (f licenseForm) renderButtons() string {
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorAccentFg).
		Background(colorAccent).
		Bold(true)

	saveLabel := "Add License"
	if f.draft.Mode == form.ModeEdit {
		saveLabel = "Save Changes"
	}
	save := btnBase.Render(saveLabel)
	cancel := btnBase.Render("Cancel")
	if f.focus == fieldSave {
		save = btnActive.Render(saveLabel)
	}
	if f.focus == fieldCancel {
		cancel = btnActive.Render("Cancel")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, save, " ", cancel)
}

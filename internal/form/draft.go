package form

import (
	"errors"
	"strings"

	"photolicense-cli/internal/model"
	"photolicense-cli/internal/store"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

var (
	// ErrIncomplete is returned when a create draft lacks a required field.
	// The UI treats it as a silent no-op.
	ErrIncomplete = errors.New("required fields missing")
	ErrNotFound   = errors.New("license not found")
)

// Draft is the editable state of an open add/edit modal. Text inputs are kept
// as typed; they are parsed only when the draft is committed.
type Draft struct {
	Mode     Mode
	TargetID string

	PhotoURL     string
	Photographer string
	LicenseType  model.LicenseType
	ClientName   string
	ClientEmail  string
	PriceText    string
	StartDate    string
	ExpiryDate   string
	RenewalTerms string
	AutoRenewal  bool
	UsageRights  model.UsageRights
}

// NewCreate returns an empty draft for the add form.
func NewCreate() Draft {
	return Draft{Mode: ModeCreate}
}

// NewEdit returns a draft holding a full copy of l.
func NewEdit(l model.License) Draft {
	return Draft{
		Mode:         ModeEdit,
		TargetID:     l.ID,
		PhotoURL:     l.PhotoURL,
		Photographer: l.Photographer,
		LicenseType:  l.LicenseType,
		ClientName:   l.ClientName,
		ClientEmail:  l.ClientEmail,
		PriceText:    l.Price.StringFixed(2),
		StartDate:    l.StartDate,
		ExpiryDate:   l.ExpiryDate,
		RenewalTerms: l.RenewalTerms,
		AutoRenewal:  l.AutoRenewal,
		UsageRights:  l.UsageRights.Clone(),
	}
}

func (d *Draft) Toggle(r model.UsageRight) {
	d.UsageRights = d.UsageRights.Toggle(r)
}

func (d *Draft) SetUsageRight(r model.UsageRight, checked bool) {
	d.UsageRights = d.UsageRights.Set(r, checked)
}

// licenseTypeOptions is the select's option list. The add form starts on an
// empty "Select type" option; the edit form only offers real types.
func (d Draft) licenseTypeOptions() []model.LicenseType {
	opts := model.LicenseTypes()
	if d.Mode == ModeCreate {
		opts = append([]model.LicenseType{""}, opts...)
	}
	return opts
}

// CycleLicenseType moves the license type select by delta, wrapping around.
func (d *Draft) CycleLicenseType(delta int) {
	opts := d.licenseTypeOptions()
	cur := 0
	for i, o := range opts {
		if o == d.LicenseType {
			cur = i
			break
		}
	}
	n := len(opts)
	d.LicenseType = opts[((cur+delta)%n+n)%n]
}

// LicenseTypeLabel is the text shown in the select control.
func (d Draft) LicenseTypeLabel() string {
	if strings.TrimSpace(string(d.LicenseType)) == "" {
		return "Select type"
	}
	return string(d.LicenseType)
}

// Commit applies the draft to c: create mode appends a record, edit mode
// replaces the target record's fields.
func (d Draft) Commit(c *store.Collection) (model.License, error) {
	fields, err := d.Fields()
	if err != nil {
		return model.License{}, err
	}
	switch d.Mode {
	case ModeEdit:
		rec, ok := c.Update(d.TargetID, fields)
		if !ok {
			return model.License{}, ErrNotFound
		}
		return rec, nil
	default:
		rec, ok := c.Create(fields)
		if !ok {
			return model.License{}, ErrIncomplete
		}
		return rec, nil
	}
}

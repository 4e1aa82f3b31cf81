package form

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"photolicense-cli/internal/model"
	"photolicense-cli/internal/statusutil"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("label"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// checked holds the draft values that go through struct validation.
type checked struct {
	PhotoURL    string `label:"photo URL" validate:"omitempty,url"`
	ClientEmail string `label:"client email" validate:"omitempty,email"`
}

// ValidationError lists per-field problems found while parsing a draft.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "invalid " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
}

// ParsePrice parses a USD amount. Empty input means zero. Fractions of a cent
// are rejected rather than rounded.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	p, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", s, err)
	}
	if p.IsNegative() {
		return decimal.Zero, fmt.Errorf("price must not be negative")
	}
	if !p.Equal(p.Round(2)) {
		return decimal.Zero, fmt.Errorf("price %q has more than two decimal places", s)
	}
	return p, nil
}

// Fields parses the draft into license fields (ID and Status left empty).
//
// Missing required fields on a create draft yield ErrIncomplete before any other
// validation runs, so an unfinished form stays a silent no-op.
func (d Draft) Fields() (model.License, error) {
	out := model.License{
		PhotoURL:     strings.TrimSpace(d.PhotoURL),
		Photographer: strings.TrimSpace(d.Photographer),
		LicenseType:  d.LicenseType,
		ClientName:   strings.TrimSpace(d.ClientName),
		ClientEmail:  strings.TrimSpace(d.ClientEmail),
		StartDate:    strings.TrimSpace(d.StartDate),
		ExpiryDate:   strings.TrimSpace(d.ExpiryDate),
		RenewalTerms: d.RenewalTerms,
		AutoRenewal:  d.AutoRenewal,
		UsageRights:  model.NewUsageRights(d.UsageRights...),
	}
	if d.Mode == ModeCreate && !out.HasRequired() {
		return model.License{}, ErrIncomplete
	}

	verr := &ValidationError{}
	if !out.LicenseType.Valid() {
		verr.add("license type", "must be Commercial, Editorial or Personal")
	}
	if p, err := ParsePrice(d.PriceText); err != nil {
		verr.add("price", "must be a non-negative amount in dollars and cents")
	} else {
		out.Price = p
	}
	if out.StartDate != "" {
		if _, err := statusutil.ParseDate(out.StartDate, time.UTC); err != nil {
			verr.add("start date", "must be YYYY-MM-DD")
		}
	}
	if out.ExpiryDate != "" {
		if _, err := statusutil.ParseDate(out.ExpiryDate, time.UTC); err != nil {
			verr.add("expiry date", "must be YYYY-MM-DD")
		}
	}
	if err := validate.Struct(checked{PhotoURL: out.PhotoURL, ClientEmail: out.ClientEmail}); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				verr.add(fe.Field(), validationMessage(fe))
			}
		} else {
			return model.License{}, fmt.Errorf("validate draft: %w", err)
		}
	}
	if len(verr.Fields) > 0 {
		return model.License{}, verr
	}
	return out, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "must be an email address"
	case "url":
		return "must be a URL"
	default:
		return "is invalid"
	}
}

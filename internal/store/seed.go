package store

import (
	"time"

	"photolicense-cli/internal/model"
	"photolicense-cli/internal/statusutil"

	"github.com/shopspring/decimal"
)

// SampleLicense is the record a fresh session starts with. Its term runs from
// March 1 to December 31 of the year of now.
func SampleLicense(now time.Time) model.License {
	y := now.Year()
	return model.License{
		PhotoURL:     "https://images.unsplash.com/photo-1682687220742-aba13b6e50ba",
		Photographer: "John Smith",
		LicenseType:  model.LicenseCommercial,
		StartDate:    time.Date(y, time.March, 1, 0, 0, 0, 0, time.UTC).Format(statusutil.DateLayout),
		ExpiryDate:   time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC).Format(statusutil.DateLayout),
		UsageRights:  model.NewUsageRights(model.UsageWeb, model.UsagePrint, model.UsageSocialMedia),
		ClientName:   "Acme Corp",
		ClientEmail:  "licensing@acme.com",
		Price:        decimal.RequireFromString("499.99"),
		RenewalTerms: "Annual renewal at current market rate",
		AutoRenewal:  true,
	}
}

// Seed appends the sample record to c.
func Seed(c *Collection) (model.License, bool) {
	return c.Create(SampleLicense(c.Now()))
}

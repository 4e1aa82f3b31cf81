package publish

import (
	"strings"
	"testing"
	"time"

	"photolicense-cli/internal/model"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func sample() model.License {
	return model.License{
		ID:           "lic-abcdefgh",
		PhotoURL:     "https://example.com/a.jpg",
		Photographer: "Jane Doe",
		LicenseType:  model.LicenseEditorial,
		ExpiryDate:   "2026-03-15",
		Status:       model.StatusExpiringSoon,
		ClientName:   "Daily | News",
		Price:        decimal.RequireFromString("1200.5"),
		UsageRights:  model.NewUsageRights(model.UsagePrint, model.UsageWeb),
		RenewalTerms: "Renew **yearly**.",
	}
}

func TestRenderLicenseMarkdown(t *testing.T) {
	t.Parallel()

	md := RenderLicenseMarkdown(sample(), testNow)
	for _, want := range []string{
		"# Jane Doe",
		"**Editorial** license, **expiring soon**",
		"| ID | lic-abcdefgh |",
		`| Client | Daily \| News |`,
		"| Price | $1,200.50 |",
		"| Expiry date | 2026-03-15 (in 5 days) |",
		"| Usage rights | Web, Print |",
		"## Renewal terms",
		"Renew **yearly**.",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in:\n%s", want, md)
		}
	}
}

func TestRenderLicenseMarkdown_EmptyOptionalFields(t *testing.T) {
	t.Parallel()

	md := RenderLicenseMarkdown(model.License{ID: "lic-x", Photographer: "P", LicenseType: model.LicensePersonal}, testNow)
	for _, want := range []string{"| Start date | — |", "| Expiry date | — |", "| Price | $0.00 |", "_None recorded._"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in:\n%s", want, md)
		}
	}
}

func TestRenderIndexMarkdown(t *testing.T) {
	t.Parallel()

	a := sample()
	b := sample()
	b.Photographer = "John Smith"
	b.Status = model.StatusActive
	b.Price = decimal.RequireFromString("499.99")

	md := RenderIndexMarkdown([]model.License{a, b}, testNow)
	if !strings.Contains(md, "1 active, 1 expiring soon, 0 expired. Total $1,700.49.") {
		t.Fatalf("unexpected summary:\n%s", md)
	}
	if strings.Index(md, "Jane Doe") > strings.Index(md, "John Smith") {
		t.Fatalf("expected insertion order:\n%s", md)
	}

	if got := RenderIndexMarkdown(nil, testNow); !strings.Contains(got, "_No licenses._") {
		t.Fatalf("unexpected empty index:\n%s", got)
	}
}

func TestFormatUSD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"499.99", "$499.99"},
		{"1200.5", "$1,200.50"},
		{"1234567.891", "$1,234,567.89"},
	}
	for _, tt := range tests {
		if got := FormatUSD(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Fatalf("FormatUSD(%s)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpiryHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"not-a-date", ""},
		{"2026-03-10", "today"},
		{"2026-03-11", "tomorrow"},
		{"2026-03-09", "yesterday"},
		{"2026-03-15", "in 5 days"},
		{"2026-03-05", "5 days ago"},
	}
	for _, tt := range tests {
		if got := ExpiryHint(tt.in, testNow); got != tt.want {
			t.Fatalf("ExpiryHint(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

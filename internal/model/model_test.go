package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageRights_ToggleTwiceRestoresSet(t *testing.T) {
	before := NewUsageRights(UsageWeb, UsagePrint)

	for _, r := range AllUsageRights() {
		after := before.Toggle(r).Toggle(r)
		assert.True(t, before.Equal(after), "toggle %q twice: got %v want %v", r, after, before)
	}
}

func TestUsageRights_NoDuplicates(t *testing.T) {
	u := NewUsageRights(UsageWeb, UsageWeb, UsageSocialMedia)
	u = u.With(UsageSocialMedia).Set(UsageWeb, true)

	assert.Equal(t, UsageRights{UsageWeb, UsageSocialMedia}, u)
}

func TestUsageRights_IgnoresUnknownTags(t *testing.T) {
	u := NewUsageRights(UsageRight("Billboard"))
	assert.Empty(t, u)
}

func TestUsageRights_AcceptsAnyCasing(t *testing.T) {
	u := NewUsageRights(UsageRight("web"), UsageRight(" social media "))
	assert.Equal(t, UsageRights{UsageWeb, UsageSocialMedia}, u)

	assert.True(t, u.Has(UsageRight("WEB")))
	assert.Equal(t, UsageRights{UsageSocialMedia}, u.Toggle(UsageRight("web")))
}

func TestLicenseType_Valid(t *testing.T) {
	for _, lt := range LicenseTypes() {
		assert.True(t, lt.Valid(), "%q", lt)
	}
	assert.False(t, LicenseType("").Valid())
	assert.False(t, LicenseType("Bogus").Valid())
}

func TestUsageRights_SetUnchecksOnlyTarget(t *testing.T) {
	u := NewUsageRights(UsageWeb, UsagePrint, UsageAdvertising)
	u = u.Set(UsagePrint, false)

	assert.Equal(t, UsageRights{UsageWeb, UsageAdvertising}, u)
	assert.False(t, u.Has(UsagePrint))
}

func TestUsageRights_CloneDoesNotAlias(t *testing.T) {
	u := NewUsageRights(UsageWeb)
	c := u.Clone()
	c[0] = UsagePrint

	assert.Equal(t, UsageWeb, u[0])
}

func TestLicense_HasRequired(t *testing.T) {
	l := License{PhotoURL: "https://example.com/p.jpg", Photographer: "Jane Doe", LicenseType: LicenseEditorial}
	assert.True(t, l.HasRequired())

	l.Photographer = "   "
	assert.False(t, l.HasRequired())

	l.Photographer = "Jane Doe"
	l.LicenseType = "Bogus"
	assert.False(t, l.HasRequired())
}

func TestLicense_JSONUsesEmptyArrayForRights(t *testing.T) {
	l := License{ID: "lic-a", Price: decimal.RequireFromString("12.50")}

	b, err := json.Marshal(l)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, []any{}, got["usageRights"])
	assert.Equal(t, "12.5", got["price"])
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "expiring soon", StatusExpiringSoon.Label())
	assert.Equal(t, "active", StatusActive.Label())
}

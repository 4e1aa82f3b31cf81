package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type LicenseType string

const (
	LicenseCommercial LicenseType = "Commercial"
	LicenseEditorial  LicenseType = "Editorial"
	LicensePersonal   LicenseType = "Personal"
)

// LicenseTypes lists the selectable license types in display order.
func LicenseTypes() []LicenseType {
	return []LicenseType{LicenseCommercial, LicenseEditorial, LicensePersonal}
}

// Valid reports whether t is one of LicenseTypes.
func (t LicenseType) Valid() bool {
	for _, known := range LicenseTypes() {
		if t == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusActive       Status = "active"
	StatusExpiringSoon Status = "expiring-soon"
	StatusExpired      Status = "expired"
)

// Label is the human form shown on badges ("expiring soon").
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

type License struct {
	ID           string          `json:"id"`
	PhotoURL     string          `json:"photoUrl"`
	Photographer string          `json:"photographerName"`
	LicenseType  LicenseType     `json:"licenseType"`
	StartDate    string          `json:"startDate,omitempty"`  // YYYY-MM-DD
	ExpiryDate   string          `json:"expiryDate,omitempty"` // YYYY-MM-DD
	UsageRights  UsageRights     `json:"usageRights"`
	Status       Status          `json:"status"`
	ClientName   string          `json:"clientName,omitempty"`
	ClientEmail  string          `json:"clientEmail,omitempty"`
	Price        decimal.Decimal `json:"price"`
	RenewalTerms string          `json:"renewalTerms,omitempty"`
	AutoRenewal  bool            `json:"autoRenewal"`
}

// HasRequired reports whether the fields needed to create a record are present.
// A license type outside LicenseTypes counts as missing.
func (l License) HasRequired() bool {
	return strings.TrimSpace(l.PhotoURL) != "" &&
		strings.TrimSpace(l.Photographer) != "" &&
		l.LicenseType.Valid()
}

// Clone returns a copy that shares no slices with l.
func (l License) Clone() License {
	out := l
	out.UsageRights = l.UsageRights.Clone()
	return out
}

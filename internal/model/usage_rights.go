package model

import (
	"encoding/json"
	"strings"
)

type UsageRight string

const (
	UsageWeb         UsageRight = "Web"
	UsagePrint       UsageRight = "Print"
	UsageSocialMedia UsageRight = "Social Media"
	UsageAdvertising UsageRight = "Advertising"
)

func AllUsageRights() []UsageRight {
	return []UsageRight{UsageWeb, UsagePrint, UsageSocialMedia, UsageAdvertising}
}

func ParseUsageRight(s string) (UsageRight, bool) {
	s = strings.TrimSpace(s)
	for _, r := range AllUsageRights() {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

// UsageRights is a set of usage-right tags. Members are kept in the order of
// AllUsageRights so rendering is stable; callers must not rely on it for equality.
type UsageRights []UsageRight

func NewUsageRights(rs ...UsageRight) UsageRights {
	var out UsageRights
	for _, r := range rs {
		out = out.With(r)
	}
	return out
}

// canonical maps a tag to its declared spelling ("web" becomes Web). Unknown
// tags are returned unchanged.
func canonical(r UsageRight) UsageRight {
	if known, ok := ParseUsageRight(string(r)); ok {
		return known
	}
	return r
}

func (u UsageRights) Has(r UsageRight) bool {
	r = canonical(r)
	for _, x := range u {
		if x == r {
			return true
		}
	}
	return false
}

// With returns the set plus r. Unknown tags are ignored.
func (u UsageRights) With(r UsageRight) UsageRights {
	r, ok := ParseUsageRight(string(r))
	if !ok || u.Has(r) {
		return u.Clone()
	}
	out := make(UsageRights, 0, len(u)+1)
	for _, known := range AllUsageRights() {
		if known == r || u.Has(known) {
			out = append(out, known)
		}
	}
	return out
}

func (u UsageRights) Without(r UsageRight) UsageRights {
	r = canonical(r)
	out := make(UsageRights, 0, len(u))
	for _, x := range u {
		if x != r {
			out = append(out, x)
		}
	}
	return out
}

// Set adds r when checked is true and removes it otherwise, mirroring a checkbox.
func (u UsageRights) Set(r UsageRight, checked bool) UsageRights {
	if checked {
		return u.With(r)
	}
	return u.Without(r)
}

func (u UsageRights) Toggle(r UsageRight) UsageRights {
	return u.Set(r, !u.Has(r))
}

func (u UsageRights) Equal(o UsageRights) bool {
	if len(u) != len(o) {
		return false
	}
	for _, r := range u {
		if !o.Has(r) {
			return false
		}
	}
	return true
}

func (u UsageRights) Clone() UsageRights {
	if u == nil {
		return nil
	}
	out := make(UsageRights, len(u))
	copy(out, u)
	return out
}

func (u UsageRights) Strings() []string {
	out := make([]string, 0, len(u))
	for _, r := range u {
		out = append(out, string(r))
	}
	return out
}

// MarshalJSON always emits an array; an empty set is [] rather than null.
func (u UsageRights) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Strings())
}

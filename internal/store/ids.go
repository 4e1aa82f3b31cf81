package store

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

const licenseIDPrefix = "lic"

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32 (lowercase, no padding).
func newRandomID(prefix string) (string, error) {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:])), nil
}

// nextID returns an identifier that no record in the collection has ever used.
func (c *Collection) nextID() (string, error) {
	for {
		id, err := c.newID(licenseIDPrefix)
		if err != nil {
			return "", err
		}
		if _, taken := c.issued[id]; taken {
			continue
		}
		c.issued[id] = struct{}{}
		return id, nil
	}
}

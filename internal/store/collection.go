package store

import (
	"time"

	"photolicense-cli/internal/model"
	"photolicense-cli/internal/statusutil"

	"github.com/shopspring/decimal"
)

// Collection is the session's ordered set of license records.
//
// It is owned by a single goroutine (the TUI event loop or a CLI command) and is
// not safe for concurrent use.
type Collection struct {
	clock   Clock
	newID   func(prefix string) (string, error)
	records []model.License
	// issued remembers every identifier handed out, including deleted ones.
	issued map[string]struct{}
}

type Option func(*Collection)

func WithClock(c Clock) Option {
	return func(col *Collection) {
		if c != nil {
			col.clock = c
		}
	}
}

func New(opts ...Option) *Collection {
	c := &Collection{
		clock:  systemClock{},
		newID:  newRandomID,
		issued: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collection) Now() time.Time { return c.clock.Now() }

// Create appends a new record built from draft. The draft's ID and Status are
// ignored. Returns false (and changes nothing) when a required field is missing.
func (c *Collection) Create(draft model.License) (model.License, bool) {
	if !draft.HasRequired() {
		return model.License{}, false
	}
	id, err := c.nextID()
	if err != nil {
		return model.License{}, false
	}
	rec := normalize(draft)
	rec.ID = id
	rec.Status = statusutil.Derive(rec.ExpiryDate, c.clock.Now())
	c.records = append(c.records, rec)
	return rec.Clone(), true
}

// Update replaces every field of the record with the given id except the id
// itself, and recomputes its status. Returns false when no record matches or
// the license type is not a known one.
func (c *Collection) Update(id string, fields model.License) (model.License, bool) {
	i := c.indexOf(id)
	if i < 0 || !fields.LicenseType.Valid() {
		return model.License{}, false
	}
	rec := normalize(fields)
	rec.ID = c.records[i].ID
	rec.Status = statusutil.Derive(rec.ExpiryDate, c.clock.Now())
	c.records[i] = rec
	return rec.Clone(), true
}

// Delete removes the record with the given id, keeping the order of the rest.
func (c *Collection) Delete(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	return true
}

// List returns a copy of the records in insertion order.
func (c *Collection) List() []model.License {
	out := make([]model.License, 0, len(c.records))
	for _, r := range c.records {
		out = append(out, r.Clone())
	}
	return out
}

func (c *Collection) Get(id string) (model.License, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return model.License{}, false
	}
	return c.records[i].Clone(), true
}

func (c *Collection) Len() int { return len(c.records) }

// Counts tallies records by their stored status.
func (c *Collection) Counts() map[model.Status]int {
	out := map[model.Status]int{}
	for _, r := range c.records {
		out[r.Status]++
	}
	return out
}

// Total sums the price of every record.
func (c *Collection) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range c.records {
		sum = sum.Add(r.Price)
	}
	return sum
}

func (c *Collection) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.records {
		if c.records[i].ID == id {
			return i
		}
	}
	return -1
}

func normalize(l model.License) model.License {
	out := l.Clone()
	out.UsageRights = model.NewUsageRights(l.UsageRights...)
	if out.Price.IsNegative() {
		out.Price = decimal.Zero
	}
	return out
}

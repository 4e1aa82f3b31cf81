package store

import "time"

// Clock supplies the moment used for status derivation.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Useful for tests and the CLI --now flag.
type FixedClock struct{ At time.Time }

func (c FixedClock) Now() time.Time { return c.At }

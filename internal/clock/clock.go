// Package clock abstracts the current time so that "ongoing" assignments
// can be resolved deterministically in tests.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the local time zone.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed struct {
	current time.Time
}

// NewFixed creates a Fixed clock stopped at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

// Now returns the stored instant.
func (c *Fixed) Now() time.Time {
	return c.current
}

// Set moves the clock to t.
func (c *Fixed) Set(t time.Time) {
	c.current = t
}

// Today returns the calendar date of c.Now() as a time.Time at UTC midnight.
// The date is taken in the clock's own location, so a local clock just after
// midnight yields the local date.
func Today(c Clock) time.Time {
	y, m, d := c.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

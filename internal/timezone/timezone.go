package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Clock reports time in the clinic's local zone.
type Clock struct {
	loc *time.Location
}

// New falls back to DefaultTimezone, then UTC, when tz cannot be loaded.
func New(tz string) *Clock {
	for _, name := range []string{tz, DefaultTimezone} {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return &Clock{loc: loc}
		}
	}
	return &Clock{loc: time.UTC}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}


package schedule

import (
	"fmt"
	"time"

	"athan/internal/errors"
)

const civilDateLayout = "2006-01-02"

// CivilDate is a calendar day in the target zone, independent of clock time.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the civil date of t in t's own location.
func DateOf(t time.Time) CivilDate {
	y, m, d := t.Date()

	return CivilDate{Year: y, Month: m, Day: d}
}

// ParseCivilDate parses a YYYY-MM-DD string.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return CivilDate{}, errors.Wrapf(err, "parse civil date %q", s)
	}

	return DateOf(t), nil
}

// String renders the date as YYYY-MM-DD.
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Midnight returns the first instant of d in loc.
func (d CivilDate) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsZero reports whether d is the zero date.
func (d CivilDate) IsZero() bool {
	return d == CivilDate{}
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// Resolver turns instants into civil date and minute-of-day in a fixed zone.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

// NewResolver loads the IANA zone and returns a Resolver bound to it.
func NewResolver(timeZone string, opts ...Option) (*Resolver, error) {
	if timeZone == "" {
		return nil, errors.New("time zone is required")
	}

	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "load time zone %q", timeZone)
	}

	r := &Resolver{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Location returns the zone the resolver works in.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Now resolves the current instant.
func (r *Resolver) Now() (CivilDate, MinuteOfDay) {
	return r.Resolve(r.now())
}

// Resolve converts t into the configured zone, dropping seconds.
func (r *Resolver) Resolve(t time.Time) (CivilDate, MinuteOfDay) {
	local := t.In(r.loc)

	return DateOf(local), MinuteOfDay(local.Hour()*60 + local.Minute())
}

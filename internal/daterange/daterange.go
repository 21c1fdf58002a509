package daterange

import (
	"net/http"
	"time"

	"github.com/Edonabdullahu1/city-sub002/internal/pkg/apperror"
)

var ErrInvalidRange = apperror.New(http.StatusBadRequest, "check-out must be after check-in")

// DayFormat is the wire format for calendar dates (no time component).
const DayFormat = "2006-01-02"

const millisPerDay = 24 * 60 * 60 * 1000

// Range is a half-open interval of calendar days [Start, End).
// Both bounds are normalized to UTC midnight on construction, so night
// arithmetic is immune to the host timezone and DST transitions.
type Range struct {
	start time.Time
	end   time.Time
}

// New builds a Range from two dates. Inputs may carry any timezone or
// time-of-day; only their calendar day (in their own location) is kept.
// End must be strictly after Start: a stay is at least one night.
func New(start, end time.Time) (Range, error) {
	s := Truncate(start)
	e := Truncate(end)
	if !e.After(s) {
		return Range{}, ErrInvalidRange
	}
	return Range{start: s, end: e}, nil
}

func (r Range) Start() time.Time { return r.start }
func (r Range) End() time.Time   { return r.end }

// Nights returns the number of nights between check-in and check-out.
// Computed as UTC-midnight millisecond difference divided by a full day,
// never by counting local-time day boundaries.
func (r Range) Nights() int {
	return int((r.end.UnixMilli() - r.start.UnixMilli()) / millisPerDay)
}

// Days returns every calendar day in [Start, End), one entry per night.
func (r Range) Days() []time.Time {
	days := make([]time.Time, 0, r.Nights())
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether the given day falls inside [Start, End).
func (r Range) Contains(day time.Time) bool {
	d := Truncate(day)
	return !d.Before(r.start) && d.Before(r.end)
}

// Truncate normalizes a timestamp to UTC midnight of its calendar day.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC-midnight date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, apperror.Wrap(err, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}

// Nights is a convenience for callers that have raw check-in/check-out
// timestamps and only need the night count.
func Nights(checkIn, checkOut time.Time) (int, error) {
	r, err := New(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return r.Nights(), nil
}

package domain

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// DateInterval is a half-open range of calendar dates: Start is inclusive,
// End is exclusive (the checkout date)
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// DateOf truncates a timestamp to its calendar date at UTC midnight
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date
func Date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// NewDateInterval normalises both bounds to calendar dates and checks End > Start
func NewDateInterval(start, end time.Time) (DateInterval, error) {
	iv := DateInterval{Start: DateOf(start), End: DateOf(end)}
	if err := iv.Validate(); err != nil {
		return DateInterval{}, err
	}
	return iv, nil
}

// MustDateInterval is NewDateInterval that panics, for literals and tests
func MustDateInterval(start, end time.Time) DateInterval {
	iv, err := NewDateInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// Validate checks the End > Start invariant
func (iv DateInterval) Validate() error {
	if iv.Start.IsZero() || iv.End.IsZero() {
		return fmt.Errorf("%w: both dates are required", ErrInvalidInterval)
	}
	if !iv.End.After(iv.Start) {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, iv)
	}
	return nil
}

// Nights returns End - Start in days
func (iv DateInterval) Nights() int {
	return DaysBetween(iv.Start, iv.End)
}

// Contains reports whether the date is a night of the interval (Start <= date < End)
func (iv DateInterval) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(iv.Start) && d.Before(iv.End)
}

// Overlaps reports whether the intervals share at least one night
func (iv DateInterval) Overlaps(other DateInterval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// IsAdjacent reports whether one interval checks out on the day the other checks in
func (iv DateInterval) IsAdjacent(other DateInterval) bool {
	return iv.End.Equal(other.Start) || other.End.Equal(iv.Start)
}

// Days returns every night of the interval in ascending order
func (iv DateInterval) Days() []time.Time {
	n := iv.Nights()
	if n <= 0 {
		return nil
	}
	days := make([]time.Time, 0, n)
	for d := iv.Start; d.Before(iv.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// String formats the interval as [start, end)
func (iv DateInterval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.Start.Format(DateFormat), iv.End.Format(DateFormat))
}

// DaysBetween returns the number of calendar days from a to b
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)) / day)
}

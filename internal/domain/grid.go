package domain

import (
	"fmt"
	"time"
)

// DayStatus availability of one room on one night
type DayStatus string

const (
	StatusAvailable   DayStatus = "available"
	StatusSelected    DayStatus = "selected"
	StatusOccupied    DayStatus = "occupied"
	StatusMaintenance DayStatus = "maintenance"
)

// DayCell is the computed status of a room on a calendar day; never persisted
type DayCell struct {
	RoomID     int64
	Date       time.Time
	Status     DayStatus
	Assignment *Assignment // nil when available
}

// IsFree returns true when nothing holds the room on that day
func (c *DayCell) IsFree() bool {
	return c.Assignment == nil
}

// Span is a merged run of consecutive nights held by the same occupant
// [Start, End) are the nights; End is the checkout date and is never itself a night,
// so nights 03-01..03-03 give End 03-04 and Nights() == 3.
// When IncludesCheckout is set the day End is displayed as the departure column
type Span struct {
	RoomID           int64
	AssignmentID     int64 // first assignment of the run
	Organization     string
	ReservationID    int64
	Status           DayStatus
	Start            time.Time
	End              time.Time
	Occupancy        int
	IncludesCheckout bool
}

// Nights returns the number of nights in the span (checkout day excluded)
func (s *Span) Nights() int {
	return DaysBetween(s.Start, s.End)
}

// Columns returns the number of displayed day columns
func (s *Span) Columns() int {
	if s.IncludesCheckout {
		return s.Nights() + 1
	}
	return s.Nights()
}

// CheckoutDate returns the departure day shown at the end of the span
func (s *Span) CheckoutDate() (time.Time, bool) {
	if !s.IncludesCheckout {
		return time.Time{}, false
	}
	return s.End, true
}

// Label formats the span for display, e.g. "3 nights, checkout on 2024-03-04"
func (s *Span) Label() string {
	n := s.Nights()
	unit := "nights"
	if n == 1 {
		unit = "night"
	}
	if s.IncludesCheckout {
		return fmt.Sprintf("%d %s, checkout on %s", n, unit, s.End.Format(DateFormat))
	}
	return fmt.Sprintf("%d %s", n, unit)
}

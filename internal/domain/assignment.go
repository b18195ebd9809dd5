package domain

import (
	"fmt"
	"time"
)

// AssignmentKind distinguishes guest stays from maintenance blocks
type AssignmentKind string

const (
	KindGuest       AssignmentKind = "guest"
	KindMaintenance AssignmentKind = "maintenance"
)

// ParseAssignmentKind validates a stored or requested kind
func ParseAssignmentKind(s string) (AssignmentKind, error) {
	switch AssignmentKind(s) {
	case KindGuest, KindMaintenance:
		return AssignmentKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAssignmentKind, s)
	}
}

// Assignment commits one room to one reservation for one interval
type Assignment struct {
	ID            int64
	RoomID        int64
	ReservationID int64 // 0 for maintenance blocks
	Organization  string
	Kind          AssignmentKind
	Interval      DateInterval
	Occupancy     int
	Price         Price // Amount is the total for the stay
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMaintenance returns true for maintenance blocks
func (a *Assignment) IsMaintenance() bool {
	return a.Kind == KindMaintenance
}

// Nights returns the number of nights of the stay
func (a *Assignment) Nights() int {
	return a.Interval.Nights()
}

// TotalPrice returns the stored total price
func (a *Assignment) TotalPrice() int64 {
	return a.Price.Amount
}

// NightlyPrice derives the per-night price from the stored total
func (a *Assignment) NightlyPrice() int64 {
	n := a.Nights()
	if n <= 0 {
		return 0
	}
	return a.Price.Amount / int64(n)
}

// Covers reports whether the assignment holds the room on the given night
func (a *Assignment) Covers(date time.Time) bool {
	return a.Interval.Contains(date)
}

// AssignmentFilter selects assignments for the availability grid and the write path
type AssignmentFilter struct {
	RoomIDs       []int64       // empty = all rooms
	Window        *DateInterval // assignments overlapping the window; nil = no limit
	ReservationID *int64
}

// AssignmentPatch carries optional changes for an in-place edit
type AssignmentPatch struct {
	RoomID       *int64
	Start        *time.Time
	End          *time.Time
	Occupancy    *int
	Price        *Price
	Organization *string
	Notes        *string
}

// IsEmpty returns true when the patch changes nothing
func (p *AssignmentPatch) IsEmpty() bool {
	return p.RoomID == nil && p.Start == nil && p.End == nil && p.Occupancy == nil &&
		p.Price == nil && p.Organization == nil && p.Notes == nil
}

// Apply returns a copy of the assignment with the patch applied
// The result is not validated
func (p *AssignmentPatch) Apply(a Assignment) Assignment {
	out := a
	if p.RoomID != nil {
		out.RoomID = *p.RoomID
	}
	if p.Start != nil {
		out.Interval.Start = DateOf(*p.Start)
	}
	if p.End != nil {
		out.Interval.End = DateOf(*p.End)
	}
	if p.Occupancy != nil {
		out.Occupancy = *p.Occupancy
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	if p.Organization != nil {
		out.Organization = *p.Organization
	}
	if p.Notes != nil {
		out.Notes = p.Notes
	}
	return out
}

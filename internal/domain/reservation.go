package domain

import "time"

// Reservation is the owning group of room assignments, meals and venue bookings
type Reservation struct {
	ID           int64
	Organization string
	ContactName  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReservationStep names a dependent record type removed before the reservation itself
type ReservationStep string

const (
	StepRoomAssignments ReservationStep = "room_assignments"
	StepMealPlans       ReservationStep = "meal_plans"
	StepVenueBookings   ReservationStep = "venue_bookings"
	StepParticipants    ReservationStep = "participants"
)

// CascadeOrder is the order in which dependents are deleted
var CascadeOrder = []ReservationStep{
	StepRoomAssignments,
	StepMealPlans,
	StepVenueBookings,
	StepParticipants,
}

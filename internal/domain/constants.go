package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default engine values
const (
	DefaultOverflowRatePerPerson = 10000 // surcharge per extra person per night
	DefaultMaxWindowDays         = 62
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxOrganizationLength = 200
	MaxOccupancy          = 50
	MaxStayNights         = 365
)

package domain

import "errors"

var (
	// ErrInvalidInterval is returned when an interval does not satisfy End > Start
	ErrInvalidInterval = errors.New("domain: interval end must be after start")

	// ErrUnknownRoomType is returned for room type codes missing from the mapping table
	ErrUnknownRoomType = errors.New("domain: unknown room type code")

	// ErrUnknownAssignmentKind is returned for unsupported assignment kinds
	ErrUnknownAssignmentKind = errors.New("domain: unknown assignment kind")

	// ErrUnknownPriceMode is returned for unsupported price modes
	ErrUnknownPriceMode = errors.New("domain: unknown price mode")

	// ErrInvalidOverride is returned when a price override is zero or negative
	ErrInvalidOverride = errors.New("domain: price override must be positive")
)

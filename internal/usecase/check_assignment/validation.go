package check_assignment

import (
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

func validateRequest(req *Request) (domain.DateInterval, error) {
	if req.RoomID <= 0 {
		return domain.DateInterval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Occupancy < 1 || req.Occupancy > domain.MaxOccupancy {
		return domain.DateInterval{}, fmt.Errorf("%w: occupancy must be between 1 and %d", ErrInvalidInput, domain.MaxOccupancy)
	}
	if req.PriceOverride != nil && *req.PriceOverride <= 0 {
		return domain.DateInterval{}, fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrInvalidOverride)
	}

	interval, err := domain.NewDateInterval(req.Start, req.End)
	if err != nil {
		return domain.DateInterval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if interval.Nights() > domain.MaxStayNights {
		return domain.DateInterval{}, fmt.Errorf("%w: stay longer than %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return interval, nil
}

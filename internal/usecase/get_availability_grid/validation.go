package get_availability_grid

import (
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

func validateRequest(req *Request, maxWindowDays int) (domain.DateInterval, error) {
	window, err := domain.NewDateInterval(req.Start, req.End)
	if err != nil {
		return domain.DateInterval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if window.Nights() > maxWindowDays {
		return domain.DateInterval{}, fmt.Errorf("%w: window longer than %d days", ErrInvalidInput, maxWindowDays)
	}
	if req.Floor != nil && *req.Floor < 0 {
		return domain.DateInterval{}, fmt.Errorf("%w: floor must not be negative", ErrInvalidInput)
	}
	if req.ReservationID != nil && *req.ReservationID <= 0 {
		return domain.DateInterval{}, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	return window, nil
}

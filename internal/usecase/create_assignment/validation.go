package create_assignment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// validateRequest валидирует запрос и возвращает нормализованные вид и интервал
func validateRequest(req *Request) (domain.AssignmentKind, domain.DateInterval, error) {
	kind := domain.KindGuest
	if req.Kind != "" {
		k, err := domain.ParseAssignmentKind(req.Kind)
		if err != nil {
			return "", domain.DateInterval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		kind = k
	}

	if req.RoomID <= 0 {
		return "", domain.DateInterval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	switch kind {
	case domain.KindGuest:
		if req.ReservationID <= 0 {
			return "", domain.DateInterval{}, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
		}
		if strings.TrimSpace(req.Organization) == "" {
			return "", domain.DateInterval{}, fmt.Errorf("%w: organization is required", ErrInvalidInput)
		}
		if req.Occupancy < 1 || req.Occupancy > domain.MaxOccupancy {
			return "", domain.DateInterval{}, fmt.Errorf("%w: occupancy must be between 1 and %d", ErrInvalidInput, domain.MaxOccupancy)
		}
	case domain.KindMaintenance:
		if req.ReservationID != 0 {
			return "", domain.DateInterval{}, fmt.Errorf("%w: maintenance block cannot belong to a reservation", ErrInvalidInput)
		}
		if req.PriceOverride != nil {
			return "", domain.DateInterval{}, fmt.Errorf("%w: maintenance block has no price", ErrInvalidInput)
		}
	}

	if len(req.Organization) > domain.MaxOrganizationLength {
		return "", domain.DateInterval{}, fmt.Errorf("%w: organization too long (max %d)", ErrInvalidInput, domain.MaxOrganizationLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return "", domain.DateInterval{}, fmt.Errorf("%w: notes too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	interval, err := domain.NewDateInterval(req.Start, req.End)
	if err != nil {
		return "", domain.DateInterval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if interval.Nights() > domain.MaxStayNights {
		return "", domain.DateInterval{}, fmt.Errorf("%w: stay longer than %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	if req.PriceOverride != nil && *req.PriceOverride <= 0 {
		return "", domain.DateInterval{}, fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrInvalidOverride)
	}

	return kind, interval, nil
}

// requestedPrice переводит необязательный override в явный тип цены
func requestedPrice(override *int64) domain.Price {
	if override != nil {
		return domain.OverridePrice(*override)
	}
	return domain.ComputedPrice()
}

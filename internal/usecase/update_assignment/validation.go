package update_assignment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// validateRequest проверяет поля запроса до чтения назначения
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: assignment id must be positive", ErrInvalidInput)
	}

	patch := req.toPatch()
	if patch.IsEmpty() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.RoomID != nil && *req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Occupancy != nil && (*req.Occupancy < 1 || *req.Occupancy > domain.MaxOccupancy) {
		return fmt.Errorf("%w: occupancy must be between 1 and %d", ErrInvalidInput, domain.MaxOccupancy)
	}
	if req.Organization != nil {
		if strings.TrimSpace(*req.Organization) == "" {
			return fmt.Errorf("%w: organization must not be empty", ErrInvalidInput)
		}
		if len(*req.Organization) > domain.MaxOrganizationLength {
			return fmt.Errorf("%w: organization too long (max %d)", ErrInvalidInput, domain.MaxOrganizationLength)
		}
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.PriceOverride != nil && req.ClearOverride {
		return fmt.Errorf("%w: priceOverride and clearOverride are mutually exclusive", ErrInvalidInput)
	}
	if req.PriceOverride != nil && *req.PriceOverride <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrInvalidOverride)
	}

	return nil
}

// validateUpdated проверяет назначение после применения патча
func validateUpdated(current, updated *domain.Assignment, req *Request) error {
	if err := updated.Interval.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if updated.Interval.Nights() > domain.MaxStayNights {
		return fmt.Errorf("%w: stay longer than %d nights", ErrInvalidInput, domain.MaxStayNights)
	}
	if current.IsMaintenance() && (req.PriceOverride != nil || req.ClearOverride) {
		return fmt.Errorf("%w: maintenance block has no price", ErrInvalidInput)
	}
	return nil
}

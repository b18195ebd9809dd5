package availability

import (
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// Candidate назначение, которое проверяется перед записью
type Candidate struct {
	RoomID              int64
	Interval            domain.DateInterval
	Occupancy           int
	ExcludeAssignmentID *int64 // при редактировании на месте само назначение не считается конфликтом
}

// Validate проверяет кандидата против снимка существующих назначений
// Возвращает nil, если конфликтов нет, *ConflictError с первым конфликтующим назначением
// (в порядке входного слайса) или ошибку валидации входных данных
func Validate(c Candidate, existing []domain.Assignment) error {
	if err := validateCandidate(c); err != nil {
		return err
	}

	for i := range existing {
		a := existing[i]

		if a.RoomID != c.RoomID {
			continue
		}
		if c.ExcludeAssignmentID != nil && a.ID == *c.ExcludeAssignmentID {
			continue
		}

		// Выезд и заезд в один день допустимы, но только при точном совпадении дат
		if a.Interval.IsAdjacent(c.Interval) {
			continue
		}

		if a.Interval.Overlaps(c.Interval) {
			return &ConflictError{Candidate: c, Conflicting: a}
		}
	}

	return nil
}

// FindConflicts возвращает все назначения, конфликтующие с кандидатом
func FindConflicts(c Candidate, existing []domain.Assignment) ([]domain.Assignment, error) {
	if err := validateCandidate(c); err != nil {
		return nil, err
	}

	var conflicts []domain.Assignment
	for _, a := range existing {
		if a.RoomID != c.RoomID {
			continue
		}
		if c.ExcludeAssignmentID != nil && a.ID == *c.ExcludeAssignmentID {
			continue
		}
		if !a.Interval.IsAdjacent(c.Interval) && a.Interval.Overlaps(c.Interval) {
			conflicts = append(conflicts, a)
		}
	}
	return conflicts, nil
}

func validateCandidate(c Candidate) error {
	if c.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if err := c.Interval.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if c.Occupancy < 1 {
		return ErrInvalidOccupancy
	}
	return nil
}

package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

var (
	// ErrConflict возвращается, когда кандидат пересекается с существующим назначением
	ErrConflict = errors.New("availability: room is already assigned for these dates")

	// ErrInvalidInput возвращается при некорректном кандидате
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrInvalidNights возвращается, когда количество ночей меньше 1
	ErrInvalidNights = errors.New("availability: nights must be at least 1")

	// ErrInvalidOccupancy возвращается, когда количество гостей меньше 1
	ErrInvalidOccupancy = errors.New("availability: occupancy must be at least 1")

	// ErrInvalidCapacity возвращается, когда вместимость номера меньше 1
	ErrInvalidCapacity = errors.New("availability: capacity must be at least 1")

	// ErrInvalidBasePrice возвращается при отрицательной базовой цене
	ErrInvalidBasePrice = errors.New("availability: base price must not be negative")
)

// ConflictError отказ валидатора с конфликтующим назначением
type ConflictError struct {
	Candidate   Candidate
	Conflicting domain.Assignment
}

func (e *ConflictError) Error() string {
	who := e.Conflicting.Organization
	if e.Conflicting.IsMaintenance() {
		who = "maintenance"
	}
	return fmt.Sprintf("%s: room %d is held by %q for %s (requested %s)",
		ErrConflict.Error(), e.Conflicting.RoomID, who, e.Conflicting.Interval, e.Candidate.Interval)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

package update_assignment

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("update_assignment: assignment not found")

	// ErrRoomNotFound возвращается, когда целевого номера нет в каталоге
	ErrRoomNotFound = errors.New("update_assignment: room not found")

	// ErrConflict возвращается, когда новые даты или номер заняты другим назначением
	ErrConflict = errors.New("update_assignment: room is not available for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_assignment: invalid input data")

	// ErrCatalogUnavailable возвращается, когда каталог номеров недоступен
	ErrCatalogUnavailable = errors.New("update_assignment: room catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_assignment: internal error")
)

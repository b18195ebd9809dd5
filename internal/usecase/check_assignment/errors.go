package check_assignment

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номера нет в каталоге
	ErrRoomNotFound = errors.New("check_assignment: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_assignment: invalid input data")

	// ErrCatalogUnavailable возвращается, когда каталог номеров недоступен
	ErrCatalogUnavailable = errors.New("check_assignment: room catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_assignment: internal error")
)

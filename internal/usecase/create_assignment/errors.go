package create_assignment

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номера нет в каталоге
	ErrRoomNotFound = errors.New("create_assignment: room not found")

	// ErrReservationNotFound возвращается, когда бронь не существует
	ErrReservationNotFound = errors.New("create_assignment: reservation not found")

	// ErrConflict возвращается, когда номер уже занят на эти даты
	// Если конфликт найден валидатором, ошибка также содержит *availability.ConflictError
	ErrConflict = errors.New("create_assignment: room is not available for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_assignment: invalid input data")

	// ErrCatalogUnavailable возвращается, когда каталог номеров недоступен
	ErrCatalogUnavailable = errors.New("create_assignment: room catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_assignment: internal error")
)

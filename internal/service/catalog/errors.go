package catalog

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номера нет в каталоге
	ErrRoomNotFound = errors.New("catalog: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrCatalogUnavailable возвращается, когда каталог номеров недоступен
	ErrCatalogUnavailable = errors.New("catalog: room catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)

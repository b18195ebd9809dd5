package get_availability_grid

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability_grid: invalid input data")

	// ErrCatalogUnavailable возвращается, когда каталог номеров недоступен
	ErrCatalogUnavailable = errors.New("get_availability_grid: room catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability_grid: internal error")
)

package roomcatalog

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номера нет в каталоге
	ErrRoomNotFound = errors.New("roomcatalog client: room not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("roomcatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от каталога
	ErrInvalidResponse = errors.New("roomcatalog client: invalid response")

	// ErrUnavailable возвращается, когда каталог не отвечает или отвечает 5xx после всех повторов
	ErrUnavailable = errors.New("roomcatalog client: service unavailable")
)

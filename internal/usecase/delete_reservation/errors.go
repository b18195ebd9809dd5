package delete_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("delete_reservation: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_reservation: invalid input data")

	// ErrDependentsRemain возвращается, когда бронь нельзя удалить из-за оставшихся зависимых записей
	ErrDependentsRemain = errors.New("delete_reservation: reservation still has dependent records")

	// ErrInternal возвращается, когда не удалось удалить саму бронь
	ErrInternal = errors.New("delete_reservation: internal error")
)

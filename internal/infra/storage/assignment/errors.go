package assignment

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("assignment.repository: assignment not found")

	// ErrOverlap возвращается, когда БД отклонила запись из-за пересечения интервалов
	// (exclusion constraint) или конкурентной сериализуемой транзакции
	ErrOverlap = errors.New("assignment.repository: overlapping assignment for the room")

	// ErrReservationMissing возвращается, когда бронь, к которой привязывается назначение, не существует
	ErrReservationMissing = errors.New("assignment.repository: reservation does not exist")

	// ErrTransaction возвращается, когда операция требует активной транзакции
	ErrTransaction = errors.New("assignment.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("assignment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("assignment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("assignment.repository: failed to scan row")
)

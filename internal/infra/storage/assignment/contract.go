package assignment

import "github.com/m04kA/SMC-RoomAssignmentService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

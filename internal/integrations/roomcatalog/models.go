package roomcatalog

import (
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// Room модель номера из каталога
type Room struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Floor     *int   `json:"floor,omitempty"` // если не передан, берется из первой цифры имени
	Type      string `json:"type"`
	Capacity  int    `json:"capacity"`
	BasePrice int64  `json:"base_price"`
}

// ListRoomsResponse ответ на список номеров
type ListRoomsResponse struct {
	Rooms []Room `json:"rooms"`
}

// ErrorResponse модель ошибки каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain проверяет номер и переводит его в доменную модель
// Неизвестный код типа номера отклоняется, а не заменяется значением по умолчанию
func (r Room) ToDomain() (domain.Room, error) {
	roomType, err := domain.ParseRoomType(r.Type)
	if err != nil {
		return domain.Room{}, fmt.Errorf("%w: room id=%d: %w", ErrInvalidResponse, r.ID, err)
	}

	if r.ID <= 0 {
		return domain.Room{}, fmt.Errorf("%w: room id must be positive, got %d", ErrInvalidResponse, r.ID)
	}
	if r.Capacity < 1 {
		return domain.Room{}, fmt.Errorf("%w: room id=%d: capacity must be at least 1", ErrInvalidResponse, r.ID)
	}
	if r.BasePrice < 0 {
		return domain.Room{}, fmt.Errorf("%w: room id=%d: negative base price", ErrInvalidResponse, r.ID)
	}

	floor := 0
	if r.Floor != nil {
		floor = *r.Floor
	} else if f, ok := domain.FloorFromName(r.Name); ok {
		floor = f
	} else {
		return domain.Room{}, fmt.Errorf("%w: room id=%d: floor is missing and name %q has no floor digit",
			ErrInvalidResponse, r.ID, r.Name)
	}

	return domain.Room{
		ID:        r.ID,
		Name:      r.Name,
		Floor:     floor,
		Type:      roomType,
		Capacity:  r.Capacity,
		BasePrice: r.BasePrice,
	}, nil
}

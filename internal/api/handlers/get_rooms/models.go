package get_rooms

import "github.com/m04kA/SMC-RoomAssignmentService/internal/domain"

// RoomResponse HTTP response model
type RoomResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Floor     int    `json:"floor"`
	Type      string `json:"type"`
	Capacity  int    `json:"capacity"`
	BasePrice int64  `json:"basePrice"`
}

// RoomsResponse список номеров
type RoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomain конвертирует номера каталога в HTTP response
func FromDomain(rooms []domain.Room) *RoomsResponse {
	out := &RoomsResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, r := range rooms {
		out.Rooms = append(out.Rooms, RoomResponse{
			ID:        r.ID,
			Name:      r.Name,
			Floor:     r.Floor,
			Type:      string(r.Type),
			Capacity:  r.Capacity,
			BasePrice: r.BasePrice,
		})
	}
	return out
}

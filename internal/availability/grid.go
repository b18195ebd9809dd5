package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// GridRow строка сетки: номер и его статусы по дням окна
type GridRow struct {
	Room  domain.Room
	Cells []domain.DayCell // по одной ячейке на каждую дату окна, по возрастанию
}

// Grid матрица номер x день; не кешируется, строится на каждый запрос
type Grid struct {
	Window    domain.DateInterval
	Dates     []time.Time
	Viewpoint *int64 // бронь, с точки зрения которой строилась сетка
	Rows      []GridRow
}

// Build строит сетку доступности для номеров в окне
// Статус ячейки по приоритету: maintenance > selected > occupied > available.
// День выезда (End назначения) ночью не является и остается свободным
func Build(rooms []domain.Room, window domain.DateInterval, assignments []domain.Assignment, viewpoint *int64) (*Grid, error) {
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: window: %v", ErrInvalidInput, err)
	}

	dates := window.Days()

	byRoom := make(map[int64][]domain.Assignment, len(rooms))
	for _, a := range assignments {
		if !a.Interval.Overlaps(window) {
			continue
		}
		byRoom[a.RoomID] = append(byRoom[a.RoomID], a)
	}

	grid := &Grid{
		Window:    window,
		Dates:     dates,
		Viewpoint: viewpoint,
		Rows:      make([]GridRow, 0, len(rooms)),
	}

	for _, room := range rooms {
		row := GridRow{
			Room:  room,
			Cells: make([]domain.DayCell, 0, len(dates)),
		}
		roomAssignments := byRoom[room.ID]

		for _, date := range dates {
			row.Cells = append(row.Cells, buildCell(room.ID, date, roomAssignments, viewpoint))
		}

		grid.Rows = append(grid.Rows, row)
	}

	return grid, nil
}

// buildCell выбирает назначение с наивысшим приоритетом среди покрывающих дату
func buildCell(roomID int64, date time.Time, assignments []domain.Assignment, viewpoint *int64) domain.DayCell {
	cell := domain.DayCell{
		RoomID: roomID,
		Date:   date,
		Status: domain.StatusAvailable,
	}

	for i := range assignments {
		a := assignments[i]
		if !a.Covers(date) {
			continue
		}

		status := statusOf(a, viewpoint)
		if cell.Assignment == nil || statusRank(status) > statusRank(cell.Status) {
			cell.Status = status
			cell.Assignment = &a
		}
	}

	return cell
}

func statusOf(a domain.Assignment, viewpoint *int64) domain.DayStatus {
	switch {
	case a.IsMaintenance():
		return domain.StatusMaintenance
	case viewpoint != nil && a.ReservationID == *viewpoint:
		return domain.StatusSelected
	default:
		return domain.StatusOccupied
	}
}

func statusRank(s domain.DayStatus) int {
	switch s {
	case domain.StatusMaintenance:
		return 3
	case domain.StatusSelected:
		return 2
	case domain.StatusOccupied:
		return 1
	default:
		return 0
	}
}

// Row возвращает строку номера
func (g *Grid) Row(roomID int64) (*GridRow, bool) {
	for i := range g.Rows {
		if g.Rows[i].Room.ID == roomID {
			return &g.Rows[i], true
		}
	}
	return nil, false
}

// Cell возвращает ячейку номера на дату
func (g *Grid) Cell(roomID int64, date time.Time) (domain.DayCell, bool) {
	row, ok := g.Row(roomID)
	if !ok || !g.Window.Contains(date) {
		return domain.DayCell{}, false
	}
	return row.Cells[domain.DaysBetween(g.Window.Start, date)], true
}

// Blocked возвращает ячейки интервала (в пределах окна), занятые другой бронью или обслуживанием
// Используется формой выбора номера для проверки "занято другой бронью"
func (g *Grid) Blocked(roomID int64, interval domain.DateInterval, reservationID int64) []domain.DayCell {
	row, ok := g.Row(roomID)
	if !ok {
		return nil
	}

	var blocked []domain.DayCell
	for _, cell := range row.Cells {
		if !interval.Contains(cell.Date) || cell.IsFree() {
			continue
		}
		if cell.Assignment.IsMaintenance() || cell.Assignment.ReservationID != reservationID {
			blocked = append(blocked, cell)
		}
	}
	return blocked
}

// Counts возвращает количество ячеек по статусам
func (g *Grid) Counts() map[domain.DayStatus]int {
	counts := map[domain.DayStatus]int{
		domain.StatusAvailable:   0,
		domain.StatusSelected:    0,
		domain.StatusOccupied:    0,
		domain.StatusMaintenance: 0,
	}
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			counts[cell.Status]++
		}
	}
	return counts
}

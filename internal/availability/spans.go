package availability

import (
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// occupant ключ слияния соседних дней
type occupant struct {
	organization  string
	reservationID int64
}

func occupantOf(a *domain.Assignment) occupant {
	return occupant{organization: a.Organization, reservationID: a.ReservationID}
}

// Merge сливает подряд идущие дни одного занимающего в спаны
// Спаны выдаются по номерам в порядке строк сетки и по возрастанию даты внутри номера.
// Если день после серии входит в окно и свободен, спан помечается как включающий день выезда;
// ночи спана [Start, End) при этом не меняются.
// Чисто презентационное преобразование, проверку конфликтов не заменяет
func Merge(grid *Grid, window domain.DateInterval) []domain.Span {
	if grid == nil {
		return nil
	}

	scan, ok := intersect(grid.Window, window)
	if !ok {
		return nil
	}

	var spans []domain.Span
	for i := range grid.Rows {
		spans = append(spans, mergeRow(&grid.Rows[i], grid.Window.Start, scan)...)
	}
	return spans
}

func mergeRow(row *GridRow, gridStart time.Time, scan domain.DateInterval) []domain.Span {
	from := domain.DaysBetween(gridStart, scan.Start)
	to := domain.DaysBetween(gridStart, scan.End) // exclusive
	cells := row.Cells

	var spans []domain.Span
	i := from
	for i < to {
		cell := cells[i]
		if cell.IsFree() {
			i++
			continue
		}

		key := occupantOf(cell.Assignment)
		span := domain.Span{
			RoomID:        row.Room.ID,
			AssignmentID:  cell.Assignment.ID,
			Organization:  cell.Assignment.Organization,
			ReservationID: cell.Assignment.ReservationID,
			Status:        cell.Status,
			Start:         cell.Date,
			Occupancy:     cell.Assignment.Occupancy,
		}

		j := i + 1
		for j < to && !cells[j].IsFree() && occupantOf(cells[j].Assignment) == key {
			if cells[j].Assignment.Occupancy > span.Occupancy {
				span.Occupancy = cells[j].Assignment.Occupancy
			}
			j++
		}

		span.End = cells[j-1].Date.AddDate(0, 0, 1)
		if j < to && cells[j].IsFree() {
			span.IncludesCheckout = true
		}

		spans = append(spans, span)
		i = j
	}

	return spans
}

func intersect(a, b domain.DateInterval) (domain.DateInterval, bool) {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	if !end.After(start) {
		return domain.DateInterval{}, false
	}
	return domain.DateInterval{Start: start, End: end}, true
}

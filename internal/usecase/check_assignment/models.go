package check_assignment

import (
	"time"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// Request модель запроса на проверку назначения (без записи)
type Request struct {
	RoomID              int64
	Start               time.Time
	End                 time.Time
	Occupancy           int
	PriceOverride       *int64
	ExcludeAssignmentID *int64 // проверка при редактировании существующего назначения
}

// Conflict занятое время, мешающее назначению
type Conflict struct {
	AssignmentID  int64
	ReservationID int64
	Organization  string
	Kind          domain.AssignmentKind
	Start         time.Time
	End           time.Time
}

// Response результат проверки: доступность и расчет цены
type Response struct {
	RoomID       int64
	RoomName     string
	Capacity     int
	Start        time.Time
	End          time.Time
	Nights       int
	Occupancy    int
	OverCapacity bool

	Available bool
	Conflicts []Conflict

	PriceMode    domain.PriceMode
	TotalPrice   int64
	NightlyPrice int64
	Surcharge    int64
}

func conflictFromDomain(a domain.Assignment) Conflict {
	return Conflict{
		AssignmentID:  a.ID,
		ReservationID: a.ReservationID,
		Organization:  a.Organization,
		Kind:          a.Kind,
		Start:         a.Interval.Start,
		End:           a.Interval.End,
	}
}

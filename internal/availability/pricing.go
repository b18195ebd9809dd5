package availability

import (
	"fmt"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

// Calculator считает стоимость проживания с доплатой за превышение вместимости
type Calculator struct {
	overflowRate int64 // доплата за одного лишнего гостя за ночь
}

// NewCalculator создает калькулятор; неположительная ставка заменяется значением по умолчанию
func NewCalculator(overflowRate int64) *Calculator {
	if overflowRate <= 0 {
		overflowRate = domain.DefaultOverflowRatePerPerson
	}
	return &Calculator{overflowRate: overflowRate}
}

// OverflowRate возвращает ставку доплаты
func (c *Calculator) OverflowRate() int64 {
	return c.overflowRate
}

// Price total = base*nights + max(0, occupancy-capacity) * rate * nights
func (c *Calculator) Price(basePrice int64, nights, occupancy, capacity int) (int64, error) {
	if basePrice < 0 {
		return 0, ErrInvalidBasePrice
	}
	if nights < 1 {
		return 0, ErrInvalidNights
	}
	if occupancy < 1 {
		return 0, ErrInvalidOccupancy
	}
	if capacity < 1 {
		return 0, ErrInvalidCapacity
	}

	total := basePrice * int64(nights)
	if extra := occupancy - capacity; extra > 0 {
		total += int64(extra) * c.overflowRate * int64(nights)
	}
	return total, nil
}

// Surcharge возвращает только доплату за превышение вместимости
func (c *Calculator) Surcharge(nights, occupancy, capacity int) int64 {
	extra := occupancy - capacity
	if extra <= 0 || nights < 1 {
		return 0
	}
	return int64(extra) * c.overflowRate * int64(nights)
}

// Resolve применяет политику цены: явный override побеждает расчет,
// иначе цена считается калькулятором для номера и интервала
func (c *Calculator) Resolve(p domain.Price, room domain.Room, interval domain.DateInterval, occupancy int) (domain.Price, error) {
	if err := p.Validate(); err != nil {
		return domain.Price{}, err
	}

	if p.IsOverride() {
		return p, nil
	}

	total, err := c.Price(room.BasePrice, interval.Nights(), occupancy, room.Capacity)
	if err != nil {
		return domain.Price{}, fmt.Errorf("room %d: %w", room.ID, err)
	}
	return domain.Price{Mode: domain.PriceModeComputed, Amount: total}, nil
}

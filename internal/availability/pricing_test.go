package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/domain"
)

func TestCalculator_Price(t *testing.T) {
	calc := NewCalculator(10000)

	tests := []struct {
		name      string
		base      int64
		nights    int
		occupancy int
		capacity  int
		want      int64
		wantErr   error
	}{
		{name: "overflow surcharge", base: 50000, nights: 2, occupancy: 5, capacity: 3, want: 140000},
		{name: "at capacity", base: 50000, nights: 2, occupancy: 3, capacity: 3, want: 100000},
		{name: "below capacity", base: 50000, nights: 3, occupancy: 1, capacity: 3, want: 150000},
		{name: "free room", base: 0, nights: 2, occupancy: 4, capacity: 2, want: 40000},
		{name: "zero nights", base: 50000, nights: 0, occupancy: 1, capacity: 1, wantErr: ErrInvalidNights},
		{name: "zero occupancy", base: 50000, nights: 1, occupancy: 0, capacity: 1, wantErr: ErrInvalidOccupancy},
		{name: "zero capacity", base: 50000, nights: 1, occupancy: 1, capacity: 0, wantErr: ErrInvalidCapacity},
		{name: "negative base", base: -1, nights: 1, occupancy: 1, capacity: 1, wantErr: ErrInvalidBasePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Price(tt.base, tt.nights, tt.occupancy, tt.capacity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_DefaultRate(t *testing.T) {
	assert.Equal(t, int64(domain.DefaultOverflowRatePerPerson), NewCalculator(0).OverflowRate())
	assert.Equal(t, int64(2500), NewCalculator(2500).OverflowRate())
}

func TestCalculator_Monotonic(t *testing.T) {
	calc := NewCalculator(10000)
	const base, capacity = 30000, 3

	for n := 1; n < 10; n++ {
		for occ := 1; occ < 8; occ++ {
			p, err := calc.Price(base, n, occ, capacity)
			require.NoError(t, err)

			moreNights, err := calc.Price(base, n+1, occ, capacity)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, moreNights, p)

			morePeople, err := calc.Price(base, n, occ+1, capacity)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, morePeople, p)
		}
	}
}

func TestCalculator_NoSurchargeAtCapacity(t *testing.T) {
	calc := NewCalculator(10000)

	for capacity := 1; capacity <= 6; capacity++ {
		for n := 1; n <= 5; n++ {
			p, err := calc.Price(45000, n, capacity, capacity)
			require.NoError(t, err)
			assert.Equal(t, int64(45000*n), p)
			assert.Zero(t, calc.Surcharge(n, capacity, capacity))
		}
	}
}

func TestCalculator_Resolve(t *testing.T) {
	calc := NewCalculator(10000)
	room := domain.Room{ID: roomR, Capacity: 3, BasePrice: 50000}
	interval := nights(1, 3)

	computed, err := calc.Resolve(domain.ComputedPrice(), room, interval, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.PriceModeComputed, computed.Mode)
	assert.Equal(t, int64(140000), computed.Amount)

	override, err := calc.Resolve(domain.OverridePrice(90000), room, interval, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.OverridePrice(90000), override)

	_, err = calc.Resolve(domain.OverridePrice(0), room, interval, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidOverride)

	_, err = calc.Resolve(domain.ComputedPrice(), domain.Room{ID: 1, BasePrice: 100}, interval, 1)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

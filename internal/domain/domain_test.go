package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAssignmentService/pkg/ptr"
)

func TestParseRoomType(t *testing.T) {
	tests := []struct {
		code    string
		want    RoomType
		wantErr bool
	}{
		{code: "twin", want: RoomTypeTwin},
		{code: " TWN ", want: RoomTypeTwin},
		{code: "washitsu", want: RoomTypeJapanese},
		{code: "junior_suite", want: RoomTypeSuite},
		{code: "twin_deluxe", wantErr: true},
		{code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseRoomType(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRoomType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloorFromName(t *testing.T) {
	floor, ok := FloorFromName("305")
	assert.True(t, ok)
	assert.Equal(t, 3, floor)

	_, ok = FloorFromName("Annex A")
	assert.False(t, ok)

	_, ok = FloorFromName("")
	assert.False(t, ok)
}

func TestPrice_Validate(t *testing.T) {
	assert.NoError(t, ComputedPrice().Validate())
	assert.NoError(t, OverridePrice(120000).Validate())
	assert.ErrorIs(t, OverridePrice(0).Validate(), ErrInvalidOverride)
	assert.ErrorIs(t, Price{Mode: "free"}.Validate(), ErrUnknownPriceMode)
}

func TestAssignment_NightlyPrice(t *testing.T) {
	a := Assignment{
		Interval: MustDateInterval(march(1), march(3)),
		Price:    Price{Mode: PriceModeComputed, Amount: 140000},
	}

	assert.Equal(t, 2, a.Nights())
	assert.Equal(t, int64(140000), a.TotalPrice())
	assert.Equal(t, int64(70000), a.NightlyPrice())
}

func TestAssignmentPatch_Apply(t *testing.T) {
	original := Assignment{
		ID:           7,
		RoomID:       101,
		Organization: "Alpha",
		Interval:     MustDateInterval(march(1), march(4)),
		Occupancy:    2,
		Price:        ComputedPrice(),
	}

	patch := AssignmentPatch{
		End:       ptr.Ptr(time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC)),
		Occupancy: ptr.Ptr(3),
	}

	updated := patch.Apply(original)

	assert.False(t, patch.IsEmpty())
	assert.Equal(t, march(5), updated.Interval.End)
	assert.Equal(t, march(1), updated.Interval.Start)
	assert.Equal(t, 3, updated.Occupancy)
	assert.Equal(t, 2, original.Occupancy, "original is not modified")
	assert.True(t, (&AssignmentPatch{}).IsEmpty())
}

func TestSpan_Label(t *testing.T) {
	withCheckout := Span{Start: march(1), End: march(4), IncludesCheckout: true}
	assert.Equal(t, 3, withCheckout.Nights())
	assert.Equal(t, 4, withCheckout.Columns())
	assert.Equal(t, "3 nights, checkout on 2024-03-04", withCheckout.Label())

	checkout, ok := withCheckout.CheckoutDate()
	assert.True(t, ok)
	assert.Equal(t, march(4), checkout)

	single := Span{Start: march(5), End: march(6)}
	assert.Equal(t, "1 night", single.Label())
	assert.Equal(t, 1, single.Columns())
}

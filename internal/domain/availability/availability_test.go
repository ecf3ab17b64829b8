//go:build unit

package availability_test

import (
	"testing"

	"resort-booking/internal/domain/availability"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name                          string
		capacity, reserved, requested int
		want                          availability.Result
	}{
		{
			name:     "one room left",
			capacity: 3, reserved: 2, requested: 1,
			want: availability.Result{Available: true, Remaining: 1, Capacity: 3, RequestedRooms: 1},
		},
		{
			name:     "not enough for two rooms",
			capacity: 3, reserved: 2, requested: 2,
			want: availability.Result{Available: false, Remaining: 1, Capacity: 3, RequestedRooms: 2},
		},
		{
			name:     "overbooked clamps to zero",
			capacity: 1, reserved: 4, requested: 1,
			want: availability.Result{Available: false, Remaining: 0, Capacity: 1, RequestedRooms: 1},
		},
		{
			name:     "requested below one defaults to one",
			capacity: 2, reserved: 0, requested: 0,
			want: availability.Result{Available: true, Remaining: 2, Capacity: 2, RequestedRooms: 1},
		},
		{
			name:     "no inventory",
			capacity: 0, reserved: 0, requested: 1,
			want: availability.Result{Available: false, Remaining: 0, Capacity: 0, RequestedRooms: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.Compute(tt.capacity, tt.reserved, tt.requested))
		})
	}
}

func TestDateRange_OverlapBounds(t *testing.T) {
	latestStart, earliestEnd := availability.DateRange{CheckIn: "2025-06-10", CheckOut: "2025-06-12"}.OverlapBounds()
	assert.Equal(t, "2025-06-12", latestStart)
	assert.Equal(t, "2025-06-10", earliestEnd)
}

func TestOccupancy_ReservedCount(t *testing.T) {
	assert.Equal(t, 2, availability.Occupancy{UnitIDs: []string{"a", "b", "a"}, Rows: 3}.ReservedCount())
	assert.Equal(t, 3, availability.Occupancy{Rows: 3}.ReservedCount())
	assert.Equal(t, 1, availability.Occupancy{UnitIDs: []string{"", "a"}, Rows: 4}.ReservedCount())
	assert.Equal(t, 0, availability.Occupancy{}.ReservedCount())
}

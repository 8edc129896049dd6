package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func slotConfig() *domain.CalendarConfig {
	return &domain.CalendarConfig{
		BusinessDays:           []int64{1, 2, 3, 4, 5},
		StartTime:              "09:00",
		EndTime:                "12:00",
		MaxAppointmentsPerSlot: 2,
	}
}

func appt(start types.TimeString, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{StartTime: start, Status: status}
}

func TestGenerateSlots_EnumeratesWindow(t *testing.T) {
	slots, err := GenerateSlots(slotConfig(), 60, nil)
	require.NoError(t, err)

	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("10:00"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("11:00"), slots[2].StartTime)

	for _, slot := range slots {
		assert.Equal(t, 2, slot.Available)
		assert.Equal(t, 2, slot.Capacity)
		assert.True(t, slot.Bookable)
	}
}

func TestGenerateSlots_CountsMatchingStarts(t *testing.T) {
	// Two active appointments at 10:00 with capacity 2 leave zero spots.
	appointments := []*domain.Appointment{
		appt("10:00", domain.StatusConfirmed),
		appt("10:00", domain.StatusPending),
	}

	slots, err := GenerateSlots(slotConfig(), 60, appointments)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, 2, slots[0].Available)
	assert.Equal(t, 0, slots[1].Available)
	assert.True(t, slots[1].IsFull())
	assert.Equal(t, 2, slots[2].Available)
}

func TestGenerateSlots_FullSlotsStillReturned(t *testing.T) {
	appointments := []*domain.Appointment{
		appt("09:00", domain.StatusConfirmed),
		appt("09:00", domain.StatusConfirmed),
		appt("09:00", domain.StatusConfirmed), // overbooked beyond capacity
	}

	slots, err := GenerateSlots(slotConfig(), 60, appointments)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	// Clamped at zero, never negative, and still present in the list.
	assert.Equal(t, 0, slots[0].Available)
}

func TestGenerateSlots_IgnoresInactiveAppointments(t *testing.T) {
	appointments := []*domain.Appointment{
		appt("10:00", domain.StatusCancelledByClient),
		appt("10:00", domain.StatusNoShow),
	}

	slots, err := GenerateSlots(slotConfig(), 60, appointments)
	require.NoError(t, err)
	assert.Equal(t, 2, slots[1].Available)
}

func TestGenerateSlots_RenderWindowWiderThanBusinessHours(t *testing.T) {
	cfg := slotConfig()
	min := types.TimeString("08:00")
	max := types.TimeString("13:00")
	cfg.SlotMinTime = &min
	cfg.SlotMaxTime = &max

	slots, err := GenerateSlots(cfg, 60, nil)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	// Context slots outside [09:00, 12:00) are rendered but not bookable.
	assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
	assert.False(t, slots[0].Bookable)
	assert.True(t, slots[1].Bookable)
	assert.True(t, slots[3].Bookable)
	assert.Equal(t, types.TimeString("12:00"), slots[4].StartTime)
	assert.False(t, slots[4].Bookable)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	appointments := []*domain.Appointment{
		appt("09:00", domain.StatusConfirmed),
		appt("11:00", domain.StatusPending),
	}

	first, err := GenerateSlots(slotConfig(), 30, appointments)
	require.NoError(t, err)
	second, err := GenerateSlots(slotConfig(), 30, appointments)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPartitionSlots_Buckets(t *testing.T) {
	tests := []struct {
		start types.TimeString
		want  domain.DayPeriod
	}{
		{start: "09:00", want: domain.PeriodMorning},
		{start: "11:59", want: domain.PeriodMorning},
		{start: "12:00", want: domain.PeriodAfternoon}, // half-open boundary
		{start: "14:00", want: domain.PeriodAfternoon},
		{start: "17:59", want: domain.PeriodAfternoon},
		{start: "18:00", want: domain.PeriodEvening},
		{start: "19:00", want: domain.PeriodEvening},
		{start: "23:30", want: domain.PeriodEvening},
	}

	for _, tt := range tests {
		t.Run(string(tt.start), func(t *testing.T) {
			groups := PartitionSlots([]domain.TimeSlot{{StartTime: tt.start}})
			require.Len(t, groups, 1)
			assert.Equal(t, tt.want, groups[0].Period)
		})
	}
}

func TestPartitionSlots_BucketIgnoresMinutes(t *testing.T) {
	// 11:45 stays morning even though the slot runs past noon.
	groups := PartitionSlots([]domain.TimeSlot{{StartTime: "11:45", EndTime: "12:45"}})
	require.Len(t, groups, 1)
	assert.Equal(t, domain.PeriodMorning, groups[0].Period)
}

func TestPartitionSlots_OrderAndAggregation(t *testing.T) {
	slots := []domain.TimeSlot{
		{StartTime: "09:00", Available: 2},
		{StartTime: "10:00", Available: 1},
		{StartTime: "14:00", Available: 0},
		{StartTime: "19:00", Available: 1},
		{StartTime: "20:00", Available: 2},
	}

	groups := PartitionSlots(slots)
	require.Len(t, groups, 3)

	assert.Equal(t, domain.PeriodMorning, groups[0].Period)
	assert.Equal(t, 3, groups[0].TotalAvailable)
	require.Len(t, groups[0].Slots, 2)
	assert.Equal(t, types.TimeString("09:00"), groups[0].Slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), groups[0].Slots[1].StartTime)

	assert.Equal(t, domain.PeriodAfternoon, groups[1].Period)
	assert.Equal(t, 0, groups[1].TotalAvailable)

	assert.Equal(t, domain.PeriodEvening, groups[2].Period)
	assert.Equal(t, 3, groups[2].TotalAvailable)
}

func TestPartitionSlots_EmptyPeriodsOmitted(t *testing.T) {
	groups := PartitionSlots([]domain.TimeSlot{{StartTime: "15:00", Available: 1}})
	require.Len(t, groups, 1)
	assert.Equal(t, domain.PeriodAfternoon, groups[0].Period)

	assert.Empty(t, PartitionSlots(nil))
}

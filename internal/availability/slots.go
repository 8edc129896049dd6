package availability

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// GenerateSlots enumerates candidate slots for one day at a fixed step within
// the rendering window [SlotMinTime ?? StartTime, SlotMaxTime ?? EndTime).
// The generator is granularity-agnostic: callers pick the step (usually the
// service duration). For each slot, Available is MaxAppointmentsPerSlot minus
// the active appointments sharing its start time, clamped at zero. Full slots
// are returned rather than omitted so callers can render them disabled; slots
// outside business hours are returned with Bookable=false.
//
// Day-level admissibility is not re-checked here, callers gate on CheckDate
// first. Pure function: identical inputs always produce an identical list.
func GenerateSlots(cfg *domain.CalendarConfig, stepMinutes int, appointments []*domain.Appointment) ([]domain.TimeSlot, error) {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultServiceDurationMinutes
	}

	windowStart, windowEnd := cfg.SlotWindow()

	slots := make([]domain.TimeSlot, 0)
	current := windowStart

	for current.IsBefore(windowEnd) {
		end, err := current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}

		available := cfg.MaxAppointmentsPerSlot - countAtStart(current, appointments)
		if available < 0 {
			available = 0
		}

		slots = append(slots, domain.TimeSlot{
			StartTime: current,
			EndTime:   end,
			Available: available,
			Capacity:  cfg.MaxAppointmentsPerSlot,
			Bookable:  cfg.IsWithinBusinessHours(current),
		})

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes wraps at midnight; a wrap would loop forever.
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}

// countAtStart подсчитывает активные записи, начинающиеся ровно в start.
// Занятость слота определяется совпадением времени начала, не пересечением.
func countAtStart(start types.TimeString, appointments []*domain.Appointment) int {
	count := 0
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.StartTime == start {
			count++
		}
	}
	return count
}

// PartitionSlots groups slots by day period for presentation. Chronological
// order is preserved within a group; group order is fixed as morning,
// afternoon, evening; empty groups are omitted. TotalAvailable aggregates
// remaining capacity per group for summary display.
func PartitionSlots(slots []domain.TimeSlot) []domain.SlotGroup {
	byPeriod := map[domain.DayPeriod][]domain.TimeSlot{}

	for _, slot := range slots {
		hour, err := slot.StartTime.Hour()
		if err != nil {
			// Malformed starts cannot be bucketed; generated slots are
			// always well-formed.
			continue
		}
		period := domain.PeriodForHour(hour)
		byPeriod[period] = append(byPeriod[period], slot)
	}

	groups := make([]domain.SlotGroup, 0, 3)
	for _, period := range []domain.DayPeriod{domain.PeriodMorning, domain.PeriodAfternoon, domain.PeriodEvening} {
		periodSlots, ok := byPeriod[period]
		if !ok {
			continue
		}

		total := 0
		for _, slot := range periodSlots {
			total += slot.Available
		}

		groups = append(groups, domain.SlotGroup{
			Period:         period,
			Slots:          periodSlots,
			TotalAvailable: total,
		})
	}

	return groups
}

package domain

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// TimeSlot represents a generated bookable time unit for one day
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available int // Remaining capacity for this start time
	Capacity  int // Total capacity (MaxAppointmentsPerSlot)

	// Bookable is false for slots rendered outside the business-hours
	// window (the SlotMinTime/SlotMaxTime context area).
	Bookable bool
}

// IsFull returns true if the slot has no remaining capacity
func (s *TimeSlot) IsFull() bool {
	return s.Available <= 0
}

// IsPartiallyAvailable returns true if the slot has some but not all capacity left
func (s *TimeSlot) IsPartiallyAvailable() bool {
	return s.Available > 0 && s.Available < s.Capacity
}

// IsFullyAvailable returns true if no appointment occupies the slot
func (s *TimeSlot) IsFullyAvailable() bool {
	return s.Available == s.Capacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *TimeSlot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	occupied := s.Capacity - s.Available
	return float64(occupied) / float64(s.Capacity) * 100
}

// DayPeriod is the presentation bucket of a slot within the day.
type DayPeriod string

const (
	PeriodMorning   DayPeriod = "morning"
	PeriodAfternoon DayPeriod = "afternoon"
	PeriodEvening   DayPeriod = "evening"
)

// Day period hour boundaries: morning [..12), afternoon [12,18), evening [18,24).
const (
	afternoonStartHour = 12
	eveningStartHour   = 18
)

// PeriodForHour buckets an hour of day into a period. Minutes never influence
// bucketing, so "12:00" is afternoon and "18:00" is evening.
func PeriodForHour(hour int) DayPeriod {
	switch {
	case hour < afternoonStartHour:
		return PeriodMorning
	case hour < eveningStartHour:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// SlotGroup is a partition of a day's slots by period, in presentation order
// morning, afternoon, evening.
type SlotGroup struct {
	Period         DayPeriod
	Slots          []TimeSlot
	TotalAvailable int // Sum of Available over the group, for summary display
}

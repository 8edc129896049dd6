package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CalendarConfig represents the scheduling policy of a single professional:
// which weekdays accept appointments, the daily business-hours window and the
// per-slot capacity. The engine treats it as an immutable value; a separate
// configuration surface replaces it wholesale.
type CalendarConfig struct {
	ID             int64
	ProfessionalID int64

	// BusinessDays are the weekdays on which appointments may be booked,
	// 0 = Sunday .. 6 = Saturday (matching time.Weekday).
	BusinessDays []int64

	// StartTime/EndTime bound the daily business window. The caller keeps
	// StartTime < EndTime; the engine does not self-enforce it.
	StartTime types.TimeString
	EndTime   types.TimeString

	// SlotMinTime/SlotMaxTime optionally widen the slot rendering window
	// beyond business hours. Slots outside [StartTime, EndTime) stay
	// non-bookable regardless.
	SlotMinTime *types.TimeString
	SlotMaxTime *types.TimeString

	MaxAppointmentsPerSlot int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultCalendarConfig returns the single default scheduling policy applied
// when a professional has no stored configuration: Monday-Friday, 08:00-18:00,
// one appointment per slot.
func DefaultCalendarConfig() *CalendarConfig {
	return &CalendarConfig{
		BusinessDays:           []int64{1, 2, 3, 4, 5},
		StartTime:              types.TimeString(DefaultStartTime),
		EndTime:                types.TimeString(DefaultEndTime),
		MaxAppointmentsPerSlot: DefaultMaxAppointmentsPerSlot,
	}
}

// IsBusinessDay reports whether weekday is in the configured business days.
func (c *CalendarConfig) IsBusinessDay(weekday time.Weekday) bool {
	for _, d := range c.BusinessDays {
		if d == int64(weekday) {
			return true
		}
	}
	return false
}

// SlotWindow returns the slot generation window: SlotMinTime/SlotMaxTime when
// set, the business-hours window otherwise.
func (c *CalendarConfig) SlotWindow() (types.TimeString, types.TimeString) {
	from := c.StartTime
	if c.SlotMinTime != nil {
		from = *c.SlotMinTime
	}
	to := c.EndTime
	if c.SlotMaxTime != nil {
		to = *c.SlotMaxTime
	}
	return from, to
}

// IsWithinBusinessHours reports whether t falls inside [StartTime, EndTime),
// the window in which appointment starts are bookable.
func (c *CalendarConfig) IsWithinBusinessHours(t types.TimeString) bool {
	return !t.IsBefore(c.StartTime) && t.IsBefore(c.EndTime)
}

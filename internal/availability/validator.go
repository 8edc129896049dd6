// Package availability is the scheduling engine: pure date/time admissibility
// checks, duration-driven end-time arithmetic and slot generation. Every
// function is a pure computation over its inputs, with no I/O and no shared
// state, so concurrent callers need no coordination.
package availability

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Structured check reasons, surfaced to callers instead of errors: business
// rule violations here are expected outcomes, not failures.
const (
	ReasonNonBusinessDay     = "non-business day"
	ReasonSpecialDateBlocked = "special date marked unavailable"
	ReasonOutsideHours       = "time is outside business hours"
)

// DateCheck is the structured result of a date-level admissibility check.
type DateCheck struct {
	IsAvailable bool
	Reason      string
}

// TimeCheck is the structured result of a business-hours check.
type TimeCheck struct {
	IsWithin bool
	Reason   string
}

// CheckDate decides whether date may host appointments. Rules are evaluated
// in order, first match wins:
//
//  1. The weekday must be one of cfg.BusinessDays.
//  2. A special date with IsAvailable=false fully blocks the day.
//
// An IsAvailable=true special date does not force-open a non-business day;
// rule 1 is checked first and is final.
func CheckDate(date time.Time, cfg *domain.CalendarConfig, specialDates []*domain.SpecialDate) DateCheck {
	if !cfg.IsBusinessDay(date.Weekday()) {
		return DateCheck{IsAvailable: false, Reason: ReasonNonBusinessDay}
	}

	for _, sd := range specialDates {
		if !sd.Matches(date) {
			continue
		}
		if sd.Blocks() {
			return DateCheck{IsAvailable: false, Reason: ReasonSpecialDateBlocked}
		}
		// Only the first matching override is consulted.
		break
	}

	return DateCheck{IsAvailable: true}
}

// CheckTime decides whether a wall-clock time lies within the business-hours
// window. Both bounds are inclusive: a time equal to StartTime or EndTime is
// within. Whether an out-of-window result is a hard failure or a soft warning
// is the caller's decision: start times block, end times only warn.
func CheckTime(t types.TimeString, cfg *domain.CalendarConfig) TimeCheck {
	if t.IsBefore(cfg.StartTime) || t.IsAfter(cfg.EndTime) {
		return TimeCheck{IsWithin: false, Reason: ReasonOutsideHours}
	}
	return TimeCheck{IsWithin: true}
}

// CheckInstant is CheckTime for a full date-time, comparing only its
// wall-clock component.
func CheckInstant(instant time.Time, cfg *domain.CalendarConfig) TimeCheck {
	return CheckTime(types.NewTimeString(instant), cfg)
}

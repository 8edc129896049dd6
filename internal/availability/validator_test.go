package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func weekdayConfig() *domain.CalendarConfig {
	return &domain.CalendarConfig{
		BusinessDays:           []int64{1, 2, 3, 4, 5}, // Monday-Friday
		StartTime:              "08:00",
		EndTime:                "18:00",
		MaxAppointmentsPerSlot: 1,
	}
}

func TestCheckDate_NonBusinessDay(t *testing.T) {
	cfg := weekdayConfig()

	// 2024-03-09 is a Saturday.
	saturday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	result := CheckDate(saturday, cfg, nil)
	assert.False(t, result.IsAvailable)
	assert.Equal(t, ReasonNonBusinessDay, result.Reason)
}

func TestCheckDate_BusinessDay(t *testing.T) {
	cfg := weekdayConfig()

	// 2024-03-05 is a Tuesday.
	tuesday := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	result := CheckDate(tuesday, cfg, nil)
	assert.True(t, result.IsAvailable)
	assert.Empty(t, result.Reason)
}

func TestCheckDate_SpecialDateBlocksBusinessDay(t *testing.T) {
	cfg := weekdayConfig()

	// 2024-12-25 is a Wednesday, a configured business day.
	christmas := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	specialDates := []*domain.SpecialDate{
		{Date: christmas, Title: "Christmas", IsAvailable: false},
	}

	result := CheckDate(christmas, cfg, specialDates)
	assert.False(t, result.IsAvailable)
	assert.Equal(t, ReasonSpecialDateBlocked, result.Reason)
}

func TestCheckDate_AvailableSpecialDateDoesNotOpenClosedDay(t *testing.T) {
	cfg := weekdayConfig()

	// 2024-03-10 is a Sunday; an explicit "available" override does not
	// force-open a non-business day.
	sunday := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	specialDates := []*domain.SpecialDate{
		{Date: sunday, Title: "Exceptional opening", IsAvailable: true},
	}

	result := CheckDate(sunday, cfg, specialDates)
	assert.False(t, result.IsAvailable)
	assert.Equal(t, ReasonNonBusinessDay, result.Reason)
}

func TestCheckDate_AvailableSpecialDateOnBusinessDay(t *testing.T) {
	cfg := weekdayConfig()

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	specialDates := []*domain.SpecialDate{
		{Date: monday, Title: "Open as usual", IsAvailable: true},
	}

	result := CheckDate(monday, cfg, specialDates)
	assert.True(t, result.IsAvailable)
}

func TestCheckDate_SpecialDateOtherDayIgnored(t *testing.T) {
	cfg := weekdayConfig()

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	specialDates := []*domain.SpecialDate{
		{Date: monday.AddDate(0, 0, 1), Title: "Closed tomorrow", IsAvailable: false},
	}

	result := CheckDate(monday, cfg, specialDates)
	assert.True(t, result.IsAvailable)
}

func TestCheckDate_MatchIgnoresTimeComponent(t *testing.T) {
	cfg := weekdayConfig()

	// The override stores midnight; the candidate carries a time of day.
	// Only the YYYY-MM-DD prefix participates in the comparison.
	specialDates := []*domain.SpecialDate{
		{Date: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), IsAvailable: false},
	}
	candidate := time.Date(2024, 12, 25, 14, 30, 0, 0, time.UTC)

	result := CheckDate(candidate, cfg, specialDates)
	assert.False(t, result.IsAvailable)
	assert.Equal(t, ReasonSpecialDateBlocked, result.Reason)
}

func TestCheckTime(t *testing.T) {
	cfg := weekdayConfig()

	tests := []struct {
		name       string
		time       types.TimeString
		wantWithin bool
	}{
		{name: "inside window", time: "10:30", wantWithin: true},
		{name: "at open", time: "08:00", wantWithin: true},
		{name: "at close", time: "18:00", wantWithin: true},
		{name: "before open", time: "07:59", wantWithin: false},
		{name: "after close", time: "18:01", wantWithin: false},
		{name: "evening", time: "19:30", wantWithin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckTime(tt.time, cfg)
			assert.Equal(t, tt.wantWithin, result.IsWithin)
			if tt.wantWithin {
				assert.Empty(t, result.Reason)
			} else {
				assert.Equal(t, ReasonOutsideHours, result.Reason)
			}
		})
	}
}

func TestCheckInstant(t *testing.T) {
	cfg := weekdayConfig()

	// Tuesday 19:30 is outside the 08:00-18:00 window.
	instant := time.Date(2024, 3, 5, 19, 30, 0, 0, time.UTC)
	result := CheckInstant(instant, cfg)
	assert.False(t, result.IsWithin)

	instant = time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)
	result = CheckInstant(instant, cfg)
	assert.True(t, result.IsWithin)
}

package domain

import "time"

// SpecialDate is a day-level override of the weekly pattern: a holiday, an
// exceptional closure or an exceptional opening. At most one override per
// calendar day is consulted.
type SpecialDate struct {
	ID             int64
	ProfessionalID int64
	Date           time.Time // day granularity, time component ignored
	Title          string
	IsAvailable    bool
	Color          *string
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Matches reports whether the override applies to date. Comparison is by the
// YYYY-MM-DD prefix only, so time components and zones within a day are
// irrelevant.
func (s *SpecialDate) Matches(date time.Time) bool {
	return s.Date.Format(DateFormat) == date.Format(DateFormat)
}

// Blocks reports whether the override fully blocks its date.
func (s *SpecialDate) Blocks() bool {
	return !s.IsAvailable
}

// Package streak tracks consecutive days with at least one completed work
// session
package streak

import "github.com/hvila/hvila/internal/timeutil"

// Streak is the day streak persisted with the statistics document.
type Streak struct {
	LastDate *timeutil.Date `json:"lastDate"`
	Current  int            `json:"current"`
	Longest  int            `json:"longest"`
}

// Update returns the streak after counting today. It does nothing if today
// was already counted, continues the streak if the last counted day was
// yesterday, and starts a new streak otherwise.
func Update(s Streak, today timeutil.Date) Streak {
	if s.LastDate != nil && *s.LastDate == today {
		return s
	}

	if s.LastDate != nil && *s.LastDate == today.AddDays(-1) {
		s.Current++
	} else {
		s.Current = 1
	}

	s.Longest = max(s.Longest, s.Current)

	d := today
	s.LastDate = &d

	return s
}

// Alive reports whether the streak still counts as of today, i.e. the last
// counted day is today or yesterday.
func (s Streak) Alive(today timeutil.Date) bool {
	if s.LastDate == nil {
		return false
	}

	return *s.LastDate == today || *s.LastDate == today.AddDays(-1)
}

// CountedOn reports whether the given day has already been counted.
func (s Streak) CountedOn(day timeutil.Date) bool {
	return s.LastDate != nil && *s.LastDate == day
}

// Package models holds the documents hvila persists.
package models

import (
	"time"

	"github.com/hvila/hvila/internal/streak"
)

// Stats are the cumulative counters. They only go down through an explicit
// reset or an import.
type Stats struct {
	Sessions  int `json:"sessions"`
	Exercises int `json:"exercises"`
}

// StatsDoc is the persisted statistics document.
type StatsDoc struct {
	Streak    *streak.Streak `json:"streak,omitempty"`
	Stats     Stats          `json:"stats"`
	Timestamp int64          `json:"timestamp"`
}

// NewStatsDoc builds a statistics document stamped with now.
func NewStatsDoc(stats Stats, s streak.Streak, now time.Time) StatsDoc {
	return StatsDoc{
		Stats:     stats,
		Streak:    &s,
		Timestamp: now.UnixMilli(),
	}
}

// StreakOrZero returns the document's streak, or the zero streak when the
// document predates streak tracking.
func (d StatsDoc) StreakOrZero() streak.Streak {
	if d.Streak == nil {
		return streak.Streak{}
	}

	return *d.Streak
}

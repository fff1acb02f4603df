package models

import "time"

// RecurrenceType describes how often a session repeats.
type RecurrenceType string

const (
	RecurrenceOnce    RecurrenceType = "once"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// PatternEntry is one weekday slot of a weekly recurrence. The same weekday
// may appear more than once with different start times.
type PatternEntry struct {
	ID        string `bson:"id" json:"id"`
	Day       string `bson:"day" json:"day"`             // "Sunday".."Saturday"
	StartTime string `bson:"startTime" json:"startTime"` // "HH:mm"
}

// RecurrenceRule is the weekly pattern plus date bounds that a session's
// occurrences are generated from.
type RecurrenceRule struct {
	RecurrenceType RecurrenceType `bson:"recurrenceType" json:"recurrenceType"`
	StartTime      time.Time      `bson:"startTime" json:"startTime"`
	SessionEndDate string         `bson:"sessionEndDate,omitempty" json:"sessionEndDate,omitempty"` // "YYYY-MM-DD", inclusive; empty means no occurrences
	WeeklyPattern  []PatternEntry `bson:"weeklyPattern,omitempty" json:"weeklyPattern,omitempty"`
}

// Occurrence is one concrete calendar-dated instance derived from a weekly
// rule. Occurrences are computed on demand and never persisted.
type Occurrence struct {
	ID   string `json:"id"`   // "<patternEntryID>_<YYYY-MM-DD>"
	Date string `json:"date"` // "YYYY-MM-DD"
	Day  string `json:"day"`
	Time string `json:"time"` // copied from the pattern entry's StartTime
}

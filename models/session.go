// File: models/session.go
package models

import "time"

// Session statuses used by the dashboard list buckets.
const (
	SessionStatusLive     = "live"
	SessionStatusUpcoming = "upcoming"
	SessionStatusPast     = "past"
	SessionStatusDraft    = "draft"
)

// Session is the top-level live-class entity. A recurring session owns one
// schedule per weekly-pattern entry.
type Session struct {
	ID          string         `bson:"id" json:"id"`
	Title       string         `bson:"title" json:"title"`
	Subject     string         `bson:"subject,omitempty" json:"subject,omitempty"`
	AccessLevel string         `bson:"accessLevel,omitempty" json:"accessLevel,omitempty"` // e.g. "free", "paid"
	Status      string         `bson:"status" json:"status"`
	HostID      string         `bson:"hostId,omitempty" json:"hostId,omitempty"`
	MeetingLink string         `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	MeetingDate string         `bson:"meetingDate,omitempty" json:"meetingDate,omitempty"` // "YYYY-MM-DD"; first/next occurrence for list views
	Recurrence  RecurrenceRule `bson:"recurrence" json:"recurrence"`
	ScheduleIDs []string       `bson:"scheduleIds,omitempty" json:"scheduleIds,omitempty"`

	// Occurrence IDs removed via manual multi-select deletion. Generated
	// occurrences matching an entry here are filtered out of previews.
	ExcludedOccurrences []string `bson:"excludedOccurrences,omitempty" json:"excludedOccurrences,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsRecurring reports whether the session repeats on a weekly or monthly rule.
func (s Session) IsRecurring() bool {
	return s.Recurrence.RecurrenceType == RecurrenceWeekly || s.Recurrence.RecurrenceType == RecurrenceMonthly
}

// Schedule is a single concrete time-slot binding within a session, one per
// weekly-pattern entry for recurring sessions.
type Schedule struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Day       string    `bson:"day" json:"day"`
	StartTime string    `bson:"startTime" json:"startTime"` // "HH:mm"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// FilterCriteria narrows session list views. Unset criteria match everything;
// set criteria are AND-combined.
type FilterCriteria struct {
	NameQuery      string         `json:"nameQuery,omitempty" form:"nameQuery"`
	DateStart      string         `json:"dateStart,omitempty" form:"dateStart"` // "YYYY-MM-DD", inclusive
	DateEnd        string         `json:"dateEnd,omitempty" form:"dateEnd"`     // "YYYY-MM-DD", inclusive
	RecurrenceType RecurrenceType `json:"recurrenceType,omitempty" form:"recurrenceType"`
	Subject        string         `json:"subject,omitempty" form:"subject"`
	AccessLevel    string         `json:"accessLevel,omitempty" form:"accessLevel"`
}

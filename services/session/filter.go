// File: services/session/filter.go
package session

import (
	"strings"
	"time"

	"classadmin/models"
)

// FilterSessions returns the sessions matching every set criterion, in input
// order. Unset criteria match everything.
func FilterSessions(sessions []models.Session, criteria models.FilterCriteria) []models.Session {
	var matched []models.Session
	for _, s := range sessions {
		if matchesCriteria(s, criteria) {
			matched = append(matched, s)
		}
	}
	return matched
}

func matchesCriteria(s models.Session, c models.FilterCriteria) bool {
	if c.NameQuery != "" &&
		!strings.Contains(strings.ToLower(s.Title), strings.ToLower(c.NameQuery)) {
		return false
	}

	if c.DateStart != "" || c.DateEnd != "" {
		meeting, err := time.ParseInLocation("2006-01-02", s.MeetingDate, time.UTC)
		if err != nil {
			// An unparsable meeting date only fails when a bound is set.
			return false
		}
		if c.DateStart != "" {
			if start, err := time.ParseInLocation("2006-01-02", c.DateStart, time.UTC); err == nil && meeting.Before(start) {
				return false
			}
		}
		if c.DateEnd != "" {
			if end, err := time.ParseInLocation("2006-01-02", c.DateEnd, time.UTC); err == nil && meeting.After(end) {
				return false
			}
		}
	}

	if c.RecurrenceType != "" && s.Recurrence.RecurrenceType != c.RecurrenceType {
		return false
	}
	if c.Subject != "" && s.Subject != c.Subject {
		return false
	}
	if c.AccessLevel != "" && s.AccessLevel != c.AccessLevel {
		return false
	}
	return true
}

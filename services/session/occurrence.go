// File: services/session/occurrence.go
package session

import (
	"fmt"
	"time"

	"classadmin/models"
)

var weekdayByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// GenerateOccurrences expands a weekly recurrence rule into the ordered list
// of concrete calendar occurrences between the rule's start date and its
// inclusive end date. It walks the range day by day and, for every pattern
// entry whose weekday matches, emits one occurrence with the composite ID
// "<entryID>_<YYYY-MM-DD>".
//
// All date arithmetic happens on UTC calendar dates; StartTime is converted
// to UTC before truncation so results do not depend on the server's locale.
//
// Degenerate input never panics: a non-weekly rule, a missing or malformed
// end date, or a start after the end all yield an empty list. Pattern entries
// with unknown weekday names simply never match.
func GenerateOccurrences(rule models.RecurrenceRule) []models.Occurrence {
	if rule.RecurrenceType != models.RecurrenceWeekly {
		return nil
	}
	if rule.SessionEndDate == "" {
		return nil
	}
	end, err := time.ParseInLocation("2006-01-02", rule.SessionEndDate, time.UTC)
	if err != nil {
		return nil
	}

	start := rule.StartTime.UTC()
	current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	var occurrences []models.Occurrence
	for !current.After(end) {
		for _, entry := range rule.WeeklyPattern {
			day, ok := weekdayByName[entry.Day]
			if !ok || day != current.Weekday() {
				continue
			}
			date := current.Format("2006-01-02")
			occurrences = append(occurrences, models.Occurrence{
				ID:   fmt.Sprintf("%s_%s", entry.ID, date),
				Date: date,
				Day:  entry.Day,
				Time: entry.StartTime,
			})
		}
		current = current.AddDate(0, 0, 1)
	}
	return occurrences
}

// DropExcluded filters out occurrences whose IDs were removed via manual
// deletion, preserving order.
func DropExcluded(occurrences []models.Occurrence, excludedIDs []string) []models.Occurrence {
	if len(excludedIDs) == 0 {
		return occurrences
	}
	excluded := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}
	var kept []models.Occurrence
	for _, occ := range occurrences {
		if _, drop := excluded[occ.ID]; !drop {
			kept = append(kept, occ)
		}
	}
	return kept
}

package session

import (
	"reflect"
	"testing"
	"time"

	"classadmin/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateOccurrencesWeekly(t *testing.T) {
	// 2024-01-01 is a Monday.
	rule := models.RecurrenceRule{
		RecurrenceType: models.RecurrenceWeekly,
		StartTime:      date(2024, time.January, 1),
		SessionEndDate: "2024-01-15",
		WeeklyPattern: []models.PatternEntry{
			{ID: "p1", Day: "Monday", StartTime: "10:00"},
		},
	}

	got := GenerateOccurrences(rule)

	want := []models.Occurrence{
		{ID: "p1_2024-01-01", Date: "2024-01-01", Day: "Monday", Time: "10:00"},
		{ID: "p1_2024-01-08", Date: "2024-01-08", Day: "Monday", Time: "10:00"},
		{ID: "p1_2024-01-15", Date: "2024-01-15", Day: "Monday", Time: "10:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenerateOccurrences() = %+v, want %+v", got, want)
	}
}

func TestGenerateOccurrencesEmptyCases(t *testing.T) {
	monday := date(2024, time.January, 1)
	pattern := []models.PatternEntry{{ID: "p1", Day: "Monday", StartTime: "10:00"}}

	tests := []struct {
		name string
		rule models.RecurrenceRule
	}{
		{
			name: "once recurrence",
			rule: models.RecurrenceRule{RecurrenceType: models.RecurrenceOnce, StartTime: monday, SessionEndDate: "2024-01-15", WeeklyPattern: pattern},
		},
		{
			name: "monthly recurrence",
			rule: models.RecurrenceRule{RecurrenceType: models.RecurrenceMonthly, StartTime: monday, SessionEndDate: "2024-01-15", WeeklyPattern: pattern},
		},
		{
			name: "missing end date",
			rule: models.RecurrenceRule{RecurrenceType: models.RecurrenceWeekly, StartTime: monday, WeeklyPattern: pattern},
		},
		{
			name: "malformed end date",
			rule: models.RecurrenceRule{RecurrenceType: models.RecurrenceWeekly, StartTime: monday, SessionEndDate: "not-a-date", WeeklyPattern: pattern},
		},
		{
			name: "start after end",
			rule: models.RecurrenceRule{RecurrenceType: models.RecurrenceWeekly, StartTime: date(2024, time.February, 1), SessionEndDate: "2024-01-15", WeeklyPattern: pattern},
		},
		{
			name: "unknown weekday name",
			rule: models.RecurrenceRule{RecurrenceType: models.RecurrenceWeekly, StartTime: monday, SessionEndDate: "2024-01-15", WeeklyPattern: []models.PatternEntry{{ID: "p1", Day: "Moonday", StartTime: "10:00"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateOccurrences(tt.rule); len(got) != 0 {
				t.Errorf("GenerateOccurrences() = %+v, want empty", got)
			}
		})
	}
}

func TestGenerateOccurrencesMultipleSlotsPerDay(t *testing.T) {
	// Two Monday slots and one Wednesday slot over one week.
	rule := models.RecurrenceRule{
		RecurrenceType: models.RecurrenceWeekly,
		StartTime:      date(2024, time.January, 1),
		SessionEndDate: "2024-01-07",
		WeeklyPattern: []models.PatternEntry{
			{ID: "m1", Day: "Monday", StartTime: "09:00"},
			{ID: "m2", Day: "Monday", StartTime: "17:30"},
			{ID: "w1", Day: "Wednesday", StartTime: "11:00"},
		},
	}

	got := GenerateOccurrences(rule)

	wantIDs := []string{"m1_2024-01-01", "m2_2024-01-01", "w1_2024-01-03"}
	if len(got) != len(wantIDs) {
		t.Fatalf("GenerateOccurrences() returned %d occurrences, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("occurrence[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestGenerateOccurrencesCountMatchesPatternDays(t *testing.T) {
	// Every date in range contributes one occurrence per matching pattern
	// entry: 15 days starting Monday covers 3 Mondays and 2 Saturdays.
	rule := models.RecurrenceRule{
		RecurrenceType: models.RecurrenceWeekly,
		StartTime:      date(2024, time.January, 1),
		SessionEndDate: "2024-01-15",
		WeeklyPattern: []models.PatternEntry{
			{ID: "a", Day: "Monday", StartTime: "08:00"},
			{ID: "b", Day: "Saturday", StartTime: "12:00"},
		},
	}

	got := GenerateOccurrences(rule)
	if len(got) != 5 {
		t.Errorf("GenerateOccurrences() returned %d occurrences, want 5", len(got))
	}
}

func TestGenerateOccurrencesIdempotent(t *testing.T) {
	rule := models.RecurrenceRule{
		RecurrenceType: models.RecurrenceWeekly,
		StartTime:      date(2024, time.March, 5),
		SessionEndDate: "2024-04-30",
		WeeklyPattern: []models.PatternEntry{
			{ID: "t1", Day: "Tuesday", StartTime: "10:00"},
			{ID: "f1", Day: "Friday", StartTime: "15:00"},
		},
	}

	first := GenerateOccurrences(rule)
	second := GenerateOccurrences(rule)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("GenerateOccurrences() not deterministic: %+v vs %+v", first, second)
	}
}

func TestGenerateOccurrencesUniqueIDs(t *testing.T) {
	rule := models.RecurrenceRule{
		RecurrenceType: models.RecurrenceWeekly,
		StartTime:      date(2024, time.January, 1),
		SessionEndDate: "2024-06-30",
		WeeklyPattern: []models.PatternEntry{
			{ID: "m1", Day: "Monday", StartTime: "09:00"},
			{ID: "m2", Day: "Monday", StartTime: "18:00"},
			{ID: "s1", Day: "Sunday", StartTime: "07:00"},
		},
	}

	seen := make(map[string]struct{})
	for _, occ := range GenerateOccurrences(rule) {
		if _, dup := seen[occ.ID]; dup {
			t.Fatalf("duplicate occurrence ID %q", occ.ID)
		}
		seen[occ.ID] = struct{}{}
	}
}

func TestDropExcluded(t *testing.T) {
	occurrences := []models.Occurrence{
		{ID: "p1_2024-01-01"},
		{ID: "p1_2024-01-08"},
		{ID: "p1_2024-01-15"},
	}

	got := DropExcluded(occurrences, []string{"p1_2024-01-08"})
	if len(got) != 2 {
		t.Fatalf("DropExcluded() kept %d occurrences, want 2", len(got))
	}
	if got[0].ID != "p1_2024-01-01" || got[1].ID != "p1_2024-01-15" {
		t.Errorf("DropExcluded() kept wrong occurrences: %+v", got)
	}

	// No exclusions returns the input untouched.
	if got := DropExcluded(occurrences, nil); !reflect.DeepEqual(got, occurrences) {
		t.Errorf("DropExcluded() with no exclusions = %+v, want input", got)
	}
}

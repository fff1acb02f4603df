package session

import (
	"testing"

	"classadmin/models"
)

func titles(sessions []models.Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.Title
	}
	return out
}

func TestFilterSessions(t *testing.T) {
	sessions := []models.Session{
		{Title: "Math 101", Subject: "math", AccessLevel: "paid", MeetingDate: "2024-02-01",
			Recurrence: models.RecurrenceRule{RecurrenceType: models.RecurrenceWeekly}},
		{Title: "History", Subject: "history", AccessLevel: "free", MeetingDate: "2024-02-15",
			Recurrence: models.RecurrenceRule{RecurrenceType: models.RecurrenceOnce}},
		{Title: "MATHEMATICS", Subject: "math", AccessLevel: "free", MeetingDate: "bogus",
			Recurrence: models.RecurrenceRule{RecurrenceType: models.RecurrenceWeekly}},
	}

	tests := []struct {
		name     string
		criteria models.FilterCriteria
		want     []string
	}{
		{
			name:     "no criteria matches all",
			criteria: models.FilterCriteria{},
			want:     []string{"Math 101", "History", "MATHEMATICS"},
		},
		{
			name:     "case-insensitive substring on title",
			criteria: models.FilterCriteria{NameQuery: "math"},
			want:     []string{"Math 101", "MATHEMATICS"},
		},
		{
			name:     "date range excludes unparsable dates",
			criteria: models.FilterCriteria{DateStart: "2024-02-01"},
			want:     []string{"Math 101", "History"},
		},
		{
			name:     "inclusive date bounds",
			criteria: models.FilterCriteria{DateStart: "2024-02-01", DateEnd: "2024-02-01"},
			want:     []string{"Math 101"},
		},
		{
			name:     "recurrence type exact match",
			criteria: models.FilterCriteria{RecurrenceType: models.RecurrenceOnce},
			want:     []string{"History"},
		},
		{
			name:     "subject is case-sensitive",
			criteria: models.FilterCriteria{Subject: "Math"},
			want:     nil,
		},
		{
			name:     "criteria are AND-combined",
			criteria: models.FilterCriteria{NameQuery: "math", AccessLevel: "free"},
			want:     []string{"MATHEMATICS"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(FilterSessions(sessions, tt.criteria))
			if len(got) != len(tt.want) {
				t.Fatalf("FilterSessions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FilterSessions()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterSessionsPreservesOrder(t *testing.T) {
	sessions := []models.Session{
		{Title: "c math"},
		{Title: "a math"},
		{Title: "b math"},
	}
	got := titles(FilterSessions(sessions, models.FilterCriteria{NameQuery: "math"}))
	want := []string{"c math", "a math", "b math"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FilterSessions() reordered input: %v", got)
		}
	}
}

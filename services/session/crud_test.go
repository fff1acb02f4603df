// File: services/session/crud_test.go
package session

import (
	"errors"
	"testing"

	"classadmin/models"
)

func TestEnsurePatternEntryIDsAssignsMissing(t *testing.T) {
	pattern := []models.PatternEntry{
		{Day: "Monday", StartTime: "09:00"},
		{ID: "w1", Day: "Wednesday", StartTime: "11:00"},
		{Day: "Friday", StartTime: "15:00"},
	}

	if err := ensurePatternEntryIDs(pattern); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]struct{}, len(pattern))
	for i, entry := range pattern {
		if entry.ID == "" {
			t.Errorf("entry[%d] still has an empty ID", i)
		}
		if _, dup := seen[entry.ID]; dup {
			t.Errorf("entry[%d] reuses ID %q", i, entry.ID)
		}
		seen[entry.ID] = struct{}{}
	}
	if pattern[1].ID != "w1" {
		t.Errorf("existing ID rewritten to %q, want w1", pattern[1].ID)
	}
}

func TestEnsurePatternEntryIDsRejectsDuplicates(t *testing.T) {
	pattern := []models.PatternEntry{
		{ID: "m1", Day: "Monday", StartTime: "09:00"},
		{ID: "m1", Day: "Monday", StartTime: "17:30"},
	}

	err := ensurePatternEntryIDs(pattern)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ensurePatternEntryIDs() error = %v, want ValidationError", err)
	}
}

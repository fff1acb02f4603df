// File: database/repository/session/queries_test.go
package sessionRepo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSchedulePullUpdateDetachesPatternEntries(t *testing.T) {
	ids := []string{"m1", "w1"}

	update := schedulePullUpdate(ids)

	pull, ok := update["$pull"].(bson.M)
	if !ok {
		t.Fatalf("update has no $pull document: %+v", update)
	}

	link, ok := pull["scheduleIds"].(bson.M)
	if !ok {
		t.Fatalf("$pull does not address scheduleIds: %+v", pull)
	}
	if got, ok := link["$in"].([]string); !ok || len(got) != 2 || got[0] != "m1" || got[1] != "w1" {
		t.Errorf("scheduleIds pull = %+v, want $in [m1 w1]", link)
	}

	// Deleting a schedule must also remove the weekly-pattern entry it was
	// created from, or the session keeps generating its occurrences.
	pattern, ok := pull["recurrence.weeklyPattern"].(bson.M)
	if !ok {
		t.Fatalf("$pull does not address recurrence.weeklyPattern: %+v", pull)
	}
	byID, ok := pattern["id"].(bson.M)
	if !ok {
		t.Fatalf("weeklyPattern pull does not match on entry id: %+v", pattern)
	}
	if got, ok := byID["$in"].([]string); !ok || len(got) != 2 || got[0] != "m1" || got[1] != "w1" {
		t.Errorf("weeklyPattern pull = %+v, want $in [m1 w1]", byID)
	}

	if _, ok := update["$set"].(bson.M); !ok {
		t.Errorf("update does not stamp updatedAt: %+v", update)
	}
}

package session

import (
	"errors"
	"reflect"
	"testing"

	"classadmin/models"
)

func TestResolveDeletionRequest(t *testing.T) {
	dctx := models.DeleteContext{SessionID: "S1", ScheduleID: "SCH1", IsRecurring: true}

	tests := []struct {
		name    string
		scope   models.DeletionScope
		dctx    models.DeleteContext
		want    models.DeleteRequest
		wantErr bool
	}{
		{
			name:  "single",
			scope: models.DeletionScope{Kind: models.DeleteSingle},
			dctx:  dctx,
			want:  models.DeleteRequest{IDs: []string{"S1"}, Mode: models.DeleteSingle},
		},
		{
			name:  "following",
			scope: models.DeletionScope{Kind: models.DeleteFollowing},
			dctx:  dctx,
			want:  models.DeleteRequest{IDs: []string{"S1"}, Mode: models.DeleteFollowing},
		},
		{
			name:  "entire session",
			scope: models.DeletionScope{Kind: models.DeleteSession},
			dctx:  dctx,
			want:  models.DeleteRequest{IDs: []string{"S1"}, Mode: models.DeleteSession},
		},
		{
			name:  "schedule with distinct schedule ID",
			scope: models.DeletionScope{Kind: models.DeleteSchedule},
			dctx:  dctx,
			want:  models.DeleteRequest{IDs: []string{"SCH1"}, Mode: models.DeleteSchedule},
		},
		{
			name:  "schedule falls back to session ID",
			scope: models.DeletionScope{Kind: models.DeleteSchedule},
			dctx:  models.DeleteContext{SessionID: "S1"},
			want:  models.DeleteRequest{IDs: []string{"S1"}, Mode: models.DeleteSchedule},
		},
		{
			name: "manual with selection",
			scope: models.DeletionScope{
				Kind:                  models.DeleteManual,
				SelectedOccurrenceIDs: []string{"p1_2024-01-08", "p1_2024-01-01", "p1_2024-01-08"},
			},
			dctx: dctx,
			want: models.DeleteRequest{IDs: []string{"p1_2024-01-01", "p1_2024-01-08"}, Mode: models.DeleteManual},
		},
		{
			name:    "manual with empty selection",
			scope:   models.DeletionScope{Kind: models.DeleteManual},
			dctx:    dctx,
			wantErr: true,
		},
		{
			name:    "unknown kind",
			scope:   models.DeletionScope{Kind: "everything"},
			dctx:    dctx,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDeletionRequest(tt.scope, tt.dctx)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ResolveDeletionRequest() error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDeletionRequest() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveDeletionRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveDeletionRequestIsPure(t *testing.T) {
	scope := models.DeletionScope{
		Kind:                  models.DeleteManual,
		SelectedOccurrenceIDs: []string{"b", "a"},
	}
	dctx := models.DeleteContext{SessionID: "S1"}

	if _, err := ResolveDeletionRequest(scope, dctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The caller's selection must not be reordered in place.
	if scope.SelectedOccurrenceIDs[0] != "b" || scope.SelectedOccurrenceIDs[1] != "a" {
		t.Errorf("resolver mutated its input: %v", scope.SelectedOccurrenceIDs)
	}
}

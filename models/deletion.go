// File: models/deletion.go
package models

// DeletionKind is the user's chosen granularity for a delete action. Two UI
// entry points feed the same resolver: the recurring-delete dialog offers
// single/following/manual, the per-card quick delete offers session/schedule.
type DeletionKind string

const (
	DeleteSingle    DeletionKind = "single"
	DeleteFollowing DeletionKind = "following"
	DeleteManual    DeletionKind = "manual"
	DeleteSession   DeletionKind = "session"
	DeleteSchedule  DeletionKind = "schedule"
)

// DeletionScope captures a delete dialog's outcome. It is built fresh per
// dialog, consumed once on confirm, and holds no resources.
type DeletionScope struct {
	Kind                  DeletionKind `json:"kind"`
	SelectedOccurrenceIDs []string     `json:"selectedOccurrenceIds,omitempty"` // populated only for Kind == manual
}

// DeleteContext carries the identifiers the resolver needs alongside the
// scope. ScheduleID may be empty, in which case schedule-kind deletes fall
// back to the session ID.
type DeleteContext struct {
	SessionID   string `json:"sessionId"`
	ScheduleID  string `json:"scheduleId,omitempty"`
	IsRecurring bool   `json:"isRecurring"`
}

// DeleteRequest is the resolved backend delete call. The resolver only builds
// it; issuing the call is the caller's job.
type DeleteRequest struct {
	IDs  []string     `json:"ids"`
	Mode DeletionKind `json:"mode"`
}

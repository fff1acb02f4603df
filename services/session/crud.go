// File: services/session/crud.go
package session

import (
	"context"
	"fmt"

	"classadmin/models"
	"classadmin/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ensurePatternEntryIDs assigns an ID to every weekly-pattern entry that
// lacks one and rejects duplicates. Entry IDs seed both occurrence IDs and
// schedule IDs, so they must be present and unique within the rule.
func ensurePatternEntryIDs(pattern []models.PatternEntry) error {
	seen := make(map[string]struct{}, len(pattern))
	for i := range pattern {
		if pattern[i].ID == "" {
			pattern[i].ID = uuid.New().String()
		}
		if _, dup := seen[pattern[i].ID]; dup {
			return NewValidationError(fmt.Sprintf("duplicate weekly pattern entry ID %q", pattern[i].ID))
		}
		seen[pattern[i].ID] = struct{}{}
	}
	return nil
}

// CreateSession persists a new session. For weekly sessions it materializes
// one schedule per weekly-pattern entry (reusing the entry IDs so occurrence
// IDs and schedule IDs line up) and stamps MeetingDate with the first
// generated occurrence.
func (svc *DefaultSessionService) CreateSession(ctx context.Context, s models.Session) (*models.Session, error) {
	logger := utils.GetLogger()

	if s.Title == "" {
		return nil, NewValidationError("session title is required")
	}
	if s.Status == "" {
		s.Status = models.SessionStatusDraft
	}

	if s.Recurrence.RecurrenceType == models.RecurrenceWeekly {
		if err := ensurePatternEntryIDs(s.Recurrence.WeeklyPattern); err != nil {
			return nil, err
		}
		occurrences := GenerateOccurrences(s.Recurrence)
		if len(occurrences) == 0 {
			// Degrading to zero occurrences is deliberate; log for visibility.
			logger.Warn("Weekly session generated no occurrences",
				zap.String("title", s.Title),
				zap.String("sessionEndDate", s.Recurrence.SessionEndDate))
		} else if s.MeetingDate == "" {
			s.MeetingDate = occurrences[0].Date
		}
	}

	id, err := svc.Repo.Create(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.ID = id

	if s.Recurrence.RecurrenceType == models.RecurrenceWeekly && len(s.Recurrence.WeeklyPattern) > 0 {
		schedules := make([]models.Schedule, 0, len(s.Recurrence.WeeklyPattern))
		for _, entry := range s.Recurrence.WeeklyPattern {
			schedules = append(schedules, models.Schedule{
				ID:        entry.ID,
				SessionID: id,
				Day:       entry.Day,
				StartTime: entry.StartTime,
			})
		}
		scheduleIDs, err := svc.Repo.CreateSchedules(ctx, schedules)
		if err != nil {
			return nil, fmt.Errorf("failed to create schedules: %w", err)
		}
		if err := svc.Repo.UpdateWithDocument(ctx, id, map[string]any{"scheduleIds": scheduleIDs}); err != nil {
			return nil, fmt.Errorf("failed to link schedules: %w", err)
		}
		s.ScheduleIDs = scheduleIDs
	}

	if svc.Cache != nil {
		svc.Cache.InvalidateAll(ctx)
	}
	return &s, nil
}

func (svc *DefaultSessionService) GetSession(ctx context.Context, id string) (*models.Session, error) {
	s, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return s, nil
}

// UpdateSession updates non-zero session fields using a partial update.
func (svc *DefaultSessionService) UpdateSession(ctx context.Context, req models.Session) (*models.Session, error) {
	if req.ID == "" {
		return nil, NewValidationError("session ID is required for update")
	}

	updateFields := map[string]any{}
	if req.Title != "" {
		updateFields["title"] = req.Title
	}
	if req.Subject != "" {
		updateFields["subject"] = req.Subject
	}
	if req.AccessLevel != "" {
		updateFields["accessLevel"] = req.AccessLevel
	}
	if req.Status != "" {
		updateFields["status"] = req.Status
	}
	if req.MeetingLink != "" {
		updateFields["meetingLink"] = req.MeetingLink
	}
	if req.MeetingDate != "" {
		updateFields["meetingDate"] = req.MeetingDate
	}
	if req.Recurrence.RecurrenceType != "" {
		updateFields["recurrence"] = req.Recurrence
	}
	if len(updateFields) == 0 {
		return nil, NewValidationError("no updatable fields provided")
	}

	if err := svc.Repo.UpdateWithDocument(ctx, req.ID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	if svc.Cache != nil {
		svc.Cache.InvalidateAll(ctx)
	}
	return svc.Repo.GetByID(ctx, req.ID)
}

// ListSessions serves a status bucket through the list cache, then applies
// the caller's filter criteria to the cached collection.
func (svc *DefaultSessionService) ListSessions(ctx context.Context, status string, criteria models.FilterCriteria) ([]models.Session, error) {
	var sessions []models.Session
	if svc.Cache != nil {
		if cached, ok := svc.Cache.Get(ctx, status); ok {
			return FilterSessions(cached, criteria), nil
		}
	}

	sessions, err := svc.Repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if svc.Cache != nil {
		svc.Cache.Set(ctx, status, sessions)
	}
	return FilterSessions(sessions, criteria), nil
}

func (svc *DefaultSessionService) SearchSessions(ctx context.Context, query string) ([]models.Session, error) {
	if query == "" {
		return nil, NewValidationError("search query is required")
	}
	key := SearchKey(query)
	if svc.Cache != nil {
		if cached, ok := svc.Cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	sessions, err := svc.Repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search sessions: %w", err)
	}
	if svc.Cache != nil {
		svc.Cache.Set(ctx, key, sessions)
	}
	return sessions, nil
}

// PreviewOccurrences expands a session's recurrence rule, dropping manually
// deleted occurrences. Malformed rules degrade to an empty list; a diagnostic
// is logged so the silence stays observable.
func (svc *DefaultSessionService) PreviewOccurrences(ctx context.Context, sessionID string) ([]models.Occurrence, error) {
	s, err := svc.Repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	occurrences := GenerateOccurrences(s.Recurrence)
	if len(occurrences) == 0 && s.Recurrence.RecurrenceType == models.RecurrenceWeekly {
		utils.GetLogger().Debug("Recurrence rule produced no occurrences",
			zap.String("sessionID", sessionID),
			zap.String("sessionEndDate", s.Recurrence.SessionEndDate),
			zap.Int("patternEntries", len(s.Recurrence.WeeklyPattern)))
	}
	return DropExcluded(occurrences, s.ExcludedOccurrences), nil
}

// File: services/session/deletion.go
package session

import (
	"context"
	"fmt"
	"sort"

	"classadmin/models"
	"classadmin/utils"

	"go.uber.org/zap"
)

// ResolveDeletionRequest turns a user's deletion intent into the backend
// delete call. Both dialog vocabularies (single/following/manual from the
// recurring-delete dialog, session/schedule from the per-card quick delete)
// resolve through here; the resolver performs no I/O.
func ResolveDeletionRequest(scope models.DeletionScope, dctx models.DeleteContext) (models.DeleteRequest, error) {
	switch scope.Kind {
	case models.DeleteSingle, models.DeleteFollowing, models.DeleteSession:
		return models.DeleteRequest{IDs: []string{dctx.SessionID}, Mode: scope.Kind}, nil

	case models.DeleteManual:
		if len(scope.SelectedOccurrenceIDs) == 0 {
			return models.DeleteRequest{}, NewValidationError("no dates selected")
		}
		// Selections arrive as a set; dedupe and sort for a stable request.
		seen := make(map[string]struct{}, len(scope.SelectedOccurrenceIDs))
		ids := make([]string, 0, len(scope.SelectedOccurrenceIDs))
		for _, id := range scope.SelectedOccurrenceIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		sort.Strings(ids)
		return models.DeleteRequest{IDs: ids, Mode: models.DeleteManual}, nil

	case models.DeleteSchedule:
		// Deliberate fallback: without a distinct schedule ID the whole
		// session is addressed.
		id := dctx.ScheduleID
		if id == "" {
			id = dctx.SessionID
		}
		return models.DeleteRequest{IDs: []string{id}, Mode: models.DeleteSchedule}, nil

	default:
		return models.DeleteRequest{}, NewValidationError(fmt.Sprintf("unknown deletion kind %q", scope.Kind))
	}
}

// DeleteByScope resolves the scope, issues exactly one delete against the
// repository, and invalidates the cached list views on success.
func (svc *DefaultSessionService) DeleteByScope(ctx context.Context, scope models.DeletionScope, dctx models.DeleteContext) error {
	logger := utils.GetLogger()

	req, err := ResolveDeletionRequest(scope, dctx)
	if err != nil {
		return err
	}

	if err := svc.Repo.DeleteByScope(ctx, dctx.SessionID, req); err != nil {
		logger.Error("Failed to delete session by scope",
			zap.String("sessionID", dctx.SessionID),
			zap.String("mode", string(req.Mode)),
			zap.Error(err))
		return fmt.Errorf("failed to delete session %s: %w", dctx.SessionID, err)
	}

	if svc.Cache != nil {
		svc.Cache.InvalidateAll(ctx)
	}
	logger.Info("Session delete applied",
		zap.String("sessionID", dctx.SessionID),
		zap.String("mode", string(req.Mode)),
		zap.Int("ids", len(req.IDs)))
	return nil
}

// File: services/student/enrollment.go
package student

import (
	"context"
	"fmt"

	"classadmin/models"
)

// Enroll adds the student to a session's roster. The session must exist;
// enrolling twice is a no-op thanks to the set semantics.
func (s *DefaultStudentService) Enroll(ctx context.Context, studentID, sessionID string) (*models.Student, error) {
	if _, err := s.Sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	if err := s.Repo.AddToSet(ctx, studentID, "enrolledSessionIds", []any{sessionID}); err != nil {
		return nil, fmt.Errorf("failed to enroll student: %w", err)
	}
	return s.Repo.GetByID(ctx, studentID)
}

func (s *DefaultStudentService) Unenroll(ctx context.Context, studentID, sessionID string) (*models.Student, error) {
	if err := s.Repo.PullFromSet(ctx, studentID, "enrolledSessionIds", []any{sessionID}); err != nil {
		return nil, fmt.Errorf("failed to unenroll student: %w", err)
	}
	return s.Repo.GetByID(ctx, studentID)
}

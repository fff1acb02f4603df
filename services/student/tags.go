package student

import (
	"context"
	"fmt"
	"strings"

	"classadmin/models"
)

// AddTags attaches dashboard tags to a student. Tags are trimmed and
// deduplicated by the underlying set update.
func (s *DefaultStudentService) AddTags(ctx context.Context, studentID string, tags []string) (*models.Student, error) {
	values := normalizeTags(tags)
	if len(values) == 0 {
		return nil, fmt.Errorf("no tags provided")
	}
	if err := s.Repo.AddToSet(ctx, studentID, "tags", values); err != nil {
		return nil, fmt.Errorf("failed to add tags: %w", err)
	}
	return s.Repo.GetByID(ctx, studentID)
}

func (s *DefaultStudentService) RemoveTags(ctx context.Context, studentID string, tags []string) (*models.Student, error) {
	values := normalizeTags(tags)
	if len(values) == 0 {
		return nil, fmt.Errorf("no tags provided")
	}
	if err := s.Repo.PullFromSet(ctx, studentID, "tags", values); err != nil {
		return nil, fmt.Errorf("failed to remove tags: %w", err)
	}
	return s.Repo.GetByID(ctx, studentID)
}

func normalizeTags(tags []string) []any {
	var values []any
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			values = append(values, t)
		}
	}
	return values
}

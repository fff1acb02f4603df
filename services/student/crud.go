// File: services/student/crud.go
package student

import (
	"context"
	"fmt"

	"classadmin/models"
	"classadmin/utils"

	"go.uber.org/zap"
)

func (s *DefaultStudentService) CreateStudent(ctx context.Context, st models.Student) (*models.Student, error) {
	if st.Name == "" || st.Email == "" {
		return nil, fmt.Errorf("student name and email are required")
	}
	if existing, err := s.Repo.GetByEmail(ctx, st.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("a student with email %s already exists", st.Email)
	}

	id, err := s.Repo.Create(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	st.ID = id
	return &st, nil
}

func (s *DefaultStudentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	st, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("student not found: %w", err)
	}
	return st, nil
}

func (s *DefaultStudentService) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	st, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("student not found: %w", err)
	}
	return st, nil
}

// UpdateStudent updates non-zero fields using a partial update.
func (s *DefaultStudentService) UpdateStudent(ctx context.Context, req models.StudentUpdateRequest) (*models.Student, error) {
	logger := utils.GetLogger()

	if req.ID == "" {
		return nil, fmt.Errorf("student ID is required for update")
	}

	updateFields := map[string]any{}
	if req.Name != "" {
		updateFields["name"] = req.Name
	}
	if req.Email != "" {
		updateFields["email"] = req.Email
	}
	if req.PhoneNumber != "" {
		updateFields["phoneNumber"] = req.PhoneNumber
	}
	if req.Guardian != "" {
		updateFields["guardian"] = req.Guardian
	}
	if req.Grade != "" {
		updateFields["grade"] = req.Grade
	}
	if req.Tags != nil {
		updateFields["tags"] = req.Tags
	}
	if len(updateFields) == 0 {
		logger.Warn("No updatable fields provided", zap.String("studentID", req.ID))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(ctx, req.ID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return s.Repo.GetByID(ctx, req.ID)
}

func (s *DefaultStudentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}

func (s *DefaultStudentService) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	return students, nil
}

package student

import (
	"context"

	sessionRepo "classadmin/database/repository/session"
	studentRepo "classadmin/database/repository/student"
	"classadmin/models"
)

type StudentService interface {
	CreateStudent(ctx context.Context, s models.Student) (*models.Student, error)
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateStudent(ctx context.Context, req models.StudentUpdateRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	GetAllStudents(ctx context.Context) ([]models.Student, error)

	AddTags(ctx context.Context, studentID string, tags []string) (*models.Student, error)
	RemoveTags(ctx context.Context, studentID string, tags []string) (*models.Student, error)

	Enroll(ctx context.Context, studentID, sessionID string) (*models.Student, error)
	Unenroll(ctx context.Context, studentID, sessionID string) (*models.Student, error)

	IssuePortalCredential(ctx context.Context, studentID string) (*models.PortalCredential, string, error)
}

// DefaultStudentService is the production implementation.
type DefaultStudentService struct {
	Repo     studentRepo.StudentRepository
	Sessions sessionRepo.SessionRepository
}

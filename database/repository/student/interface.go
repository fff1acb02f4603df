// File: database/repository/student/interface.go
package studentRepo

import (
	"context"

	"classadmin/database"
	"classadmin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type StudentRepository interface {
	Create(ctx context.Context, student models.Student) (string, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Student, error)

	AddToSet(ctx context.Context, id, field string, values []any) error
	PullFromSet(ctx context.Context, id, field string, values []any) error
}

type mongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo constructs a new MongoDB StudentRepository.
func NewMongoStudentRepo() StudentRepository {
	return &mongoStudentRepo{coll: database.DB().Collection("students")}
}

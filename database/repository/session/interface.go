// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"

	"classadmin/database"
	"classadmin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository interface {
	Create(ctx context.Context, session models.Session) (string, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error
	ListByStatus(ctx context.Context, status string) ([]models.Session, error)
	Search(ctx context.Context, query string) ([]models.Session, error)
	DeleteByScope(ctx context.Context, sessionID string, req models.DeleteRequest) error

	CreateSchedules(ctx context.Context, schedules []models.Schedule) ([]string, error)
	GetSchedules(ctx context.Context, sessionID string) ([]models.Schedule, error)
}

type mongoSessionRepo struct {
	coll      *mongo.Collection
	schedules *mongo.Collection
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	db := database.DB()
	return &mongoSessionRepo{
		coll:      db.Collection("sessions"),
		schedules: db.Collection("schedules"),
	}
}

package session

import (
	"context"

	sessionRepo "classadmin/database/repository/session"
	"classadmin/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, s models.Session) (*models.Session, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	UpdateSession(ctx context.Context, req models.Session) (*models.Session, error)
	ListSessions(ctx context.Context, status string, criteria models.FilterCriteria) ([]models.Session, error)
	SearchSessions(ctx context.Context, query string) ([]models.Session, error)
	PreviewOccurrences(ctx context.Context, sessionID string) ([]models.Occurrence, error)
	DeleteByScope(ctx context.Context, scope models.DeletionScope, dctx models.DeleteContext) error
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Repo  sessionRepo.SessionRepository
	Cache ListCache
}

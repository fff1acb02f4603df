// File: handlers/session.go
package handlers

import (
	"errors"
	"net/http"

	"classadmin/models"
	"classadmin/services/session"
	"classadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SessionHandler struct {
	Service session.SessionService
}

func NewSessionHandler(svc session.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Session
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid session create request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondSessionError(c, "Failed to create session", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": created})
}

func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session ID in path"})
		return
	}

	s, err := h.Service.GetSession(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s})
}

func (h *SessionHandler) UpdateSessionHandler(c *gin.Context) {
	var req models.Session
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Service.UpdateSession(c.Request.Context(), req)
	if err != nil {
		respondSessionError(c, "Failed to update session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": updated})
}

// ListSessionsHandler serves one status bucket (live, upcoming, past, draft),
// filtered by the optional query criteria.
func (h *SessionHandler) ListSessionsHandler(c *gin.Context) {
	status := c.Param("status")
	switch status {
	case models.SessionStatusLive, models.SessionStatusUpcoming, models.SessionStatusPast, models.SessionStatusDraft:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown session status bucket"})
		return
	}

	var criteria models.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter criteria", "message": err.Error()})
		return
	}

	sessions, err := h.Service.ListSessions(c.Request.Context(), status, criteria)
	if err != nil {
		respondSessionError(c, "Failed to list sessions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *SessionHandler) SearchSessionsHandler(c *gin.Context) {
	query := c.Query("q")
	sessions, err := h.Service.SearchSessions(c.Request.Context(), query)
	if err != nil {
		respondSessionError(c, "Failed to search sessions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// PreviewOccurrencesHandler expands a session's recurrence rule; the result
// drives the manual-deletion date picker.
func (h *SessionHandler) PreviewOccurrencesHandler(c *gin.Context) {
	id := c.Param("id")
	occurrences, err := h.Service.PreviewOccurrences(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"occurrences": occurrences})
}

type deleteSessionRequest struct {
	Scope      models.DeletionScope `json:"scope" binding:"required"`
	ScheduleID string               `json:"scheduleId,omitempty"`
}

// DeleteSessionHandler accepts both deletion vocabularies (the recurring
// dialog's single/following/manual and the card quick-delete's
// session/schedule) and applies the resolved request exactly once.
func (h *SessionHandler) DeleteSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()

	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session ID in path"})
		return
	}

	var req deleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid session delete request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	s, err := h.Service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found", "message": err.Error()})
		return
	}

	dctx := models.DeleteContext{
		SessionID:   sessionID,
		ScheduleID:  req.ScheduleID,
		IsRecurring: s.IsRecurring(),
	}
	if err := h.Service.DeleteByScope(c.Request.Context(), req.Scope, dctx); err != nil {
		respondSessionError(c, "Failed to delete session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session delete applied", "mode": req.Scope.Kind})
}

// respondSessionError maps service errors onto HTTP statuses: incomplete user
// intent is the caller's problem, everything else is ours.
func respondSessionError(c *gin.Context, msg string, err error) {
	var verr *session.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "message": verr.Message})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, msg, err.Error())
}

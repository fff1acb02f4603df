// File: handlers/student.go
package handlers

import (
	"net/http"

	"classadmin/models"
	"classadmin/services/student"
	"classadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StudentHandler struct {
	Service student.StudentService
}

func NewStudentHandler(svc student.StudentService) *StudentHandler {
	return &StudentHandler{Service: svc}
}

func (h *StudentHandler) CreateStudentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Student
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid student create request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateStudent(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create student", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"student": created})
}

func (h *StudentHandler) GetStudentByIDHandler(c *gin.Context) {
	st, err := h.Service.GetStudentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": st})
}

func (h *StudentHandler) GetStudentByEmailHandler(c *gin.Context) {
	st, err := h.Service.GetStudentByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": st})
}

func (h *StudentHandler) GetAllStudentsHandler(c *gin.Context) {
	students, err := h.Service.GetAllStudents(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch students", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

func (h *StudentHandler) UpdateStudentHandler(c *gin.Context) {
	var req models.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Service.UpdateStudent(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update student", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": updated})
}

func (h *StudentHandler) DeleteStudentHandler(c *gin.Context) {
	if err := h.Service.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete student", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

type tagsRequest struct {
	Tags []string `json:"tags" binding:"required"`
}

func (h *StudentHandler) AddTagsHandler(c *gin.Context) {
	var req tagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tags in request body"})
		return
	}
	st, err := h.Service.AddTags(c.Request.Context(), c.Param("id"), req.Tags)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add tags", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": st})
}

func (h *StudentHandler) RemoveTagsHandler(c *gin.Context) {
	var req tagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing tags in request body"})
		return
	}
	st, err := h.Service.RemoveTags(c.Request.Context(), c.Param("id"), req.Tags)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove tags", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": st})
}

type enrollRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

func (h *StudentHandler) EnrollStudentHandler(c *gin.Context) {
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing sessionId in request body"})
		return
	}
	st, err := h.Service.Enroll(c.Request.Context(), c.Param("id"), req.SessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to enroll student", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": st})
}

func (h *StudentHandler) UnenrollStudentHandler(c *gin.Context) {
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing sessionId in request body"})
		return
	}
	st, err := h.Service.Unenroll(c.Request.Context(), c.Param("id"), req.SessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to unenroll student", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": st})
}

// IssuePortalCredentialHandler creates or rotates a student's portal login.
// The plaintext password appears in this response only.
func (h *StudentHandler) IssuePortalCredentialHandler(c *gin.Context) {
	cred, password, err := h.Service.IssuePortalCredential(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue portal credential", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": cred.Username,
		"password": password,
		"issuedAt": cred.IssuedAt,
	})
}

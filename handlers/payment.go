// File: handlers/payment.go
package handlers

import (
	"net/http"

	"classadmin/models"
	"classadmin/services/payment"
	"classadmin/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var req models.PaymentRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.StudentID = c.Param("id")

	record, err := h.Service.RecordPayment(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": record})
}

// GetHistoryHandler returns a student's payment log, newest first.
func (h *PaymentHandler) GetHistoryHandler(c *gin.Context) {
	logs, err := h.Service.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch payment history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": logs})
}

func (h *PaymentHandler) GetPlansHandler(c *gin.Context) {
	plans, err := h.Service.GetPlans(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch plans", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PaymentHandler) CreatePlanHandler(c *gin.Context) {
	var req models.PaymentPlan
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	plan, err := h.Service.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create plan", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

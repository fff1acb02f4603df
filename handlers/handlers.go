package handlers

import (
	"net/http"

	"classadmin/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the area handlers for route registration.
type HandlerBundle struct {
	Session *SessionHandler
	Student *StudentHandler
	Payment *PaymentHandler
}

// HealthHandler reports the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}

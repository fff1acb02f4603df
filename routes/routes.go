package routes

import (
	"time"

	"classadmin/handlers"
	"classadmin/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers live-session management endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("/create", hb.Session.CreateSessionHandler)
		api.GET("/id/:id", hb.Session.GetSessionHandler)
		api.PATCH("/update/:id", hb.Session.UpdateSessionHandler)
		api.GET("/list/:status", hb.Session.ListSessionsHandler)
		api.GET("/search", hb.Session.SearchSessionsHandler)
		api.GET("/id/:id/occurrences", hb.Session.PreviewOccurrencesHandler)
		api.DELETE("/id/:id", hb.Session.DeleteSessionHandler)
	}
}

// RegisterStudentRoutes registers student management endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("/create", hb.Student.CreateStudentHandler)
		api.GET("", hb.Student.GetAllStudentsHandler)
		api.GET("/id/:id", hb.Student.GetStudentByIDHandler)
		api.GET("/email/:email", hb.Student.GetStudentByEmailHandler)
		api.PATCH("/update/:id", hb.Student.UpdateStudentHandler)
		api.DELETE("/delete/:id", hb.Student.DeleteStudentHandler)

		api.PUT("/id/:id/tags", hb.Student.AddTagsHandler)
		api.DELETE("/id/:id/tags", hb.Student.RemoveTagsHandler)
		api.PUT("/id/:id/enroll", hb.Student.EnrollStudentHandler)
		api.DELETE("/id/:id/enroll", hb.Student.UnenrollStudentHandler)
		api.POST("/id/:id/portal-credential", hb.Student.IssuePortalCredentialHandler)

		// Payment history hangs off the student profile screens.
		api.POST("/id/:id/payments", hb.Payment.RecordPaymentHandler)
		api.GET("/id/:id/payments", hb.Payment.GetHistoryHandler)
	}
}

// RegisterPaymentRoutes registers plan management endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/plans")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("", hb.Payment.GetPlansHandler)
		api.POST("/create", hb.Payment.CreatePlanHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSessionRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}

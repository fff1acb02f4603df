// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classadmin/config"
	"classadmin/cron"
	"classadmin/database"
	notificationRepo "classadmin/database/repository/notification"
	paymentRepo "classadmin/database/repository/payment"
	sessionRepoPkg "classadmin/database/repository/session"
	studentRepoPkg "classadmin/database/repository/student"
	"classadmin/handlers"
	"classadmin/middleware"
	"classadmin/routes"
	"classadmin/services/payment"
	"classadmin/services/session"
	"classadmin/services/student"
	"classadmin/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitListCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	payRepo := paymentRepo.NewMongoPaymentRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()

	// services.
	sessionService := &session.DefaultSessionService{
		Repo:  sessionRepo,
		Cache: session.NewRedisListCache(utils.GetListCacheClient(), 10*time.Minute),
	}
	studentService := &student.DefaultStudentService{
		Repo:     studentRepo,
		Sessions: sessionRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo: payRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Session: handlers.NewSessionHandler(sessionService),
		Student: handlers.NewStudentHandler(studentService),
		Payment: handlers.NewPaymentHandler(paymentService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder pipeline.
	cron.InitReminderWorker(notifRepo)
	cron.StartReminderScheduler(sessionRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetListCacheClient()},
		database.MongoClient,
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("classadmin listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}

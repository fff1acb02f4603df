package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"classadmin/config"
	notificationRepo "classadmin/database/repository/notification"
	"classadmin/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeSessionReminder = "session:reminder"

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifRepo notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionReminder, handleSessionReminderTask(notifRepo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSessionReminderTask(notifRepo notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] Triggering reminder for session %s: %s on %s at %s",
			p.SessionID, p.Title, p.Date, p.Time)

		// Delivery channels live in external services; record the
		// notification so the dashboard surfaces it.
		_, err := notifRepo.Create(ctx, models.Notification{
			SessionID: p.SessionID,
			Title:     "Upcoming session: " + p.Title,
			Body:      p.Title + " starts at " + p.Time + " on " + p.Date,
			Data: map[string]any{
				"date": p.Date,
				"time": p.Time,
			},
		})
		if err != nil {
			log.Printf("[ReminderHandler] Failed to store notification: %v", err)
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

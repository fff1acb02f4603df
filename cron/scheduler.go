// File: cron/scheduler.go
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"classadmin/config"
	sessionRepo "classadmin/database/repository/session"
	"classadmin/models"
	"classadmin/services/session"

	"github.com/hibiken/asynq"
)

// NewReminderClient returns an asynq client on the reminder queue.
func NewReminderClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
}

// EnqueueUpcomingReminders scans upcoming sessions and queues one reminder
// task per generated occurrence inside the lookahead window. Occurrence IDs
// double as task IDs so rescans never enqueue duplicates.
func EnqueueUpcomingReminders(ctx context.Context, client *asynq.Client, repo sessionRepo.SessionRepository) error {
	sessions, err := repo.ListByStatus(ctx, models.SessionStatusUpcoming)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	horizon := now.AddDate(0, 0, config.AppConfig.ReminderLookaheadDays)

	for _, s := range sessions {
		occurrences := session.DropExcluded(session.GenerateOccurrences(s.Recurrence), s.ExcludedOccurrences)
		for _, occ := range occurrences {
			at, err := time.ParseInLocation("2006-01-02 15:04", occ.Date+" "+occ.Time, time.UTC)
			if err != nil || at.Before(now) || at.After(horizon) {
				continue
			}

			payload, err := json.Marshal(models.ReminderPayload{
				SessionID: s.ID,
				Title:     s.Title,
				Date:      occ.Date,
				Time:      occ.Time,
			})
			if err != nil {
				continue
			}

			task := asynq.NewTask(TypeSessionReminder, payload)
			_, err = client.EnqueueContext(ctx, task, asynq.ProcessAt(at), asynq.TaskID(occ.ID))
			if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
				log.Printf("[ReminderScheduler] Failed to enqueue reminder %s: %v", occ.ID, err)
			}
		}
	}
	return nil
}

// StartReminderScheduler rescans for upcoming occurrences on an hourly tick.
func StartReminderScheduler(repo sessionRepo.SessionRepository) {
	client := NewReminderClient()

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		ctx := context.Background()
		if err := EnqueueUpcomingReminders(ctx, client, repo); err != nil {
			log.Printf("[ReminderScheduler] Initial scan failed: %v", err)
		}
		for range ticker.C {
			if err := EnqueueUpcomingReminders(ctx, client, repo); err != nil {
				log.Printf("[ReminderScheduler] Scan failed: %v", err)
			}
		}
	}()
}

package models

import "time"

// ReminderPayload is the asynq task body for a session reminder.
type ReminderPayload struct {
	SessionID string `json:"sessionId"`
	Title     string `json:"title"`
	Date      string `json:"date"` // occurrence date, "YYYY-MM-DD"
	Time      string `json:"time"` // occurrence start, "HH:mm"
}

// Notification is an in-app notification record written when a reminder
// fires. Delivery channels (email, WhatsApp, push) live in external services.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	SessionID string         `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Title     string         `bson:"title" json:"title"`
	Body      string         `bson:"body" json:"body"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	Read      bool           `bson:"read" json:"read"`
}

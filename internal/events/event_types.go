package events

import "time"

// EventType identifies panel events.
type EventType string

const (
	// EventNotification carries a user-visible toast message.
	EventNotification EventType = "notification"
	// EventSessionExpired signals the upstream rejected the session token.
	EventSessionExpired EventType = "session.expired"
)

// NotificationLevel distinguishes success from error toasts.
type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

// NotificationPayload is the body of an EventNotification.
type NotificationPayload struct {
	Level   NotificationLevel
	Message string
}

// Event is the dispatcher envelope.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Payload   any
}

package notifier

import "time"

// Severity represents the notification severity.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is a single ephemeral user-facing message. IDs are assigned
// from a per-center monotonic sequence, so later notifications always carry
// larger IDs.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// EventKind describes what happened to a notification.
type EventKind string

const (
	// EventPosted fires when a notification is shown.
	EventPosted EventKind = "posted"
	// EventDismissed fires when a notification is removed, either by the
	// display timer or an explicit Dismiss call.
	EventDismissed EventKind = "dismissed"
)

// Event is delivered to subscribers on every notification state change.
type Event struct {
	Kind         EventKind
	Notification Notification
}

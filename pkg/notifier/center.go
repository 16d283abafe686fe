package notifier

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

const (
	// defaultDisplayDuration is how long a notification stays visible.
	defaultDisplayDuration = 3 * time.Second
	// defaultSettleMargin covers the dismiss animation before removal.
	defaultSettleMargin = 200 * time.Millisecond
	// defaultBufferSize is the per-subscriber event channel capacity.
	defaultBufferSize = 16
)

// Center manages the lifecycle of ephemeral notifications. Each posted
// notification self-destroys after the display duration plus an
// animation-settle margin; the dismissal timers are owned by the Center and
// cancelled on Dismiss or Close, so no timer ever fires into a disposed
// consumer.
type Center struct {
	mu          sync.Mutex
	seq         int64
	active      map[int64]*entry
	subscribers map[*Subscriber]struct{}

	displayDuration time.Duration
	settleMargin    time.Duration
	bufferSize      int
	logger          *slog.Logger
	closed          bool
}

type entry struct {
	notification Notification
	timer        *time.Timer
}

// Option configures a Center.
type Option func(*Center)

// WithDisplayDuration sets how long notifications stay visible.
func WithDisplayDuration(d time.Duration) Option {
	return func(c *Center) {
		if d > 0 {
			c.displayDuration = d
		}
	}
}

// WithSettleMargin sets the animation-settle margin added to the display
// duration before a notification is removed.
func WithSettleMargin(d time.Duration) Option {
	return func(c *Center) {
		if d >= 0 {
			c.settleMargin = d
		}
	}
}

// WithBufferSize sets the per-subscriber channel capacity.
func WithBufferSize(n int) Option {
	return func(c *Center) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithLogger sets the logger used for dropped-event warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Center) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCenter creates a notification center.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		active:          make(map[int64]*entry),
		subscribers:     make(map[*Subscriber]struct{}),
		displayDuration: defaultDisplayDuration,
		settleMargin:    defaultSettleMargin,
		bufferSize:      defaultBufferSize,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify posts a notification and schedules its dismissal. It returns the
// posted notification so callers can reference its ID.
func (c *Center) Notify(message string, severity Severity) Notification {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		return Notification{}
	}

	c.seq++
	notification := Notification{
		ID:        c.seq,
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	id := notification.ID
	c.active[id] = &entry{
		notification: notification,
		timer: time.AfterFunc(c.displayDuration+c.settleMargin, func() {
			c.Dismiss(id)
		}),
	}

	c.broadcastLocked(Event{Kind: EventPosted, Notification: notification})
	c.mu.Unlock()

	return notification
}

// Success posts a success-severity notification.
func (c *Center) Success(message string) Notification {
	return c.Notify(message, SeveritySuccess)
}

// Error posts an error-severity notification.
func (c *Center) Error(message string) Notification {
	return c.Notify(message, SeverityError)
}

// Warning posts a warning-severity notification.
func (c *Center) Warning(message string) Notification {
	return c.Notify(message, SeverityWarning)
}

// Info posts an info-severity notification.
func (c *Center) Info(message string) Notification {
	return c.Notify(message, SeverityInfo)
}

// Dismiss removes a notification before its timer fires, cancelling the
// timer. Dismissing an unknown or already-dismissed ID is a no-op.
func (c *Center) Dismiss(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.active[id]
	if !ok {
		return
	}

	e.timer.Stop()
	delete(c.active, id)
	c.broadcastLocked(Event{Kind: EventDismissed, Notification: e.notification})
}

// Active returns the currently visible notifications in posting order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	notifications := make([]Notification, 0, len(c.active))
	for _, e := range c.active {
		notifications = append(notifications, e.notification)
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].ID < notifications[j].ID
	})
	return notifications
}

// Close cancels every pending dismissal timer and closes all subscribers.
// The center accepts no further notifications afterwards.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for id, e := range c.active {
		e.timer.Stop()
		delete(c.active, id)
	}
	for sub := range c.subscribers {
		sub.close()
		delete(c.subscribers, sub)
	}
}

// broadcastLocked delivers an event to every subscriber, dropping it for
// slow consumers rather than blocking. Callers must hold c.mu.
func (c *Center) broadcastLocked(event Event) {
	for sub := range c.subscribers {
		if !sub.send(event) {
			c.logger.Warn("notification event dropped for slow subscriber",
				"event", string(event.Kind),
				"notification_id", event.Notification.ID,
			)
		}
	}
}

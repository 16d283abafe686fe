// Package notifier manages ephemeral user-facing notifications (toasts) for
// the HealthLens client.
//
// A Center assigns monotonic IDs, tracks the currently visible set, and
// removes each notification after a fixed display duration plus an
// animation-settle margin. Dismissal timers are cancellable scheduled tasks
// owned by the Center: explicit Dismiss stops the timer, and Close stops all
// of them, so nothing fires after the owning surface is gone.
//
// Consumers observe lifecycle events through channel-backed subscribers;
// posting never blocks, events for slow consumers are dropped and logged.
//
//	center := notifier.NewCenter()
//	defer center.Close()
//
//	sub := center.Subscribe()
//	go func() {
//	    for event := range sub.Events() {
//	        render(event)
//	    }
//	}()
//
//	center.Error("Please sign in to access this page")
package notifier

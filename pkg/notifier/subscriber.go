package notifier

import "sync"

// Subscriber receives notification lifecycle events from a Center over a
// buffered channel. Slow consumers have events dropped rather than blocking
// the poster.
type Subscriber struct {
	ch     chan Event
	mu     sync.Mutex
	closed bool
}

// Subscribe registers a new subscriber. Subscribing to a closed center
// returns a subscriber whose channel is already closed.
func (c *Center) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan Event, c.bufferSize)}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		close(sub.ch)
		sub.closed = true
		return sub
	}

	c.subscribers[sub] = struct{}{}
	return sub
}

// Events returns the channel on which lifecycle events are delivered. The
// channel is closed when the subscriber or the owning center closes.
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Unsubscribe detaches the subscriber from the center and closes its
// channel. Safe to call multiple times.
func (c *Center) Unsubscribe(sub *Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.subscribers[sub]; ok {
		delete(c.subscribers, sub)
		sub.close()
	}
}

func (s *Subscriber) send(event Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}

func (s *Subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

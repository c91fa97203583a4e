// Package broadcast provides a last-value publish point shared by independent widgets.
package broadcast

import (
	"sort"
	"sync"
)

// Value is a published text tagged with the component that produced it
type Value struct {
	Text   string
	Origin string
}

// Channel holds the most recently published Value and fans it out to subscribers.
// Publishing never queues: a subscriber only ever sees values as they are written.
type Channel struct {
	mu          sync.Mutex
	last        Value
	hasValue    bool
	nextID      int
	subscribers map[int]func(Value)
}

// NewChannel creates an empty channel
func NewChannel() *Channel {
	return &Channel{subscribers: make(map[int]func(Value))}
}

// NewChannelWithValue creates a channel that already holds initial
func NewChannelWithValue(initial Value) *Channel {
	c := NewChannel()
	c.last = initial
	c.hasValue = true
	return c
}

// Publish stores v as the current value and delivers it to every subscriber
func (c *Channel) Publish(v Value) {
	c.mu.Lock()
	c.last = v
	c.hasValue = true
	handlers := c.snapshot()
	c.mu.Unlock()

	for _, h := range handlers {
		h(v)
	}
}

// Subscribe registers handler and immediately replays the current value, if any.
// The returned function removes the subscription and is safe to call more than once.
func (c *Channel) Subscribe(handler func(Value)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = handler
	last, ok := c.last, c.hasValue
	c.mu.Unlock()

	if ok {
		handler(last)
	}

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Last returns the current value
func (c *Channel) Last() (Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.hasValue
}

// snapshot copies the handlers in subscription order; callers hold mu
func (c *Channel) snapshot() []func(Value) {
	ids := make([]int, 0, len(c.subscribers))
	for id := range c.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	handlers := make([]func(Value), len(ids))
	for i, id := range ids {
		handlers[i] = c.subscribers[id]
	}
	return handlers
}

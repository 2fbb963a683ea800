// Package monitor keeps the most recent server errors in a bounded ring.
package monitor

import (
	"sync"
	"time"
)

const DefaultCapacity = 100

// Event is one recorded error.
type Event struct {
	Time      time.Time      `json:"time"`
	Source    string         `json:"source"`
	Message   string         `json:"message"`
	RequestID string         `json:"request_id,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Monitor is a fixed-capacity ring of events. Once full, each new event
// overwrites the oldest one. The zero value is not usable; call New.
type Monitor struct {
	mu     sync.Mutex
	events []Event
	next   int
	full   bool
	total  uint64
	now    func() time.Time
}

// New returns a Monitor holding at most capacity events. A non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Monitor {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Monitor{events: make([]Event, capacity), now: time.Now}
}

// Record stores ev, stamping it with the current time if unset.
func (m *Monitor) Record(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ev.Time.IsZero() {
		ev.Time = m.now()
	}
	m.events[m.next] = ev
	m.next = (m.next + 1) % len(m.events)
	if m.next == 0 {
		m.full = true
	}
	m.total++
}

// RecordError is a shorthand for recording err from source.
func (m *Monitor) RecordError(source, requestID string, err error) {
	if err == nil {
		return
	}
	m.Record(Event{Source: source, Message: err.Error(), RequestID: requestID})
}

// Recent returns up to limit events, newest first. limit <= 0 returns all
// buffered events.
func (m *Monitor) Recent(limit int) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.next
	if m.full {
		n = len(m.events)
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]Event, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (m.next - i + len(m.events)) % len(m.events)
		out = append(out, m.events[idx])
	}
	return out
}

// Total reports how many events were recorded since creation, including
// those already overwritten.
func (m *Monitor) Total() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

// Capacity returns the ring size.
func (m *Monitor) Capacity() int {
	return len(m.events)
}

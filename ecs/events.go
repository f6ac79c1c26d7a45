package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// NavEventKind identifies navigation event types.
type NavEventKind string

const (
	NavEventStuck         NavEventKind = "stuck"
	NavEventRecoveryStart NavEventKind = "recovery_start"
	NavEventRecoveryEnd   NavEventKind = "recovery_end"
	NavEventPathLost      NavEventKind = "path_lost"
)

// NavEvent is emitted when an enemy's steering state transitions. Purely
// observational; the UI/audio layer may subscribe, nothing depends on it.
type NavEvent struct {
	Entity Entity
	Kind   NavEventKind
}

// EventQueue is a simple FIFO queue, flushed at the end of each tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

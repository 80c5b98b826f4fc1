package game

type EventType int

const (
	EventEnemyKilled EventType = iota
	EventPlayerHit
	EventUFOKilled
	EventWaveCleared
	EventStateChanged
)

type Event struct {
	Type EventType
	X, Y float32
	Data int // generic payload (points, new state)
}

// EventQueue collects events during a frame and delivers them in one
// drain at a defined point of the next loop iteration. Emitters commit
// their state change first and enqueue after, so listeners never observe
// a half-applied change; events emitted while draining are delivered on
// the following drain.
type EventQueue struct {
	pending  []Event
	draining []Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func (q *EventQueue) Emit(e Event) {
	q.pending = append(q.pending, e)
}

func (q *EventQueue) Len() int { return len(q.pending) }

// Drain delivers every pending event in emission order.
func (q *EventQueue) Drain(fn func(Event)) {
	batch := q.pending
	q.pending = q.draining[:0]
	q.draining = batch
	for i := range batch {
		fn(batch[i])
	}
}

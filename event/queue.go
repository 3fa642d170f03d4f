package event

// QueueSize is the ring capacity; must be a power of two
const (
	QueueSize = 256
	queueMask = QueueSize - 1
)

// EventQueue is a fixed ring buffer of game events
// Single goroutine: the simulation pushes during Tick, the driver consumes after it
//
// Overflow: oldest events overwritten when full
type EventQueue struct {
	events [QueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest on overflow. O(1)
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&queueMask] = ev
	eq.tail++
	if eq.tail-eq.head > QueueSize {
		eq.head = eq.tail - QueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&queueMask])
	}
	eq.head = eq.tail
	return result
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Reset drops all pending events
func (eq *EventQueue) Reset() {
	eq.head = eq.tail
}

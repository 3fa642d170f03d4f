package event

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(Plain(EventJump, 1))
	q.Push(At(EventCollect, 42, 10, 2))

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending events, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventJump || events[1].Type != EventCollect {
		t.Errorf("Expected FIFO order [jump, collect], got [%s, %s]", events[0].Type, events[1].Type)
	}
	if !events[1].HasPos || events[1].X != 42 {
		t.Errorf("Expected positioned collect at x=42, got %+v", events[1])
	}

	if q.Consume() != nil {
		t.Error("Expected nil after queue drained")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(GameEvent{Type: EventCollision, Frame: int64(i)})
	}

	if q.Len() != QueueSize {
		t.Fatalf("Expected len capped at %d, got %d", QueueSize, q.Len())
	}

	events := q.Consume()
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if events[len(events)-1].Frame != int64(QueueSize+9) {
		t.Errorf("Expected newest frame %d, got %d", QueueSize+9, events[len(events)-1].Frame)
	}
}

func TestQueueReset(t *testing.T) {
	q := NewEventQueue()
	q.Push(Plain(EventGameOver, 0))
	q.Reset()
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after reset, got %d", q.Len())
	}
}

func TestEventTypeString(t *testing.T) {
	if EventGameOver.String() != "game_over" {
		t.Errorf("Expected 'game_over', got %q", EventGameOver.String())
	}
	if EventType(200).String() != "unknown" {
		t.Errorf("Expected 'unknown', got %q", EventType(200).String())
	}
}

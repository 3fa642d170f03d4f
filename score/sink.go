package score

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-dash/event"
)

const (
	sinkQueueSize = 32
	sinkTimeout   = 2 * time.Second
)

// Sink persists score events on its own goroutine so store I/O never blocks a frame
// EventBestScore saves the best; EventGameOver records the run when the store keeps history
type Sink struct {
	store Store
	log   *zap.Logger

	queue chan event.GameEvent
	done  chan struct{}
	once  sync.Once

	mu      sync.Mutex
	dropped int
	failed  int
}

var _ event.Handler = (*Sink)(nil)

// NewSink starts a sink writing to store
func NewSink(store Store, log *zap.Logger) *Sink {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Sink{
		store: store,
		log:   log.Named("score"),
		queue: make(chan event.GameEvent, sinkQueueSize),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// EventTypes lists the events the sink persists
func (s *Sink) EventTypes() []event.EventType {
	return []event.EventType{event.EventBestScore, event.EventGameOver}
}

// HandleEvent queues an event; non-score events are ignored
// Must not be called after Close
func (s *Sink) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventBestScore && ev.Type != event.EventGameOver {
		return
	}
	select {
	case s.queue <- ev:
	default:
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
		s.log.Warn("score queue full, event dropped", zap.Stringer("event", ev.Type))
	}
}

// Close drains pending writes and stops the sink; the store stays open
func (s *Sink) Close() {
	s.once.Do(func() {
		close(s.queue)
		<-s.done
	})
}

// Failures returns counts of dropped and failed writes
func (s *Sink) Failures() (dropped, failed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped, s.failed
}

func (s *Sink) run() {
	defer close(s.done)
	for ev := range s.queue {
		if err := s.write(ev); err != nil {
			s.mu.Lock()
			s.failed++
			s.mu.Unlock()
			s.log.Warn("score write failed", zap.Stringer("event", ev.Type), zap.Error(err))
		}
	}
}

func (s *Sink) write(ev event.GameEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	switch ev.Type {
	case event.EventBestScore:
		return s.store.Save(ctx, ev.Value)
	case event.EventGameOver:
		if rr, ok := s.store.(RunRecorder); ok {
			return rr.RecordRun(ctx, ev.Value, ev.Frame)
		}
	}
	return nil
}

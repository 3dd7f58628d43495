package audit

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/form"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

const (
	ActionAppointmentSubmitted = "appointment_submitted"

	DefaultQueueSize = 100
)

type Event struct {
	SessionID string
	Action    string
	Request   appointment.Request
	At        time.Time
}

// Dispatcher hands events to the logger on a single worker goroutine so the
// page never waits on the sink.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	warn   *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, size int) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}

	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, size),
		warn:   logger.log,
		now:    timezone.Now,
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		d.logger.Log(ev)
	}
}

// Dispatch queues an event. A full queue drops the event rather than block.
func (d *Dispatcher) Dispatch(ev Event) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.warn.Warn("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		return false
	}

	select {
	case d.queue <- ev:
		return true
	default:
		d.warn.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
		return false
	}
}

// ForSession returns the sink a page session's form controller reports to.
func (d *Dispatcher) ForSession(sessionID string) form.Sink {
	return form.SinkFunc(func(req appointment.Request) {
		d.Dispatch(Event{
			SessionID: sessionID,
			Action:    ActionAppointmentSubmitted,
			Request:   req,
			At:        d.now(),
		})
	})
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

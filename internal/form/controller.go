package form

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
)

// State is a snapshot of the controller. Version grows with every mutation,
// so observers can drop snapshots that arrive out of order.
type State struct {
	Data           appointment.Request          `json:"data"`
	Errors         appointment.ValidationResult `json:"errors"`
	Submitted      bool                         `json:"submitted"`
	Phase          appointment.Phase            `json:"phase"`
	SubmitDisabled bool                         `json:"submitDisabled"`
	Version        uint64                       `json:"version"`
}

type subscriber struct {
	id uint64
	fn func(State)
}

// Controller owns the appointment form of one page session: the field
// values, the errors of the last validation pass and the success flag.
type Controller struct {
	mu sync.Mutex

	data      appointment.Request
	errors    appointment.ValidationResult
	submitted bool
	// validated is set by a validation pass and cleared when the form resets.
	validated bool

	dismiss    Timer
	dismissGen uint64

	view    View
	subs    []subscriber
	nextSub uint64
	version uint64

	closed bool
	done   chan struct{}

	clock        Clock
	sink         Sink
	dismissAfter time.Duration
	gate         SubmitGate
	logger       *zap.Logger
}

func New(opts ...Option) *Controller {
	c := &Controller{
		data:         appointment.Default(),
		errors:       appointment.ValidationResult{},
		done:         make(chan struct{}),
		clock:        SystemClock(),
		sink:         discardSink{},
		dismissAfter: DefaultDismissAfter,
		gate:         GateLive,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ======================================================
// FIELDS
// ======================================================

// UpdateField replaces the form data with a copy that has one field changed.
// Errors are left as the last validation pass produced them.
func (c *Controller) UpdateField(f appointment.Field, value string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	next, ok := c.data.With(f, value)
	if !ok {
		c.mu.Unlock()
		c.logger.Debug("ignoring unknown form field", zap.String("field", f.String()))
		return
	}
	c.data = next

	st, subs := c.publishLocked()
	c.mu.Unlock()
	notify(st, subs)
}

// ======================================================
// SUBMIT
// ======================================================

// Submit runs a validation pass over the current data. An accepted request is
// handed to the sink, the form resets and the success flag goes up until the
// dismiss timer fires. A rejected request keeps its data so it can be fixed.
func (c *Controller) Submit() State {
	return c.SubmitWith(nil)
}

// SubmitWith applies edit to the form data and submits in one step. No other
// event can land between the edit and the validation pass, and subscribers
// hear about both as a single change.
func (c *Controller) SubmitWith(edit func(appointment.Request) appointment.Request) State {
	c.mu.Lock()
	if c.closed {
		st := c.snapshotLocked()
		c.mu.Unlock()
		return st
	}

	if edit != nil {
		c.data = edit(c.data)
	}

	result := appointment.Validate(c.data)
	c.errors = result
	c.validated = true

	var accepted *appointment.Request
	if appointment.AfterValidation(result) == appointment.PhaseAccepted {
		req := c.data
		accepted = &req

		c.submitted = true
		c.data = appointment.Default()
		c.errors = appointment.ValidationResult{}
		c.validated = false
		c.armDismissLocked()
	}

	st, subs := c.publishLocked()
	c.mu.Unlock()

	if accepted != nil {
		c.sink.Record(*accepted)
	} else {
		c.logger.Debug("appointment rejected", zap.Any("errors", result))
	}
	notify(st, subs)
	return st
}

// armDismissLocked replaces any pending dismiss timer with a fresh one. The
// generation counter is the cancellation token: a callback that lost the race
// with Stop sees a newer generation and does nothing.
func (c *Controller) armDismissLocked() {
	c.stopDismissLocked()

	c.dismissGen++
	gen := c.dismissGen
	c.dismiss = c.clock.AfterFunc(c.dismissAfter, func() {
		c.fireDismiss(gen)
	})
}

func (c *Controller) stopDismissLocked() {
	if c.dismiss != nil {
		c.dismiss.Stop()
		c.dismiss = nil
	}
	c.dismissGen++
}

func (c *Controller) fireDismiss(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.dismissGen {
		c.mu.Unlock()
		return
	}
	c.dismiss = nil
	c.submitted = false

	st, subs := c.publishLocked()
	c.mu.Unlock()
	notify(st, subs)
}

// ======================================================
// VIEW
// ======================================================

// Attach hands the controller the rendered page. Called on first render.
func (c *Controller) Attach(v View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.view = v
}

// Attached reports whether a view has been attached.
func (c *Controller) Attached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view != nil
}

// ScrollToForm smooth-scrolls the form section into view. Before the first
// render there is nothing to scroll and the call does nothing.
func (c *Controller) ScrollToForm() {
	c.mu.Lock()
	v := c.view
	c.mu.Unlock()

	if v == nil {
		return
	}
	v.ScrollIntoView(FormAnchor, true)
}

// ======================================================
// OBSERVERS
// ======================================================

// Subscribe registers fn to receive a snapshot after every mutation. fn runs
// outside the controller lock and may call back into the controller.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}

	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// ======================================================
// TEARDOWN
// ======================================================

// Close cancels the pending dismiss timer, detaches the view and drops all
// subscribers. Later calls on the controller do nothing.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.closed = true
	c.stopDismissLocked()
	c.view = nil
	c.subs = nil
	close(c.done)
}

// Done is closed once the controller has been torn down.
func (c *Controller) Done() <-chan struct{} { return c.done }

// ======================================================
// INTERNAL
// ======================================================

func (c *Controller) publishLocked() (State, []subscriber) {
	c.version++
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	return c.snapshotLocked(), subs
}

func (c *Controller) snapshotLocked() State {
	return State{
		Data:           c.data,
		Errors:         c.errors.Clone(),
		Submitted:      c.submitted,
		Phase:          appointment.PhaseOf(c.submitted),
		SubmitDisabled: c.submitDisabledLocked(),
		Version:        c.version,
	}
}

func (c *Controller) submitDisabledLocked() bool {
	if c.gate == GateLastPass {
		return !c.errors.Valid()
	}
	return c.validated && !appointment.Validate(c.data).Valid()
}

func notify(st State, subs []subscriber) {
	for _, s := range subs {
		s.fn(st)
	}
}

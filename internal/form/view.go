package form

import "github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"

// FormAnchor is the element id of the appointment form section.
const FormAnchor = "appointment-form"

// View is the rendered page the controller is attached to.
type View interface {
	ScrollIntoView(anchor string, smooth bool)
}

// Sink receives every accepted appointment request.
type Sink interface {
	Record(req appointment.Request)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(req appointment.Request)

func (f SinkFunc) Record(req appointment.Request) { f(req) }

type discardSink struct{}

func (discardSink) Record(appointment.Request) {}

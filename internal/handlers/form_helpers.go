package handlers

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/BruksfildServices01/dental-clinic/internal/clinic"
	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/form"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
	"github.com/BruksfildServices01/dental-clinic/internal/middleware"
	"github.com/BruksfildServices01/dental-clinic/internal/session"
)

var tracer = otel.Tracer("github.com/BruksfildServices01/dental-clinic/internal/handlers")

// --------------------------------------------------
// Session
// --------------------------------------------------

func mustSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		httperr.Internal(c, httperr.CodeSessionRequired, "Session not available.")
		return nil, false
	}
	return sess, true
}

// --------------------------------------------------
// Field input
// --------------------------------------------------

// boundaryValue cleans a posted value before it reaches the controller. A
// select cannot produce an unknown branch, so one is treated as the default.
func boundaryValue(f appointment.Field, value string) string {
	if f == appointment.FieldBranch {
		return clinic.NormalizeBranch(value)
	}
	return value
}

// fieldEdits builds the edit that writes every value lookup finds into a
// request. Fields lookup does not know about are left alone.
func fieldEdits(lookup func(appointment.Field) (string, bool)) func(appointment.Request) appointment.Request {
	return func(r appointment.Request) appointment.Request {
		for _, f := range appointment.Fields() {
			v, ok := lookup(f)
			if !ok {
				continue
			}
			r, _ = r.With(f, boundaryValue(f, v))
		}
		return r
	}
}

// --------------------------------------------------
// Submit
// --------------------------------------------------

func submit(
	c *gin.Context,
	ctrl *form.Controller,
	m *metrics.FormMetrics,
	lookup func(appointment.Field) (string, bool),
) form.State {
	_, span := tracer.Start(c.Request.Context(), "appointment.submit",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	st := ctrl.SubmitWith(fieldEdits(lookup))
	m.ObserveSubmission(st.Errors)

	span.SetAttributes(
		attribute.Bool("appointment.accepted", st.Errors.Valid()),
		attribute.Int("appointment.field_errors", len(st.Errors)),
	)
	if !st.Errors.Valid() {
		span.SetStatus(codes.Error, "validation failed")
	}
	return st
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/form"
	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/httpresp"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	metrics *metrics.FormMetrics
	logger  *zap.Logger
}

func NewAppointmentHandler(m *metrics.FormMetrics, logger *zap.Logger) *AppointmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppointmentHandler{
		metrics: m,
		logger:  logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateFieldRequest struct {
	Value *string `json:"value" binding:"required"`
}

// SubmitRequest carries optional last-moment field values. Absent fields keep
// what the controller already holds.
type SubmitRequest struct {
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	Branch    *string `json:"branch"`
	Treatment *string `json:"treatment"`
	Message   *string `json:"message"`
}

func (r SubmitRequest) lookup(f appointment.Field) (string, bool) {
	var v *string
	switch f {
	case appointment.FieldFullName:
		v = r.FullName
	case appointment.FieldPhone:
		v = r.Phone
	case appointment.FieldBranch:
		v = r.Branch
	case appointment.FieldTreatment:
		v = r.Treatment
	case appointment.FieldMessage:
		v = r.Message
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

// ======================================================
// STATE
// ======================================================

func (h *AppointmentHandler) State(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	httpresp.OK(c, sess.Controller.State())
}

// ======================================================
// UPDATE FIELD
// ======================================================

func (h *AppointmentHandler) UpdateField(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	f, ok := appointment.ParseField(c.Param("field"))
	if !ok {
		httperr.BadRequest(c, httperr.CodeUnknownField, "Unknown form field.")
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid request body.")
		return
	}

	sess.Controller.UpdateField(f, boundaryValue(f, *req.Value))

	httpresp.OK(c, sess.Controller.State())
}

// ======================================================
// SUBMIT
// ======================================================

func (h *AppointmentHandler) Submit(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid request body.")
			return
		}
	}

	httpresp.FormState(c, submit(c, sess.Controller, h.metrics, req.lookup))
}

// ======================================================
// EVENTS (SSE)
// ======================================================

// Events streams a snapshot on connect and after every change. The stream
// ends when the client leaves or the session is torn down.
func (h *AppointmentHandler) Events(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	ctrl := sess.Controller

	changed := make(chan struct{}, 1)
	unsubscribe := ctrl.Subscribe(func(form.State) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	send := func() {
		c.SSEvent("state", ctrl.State())
		c.Writer.Flush()
	}
	send()

	for {
		select {
		case <-changed:
			send()
		case <-ctrl.Done():
			return
		case <-c.Request.Context().Done():
			h.logger.Debug("event stream closed by client", zap.String("session_id", sess.ID))
			return
		}
	}
}

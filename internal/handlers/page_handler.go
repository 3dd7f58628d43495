package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
	"github.com/BruksfildServices01/dental-clinic/internal/session"
	"github.com/BruksfildServices01/dental-clinic/internal/web"
)

// ======================================================
// HANDLER
// ======================================================

type PageHandler struct {
	assets  web.Assets
	metrics *metrics.FormMetrics
}

func NewPageHandler(assets web.Assets, m *metrics.FormMetrics) *PageHandler {
	return &PageHandler{
		assets:  assets,
		metrics: m,
	}
}

// ======================================================
// SHOW
// ======================================================

// Show renders the booking page. The first render attaches the session's view
// so scroll requests have somewhere to go.
func (h *PageHandler) Show(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	h.render(c, http.StatusOK, sess)
}

// ======================================================
// SUBMIT (HTML FORM)
// ======================================================

func (h *PageHandler) Submit(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	st := submit(c, sess.Controller, h.metrics, func(f appointment.Field) (string, bool) {
		return c.GetPostForm(f.String())
	})

	status := http.StatusOK
	if !st.Errors.Valid() {
		status = http.StatusUnprocessableEntity
	}

	sess.Controller.Attach(sess.View)
	sess.Controller.ScrollToForm()
	h.render(c, status, sess)
}

// ======================================================
// BOOK
// ======================================================

// Book is the target of every "Book Appointment" button.
func (h *PageHandler) Book(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	sess.Controller.ScrollToForm()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) render(c *gin.Context, status int, sess *session.Session) {
	if !sess.Controller.Attached() {
		sess.Controller.Attach(sess.View)
	}

	page := web.NewPage(h.assets, sess.Controller.State())
	if anchor, smooth, ok := sess.View.TakeScroll(); ok {
		page = page.WithScroll(anchor, smooth)
	}

	c.HTML(status, web.PageTemplate, page)
}

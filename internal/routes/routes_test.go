package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dental-clinic/internal/config"
	"github.com/BruksfildServices01/dental-clinic/internal/form"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
	"github.com/BruksfildServices01/dental-clinic/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.NewFormMetrics(reg)
	store := session.NewStore(func(string) *form.Controller {
		return form.New(form.WithDismissAfter(time.Hour))
	}, session.Options{OnCount: m.SetActiveSessions})
	t.Cleanup(store.Close)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:   cfg,
		Sessions: store,
		Metrics:  m,
		Gatherer: reg,
	})
	return r
}

func testConfig() *config.Config {
	return &config.Config{
		LogoURL:        "/assets/logo.png",
		HeroImageURL:   "/assets/dental-care.png",
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}
}

func TestRoutes_Infra(t *testing.T) {
	r := newRouter(t, testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","sessions":0,"rate_clients":0}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "toothfairy_session_active 1")
	assert.Contains(t, w.Body.String(), `toothfairy_http_requests_total{method="GET",route="/",status="200"} 1`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EventSource")
}

func TestRoutes_InfraHasNoSession(t *testing.T) {
	r := newRouter(t, testConfig())

	for _, path := range []string{"/health", "/api/clinic"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, w.Result().Cookies(), path)
	}
}

func TestRoutes_SubmitIsRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	r := newRouter(t, cfg)

	post := func() int {
		body := url.Values{"fullName": {"Asha Rao"}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/appointment", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "10.1.1.1:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnprocessableEntity, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}

func TestRoutes_FieldEditsAreNotRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	r := newRouter(t, cfg)

	var cookie *http.Cookie
	send := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.2.2.2:5555"
		if cookie != nil {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if cks := w.Result().Cookies(); len(cks) > 0 {
			cookie = cks[0]
		}
		return w
	}

	require.Equal(t, http.StatusUnprocessableEntity, send(http.MethodPost, "/api/appointment/submit", "").Code)

	for i := 0; i < 20; i++ {
		w := send(http.MethodPatch, "/api/appointment/fields/message", `{"value":"edit"}`)
		require.Equal(t, http.StatusOK, w.Code, "edit %d", i)
	}

	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "/api/appointment/submit", "").Code)
}

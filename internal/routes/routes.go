package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-clinic/internal/config"
	"github.com/BruksfildServices01/dental-clinic/internal/handlers"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
	"github.com/BruksfildServices01/dental-clinic/internal/middleware"
	"github.com/BruksfildServices01/dental-clinic/internal/session"
	"github.com/BruksfildServices01/dental-clinic/internal/telemetry"
	"github.com/BruksfildServices01/dental-clinic/internal/web"
)

// Deps are the singletons built by main and shared by every route.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Sessions *session.Store
	Metrics  *metrics.FormMetrics
	Gatherer prometheus.Gatherer

	// RateLimiter is swept by its owner; one is built when nil.
	RateLimiter *middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			RPS:     cfg.RateLimitRPS,
			Burst:   cfg.RateLimitBurst,
			IdleTTL: cfg.RateLimitIdleTTL,
		})
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(otelgin.Middleware(telemetry.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger, deps.Metrics))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"sessions":     deps.Sessions.Len(),
			"rate_clients": limiter.Clients(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())
	if cfg.StaticDir != "" {
		r.Static("/assets", cfg.StaticDir)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	pageHandler := handlers.NewPageHandler(web.Assets{
		LogoURL:      cfg.LogoURL,
		HeroImageURL: cfg.HeroImageURL,
	}, deps.Metrics)
	appointmentHandler := handlers.NewAppointmentHandler(deps.Metrics, logger)
	clinicHandler := handlers.NewClinicHandler()

	limited := limiter.Middleware()
	withSession := middleware.SessionMiddleware(deps.Sessions, cfg.IsProduction())

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	page := r.Group("/")
	page.Use(withSession)
	{
		page.GET("/", pageHandler.Show)
		page.GET("/book", pageHandler.Book)
		page.POST("/appointment", limited, pageHandler.Submit)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 CLINIC
		// ------------------------------
		api.GET("/clinic", clinicHandler.Show)
		api.GET("/clinic/branches", clinicHandler.ListBranches)
		api.GET("/clinic/treatments", clinicHandler.ListTreatments)

		// ------------------------------
		// APPOINTMENT FORM
		// ------------------------------
		form := api.Group("/appointment")
		form.Use(withSession)
		{
			form.GET("", appointmentHandler.State)
			// Field edits only touch session memory and must never be
			// dropped, or the submit gate can miss the last correction.
			form.PATCH("/fields/:field", appointmentHandler.UpdateField)
			form.POST("/submit", limited, appointmentHandler.Submit)
			form.GET("/events", appointmentHandler.Events)
		}
	}
}

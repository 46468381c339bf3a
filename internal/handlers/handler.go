package handlers

import (
	"embed"
	"html/template"
	"time"

	"campus_match/internal/logger"
	"campus_match/internal/metrics"
	"campus_match/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	defaultCookieName  = "session"
	maxMultipartMemory = 8 << 20
)

// Config holds the HTTP-level settings.
type Config struct {
	CookieName   string
	CookieSecure bool
	TokenTTL     time.Duration

	LoginPerMinute int // 0 disables login rate limiting
	LoginBurst     int

	// UploadsDir is served under /static/uploads when set.
	UploadsDir string
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  *metrics.Metrics
	cfg      Config
	limiter  *ipRateLimiter
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, m *metrics.Metrics, cfg Config) *Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	h := &Handler{services: services, log: log, metrics: m, cfg: cfg}
	if cfg.LoginPerMinute > 0 {
		h.limiter = newIPRateLimiter(cfg.LoginPerMinute, cfg.LoginBurst)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, h.observe)
	router.MaxMultipartMemory = maxMultipartMemory
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	if h.cfg.UploadsDir != "" {
		router.Static("/static/uploads", h.cfg.UploadsDir)
	}

	router.GET("/", h.landing)
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerMemberRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.registerForm)
	r.POST("/register", h.register)
	r.GET("/login", h.loginForm)
	r.POST("/login", h.loginRateLimit, h.login)
}

func (h *Handler) registerMemberRoutes(r *gin.Engine) {
	member := r.Group("/", h.sessionMiddleware)
	{
		member.GET("/dashboard", h.dashboard)
		member.GET("/activity", h.activity)
		member.GET("/logout", h.logout)
	}
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-hub/internal/resumes"
	"resume-hub/internal/services/health"
	"resume-hub/internal/shared/config"
	"resume-hub/internal/shared/metrics"
	"resume-hub/internal/shared/server/middleware"
	"resume-hub/internal/shared/server/respond"
	"resume-hub/internal/users"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Config        config.Config
	Metrics       *metrics.Metrics
	Auth          middleware.AuthDeps
	Health        *health.Service
	UserHandler   *users.Handler
	ResumeHandler *resumes.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(deps.Metrics),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	if deps.Health != nil {
		r.GET("/health", func(c *gin.Context) {
			status := deps.Health.Status(c.Request.Context())
			code := http.StatusOK
			if !status.OK {
				code = http.StatusServiceUnavailable
			}
			respond.JSON(c, code, status)
		})
	}
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	deps.UserHandler.RegisterPublicRoutes(r)

	protected := r.Group("/")
	protected.Use(middleware.Auth(deps.Auth))
	deps.UserHandler.RegisterRoutes(protected)
	deps.ResumeHandler.RegisterRoutes(protected)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

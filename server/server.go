package server

import (
	"net/http"

	"chatbot-tutor-service/config"
	"chatbot-tutor-service/handlers"
	"chatbot-tutor-service/metrics"
	"chatbot-tutor-service/middleware"
	"chatbot-tutor-service/static"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	EndPointTutor   = "/api/tutor"
	EndPointHealth  = "/health"
	EndPointMetrics = "/metrics"
)

// NewRouter wires the tutor endpoint, the operational endpoints and the static
// fallback. Every GET that matches no route is served from the static root;
// any other unmatched request gets a JSON 404.
func NewRouter(cfg *config.Config, tutor handlers.Tutor, resolver *static.Resolver) *gin.Engine {
	metrics.Register()

	router := gin.New()
	// Unmatched paths must reach NoRoute, never a redirect.
	router.RedirectTrailingSlash = false
	router.Use(middleware.AccessLog(), middleware.Recovery())

	tutorHandler := handlers.NewTutorHandler(tutor, cfg.MaxBodyBytes)
	staticHandler := handlers.NewStaticHandler(resolver)

	// CORS applies to the API only; static assets stay same-origin agnostic.
	api := router.Group("/")
	if len(cfg.AllowedOrigins) > 0 {
		api.Use(middleware.CORS(cfg.AllowedOrigins))
		// Preflights are answered by the CORS middleware before this handler runs.
		api.OPTIONS(EndPointTutor, handlers.NotFound)
	}
	api.POST(EndPointTutor, tutorHandler.Ask)
	router.GET(EndPointHealth, handlers.HealthCheck)
	router.GET(EndPointMetrics, gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			staticHandler.Serve(c)
			return
		}
		handlers.NotFound(c)
	})

	return router
}

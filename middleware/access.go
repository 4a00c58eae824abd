package middleware

import (
	"net/http"
	"strconv"
	"time"

	"chatbot-tutor-service/metrics"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// AccessLog logs one entry per request and records request metrics.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		route := routeLabel(c)

		metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		metrics.RequestDurationSeconds.WithLabelValues(route).Observe(elapsed.Seconds())

		log.WithFields(log.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": elapsed.Milliseconds(),
			"client_ip":   c.ClientIP(),
		}).Info("http.request")
	}
}

// routeLabel keeps metric cardinality bounded: unmatched paths collapse into one label.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	if c.Request.Method == http.MethodGet {
		return "static"
	}
	return "unmatched"
}

package handlers

import (
	"net/http"

	"chatbot-tutor-service/apperror"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// StatusFor maps a failure classification to its HTTP status.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.Validation:
		return http.StatusBadRequest
	case apperror.Forbidden:
		return http.StatusForbidden
	case apperror.NotFound:
		return http.StatusNotFound
	case apperror.UpstreamFailure, apperror.NoAnswer:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError is the single place a classified failure becomes a response.
// The full error is logged; the client only sees the public message.
func respondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	status := StatusFor(kind)

	entry := log.WithFields(log.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"kind":   kind.String(),
		"status": status,
	}).WithError(err)
	switch {
	case status >= http.StatusInternalServerError:
		entry.Error("request.failed")
	case kind == apperror.NotFound:
		entry.Info("request.rejected")
	default:
		entry.Warn("request.rejected")
	}

	c.JSON(status, gin.H{"error": apperror.PublicMessage(err)})
}

// NotFound answers any route the router does not serve.
func NotFound(c *gin.Context) {
	respondError(c, apperror.New(apperror.NotFound, ""))
}

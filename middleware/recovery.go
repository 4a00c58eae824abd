package middleware

import (
	"fmt"
	"io"
	"net/http"

	"chatbot-tutor-service/apperror"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// Recovery converts a panic anywhere in the handler chain into a generic 500.
// The recovered value is logged and never returned to the client.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"panic":  fmt.Sprint(recovered),
		}).Error("request.panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": apperror.Internal.DefaultMessage(),
		})
	})
}

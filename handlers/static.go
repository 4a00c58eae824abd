package handlers

import (
	"net/http"

	"chatbot-tutor-service/static"

	"github.com/gin-gonic/gin"
)

type StaticHandler struct {
	resolver *static.Resolver
}

func NewStaticHandler(resolver *static.Resolver) *StaticHandler {
	return &StaticHandler{resolver: resolver}
}

// Serve writes the asset for the request path. Assets are never cached by clients.
func (h *StaticHandler) Serve(c *gin.Context) {
	asset, err := h.resolver.Resolve(c.Request.URL.Path)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, asset.ContentType, asset.Data)
}

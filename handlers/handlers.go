package handlers

import (
	"context"
	"net/http"

	"chatbot-tutor-service/body"
	"chatbot-tutor-service/config"
	"chatbot-tutor-service/version"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// Tutor answers a single validated question.
type Tutor interface {
	Ask(ctx context.Context, question string) (string, error)
}

type TutorHandler struct {
	tutor        Tutor
	maxBodyBytes int64
}

func NewTutorHandler(tutor Tutor, maxBodyBytes int64) *TutorHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = config.DefaultMaxBodyBytes
	}
	return &TutorHandler{
		tutor:        tutor,
		maxBodyBytes: maxBodyBytes,
	}
}

// Ask handles the tutoring endpoint: {"question": string} -> {"answer": string}
func (h *TutorHandler) Ask(c *gin.Context) {
	doc, err := body.ReadJSON(c.Request.Body, h.maxBodyBytes)
	if err != nil {
		respondError(c, err)
		return
	}

	question, err := body.Question(doc)
	if err != nil {
		respondError(c, err)
		return
	}

	log.WithFields(log.Fields{
		"client_ip":    c.ClientIP(),
		"question_len": len(question),
	}).Info("tutor.ask.request")

	answer, err := h.tutor.Ask(c.Request.Context(), question)
	if err != nil {
		respondError(c, err)
		return
	}

	log.WithField("answer_len", len(answer)).Info("tutor.ask.success")

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// HealthCheck returns service health status
func HealthCheck(c *gin.Context) {
	info := version.Get()
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"service":    info.Service,
		"version":    info.Version,
		"git_sha":    info.GitSHA,
		"go_version": info.GoVersion,
	})
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"chatbot-tutor-service/config"
	"chatbot-tutor-service/logging"
	"chatbot-tutor-service/openai"
	"chatbot-tutor-service/server"
	"chatbot-tutor-service/static"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		log.WithError(err).Fatalf("Failed to load %s", envFile)
	}

	// Load configuration
	cfg := config.Load()

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		log.WithError(err).Fatal("Invalid logging configuration")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err.Error())
	}

	resolver, err := static.NewResolver(cfg.StaticDir, static.DefaultEntry)
	if err != nil {
		log.WithError(err).Fatal("Invalid STATIC_DIR")
	}

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(cfg, openai.NewClient(cfg), resolver)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: router,
	}

	go func() {
		log.WithFields(log.Fields{
			"model":      cfg.OpenAIModel,
			"static_dir": resolver.Root(),
		}).Infof("Chatbot tutor server running at http://localhost:%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exited")
}

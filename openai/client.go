package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chatbot-tutor-service/apperror"
	"chatbot-tutor-service/config"
	"chatbot-tutor-service/metrics"

	"github.com/apex/log"
)

const (
	Temperature = 0.5
	MaxTokens   = 500

	SystemPrompt = "You are a patient tutor. Give clear, concise explanations. Ask a follow-up question when helpful."
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Messages    []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client asks the chat-completion API a single tutoring question per call.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewClient(cfg *config.Config) *Client {
	endpoint := cfg.OpenAIEndpoint
	if endpoint == "" {
		endpoint = config.DefaultOpenAIEndpoint
	}
	return &Client{
		apiKey:   cfg.OpenAIAPIKey,
		model:    cfg.OpenAIModel,
		endpoint: endpoint,
		client:   &http.Client{Timeout: cfg.OpenAITimeout},
	}
}

// NewRequest builds the upstream payload for question.
func (c *Client) NewRequest(question string) ChatRequest {
	return ChatRequest{
		Model:       c.model,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		Messages: []ChatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: question},
		},
	}
}

// Ask sends question upstream once and returns the trimmed answer.
// Failures are classified as UpstreamFailure or NoAnswer; causes are logged here
// and never included in the public message.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	start := time.Now()
	answer, err := c.ask(ctx, question)

	result := "success"
	if err != nil {
		result = apperror.KindOf(err).String()
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(result).Inc()
	metrics.UpstreamDurationSeconds.WithLabelValues(result).Observe(time.Since(start).Seconds())

	return answer, err
}

func (c *Client) ask(ctx context.Context, question string) (string, error) {
	jsonData, err := json.Marshal(c.NewRequest(question))
	if err != nil {
		return "", apperror.Wrap(apperror.Internal, "", fmt.Errorf("marshal chat request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", apperror.Wrap(apperror.Internal, "", fmt.Errorf("create chat request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).Error("OpenAI request failed")
		return "", apperror.Wrap(apperror.UpstreamFailure, "", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Failed to read OpenAI response")
		return "", apperror.Wrap(apperror.UpstreamFailure, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := upstreamErrorMessage(respBytes, resp.Status)
		log.WithFields(log.Fields{
			"status": resp.StatusCode,
			"model":  c.model,
		}).Errorf("OpenAI request failed: %s", detail)
		return "", apperror.Wrap(apperror.UpstreamFailure, "", fmt.Errorf("upstream status %d: %s", resp.StatusCode, detail))
	}

	var completion ChatResponse
	if err := json.Unmarshal(respBytes, &completion); err != nil {
		log.WithError(err).Error("Failed to parse OpenAI response")
		return "", apperror.Wrap(apperror.NoAnswer, "", err)
	}

	var answer string
	if len(completion.Choices) > 0 {
		answer = strings.TrimSpace(completion.Choices[0].Message.Content)
	}
	if answer == "" {
		log.WithField("model", c.model).Warn("OpenAI response contained no answer")
		return "", apperror.New(apperror.NoAnswer, "")
	}
	return answer, nil
}

func upstreamErrorMessage(body []byte, status string) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return status
}

// Package translator implements the translation request/response pipeline:
// a chat-completions engine, the lenient response decoder, and the display
// formatter.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/logger"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/prompt"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

const (
	// DefaultModel is the default model identifier requested from the provider
	DefaultModel = "openai/gpt-4o-mini"
	// DefaultBaseURL is the default OpenAI-compatible API base URL
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultReferer is the routing header value OpenRouter requires for rankings
	DefaultReferer = "localhost:8080"
	// DefaultTimeout bounds one interactive translation request
	DefaultTimeout = 30 * time.Second
	// DefaultTemperature keeps replies near-deterministic so the JSON shape is stable
	DefaultTemperature = 0.1
	// DefaultMaxTokens bounds the reply length
	DefaultMaxTokens = 500
)

// Engine produces one raw model reply per call. Implementations make exactly
// one outbound request and never retry; retries, if ever wanted, belong to
// the caller.
type Engine interface {
	Translate(ctx context.Context, sourceText, targetLanguage string) (string, error)
}

// HTTPEngine calls an OpenAI-compatible chat-completions endpoint directly
// over net/http. It carries the translation instruction as the system turn
// and the raw source text as the user turn.
type HTTPEngine struct {
	apiKey      string
	client      *http.Client
	model       string
	apiURL      string
	referer     string
	temperature float64
	maxTokens   int
}

// NewHTTPEngine creates an HTTPEngine from the application configuration.
// Zero-valued config fields fall back to the package defaults.
func NewHTTPEngine(cfg *types.Config) *HTTPEngine {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	referer := cfg.Referer
	if referer == "" {
		referer = DefaultReferer
	}
	temperature := DefaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	timeout := DefaultTimeout
	if cfg.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	}

	return &HTTPEngine{
		apiKey:      cfg.APIKey,
		client:      &http.Client{Timeout: timeout},
		model:       model,
		apiURL:      normalizeAPIURL(baseURL),
		referer:     referer,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// normalizeAPIURL ensures the API URL ends with /chat/completions
func normalizeAPIURL(url string) string {
	url = strings.TrimSuffix(url, "/")

	if strings.HasSuffix(url, "/chat/completions") {
		return url
	}

	return url + "/chat/completions"
}

// SetAPIURL sets the full endpoint URL (useful for testing with mock servers).
func (e *HTTPEngine) SetAPIURL(url string) {
	e.apiURL = url
}

// Model returns the model identifier the engine requests.
func (e *HTTPEngine) Model() string {
	return e.model
}

// ChatCompletionRequest represents the request body for the chat completions API.
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Message represents a message in the chat completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse represents the response from the chat completions API.
type ChatCompletionResponse struct {
	ID      string    `json:"id"`
	Object  string    `json:"object"`
	Created int64     `json:"created"`
	Model   string    `json:"model"`
	Choices []Choice  `json:"choices"`
	Usage   Usage     `json:"usage"`
	Error   *APIError `json:"error,omitempty"`
}

// Choice represents a choice in the chat completion response.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage represents token usage information.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// APIError represents an error response from the provider.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// Translate performs one chat-completions call and returns the raw reply
// text of the top choice. Exactly one request is sent; any timeout or
// provider failure comes back as an AppError from the transport family.
func (e *HTTPEngine) Translate(ctx context.Context, sourceText, targetLanguage string) (string, error) {
	if e.apiKey == "" {
		return "", types.NewAppError(types.ErrConfig, "API key is not configured", nil)
	}
	if sourceText == "" {
		return "", types.NewAppError(types.ErrInternal, "source text is empty", nil)
	}

	logger.Debug("calling chat completions API",
		logger.String("model", e.model),
		logger.String("targetLanguage", targetLanguage),
		logger.Int("sourceLength", len(sourceText)))

	reqBody := ChatCompletionRequest{
		Model: e.model,
		Messages: []Message{
			{Role: "system", Content: prompt.Build(sourceText, targetLanguage)},
			{Role: "user", Content: sourceText},
		},
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		logger.Error("failed to marshal request body", err)
		return "", types.NewAppError(types.ErrInternal, "failed to marshal request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		logger.Error("failed to create HTTP request", err)
		return "", types.NewAppError(types.ErrInternal, "failed to create HTTP request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	// Required by OpenRouter for rankings
	req.Header.Set("HTTP-Referer", e.referer)

	resp, err := e.client.Do(req)
	if err != nil {
		logger.Error("API request failed", err)
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", types.NewAppError(types.ErrNetwork, "translation request timed out", err)
		}
		return "", types.NewAppError(types.ErrNetwork, "API request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("failed to read API response", err)
		return "", types.NewAppError(types.ErrNetwork, "failed to read API response", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("API returned error status", nil, logger.Int("statusCode", resp.StatusCode))
		return "", handleAPIHTTPError(resp.StatusCode, body)
	}

	var chatResp ChatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		logger.Error("failed to parse API response envelope", err)
		return "", types.NewAppError(types.ErrAPICall, "failed to parse API response", err)
	}

	if chatResp.Error != nil {
		logger.Error("API returned error in response", nil, logger.String("errorMessage", chatResp.Error.Message))
		return "", types.NewAppErrorWithDetails(
			types.ErrAPICall,
			"API returned error",
			chatResp.Error.Message,
			nil,
		)
	}

	if len(chatResp.Choices) == 0 {
		logger.Error("API returned no choices", nil)
		return "", types.NewAppError(types.ErrAPICall, "API returned no choices", nil)
	}

	if chatResp.Choices[0].FinishReason == "length" {
		logger.Warn("reply was truncated by the max_tokens limit",
			logger.Int("completionTokens", chatResp.Usage.CompletionTokens))
	}

	logger.Debug("API call successful",
		logger.Int("tokensUsed", chatResp.Usage.TotalTokens),
		logger.String("finishReason", chatResp.Choices[0].FinishReason))

	return chatResp.Choices[0].Message.Content, nil
}

// isTimeout reports whether err is a network timeout.
func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// handleAPIHTTPError creates an appropriate AppError based on the HTTP status code and response body.
func handleAPIHTTPError(statusCode int, body []byte) error {
	// Try to parse error message from response body
	var errResp struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	errorDetails := ""
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		errorDetails = errResp.Error.Message
	}

	switch statusCode {
	case http.StatusUnauthorized:
		return types.NewAppErrorWithDetails(
			types.ErrAPICall,
			"API authentication failed",
			"invalid API key or unauthorized access",
			nil,
		)
	case http.StatusTooManyRequests:
		return types.NewAppErrorWithDetails(
			types.ErrAPIRateLimit,
			"API rate limit exceeded",
			errorDetails,
			nil,
		)
	case http.StatusBadRequest:
		return types.NewAppErrorWithDetails(
			types.ErrAPICall,
			"invalid API request",
			errorDetails,
			nil,
		)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return types.NewAppErrorWithDetails(
			types.ErrAPICall,
			"API server error",
			fmt.Sprintf("status %d: %s", statusCode, errorDetails),
			nil,
		)
	default:
		return types.NewAppErrorWithDetails(
			types.ErrAPICall,
			"API request failed",
			fmt.Sprintf("status %d: %s", statusCode, errorDetails),
			nil,
		)
	}
}

package translator

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/logger"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/prompt"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

// EinoEngine implements Engine on top of the eino openai chat model.
// It is selected with Config.Engine = "eino" and behaves identically to
// HTTPEngine from the pipeline's point of view: one request, raw reply
// text out, AppError on failure.
type EinoEngine struct {
	cm    model.BaseChatModel
	model string
}

// refererTransport attaches the routing header OpenRouter requires to every
// request made through the eino client.
type refererTransport struct {
	base    http.RoundTripper
	referer string
}

func (t *refererTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", t.referer)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// NewEinoEngine creates an eino-backed engine from the application
// configuration. Zero-valued config fields fall back to the same defaults
// HTTPEngine uses.
func NewEinoEngine(ctx context.Context, cfg *types.Config) (*EinoEngine, error) {
	if cfg.APIKey == "" {
		return nil, types.NewAppError(types.ErrConfig, "API key is not configured", nil)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultModel
	}
	referer := cfg.Referer
	if referer == "" {
		referer = DefaultReferer
	}
	temperature := float32(DefaultTemperature)
	if cfg.Temperature != nil {
		temperature = float32(*cfg.Temperature)
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	timeout := DefaultTimeout
	if cfg.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	}

	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     baseURL,
		Model:       modelName,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: &refererTransport{referer: referer},
		},
	})
	if err != nil {
		logger.Error("failed to create eino chat model", err)
		return nil, types.NewAppError(types.ErrConfig, "failed to create chat model", err)
	}

	return &EinoEngine{cm: cm, model: modelName}, nil
}

// Translate performs one generation through the eino chat model and returns
// the raw reply content.
func (e *EinoEngine) Translate(ctx context.Context, sourceText, targetLanguage string) (string, error) {
	if sourceText == "" {
		return "", types.NewAppError(types.ErrInternal, "source text is empty", nil)
	}

	logger.Debug("calling eino chat model",
		logger.String("model", e.model),
		logger.String("targetLanguage", targetLanguage))

	resp, err := e.cm.Generate(ctx, []*schema.Message{
		schema.SystemMessage(prompt.Build(sourceText, targetLanguage)),
		schema.UserMessage(sourceText),
	})
	if err != nil {
		logger.Error("eino generation failed", err)
		return "", types.NewAppError(types.ErrAPICall, "translation request failed", err)
	}
	if resp == nil || resp.Content == "" {
		logger.Error("eino chat model returned an empty reply", nil)
		return "", types.NewAppError(types.ErrAPICall, "model returned an empty reply", nil)
	}

	return resp.Content, nil
}

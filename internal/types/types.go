// Package types defines core data types and enums for the translator application.
package types

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in the session transcript.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// TranslationResult is the normalized form of a model reply.
// All fields are optional in the wire format; the decoder fills defaults
// so downstream code never needs nil checks. Confidence is always in [0, 1].
type TranslationResult struct {
	DetectedLanguage   string   `json:"detected_language"`
	Confidence         float64  `json:"confidence"`
	PrimaryTranslation string   `json:"primary_translation"`
	Alternatives       []string `json:"alternatives"`
	CulturalNotes      string   `json:"cultural_notes,omitempty"`
	FormalityLevel     string   `json:"formality_level,omitempty"`
	LiteralTranslation string   `json:"literal_translation,omitempty"`
}

// HistoryEntry records one completed translation. Immutable once appended.
type HistoryEntry struct {
	SourceText       string `json:"source_text"`
	TranslatedText   string `json:"translated_text"`
	DetectedLanguage string `json:"detected_language"`
	TargetLanguage   string `json:"target_language"`
}

// Config 应用配置
type Config struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"` // OpenAI 兼容 API 的 Base URL
	Model   string `json:"model"`
	Referer string `json:"referer"` // HTTP-Referer 路由头（OpenRouter 排名要求）
	Engine  string `json:"engine"`  // "http" 或 "eino"
	// Temperature is a pointer so an explicit 0 (fully deterministic
	// sampling) is distinguishable from unset; nil means the default.
	Temperature           *float64 `json:"temperature,omitempty"`
	MaxTokens             int      `json:"max_tokens"`
	RequestTimeoutSeconds int      `json:"request_timeout_seconds"`
}

// ErrorCode 错误代码枚举
type ErrorCode string

const (
	ErrNetwork         ErrorCode = "NETWORK_ERROR"
	ErrAPICall         ErrorCode = "API_CALL_ERROR"
	ErrAPIRateLimit    ErrorCode = "API_RATE_LIMIT"
	ErrParse           ErrorCode = "PARSE_ERROR"
	ErrInvalidLanguage ErrorCode = "INVALID_LANGUAGE"
	ErrConfig          ErrorCode = "CONFIG_ERROR"
	ErrInternal        ErrorCode = "INTERNAL_ERROR"
)

// AppError 应用错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface for AppError
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError with the given code, message, and optional cause
func NewAppError(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewAppErrorWithDetails creates a new AppError with details
func NewAppErrorWithDetails(code ErrorCode, message, details string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// CodeOf returns the ErrorCode carried by err, or ErrInternal when err is
// not an AppError.
func CodeOf(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ErrInternal
}

// IsTransportError reports whether err belongs to the transport failure
// family (network, API, rate limit). Parse and language errors are not
// transport errors.
func IsTransportError(err error) bool {
	switch CodeOf(err) {
	case ErrNetwork, ErrAPICall, ErrAPIRateLimit:
		return true
	default:
		return false
	}
}

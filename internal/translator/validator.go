package translator

import (
	"encoding/json"
	"strings"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/logger"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

// ParseResponse decodes a raw model reply into a fully-defaulted
// TranslationResult. Only a syntax-level parse failure (or a reply with no
// parseable content at all) is an error; missing fields are filled with
// defaults so a partially-compliant reply still produces a usable result:
//
//	detected_language -> "unknown"
//	confidence        -> 0.0 (and clamped into [0, 1] when out of range)
//	primary_translation -> ""
//	alternatives      -> empty slice
//	cultural_notes, formality_level, literal_translation -> empty
func ParseResponse(raw string) (*types.TranslationResult, error) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))
	if cleaned == "" {
		return nil, types.NewAppError(types.ErrParse, "failed to parse translation response", nil)
	}

	var result types.TranslationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		logger.Warn("model reply was not valid JSON",
			logger.Int("replyLength", len(raw)),
			logger.Err(err))
		return nil, types.NewAppError(types.ErrParse, "failed to parse translation response", err)
	}

	if result.DetectedLanguage == "" {
		result.DetectedLanguage = "unknown"
	}
	if result.Alternatives == nil {
		result.Alternatives = []string{}
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		logger.Debug("confidence out of range, clamping", logger.Float64("confidence", result.Confidence))
		result.Confidence = clamp01(result.Confidence)
	}

	return &result, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// stripCodeFence removes a surrounding markdown code fence. Models often
// wrap the requested JSON object in ```json fences even when told not to;
// the content inside is still parseable, so it is not a parse failure.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line (``` or ```json)
	rest := s
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[idx+1:]
	} else {
		return s
	}

	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, "```")
	return strings.TrimSpace(rest)
}

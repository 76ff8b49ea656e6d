package translator

import (
	"fmt"
	"strings"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/language"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

// FormatResult renders a TranslationResult for display. The detected
// language and translation lines are always present; tone, alternatives,
// literal and cultural lines appear only when they add information:
//
//   - tone: formality present and not "neutral"
//   - alternatives: non-empty, each individually quoted
//   - literal: present and different from the primary translation
//   - cultural context: non-empty
//
// Pure transform; the flag glyph comes from a case-insensitive registry
// lookup and is omitted for detected languages outside the registry.
func FormatResult(result *types.TranslationResult) string {
	var sb strings.Builder

	detected := result.DetectedLanguage
	if flag := language.FlagFor(detected); flag != "" {
		detected = flag + " " + detected
	}
	fmt.Fprintf(&sb, "🔍 Detected language: %s (confidence: %.1f%%)\n", detected, result.Confidence*100)
	fmt.Fprintf(&sb, "🎯 Translation: %q", result.PrimaryTranslation)

	if result.FormalityLevel != "" && result.FormalityLevel != "neutral" {
		fmt.Fprintf(&sb, "\n📝 Tone: %s", result.FormalityLevel)
	}

	if len(result.Alternatives) > 0 {
		quoted := make([]string, len(result.Alternatives))
		for i, alt := range result.Alternatives {
			quoted[i] = fmt.Sprintf("%q", alt)
		}
		fmt.Fprintf(&sb, "\n🌟 Alternatives: %s", strings.Join(quoted, ", "))
	}

	if result.LiteralTranslation != "" && result.LiteralTranslation != result.PrimaryTranslation {
		fmt.Fprintf(&sb, "\n📖 Literal: %s", result.LiteralTranslation)
	}

	if result.CulturalNotes != "" {
		fmt.Fprintf(&sb, "\n💡 Cultural context: %s", result.CulturalNotes)
	}

	return sb.String()
}

// FormatError renders a pipeline error as a single user-facing line. Parse
// failures and transport failures are worded differently so the user can
// tell a garbled reply from a provider problem.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	switch types.CodeOf(err) {
	case types.ErrParse:
		return "❌ failed to parse translation response"
	case types.ErrInvalidLanguage:
		return fmt.Sprintf("❌ %s", err.Error())
	case types.ErrConfig:
		return fmt.Sprintf("❌ %s", err.Error())
	default:
		return fmt.Sprintf("❌ translation failed: %s", err.Error())
	}
}

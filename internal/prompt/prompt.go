// Package prompt constructs the system instruction sent with every
// translation request.
package prompt

import "fmt"

// template is the fixed instruction requesting the JSON reply shape the
// response decoder expects. The two %s verbs are the target language name
// and the source text; the source text is embedded verbatim because the
// model also sees it as the user turn and the two must match.
const template = `You are an expert linguist and cultural translator. Your task is to:

1. DETECT the language of the input text
2. TRANSLATE it to %s
3. PROVIDE cultural context when relevant

respond in this exact JSON format:
{
    "detected_language": "language name",
    "confidence": 0.95,
    "primary_translation": "main translation here",
    "alternatives": ["alternative 1", "alternative 2"],
    "cultural_notes": "cultural context or regional variations",
    "formality_level": "formal/informal/neutral",
    "literal_translation": "word-for-word if different from primary"
}

rules:
- be accurate but culturally aware
- include alternatives only if they're meaningfully different
- add cultural notes for idioms, slang, or regional expressions
- if the text is already in the target language, set detected_language accordingly and explain
- confidence should reflect how certain you are about language detection (0.0-1.0)

text to analyse: "%s"`

// Build returns the system instruction for translating sourceText into
// targetLanguageName. The builder accepts any target string; validating it
// against the language registry is the caller's responsibility. Pure and
// deterministic.
func Build(sourceText, targetLanguageName string) string {
	return fmt.Sprintf(template, targetLanguageName, sourceText)
}

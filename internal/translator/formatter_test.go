package translator

import (
	"strings"
	"testing"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

func baseResult() *types.TranslationResult {
	return &types.TranslationResult{
		DetectedLanguage:   "french",
		Confidence:         0.92,
		PrimaryTranslation: "hello",
		Alternatives:       []string{},
	}
}

func TestFormatResult_AlwaysPresentLines(t *testing.T) {
	got := FormatResult(baseResult())

	if !strings.Contains(got, "french") {
		t.Error("missing detected language")
	}
	if !strings.Contains(got, "🇫🇷") {
		t.Error("missing registry flag for detected language")
	}
	if !strings.Contains(got, "92.0%") {
		t.Errorf("confidence not rendered as percentage:\n%s", got)
	}
	if !strings.Contains(got, `"hello"`) {
		t.Error("missing quoted primary translation")
	}
}

func TestFormatResult_UnknownDetectedLanguageHasNoFlag(t *testing.T) {
	r := baseResult()
	r.DetectedLanguage = "esperanto"

	got := FormatResult(r)
	if !strings.Contains(got, "esperanto") {
		t.Error("detected language dropped")
	}
	for _, l := range []string{"🇫🇷", "🇬🇧", "🇪🇸"} {
		if strings.Contains(got, l) {
			t.Errorf("unexpected flag %s for unregistered language", l)
		}
	}
}

func TestFormatResult_ToneLine(t *testing.T) {
	tests := []struct {
		name      string
		formality string
		wantTone  bool
	}{
		{name: "neutral omitted", formality: "neutral", wantTone: false},
		{name: "absent omitted", formality: "", wantTone: false},
		{name: "formal included", formality: "formal", wantTone: true},
		{name: "informal included", formality: "informal", wantTone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := baseResult()
			r.FormalityLevel = tt.formality
			got := FormatResult(r)
			if strings.Contains(got, "Tone:") != tt.wantTone {
				t.Errorf("formality %q: tone line presence = %v, want %v\n%s",
					tt.formality, !tt.wantTone, tt.wantTone, got)
			}
		})
	}
}

func TestFormatResult_LiteralLine(t *testing.T) {
	r := baseResult()
	r.PrimaryTranslation = "bonjour"
	r.LiteralTranslation = "bonjour"
	if got := FormatResult(r); strings.Contains(got, "Literal:") {
		t.Errorf("literal line present although equal to primary:\n%s", got)
	}

	r.LiteralTranslation = "bon jour"
	if got := FormatResult(r); !strings.Contains(got, "Literal: bon jour") {
		t.Errorf("literal line missing although different from primary:\n%s", got)
	}
}

func TestFormatResult_AlternativesLine(t *testing.T) {
	r := baseResult()
	if got := FormatResult(r); strings.Contains(got, "Alternatives:") {
		t.Errorf("alternatives line present for empty alternatives:\n%s", got)
	}

	r.Alternatives = []string{"salut", "coucou"}
	got := FormatResult(r)
	if !strings.Contains(got, `"salut", "coucou"`) {
		t.Errorf("alternatives not individually quoted and joined:\n%s", got)
	}
}

func TestFormatResult_CulturalLine(t *testing.T) {
	r := baseResult()
	if got := FormatResult(r); strings.Contains(got, "Cultural context:") {
		t.Error("cultural line present for empty notes")
	}

	r.CulturalNotes = "informal greeting between friends"
	if got := FormatResult(r); !strings.Contains(got, "Cultural context: informal greeting between friends") {
		t.Errorf("cultural line missing:\n%s", got)
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "parse failure",
			err:  types.NewAppError(types.ErrParse, "failed to parse translation response", nil),
			want: "❌ failed to parse translation response",
		},
		{
			name: "transport failure carries provider message",
			err:  types.NewAppErrorWithDetails(types.ErrAPICall, "API returned error", "model overloaded", nil),
			want: "❌ translation failed: API returned error: model overloaded",
		},
		{
			name: "rate limit is a transport failure",
			err:  types.NewAppError(types.ErrAPIRateLimit, "API rate limit exceeded", nil),
			want: "❌ translation failed: API rate limit exceeded",
		},
		{
			name: "invalid language",
			err:  types.NewAppErrorWithDetails(types.ErrInvalidLanguage, "unsupported target language", "atlantean", nil),
			want: "❌ unsupported target language: atlantean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatError(tt.err); got != tt.want {
				t.Errorf("FormatError() = %q, want %q", got, tt.want)
			}
		})
	}
}

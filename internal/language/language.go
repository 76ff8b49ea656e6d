// Package language defines the fixed registry of translation target languages.
// The registry is immutable for the process lifetime; entries are unique by
// canonical name and by ISO 639-1 code.
package language

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one registry entry.
type Language struct {
	// Name is the canonical lowercase name used throughout the application.
	Name string `json:"name"`
	// Code is the two-letter ISO 639-1 code.
	Code string `json:"code"`
	// Flag is the display glyph shown next to the language.
	Flag string `json:"flag"`
	// Tag is the parsed BCP 47 tag for the code.
	Tag language.Tag `json:"-"`
}

// Default is the target language a new session starts with.
const Default = "english"

// registry preserves declaration order so UIs list languages consistently.
var registry = []Language{
	{Name: "english", Code: "en", Flag: "🇬🇧"},
	{Name: "spanish", Code: "es", Flag: "🇪🇸"},
	{Name: "french", Code: "fr", Flag: "🇫🇷"},
	{Name: "german", Code: "de", Flag: "🇩🇪"},
	{Name: "italian", Code: "it", Flag: "🇮🇹"},
	{Name: "portuguese", Code: "pt", Flag: "🇵🇹"},
	{Name: "chinese", Code: "zh", Flag: "🇨🇳"},
	{Name: "japanese", Code: "ja", Flag: "🇯🇵"},
	{Name: "korean", Code: "ko", Flag: "🇰🇷"},
	{Name: "russian", Code: "ru", Flag: "🇷🇺"},
	{Name: "arabic", Code: "ar", Flag: "🇸🇦"},
	{Name: "hindi", Code: "hi", Flag: "🇮🇳"},
	{Name: "dutch", Code: "nl", Flag: "🇳🇱"},
	{Name: "swedish", Code: "sv", Flag: "🇸🇪"},
	{Name: "norwegian", Code: "no", Flag: "🇳🇴"},
}

var byName = make(map[string]int, len(registry))

func init() {
	for i := range registry {
		registry[i].Tag = language.MustParse(registry[i].Code)
		byName[registry[i].Name] = i
	}
}

// All returns the registry entries in declaration order. The returned slice
// is a copy; mutating it does not affect the registry.
func All() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}

// Names returns the canonical names in declaration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, l := range registry {
		names[i] = l.Name
	}
	return names
}

// Lookup finds a registry entry by canonical name. Matching is
// case-insensitive; surrounding whitespace is ignored.
func Lookup(name string) (Language, bool) {
	idx, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Language{}, false
	}
	return registry[idx], true
}

// Contains reports whether name refers to a registry entry.
func Contains(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// FlagFor returns the display glyph for a detected language name. Detected
// names come back free-form from the model, so the match is case-insensitive
// and an empty string is returned when the name is not in the registry.
func FlagFor(detectedName string) string {
	l, ok := Lookup(detectedName)
	if !ok {
		return ""
	}
	return l.Flag
}

package session

import (
	"fmt"
	"testing"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/language"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

func TestNewSessionDefaults(t *testing.T) {
	s := New()

	if s.ID() == "" {
		t.Error("session has no ID")
	}
	if got := s.TargetLanguage().Name; got != language.Default {
		t.Errorf("initial target = %q, want %q", got, language.Default)
	}
	if len(s.Messages()) != 0 {
		t.Error("new session transcript is not empty")
	}
	if s.HistoryLen() != 0 {
		t.Error("new session history is not empty")
	}
}

func TestSetTargetLanguage_AllRegistryNames(t *testing.T) {
	s := New()
	for _, name := range language.Names() {
		if err := s.SetTargetLanguage(name); err != nil {
			t.Errorf("SetTargetLanguage(%q) error = %v", name, err)
		}
		if got := s.TargetLanguage().Name; got != name {
			t.Errorf("target after SetTargetLanguage(%q) = %q", name, got)
		}
	}
}

func TestSetTargetLanguage_UnknownFailsClosed(t *testing.T) {
	s := New()
	if err := s.SetTargetLanguage("french"); err != nil {
		t.Fatalf("SetTargetLanguage(french) error = %v", err)
	}

	err := s.SetTargetLanguage("atlantean")
	if err == nil {
		t.Fatal("SetTargetLanguage(atlantean) error = nil, want InvalidLanguage")
	}
	if types.CodeOf(err) != types.ErrInvalidLanguage {
		t.Errorf("error code = %v, want %v", types.CodeOf(err), types.ErrInvalidLanguage)
	}
	if got := s.TargetLanguage().Name; got != "french" {
		t.Errorf("target mutated to %q by failed set, want french", got)
	}
}

func TestRecentHistory_OrderAndCap(t *testing.T) {
	s := New()
	for i := 1; i <= 100; i++ {
		s.RecordTranslation(types.HistoryEntry{
			SourceText:     fmt.Sprintf("source %d", i),
			TranslatedText: fmt.Sprintf("target %d", i),
			TargetLanguage: "french",
		})
	}

	recent := s.RecentHistory(5)
	if len(recent) != 5 {
		t.Fatalf("RecentHistory(5) returned %d entries after 100 appends", len(recent))
	}
	for i, e := range recent {
		want := fmt.Sprintf("source %d", 100-i)
		if e.SourceText != want {
			t.Errorf("recent[%d].SourceText = %q, want %q (most recent first)", i, e.SourceText, want)
		}
	}

	if s.HistoryLen() != 100 {
		t.Errorf("full history length = %d, want 100 (recent view must not truncate)", s.HistoryLen())
	}

	// A second read must observe the same state.
	if again := s.RecentHistory(5); len(again) != 5 {
		t.Error("RecentHistory is not non-destructive")
	}
}

func TestRecentHistory_FewerEntriesThanLimit(t *testing.T) {
	s := New()
	s.RecordTranslation(types.HistoryEntry{SourceText: "only one"})

	recent := s.RecentHistory(5)
	if len(recent) != 1 || recent[0].SourceText != "only one" {
		t.Errorf("RecentHistory(5) = %v", recent)
	}
}

func TestClearHistory_LeavesTranscript(t *testing.T) {
	s := New()
	s.AppendUserMessage("hola")
	s.AppendAssistantMessage("hello")
	s.RecordTranslation(types.HistoryEntry{SourceText: "hola", TranslatedText: "hello"})

	s.ClearHistory()

	if s.HistoryLen() != 0 {
		t.Error("ClearHistory did not empty the history")
	}
	if len(s.RecentHistory(5)) != 0 {
		t.Error("recent view not empty after ClearHistory")
	}
	if got := len(s.Messages()); got != 2 {
		t.Errorf("transcript length = %d after ClearHistory, want 2", got)
	}
}

func TestMessagesOrderAndRoles(t *testing.T) {
	s := New()
	s.AppendUserMessage("first")
	s.AppendAssistantMessage("second")
	s.AppendUserMessage("third")

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("transcript length = %d, want 3", len(msgs))
	}
	if msgs[0].Role != types.RoleUser || msgs[0].Content != "first" {
		t.Errorf("msgs[0] = %+v", msgs[0])
	}
	if msgs[1].Role != types.RoleAssistant || msgs[1].Content != "second" {
		t.Errorf("msgs[1] = %+v", msgs[1])
	}
	if msgs[2].Role != types.RoleUser {
		t.Errorf("msgs[2] = %+v", msgs[2])
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, b := New(), New()
	if a.ID() == b.ID() {
		t.Error("two sessions share an ID")
	}
}

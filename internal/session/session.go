// Package session holds the per-session mutable state: the chat transcript,
// the translation history, and the selected target language. One Session is
// created per connection and owned by its caller; there are no package-level
// globals. State is destroyed with the session — nothing is persisted.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/language"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

// DefaultRecentLimit is the number of history entries shown in the recent view.
const DefaultRecentLimit = 5

// Session is a flat mutable record, not a transition system: messages and
// history only grow (history can be cleared), and the target language is a
// single replaceable value. Methods are mutex-guarded so a presentation
// goroutine and the pipeline cannot race, even though each session is
// logically single-threaded.
type Session struct {
	id string

	mu       sync.RWMutex
	messages []types.ChatMessage
	history  []types.HistoryEntry
	target   language.Language
}

// New creates an empty session with the default target language.
func New() *Session {
	target, _ := language.Lookup(language.Default)
	return &Session{
		id:     uuid.NewString(),
		target: target,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// AppendUserMessage appends a user turn to the transcript.
func (s *Session) AppendUserMessage(text string) {
	s.append(types.RoleUser, text)
}

// AppendAssistantMessage appends an assistant turn to the transcript.
func (s *Session) AppendAssistantMessage(text string) {
	s.append(types.RoleAssistant, text)
}

func (s *Session) append(role types.Role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, types.ChatMessage{Role: role, Content: text})
}

// Messages returns a copy of the chat transcript in append order.
func (s *Session) Messages() []types.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// RecordTranslation appends a completed translation to the history. Callers
// invoke this only after a fully successful pipeline run; failed runs leave
// the history untouched.
func (s *Session) RecordTranslation(entry types.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, entry)
}

// HistoryLen returns the full history length (unbounded within a session).
func (s *Session) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// RecentHistory returns up to n history entries, most recent first. The
// returned slice holds copies; the call does not mutate session state.
func (s *Session) RecentHistory(n int) []types.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		n = DefaultRecentLimit
	}
	if n > len(s.history) {
		n = len(s.history)
	}

	out := make([]types.HistoryEntry, 0, n)
	for i := len(s.history) - 1; i >= len(s.history)-n; i-- {
		out = append(out, s.history[i])
	}
	return out
}

// ClearHistory empties the translation history. The chat transcript is
// unaffected.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// TargetLanguage returns the currently selected target language.
func (s *Session) TargetLanguage() language.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}

// SetTargetLanguage replaces the current target. Unregistered names fail
// closed with ErrInvalidLanguage and leave the current target unchanged;
// the UI only offers registry members, but the session defends anyway.
func (s *Session) SetTargetLanguage(name string) error {
	target, ok := language.Lookup(name)
	if !ok {
		return types.NewAppErrorWithDetails(
			types.ErrInvalidLanguage,
			"unsupported target language",
			name,
			nil,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = target
	return nil
}

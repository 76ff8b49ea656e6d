package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

// einoTestConfig points the eino engine at a local chat-completions server.
func einoTestConfig(baseURL string) *types.Config {
	return &types.Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "openai/gpt-4o-mini",
		Referer: "localhost:8080",
		Engine:  "eino",
	}
}

func TestEinoEngine_Translate(t *testing.T) {
	requests := 0
	var gotReferer, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotReferer = r.Header.Get("HTTP-Referer")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(replyBody(`{"detected_language":"english","primary_translation":"bonjour"}`)))
	}))
	defer server.Close()

	engine, err := NewEinoEngine(context.Background(), einoTestConfig(server.URL))
	if err != nil {
		t.Fatalf("NewEinoEngine() error = %v", err)
	}

	raw, err := engine.Translate(context.Background(), "hello", "french")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if raw != `{"detected_language":"english","primary_translation":"bonjour"}` {
		t.Errorf("Translate() raw = %q", raw)
	}

	if requests != 1 {
		t.Errorf("engine made %d requests, want exactly 1", requests)
	}
	if gotReferer != "localhost:8080" {
		t.Errorf("HTTP-Referer = %q, want localhost:8080", gotReferer)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want Bearer test-key", gotAuth)
	}
}

func TestEinoEngine_ServerErrorIsAppError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"provider exploded"}}`))
	}))
	defer server.Close()

	engine, err := NewEinoEngine(context.Background(), einoTestConfig(server.URL))
	if err != nil {
		t.Fatalf("NewEinoEngine() error = %v", err)
	}

	_, err = engine.Translate(context.Background(), "hello", "french")
	if err == nil {
		t.Fatal("Translate() error = nil, want API failure")
	}
	if _, ok := err.(*types.AppError); !ok {
		t.Fatalf("Translate() error type = %T, want *types.AppError", err)
	}
	if types.CodeOf(err) != types.ErrAPICall {
		t.Errorf("error code = %v, want %v", types.CodeOf(err), types.ErrAPICall)
	}
	if !types.IsTransportError(err) {
		t.Error("server failure not classified as transport error")
	}
}

func TestNewEinoEngine_MissingAPIKey(t *testing.T) {
	cfg := einoTestConfig("https://example.test/v1")
	cfg.APIKey = ""

	_, err := NewEinoEngine(context.Background(), cfg)
	if err == nil {
		t.Fatal("NewEinoEngine() error = nil, want config error")
	}
	if types.CodeOf(err) != types.ErrConfig {
		t.Errorf("error code = %v, want %v", types.CodeOf(err), types.ErrConfig)
	}
}

func TestRefererTransport_SetsHeader(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("HTTP-Referer")
	}))
	defer server.Close()

	client := &http.Client{Transport: &refererTransport{referer: "localhost:8080"}}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("request through transport failed: %v", err)
	}
	resp.Body.Close()

	if got != "localhost:8080" {
		t.Errorf("HTTP-Referer = %q, want localhost:8080", got)
	}
}

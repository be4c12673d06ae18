package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/intentd/internal/domain"
	healthuc "github.com/kailas-cloud/intentd/internal/usecase/health"
)

type mockChat struct {
	result domain.ChatResult
	gotMsg string
}

func (m *mockChat) Handle(_ context.Context, message string) domain.ChatResult {
	m.gotMsg = message
	return m.result
}

type okPinger struct{}

func (okPinger) Ping(_ context.Context) error { return nil }

func newTestServer(chat *mockChat) http.Handler {
	srv := NewServer(chat, healthuc.New(okPinger{}, nil, nil), zap.NewNop())
	r := chirouter.NewRouter()
	srv.Routes(r)
	return r
}

func TestChat_HappyPath(t *testing.T) {
	chat := &mockChat{result: domain.ChatResult{
		OriginalMessage: "cuantos usuarios hay",
		Valid:           true,
		Response:        "Hay 42 usuarios.",
		Prompt:          "prompt text",
		Label:           domain.LabelSQL,
		Evidence:        []domain.Match{{Label: domain.LabelSQL, Distance: 0.05}},
		Context: domain.PromptContext{
			Type:     domain.ContextSQL,
			Examples: []string{"cuantos usuarios hay registrados"},
		},
	}}
	handler := newTestServer(chat)

	req := httptest.NewRequest("POST", "/chat",
		strings.NewReader(`{"message":"cuantos usuarios hay"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if chat.gotMsg != "cuantos usuarios hay" {
		t.Errorf("message not forwarded: %q", chat.gotMsg)
	}

	var resp ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Valid || resp.Response != "Hay 42 usuarios." {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Label != "sql" {
		t.Errorf("expected sql label, got %q", resp.Label)
	}
	if len(resp.Evidence) != 1 || resp.Evidence[0].Distance != 0.05 {
		t.Errorf("unexpected evidence: %+v", resp.Evidence)
	}
	if resp.Context == nil || resp.Context.Type != "sql" {
		t.Errorf("unexpected context: %+v", resp.Context)
	}
}

func TestChat_InvalidMessage_200(t *testing.T) {
	chat := &mockChat{result: domain.ChatResult{
		OriginalMessage: "   ",
		Valid:           false,
		Response:        "Please type a message so I can help you.",
	}}
	handler := newTestServer(chat)

	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message":"   "}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("invalid input is non-exceptional, got %d", rr.Code)
	}

	var resp ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Valid {
		t.Error("expected valid=false")
	}
	if resp.Response == "" {
		t.Error("expected a textual response")
	}
	if resp.Context != nil {
		t.Error("expected no context for invalid input")
	}
}

func TestChat_MalformedJSON_400(t *testing.T) {
	handler := newTestServer(&mockChat{})

	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message":`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rr.Code)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "bad_request" {
		t.Errorf("error code: got %s, want bad_request", errResp.Code)
	}
}

func TestHealthCheck_OK(t *testing.T) {
	handler := newTestServer(&mockChat{})

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rr.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected ok status, got %q", resp.Status)
	}
	if resp.Checks["database"] != "ok" {
		t.Errorf("expected database check ok, got %v", resp.Checks)
	}
}

func TestMetrics_Exposed(t *testing.T) {
	handler := newTestServer(&mockChat{})

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "go_goroutines") {
		t.Error("expected prometheus text output")
	}
}

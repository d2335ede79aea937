package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KevinOBytes/example-app-template/internal/agent"
	"github.com/KevinOBytes/example-app-template/internal/config"
	"github.com/KevinOBytes/example-app-template/internal/service"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		AppName:            "ai-agent-app",
		AppEnv:             "test",
		CORSOrigins:        []string{"*"},
		AgentModel:         "gpt-4",
		AgentTemperature:   0.7,
		AgentMaxIterations: 10,
		AgentTimeoutSecs:   300,
	}
	svc := service.New(cfg, log, agent.WithProcessingDelay(time.Millisecond))
	return NewServer(cfg, svc)
}

func TestRoutesAreRegistered(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/info", "", http.StatusOK},
		{http.MethodGet, "/api/v1/agent/history", "", http.StatusOK},
		{http.MethodPost, "/api/v1/agent/execute", `{"task":"t"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/agent/analyze", `{"data":"d"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/agent/generate", `{"prompt":"p"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/agent/unknown", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		var req *http.Request
		if tc.body != "" {
			req = httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(tc.method, tc.target, nil)
		}
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.target, tc.want, rec.Code)
		}
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected X-Request-Id header")
	}
}

func TestExecuteRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/agent/execute", strings.NewReader(`{"task":"round trip"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status string `json:"status"`
		Result struct {
			Task     string `json:"task"`
			Response string `json:"response"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != "success" || resp.Result.Task != "round trip" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestModelClient_Classify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classify" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %q", ct)
		}

		var req ClassifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request failed: %v", err)
		}
		if req.Text != "hello" || req.RequestID != "req-1" {
			t.Fatalf("unexpected request payload %#v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ClassifyResponse{
			Label:        "greeting",
			Score:        0.93,
			ModelVersion: "v3",
			RequestID:    "req-1",
		})
	}))
	defer server.Close()

	modelClient := NewModelClient(server.URL, 5*time.Second)
	resp, err := modelClient.Classify(context.Background(), "hello", "req-1")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if resp.Label != "greeting" || resp.Score != 0.93 {
		t.Fatalf("unexpected response %#v", resp)
	}
}

func TestModelClient_Classify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model not loaded"))
	}))
	defer server.Close()

	modelClient := NewModelClient(server.URL, 5*time.Second)
	if _, err := modelClient.Classify(context.Background(), "hello", "req-1"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestModelClient_Classify_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect
		// and cancel the request context; otherwise Close hangs.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	modelClient := NewModelClient(server.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := modelClient.Classify(ctx, "hello", "req-1"); err == nil {
		t.Fatal("expected error for timed out request")
	}
}

func TestModelClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", ModelLoaded: true, ModelVersion: "v3"})
	}))
	defer server.Close()

	modelClient := NewModelClient(server.URL, 5*time.Second)
	health, err := modelClient.Health(context.Background())
	if err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if !health.ModelLoaded || health.ModelVersion != "v3" {
		t.Fatalf("unexpected health %#v", health)
	}
}

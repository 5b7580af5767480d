package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newClassifierAgainst(t *testing.T, resp ClassifyResponse) *ModelClassifier {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	return NewModelClassifier(NewModelClient(server.URL, 5*time.Second)).(*ModelClassifier)
}

func TestModelClassifier_Classify(t *testing.T) {
	classifier := newClassifierAgainst(t, ClassifyResponse{Label: "greeting", Score: 0.93})

	result, err := classifier.Classify(context.Background(), "hello", "req-1")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if result.Label != "greeting" || result.Score != 0.93 {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestModelClassifier_RejectsEmptyLabel(t *testing.T) {
	classifier := newClassifierAgainst(t, ClassifyResponse{Label: "", Score: 0.5})

	if _, err := classifier.Classify(context.Background(), "hello", "req-1"); err == nil {
		t.Fatal("expected error for empty label")
	}
}

func TestModelClassifier_RejectsOutOfRangeScore(t *testing.T) {
	for _, score := range []float64{-0.1, 1.1} {
		classifier := newClassifierAgainst(t, ClassifyResponse{Label: "greeting", Score: score})
		if _, err := classifier.Classify(context.Background(), "hello", "req-1"); err == nil {
			t.Fatalf("expected error for score %v", score)
		}
	}
}

package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheckAvailabilityOnline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>home</html>"))
	}))
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	res := CheckAvailability(context.Background(), client, ParseTarget(server.URL))
	if !res.Online {
		t.Error("Expected site to be online")
	}
	if string(res.Body) != "<html>home</html>" {
		t.Errorf("Expected homepage body, got %q", res.Body)
	}
}

func TestCheckAvailabilityBrowserAgentFallback(t *testing.T) {
	// The server rejects the default Go agent but accepts a browser one:
	// the site must still read as online and the body must come from the
	// browser-agent attempt.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != browserUserAgent {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte("<html>browser only</html>"))
	}))
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	res := CheckAvailability(context.Background(), client, ParseTarget(server.URL))
	if !res.Online {
		t.Error("Expected site to be online via browser agent")
	}
	if string(res.Body) != "<html>browser only</html>" {
		t.Errorf("Expected browser-agent body to win, got %q", res.Body)
	}
}

func TestCheckAvailabilityOffline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := &http.Client{Timeout: time.Second}
	res := CheckAvailability(context.Background(), client, ParseTarget(server.URL))
	if res.Online {
		t.Error("Expected site to be offline")
	}
	if res.Body != nil {
		t.Errorf("Expected no body for an offline site, got %d bytes", len(res.Body))
	}
}

func TestSelectBody(t *testing.T) {
	tests := []struct {
		name       string
		candidates []bodyCandidate
		want       string
	}{
		{"first success wins", []bodyCandidate{
			{ok: true, body: []byte("first")},
			{ok: true, body: []byte("second")},
		}, "first"},
		{"failed attempts skipped", []bodyCandidate{
			{ok: false},
			{ok: true, body: []byte("second")},
		}, "second"},
		{"empty successful body skipped", []bodyCandidate{
			{ok: true, body: nil},
			{ok: true, body: []byte("second")},
		}, "second"},
		{"all failed", []bodyCandidate{{ok: false}, {ok: false}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(selectBody(tt.candidates)); got != tt.want {
				t.Errorf("selectBody = %q, want %q", got, tt.want)
			}
		})
	}
}

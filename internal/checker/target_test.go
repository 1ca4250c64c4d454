package checker

import "testing"

func TestParseTarget(t *testing.T) {
	tests := []struct {
		input   string
		scheme  string
		host    string
		port    string
		fullURL string
	}{
		{"example.com", "http", "example.com", "", "http://example.com"},
		{"http://example.com", "http", "example.com", "", "http://example.com"},
		{"https://example.com", "https", "example.com", "", "https://example.com"},
		{"https://example.com:8443/path", "https", "example.com", "8443", "https://example.com:8443/path"},
		{"example.com:8080", "http", "example.com", "8080", "http://example.com:8080"},
		{"www.example.com", "http", "www.example.com", "", "http://www.example.com"},
	}

	for _, tt := range tests {
		info := ParseTarget(tt.input)
		if info.Scheme != tt.scheme {
			t.Errorf("ParseTarget(%q).Scheme = %q, want %q", tt.input, info.Scheme, tt.scheme)
		}
		if info.Host != tt.host {
			t.Errorf("ParseTarget(%q).Host = %q, want %q", tt.input, info.Host, tt.host)
		}
		if info.Port != tt.port {
			t.Errorf("ParseTarget(%q).Port = %q, want %q", tt.input, info.Port, tt.port)
		}
		if info.FullURL != tt.fullURL {
			t.Errorf("ParseTarget(%q).FullURL = %q, want %q", tt.input, info.FullURL, tt.fullURL)
		}
	}
}

func TestIsHTTPS(t *testing.T) {
	if ParseTarget("http://example.com").IsHTTPS() {
		t.Error("http target reported as HTTPS")
	}
	if !ParseTarget("https://example.com").IsHTTPS() {
		t.Error("https target not reported as HTTPS")
	}
	if ParseTarget("example.com").IsHTTPS() {
		t.Error("bare domain should default to http")
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.example.com", "example.com"},
		{"http://example.com/path", "example.com"},
		{"www.example.com", "example.com"},
		{"example.com", "example.com"},
		{"https://sub.example.com", "sub.example.com"},
		{"https://www.example.com:8080", "example.com"},
	}
	for _, tt := range tests {
		if got := ExtractDomain(tt.input); got != tt.want {
			t.Errorf("ExtractDomain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBaseURL(t *testing.T) {
	if got := ParseTarget("https://example.com/deep/path").BaseURL(); got != "https://example.com" {
		t.Errorf("BaseURL = %q, want https://example.com", got)
	}
	if got := ParseTarget("example.com:8080").BaseURL(); got != "http://example.com:8080" {
		t.Errorf("BaseURL = %q, want http://example.com:8080", got)
	}
}

package checker

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

// AvailabilityResult carries the reachability verdict plus the homepage body
// selected from the successful fetch attempts.
type AvailabilityResult struct {
	Online bool
	Body   []byte
}

// bodyCandidate is one fetch attempt's outcome. Candidates are collected in
// probe order and exactly one body wins: the first successful fetch that
// returned a non-empty body.
type bodyCandidate struct {
	ok   bool
	body []byte
}

func selectBody(candidates []bodyCandidate) []byte {
	for _, c := range candidates {
		if c.ok && len(c.body) > 0 {
			return c.body
		}
	}
	return nil
}

// CheckAvailability probes the target with five independent methods: a plain
// GET, a HEAD, a GET with a browser User-Agent, a GET with a trailing slash,
// and a raw TCP dial to ports 80/443. The site counts as online when any
// method succeeds.
func CheckAvailability(ctx context.Context, client *http.Client, info *TargetInfo) AvailabilityResult {
	var candidates []bodyCandidate
	anyOK := false

	get := func(url string, header http.Header) bodyCandidate {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return bodyCandidate{}
		}
		if header != nil {
			req.Header = header
		}
		resp, err := client.Do(req)
		if err != nil {
			return bodyCandidate{}
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			_, _ = io.Copy(io.Discard, resp.Body)
			return bodyCandidate{}
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return bodyCandidate{}
		}
		return bodyCandidate{ok: true, body: body}
	}

	// Method 1: plain GET
	c := get(info.FullURL, nil)
	anyOK = anyOK || c.ok
	candidates = append(candidates, c)

	// Method 2: HEAD, any non-client-error status counts
	if req, err := http.NewRequestWithContext(ctx, http.MethodHead, info.FullURL, nil); err == nil {
		if resp, err := client.Do(req); err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode < 400 {
				anyOK = true
			}
		}
	}

	// Method 3: GET with a browser User-Agent (some servers block default agents)
	h := make(http.Header)
	h.Set("User-Agent", browserUserAgent)
	c = get(info.FullURL, h)
	anyOK = anyOK || c.ok
	candidates = append(candidates, c)

	// Method 4: GET with trailing slash
	slashed := info.FullURL
	if !strings.HasSuffix(slashed, "/") {
		slashed += "/"
	}
	c = get(slashed, nil)
	anyOK = anyOK || c.ok
	candidates = append(candidates, c)

	// Method 5: raw TCP dial against the usual web ports
	if dialAnyPort(ctx, info, client.Timeout) {
		anyOK = true
	}

	return AvailabilityResult{Online: anyOK, Body: selectBody(candidates)}
}

func dialAnyPort(ctx context.Context, info *TargetInfo, timeout time.Duration) bool {
	ports := []string{"80", "443"}
	if info.Port != "" {
		ports = []string{info.Port}
	}
	dialer := &net.Dialer{Timeout: timeout}
	for _, port := range ports {
		conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(info.Host, port))
		if err == nil {
			conn.Close()
			return true
		}
	}
	return false
}

package checker

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// MeasureResponse issues a timed GET against the URL and returns the elapsed
// time plus the response (body already drained). ok is false when the request
// failed, in which case latency is meaningless.
func MeasureResponse(ctx context.Context, client *http.Client, url string) (time.Duration, *http.Response, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, false
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, false
	}
	elapsed := time.Since(start)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return elapsed, resp, true
}

// CountRedirects follows the redirect chain for the URL and returns the
// number of hops taken. ok is false when the request never completed; an
// unmeasured chain is an absent observation, not zero hops.
func CountRedirects(ctx context.Context, url string, timeout time.Duration) (int, bool) {
	hops := 0
	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			hops = len(via)
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, false
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, false
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return hops, true
}

// CheckPathExists reports whether GET <base><path> answers 200. Used for the
// robots.txt and sitemap.xml probes.
func CheckPathExists(ctx context.Context, client *http.Client, base, path string) bool {
	url := strings.TrimRight(base, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

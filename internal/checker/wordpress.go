package checker

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// WordPressSigns collects WordPress fingerprints for a site. These are
// displayed alongside the grade but never feed into it.
type WordPressSigns struct {
	WPContent     bool `json:"wp_content"`
	WPIncludes    bool `json:"wp_includes"`
	MetaGenerator bool `json:"meta_generator"`
	WPJSON        bool `json:"wp_json"`
	WPAdmin       bool `json:"wp_admin"`
}

// Detected reports whether any fingerprint matched.
func (w WordPressSigns) Detected() bool {
	return w.WPContent || w.WPIncludes || w.MetaGenerator || w.WPJSON || w.WPAdmin
}

// CheckWordPress inspects the homepage body for WordPress markers and probes
// the /wp-json/ and /wp-admin/ endpoints.
func CheckWordPress(ctx context.Context, client *http.Client, baseURL string, body []byte) WordPressSigns {
	signs := WordPressSigns{}

	text := strings.ToLower(string(body))
	signs.WPContent = strings.Contains(text, "wp-content")
	signs.WPIncludes = strings.Contains(text, "wp-includes")

	if doc := parseHTML(body); doc != nil {
		content, _ := doc.Find(`meta[name="generator"]`).First().Attr("content")
		signs.MetaGenerator = strings.Contains(strings.ToLower(content), "wordpress")
	}

	base := strings.TrimRight(baseURL, "/")

	if resp := fetchEndpoint(ctx, client, base+"/wp-json/"); resp != nil {
		signs.WPJSON = resp.status == http.StatusOK
	}

	if resp := fetchEndpoint(ctx, client, base+"/wp-admin/"); resp != nil {
		loginPage := strings.Contains(strings.ToLower(resp.body), "login")
		signs.WPAdmin = (resp.status == http.StatusOK || resp.status == http.StatusFound) && loginPage
	}

	return signs
}

type endpointResult struct {
	status int
	body   string
}

func fetchEndpoint(ctx context.Context, client *http.Client, url string) *endpointResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	// A login page is small; cap the read to keep the probe cheap.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	return &endpointResult{status: resp.StatusCode, body: string(body)}
}

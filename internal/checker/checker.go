package checker

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// TitleUnknown is the sentinel used when no page title could be extracted.
const TitleUnknown = "N/A"

// DefaultErrorKeywords are matched case-insensitively against the homepage
// body; any hit counts against the site's grade.
var DefaultErrorKeywords = []string{"404", "not found", "error", "503", "maintenance"}

// Observations is the flat record of every probe result collected for one
// site during one run. It is rebuilt from scratch on every run and never
// persisted; the score engine and the report assembler both consume it.
type Observations struct {
	Target string `json:"target"`
	Domain string `json:"domain"`
	HTTPS  bool   `json:"https"`

	Online            bool          `json:"online"`
	HasContent        bool          `json:"has_content"`
	Latency           time.Duration `json:"latency_ns"`
	LatencyMeasured   bool          `json:"latency_measured"`
	RedirectHops      int           `json:"redirect_hops"`
	RedirectsMeasured bool          `json:"redirects_measured"`
	CertValid         bool          `json:"cert_valid"`
	CertExpiry        string        `json:"cert_expiry,omitempty"`
	DNSAddrs          []string      `json:"dns_addrs,omitempty"`
	PingOK            bool          `json:"ping_ok"`
	ContentType       string        `json:"content_type,omitempty"`
	Title             string        `json:"title"`
	ErrorKeywords     []string      `json:"error_keywords,omitempty"`
	RobotsFound       bool          `json:"robots_found"`
	SitemapFound      bool          `json:"sitemap_found"`
	MetaRefresh       bool          `json:"meta_refresh"`

	// Extras displayed but never scored.
	WordPress      WordPressSigns `json:"wordpress"`
	ScreenshotPath string         `json:"screenshot_path,omitempty"`
	ScreenshotErr  string         `json:"screenshot_error,omitempty"`

	// Homepage body kept for the version store; not serialized.
	Body []byte `json:"-"`
}

// Reporter receives a callback after every pipeline step. Implementations
// render progress; the runner never writes to the terminal itself.
type Reporter interface {
	Step(target, description string)
}

// NopReporter discards all step notifications.
type NopReporter struct{}

func (NopReporter) Step(string, string) {}

// Runner executes the probe sequence for a single target. Probes run one
// after another; each carries its own timeout and any failure degrades the
// corresponding observation instead of aborting the site.
type Runner struct {
	Timeout  time.Duration // per-probe timeout
	Keywords []string      // error keywords to match in the body
	Limiter  *rate.Limiter // courtesy pacing between steps (optional)
	Reporter Reporter
}

func (r *Runner) reporter() Reporter {
	if r.Reporter == nil {
		return NopReporter{}
	}
	return r.Reporter
}

func (r *Runner) keywords() []string {
	if len(r.Keywords) == 0 {
		return DefaultErrorKeywords
	}
	return r.Keywords
}

// step waits on the limiter and then notifies the reporter.
func (r *Runner) step(ctx context.Context, target, description string) {
	if r.Limiter != nil {
		_ = r.Limiter.Wait(ctx)
	}
	r.reporter().Step(target, description)
}

// Collect runs every probe against the target in a fixed order and returns
// the assembled observation set. It always returns a value: an unreachable
// site yields observations where every signal reads as failing.
func (r *Runner) Collect(ctx context.Context, target string) Observations {
	info := ParseTarget(target)
	obs := Observations{
		Target: target,
		Domain: ExtractDomain(target),
		HTTPS:  info.IsHTTPS(),
		Title:  TitleUnknown,
	}

	client := &http.Client{Timeout: r.Timeout}

	avail := CheckAvailability(ctx, client, info)
	obs.Online = avail.Online
	obs.Body = avail.Body
	obs.HasContent = len(avail.Body) > 0
	r.step(ctx, target, "availability")

	if latency, resp, ok := MeasureResponse(ctx, client, info.FullURL); ok {
		obs.Latency = latency
		obs.LatencyMeasured = true
		obs.ContentType = resp.Header.Get("Content-Type")
	}
	r.step(ctx, target, "response time")

	obs.RedirectHops, obs.RedirectsMeasured = CountRedirects(ctx, info.FullURL, r.Timeout)
	r.step(ctx, target, "redirects")

	if obs.HTTPS {
		if valid, expiry := CheckCertificate(ctx, info.Host, r.Timeout); valid {
			obs.CertValid = true
			obs.CertExpiry = expiry.Format(time.RFC3339)
		}
	}
	r.step(ctx, target, "ssl certificate")

	obs.DNSAddrs = ResolveAddrs(ctx, info.Host, r.Timeout)
	r.step(ctx, target, "dns")

	obs.PingOK = Ping(ctx, info.Host, r.Timeout)
	r.step(ctx, target, "ping")

	r.step(ctx, target, "content type")

	if title := ExtractTitle(obs.Body); title != "" {
		obs.Title = title
	}
	r.step(ctx, target, "page title")

	obs.ErrorKeywords = FindErrorKeywords(obs.Body, r.keywords())
	r.step(ctx, target, "error patterns")

	obs.RobotsFound = CheckPathExists(ctx, client, info.BaseURL(), "/robots.txt")
	r.step(ctx, target, "robots.txt")

	obs.SitemapFound = CheckPathExists(ctx, client, info.BaseURL(), "/sitemap.xml")
	r.step(ctx, target, "sitemap.xml")

	obs.MetaRefresh = HasMetaRefresh(obs.Body)
	r.step(ctx, target, "meta refresh")

	obs.WordPress = CheckWordPress(ctx, client, info.FullURL, obs.Body)
	r.step(ctx, target, "wordpress fingerprints")

	return obs
}

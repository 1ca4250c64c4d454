// Package score turns an observation set into a 0-100 grade via a fixed
// additive rubric. It is stateless: same observations, same grade.
package score

import (
	"strings"
	"time"

	"github.com/spalmeida/verifica-sites/internal/checker"
)

// Point values of the rubric. The latency tiers and the transport tiers are
// each awarded from a single branch so the groups can never double-count.
const (
	pointsOnline       = 30
	pointsLatencyFast  = 10 // < 1s
	pointsLatencyOK    = 5  // 1s..3s
	pointsNoRedirect   = 10
	pointsFewRedirects = 5 // 1-2 hops
	pointsValidCert    = 10
	pointsPlainHTTP    = 5 // flat credit when TLS does not apply
	pointsDNS          = 5
	pointsPing         = 5
	pointsContentType  = 5
	pointsTitle        = 5
	pointsNoErrors     = 5
	pointsRobots       = 5
	pointsSitemap      = 5
	pointsNoRefresh    = 5
)

// Band labels for presentation. The grade itself is band-agnostic.
const (
	BandLow    = "low"
	BandMedium = "medium"
	BandHigh   = "high"
)

// Grade computes the site's grade from its observations. It is total: absent
// or unknown observations simply fail their sub-check.
func Grade(obs checker.Observations) int {
	grade := 0

	if obs.Online {
		grade += pointsOnline
	}

	if obs.LatencyMeasured {
		switch {
		case obs.Latency < time.Second:
			grade += pointsLatencyFast
		case obs.Latency < 3*time.Second:
			grade += pointsLatencyOK
		}
	}

	if obs.RedirectsMeasured {
		switch {
		case obs.RedirectHops == 0:
			grade += pointsNoRedirect
		case obs.RedirectHops <= 2:
			grade += pointsFewRedirects
		}
	}

	// Transport is only creditable when it was actually exercised.
	if obs.HTTPS {
		if obs.CertValid {
			grade += pointsValidCert
		}
	} else if obs.Online {
		grade += pointsPlainHTTP
	}

	if len(obs.DNSAddrs) > 0 {
		grade += pointsDNS
	}
	if obs.PingOK {
		grade += pointsPing
	}
	if containsTextHTML(obs.ContentType) {
		grade += pointsContentType
	}
	if obs.Title != "" && obs.Title != checker.TitleUnknown {
		grade += pointsTitle
	}
	if obs.HasContent && len(obs.ErrorKeywords) == 0 {
		grade += pointsNoErrors
	}
	if obs.RobotsFound {
		grade += pointsRobots
	}
	if obs.SitemapFound {
		grade += pointsSitemap
	}
	if obs.HasContent && !obs.MetaRefresh {
		grade += pointsNoRefresh
	}

	return grade
}

// Band maps a grade to its presentation band: 0-40 low, 41-90 medium,
// 91-100 high.
func Band(grade int) string {
	switch {
	case grade <= 40:
		return BandLow
	case grade <= 90:
		return BandMedium
	default:
		return BandHigh
	}
}

// Performance rates the homepage response time on its own 0-100 scale. This
// is a display-only heuristic, separate from the grade.
func Performance(obs checker.Observations) int {
	if !obs.LatencyMeasured {
		return 0
	}
	switch {
	case obs.Latency < 500*time.Millisecond:
		return 100
	case obs.Latency < time.Second:
		return 90
	case obs.Latency < 1500*time.Millisecond:
		return 80
	case obs.Latency < 2*time.Second:
		return 70
	case obs.Latency < 2500*time.Millisecond:
		return 60
	default:
		return 50
	}
}

func containsTextHTML(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "text/html")
}

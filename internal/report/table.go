package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/spalmeida/verifica-sites/internal/checker"
	"github.com/spalmeida/verifica-sites/internal/score"
	"github.com/spalmeida/verifica-sites/internal/store"
)

var (
	colorGood  = color.New(color.FgGreen).SprintFunc()
	colorWarn  = color.New(color.FgYellow).SprintFunc()
	colorBad   = color.New(color.FgRed).SprintFunc()
	colorDim   = color.New(color.FgHiBlack).SprintFunc()
	colorTitle = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Renderer writes per-site result tables to Out.
type Renderer struct {
	Out io.Writer
}

// RenderSite prints the detail table, the WordPress panel, and the final
// grade for a single site.
func (r *Renderer) RenderSite(res SiteResult) {
	obs := res.Observations

	fmt.Fprintf(r.Out, "%s %s\n", colorTitle("==>"), colorTitle(obs.Target))

	w := tabwriter.NewWriter(r.Out, 2, 4, 2, ' ', 0)

	row := func(label, value string) {
		fmt.Fprintf(w, "  %s\t%s\n", label, value)
	}

	status := colorBad("OFFLINE")
	if obs.Online {
		status = colorGood("ONLINE")
	}
	row("Status", status)

	latency := colorDim("N/A")
	if obs.LatencyMeasured {
		latency = colorDim(fmt.Sprintf("%.2f s", obs.Latency.Seconds()))
	}
	row("Response time", latency)
	row("Redirects", colorDim(fmt.Sprintf("%d", obs.RedirectHops)))

	ssl := colorDim("N/A")
	if obs.HTTPS {
		if obs.CertValid {
			ssl = colorGood(fmt.Sprintf("valid (expires %s)", obs.CertExpiry))
		} else {
			ssl = colorBad("invalid")
		}
	}
	row("SSL certificate", ssl)

	dns := colorDim("N/A")
	if len(obs.DNSAddrs) > 0 {
		dns = colorDim(strings.Join(obs.DNSAddrs, ", "))
	}
	row("DNS", dns)

	ping := colorBad("failed")
	if obs.PingOK {
		ping = colorGood("ok")
	}
	row("Ping", ping)
	row("Content-Type", colorDim(orNA(obs.ContentType)))
	row("Title", colorDim(obs.Title))

	errs := colorGood("none")
	if len(obs.ErrorKeywords) > 0 {
		errs = colorBad(strings.Join(obs.ErrorKeywords, ", "))
	}
	row("Error patterns", errs)
	row("robots.txt", foundLabel(obs.RobotsFound))
	row("sitemap.xml", foundLabel(obs.SitemapFound))

	refresh := colorGood("not detected")
	if obs.MetaRefresh {
		refresh = colorBad("detected")
	}
	row("Meta refresh", refresh)

	snapshot := colorDim("no")
	if res.NewSnapshot != "" {
		snapshot = colorGood(res.NewSnapshot)
	}
	row("New version", snapshot)
	row("Versions today", colorWarn(fmt.Sprintf("%d", res.TotalToday)))
	if res.StorageError != "" {
		row("Storage", colorBad(res.StorageError))
	}

	row("Performance", fmt.Sprintf("%d%%", res.Performance))

	shot := colorDim("disabled")
	switch {
	case obs.ScreenshotErr != "":
		shot = colorBad(obs.ScreenshotErr)
	case obs.ScreenshotPath != "":
		shot = colorDim(obs.ScreenshotPath)
	}
	row("Screenshot", shot)

	w.Flush()

	r.renderWordPress(obs.WordPress)

	fmt.Fprintf(r.Out, "  Final grade: %s\n\n", GradeLabel(res.Grade))
}

func (r *Renderer) renderWordPress(wp checker.WordPressSigns) {
	fmt.Fprintf(r.Out, "  %s\n", colorTitle("WordPress"))

	w := tabwriter.NewWriter(r.Out, 2, 4, 2, ' ', 0)
	mark := func(ok bool, yes, no string) string {
		if ok {
			return colorGood(yes)
		}
		return colorDim(no)
	}
	fmt.Fprintf(w, "  wp-content\t%s\n", mark(wp.WPContent, "found", "not found"))
	fmt.Fprintf(w, "  wp-includes\t%s\n", mark(wp.WPIncludes, "found", "not found"))
	fmt.Fprintf(w, "  meta generator\t%s\n", mark(wp.MetaGenerator, "WordPress detected", "not detected"))
	fmt.Fprintf(w, "  wp-json\t%s\n", mark(wp.WPJSON, "reachable", "unreachable"))
	fmt.Fprintf(w, "  wp-admin\t%s\n", mark(wp.WPAdmin, "login page detected", "not detected"))
	w.Flush()
}

// GradeLabel colors a grade by its band: 0-40 red, 41-90 yellow,
// 91-100 green.
func GradeLabel(grade int) string {
	label := fmt.Sprintf("%d%%", grade)
	switch score.Band(grade) {
	case score.BandLow:
		return colorBad(label)
	case score.BandMedium:
		return colorWarn(label)
	default:
		return colorGood(label)
	}
}

func foundLabel(found bool) string {
	if found {
		return colorGood("found")
	}
	return colorWarn("not found")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02 15:04")
}

// RenderArchive prints the snapshot archive summary, one row per domain.
func (r *Renderer) RenderArchive(summaries []store.DomainSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(r.Out, colorDim("archive is empty"))
		return
	}

	w := tabwriter.NewWriter(r.Out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		colorTitle("DOMAIN"), colorTitle("SNAPSHOTS"), colorTitle("DAYS"),
		colorTitle("LATEST"), colorTitle("SCREENSHOT"))
	for _, s := range summaries {
		shot := colorDim("no")
		if s.HasScreenshot {
			shot = colorGood("yes")
		}
		latest := colorDim(formatTimestamp(s.LatestSaved))
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", s.Domain, s.Snapshots, s.Days, latest, shot)
	}
	w.Flush()
}

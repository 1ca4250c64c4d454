package report

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF exports a run output as a printable PDF report.
func WritePDF(path string, out RunOutput) error {
	b, err := pdfReportBytes(out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, filePerm); err != nil {
		return fmt.Errorf("write pdf report: %w", err)
	}
	return nil
}

func pdfReportBytes(out RunOutput) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Site Verification Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Metadata section
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Links file: %s", out.Metadata.LinksFile), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Started: %s", out.Metadata.StartedAt.Format("2006-01-02 15:04:05")), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Completed: %s", out.Metadata.CompletedAt.Format("2006-01-02 15:04:05")), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Targets: %d", out.Metadata.TotalTargets), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Summary section
	online := 0
	for _, r := range out.Results {
		if r.Observations.Online {
			online++
		}
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Online: %d | Offline: %d", online, len(out.Results)-online), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Per-site results
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Site Results", "", 1, "", false, 0, "")
	pdf.Ln(2)

	for _, r := range out.Results {
		obs := r.Observations

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s - grade %d%% (%s)", obs.Target, r.Grade, r.Band), "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)

		status := "offline"
		if obs.Online {
			status = "online"
		}
		latency := "n/a"
		if obs.LatencyMeasured {
			latency = fmt.Sprintf("%.2fs", obs.Latency.Seconds())
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("  status: %s | latency: %s | redirects: %d | performance: %d%%",
			status, latency, obs.RedirectHops, r.Performance), "", 1, "", false, 0, "")

		dns := "none"
		if len(obs.DNSAddrs) > 0 {
			dns = strings.Join(obs.DNSAddrs, ", ")
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("  dns: %s | title: %s", dns, obs.Title), "", 1, "", false, 0, "")

		snapshot := "none"
		if r.NewSnapshot != "" {
			snapshot = r.NewSnapshot
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("  new snapshot: %s | versions today: %d", snapshot, r.TotalToday), "", 1, "", false, 0, "")

		if obs.WordPress.Detected() {
			pdf.CellFormat(0, 5, "  wordpress fingerprints detected", "", 1, "", false, 0, "")
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spalmeida/verifica-sites/internal/checker"
	"github.com/spalmeida/verifica-sites/internal/store"
)

func sampleRun() RunOutput {
	return RunOutput{
		Metadata: RunMetadata{
			LinksFile:    "links.txt",
			StartedAt:    time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
			CompletedAt:  time.Date(2026, 8, 26, 9, 1, 30, 0, time.UTC),
			TotalTargets: 2,
		},
		Results: []SiteResult{
			{
				Observations: checker.Observations{
					Target:            "https://example.com",
					Domain:            "example.com",
					HTTPS:             true,
					Online:            true,
					HasContent:        true,
					Latency:           420 * time.Millisecond,
					LatencyMeasured:   true,
					RedirectsMeasured: true,
					CertValid:         true,
					DNSAddrs:          []string{"93.184.216.34"},
					PingOK:            true,
					ContentType:       "text/html; charset=utf-8",
					Title:             "Example Domain",
					RobotsFound:       true,
					SitemapFound:      true,
				},
				Grade:       100,
				Band:        "high",
				Performance: 100,
				NewSnapshot: "2026-08-26.html",
				TotalToday:  1,
			},
			{
				Observations: checker.Observations{
					Target: "https://down.example",
					Domain: "down.example",
					Title:  checker.TitleUnknown,
				},
				Grade:        0,
				Band:         "low",
				Performance:  0,
				TotalToday:   0,
				StorageError: "no content to store",
			},
		},
	}
}

func TestWriteLoadJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	in := sampleRun()

	if err := WriteJSON(path, in); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	if out.Metadata != in.Metadata {
		t.Errorf("Metadata mismatch: got %+v, want %+v", out.Metadata, in.Metadata)
	}
	if len(out.Results) != len(in.Results) {
		t.Fatalf("Expected %d results, got %d", len(in.Results), len(out.Results))
	}
	if out.Results[0].Observations.Target != "https://example.com" {
		t.Errorf("Unexpected target: %q", out.Results[0].Observations.Target)
	}
	if out.Results[0].Grade != 100 || out.Results[1].Grade != 0 {
		t.Errorf("Grades lost in round trip: %d, %d", out.Results[0].Grade, out.Results[1].Grade)
	}
	if out.Results[1].StorageError != "no content to store" {
		t.Errorf("StorageError lost in round trip: %q", out.Results[1].StorageError)
	}
}

func TestLoadJSONMissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Expected error for missing results file")
	}
}

func TestRenderSite(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}

	r.RenderSite(sampleRun().Results[0])
	got := buf.String()

	for _, want := range []string{
		"https://example.com",
		"ONLINE",
		"0.42 s",
		"Example Domain",
		"2026-08-26.html",
		"100%",
		"WordPress",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderSiteOffline(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}

	r.RenderSite(sampleRun().Results[1])
	got := buf.String()

	for _, want := range []string{"OFFLINE", "N/A", "no content to store", "0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderArchive(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}

	r.RenderArchive([]store.DomainSummary{
		{
			Domain:        "example.com",
			Snapshots:     4,
			Days:          2,
			LatestName:    "2026-08-26_1.html",
			LatestSaved:   time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC),
			HasScreenshot: true,
		},
		{Domain: "down.example"},
	})
	got := buf.String()

	for _, want := range []string{"DOMAIN", "example.com", "down.example", "2026-08-26 10:30", "never"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderArchiveEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}

	r.RenderArchive(nil)

	if !strings.Contains(buf.String(), "archive is empty") {
		t.Errorf("Expected empty-archive notice, got: %s", buf.String())
	}
}

func TestGradeLabelBands(t *testing.T) {
	// Colors may be disabled under test; the numeric label must survive.
	tests := []struct {
		grade int
		want  string
	}{
		{0, "0%"},
		{40, "40%"},
		{75, "75%"},
		{100, "100%"},
	}
	for _, tt := range tests {
		if got := GradeLabel(tt.grade); !strings.Contains(got, tt.want) {
			t.Errorf("GradeLabel(%d) = %q, expected to contain %q", tt.grade, got, tt.want)
		}
	}
}

func TestPDFReportBytes(t *testing.T) {
	b, err := pdfReportBytes(sampleRun())
	if err != nil {
		t.Fatalf("pdfReportBytes: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("Expected non-empty PDF output")
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Errorf("Expected PDF header, got %q", b[:min(8, len(b))])
	}
}

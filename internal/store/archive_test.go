package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSummariesEmptyArchive(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"))
	summaries, err := s.Summaries()
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("Expected empty summary list, got %d", len(summaries))
	}
}

func TestSummaries(t *testing.T) {
	s, now := testStore(t)

	first, err := s.Save("alpha.com", []byte("a1"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	backdate(t, s, "alpha.com", first.Filename, now.Add(-time.Hour))
	if _, err := s.Save("alpha.com", []byte("a2")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Save("beta.org", []byte("b1")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Give beta a screenshot and alpha a snapshot from another day.
	shot, err := s.ScreenshotPath("beta.org")
	if err != nil {
		t.Fatalf("ScreenshotPath: %v", err)
	}
	if err := os.WriteFile(shot, []byte("png"), 0o644); err != nil {
		t.Fatalf("write screenshot: %v", err)
	}
	alphaDir, _ := s.DomainDir("alpha.com")
	if err := os.WriteFile(filepath.Join(alphaDir, "2026-08-25.html"), []byte("old"), 0o644); err != nil {
		t.Fatalf("write old snapshot: %v", err)
	}

	summaries, err := s.Summaries()
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 domains, got %d", len(summaries))
	}

	alpha, beta := summaries[0], summaries[1]
	if alpha.Domain != "alpha.com" || beta.Domain != "beta.org" {
		t.Fatalf("Expected sorted domains, got %s, %s", alpha.Domain, beta.Domain)
	}
	if alpha.Snapshots != 3 {
		t.Errorf("Expected 3 alpha snapshots, got %d", alpha.Snapshots)
	}
	if alpha.Days != 2 {
		t.Errorf("Expected alpha snapshots across 2 days, got %d", alpha.Days)
	}
	if alpha.HasScreenshot {
		t.Error("alpha should have no screenshot")
	}
	if beta.Snapshots != 1 {
		t.Errorf("Expected 1 beta snapshot, got %d", beta.Snapshots)
	}
	if !beta.HasScreenshot {
		t.Error("beta should have a screenshot")
	}
	if beta.LatestName != "2026-08-26.html" {
		t.Errorf("Expected beta latest '2026-08-26.html', got %q", beta.LatestName)
	}
}

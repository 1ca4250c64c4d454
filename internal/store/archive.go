package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DomainSummary describes one domain's snapshot history for reporting.
type DomainSummary struct {
	Domain        string    `json:"domain"`
	Snapshots     int       `json:"snapshots"`
	Days          int       `json:"days"`
	LatestName    string    `json:"latest,omitempty"`
	LatestSaved   time.Time `json:"latest_saved,omitempty"`
	HasScreenshot bool      `json:"has_screenshot"`
}

// Summaries walks the archive and returns one summary per domain, sorted by
// domain name. A missing archive root yields an empty list, not an error.
func (s *Store) Summaries() ([]DomainSummary, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var summaries []DomainSummary
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		summary, err := s.summarizeDomain(entry.Name())
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Domain < summaries[j].Domain })
	return summaries, nil
}

func (s *Store) summarizeDomain(domain string) (DomainSummary, error) {
	dir, err := resolveWithin(s.BaseDir, domain)
	if err != nil {
		return DomainSummary{}, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return DomainSummary{}, err
	}

	summary := DomainSummary{Domain: domain}
	days := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			if entry.Name() == "print" {
				if _, err := os.Stat(filepath.Join(dir, "print", "homepage.png")); err == nil {
					summary.HasScreenshot = true
				}
			}
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, SnapshotExt) || len(name) < len(dayFormat) {
			continue
		}
		day := name[:len(dayFormat)]
		if _, err := time.Parse(dayFormat, day); err != nil {
			continue
		}
		if _, ok := parseSeq(name, day); !ok {
			continue
		}
		summary.Snapshots++
		days[day] = struct{}{}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(summary.LatestSaved) {
			summary.LatestSaved = info.ModTime()
			summary.LatestName = name
		}
	}

	summary.Days = len(days)
	return summary, nil
}

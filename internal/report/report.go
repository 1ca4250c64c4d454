// Package report assembles per-site results for rendering and persists the
// run output. It consumes what the core yields and formats it; no probing or
// storage logic lives here.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spalmeida/verifica-sites/internal/checker"
)

const filePerm = 0o644

// SiteResult is the tuple the core yields per site: the raw observations,
// the derived grades, and the versioning outcome.
type SiteResult struct {
	Observations checker.Observations `json:"observations"`
	Grade        int                  `json:"grade"`
	Band         string               `json:"band"`
	Performance  int                  `json:"performance"`
	NewSnapshot  string               `json:"new_snapshot,omitempty"`
	TotalToday   int                  `json:"versions_today"`
	StorageError string               `json:"storage_error,omitempty"`
}

// RunMetadata describes one whole verification run.
type RunMetadata struct {
	LinksFile    string    `json:"links_file"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
	TotalTargets int       `json:"total_targets"`
}

// RunOutput is the persisted form of a run: metadata plus one result per
// site, in input order.
type RunOutput struct {
	Metadata RunMetadata  `json:"metadata"`
	Results  []SiteResult `json:"results"`
}

// WriteJSON persists the run output, overwriting any previous run.
func WriteJSON(path string, out RunOutput) error {
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run output: %w", err)
	}
	if err := os.WriteFile(path, b, filePerm); err != nil {
		return fmt.Errorf("write run output: %w", err)
	}
	return nil
}

// LoadJSON reads a previously persisted run output.
func LoadJSON(path string) (RunOutput, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return RunOutput{}, fmt.Errorf("read run output: %w", err)
	}
	var out RunOutput
	if err := json.Unmarshal(b, &out); err != nil {
		return RunOutput{}, fmt.Errorf("parse run output: %w", err)
	}
	return out, nil
}

// Package store owns the on-disk archive of homepage snapshots. Each domain
// gets its own directory; snapshots are deduplicated by content hash and
// throttled by a minimum re-check interval.
package store

import (
	"crypto/md5" // #nosec G501 -- content fingerprint for dedup, not a security boundary.
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// SnapshotExt is the file extension of persisted snapshots.
	SnapshotExt = ".html"

	// DefaultThreshold is the minimum interval before a same-day snapshot
	// is reconsidered.
	DefaultThreshold = 600 * time.Second

	dayFormat = "2006-01-02"
	dirPerm   = 0o755
	filePerm  = 0o644
)

// Store persists homepage snapshots under BaseDir/<domain>/. It is the only
// component that mutates the snapshot tree.
type Store struct {
	BaseDir   string
	Threshold time.Duration

	now func() time.Time
}

// New returns a Store rooted at baseDir with the default re-check threshold.
func New(baseDir string) *Store {
	return &Store{
		BaseDir:   baseDir,
		Threshold: DefaultThreshold,
		now:       time.Now,
	}
}

// SaveResult reports the outcome of a Save call. Filename is empty when no
// new snapshot was written (unchanged content or throttled).
type SaveResult struct {
	Filename   string
	TotalToday int
}

// NewVersion reports whether Save wrote a new snapshot.
func (r SaveResult) NewVersion() bool {
	return r.Filename != ""
}

// version is one entry of the per-day snapshot index, rebuilt from a
// directory scan so the count survives process restarts.
type version struct {
	seq     int
	name    string
	modTime time.Time
}

// Save persists content as today's next snapshot for the domain, unless the
// incumbent snapshot is too fresh (threshold) or carries identical bytes.
// Empty content is a valid zero-length snapshot.
func (s *Store) Save(domain string, content []byte) (SaveResult, error) {
	dir, err := s.DomainDir(domain)
	if err != nil {
		return SaveResult{}, err
	}

	now := s.clock()()
	day := now.Format(dayFormat)

	versions, err := s.scanDay(dir, day)
	if err != nil {
		return SaveResult{}, err
	}

	name := day + SnapshotExt
	if len(versions) > 0 {
		incumbent := versions[len(versions)-1]

		// Throttle: an incumbent written within the threshold is left alone
		// regardless of content.
		if now.Sub(incumbent.modTime) < s.threshold() {
			return SaveResult{TotalToday: len(versions)}, nil
		}

		existing, err := os.ReadFile(filepath.Join(dir, incumbent.name))
		if err != nil {
			return SaveResult{}, fmt.Errorf("read incumbent snapshot: %w", err)
		}
		if md5.Sum(existing) == md5.Sum(content) {
			return SaveResult{TotalToday: len(versions)}, nil
		}

		name = fmt.Sprintf("%s_%d%s", day, incumbent.seq+1, SnapshotExt)
	}

	if err := os.WriteFile(filepath.Join(dir, name), content, filePerm); err != nil {
		return SaveResult{}, fmt.Errorf("write snapshot: %w", err)
	}

	// Recount from disk: the directory listing is authoritative.
	versions, err = s.scanDay(dir, day)
	if err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Filename: name, TotalToday: len(versions)}, nil
}

// DomainDir returns the snapshot directory for the domain, creating it if
// absent. The domain is confined under BaseDir so a hostile links file can
// never write outside the archive.
func (s *Store) DomainDir(domain string) (string, error) {
	dir, err := resolveWithin(s.BaseDir, domain)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("create domain directory: %w", err)
	}
	return dir, nil
}

// ScreenshotPath returns the homepage screenshot path for the domain,
// creating the nested print directory if absent. The screenshot is always
// overwritten, never versioned.
func (s *Store) ScreenshotPath(domain string) (string, error) {
	dir, err := resolveWithin(s.BaseDir, domain, "print")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("create print directory: %w", err)
	}
	return filepath.Join(dir, "homepage.png"), nil
}

// scanDay builds the in-memory version index for one day from a directory
// listing, ordered by sequence. Files with unparsable suffixes are left on
// disk but excluded from ordering and counting.
func (s *Store) scanDay(dir, day string) ([]version, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan snapshot directory: %w", err)
	}

	var versions []version
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		seq, ok := parseSeq(entry.Name(), day)
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		versions = append(versions, version{seq: seq, name: entry.Name(), modTime: info.ModTime()})
	}

	sort.Slice(versions, func(i, j int) bool { return versions[i].seq < versions[j].seq })
	return versions, nil
}

// parseSeq decodes a snapshot filename for the given day. The bare name is
// sequence 0; a "_N" suffix is sequence N. Anything else is rejected rather
// than guessed at.
func parseSeq(name, day string) (int, bool) {
	if !strings.HasPrefix(name, day) || !strings.HasSuffix(name, SnapshotExt) {
		return 0, false
	}
	middle := strings.TrimSuffix(strings.TrimPrefix(name, day), SnapshotExt)
	if middle == "" {
		return 0, true
	}
	if !strings.HasPrefix(middle, "_") {
		return 0, false
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(middle, "_"))
	if err != nil || seq < 1 {
		return 0, false
	}
	return seq, true
}

func (s *Store) threshold() time.Duration {
	if s.Threshold <= 0 {
		return DefaultThreshold
	}
	return s.Threshold
}

func (s *Store) clock() func() time.Time {
	if s.now == nil {
		return time.Now
	}
	return s.now
}

// Package baseline snapshots score records and validation findings so a
// later run can report what changed.
package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dotcommander/physioscore/internal/scoring"
	"github.com/dotcommander/physioscore/internal/types"
)

// Version is written into new baseline files.
const Version = "1.0"

// Baseline is a snapshot of score fingerprints per document and of known
// validation findings.
type Baseline struct {
	Version   string            `json:"version"`
	CreatedAt string            `json:"created_at"`
	Records   map[string]string `json:"records"`
	Issues    []string          `json:"issues,omitempty"`
	issues    map[string]bool
}

// Entry is one scored document.
type Entry struct {
	Key    string
	Record scoring.Record
}

// Status of a document against the baseline.
type Status string

const (
	StatusUnchanged Status = "unchanged"
	StatusChanged   Status = "changed"
	StatusNew       Status = "new"
	StatusMissing   Status = "missing"
)

// Drift reports a document whose record differs from the baseline.
type Drift struct {
	Key    string `json:"key"`
	Status Status `json:"status"`
}

// CreateBaseline fingerprints entries and findings.
func CreateBaseline(entries []Entry, findings []types.ValidationError, now time.Time) (*Baseline, error) {
	b := &Baseline{
		Version:   Version,
		CreatedAt: now.UTC().Format(time.RFC3339),
		Records:   make(map[string]string, len(entries)),
		issues:    make(map[string]bool),
	}
	for _, e := range entries {
		fp, err := RecordFingerprint(e.Record)
		if err != nil {
			return nil, fmt.Errorf("fingerprint %s: %w", e.Key, err)
		}
		b.Records[e.Key] = fp
	}
	for _, f := range findings {
		fp := issueFingerprint(f)
		if !b.issues[fp] {
			b.issues[fp] = true
			b.Issues = append(b.Issues, fp)
		}
	}
	sort.Strings(b.Issues)
	return b, nil
}

// LoadBaseline loads a baseline from a JSON file
func LoadBaseline(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}
	if b.Records == nil {
		b.Records = map[string]string{}
	}
	b.issues = make(map[string]bool, len(b.Issues))
	for _, fp := range b.Issues {
		b.issues[fp] = true
	}
	return &b, nil
}

// SaveBaseline saves the baseline to a JSON file
func (b *Baseline) SaveBaseline(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}
	return nil
}

// Status compares one entry with the baseline.
func (b *Baseline) Status(e Entry) (Status, error) {
	want, ok := b.Records[e.Key]
	if !ok {
		return StatusNew, nil
	}
	got, err := RecordFingerprint(e.Record)
	if err != nil {
		return "", err
	}
	if got != want {
		return StatusChanged, nil
	}
	return StatusUnchanged, nil
}

// Check returns every entry that is new or changed, plus baseline keys
// absent from entries, sorted by key.
func (b *Baseline) Check(entries []Entry) ([]Drift, error) {
	var drifts []Drift
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		seen[e.Key] = true
		st, err := b.Status(e)
		if err != nil {
			return nil, fmt.Errorf("fingerprint %s: %w", e.Key, err)
		}
		if st != StatusUnchanged {
			drifts = append(drifts, Drift{Key: e.Key, Status: st})
		}
	}
	for key := range b.Records {
		if !seen[key] {
			drifts = append(drifts, Drift{Key: key, Status: StatusMissing})
		}
	}
	sort.Slice(drifts, func(i, j int) bool { return drifts[i].Key < drifts[j].Key })
	return drifts, nil
}

// IsKnown checks if a finding is in the baseline
func (b *Baseline) IsKnown(issue types.ValidationError) bool {
	if b.issues == nil {
		return false
	}
	return b.issues[issueFingerprint(issue)]
}

// RecordFingerprint hashes the ordered JSON form of a record.
func RecordFingerprint(r scoring.Record) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}

// issueFingerprint hashes file, field, source and the normalized message.
func issueFingerprint(issue types.ValidationError) string {
	data := fmt.Sprintf("%s|%s|%s|%s", issue.File, issue.Field, issue.Source, normalizeMessage(issue.Message))
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

var (
	doubleQuoted = regexp.MustCompile(`"[^"]+"`)
	singleQuoted = regexp.MustCompile(`(^|\s)'([^']+)'(\s|$)`)
	numbers      = regexp.MustCompile(`-?\b\d+(\.\d+)?\b`)
)

// normalizeMessage replaces quoted values and numbers with placeholders so
// a finding keeps its fingerprint when only the offending value changes.
func normalizeMessage(msg string) string {
	msg = doubleQuoted.ReplaceAllString(msg, `"*"`)
	msg = singleQuoted.ReplaceAllString(msg, `$1'*'$3`)
	msg = numbers.ReplaceAllString(msg, `N`)
	return strings.Join(strings.Fields(msg), " ")
}

package baseline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dotcommander/physioscore/internal/scoring"
	"github.com/dotcommander/physioscore/internal/types"
)

var created = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func record(total float64, label string) scoring.Record {
	return scoring.NewRecord(
		scoring.Metric{Key: "total", Value: scoring.Number(total)},
		scoring.Metric{Key: "classification", Value: scoring.Text(label)},
	)
}

func TestCreateBaseline(t *testing.T) {
	entries := []Entry{
		{Key: "a.answers.yaml|oswestry", Record: record(20, "Mínima")},
		{Key: "b.answers.yaml|ndi", Record: record(12, "Leve")},
	}
	findings := []types.ValidationError{
		{File: "c.answers.yaml", Field: "answers.q3", Message: "value 7 is not a declared option", Source: types.SourceRange},
		// Duplicate finding - should be deduplicated
		{File: "c.answers.yaml", Field: "answers.q3", Message: "value 7 is not a declared option", Source: types.SourceRange},
	}

	b, err := CreateBaseline(entries, findings, created)
	if err != nil {
		t.Fatalf("CreateBaseline() error = %v", err)
	}
	if b.Version != Version {
		t.Errorf("Expected version %s, got %s", Version, b.Version)
	}
	if b.CreatedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("CreatedAt = %s", b.CreatedAt)
	}
	if len(b.Records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(b.Records))
	}
	if len(b.Issues) != 1 {
		t.Errorf("Expected 1 unique issue, got %d", len(b.Issues))
	}
}

func TestCheck(t *testing.T) {
	b, err := CreateBaseline([]Entry{
		{Key: "a|oswestry", Record: record(20, "Mínima")},
		{Key: "b|ndi", Record: record(12, "Leve")},
		{Key: "gone|lefs", Record: record(40, "")},
	}, nil, created)
	if err != nil {
		t.Fatal(err)
	}

	drifts, err := b.Check([]Entry{
		{Key: "a|oswestry", Record: record(20, "Mínima")},
		{Key: "b|ndi", Record: record(14, "Leve")},
		{Key: "c|koos", Record: record(80, "")},
	})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	want := []Drift{
		{Key: "b|ndi", Status: StatusChanged},
		{Key: "c|koos", Status: StatusNew},
		{Key: "gone|lefs", Status: StatusMissing},
	}
	if len(drifts) != len(want) {
		t.Fatalf("Check() = %v, want %v", drifts, want)
	}
	for i := range want {
		if drifts[i] != want[i] {
			t.Errorf("drift[%d] = %v, want %v", i, drifts[i], want[i])
		}
	}
}

func TestStatusDependsOnMetricOrder(t *testing.T) {
	b, err := CreateBaseline([]Entry{{Key: "k", Record: record(1, "x")}}, nil, created)
	if err != nil {
		t.Fatal(err)
	}
	reordered := scoring.NewRecord(
		scoring.Metric{Key: "classification", Value: scoring.Text("x")},
		scoring.Metric{Key: "total", Value: scoring.Number(1)},
	)
	st, err := b.Status(Entry{Key: "k", Record: reordered})
	if err != nil {
		t.Fatal(err)
	}
	if st != StatusChanged {
		t.Errorf("Status() = %s, want %s", st, StatusChanged)
	}
}

func TestIsKnown(t *testing.T) {
	issue1 := types.ValidationError{
		File:    "p1.answers.yaml",
		Field:   "answers.q2",
		Message: "value 9 is outside [0, 5]",
		Source:  types.SourceRange,
	}
	issue2 := types.ValidationError{
		File:    "p2.answers.yaml",
		Message: `unknown questionnaire "foo"`,
		Source:  types.SourceRegistry,
	}

	b, err := CreateBaseline(nil, []types.ValidationError{issue1}, created)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsKnown(issue1) {
		t.Error("Expected issue1 to be known in baseline")
	}
	if b.IsKnown(issue2) {
		t.Error("Expected issue2 to not be known in baseline")
	}

	var empty Baseline
	if empty.IsKnown(issue1) {
		t.Error("Zero baseline should know nothing")
	}
}

func TestSaveAndLoadBaseline(t *testing.T) {
	baselinePath := filepath.Join(t.TempDir(), ".physioscore-baseline.json")
	issue := types.ValidationError{File: "x.biomech.yaml", Message: "eva out of range", Source: types.SourceSchema}
	entry := Entry{Key: "x|womac", Record: record(33, "")}

	original, err := CreateBaseline([]Entry{entry}, []types.ValidationError{issue}, created)
	if err != nil {
		t.Fatal(err)
	}
	if err := original.SaveBaseline(baselinePath); err != nil {
		t.Fatalf("Failed to save baseline: %v", err)
	}

	loaded, err := LoadBaseline(baselinePath)
	if err != nil {
		t.Fatalf("Failed to load baseline: %v", err)
	}
	if loaded.Version != original.Version {
		t.Errorf("Version mismatch: expected %s, got %s", original.Version, loaded.Version)
	}
	if loaded.Records[entry.Key] != original.Records[entry.Key] {
		t.Error("Record fingerprint not preserved")
	}
	if !loaded.IsKnown(issue) {
		t.Error("Expected loaded baseline to recognize original issue")
	}
	st, err := loaded.Status(entry)
	if err != nil || st != StatusUnchanged {
		t.Errorf("Status() = %s, %v; want unchanged", st, err)
	}
}

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "question 'q3' has value 'seven'",
			expected: "question '*' has value '*'",
		},
		{
			input:    "value 12.5 is outside [0, 10]",
			expected: "value N is outside [N, N]",
		},
		{
			input:    `unknown questionnaire "foo"`,
			expected: `unknown questionnaire "*"`,
		},
		{
			input:    "answers.q10 out of   range",
			expected: "answers.q10 out of range",
		},
	}

	for _, tt := range tests {
		result := normalizeMessage(tt.input)
		if result != tt.expected {
			t.Errorf("normalizeMessage(%q)\nExpected: %q\nGot:      %q",
				tt.input, tt.expected, result)
		}
	}
}

func TestIssueFingerprintStability(t *testing.T) {
	issue := types.ValidationError{
		File:     "a.answers.yaml",
		Field:    "answers.q1",
		Message:  "value 7 is outside [0, 5]",
		Severity: types.SeverityError,
		Source:   types.SourceRange,
	}
	fp1 := issueFingerprint(issue)

	issue.Severity = types.SeverityWarning
	if issueFingerprint(issue) != fp1 {
		t.Error("Fingerprint changed when only severity changed")
	}

	issue.Message = "value 9 is outside [0, 5]"
	if issueFingerprint(issue) != fp1 {
		t.Error("Fingerprint changed when only the offending value changed")
	}

	issue.Message = "Completely different error"
	if issueFingerprint(issue) == fp1 {
		t.Error("Fingerprint didn't change when message pattern changed")
	}
}

func TestLoadNonexistentBaseline(t *testing.T) {
	_, err := LoadBaseline("/nonexistent/path/.physioscore-baseline.json")
	if err == nil {
		t.Error("Expected error when loading nonexistent baseline")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	baselinePath := filepath.Join(t.TempDir(), ".physioscore-baseline.json")
	if err := os.WriteFile(baselinePath, []byte("invalid json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := LoadBaseline(baselinePath); err == nil {
		t.Error("Expected error when loading invalid JSON")
	}
}

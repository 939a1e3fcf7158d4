// Package report aggregates the per-document results of a batch run.
package report

import (
	"time"

	"github.com/dotcommander/physioscore/internal/biomech"
	"github.com/dotcommander/physioscore/internal/footwear"
	"github.com/dotcommander/physioscore/internal/scoring"
	"github.com/dotcommander/physioscore/internal/types"
)

// Result is the outcome of processing one input document.
type Result struct {
	File    string
	Kind    string // types.KindAnswers or types.KindBiomech
	Type    string // questionnaire id, empty for biomech documents
	Title   string
	Patient string

	Scores         *scoring.Record
	Profile        *biomech.Profile
	Recommendation *footwear.Recommendation
	InRange        footwear.Catalog // catalog models inside the recommended index range
	Shoes          footwear.Catalog

	Errors   []types.ValidationError
	Warnings []types.ValidationError

	Drift        string // baseline status, empty when no baseline was checked
	SubmissionID string
	Success      bool
	Duration     int64
}

// Risk returns the traffic-light color of the scored record, if any.
func (r Result) Risk() (types.RiskColor, bool) {
	if r.Scores == nil {
		return "", false
	}
	return r.Scores.RiskColor()
}

// Summary summarizes all results of one run.
type Summary struct {
	ProjectRoot     string
	Command         string // e.g. "score", "validate", "profile"
	StartTime       time.Time
	TotalFiles      int
	SuccessfulFiles int
	FailedFiles     int
	TotalErrors     int
	TotalWarnings   int
	Drifted         int
	Duration        int64
	Results         []Result
}

// NewSummary starts an empty summary.
func NewSummary(root, command string, start time.Time) *Summary {
	return &Summary{ProjectRoot: root, Command: command, StartTime: start}
}

// Add appends r and updates the counters.
func (s *Summary) Add(r Result) {
	s.TotalFiles++
	if r.Success {
		s.SuccessfulFiles++
	} else {
		s.FailedFiles++
	}
	s.TotalErrors += len(r.Errors)
	s.TotalWarnings += len(r.Warnings)
	if r.Drift != "" && r.Drift != "unchanged" {
		s.Drifted++
	}
	s.Results = append(s.Results, r)
}

// Finish stamps the total duration.
func (s *Summary) Finish(now time.Time) {
	s.Duration = now.Sub(s.StartTime).Milliseconds()
}

// HasFailures reports whether any document failed.
func (s *Summary) HasFailures() bool {
	return s.FailedFiles > 0
}

// RiskCounts tallies scored results by traffic-light color.
func (s *Summary) RiskCounts() map[types.RiskColor]int {
	counts := make(map[types.RiskColor]int)
	for _, r := range s.Results {
		if c, ok := r.Risk(); ok {
			counts[c]++
		}
	}
	return counts
}

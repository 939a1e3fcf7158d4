package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/physioscore/internal/biomech"
	"github.com/dotcommander/physioscore/internal/footwear"
	"github.com/dotcommander/physioscore/internal/report"
	"github.com/dotcommander/physioscore/internal/scoring"
)

// Version is reported in machine-readable output headers.
const Version = "1.0.0"

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	w          io.Writer
	indent     bool
	outputFile string
	now        func() time.Time
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(w io.Writer, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		w:          w,
		indent:     indent,
		outputFile: outputFile,
		now:        time.Now,
	}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Command   string `json:"command,omitempty"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains summary statistics
type JSONSummary struct {
	TotalFiles      int            `json:"total_files"`
	SuccessfulFiles int            `json:"successful_files"`
	FailedFiles     int            `json:"failed_files"`
	TotalErrors     int            `json:"total_errors"`
	TotalWarnings   int            `json:"total_warnings"`
	Drifted         int            `json:"drifted,omitempty"`
	Risk            map[string]int `json:"risk,omitempty"`
	Duration        string         `json:"duration"`
}

// JSONResult represents a single document's result
type JSONResult struct {
	File           string                   `json:"file"`
	Kind           string                   `json:"kind"`
	Type           string                   `json:"type,omitempty"`
	Patient        string                   `json:"patient,omitempty"`
	Success        bool                     `json:"success"`
	Duration       int64                    `json:"duration_ms,omitempty"`
	Scores         *scoring.Record          `json:"scores,omitempty"`
	Profile        *biomech.Profile         `json:"profile,omitempty"`
	Recommendation *footwear.Recommendation `json:"recommendation,omitempty"`
	InRange        footwear.Catalog         `json:"inRange,omitempty"`
	Shoes          footwear.Catalog         `json:"shoes,omitempty"`
	Baseline       string                   `json:"baseline,omitempty"`
	SubmissionID   string                   `json:"submission_id,omitempty"`
	Errors         []JSONValidationError    `json:"errors,omitempty"`
	Warnings       []JSONValidationError    `json:"warnings,omitempty"`
}

// JSONValidationError represents a validation finding
type JSONValidationError struct {
	File     string `json:"file"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Source   string `json:"source,omitempty"`
	Field    string `json:"field,omitempty"`
}

// Format formats the summary as JSON
func (f *JSONFormatter) Format(summary *report.Summary) error {
	rep := JSONReport{
		Header: JSONHeader{
			Tool:      "physioscore",
			Version:   Version,
			Command:   summary.Command,
			Timestamp: f.now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalFiles:      summary.TotalFiles,
			SuccessfulFiles: summary.SuccessfulFiles,
			FailedFiles:     summary.FailedFiles,
			TotalErrors:     summary.TotalErrors,
			TotalWarnings:   summary.TotalWarnings,
			Drifted:         summary.Drifted,
			Duration:        (time.Duration(summary.Duration) * time.Millisecond).String(),
		},
		Results: make([]JSONResult, len(summary.Results)),
	}
	if counts := summary.RiskCounts(); len(counts) > 0 {
		rep.Summary.Risk = make(map[string]int, len(counts))
		for c, n := range counts {
			rep.Summary.Risk[string(c)] = n
		}
	}

	for i, result := range summary.Results {
		jr := JSONResult{
			File:           result.File,
			Kind:           result.Kind,
			Type:           result.Type,
			Patient:        result.Patient,
			Success:        result.Success,
			Duration:       result.Duration,
			Scores:         result.Scores,
			Profile:        result.Profile,
			Recommendation: result.Recommendation,
			InRange:        result.InRange,
			Shoes:          result.Shoes,
			Baseline:       result.Drift,
			SubmissionID:   result.SubmissionID,
		}
		for _, err := range result.Errors {
			jr.Errors = append(jr.Errors, JSONValidationError(err))
		}
		for _, warning := range result.Warnings {
			jr.Warnings = append(jr.Warnings, JSONValidationError(warning))
		}
		rep.Results[i] = jr
	}

	var (
		data []byte
		err  error
	)
	if f.indent {
		data, err = json.MarshalIndent(rep, "", "  ")
	} else {
		data, err = json.Marshal(rep)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	return writeOutput(f.w, f.outputFile, append(data, '\n'))
}

// writeOutput writes content to outputFile when set, otherwise to w.
func writeOutput(w io.Writer, outputFile string, content []byte) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, content, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		return nil
	}
	_, err := w.Write(content)
	return err
}

// Package outputters selects a report formatter from configuration.
package outputters

import (
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/physioscore/internal/config"
	"github.com/dotcommander/physioscore/internal/output"
	"github.com/dotcommander/physioscore/internal/report"
)

// Formatter renders a summary.
type Formatter interface {
	Format(summary *report.Summary) error
}

// FormatterFactory builds the formatter for a format name.
type FormatterFactory interface {
	CreateFormatter(format string) (Formatter, error)
}

// DefaultFormatterFactory builds the console, json and markdown formatters.
type DefaultFormatterFactory struct {
	config *config.Config
	w      io.Writer
}

// CreateFormatter returns the formatter for format.
func (d *DefaultFormatterFactory) CreateFormatter(format string) (Formatter, error) {
	switch format {
	case "console":
		return output.NewConsoleFormatter(d.w, d.config.Quiet, d.config.Verbose, d.config.ShowScores), nil
	case "json":
		return output.NewJSONFormatter(d.w, true, d.config.Output), nil
	case "markdown":
		return output.NewMarkdownFormatter(d.w, d.config.Verbose, d.config.ShowScores, d.config.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
}

// NewOutputter creates an Outputter writing to stdout.
func NewOutputter(cfg *config.Config) *Outputter {
	return NewOutputterTo(cfg, os.Stdout)
}

// NewOutputterTo creates an Outputter writing to w.
func NewOutputterTo(cfg *config.Config, w io.Writer) *Outputter {
	return &Outputter{
		config:  cfg,
		factory: &DefaultFormatterFactory{config: cfg, w: w},
	}
}

// Format renders the summary in the given format, or the configured one
// when format is empty.
func (o *Outputter) Format(summary *report.Summary, format string) error {
	if format == "" {
		format = o.config.Format
	}
	if summary.ProjectRoot == "" {
		summary.ProjectRoot = o.config.Root
	}

	formatter, err := o.factory.CreateFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(summary)
}

package output

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/physioscore/internal/biomech"
	"github.com/dotcommander/physioscore/internal/footwear"
	"github.com/dotcommander/physioscore/internal/report"
	"github.com/dotcommander/physioscore/internal/types"
)

// barWidth is the number of cells of a full radar bar.
const barWidth = 20

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	w          io.Writer
	quiet      bool
	verbose    bool
	showScores bool
	colorize   bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(w io.Writer, quiet, verbose, showScores bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		w:          w,
		quiet:      quiet,
		verbose:    verbose,
		showScores: showScores,
		colorize:   true,
	}
}

// Format formats the summary for console output
func (f *ConsoleFormatter) Format(summary *report.Summary) error {
	if f.quiet {
		return nil
	}

	for _, result := range summary.Results {
		f.printResult(result)
	}
	f.printSummary(summary)
	f.printConclusion(summary)
	return nil
}

func (f *ConsoleFormatter) style(color string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// riskStyle maps the traffic light onto terminal colors.
func (f *ConsoleFormatter) riskStyle(c types.RiskColor) lipgloss.Style {
	switch c {
	case types.RiskRed:
		return f.style("9")
	case types.RiskYellow:
		return f.style("3")
	case types.RiskGreen:
		return f.style("10")
	default:
		return f.style("7")
	}
}

func (f *ConsoleFormatter) printResult(result report.Result) {
	status := "✓"
	statusStyle := f.style("10")
	if len(result.Errors) > 0 {
		status = "✗"
		statusStyle = f.style("9")
	} else if c, ok := result.Risk(); ok {
		status = "●"
		statusStyle = f.riskStyle(c)
	}

	header := result.File
	if result.Type != "" {
		header += "  [" + result.Type + "]"
	}
	if result.Patient != "" {
		header += "  " + result.Patient
	}
	fmt.Fprintf(f.w, "%s %s\n", statusStyle.Render(status), header)

	for _, err := range result.Errors {
		f.printValidationError(err, types.SeverityError)
	}
	for _, warning := range result.Warnings {
		f.printValidationError(warning, types.SeverityWarning)
	}

	if f.showScores && result.Scores != nil {
		for _, e := range result.Scores.Entries() {
			fmt.Fprintf(f.w, "    %s: %s\n", e.Label, e.Value)
		}
		if c, ok := result.Risk(); ok {
			fmt.Fprintf(f.w, "    Risco: %s\n", f.riskStyle(c).Render(string(c)))
		}
	}
	if result.Profile != nil {
		f.printProfile(*result.Profile)
	}
	if result.Recommendation != nil {
		rec := result.Recommendation
		fmt.Fprintf(f.w, "    Índice recomendado: %d-%d\n", rec.IndexRange[0], rec.IndexRange[1])
		if len(rec.Traits) > 0 {
			fmt.Fprintf(f.w, "    Características: %s\n", strings.Join(rec.Traits, ", "))
		}
		fmt.Fprintf(f.w, "    %s\n", rec.Description)
	}
	if len(result.InRange) > 0 {
		fmt.Fprintf(f.w, "    Modelos no intervalo: %s\n", modelNames(result.InRange))
	}
	for _, shoe := range result.Shoes {
		fmt.Fprintf(f.w, "    • %s %s (%s, índice %d)\n", shoe.Brand, shoe.Name, shoe.Type, shoe.MinimalismIndex)
	}
	if result.Drift != "" && (result.Drift != "unchanged" || f.verbose) {
		fmt.Fprintf(f.w, "    baseline: %s\n", f.style("3").Render(result.Drift))
	}
	if result.SubmissionID != "" && f.verbose {
		fmt.Fprintf(f.w, "    saved as %s\n", result.SubmissionID)
	}
}

func (f *ConsoleFormatter) printProfile(p biomech.Profile) {
	fpiStyle := func(fp biomech.FootPosture) string {
		var st lipgloss.Style
		switch fp.ColorTag {
		case biomech.TagOrange:
			st = f.style("208")
		case biomech.TagBlue:
			st = f.style("12")
		default:
			st = f.style("10")
		}
		return st.Render(fmt.Sprintf("%s (%g)", fp.Label, fp.Sum))
	}
	fmt.Fprintf(f.w, "    FPI: E %s / D %s\n", fpiStyle(p.FootPosture.Left), fpiStyle(p.FootPosture.Right))
	fmt.Fprintf(f.w, "    Índice de minimalismo: %d\n", p.MinimalismIndex)
	fmt.Fprintf(f.w, "    Simetria: %.1f%%\n", p.Symmetry)
	fmt.Fprintf(f.w, "    Y-Balance composto: E %.1f%% / D %.1f%%\n",
		p.YBalance.Composite.Left, p.YBalance.Composite.Right)

	width := 0
	for _, a := range p.Radar {
		if n := len([]rune(a.Subject)); n > width {
			width = n
		}
	}
	for _, a := range p.Radar {
		pad := strings.Repeat(" ", width-len([]rune(a.Subject)))
		fmt.Fprintf(f.w, "    %s%s %s %3.0f\n", a.Subject, pad, f.bar(a.Value), a.Value)
	}
}

// bar renders a 0-100 value as a fixed-width bar colored like a risk light.
func (f *ConsoleFormatter) bar(v float64) string {
	filled := int(math.Round(v / 100 * barWidth))
	filled = max(0, min(barWidth, filled))
	var c types.RiskColor
	switch {
	case v >= 70:
		c = types.RiskGreen
	case v >= 40:
		c = types.RiskYellow
	default:
		c = types.RiskRed
	}
	return f.riskStyle(c).Render(strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled)
}

// printValidationError prints a validation finding with appropriate styling
func modelNames(c footwear.Catalog) string {
	names := make([]string, len(c))
	for i, m := range c {
		names[i] = m.Brand + " " + m.Name
	}
	return strings.Join(names, ", ")
}

func (f *ConsoleFormatter) printValidationError(err types.ValidationError, severity string) {
	style := f.style("7")
	prefix := "    "
	switch severity {
	case types.SeverityError:
		style = f.style("9")
		prefix = "    ✘ "
	case types.SeverityWarning:
		style = f.style("3")
		prefix = "    ⚠ "
	}

	where := err.File
	if err.Field != "" {
		where += ":" + err.Field
	}
	fmt.Fprintf(f.w, "%s%s: %s\n", prefix, style.Render(where), err.Message)
}

// printSummary prints the summary statistics
func (f *ConsoleFormatter) printSummary(summary *report.Summary) {
	if summary.TotalFiles == 0 {
		return
	}

	duration := time.Duration(summary.Duration) * time.Millisecond
	fmt.Fprintf(f.w, "\n%d/%d passed, %d errors, %d warnings (%v)\n",
		summary.SuccessfulFiles, summary.TotalFiles,
		summary.TotalErrors, summary.TotalWarnings, duration)

	counts := summary.RiskCounts()
	if len(counts) > 0 {
		fmt.Fprintf(f.w, "%s %d  %s %d  %s %d\n",
			f.riskStyle(types.RiskGreen).Render("●"), counts[types.RiskGreen],
			f.riskStyle(types.RiskYellow).Render("●"), counts[types.RiskYellow],
			f.riskStyle(types.RiskRed).Render("●"), counts[types.RiskRed])
	}
	if summary.Drifted > 0 {
		fmt.Fprintf(f.w, "%d records differ from baseline\n", summary.Drifted)
	}
}

// printConclusion prints the conclusion message
func (f *ConsoleFormatter) printConclusion(summary *report.Summary) {
	if summary.TotalFiles == 0 {
		fmt.Fprintln(f.w, "No documents found")
		return
	}
	if summary.FailedFiles == 0 {
		bold := f.style("10").Bold(true)
		fmt.Fprintln(f.w, bold.Render("✓ All passed"))
		return
	}
	fmt.Fprintln(f.w, f.style("9").Render(fmt.Sprintf("✗ %d failed", summary.FailedFiles)))
}

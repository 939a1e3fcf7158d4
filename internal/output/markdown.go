package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dotcommander/physioscore/internal/biomech"
	"github.com/dotcommander/physioscore/internal/report"
	"github.com/dotcommander/physioscore/internal/types"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	w          io.Writer
	verbose    bool
	showScores bool
	outputFile string
	now        func() time.Time
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(w io.Writer, verbose, showScores bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		w:          w,
		verbose:    verbose,
		showScores: showScores,
		outputFile: outputFile,
		now:        time.Now,
	}
}

// Format formats the summary as Markdown
func (f *MarkdownFormatter) Format(summary *report.Summary) error {
	var b strings.Builder

	b.WriteString("# PhysioScore Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", f.now().Format("2006-01-02 15:04:05"))
	if summary.ProjectRoot != "" {
		fmt.Fprintf(&b, "**Root:** %s\n\n", summary.ProjectRoot)
	}
	fmt.Fprintf(&b, "**Duration:** %v\n\n", time.Duration(summary.Duration)*time.Millisecond)
	b.WriteString(strings.Repeat("-", 50) + "\n\n")

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Documents | %d |\n", summary.TotalFiles)
	fmt.Fprintf(&b, "| Successful | %d |\n", summary.SuccessfulFiles)
	fmt.Fprintf(&b, "| Failed | %d |\n", summary.FailedFiles)
	fmt.Fprintf(&b, "| Errors | %d |\n", summary.TotalErrors)
	fmt.Fprintf(&b, "| Warnings | %d |\n", summary.TotalWarnings)
	counts := summary.RiskCounts()
	for _, c := range []types.RiskColor{types.RiskGreen, types.RiskYellow, types.RiskRed} {
		if counts[c] > 0 {
			fmt.Fprintf(&b, "| %s %s | %d |\n", riskEmoji(c), c, counts[c])
		}
	}
	if summary.Drifted > 0 {
		fmt.Fprintf(&b, "| Baseline drift | %d |\n", summary.Drifted)
	}
	b.WriteString("\n")

	b.WriteString("## Detailed Results\n\n")
	if summary.TotalFiles == 0 {
		b.WriteString("*No documents found.*\n\n")
	}
	for _, result := range summary.Results {
		if !f.verbose && result.Success && result.Scores == nil && result.Profile == nil && result.Recommendation == nil {
			continue
		}
		f.writeResult(&b, result)
	}

	b.WriteString("## Conclusion\n\n")
	if summary.FailedFiles == 0 {
		b.WriteString("✓ All documents passed!\n")
	} else {
		fmt.Fprintf(&b, "✗ %d documents failed\n", summary.FailedFiles)
	}

	return writeOutput(f.w, f.outputFile, []byte(b.String()))
}

func (f *MarkdownFormatter) writeResult(b *strings.Builder, result report.Result) {
	fmt.Fprintf(b, "### %s\n\n", strings.TrimPrefix(result.File, "./"))
	fmt.Fprintf(b, "Status: %s\n\n", getStatusEmoji(result.Success))
	if result.Type != "" {
		fmt.Fprintf(b, "Type: `%s`", result.Type)
		if result.Title != "" {
			fmt.Fprintf(b, " (%s)", result.Title)
		}
		b.WriteString("\n\n")
	}
	if result.Patient != "" {
		fmt.Fprintf(b, "Patient: %s\n\n", result.Patient)
	}

	writeFindings(b, "Errors", result.Errors)
	writeFindings(b, "Warnings", result.Warnings)

	if f.showScores && result.Scores != nil {
		b.WriteString("| Metric | Value |\n")
		b.WriteString("|--------|-------|\n")
		for _, e := range result.Scores.Entries() {
			fmt.Fprintf(b, "| %s | %s |\n", e.Label, escapeCell(e.Value.String()))
		}
		if c, ok := result.Risk(); ok {
			fmt.Fprintf(b, "| Risco | %s %s |\n", riskEmoji(c), c)
		}
		b.WriteString("\n")
	}
	if result.Profile != nil {
		writeProfile(b, *result.Profile)
	}
	if rec := result.Recommendation; rec != nil {
		fmt.Fprintf(b, "**Índice recomendado:** %d-%d\n\n", rec.IndexRange[0], rec.IndexRange[1])
		for _, t := range rec.Traits {
			fmt.Fprintf(b, "- %s\n", t)
		}
		if len(rec.Traits) > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s\n\n", rec.Description)
	}
	if len(result.InRange) > 0 {
		fmt.Fprintf(b, "**Modelos no intervalo:** %s\n\n", modelNames(result.InRange))
	}
	if len(result.Shoes) > 0 {
		b.WriteString("| Marca | Modelo | Tipo | Índice |\n")
		b.WriteString("|-------|--------|------|--------|\n")
		for _, s := range result.Shoes {
			fmt.Fprintf(b, "| %s | %s | %s | %d |\n", s.Brand, s.Name, s.Type, s.MinimalismIndex)
		}
		b.WriteString("\n")
	}
	if result.Drift != "" {
		fmt.Fprintf(b, "Baseline: `%s`\n\n", result.Drift)
	}
	b.WriteString("---\n\n")
}

func writeFindings(b *strings.Builder, title string, findings []types.ValidationError) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(b, "#### %s\n\n", title)
	for _, v := range findings {
		fmt.Fprintf(b, "- **%s**", v.File)
		if v.Field != "" {
			fmt.Fprintf(b, " `%s`", v.Field)
		}
		fmt.Fprintf(b, " - %s", v.Message)
		if v.Source != "" {
			fmt.Fprintf(b, " `[%s]`", v.Source)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeProfile(b *strings.Builder, p biomech.Profile) {
	b.WriteString("| Índice | Esquerdo | Direito |\n")
	b.WriteString("|--------|----------|---------|\n")
	fmt.Fprintf(b, "| FPI | %s (%g) | %s (%g) |\n",
		p.FootPosture.Left.Label, p.FootPosture.Left.Sum,
		p.FootPosture.Right.Label, p.FootPosture.Right.Sum)
	fmt.Fprintf(b, "| Y-Balance | %.1f%% | %.1f%% |\n", p.YBalance.Composite.Left, p.YBalance.Composite.Right)
	b.WriteString("\n")
	fmt.Fprintf(b, "**Índice de minimalismo:** %d\n\n", p.MinimalismIndex)
	fmt.Fprintf(b, "**Simetria:** %.1f%%\n\n", p.Symmetry)

	b.WriteString("| Eixo | Pontuação |\n")
	b.WriteString("|------|-----------|\n")
	for _, a := range p.Radar {
		fmt.Fprintf(b, "| %s | %.0f |\n", a.Subject, a.Value)
	}
	b.WriteString("\n")
}

// getStatusEmoji returns an emoji for the status
func getStatusEmoji(success bool) string {
	if success {
		return "✅"
	}
	return "❌"
}

func riskEmoji(c types.RiskColor) string {
	switch c {
	case types.RiskGreen:
		return "🟢"
	case types.RiskYellow:
		return "🟡"
	case types.RiskRed:
		return "🔴"
	}
	return "⚪"
}

// escapeCell keeps pipes from breaking table rows.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

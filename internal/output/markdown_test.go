package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dotcommander/physioscore/internal/report"
	"github.com/dotcommander/physioscore/internal/types"
)

func formatMarkdown(t *testing.T, s *report.Summary, verbose, showScores bool) string {
	t.Helper()
	var buf bytes.Buffer
	f := NewMarkdownFormatter(&buf, verbose, showScores, "")
	f.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	if err := f.Format(s); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	return buf.String()
}

func TestMarkdownFormatter_Format(t *testing.T) {
	tests := []struct {
		name            string
		summary         *report.Summary
		verbose         bool
		showScores      bool
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:    "empty",
			summary: newSummary(),
			wantContains: []string{
				"# PhysioScore Report",
				"**Generated:** 2026-03-01 10:00:00",
				"**Root:** clinic",
				"| Documents | 0 |",
				"*No documents found.*",
				"✓ All documents passed!",
			},
		},
		{
			name: "scores table and risk rows",
			summary: newSummary(
				report.Result{File: "./a.answers.yaml", Type: "oswestry", Title: "Oswestry", Patient: "p-1",
					Scores: scoredRecord(20, "Mínima | leve", types.RiskGreen), Success: true},
			),
			showScores: true,
			wantContains: []string{
				"### a.answers.yaml",
				"Type: `oswestry` (Oswestry)",
				"Patient: p-1",
				"| Total | 20 |",
				`| Classification | Mínima \| leve |`,
				"| Risco | 🟢 green |",
				"| 🟢 green | 1 |",
			},
		},
		{
			name: "failures listed",
			summary: newSummary(report.Result{File: "bad.answers.yaml",
				Errors: []types.ValidationError{{File: "bad.answers.yaml", Field: "q2", Message: "out of range", Source: types.SourceRange}}}),
			wantContains: []string{
				"Status: ❌",
				"#### Errors",
				"- **bad.answers.yaml** `q2` - out of range `[range]`",
				"✗ 1 documents failed",
			},
		},
		{
			name:    "successful validation hidden unless verbose",
			summary: newSummary(report.Result{File: "ok.answers.yaml", Success: true}),
			wantNotContains: []string{
				"### ok.answers.yaml",
			},
		},
		{
			name:         "verbose lists everything",
			summary:      newSummary(report.Result{File: "ok.answers.yaml", Success: true}),
			verbose:      true,
			wantContains: []string{"### ok.answers.yaml", "Status: ✅"},
		},
		{
			name:    "profile tables",
			summary: newSummary(profileResult()),
			wantContains: []string{
				"| FPI | Pronado (Plano) (12) | Neutro (0) |",
				"**Índice de minimalismo:** 49",
				"| Dor (Alívio) | 100 |",
				"**Índice recomendado:** 0-100",
				"**Modelos no intervalo:** Vivobarefoot Primus Flow, Vibram FiveFingers KSO",
				"| Marca | Modelo | Tipo | Índice |",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := formatMarkdown(t, tt.summary, tt.verbose, tt.showScores)
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
			for _, notWant := range tt.wantNotContains {
				if strings.Contains(out, notWant) {
					t.Errorf("output should not contain %q", notWant)
				}
			}
		})
	}
}

func TestMarkdownFormatter_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	var buf bytes.Buffer
	f := NewMarkdownFormatter(&buf, false, true, path)
	if err := f.Format(newSummary()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Error("expected nothing on the writer when an output file is set")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# PhysioScore Report") {
		t.Errorf("unexpected file content: %q", data)
	}
}

func TestRiskEmoji(t *testing.T) {
	tests := map[types.RiskColor]string{
		types.RiskGreen:  "🟢",
		types.RiskYellow: "🟡",
		types.RiskRed:    "🔴",
		"":               "⚪",
	}
	for c, want := range tests {
		if got := riskEmoji(c); got != want {
			t.Errorf("riskEmoji(%q) = %q, want %q", c, got, want)
		}
	}
}

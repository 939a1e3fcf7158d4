package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/store"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <patient> <type>",
	Short: "Compare the two latest submissions of a questionnaire",
	Long: `Compare the two most recent stored submissions of one questionnaire for a
patient and print the change of every numeric score.`,
	Args: cobra.ExactArgs(2),
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			return runSummary(cmd.Context(), os.Stdout, st, args[0], args[1], outputFormat)
		})
	}),
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(ctx context.Context, w io.Writer, st *store.Store, patient, typeID, format string) error {
	t, err := questionnaire.ParseType(typeID)
	if err != nil {
		return err
	}
	ev, err := st.Evolution(ctx, patient, t)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(ev, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "markdown":
		fmt.Fprintf(w, "# %s: %s\n\n", patient, t)
		fmt.Fprintf(w, "%s → %s\n\n", ev.Previous.SavedAt.Format(savedAtLayout), ev.Current.SavedAt.Format(savedAtLayout))
		fmt.Fprintln(w, "| Score | Previous | Current | Change |")
		fmt.Fprintln(w, "|-------|----------|---------|--------|")
		for _, d := range ev.Deltas {
			fmt.Fprintf(w, "| %s | %g | %g | %+g |\n", d.Label, d.Previous, d.Current, d.Change)
		}
		return nil
	}

	bold := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fmt.Fprintf(w, "%s  %s\n", bold.Render(patient), t)
	fmt.Fprintln(w, dim.Render(fmt.Sprintf("%s → %s",
		ev.Previous.SavedAt.Format(savedAtLayout), ev.Current.SavedAt.Format(savedAtLayout))))

	width := 0
	for _, d := range ev.Deltas {
		width = max(width, len([]rune(d.Label)))
	}
	for _, d := range ev.Deltas {
		fmt.Fprintf(w, "  %-*s %8g → %-8g %s\n", width, d.Label, d.Previous, d.Current, change(d.Change))
	}
	if a, b := riskOf(ev.Previous), riskOf(ev.Current); a != b {
		fmt.Fprintf(w, "  Risco: %s → %s\n", a, b)
	}
	return nil
}

func change(v float64) string {
	s := fmt.Sprintf("%+g", v)
	if v == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(s)
	}
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func riskOf(s store.Submission) string {
	if c, ok := s.Scores.RiskColor(); ok {
		return string(c)
	}
	return "-"
}

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
	"github.com/dotcommander/physioscore/internal/scoring"
	"github.com/dotcommander/physioscore/internal/store"
	"github.com/dotcommander/physioscore/internal/types"
)

const savedAtLayout = "2006-01-02 15:04"

var (
	historyType  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history <patient>",
	Short: "List the stored submissions of a patient",
	Long: `List the submissions stored for a patient with "physioscore score --save",
newest first, with the headline score and risk of each.`,
	Args: cobra.ExactArgs(1),
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			return runHistory(cmd.Context(), os.Stdout, st, args[0], historyType, historyLimit, outputFormat)
		})
	}),
}

func init() {
	historyCmd.Flags().StringVar(&historyType, "type", "", "Only show submissions of this questionnaire")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show at most this many submissions (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

// withStore opens the configured submission database for the duration of fn.
func withStore(fn func(st *store.Store) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Close()

	st, err := store.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}
	defer st.Close()
	return fn(st)
}

func runHistory(ctx context.Context, w io.Writer, st *store.Store, patient, typeID string, limit int, format string) error {
	var (
		subs []store.Submission
		err  error
	)
	if typeID != "" {
		t, perr := questionnaire.ParseType(typeID)
		if perr != nil {
			return perr
		}
		n := limit
		if n <= 0 {
			n = -1
		}
		subs, err = st.Recent(ctx, patient, t, n)
	} else {
		subs, err = st.List(ctx, patient)
		if limit > 0 && len(subs) > limit {
			subs = subs[:limit]
		}
	}
	if err != nil {
		return err
	}

	if format == "json" {
		if subs == nil {
			subs = []store.Submission{}
		}
		data, err := json.MarshalIndent(subs, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if len(subs) == 0 {
		fmt.Fprintf(w, "No submissions for %s\n", patient)
		return nil
	}

	if format == "markdown" {
		fmt.Fprintf(w, "# %s\n\n", patient)
		fmt.Fprintln(w, "| Saved | Type | Score | Risk | ID |")
		fmt.Fprintln(w, "|-------|------|-------|------|----|")
		for _, s := range subs {
			risk, _ := s.Scores.RiskColor()
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				s.SavedAt.Format(savedAtLayout), s.Type, headline(s.Scores), risk, s.ID)
		}
		return nil
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bold := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(w, bold.Render(patient))
	for _, s := range subs {
		line := fmt.Sprintf("  %s  %-18s %s", s.SavedAt.Format(savedAtLayout), s.Type, headline(s.Scores))
		if risk, ok := s.Scores.RiskColor(); ok {
			line += "  " + riskDot(risk)
		}
		fmt.Fprintln(w, line+"  "+dim.Render(s.ID))
	}
	return nil
}

// headline is the first numeric metric of a record.
func headline(r scoring.Record) string {
	for _, e := range r.Entries() {
		if _, ok := e.Value.Float(); ok {
			return fmt.Sprintf("%s: %s", e.Label, e.Value)
		}
	}
	return "-"
}

func riskDot(c types.RiskColor) string {
	color := map[types.RiskColor]string{
		types.RiskGreen:  "10",
		types.RiskYellow: "3",
		types.RiskRed:    "9",
	}[c]
	if color == "" {
		color = "7"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("● " + string(c))
}

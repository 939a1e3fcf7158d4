package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/physioscore/internal/questionnaire"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported questionnaires",
	Long: `List every questionnaire the engine can score, with its id, title and
number of questions. Use the id as the "type" of an answer document.`,
	Args: cobra.NoArgs,
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		return runList(os.Stdout, outputFormat)
	}),
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type listEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Items int    `json:"items"`
}

func runList(w io.Writer, format string) error {
	defs := questionnaire.All()
	entries := make([]listEntry, len(defs))
	width := 0
	for i, d := range defs {
		entries[i] = listEntry{ID: d.Type.String(), Title: d.Title, Items: len(d.Questions)}
		width = max(width, len(entries[i].ID))
	}

	if format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	idStyle := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s %s\n",
			idStyle.Render(fmt.Sprintf("%-*s", width, e.ID)),
			e.Title,
			dim.Render(fmt.Sprintf("(%d)", e.Items)))
	}
	return nil
}

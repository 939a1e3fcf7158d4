package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/physioscore/internal/questionnaire"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a questionnaire definition",
	Long: `Print the questions of one questionnaire with the value of every option,
or the range of visual analog items.

With --template a blank YAML answer document is printed instead, ready to be
filled in and passed to "physioscore score".`,
	Args: cobra.ExactArgs(1),
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		if showTemplate {
			return runTemplate(os.Stdout, args[0])
		}
		return runShow(os.Stdout, args[0], outputFormat)
	}),
}

var showTemplate bool

func init() {
	showCmd.Flags().BoolVar(&showTemplate, "template", false, "Print a blank answer document")
	rootCmd.AddCommand(showCmd)
}

func runShow(w io.Writer, id, format string) error {
	def, err := questionnaire.Get(id)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "markdown":
		fmt.Fprintf(w, "# %s\n\n%s\n\n", def.Title, def.Description)
		fmt.Fprintln(w, "| id | question | answers |")
		fmt.Fprintln(w, "|----|----------|---------|")
		for _, q := range def.Questions {
			fmt.Fprintf(w, "| %s | %s | %s |\n", q.ID, q.Text, answerRange(q))
		}
		return nil
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Fprintln(w, title.Render(def.Title))
	fmt.Fprintln(w, def.Description)
	if def.Instruction != "" {
		fmt.Fprintln(w, dim.Render(def.Instruction))
	}
	fmt.Fprintln(w)
	for _, q := range def.Questions {
		fmt.Fprintf(w, "%s  %s\n", lipgloss.NewStyle().Bold(true).Render(q.ID), q.Text)
		if !q.Kind.HasOptions() {
			fmt.Fprintf(w, "      %g..%g", q.Min, q.Max)
			if q.MinLabel != "" || q.MaxLabel != "" {
				fmt.Fprintf(w, "  (%s / %s)", q.MinLabel, q.MaxLabel)
			}
			fmt.Fprintln(w)
			continue
		}
		for _, o := range q.Options {
			fmt.Fprintf(w, "      %s %s\n", dim.Render(fmt.Sprintf("%g", o.Value)), o.Label)
		}
	}
	return nil
}

// answerRange summarizes the legal answers of q.
func answerRange(q questionnaire.Question) string {
	if !q.Kind.HasOptions() || len(q.Options) == 0 {
		return fmt.Sprintf("%g..%g", q.Min, q.Max)
	}
	lo, hi := q.Options[0].Value, q.Options[0].Value
	for _, o := range q.Options[1:] {
		lo, hi = min(lo, o.Value), max(hi, o.Value)
	}
	return fmt.Sprintf("%g..%g (%d options)", lo, hi, len(q.Options))
}

// runTemplate prints a blank answer document for a questionnaire.
func runTemplate(w io.Writer, id string) error {
	def, err := questionnaire.Get(id)
	if err != nil {
		return err
	}
	answers := yaml.Node{Kind: yaml.MappingNode}
	for _, q := range def.Questions {
		answers.Content = append(answers.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: q.ID, LineComment: q.Text},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: ""},
		)
	}
	doc := yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "type"},
		{Kind: yaml.ScalarNode, Value: def.Type.String()},
		{Kind: yaml.ScalarNode, Value: "patient"},
		{Kind: yaml.ScalarNode, Value: "", Style: yaml.DoubleQuotedStyle},
		{Kind: yaml.ScalarNode, Value: "answers"},
		&answers,
	}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("error encoding template: %w", err)
	}
	return enc.Close()
}

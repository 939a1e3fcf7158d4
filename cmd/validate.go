package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	validateType    string
	validateStaged  bool
	validateChanged bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Check documents against their schemas without scoring",
	Long: `Validate answer and measurement documents. Answer documents are checked
against the schema generated from their questionnaire, so a missing or
illegal answer is reported by question id. Nothing is scored or stored.`,
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		return runDocuments(cmd.Context(), os.Stdout, args, documentRun{
			command:      "validate",
			forcedType:   validateType,
			validateOnly: true,
			staged:       validateStaged,
			changed:      validateChanged,
		})
	}),
}

func init() {
	validateCmd.Flags().StringVar(&validateType, "type", "", "Treat explicit paths as this document type (answers|biomech)")
	validateCmd.Flags().BoolVar(&validateStaged, "staged", false, "Only validate documents staged in git (pre-commit hook)")
	validateCmd.Flags().BoolVar(&validateChanged, "changed", false, "Only validate documents with uncommitted git changes")
	validateCmd.MarkFlagsMutuallyExclusive("staged", "changed")
	rootCmd.AddCommand(validateCmd)
}

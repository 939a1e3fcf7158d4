package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/physioscore/internal/discovery"
)

var (
	scoreSave           bool
	scorePatient        string
	scoreType           string
	scoreBaseline       bool
	scoreCreateBaseline bool
	scoreBaselinePath   string
	scoreStaged         bool
	scoreChanged        bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [paths...]",
	Short: "Score questionnaire answer documents",
	Long: `Score answer documents. Without arguments every *.answers.yaml, *.answers.yml
and *.answers.json file under the root directory is scored.

Illegal answers are handled by --policy: reject fails the document, clamp
moves the answer to the nearest legal value with a warning, pass keeps it.

With --save each scored document is stored in the submission database so
"physioscore history" and "physioscore summary" can follow the patient.`,
	Example: `  physioscore score
  physioscore score visits/ana-2026-03.answers.yaml --save
  physioscore score --policy clamp --format json -o scores.json
  physioscore score --create-baseline
  physioscore score --staged --save`,
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		return runDocuments(cmd.Context(), os.Stdout, args, documentRun{
			command:        "score",
			only:           discovery.FileTypeAnswers,
			forcedType:     scoreType,
			save:           scoreSave,
			patient:        scorePatient,
			useBaseline:    scoreBaseline,
			createBaseline: scoreCreateBaseline,
			baselinePath:   scoreBaselinePath,
			staged:         scoreStaged,
			changed:        scoreChanged,
		})
	}),
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Store scored documents in the submission database")
	scoreCmd.Flags().StringVar(&scorePatient, "patient", "", "Patient id used for every document, overriding the document's own")
	scoreCmd.Flags().StringVar(&scoreType, "type", "", "Treat explicit paths as this document type (answers|biomech)")
	scoreCmd.Flags().BoolVar(&scoreBaseline, "baseline", false, "Hide known findings and report score drift against the baseline")
	scoreCmd.Flags().BoolVar(&scoreCreateBaseline, "create-baseline", false, "Record the current scores and findings as the baseline")
	scoreCmd.Flags().StringVar(&scoreBaselinePath, "baseline-path", DefaultBaselinePath, "Baseline file, relative to the root directory")
	scoreCmd.Flags().BoolVar(&scoreStaged, "staged", false, "Only score documents staged in git")
	scoreCmd.Flags().BoolVar(&scoreChanged, "changed", false, "Only score documents with uncommitted git changes")
	scoreCmd.MarkFlagsMutuallyExclusive("staged", "changed")
	rootCmd.AddCommand(scoreCmd)
}

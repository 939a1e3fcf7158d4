package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/physioscore/internal/discovery"
)

var profileCmd = &cobra.Command{
	Use:   "profile [paths...]",
	Short: "Build biomechanical profiles from measurement documents",
	Long: `Build a biomechanical profile from each measurement document: foot posture
index per side, footwear minimalism index, limb symmetry, Y-Balance composite
reach and the normalized radar used to compare capacities.`,
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		return runDocuments(cmd.Context(), os.Stdout, args, documentRun{
			command: "profile",
			only:    discovery.FileTypeBiomech,
		})
	}),
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [paths...]",
	Short: "Recommend a footwear minimalism range and matching shoes",
	Long: `Profile each measurement document, then recommend a minimalism index range
from the profile, the pain points and the injury status, and list catalog
shoes that suit the foot type and running experience.

The recommendation is a heuristic aid, not a prescription.`,
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		return runDocuments(cmd.Context(), os.Stdout, args, documentRun{
			command:   "recommend",
			only:      discovery.FileTypeBiomech,
			recommend: true,
		})
	}),
}

func init() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(recommendCmd)
}

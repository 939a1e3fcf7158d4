package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotcommander/physioscore/internal/config"
	"github.com/dotcommander/physioscore/internal/project"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .physioscorerc.json into the records directory",
	Long: `Write the current settings (defaults, environment and flags) to
.physioscorerc.json in the --root directory or the working directory.
Commands run anywhere below that directory then use it as their root.`,
	Args: cobra.NoArgs,
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		return runInit(os.Stdout, initForce)
	}),
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

func runInit(w io.Writer, force bool) error {
	dir := rootPath
	if dir == "" {
		dir = "."
	}
	if existing := project.ConfigFile(dir); existing != "" && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", existing)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	cfg.Root = "."

	path := filepath.Join(dir, config.ConfigFileNames[0])
	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

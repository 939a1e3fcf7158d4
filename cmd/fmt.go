package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/physioscore/internal/discovery"
	"github.com/dotcommander/physioscore/internal/format"
)

var (
	fmtCheck bool
	fmtWrite bool
	fmtDiff  bool
	fmtType  string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [paths...]",
	Short: "Format YAML documents canonically",
	Long: `Format answer and measurement documents written in YAML.

Answer documents are ordered type, patient, author, answers. Answers follow
the questionnaire's question order and get the question text as a comment.
Measurement documents list patient, author, eva, painPoints and
patientProfile first, then measurements alphabetically. Existing comments
are kept. JSON documents are left alone.

Without --write, --check or --diff the formatted documents are printed.`,
	Example: `  physioscore fmt --diff
  physioscore fmt -w visits/
  physioscore fmt --check`,
	Run: runCommand(func(cmd *cobra.Command, args []string) error {
		return runFmt(os.Stdout, args)
	}),
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit 1 if documents would change")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write changes in place")
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "Show what would change")
	fmtCmd.Flags().StringVar(&fmtType, "type", "", "Treat explicit paths as this document type (answers|biomech)")
	fmtCmd.MarkFlagsMutuallyExclusive("check", "write", "diff")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(w io.Writer, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Close()

	forced := discovery.FileTypeUnknown
	if fmtType != "" {
		if forced, err = discovery.ParseFileType(fmtType); err != nil {
			return err
		}
	}

	fd := discovery.NewFileDiscovery(cfg.Root, cfg.FollowSymlinks)
	var files []discovery.File
	if len(args) == 0 {
		files, err = fd.DiscoverFiles()
	} else {
		files, err = fd.Resolve(args, forced)
	}
	if err != nil {
		return err
	}

	var needsFormatting []string
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f.Path), ".json") {
			logger.Debugf("fmt", "skipping %s: JSON document", f.RelPath)
			continue
		}

		content := string(f.Contents)
		formatted, err := format.NewFormatter(f.Type).Format(content)
		if err != nil {
			logger.Warnf("fmt", "cannot format %s: %v", f.RelPath, err)
			continue
		}
		if content == formatted {
			logger.Debugf("fmt", "%s already formatted", f.RelPath)
			continue
		}
		needsFormatting = append(needsFormatting, f.RelPath)

		switch {
		case fmtCheck:
			fmt.Fprintf(w, "%s needs formatting\n", f.RelPath)
		case fmtDiff:
			fmt.Fprint(w, format.Diff(content, formatted, f.RelPath))
		case fmtWrite:
			if err := os.WriteFile(f.Path, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", f.Path, err)
			}
			logger.Infof("fmt", "formatted %s", f.RelPath)
		default:
			fmt.Fprint(w, formatted)
		}
	}

	if fmtCheck && len(needsFormatting) > 0 {
		return fmt.Errorf("%d documents need formatting", len(needsFormatting))
	}
	return nil
}

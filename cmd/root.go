package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/physioscore/internal/config"
	"github.com/dotcommander/physioscore/internal/logging"
	"github.com/dotcommander/physioscore/internal/project"
)

// Version is the CLI version string.
var Version = "1.0.0"

// exitFunc is replaced in tests.
var exitFunc = os.Exit

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	policyFlag   string
	dbPath       string
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:   "physioscore",
	Short: "Clinical questionnaire scoring and biomechanical profiling",
	Long: `PhysioScore scores standardized clinical questionnaires and builds
biomechanical profiles for physiotherapy assessments.

Answer documents (*.answers.yaml|yml|json) name a questionnaire and map
question ids to numeric answers. Measurement documents (*.biomech.yaml|yml|json)
hold foot posture, flexibility, strength, balance and footwear data.

Use "physioscore list" to see every supported questionnaire.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. An interrupt cancels the running batch.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Directory searched for documents and the .physioscorerc file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file (json and markdown)")
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "reject", "Handling of illegal answers (reject|clamp|pass)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "physioscore.db", "SQLite submission database")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this rotating file")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("policy", rootCmd.PersistentFlags().Lookup("policy"))
	_ = viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// runCommand wraps a command body in the shared error and exit handling.
func runCommand(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := run(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	}
}

// loadConfig reads configuration and installs the package logger. Without
// --root the nearest ancestor holding a .physioscorerc file is the root. The
// returned logger must be closed by the caller.
func loadConfig() (*config.Config, *logging.Logger, error) {
	root := rootPath
	if root == "" {
		if found, ok, err := project.FindRoot("."); err == nil && ok {
			root = found
		}
	}
	cfg, err := config.LoadConfig(root)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}
	logger := logging.Setup(logging.Options{
		Level:      logging.LevelFor(cfg.Quiet, cfg.Verbose),
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
	logger.Debugf("config", "root=%s format=%s policy=%s db=%s", cfg.Root, cfg.Format, cfg.Policy, cfg.DBPath)
	return cfg, logger, nil
}

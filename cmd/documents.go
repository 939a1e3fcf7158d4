package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dotcommander/physioscore/internal/baseline"
	"github.com/dotcommander/physioscore/internal/cli"
	"github.com/dotcommander/physioscore/internal/discovery"
	"github.com/dotcommander/physioscore/internal/git"
	"github.com/dotcommander/physioscore/internal/intake"
	"github.com/dotcommander/physioscore/internal/outputters"
	"github.com/dotcommander/physioscore/internal/store"
)

// DefaultBaselinePath is resolved against the root directory.
const DefaultBaselinePath = ".physioscore-baseline.json"

// documentRun describes what one document command does.
type documentRun struct {
	command      string
	only         discovery.FileType // FileTypeUnknown keeps every document
	forcedType   string
	validateOnly bool
	recommend    bool
	save         bool
	patient      string
	staged       bool // only documents staged in git
	changed      bool // only documents changed in git

	useBaseline    bool
	createBaseline bool
	baselinePath   string
}

// runDocuments is shared by score, validate, profile and recommend: it loads
// configuration, resolves documents, runs them and renders the summary.
func runDocuments(ctx context.Context, w io.Writer, args []string, run documentRun) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Close()

	policy, err := intake.ParsePolicy(cfg.Policy)
	if err != nil {
		return err
	}
	forced := discovery.FileTypeUnknown
	if run.forcedType != "" {
		if forced, err = discovery.ParseFileType(run.forcedType); err != nil {
			return err
		}
	}

	c, err := cli.NewContext(cli.Options{
		Root:           cfg.Root,
		FollowSymlinks: cfg.FollowSymlinks,
		Policy:         policy,
		Patient:        run.patient,
		Author:         cfg.Author,
		ValidateOnly:   run.validateOnly,
		Recommend:      run.recommend,
	})
	if err != nil {
		return err
	}
	c.Log = logger

	var files []discovery.File
	switch {
	case run.staged || run.changed:
		files, err = gitFiles(c, cfg.Root, run.staged, forced)
	default:
		files, err = c.Files(args, forced)
	}
	if err != nil {
		return err
	}
	if run.only != discovery.FileTypeUnknown {
		files = filterFiles(files, run.only)
	}
	logger.Debugf(run.command, "%d documents", len(files))

	baselineFile := run.baselinePath
	if baselineFile == "" {
		baselineFile = DefaultBaselinePath
	}
	if !filepath.IsAbs(baselineFile) {
		baselineFile = filepath.Join(cfg.Root, baselineFile)
	}
	if run.useBaseline && !run.createBaseline {
		if _, err := os.Stat(baselineFile); err == nil {
			b, err := baseline.LoadBaseline(baselineFile)
			if err != nil {
				logger.Warnf("baseline", "failed to load baseline: %v", err)
			} else {
				c.Baseline = b
			}
		} else {
			logger.Warnf("baseline", "no baseline at %s", baselineFile)
		}
	}

	if run.save {
		st, err := store.NewStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("error opening store: %w", err)
		}
		defer st.Close()
		c.Store = st
	}

	summary := cli.Run(ctx, c, files, run.command)

	if c.Baseline != nil {
		drifts, err := c.Baseline.Check(c.Entries())
		if err != nil {
			return fmt.Errorf("error checking baseline: %w", err)
		}
		for _, d := range drifts {
			if d.Status == baseline.StatusMissing {
				logger.Warnf("baseline", "%s is in the baseline but was not scored", d.Key)
			}
		}
	}

	if err := outputters.NewOutputterTo(cfg, w).Format(summary, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	// Write the baseline before failing on errors so the current state is accepted.
	if run.createBaseline {
		b, err := baseline.CreateBaseline(c.Entries(), c.Findings(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to create baseline: %w", err)
		}
		if err := b.SaveBaseline(baselineFile); err != nil {
			return fmt.Errorf("failed to save baseline: %w", err)
		}
		logger.Infof("baseline", "baseline created: %s (%d records, %d issues)", baselineFile, len(b.Records), len(b.Issues))
		return nil
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d of %d documents failed", summary.FailedFiles, summary.TotalFiles)
	}
	return nil
}

// gitFiles resolves the documents git reports as staged or changed. An empty
// report selects nothing rather than the whole root.
func gitFiles(c *cli.Context, root string, staged bool, forced discovery.FileType) ([]discovery.File, error) {
	list := git.ChangedDocuments
	if staged {
		list = git.StagedDocuments
	}
	paths, err := list(root)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		c.Log.Infof("git", "no changed documents under %s", root)
		return nil, nil
	}
	return c.Files(paths, forced)
}

func filterFiles(files []discovery.File, ft discovery.FileType) []discovery.File {
	var out []discovery.File
	for _, f := range files {
		if f.Type == ft {
			out = append(out, f)
		}
	}
	return out
}

// Package cli runs input documents through boundary validation, scoring and
// biomechanical profiling, and collects the outcome into a report summary.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dotcommander/physioscore/internal/baseline"
	"github.com/dotcommander/physioscore/internal/cue"
	"github.com/dotcommander/physioscore/internal/discovery"
	"github.com/dotcommander/physioscore/internal/footwear"
	"github.com/dotcommander/physioscore/internal/intake"
	"github.com/dotcommander/physioscore/internal/logging"
	"github.com/dotcommander/physioscore/internal/store"
	"github.com/dotcommander/physioscore/internal/types"
)

// Options select what a run does with each document.
type Options struct {
	Root           string
	FollowSymlinks bool
	Policy         intake.Policy
	Patient        string // overrides the patient named in documents
	Author         string // used when a document names no author
	ValidateOnly   bool
	Recommend      bool
}

// Saver persists scored submissions.
type Saver interface {
	Save(ctx context.Context, sub store.Submission) (store.Submission, error)
}

// Context holds the shared state of one run.
type Context struct {
	Options
	Validator  *cue.Validator
	Discoverer *discovery.FileDiscovery
	Catalog    footwear.Catalog
	Log        *logging.Logger

	// Baseline, when set, hides known findings and marks record drift.
	Baseline *baseline.Baseline
	// Store, when set, receives every scored submission.
	Store Saver

	now      func() time.Time
	entries  []baseline.Entry
	findings []types.ValidationError
	ignored  int
}

// NewContext compiles the schemas and prepares discovery under opts.Root.
func NewContext(opts Options) (*Context, error) {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Policy == "" {
		opts.Policy = intake.PolicyReject
	}

	validator := cue.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("error loading schemas: %w", err)
	}

	return &Context{
		Options:    opts,
		Validator:  validator,
		Discoverer: discovery.NewFileDiscovery(opts.Root, opts.FollowSymlinks),
		Catalog:    footwear.DefaultCatalog(),
		Log:        logging.Default(),
		now:        time.Now,
	}, nil
}

// SetClock replaces the clock used for summary timing.
func (c *Context) SetClock(now func() time.Time) {
	c.now = now
}

// Files resolves args into documents, or discovers every document under the
// root when args is empty.
func (c *Context) Files(args []string, forced discovery.FileType) ([]discovery.File, error) {
	if len(args) == 0 {
		files, err := c.Discoverer.DiscoverFiles()
		if err != nil {
			return nil, fmt.Errorf("error discovering files: %w", err)
		}
		return files, nil
	}
	return c.Discoverer.Resolve(args, forced)
}

// Entries returns the score records produced so far, keyed for baselines.
func (c *Context) Entries() []baseline.Entry {
	return append([]baseline.Entry(nil), c.entries...)
}

// Findings returns every finding produced so far, before baseline filtering.
func (c *Context) Findings() []types.ValidationError {
	return append([]types.ValidationError(nil), c.findings...)
}

// Ignored returns how many findings the baseline hid.
func (c *Context) Ignored() int {
	return c.ignored
}

func (c *Context) patientFor(doc string) string {
	if c.Patient != "" {
		return c.Patient
	}
	return doc
}

func (c *Context) authorFor(doc string) string {
	if doc != "" {
		return doc
	}
	return c.Author
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dotcommander/physioscore/internal/baseline"
	"github.com/dotcommander/physioscore/internal/biomech"
	"github.com/dotcommander/physioscore/internal/discovery"
	"github.com/dotcommander/physioscore/internal/footwear"
	"github.com/dotcommander/physioscore/internal/intake"
	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/report"
	"github.com/dotcommander/physioscore/internal/scoring"
	"github.com/dotcommander/physioscore/internal/store"
	"github.com/dotcommander/physioscore/internal/types"
)

// DocumentProcessor handles one kind of input document.
type DocumentProcessor interface {
	// Kind returns the document kind (types.KindAnswers or types.KindBiomech).
	Kind() string

	// FileType returns the discovery.FileType the processor accepts.
	FileType() discovery.FileType

	// Process validates the document and, unless the run is validate-only,
	// scores or profiles it.
	Process(ctx context.Context, c *Context, file discovery.File) report.Result
}

var processors = []DocumentProcessor{answerProcessor{}, biomechProcessor{}}

// ProcessorFor returns the processor of a file type.
func ProcessorFor(ft discovery.FileType) (DocumentProcessor, error) {
	for _, p := range processors {
		if p.FileType() == ft {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no processor for file type %s", ft)
}

// Run processes files in order and summarizes the results.
func Run(ctx context.Context, c *Context, files []discovery.File, command string) *report.Summary {
	summary := report.NewSummary(c.Root, command, c.now())
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			c.Log.Warnf("cli", "run interrupted: %v", err)
			break
		}
		start := c.now()
		var result report.Result
		p, err := ProcessorFor(file.Type)
		if err != nil {
			result = c.finish(report.Result{File: file.RelPath, Errors: []types.ValidationError{failure(file.RelPath, types.SourceRegistry, err)}})
		} else {
			result = p.Process(ctx, c, file)
		}
		result.Duration = c.now().Sub(start).Milliseconds()
		c.Log.Debugf("cli", "%s: %d errors, %d warnings", file.RelPath, len(result.Errors), len(result.Warnings))
		summary.Add(result)
	}
	summary.Finish(c.now())
	if c.ignored > 0 {
		c.Log.Infof("baseline", "%d known findings ignored", c.ignored)
	}
	return summary
}

// finish records findings, applies the baseline filter and settles success.
func (c *Context) finish(r report.Result) report.Result {
	c.findings = append(c.findings, r.Errors...)
	c.findings = append(c.findings, r.Warnings...)
	if c.Baseline != nil {
		r.Errors = c.filterKnown(r.Errors)
		r.Warnings = c.filterKnown(r.Warnings)
	}
	r.Success = len(r.Errors) == 0
	return r
}

func (c *Context) filterKnown(findings []types.ValidationError) []types.ValidationError {
	var kept []types.ValidationError
	for _, f := range findings {
		if c.Baseline.IsKnown(f) {
			c.ignored++
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// split files findings under errors or warnings by severity.
func split(r *report.Result, findings []types.ValidationError) {
	for _, f := range findings {
		if f.Severity == types.SeverityError {
			r.Errors = append(r.Errors, f)
		} else {
			r.Warnings = append(r.Warnings, f)
		}
	}
}

func failure(file, source string, err error) types.ValidationError {
	return types.ValidationError{
		File:     file,
		Message:  err.Error(),
		Severity: types.SeverityError,
		Source:   source,
	}
}

func withFile(findings []types.ValidationError, file string) []types.ValidationError {
	for i := range findings {
		findings[i].File = file
	}
	return findings
}

type answerProcessor struct{}

func (answerProcessor) Kind() string                 { return types.KindAnswers }
func (answerProcessor) FileType() discovery.FileType { return discovery.FileTypeAnswers }

func (answerProcessor) Process(ctx context.Context, c *Context, file discovery.File) report.Result {
	res := report.Result{File: file.RelPath, Kind: types.KindAnswers}

	doc, err := intake.ParseAnswers(file.RelPath, file.Contents)
	if err != nil {
		source := types.SourceSchema
		if errors.Is(err, questionnaire.ErrUnknownAssessmentType) {
			source = types.SourceRegistry
		}
		res.Errors = append(res.Errors, failure(file.RelPath, source, err))
		return c.finish(res)
	}
	def, err := questionnaire.Lookup(doc.Type)
	if err != nil {
		res.Errors = append(res.Errors, failure(file.RelPath, types.SourceRegistry, err))
		return c.finish(res)
	}
	res.Type = doc.Type.String()
	res.Title = def.Title
	res.Patient = c.patientFor(doc.Patient)

	schemaErrs, err := c.Validator.ValidateFile(file.RelPath, doc.Raw, types.KindAnswers)
	if err != nil {
		res.Errors = append(res.Errors, failure(file.RelPath, types.SourceSchema, err))
		return c.finish(res)
	}
	split(&res, schemaErrs)

	if c.ValidateOnly {
		answerErrs, err := c.Validator.ValidateAnswers(def, doc.Answers)
		if err != nil {
			answerErrs = append(answerErrs, failure(file.RelPath, types.SourceSchema, err))
		}
		split(&res, withFile(answerErrs, file.RelPath))
		return c.finish(res)
	}
	if len(res.Errors) > 0 {
		return c.finish(res)
	}

	answers, findings, err := intake.Apply(def, doc.Answers, c.Policy)
	split(&res, withFile(findings, file.RelPath))
	if err != nil {
		return c.finish(res)
	}

	rec, err := scoring.Score(doc.Type, answers)
	if err != nil {
		res.Errors = append(res.Errors, failure(file.RelPath, types.SourceRegistry, err))
		return c.finish(res)
	}
	res.Scores = &rec

	entry := baseline.Entry{Key: file.RelPath + "|" + res.Type, Record: rec}
	c.entries = append(c.entries, entry)
	if c.Baseline != nil {
		if st, err := c.Baseline.Status(entry); err == nil {
			res.Drift = string(st)
		}
	}

	if c.Store != nil {
		c.save(ctx, &res, doc, answers, rec)
	}
	return c.finish(res)
}

func (c *Context) save(ctx context.Context, res *report.Result, doc *intake.AnswerDocument, answers questionnaire.Answers, rec scoring.Record) {
	if res.Patient == "" {
		res.Warnings = append(res.Warnings, types.ValidationError{
			File:     res.File,
			Message:  "no patient given; submission not saved",
			Severity: types.SeverityWarning,
			Source:   types.SourceRegistry,
		})
		return
	}
	sub, err := c.Store.Save(ctx, store.Submission{
		Patient: res.Patient,
		Type:    doc.Type,
		Author:  c.authorFor(doc.Author),
		Answers: answers,
		Scores:  rec,
	})
	if err != nil {
		c.Log.Errorf("store", "save %s: %v", res.File, err)
		res.Errors = append(res.Errors, failure(res.File, types.SourceRegistry, err))
		return
	}
	res.SubmissionID = sub.ID
	c.Log.Infof("store", "saved %s for %s as %s", res.Type, res.Patient, sub.ID)
}

type biomechProcessor struct{}

func (biomechProcessor) Kind() string                 { return types.KindBiomech }
func (biomechProcessor) FileType() discovery.FileType { return discovery.FileTypeBiomech }

func (biomechProcessor) Process(_ context.Context, c *Context, file discovery.File) report.Result {
	res := report.Result{File: file.RelPath, Kind: types.KindBiomech}

	doc, err := intake.ParseBiomech(file.RelPath, file.Contents)
	if err != nil {
		res.Errors = append(res.Errors, failure(file.RelPath, types.SourceSchema, err))
		return c.finish(res)
	}
	res.Patient = c.patientFor(doc.Patient)

	schemaErrs, err := c.Validator.ValidateFile(file.RelPath, doc.Raw, types.KindBiomech)
	if err != nil {
		res.Errors = append(res.Errors, failure(file.RelPath, types.SourceSchema, err))
		return c.finish(res)
	}
	split(&res, schemaErrs)
	if c.ValidateOnly || len(res.Errors) > 0 {
		return c.finish(res)
	}

	profile := biomech.Analyze(doc.Record)
	res.Profile = &profile

	if c.Recommend {
		rec := footwear.Recommend(doc.Profile, doc.PainPoints)
		res.Recommendation = &rec
		res.InRange = c.Catalog.InRange(rec.IndexRange[0], rec.IndexRange[1])
		foot := footwear.FootTypeFromFPI(profile.FootPosture.Right.Sum)
		res.Shoes = c.Catalog.RecommendShoes(foot, footwear.LevelFor(doc.Profile.Experience))
	}
	return c.finish(res)
}

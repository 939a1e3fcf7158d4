package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/physioscore/internal/baseline"
	"github.com/dotcommander/physioscore/internal/discovery"
	"github.com/dotcommander/physioscore/internal/intake"
	"github.com/dotcommander/physioscore/internal/logging"
	"github.com/dotcommander/physioscore/internal/store"
	"github.com/dotcommander/physioscore/internal/types"
)

type fakeSaver struct {
	saved []store.Submission
	err   error
}

func (f *fakeSaver) Save(_ context.Context, sub store.Submission) (store.Submission, error) {
	if f.err != nil {
		return store.Submission{}, f.err
	}
	sub.ID = fmt.Sprintf("sub-%d", len(f.saved)+1)
	f.saved = append(f.saved, sub)
	return sub, nil
}

func newTestContext(t *testing.T, opts Options) *Context {
	t.Helper()
	c, err := NewContext(opts)
	require.NoError(t, err)
	c.Log = logging.Discard()
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time {
		now := clock
		clock = clock.Add(10 * time.Millisecond)
		return now
	})
	return c
}

func oswestryDoc(patient string, q1 string) []byte {
	var b strings.Builder
	b.WriteString("type: oswestry\n")
	if patient != "" {
		fmt.Fprintf(&b, "patient: %s\n", patient)
	}
	b.WriteString("answers:\n")
	fmt.Fprintf(&b, "  q1: %s\n", q1)
	for i := 2; i <= 10; i++ {
		fmt.Fprintf(&b, "  q%d: 2\n", i)
	}
	return []byte(b.String())
}

func answersFile(name string, content []byte) discovery.File {
	return discovery.File{RelPath: name, Type: discovery.FileTypeAnswers, Contents: content}
}

func biomechFile(name, content string) discovery.File {
	return discovery.File{RelPath: name, Type: discovery.FileTypeBiomech, Contents: []byte(content)}
}

func TestRunAnswers(t *testing.T) {
	tests := []struct {
		name         string
		policy       intake.Policy
		validateOnly bool
		content      []byte
		wantSuccess  bool
		wantScores   bool
		wantErrors   int
		wantWarnings int
		wantSource   string
	}{
		{
			name:        "valid document is scored",
			policy:      intake.PolicyReject,
			content:     oswestryDoc("p-1", "2"),
			wantSuccess: true,
			wantScores:  true,
		},
		{
			name:       "reject fails out of range answer",
			policy:     intake.PolicyReject,
			content:    oswestryDoc("p-1", "9"),
			wantErrors: 1,
			wantSource: types.SourceRange,
		},
		{
			name:         "clamp warns and scores",
			policy:       intake.PolicyClamp,
			content:      oswestryDoc("p-1", "9"),
			wantSuccess:  true,
			wantScores:   true,
			wantWarnings: 1,
		},
		{
			name:         "validate only reports without scoring",
			policy:       intake.PolicyReject,
			validateOnly: true,
			content:      oswestryDoc("p-1", "9"),
			wantErrors:   1,
			wantSource:   types.SourceSchema,
		},
		{
			name:       "unknown questionnaire",
			policy:     intake.PolicyReject,
			content:    []byte("type: foo\nanswers: {q1: 1}\n"),
			wantErrors: 1,
			wantSource: types.SourceRegistry,
		},
		{
			name:       "malformed yaml",
			policy:     intake.PolicyReject,
			content:    []byte("type: [oswestry\n"),
			wantErrors: 1,
			wantSource: types.SourceSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, Options{Policy: tt.policy, ValidateOnly: tt.validateOnly})
			summary := Run(context.Background(), c, []discovery.File{answersFile("a.answers.yaml", tt.content)}, "score")

			require.Len(t, summary.Results, 1)
			r := summary.Results[0]
			assert.Equal(t, tt.wantSuccess, r.Success)
			assert.Equal(t, tt.wantScores, r.Scores != nil)
			assert.Len(t, r.Errors, tt.wantErrors)
			assert.Len(t, r.Warnings, tt.wantWarnings)
			if tt.wantSource != "" && len(r.Errors) > 0 {
				assert.Equal(t, tt.wantSource, r.Errors[0].Source)
				assert.Equal(t, "a.answers.yaml", r.Errors[0].File)
			}
			assert.Equal(t, int64(10), r.Duration)
		})
	}
}

func TestRunScoresRecord(t *testing.T) {
	c := newTestContext(t, Options{})
	summary := Run(context.Background(), c, []discovery.File{answersFile("a.answers.yaml", oswestryDoc("p-1", "2"))}, "score")

	r := summary.Results[0]
	require.NotNil(t, r.Scores)
	total, ok := r.Scores.Get("total")
	require.True(t, ok)
	f, _ := total.Float()
	assert.Equal(t, 20.0, f)
	assert.Equal(t, "oswestry", r.Type)
	assert.Equal(t, "p-1", r.Patient)
	assert.NotEmpty(t, r.Title)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "a.answers.yaml|oswestry", entries[0].Key)
}

func TestRunSavesSubmissions(t *testing.T) {
	saver := &fakeSaver{}
	c := newTestContext(t, Options{Author: "dr-x"})
	c.Store = saver

	summary := Run(context.Background(), c, []discovery.File{
		answersFile("a.answers.yaml", oswestryDoc("p-1", "2")),
		answersFile("b.answers.yaml", oswestryDoc("", "2")),
	}, "score")

	require.Len(t, saver.saved, 1)
	assert.Equal(t, "p-1", saver.saved[0].Patient)
	assert.Equal(t, "dr-x", saver.saved[0].Author)
	assert.Equal(t, "sub-1", summary.Results[0].SubmissionID)

	require.Len(t, summary.Results[1].Warnings, 1)
	assert.Contains(t, summary.Results[1].Warnings[0].Message, "not saved")
	assert.True(t, summary.Results[1].Success)
}

func TestRunPatientOverrideAndSaveFailure(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	c := newTestContext(t, Options{Patient: "override"})
	c.Store = saver

	summary := Run(context.Background(), c, []discovery.File{answersFile("a.answers.yaml", oswestryDoc("p-1", "2"))}, "score")
	r := summary.Results[0]
	assert.Equal(t, "override", r.Patient)
	assert.False(t, r.Success)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Message, "disk full")
}

func TestRunBaseline(t *testing.T) {
	files := []discovery.File{
		answersFile("a.answers.yaml", oswestryDoc("p-1", "2")),
		answersFile("bad.answers.yaml", oswestryDoc("p-1", "9")),
	}
	first := newTestContext(t, Options{})
	Run(context.Background(), first, files, "score")

	b, err := baseline.CreateBaseline(first.Entries(), first.Findings(), time.Now())
	require.NoError(t, err)

	second := newTestContext(t, Options{})
	second.Baseline = b
	changed := []discovery.File{
		answersFile("a.answers.yaml", oswestryDoc("p-1", "4")),
		answersFile("bad.answers.yaml", oswestryDoc("p-1", "9")),
	}
	summary := Run(context.Background(), second, changed, "score")

	assert.Equal(t, string(baseline.StatusChanged), summary.Results[0].Drift)
	assert.Equal(t, 1, summary.Drifted)
	assert.Empty(t, summary.Results[1].Errors, "known finding is hidden")
	assert.True(t, summary.Results[1].Success)
	assert.Equal(t, 1, second.Ignored())
	assert.Len(t, second.Findings(), 1, "findings are recorded before filtering")
}

func TestRunBiomech(t *testing.T) {
	doc := `patient: ana
eva: 3
fpi:
  left: [2, 2, 2, 2, 0, 0]
  right: [2, 2, 2, 2, 0, 0]
painPoints:
  knee: {left: true}
patientProfile:
  injuryStatus: persistent
  experience: beginner
`
	c := newTestContext(t, Options{Recommend: true})
	summary := Run(context.Background(), c, []discovery.File{biomechFile("ana.biomech.yaml", doc)}, "recommend")

	r := summary.Results[0]
	require.True(t, r.Success, "errors: %v", r.Errors)
	require.NotNil(t, r.Profile)
	assert.Equal(t, "ana", r.Patient)
	assert.Equal(t, 8.0, r.Profile.FootPosture.Right.Sum)
	require.NotNil(t, r.Recommendation)
	assert.Equal(t, [2]int{80, 100}, r.Recommendation.IndexRange)
	require.NotEmpty(t, r.InRange)
	for _, m := range r.InRange {
		assert.GreaterOrEqual(t, m.MinimalismIndex, 80, m.ID)
	}
	assert.Len(t, r.Shoes, 3)
	for _, s := range r.Shoes {
		assert.Contains(t, []string{"stability", "maximalist", "road"}, string(s.Type))
	}
}

func TestRunBiomechSchemaError(t *testing.T) {
	c := newTestContext(t, Options{})
	summary := Run(context.Background(), c, []discovery.File{biomechFile("x.biomech.yaml", "eva: 14\n")}, "profile")

	r := summary.Results[0]
	assert.False(t, r.Success)
	assert.Nil(t, r.Profile)
	require.NotEmpty(t, r.Errors)
	assert.Equal(t, types.SourceSchema, r.Errors[0].Source)
}

func TestRunProfileWithoutRecommend(t *testing.T) {
	c := newTestContext(t, Options{})
	summary := Run(context.Background(), c, []discovery.File{biomechFile("x.biomech.yaml", "eva: 2\n")}, "profile")

	r := summary.Results[0]
	require.NotNil(t, r.Profile)
	assert.Nil(t, r.Recommendation)
	assert.Empty(t, r.InRange)
	assert.Empty(t, r.Shoes)
}

func TestRunUnknownFileType(t *testing.T) {
	c := newTestContext(t, Options{})
	summary := Run(context.Background(), c, []discovery.File{{RelPath: "x.txt"}}, "score")
	assert.Equal(t, 1, summary.FailedFiles)
	assert.Equal(t, types.SourceRegistry, summary.Results[0].Errors[0].Source)
}

func TestRunStopsOnCancel(t *testing.T) {
	c := newTestContext(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary := Run(ctx, c, []discovery.File{answersFile("a.answers.yaml", oswestryDoc("p", "1"))}, "score")
	assert.Zero(t, summary.TotalFiles)
}

func TestProcessorFor(t *testing.T) {
	p, err := ProcessorFor(discovery.FileTypeAnswers)
	require.NoError(t, err)
	assert.Equal(t, types.KindAnswers, p.Kind())

	p, err = ProcessorFor(discovery.FileTypeBiomech)
	require.NoError(t, err)
	assert.Equal(t, types.KindBiomech, p.Kind())

	_, err = ProcessorFor(discovery.FileTypeUnknown)
	assert.Error(t, err)
}

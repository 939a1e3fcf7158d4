package intake

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/physioscore/internal/biomech"
	"github.com/dotcommander/physioscore/internal/footwear"
	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/types"
)

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    questionnaire.Answers
		typ     questionnaire.Type
		patient string
	}{
		{
			name:    "yaml",
			path:    "a.answers.yaml",
			content: "type: oswestry\npatient: p-001\nauthor: dr-x\nanswers:\n  q1: 3\n  q2: 2.5\n",
			want:    questionnaire.Answers{"q1": 3, "q2": 2.5},
			typ:     questionnaire.Oswestry,
			patient: "p-001",
		},
		{
			name:    "json",
			path:    "b.answers.json",
			content: `{"type":"lefs","answers":{"q1":4}}`,
			want:    questionnaire.Answers{"q1": 4},
			typ:     questionnaire.LEFS,
		},
		{
			name:    "numeric patient id",
			path:    "c.answers.yml",
			content: "type: ndi\npatient: 42\nanswers: {}\n",
			want:    questionnaire.Answers{},
			typ:     questionnaire.NDI,
			patient: "42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseAnswers(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.typ, doc.Type)
			assert.Equal(t, tt.want, doc.Answers)
			assert.Equal(t, tt.patient, doc.Patient)
			assert.Equal(t, tt.path, doc.Path)
			assert.NotNil(t, doc.Raw)
		})
	}
}

func TestParseAnswersErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		target  error
	}{
		{"unknown type", "x.yaml", "type: insoles_40d\nanswers: {}\n", questionnaire.ErrUnknownAssessmentType},
		{"missing type", "x.yaml", "answers: {}\n", questionnaire.ErrUnknownAssessmentType},
		{"answers not a map", "x.yaml", "type: oswestry\nanswers: [1, 2]\n", ErrMalformed},
		{"answer not a number", "x.yaml", "type: oswestry\nanswers: {q1: high}\n", ErrMalformed},
		{"bad yaml", "x.yaml", "type: [\n", ErrMalformed},
		{"bad json", "x.json", "{", ErrMalformed},
		{"empty", "x.yaml", "", ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnswers(tt.path, []byte(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestParseBiomech(t *testing.T) {
	content := `
patient: p-9
eva: 4
fpi:
  right: [2, 2, 2, 1, 1, 1]
flexibility:
  lunge: {left: 30}
painPoints:
  knee: {left: true}
patientProfile:
  injuryStatus: persistent
  goals: [Performance]
`
	doc, err := ParseBiomech("p.biomech.yaml", []byte(content))
	require.NoError(t, err)

	assert.Equal(t, "p-9", doc.Patient)
	assert.Equal(t, 4.0, doc.EVA)
	assert.Equal(t, []float64{2, 2, 2, 1, 1, 1}, doc.FPI.Right)
	assert.Len(t, doc.FPI.Left, 6, "defaults survive for absent fields")
	require.NotNil(t, doc.Flexibility.Lunge.Left)
	assert.Equal(t, 30.0, *doc.Flexibility.Lunge.Left)
	assert.Equal(t, 110.0, *doc.Flexibility.Hamstring.Left)
	assert.True(t, doc.PainPoints.Any(types.ZoneKnee))
	assert.Equal(t, footwear.InjuryPersistent, doc.Profile.InjuryStatus)
	assert.Equal(t, footwear.ExperienceRecreational, doc.Profile.Experience)
	assert.Equal(t, []string{"Performance"}, doc.Profile.Goals)
	assert.Equal(t, biomech.NewRecord().CurrentShoe, doc.CurrentShoe)
}

func TestParseBiomechJSON(t *testing.T) {
	doc, err := ParseBiomech("p.biomech.json", []byte(`{"eva": 2, "patientProfile": {"experience": "beginner"}}`))
	require.NoError(t, err)
	assert.Equal(t, 2.0, doc.EVA)
	assert.Equal(t, footwear.ExperienceBeginner, doc.Profile.Experience)
	assert.Equal(t, footwear.InjuryNone, doc.Profile.InjuryStatus)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyReject, false},
		{"reject", PolicyReject, false},
		{" Clamp ", PolicyClamp, false},
		{"pass", PolicyPass, false},
		{"ignore", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	oswestry, err := questionnaire.Lookup(questionnaire.Oswestry)
	require.NoError(t, err)
	mcgill, err := questionnaire.Lookup(questionnaire.McGillShort)
	require.NoError(t, err)

	tests := []struct {
		name     string
		def      questionnaire.Definition
		answers  questionnaire.Answers
		policy   Policy
		want     questionnaire.Answers
		findings int
		wantErr  bool
	}{
		{
			name:    "reject clean",
			def:     oswestry,
			answers: questionnaire.Answers{"q1": 5, "q2": 0},
			policy:  PolicyReject,
			want:    questionnaire.Answers{"q1": 5, "q2": 0},
		},
		{
			name:     "reject out of range",
			def:      oswestry,
			answers:  questionnaire.Answers{"q1": 7, "q2": 0, "q99": 1},
			policy:   PolicyReject,
			findings: 2,
			wantErr:  true,
		},
		{
			name:     "clamp snaps options and drops unknown ids",
			def:      oswestry,
			answers:  questionnaire.Answers{"q1": 7, "q2": 1.4, "q99": 1},
			policy:   PolicyClamp,
			want:     questionnaire.Answers{"q1": 5, "q2": 1},
			findings: 3,
		},
		{
			name:     "clamp vas",
			def:      mcgill,
			answers:  questionnaire.Answers{"vas": 12.5},
			policy:   PolicyClamp,
			want:     questionnaire.Answers{"vas": 10},
			findings: 1,
		},
		{
			name:    "pass",
			def:     oswestry,
			answers: questionnaire.Answers{"q1": 7, "q99": 1},
			policy:  PolicyPass,
			want:    questionnaire.Answers{"q1": 7, "q99": 1},
		},
		{
			name:     "pass still rejects infinity",
			def:      oswestry,
			answers:  questionnaire.Answers{"q1": math.Inf(-1), "q2": 1},
			policy:   PolicyPass,
			findings: 1,
			wantErr:  true,
		},
		{
			name:     "clamp rejects infinity",
			def:      mcgill,
			answers:  questionnaire.Answers{"vas": math.Inf(1)},
			policy:   PolicyClamp,
			findings: 1,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.answers.Clone()
			got, findings, err := Apply(tt.def, tt.answers, tt.policy)
			assert.Equal(t, before, tt.answers, "input must not be mutated")
			assert.Len(t, findings, tt.findings)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrOutOfRange)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyRejectsNaNUnderEveryPolicy(t *testing.T) {
	def, err := questionnaire.Lookup(questionnaire.Oswestry)
	require.NoError(t, err)
	for _, p := range []Policy{PolicyReject, PolicyClamp, PolicyPass} {
		got, findings, err := Apply(def, questionnaire.Answers{"q1": math.NaN()}, p)
		require.ErrorIs(t, err, ErrOutOfRange, p)
		assert.Nil(t, got, p)
		require.Len(t, findings, 1, p)
		assert.Equal(t, "q1", findings[0].Field)
		assert.Equal(t, types.SeverityError, findings[0].Severity)
		assert.Equal(t, "value NaN is not a finite number", findings[0].Message)
	}
}

func TestApplyFindingsAreOrdered(t *testing.T) {
	def, err := questionnaire.Lookup(questionnaire.Oswestry)
	require.NoError(t, err)
	_, findings, _ := Apply(def, questionnaire.Answers{"q3": 9, "q1": 9, "q2": 9}, PolicyReject)
	require.Len(t, findings, 3)
	assert.Equal(t, "q1", findings[0].Field)
	assert.Equal(t, "q3", findings[2].Field)
	assert.Equal(t, types.SeverityError, findings[0].Severity)
	assert.Equal(t, types.SourceRange, findings[0].Source)
}

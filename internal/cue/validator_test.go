package cue

import (
	"strings"
	"testing"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/types"
)

func loaded(t *testing.T) *Validator {
	t.Helper()
	v := NewValidator()
	if err := v.LoadSchemas(); err != nil {
		t.Fatalf("LoadSchemas failed: %v", err)
	}
	return v
}

// TestLoadSchemas tests loading embedded CUE schemas
func TestLoadSchemas(t *testing.T) {
	v := loaded(t)
	for _, name := range []string{"biomech", "document"} {
		if _, ok := v.schemas[name]; !ok {
			t.Errorf("Expected schema %q to be loaded", name)
		}
	}
}

func TestValidateDocument(t *testing.T) {
	v := loaded(t)
	tests := []struct {
		name      string
		data      map[string]any
		wantError bool
		field     string
	}{
		{
			name: "valid",
			data: map[string]any{"type": "oswestry", "patient": "p-1", "answers": map[string]any{"q1": 3}},
		},
		{
			name: "yaml style map",
			data: map[string]any{"type": "ndi", "answers": map[any]any{"q1": 2.0}},
		},
		{
			name:      "missing type",
			data:      map[string]any{"answers": map[string]any{"q1": 3}},
			wantError: true,
		},
		{
			name:      "missing answers",
			data:      map[string]any{"type": "oswestry"},
			wantError: true,
			field:     "answers",
		},
		{
			name:      "non numeric answer",
			data:      map[string]any{"type": "oswestry", "answers": map[string]any{"q1": "three"}},
			wantError: true,
		},
		{
			name:      "empty type",
			data:      map[string]any{"type": "", "answers": map[string]any{}},
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := v.ValidateDocument(tt.data)
			if err != nil {
				t.Fatalf("ValidateDocument() error = %v", err)
			}
			if hasErrors := len(errs) > 0; hasErrors != tt.wantError {
				t.Errorf("ValidateDocument() errors = %v, wantError %v", errs, tt.wantError)
			}
			if tt.field != "" && (len(errs) != 1 || errs[0].Field != tt.field) {
				t.Errorf("ValidateDocument() errors = %v, want one finding for %q", errs, tt.field)
			}
		})
	}
}

func TestValidateBiomech(t *testing.T) {
	v := loaded(t)
	tests := []struct {
		name      string
		data      map[string]any
		wantError bool
		field     string
	}{
		{
			name: "valid",
			data: map[string]any{
				"eva": 3,
				"fpi": map[string]any{"left": []any{2, 1, 0, -1, -2, 0}},
				"currentShoe": map[string]any{
					"specs":        map[string]any{"weight": 250, "drop": 8, "stack": 20},
					"minScoreData": map[string]any{"flexLong": 2.5},
				},
				"painPoints":     map[string]any{"knee": map[string]any{"left": true}},
				"patientProfile": map[string]any{"injuryStatus": "acute", "goals": []any{"Performance"}},
				"notes":          "extra fields are allowed",
			},
		},
		{
			name:      "fpi out of range",
			data:      map[string]any{"fpi": map[string]any{"right": []any{3, 0, 0, 0, 0, 0}}},
			wantError: true,
			field:     "fpi.right",
		},
		{
			name:      "eva too high",
			data:      map[string]any{"eva": 11},
			wantError: true,
			field:     "eva",
		},
		{
			name:      "unknown injury status",
			data:      map[string]any{"patientProfile": map[string]any{"injuryStatus": "chronic"}},
			wantError: true,
			field:     "patientProfile.injuryStatus",
		},
		{
			name:      "trials must have three values",
			data:      map[string]any{"yBalance": map[string]any{"anterior": map[string]any{"left": []any{60, 61}}}},
			wantError: true,
		},
		{
			name:      "pain side must be bool",
			data:      map[string]any{"painPoints": map[string]any{"hip": map[string]any{"left": "yes"}}},
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := v.ValidateBiomech(tt.data)
			if err != nil {
				t.Fatalf("ValidateBiomech() error = %v", err)
			}
			if hasErrors := len(errs) > 0; hasErrors != tt.wantError {
				t.Fatalf("ValidateBiomech() errors = %v, wantError %v", errs, tt.wantError)
			}
			if tt.field == "" {
				return
			}
			found := false
			for _, e := range errs {
				if strings.HasPrefix(e.Field, tt.field) {
					found = true
				}
				if strings.HasPrefix(e.Field, "#") {
					t.Errorf("field %q keeps the definition selector", e.Field)
				}
				if e.Source != types.SourceSchema || e.Severity != types.SeverityError {
					t.Errorf("unexpected finding metadata: %+v", e)
				}
			}
			if !found {
				t.Errorf("no finding for field %q in %v", tt.field, errs)
			}
		})
	}
}

func TestValidateAnswers(t *testing.T) {
	v := loaded(t)
	tests := []struct {
		name      string
		typ       questionnaire.Type
		answers   questionnaire.Answers
		wantError bool
	}{
		{"declared options", questionnaire.Oswestry, questionnaire.Answers{"q1": 0, "q10": 5}, false},
		{"undeclared option", questionnaire.Oswestry, questionnaire.Answers{"q1": 6}, true},
		{"fractional option", questionnaire.RolandMorris, questionnaire.Answers{"q1": 0.5}, true},
		{"unknown question", questionnaire.RolandMorris, questionnaire.Answers{"q25": 1}, true},
		{"vas inside bounds", questionnaire.McGillShort, questionnaire.Answers{"vas": 7.5, "ppi": 2}, false},
		{"vas outside bounds", questionnaire.McGillShort, questionnaire.Answers{"vas": 10.5}, true},
		{"ihot side and items", questionnaire.IHOT33, questionnaire.Answers{questionnaire.IHOTSideKey: 2, "q1": 55.5}, false},
		{"partial answers", questionnaire.QuickDASH, questionnaire.Answers{"q1": 3}, false},
		{"empty", questionnaire.LEFS, questionnaire.Answers{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := questionnaire.Lookup(tt.typ)
			if err != nil {
				t.Fatal(err)
			}
			errs, err := v.ValidateAnswers(def, tt.answers)
			if err != nil {
				t.Fatalf("ValidateAnswers() error = %v", err)
			}
			if hasErrors := len(errs) > 0; hasErrors != tt.wantError {
				t.Errorf("ValidateAnswers() errors = %v, wantError %v", errs, tt.wantError)
			}
		})
	}
}

func TestValidateAnswersOneFindingPerAnswer(t *testing.T) {
	v := loaded(t)
	def, err := questionnaire.Lookup(questionnaire.Oswestry)
	if err != nil {
		t.Fatal(err)
	}
	errs, err := v.ValidateAnswers(def, questionnaire.Answers{"q1": 9, "q2": 1, "q99": 0})
	if err != nil {
		t.Fatalf("ValidateAnswers() error = %v", err)
	}
	want := map[string]string{
		"q1":  "value 9 is not a legal answer (one of 0, 1, 2, 3, 4, 5)",
		"q99": `unknown question "q99" for oswestry`,
	}
	if len(errs) != len(want) {
		t.Fatalf("ValidateAnswers() = %d findings %v, want %d", len(errs), errs, len(want))
	}
	for _, e := range errs {
		if e.Message != want[e.Field] {
			t.Errorf("finding for %q = %q, want %q", e.Field, e.Message, want[e.Field])
		}
	}
}

func TestFieldPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{[]string{"#Biomech", "eva"}, "eva"},
		{[]string{"#Biomech", "fpi", "right", "0"}, "fpi.right.0"},
		{[]string{`"q1"`}, "q1"},
		{[]string{"answers"}, "answers"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := fieldPath(tt.path); got != tt.want {
			t.Errorf("fieldPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestAnswerSchemaCompilesForEveryType(t *testing.T) {
	v := loaded(t)
	for _, def := range questionnaire.All() {
		if _, err := v.answerSchema(def); err != nil {
			t.Errorf("%s: %v", def.Type, err)
		}
	}
}

func TestAnswerSchemaSource(t *testing.T) {
	def, err := questionnaire.Lookup(questionnaire.StartBack)
	if err != nil {
		t.Fatal(err)
	}
	src := AnswerSchemaSource(def)
	if !strings.Contains(src, `"q9"?: 0 | 1`+"\n") {
		t.Errorf("q9 options not deduplicated:\n%s", src)
	}
	if !strings.HasPrefix(src, "close({") {
		t.Errorf("schema is not closed:\n%s", src)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{0: "0", 5: "5", -2: "-2", 0.5: "0.5", 100: "100"}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateFile(t *testing.T) {
	v := loaded(t)
	errs, err := v.ValidateFile("a.answers.yaml", map[string]any{"answers": map[string]any{}}, types.KindAnswers)
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) == 0 || errs[0].File != "a.answers.yaml" {
		t.Errorf("expected findings tagged with file, got %v", errs)
	}

	if _, err := v.ValidateFile("x", nil, "settings"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestValidateWithoutSchemas(t *testing.T) {
	v := NewValidator()
	if _, err := v.ValidateBiomech(map[string]any{}); err == nil {
		t.Error("expected error when schemas are not loaded")
	}
}

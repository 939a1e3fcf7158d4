package cue

import (
	"embed"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator handles CUE validation of input documents
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value

	mu      sync.Mutex
	answers map[questionnaire.Type]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
		answers: make(map[questionnaire.Type]cue.Value),
	}
}

// LoadSchemas compiles the embedded schema files, keyed by base name
// (biomech.cue -> biomech).
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}
		v.schemas[strings.TrimSuffix(entry.Name(), ".cue")] = inst
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}
	return nil
}

// ValidateBiomech validates a measurement document against #Biomech.
func (v *Validator) ValidateBiomech(data map[string]any) ([]types.ValidationError, error) {
	return v.validateDefinition("biomech", "#Biomech", data)
}

// ValidateDocument validates the envelope of an answers document
// (type, patient, author, answers) against #Document.
func (v *Validator) ValidateDocument(data map[string]any) ([]types.ValidationError, error) {
	return v.validateDefinition("document", "#Document", data)
}

func (v *Validator) validateDefinition(schemaName, def string, data map[string]any) ([]types.ValidationError, error) {
	schema, ok := v.schemas[schemaName]
	if !ok {
		return nil, fmt.Errorf("schema %q not loaded", schemaName)
	}
	d := schema.LookupPath(cue.ParsePath(def))
	if !d.Exists() {
		return nil, fmt.Errorf("schema %q has no %s definition", schemaName, def)
	}
	return v.validateAgainst(d, normalize(data))
}

// ValidateAnswers checks every answer against the declared options or VAS
// bounds of def. Unknown question ids are reported too. Each failing answer
// yields one finding worded like the intake policy's.
func (v *Validator) ValidateAnswers(def questionnaire.Definition, answers questionnaire.Answers) ([]types.ValidationError, error) {
	schema, err := v.answerSchema(def)
	if err != nil {
		return nil, err
	}
	data := make(map[string]any, len(answers))
	for k, a := range answers {
		data[k] = a
	}
	errs, err := v.validateAgainst(schema, normalize(data))
	if err != nil {
		return nil, err
	}
	for i, e := range errs {
		a, ok := answers[e.Field]
		if !ok {
			continue
		}
		if q, known := def.Question(e.Field); known {
			errs[i].Message = fmt.Sprintf("value %v is not a legal answer (%s)", a, q.Legal())
		} else {
			errs[i].Message = fmt.Sprintf("unknown question %q for %s", e.Field, def.Type)
		}
	}
	return errs, nil
}

// answerSchema compiles (once per type) a closed struct with one optional
// field per question.
func (v *Validator) answerSchema(def questionnaire.Definition) (cue.Value, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s, ok := v.answers[def.Type]; ok {
		return s, nil
	}
	src := AnswerSchemaSource(def)
	s := v.ctx.CompileString(src, cue.Filename(def.Type.String()+".cue"))
	if err := s.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compiling answer schema for %s: %w", def.Type, err)
	}
	v.answers[def.Type] = s
	return s, nil
}

// AnswerSchemaSource renders the CUE answer schema for def.
func AnswerSchemaSource(def questionnaire.Definition) string {
	var b strings.Builder
	b.WriteString("close({\n")
	for _, q := range def.Questions {
		fmt.Fprintf(&b, "\t%s?: ", strconv.Quote(q.ID))
		if q.Kind.HasOptions() {
			seen := make(map[float64]bool, len(q.Options))
			var alts []string
			for _, o := range q.Options {
				if seen[o.Value] {
					continue
				}
				seen[o.Value] = true
				alts = append(alts, formatNumber(o.Value))
			}
			b.WriteString(strings.Join(alts, " | "))
		} else {
			fmt.Fprintf(&b, "number & >=%s & <=%s", formatNumber(q.Min), formatNumber(q.Max))
		}
		b.WriteString("\n")
	}
	b.WriteString("})\n")
	return b.String()
}

// formatNumber writes whole numbers as CUE ints so they unify with the
// normalized input.
func formatNumber(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (v *Validator) validateAgainst(schema cue.Value, data any) ([]types.ValidationError, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	unified := schema.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrorsFromCUE(err), nil
	}
	return nil, nil
}

// extractErrorsFromCUE splits a CUE error into one finding per failing
// field. A disjunction reports every failed branch; only the first message
// of a field is kept.
func extractErrorsFromCUE(err error) []types.ValidationError {
	var out []types.ValidationError
	seen := make(map[string]bool)
	for _, e := range cueerrors.Errors(err) {
		field := fieldPath(e.Path())
		if seen[field] {
			continue
		}
		seen[field] = true
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		out = append(out, types.ValidationError{
			Message:  msg,
			Severity: types.SeverityError,
			Source:   types.SourceSchema,
			Field:    field,
		})
	}
	if len(out) == 0 {
		out = append(out, types.ValidationError{
			Message:  fmt.Sprintf("Schema validation failed: %v", err),
			Severity: types.SeverityError,
			Source:   types.SourceSchema,
		})
	}
	return out
}

// normalize turns whole float64 values into int64 and generic YAML maps
// into map[string]any, so CUE sees ints where the schema expects them.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[k] = normalize(x)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[fmt.Sprint(k)] = normalize(x)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = normalize(x)
		}
		return out
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) && math.Abs(t) < 1<<53 {
			return int64(t)
		}
		return t
	case int:
		return int64(t)
	default:
		return v
	}
}

// ValidateFile validates decoded document data by kind.
func (v *Validator) ValidateFile(path string, data map[string]any, kind string) ([]types.ValidationError, error) {
	var (
		errs []types.ValidationError
		err  error
	)
	switch kind {
	case types.KindAnswers:
		errs, err = v.ValidateDocument(data)
	case types.KindBiomech:
		errs, err = v.ValidateBiomech(data)
	default:
		return nil, fmt.Errorf("unknown document kind: %s", kind)
	}
	for i := range errs {
		errs[i].File = path
	}
	return errs, err
}

// fieldPath joins a CUE error path relative to the document: the leading
// definition selector (#Biomech) is dropped and quoted labels are unquoted.
func fieldPath(path []string) string {
	for len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	parts := make([]string, len(path))
	for i, p := range path {
		if u, err := strconv.Unquote(p); err == nil {
			p = u
		}
		parts[i] = p
	}
	return strings.Join(parts, ".")
}

// Package questionnaire holds the static catalog of clinical questionnaires:
// their identifiers, questions, answer options and the Answers map that the
// scoring engine consumes.
package questionnaire

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Kind is the response format of a question.
type Kind int

const (
	KindBinary Kind = iota
	KindScale
	KindMultipleChoice
	KindVisualAnalog
)

var kindNames = [...]string{"binary", "scale", "mcq", "vas"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText renders the kind by name so JSON and YAML output stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown question kind %q", string(b))
}

// HasOptions reports whether answers for this kind must match a declared option.
func (k Kind) HasOptions() bool {
	return k != KindVisualAnalog
}

// Option is one selectable answer and the number it contributes.
type Option struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Question is a single item of a questionnaire.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Text     string   `json:"text" yaml:"text"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Options  []Option `json:"options,omitempty" yaml:"options,omitempty"`
	Min      float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max      float64  `json:"max,omitempty" yaml:"max,omitempty"`
	MinLabel string   `json:"minLabel,omitempty" yaml:"minLabel,omitempty"`
	MaxLabel string   `json:"maxLabel,omitempty" yaml:"maxLabel,omitempty"`
	Inverted bool     `json:"inverted,omitempty" yaml:"inverted,omitempty"`
}

// Accepts reports whether v is a legal answer for q: one of the declared
// option values, or inside [Min, Max] for visual analog items.
func (q Question) Accepts(v float64) bool {
	if !q.Kind.HasOptions() {
		return v >= q.Min && v <= q.Max
	}
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Legal describes the accepted answers of q, such as "one of 0, 1, 2" or
// "0..10".
func (q Question) Legal() string {
	if !q.Kind.HasOptions() {
		return fmt.Sprintf("%v..%v", q.Min, q.Max)
	}
	vals := make([]string, 0, len(q.Options))
	seen := make(map[float64]bool, len(q.Options))
	for _, o := range q.Options {
		if seen[o.Value] {
			continue
		}
		seen[o.Value] = true
		vals = append(vals, fmt.Sprint(o.Value))
	}
	return "one of " + strings.Join(vals, ", ")
}

// Nearest returns the legal answer closest to v. Ties go to the earlier option.
func (q Question) Nearest(v float64) float64 {
	if !q.Kind.HasOptions() {
		return min(max(v, q.Min), q.Max)
	}
	if len(q.Options) == 0 {
		return v
	}
	best := q.Options[0].Value
	for _, o := range q.Options[1:] {
		if abs(o.Value-v) < abs(best-v) {
			best = o.Value
		}
	}
	return best
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Definition is the immutable description of one questionnaire.
type Definition struct {
	Type        Type       `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Instruction string     `json:"instruction,omitempty" yaml:"instruction,omitempty"`
	Questions   []Question `json:"questions" yaml:"questions"`
}

// Question returns the question with the given id.
func (d Definition) Question(id string) (Question, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func (d Definition) clone() Definition {
	d.Questions = slices.Clone(d.Questions)
	for i := range d.Questions {
		d.Questions[i].Options = slices.Clone(d.Questions[i].Options)
	}
	return d
}

// Answers maps a question id to its numeric response. Missing keys are
// unanswered items.
type Answers map[string]float64

// Get returns the answer for id and whether it is present.
func (a Answers) Get(id string) (float64, bool) {
	v, ok := a[id]
	return v, ok
}

// Value returns the answer for id, or 0 when it is missing.
func (a Answers) Value(id string) float64 {
	return a[id]
}

// Keys returns the answered question ids in sorted order, so aggregations
// over every present key are deterministic.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of a.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

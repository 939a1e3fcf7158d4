// Package intake decodes answer and measurement documents from YAML or JSON
// and applies the boundary policy before answers reach the scoring engine.
package intake

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/physioscore/internal/biomech"
	"github.com/dotcommander/physioscore/internal/footwear"
	"github.com/dotcommander/physioscore/internal/questionnaire"
)

// ErrMalformed is returned when a document cannot be decoded into the
// expected shape.
var ErrMalformed = errors.New("malformed document")

// AnswerDocument is one questionnaire submission read from disk.
type AnswerDocument struct {
	Path    string                `json:"path"`
	Type    questionnaire.Type    `json:"type"`
	Patient string                `json:"patient,omitempty"`
	Author  string                `json:"author,omitempty"`
	Answers questionnaire.Answers `json:"answers"`
	// Raw is the decoded document, kept for schema validation.
	Raw map[string]any `json:"-"`
}

// BiomechDocument is a measurement record plus the runner profile used by
// the footwear heuristic.
type BiomechDocument struct {
	biomech.Record `yaml:",inline"`
	Patient        string                  `json:"patient,omitempty" yaml:"patient,omitempty"`
	Author         string                  `json:"author,omitempty" yaml:"author,omitempty"`
	Profile        footwear.PatientProfile `json:"patientProfile" yaml:"patientProfile"`

	Path string         `json:"-" yaml:"-"`
	Raw  map[string]any `json:"-" yaml:"-"`
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// DecodeMap decodes content into a generic map, picking JSON or YAML by the
// file extension.
func DecodeMap(path string, content []byte) (map[string]any, error) {
	var data map[string]any
	var err error
	if isJSON(path) {
		err = json.Unmarshal(content, &data)
	} else {
		err = yaml.Unmarshal(content, &data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s: empty document", ErrMalformed, path)
	}
	return data, nil
}

// ParseAnswers decodes an answers document.
func ParseAnswers(path string, content []byte) (*AnswerDocument, error) {
	data, err := DecodeMap(path, content)
	if err != nil {
		return nil, err
	}

	doc := &AnswerDocument{Path: path, Raw: data}

	id, _ := data["type"].(string)
	if doc.Type, err = questionnaire.ParseType(id); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Patient = stringField(data, "patient")
	doc.Author = stringField(data, "author")

	raw, ok := asMap(data["answers"])
	if !ok {
		return nil, fmt.Errorf("%w: %s: answers must be a mapping", ErrMalformed, path)
	}
	doc.Answers = make(questionnaire.Answers, len(raw))
	for k, v := range raw {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s: answer %q is not a number", ErrMalformed, path, k)
		}
		doc.Answers[k] = f
	}
	return doc, nil
}

// ParseBiomech decodes a measurement document over the blank-form defaults.
func ParseBiomech(path string, content []byte) (*BiomechDocument, error) {
	data, err := DecodeMap(path, content)
	if err != nil {
		return nil, err
	}

	doc := &BiomechDocument{
		Record:  biomech.NewRecord(),
		Profile: footwear.DefaultProfile(),
	}
	if isJSON(path) {
		err = json.Unmarshal(content, doc)
	} else {
		err = yaml.Unmarshal(content, doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	doc.Path = path
	doc.Raw = data
	return doc, nil
}

func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, x := range m {
			out[fmt.Sprint(k)] = x
		}
		return out, true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

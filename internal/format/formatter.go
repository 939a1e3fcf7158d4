// Package format rewrites YAML documents into canonical form: fixed field
// order, answers in questionnaire order and one trailing newline.
package format

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/physioscore/internal/discovery"
	"github.com/dotcommander/physioscore/internal/questionnaire"
)

// Formatter formats document files canonically.
type Formatter interface {
	// Format returns the formatted content, or the original content and an
	// error when the document cannot be parsed.
	Format(content string) (string, error)
}

// NewFormatter returns the formatter for a document type.
func NewFormatter(ft discovery.FileType) Formatter {
	switch ft {
	case discovery.FileTypeBiomech:
		return &BiomechFormatter{}
	default:
		return &AnswerFormatter{}
	}
}

// AnswerFormatter orders an answer document as type, patient, author,
// answers. Answers follow the questionnaire's question order and carry the
// question text as a line comment.
type AnswerFormatter struct{}

func (f *AnswerFormatter) Format(content string) (string, error) {
	root, doc, err := parse(content)
	if err != nil {
		return content, err
	}
	if doc == nil {
		return normalizeText(content), nil
	}

	reorder(doc, fieldRank("type", "patient", "author", "answers"))

	if answers := value(doc, "answers"); answers != nil && answers.Kind == yaml.MappingNode {
		if typ := value(doc, "type"); typ != nil {
			if def, err := questionnaire.Get(typ.Value); err == nil {
				orderAnswers(answers, def)
			}
		}
	}
	return encode(root, content)
}

// BiomechFormatter orders a measurement document with identity and pain
// fields first, then measurements alphabetically.
type BiomechFormatter struct{}

func (f *BiomechFormatter) Format(content string) (string, error) {
	root, doc, err := parse(content)
	if err != nil {
		return content, err
	}
	if doc == nil {
		return normalizeText(content), nil
	}
	reorder(doc, fieldRank("patient", "author", "eva", "painPoints", "patientProfile"))
	return encode(root, content)
}

// parse returns the document node and its top-level mapping, or a nil
// mapping for an empty document.
func parse(content string) (*yaml.Node, *yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		return nil, nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return &root, nil, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("document must be a mapping, found %s", kindName(doc.Kind))
	}
	return &root, doc, nil
}

func encode(root *yaml.Node, original string) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return original, err
	}
	if err := enc.Close(); err != nil {
		return original, err
	}
	return normalizeText(buf.String()), nil
}

// fieldRank ranks priority fields by position; other keys sort after them
// alphabetically.
func fieldRank(priority ...string) func(key string) (int, bool) {
	pos := make(map[string]int, len(priority))
	for i, k := range priority {
		pos[k] = i
	}
	return func(key string) (int, bool) {
		i, ok := pos[key]
		return i, ok
	}
}

// reorder sorts the key/value pairs of a mapping node in place.
func reorder(m *yaml.Node, rank func(key string) (int, bool)) {
	type pair struct{ k, v *yaml.Node }
	pairs := make([]pair, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		pairs = append(pairs, pair{m.Content[i], m.Content[i+1]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		ri, iok := rank(pairs[i].k.Value)
		rj, jok := rank(pairs[j].k.Value)
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return pairs[i].k.Value < pairs[j].k.Value
		}
	})
	m.Content = m.Content[:0]
	for _, p := range pairs {
		m.Content = append(m.Content, p.k, p.v)
	}
}

// orderAnswers puts answers in question order and labels each with its
// question. Unknown ids keep their place after the known ones.
func orderAnswers(answers *yaml.Node, def questionnaire.Definition) {
	pos := make(map[string]int, len(def.Questions))
	for i, q := range def.Questions {
		pos[q.ID] = i
	}
	reorder(answers, func(key string) (int, bool) {
		i, ok := pos[key]
		return i, ok
	})
	for i := 0; i+1 < len(answers.Content); i += 2 {
		k := answers.Content[i]
		q, ok := def.Question(k.Value)
		if !ok || k.LineComment != "" || answers.Content[i+1].LineComment != "" {
			continue
		}
		answers.Content[i+1].LineComment = q.Text
	}
}

func value(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	}
	return "an unknown node"
}

// normalizeText trims trailing whitespace from every line and ends the
// content with exactly one newline.
func normalizeText(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	result := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	if result == "" {
		return ""
	}
	return result + "\n"
}

// Diff renders a line-by-line diff between original and formatted content.
// It returns "" when they are identical.
func Diff(original, formatted, filename string) string {
	if original == formatted {
		return ""
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", filename)
	fmt.Fprintf(&buf, "+++ %s (formatted)\n", filename)

	origLines := strings.Split(original, "\n")
	fmtLines := strings.Split(formatted, "\n")
	for i := range max(len(origLines), len(fmtLines)) {
		var origLine, fmtLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}
		if origLine == fmtLine {
			continue
		}
		if origLine != "" {
			fmt.Fprintf(&buf, "- %s\n", origLine)
		}
		if fmtLine != "" {
			fmt.Fprintf(&buf, "+ %s\n", fmtLine)
		}
	}
	return buf.String()
}

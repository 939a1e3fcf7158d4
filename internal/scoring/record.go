package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/dotcommander/physioscore/internal/types"
)

// RiskColorKey is the metric that generic renderers skip.
const RiskColorKey = "riskColor"

type valueKind uint8

const (
	kindNull valueKind = iota
	kindNumber
	kindText
)

// Value is a score metric: a number, a string or null.
type Value struct {
	kind valueKind
	num  float64
	str  string
}

// Number wraps a numeric metric.
func Number(f float64) Value { return Value{kind: kindNumber, num: f} }

// Text wraps a string metric.
func Text(s string) Value { return Value{kind: kindText, str: s} }

// Null is the absent numeric score of a quota-gated scale.
func Null() Value { return Value{} }

func (v Value) IsNull() bool { return v.kind == kindNull }

func (v Value) IsNumber() bool { return v.kind == kindNumber }

func (v Value) IsText() bool { return v.kind == kindText }

// Float returns the numeric value. Text metrics such as "42.0%" or "7.5"
// are parsed so evolution summaries can diff them.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case kindNumber:
		return v.num, true
	case kindText:
		s := v.str
		if n := len(s); n > 0 && s[n-1] == '%' {
			s = s[:n-1]
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}

// String renders the value the way it is displayed.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindText:
		return v.str
	}
	return "-"
}

// MarshalJSON writes non-finite numbers as null, which JSON cannot carry.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	case kindText:
		return json.Marshal(v.str)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = Null()
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Text(s)
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("metric value %s: %w", b, err)
		}
		*v = Number(f)
	}
	return nil
}

// Metric is one named value of a Record.
type Metric struct {
	Key   string
	Value Value
}

// Record is the ordered, immutable result of scoring one questionnaire.
type Record struct {
	metrics []Metric
}

// NewRecord builds a record from metrics in display order.
func NewRecord(metrics ...Metric) Record {
	return Record{metrics: append([]Metric(nil), metrics...)}
}

// Len returns the number of metrics.
func (r Record) Len() int { return len(r.metrics) }

// Metrics returns a copy of the metrics in order.
func (r Record) Metrics() []Metric {
	return append([]Metric(nil), r.metrics...)
}

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	for _, m := range r.metrics {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// RiskColor returns the traffic-light classification, if the record has one.
func (r Record) RiskColor() (types.RiskColor, bool) {
	v, ok := r.Get(RiskColorKey)
	if !ok || !v.IsText() {
		return "", false
	}
	return types.RiskColor(v.str), true
}

// Entry is a renderable metric with its display label.
type Entry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value Value  `json:"value"`
}

// Entries lists every metric except riskColor with its static label.
func (r Record) Entries() []Entry {
	out := make([]Entry, 0, len(r.metrics))
	for _, m := range r.metrics {
		if m.Key == RiskColorKey {
			continue
		}
		out = append(out, Entry{Key: m.Key, Label: Label(m.Key), Value: m.Value})
	}
	return out
}

// MarshalJSON writes the record as an object with keys in metric order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range r.metrics {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := m.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object back, keeping key order.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("score record: expected object, got %v", tok)
	}
	var metrics []Metric
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("score record: expected key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("score record %q: %w", key, err)
		}
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return err
		}
		metrics = append(metrics, Metric{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	r.metrics = metrics
	return nil
}

func num(key string, f float64) Metric { return Metric{Key: key, Value: Number(f)} }

func text(key, s string) Metric { return Metric{Key: key, Value: Text(s)} }

func risk(c types.RiskColor) Metric { return text(RiskColorKey, string(c)) }

func fixed1(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) }

func percent1(f float64) string { return fixed1(f) + "%" }

func classification(label string) Metric { return text("classification", label) }

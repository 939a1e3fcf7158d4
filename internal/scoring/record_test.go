package scoring

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/types"
)

func TestEntriesSkipRiskColor(t *testing.T) {
	rec, err := Score(questionnaire.McGillShort, questionnaire.Answers{"q1": 3, "vas": 2})
	require.NoError(t, err)

	entries := rec.Entries()
	require.Len(t, entries, 5)
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		assert.NotEqual(t, RiskColorKey, e.Key)
	}
	assert.Equal(t, []string{"sensory", "affective", "totalDescriptors", "vas", "ppi"}, keys)
	assert.Equal(t, "Total Descriptors", entries[2].Label)
	assert.Equal(t, "VAS", entries[3].Label)

	c, ok := rec.RiskColor()
	require.True(t, ok)
	assert.Equal(t, types.RiskGreen, c)
}

func TestEveryEmittedKeyHasLabel(t *testing.T) {
	for _, typ := range questionnaire.Types() {
		for _, a := range []questionnaire.Answers{{}, {"q1": 1}} {
			rec, err := Score(typ, a)
			require.NoError(t, err)
			for _, e := range rec.Entries() {
				_, ok := labels[e.Key]
				assert.True(t, ok, "%s emits unlabeled key %q", typ, e.Key)
			}
		}
	}
}

func TestLabelFallback(t *testing.T) {
	assert.Equal(t, "somethingNew", Label("somethingNew"))
	assert.Equal(t, "Pain Score", Label("painScore"))
}

func TestRecordJSONRoundTrip(t *testing.T) {
	rec, err := Score(questionnaire.QuickDASH, questionnaire.Answers{"q1": 2})
	require.NoError(t, err)

	b, err := json.Marshal(rec)
	require.NoError(t, err)

	var back Record
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, rec.Metrics(), back.Metrics())

	score, ok := back.Get("score")
	require.True(t, ok)
	assert.True(t, score.IsNull())
	_, hasColor := back.RiskColor()
	assert.False(t, hasColor)
}

func TestRecordJSONNonFinite(t *testing.T) {
	rec := NewRecord(num("total", math.NaN()), num("percent", math.Inf(1)), num("n", 3))
	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":null,"percent":null,"n":3}`, string(b))
}

func TestValueFloat(t *testing.T) {
	tests := []struct {
		v    Value
		want float64
		ok   bool
	}{
		{Number(12), 12, true},
		{Text("42.5%"), 42.5, true},
		{Text("7.0"), 7, true},
		{Text("Bom"), 0, false},
		{Null(), 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.v.Float()
		assert.Equal(t, tt.ok, ok, tt.v.String())
		if ok {
			assert.InDelta(t, tt.want, got, 1e-9)
		}
	}
}

func TestRecordIsNotAliased(t *testing.T) {
	metrics := []Metric{num("total", 1)}
	rec := NewRecord(metrics...)
	metrics[0] = num("total", 99)

	got := rec.Metrics()
	got[0] = num("total", 42)

	v, _ := rec.Get("total")
	f, _ := v.Float()
	assert.Equal(t, 1.0, f)
}

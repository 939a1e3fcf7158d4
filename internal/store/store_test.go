package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/scoring"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time {
		now := clock
		clock = clock.Add(time.Hour)
		return now
	})
	return s
}

func oswestry(t *testing.T, v float64) (questionnaire.Answers, scoring.Record) {
	t.Helper()
	a := questionnaire.Answers{}
	for i := 1; i <= 10; i++ {
		a[fmt.Sprintf("q%d", i)] = v
	}
	rec, err := scoring.Score(questionnaire.Oswestry, a)
	require.NoError(t, err)
	return a, rec
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	answers, rec := oswestry(t, 5)

	saved, err := s.Save(ctx, Submission{
		Patient: "p-001",
		Type:    questionnaire.Oswestry,
		Author:  "dr-x",
		Answers: answers,
		Scores:  rec,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), saved.SavedAt)

	got, err := s.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "p-001", got.Patient)
	assert.Equal(t, questionnaire.Oswestry, got.Type)
	assert.Equal(t, "dr-x", got.Author)
	assert.Equal(t, answers, got.Answers)
	assert.True(t, saved.SavedAt.Equal(got.SavedAt))

	want, err := rec.MarshalJSON()
	require.NoError(t, err)
	have, err := got.Scores.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(have))
	assert.Equal(t, string(want), string(have), "metric order survives storage")
}

func TestSaveValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, Submission{Type: questionnaire.NDI})
	assert.Error(t, err)

	_, err = s.Save(ctx, Submission{Patient: "p", Type: questionnaire.Type(99)})
	assert.ErrorIs(t, err, questionnaire.ErrUnknownAssessmentType)
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	answers, rec := oswestry(t, 1)

	var ids []string
	for _, typ := range []questionnaire.Type{questionnaire.Oswestry, questionnaire.NDI, questionnaire.Oswestry} {
		sub, err := s.Save(ctx, Submission{Patient: "p-1", Type: typ, Answers: answers, Scores: rec})
		require.NoError(t, err)
		ids = append(ids, sub.ID)
	}
	_, err := s.Save(ctx, Submission{Patient: "p-2", Type: questionnaire.NDI, Scores: rec})
	require.NoError(t, err)

	list, err := s.List(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{list[0].ID, list[1].ID, list[2].ID})

	latest, err := s.Latest(ctx, "p-1", questionnaire.Oswestry)
	require.NoError(t, err)
	assert.Equal(t, ids[2], latest.ID)

	_, err = s.Latest(ctx, "p-1", questionnaire.LEFS)
	assert.ErrorIs(t, err, ErrNotFound)

	empty, err := s.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListOrdersSubsecondTimes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 5, 0, time.UTC)
	times := []time.Time{base.Add(100 * time.Millisecond), base.Add(120 * time.Millisecond)}
	i := 0
	s.SetClock(func() time.Time { now := times[i]; i++; return now })

	_, rec := oswestry(t, 0)
	first, err := s.Save(ctx, Submission{Patient: "p", Type: questionnaire.NDI, Scores: rec})
	require.NoError(t, err)
	second, err := s.Save(ctx, Submission{Patient: "p", Type: questionnaire.NDI, Scores: rec})
	require.NoError(t, err)

	list, err := s.List(ctx, "p")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestEvolution(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Evolution(ctx, "p-1", questionnaire.Oswestry)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, v := range []float64{2, 5} {
		answers, rec := oswestry(t, v)
		_, err := s.Save(ctx, Submission{Patient: "p-1", Type: questionnaire.Oswestry, Answers: answers, Scores: rec})
		require.NoError(t, err)
	}

	ev, err := s.Evolution(ctx, "p-1", questionnaire.Oswestry)
	require.NoError(t, err)
	assert.True(t, ev.Current.SavedAt.After(ev.Previous.SavedAt))
	require.Len(t, ev.Deltas, 2)
	assert.Equal(t, Delta{Key: "total", Label: "Total", Previous: 20, Current: 50, Change: 30}, ev.Deltas[0])
	assert.Equal(t, "percent", ev.Deltas[1].Key)
	assert.InDelta(t, 60, ev.Deltas[1].Change, 1e-9)
}

func TestCompareSkipsNonNumeric(t *testing.T) {
	prev := scoring.NewRecord(
		scoring.Metric{Key: "score", Value: scoring.Null()},
		scoring.Metric{Key: "total", Value: scoring.Number(3)},
	)
	curr := scoring.NewRecord(
		scoring.Metric{Key: "score", Value: scoring.Text("40.0")},
		scoring.Metric{Key: "classification", Value: scoring.Text("Moderada")},
		scoring.Metric{Key: "total", Value: scoring.Number(1)},
		scoring.Metric{Key: "new", Value: scoring.Number(1)},
		scoring.Metric{Key: scoring.RiskColorKey, Value: scoring.Text("red")},
	)
	deltas := Compare(prev, curr)
	require.Len(t, deltas, 1)
	assert.Equal(t, "total", deltas[0].Key)
	assert.Equal(t, -2.0, deltas[0].Change)
}

package store

import (
	"context"
	"fmt"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/scoring"
)

// Delta is the change of one numeric metric between two submissions.
type Delta struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Previous float64 `json:"previous"`
	Current  float64 `json:"current"`
	Change   float64 `json:"change"`
}

// Evolution compares the two newest submissions of one questionnaire.
type Evolution struct {
	Previous Submission `json:"previous"`
	Current  Submission `json:"current"`
	Deltas   []Delta    `json:"deltas"`
}

// Compare returns the deltas of every metric that is numeric in both
// records, in the order of curr. Percent strings like "42.5%" count as
// numbers; riskColor and text labels are skipped.
func Compare(prev, curr scoring.Record) []Delta {
	deltas := []Delta{}
	for _, e := range curr.Entries() {
		c, ok := e.Value.Float()
		if !ok {
			continue
		}
		pv, ok := prev.Get(e.Key)
		if !ok {
			continue
		}
		p, ok := pv.Float()
		if !ok {
			continue
		}
		deltas = append(deltas, Delta{
			Key:      e.Key,
			Label:    e.Label,
			Previous: p,
			Current:  c,
			Change:   c - p,
		})
	}
	return deltas
}

// Evolution loads the two newest submissions of type t for patient and
// compares them. It fails with ErrNotFound when fewer than two exist.
func (s *Store) Evolution(ctx context.Context, patient string, t questionnaire.Type) (Evolution, error) {
	subs, err := s.Recent(ctx, patient, t, 2)
	if err != nil {
		return Evolution{}, err
	}
	if len(subs) < 2 {
		return Evolution{}, fmt.Errorf("evolution of %s for %s needs two submissions, have %d: %w",
			t, patient, len(subs), ErrNotFound)
	}
	return Evolution{
		Previous: subs[1],
		Current:  subs[0],
		Deltas:   Compare(subs[1].Scores, subs[0].Scores),
	}, nil
}

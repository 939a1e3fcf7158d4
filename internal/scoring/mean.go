package scoring

import (
	"regexp"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/types"
)

// QuickDASHResult has a nil Score when fewer than ten items were answered.
type QuickDASHResult struct {
	Score    *float64
	Answered int
	Risk     types.RiskColor
	Error    string
}

// ScoreQuickDASH counts items q1..q11 with a non-zero answer (the scale
// runs 1-5) and needs at least ten of them.
func ScoreQuickDASH(a questionnaire.Answers) QuickDASHResult {
	var sum float64
	var n int
	for _, id := range itemIDs("q", 1, 11) {
		if v := a.Value(id); v != 0 {
			sum += v
			n++
		}
	}
	if n < QuickDASHMinAnswered {
		return QuickDASHResult{Answered: n, Error: QuickDASHQuotaError}
	}
	score := (sum/float64(n) - 1) * 25
	return QuickDASHResult{Score: &score, Answered: n, Risk: colorAbove(score, 20, 40)}
}

func (r QuickDASHResult) Record() Record {
	if r.Score == nil {
		return NewRecord(
			Metric{Key: "score", Value: Null()},
			text("error", r.Error),
		)
	}
	label := LabelDisabilityNone
	if *r.Score > 0 {
		label = fixed1(*r.Score) + "% de Incapacidade"
	}
	return NewRecord(
		text("score", fixed1(*r.Score)),
		classification(label),
		risk(r.Risk),
	)
}

// NormalizedResult is 100 - mean x 25 on 0-4 items; 100 is best.
type NormalizedResult struct {
	Score float64
	Items int
	Risk  types.RiskColor
}

func (r NormalizedResult) Record() Record {
	return NewRecord(text("score", fixed1(r.Score)), risk(r.Risk))
}

// recordWithItems also reports how many items were averaged.
func (r NormalizedResult) recordWithItems() Record {
	return NewRecord(
		text("score", fixed1(r.Score)),
		risk(r.Risk),
		num("totalItems", float64(r.Items)),
	)
}

func normalized(values []float64) NormalizedResult {
	var total float64
	for _, v := range values {
		total += v
	}
	var mean float64
	if len(values) > 0 {
		mean = total / float64(len(values))
	}
	score := 100 - mean*25
	return NormalizedResult{Score: score, Items: len(values), Risk: colorBelow(score, 50, 80)}
}

func presentValues(a questionnaire.Answers, keep func(string) bool) []float64 {
	var out []float64
	for _, k := range a.Keys() {
		if keep == nil || keep(k) {
			out = append(out, a[k])
		}
	}
	return out
}

var scaleItemKey = regexp.MustCompile(`^q\d+$`)

// ScoreHOOS only averages numbered scale items (q1, q2, ...).
func ScoreHOOS(a questionnaire.Answers) NormalizedResult {
	return normalized(presentValues(a, scaleItemKey.MatchString))
}

// ScoreKOOS averages every answered item.
func ScoreKOOS(a questionnaire.Answers) NormalizedResult {
	return normalized(presentValues(a, nil))
}

// ScoreFAOS averages every answered item.
func ScoreFAOS(a questionnaire.Answers) NormalizedResult {
	return normalized(presentValues(a, nil))
}

// MeanResult is a plain average of visual analog answers.
type MeanResult struct {
	Mean  float64
	Items int
	Risk  types.RiskColor
}

func mean(values []float64) (float64, int) {
	if len(values) == 0 {
		return 0, 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), len(values)
}

// ScorePSFS averages the nominated activities (0 unable, 10 pre-injury).
func ScorePSFS(a questionnaire.Answers) MeanResult {
	m, n := mean(presentValues(a, nil))
	return MeanResult{Mean: m, Items: n, Risk: colorBelow(m, 4, 7)}
}

// ScoreIHOT33 averages the 0-100 items; the side selector is not scored.
func ScoreIHOT33(a questionnaire.Answers) MeanResult {
	m, n := mean(presentValues(a, func(k string) bool { return k != questionnaire.IHOTSideKey }))
	return MeanResult{Mean: m, Items: n, Risk: colorBelow(m, 50, 80)}
}

package scoring

import (
	"strings"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/types"
)

// PercentResult is a disability index scored against the answered maximum.
type PercentResult struct {
	Total          float64
	Percent        float64
	Classification string
	Risk           types.RiskColor
}

func (r PercentResult) Record() Record {
	return NewRecord(
		num("total", r.Total),
		text("percent", percent1(r.Percent)),
		classification(r.Classification),
		risk(r.Risk),
	)
}

// percentOfAnswered scores 0-5 sections: total / (answered x 5) x 100.
func percentOfAnswered(a questionnaire.Answers, bands []band) PercentResult {
	total := sumPresent(a)
	var pct float64
	if n := len(a); n > 0 {
		pct = total / float64(n*5) * 100
	}
	label, color := classify(pct, bands)
	return PercentResult{Total: total, Percent: pct, Classification: label, Risk: color}
}

// ScoreOswestry is the Oswestry Disability Index.
func ScoreOswestry(a questionnaire.Answers) PercentResult {
	return percentOfAnswered(a, oswestryBands)
}

// ScoreNDI is the Neck Disability Index.
func ScoreNDI(a questionnaire.Answers) PercentResult {
	return percentOfAnswered(a, ndiBands)
}

// WOMACMax is the maximum raw sum over the implemented item list:
// (5 pain + 2 stiffness + 16 function) x 4.
const WOMACMax = (5 + 2 + 16) * 4

// WOMACResult holds the per-domain sums and the overall percentage.
type WOMACResult struct {
	Pain      float64
	Stiffness float64
	Function  float64
	Percent   float64
	Risk      types.RiskColor
}

// ScoreWOMAC groups answered items by id prefix: p pain, s stiffness, f function.
func ScoreWOMAC(a questionnaire.Answers) WOMACResult {
	var r WOMACResult
	for _, k := range a.Keys() {
		switch {
		case strings.HasPrefix(k, "p"):
			r.Pain += a[k]
		case strings.HasPrefix(k, "s"):
			r.Stiffness += a[k]
		case strings.HasPrefix(k, "f"):
			r.Function += a[k]
		}
	}
	r.Percent = (r.Pain + r.Stiffness + r.Function) / WOMACMax * 100
	r.Risk = colorAbove(r.Percent, 30, 60)
	return r
}

func (r WOMACResult) Record() Record {
	return NewRecord(
		num("pain", r.Pain),
		num("stiffness", r.Stiffness),
		num("func", r.Function),
		text("total", percent1(r.Percent)),
		risk(r.Risk),
	)
}

// SPADIResult holds both subscale percentages and their combination.
type SPADIResult struct {
	Pain       float64
	Disability float64
	Total      float64
	Risk       types.RiskColor
}

var (
	spadiPain       = itemSet("q", 1, 5)
	spadiDisability = itemSet("q", 6, 13)
)

// ScoreSPADI scores each subscale over its answered items on a 0-10 scale.
// The total averages both subscales when both have answers, otherwise it is
// whichever one does.
func ScoreSPADI(a questionnaire.Answers) SPADIResult {
	var painSum, disSum float64
	var painN, disN int
	for _, k := range a.Keys() {
		switch {
		case spadiPain[k]:
			painSum += a[k]
			painN++
		case spadiDisability[k]:
			disSum += a[k]
			disN++
		}
	}

	var r SPADIResult
	if painN > 0 {
		r.Pain = painSum / float64(painN*10) * 100
	}
	if disN > 0 {
		r.Disability = disSum / float64(disN*10) * 100
	}
	switch {
	case painN > 0 && disN > 0:
		r.Total = (r.Pain + r.Disability) / 2
	case painN > 0:
		r.Total = r.Pain
	case disN > 0:
		r.Total = r.Disability
	}
	r.Risk = colorAbove(r.Total, 30, 60)
	return r
}

func (r SPADIResult) Record() Record {
	return NewRecord(
		text("painScore", percent1(r.Pain)),
		text("disabilityScore", percent1(r.Disability)),
		text("total", percent1(r.Total)),
		risk(r.Risk),
	)
}

// PRWEResult is pain (0-50) plus half the function sum (0-50).
type PRWEResult struct {
	PainSum     float64
	FunctionSum float64
	Total       float64
	Risk        types.RiskColor
}

// ScorePRWE defaults missing items to 0.
func ScorePRWE(a questionnaire.Answers) PRWEResult {
	r := PRWEResult{
		PainSum:     sumItems(a, "q", 1, 5),
		FunctionSum: sumItems(a, "q", 6, 15),
	}
	r.Total = r.PainSum + r.FunctionSum/2
	r.Risk = colorAbove(r.Total, 20, 50)
	return r
}

func (r PRWEResult) Record() Record {
	return NewRecord(
		num("painSum", r.PainSum),
		num("functionSum", r.FunctionSum),
		text("total", fixed1(r.Total)),
		risk(r.Risk),
	)
}

// PercentOfMaxResult is total / (answered x 4) x 100 on 0-4 items.
type PercentOfMaxResult struct {
	Score float64
	Items int
	Risk  types.RiskColor
}

func percentOfMax(a questionnaire.Answers) (score float64, items int) {
	items = len(a)
	if items == 0 {
		return 0, 0
	}
	return sumPresent(a) / float64(items*4) * 100, items
}

// ScoreIKDC is higher-is-better: below 50 is red, below 80 yellow.
func ScoreIKDC(a questionnaire.Answers) PercentOfMaxResult {
	score, n := percentOfMax(a)
	return PercentOfMaxResult{Score: score, Items: n, Risk: colorBelow(score, 50, 80)}
}

// ScoreFAAM is higher-is-better: below 60 is red, below 85 yellow.
func ScoreFAAM(a questionnaire.Answers) PercentOfMaxResult {
	score, n := percentOfMax(a)
	return PercentOfMaxResult{Score: score, Items: n, Risk: colorBelow(score, 60, 85)}
}

func itemSet(prefix string, from, to int) map[string]bool {
	out := make(map[string]bool, to-from+1)
	for _, id := range itemIDs(prefix, from, to) {
		out[id] = true
	}
	return out
}

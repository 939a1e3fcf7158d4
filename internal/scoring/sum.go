package scoring

import (
	"strconv"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/types"
)

// sumPresent adds every answered value, in key order.
func sumPresent(a questionnaire.Answers) float64 {
	var total float64
	for _, k := range a.Keys() {
		total += a[k]
	}
	return total
}

func itemIDs(prefix string, from, to int) []string {
	ids := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		ids = append(ids, prefix+strconv.Itoa(i))
	}
	return ids
}

// sumItems adds prefix<from>..prefix<to>, treating missing items as 0.
func sumItems(a questionnaire.Answers, prefix string, from, to int) float64 {
	var total float64
	for _, id := range itemIDs(prefix, from, to) {
		total += a.Value(id)
	}
	return total
}

// StartBackResult is the STarT Back screening outcome.
type StartBackResult struct {
	Total          float64
	Psychosocial   float64
	Classification string
	Risk           types.RiskColor
}

// ScoreStartBack sums q1..q9 and the psychosocial subscale q5..q9.
func ScoreStartBack(a questionnaire.Answers) StartBackResult {
	total := sumItems(a, "q", 1, 9)
	psychosocial := sumItems(a, "q", 5, 9)

	r := StartBackResult{Total: total, Psychosocial: psychosocial}
	switch {
	case total < 4:
		r.Classification, r.Risk = LabelLowRisk, types.RiskGreen
	case psychosocial < 4:
		r.Classification, r.Risk = LabelMediumRisk, types.RiskYellow
	default:
		r.Classification, r.Risk = LabelHighPsychosocial, types.RiskRed
	}
	return r
}

func (r StartBackResult) Record() Record {
	return NewRecord(
		num("total", r.Total),
		num("psychosocial", r.Psychosocial),
		classification(r.Classification),
		risk(r.Risk),
	)
}

// ClassifiedTotal is a raw sum with a labeled band.
type ClassifiedTotal struct {
	Total          float64
	Classification string
	Risk           types.RiskColor
}

func (r ClassifiedTotal) Record() Record {
	return NewRecord(
		num("total", r.Total),
		classification(r.Classification),
		risk(r.Risk),
	)
}

// TotalResult is a raw sum with only a color.
type TotalResult struct {
	Total float64
	Risk  types.RiskColor
}

func (r TotalResult) Record() Record {
	return NewRecord(num("total", r.Total), risk(r.Risk))
}

// ScoreRolandMorris sums every answered item.
func ScoreRolandMorris(a questionnaire.Answers) ClassifiedTotal {
	total := sumPresent(a)
	label, color := classify(total, rolandMorrisBands)
	return ClassifiedTotal{Total: total, Classification: label, Risk: color}
}

// ScoreQuebec sums every answered item; it has no classification label.
func ScoreQuebec(a questionnaire.Answers) TotalResult {
	total := sumPresent(a)
	return TotalResult{Total: total, Risk: colorAtLeast(total, 20, 40)}
}

// ScoreLysholm sums the point value of each answered option.
func ScoreLysholm(a questionnaire.Answers) ClassifiedTotal {
	total := sumPresent(a)
	label, color := classify(total, lysholmBands)
	return ClassifiedTotal{Total: total, Classification: label, Risk: color}
}

// ScoreAOFAS sums the point value of each answered option.
func ScoreAOFAS(a questionnaire.Answers) TotalResult {
	total := sumPresent(a)
	return TotalResult{Total: total, Risk: colorBelow(total, 70, 90)}
}

// tampaInverted are reverse-scored as 5 - raw.
var tampaInverted = map[int]bool{4: true, 8: true, 12: true, 16: true}

// ScoreTampa walks the 17 items; a raw 0 means unanswered and is skipped.
func ScoreTampa(a questionnaire.Answers) ClassifiedTotal {
	var total float64
	for i := 1; i <= 17; i++ {
		v := a.Value("q" + strconv.Itoa(i))
		if v == 0 {
			continue
		}
		if tampaInverted[i] {
			v = 5 - v
		}
		total += v
	}
	if total >= 37 {
		return ClassifiedTotal{Total: total, Classification: LabelKinesiophobiaHigh, Risk: types.RiskRed}
	}
	return ClassifiedTotal{Total: total, Classification: LabelKinesiophobiaLow, Risk: types.RiskGreen}
}

// McGillResult splits the short-form descriptors into subscales and carries
// the VAS and present pain intensity through unchanged.
type McGillResult struct {
	Sensory          float64
	Affective        float64
	TotalDescriptors float64
	VAS              float64
	PPI              float64
	Risk             types.RiskColor
}

// ScoreMcGill defaults missing descriptors to 0.
func ScoreMcGill(a questionnaire.Answers) McGillResult {
	r := McGillResult{
		Sensory:   sumItems(a, "q", 1, 11),
		Affective: sumItems(a, "q", 12, 15),
		VAS:       a.Value("vas"),
		PPI:       a.Value("ppi"),
	}
	r.TotalDescriptors = r.Sensory + r.Affective
	switch {
	case r.TotalDescriptors > 20 || r.VAS > 7:
		r.Risk = types.RiskRed
	case r.TotalDescriptors > 10 || r.VAS > 4:
		r.Risk = types.RiskYellow
	default:
		r.Risk = types.RiskGreen
	}
	return r
}

func (r McGillResult) Record() Record {
	return NewRecord(
		num("sensory", r.Sensory),
		num("affective", r.Affective),
		num("totalDescriptors", r.TotalDescriptors),
		num("vas", r.VAS),
		num("ppi", r.PPI),
		risk(r.Risk),
	)
}

// LEFSMax is the best possible LEFS total.
const LEFSMax = 80

// LEFSResult is higher-is-better, so its colors run the other way.
type LEFSResult struct {
	Total   float64
	Percent float64
	Risk    types.RiskColor
}

// ScoreLEFS sums every answered item against a fixed maximum of 80.
func ScoreLEFS(a questionnaire.Answers) LEFSResult {
	total := sumPresent(a)
	return LEFSResult{
		Total:   total,
		Percent: total / LEFSMax * 100,
		Risk:    colorBelow(total, 40, 60),
	}
}

func (r LEFSResult) Record() Record {
	return NewRecord(
		num("total", r.Total),
		num("max", LEFSMax),
		text("percent", percent1(r.Percent)),
		risk(r.Risk),
	)
}

package biomech

import "math"

// Foot posture labels.
const (
	PostureProne   = "Pronado (Plano)"
	PostureSupine  = "Supinado (Cavo)"
	PostureNeutral = "Neutro"
)

// Color tags used by report renderers for each posture.
const (
	TagOrange = "orange"
	TagBlue   = "blue"
	TagGreen  = "green"
)

// FootPosture is the classification of one foot.
type FootPosture struct {
	Label    string  `json:"label"`
	ColorTag string  `json:"colorTag"`
	Sum      float64 `json:"sum"`
}

// ClassifyFootPosture sums the FPI components. Above 6 is pronated, below -6
// supinated; both bounds are strict.
func ClassifyFootPosture(scores []float64) FootPosture {
	var sum float64
	for _, s := range scores {
		sum += s
	}
	switch {
	case sum > 6:
		return FootPosture{Label: PostureProne, ColorTag: TagOrange, Sum: sum}
	case sum < -6:
		return FootPosture{Label: PostureSupine, ColorTag: TagBlue, Sum: sum}
	default:
		return FootPosture{Label: PostureNeutral, ColorTag: TagGreen, Sum: sum}
	}
}

// MinimalismIndex scores a shoe from 0 (maximal) to 100 (minimal).
func MinimalismIndex(shoe Shoe) int {
	s, m := shoe.Specs, shoe.Scores
	var score float64
	score += math.Max(0, 5-(s.Weight-150)/40)
	score += math.Max(0, 5-s.Drop/2.4)
	score += math.Max(0, 5-(s.Stack-10)/5)
	score += m.FlexLong * 0.5
	score += m.FlexTor * 0.5
	score += math.Max(0, 5-m.Stability)

	idx := math.Round(score / 25 * 100)
	if math.IsNaN(idx) {
		return 0
	}
	return int(clamp(idx, 0, 100))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

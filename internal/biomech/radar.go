package biomech

import "math"

// Radar axis keys, in display order.
const (
	AxisPain        = "pain"
	AxisFunction    = "function"
	AxisStability   = "stability"
	AxisStrength    = "strength"
	AxisPosture     = "posture"
	AxisSymmetry    = "symmetry"
	AxisFlexibility = "flexibility"
)

// Axis is one spoke of the radar chart, scaled 0-100.
type Axis struct {
	Key     string  `json:"key"`
	Subject string  `json:"subject"`
	Value   float64 `json:"value"`
}

// Radar is the seven-axis composite profile.
type Radar []Axis

// Value returns the score of the axis with key.
func (r Radar) Value(key string) (float64, bool) {
	for _, a := range r {
		if a.Key == key {
			return a.Value, true
		}
	}
	return 0, false
}

// flexItem declares how one flexibility test maps onto 0-100.
type flexItem struct {
	pick   func(Record) OptionalPair
	min    float64
	max    float64
	weight float64
	invert bool
}

var flexItems = []flexItem{
	{func(r Record) OptionalPair { return r.Flexibility.MobilityRays }, -5, 5, 1, false},
	{func(r Record) OptionalPair { return r.Flexibility.Thomas }, 0, 10, 1, true},
	{func(r Record) OptionalPair { return r.Flexibility.Hamstring }, 90, 132, 1, false},
	{func(r Record) OptionalPair { return r.Flexibility.Jack }, -5, 5, 1, false},
	{func(r Record) OptionalPair { return r.Flexibility.Lunge }, 20, 45, 2, false},
	{func(r Record) OptionalPair { return r.Rotation }, 20, 40, 2, false},
}

// remap projects v from [lo, hi] onto [0, 100], clamped.
func remap(v, lo, hi float64) float64 {
	return clamp((v-lo)/(hi-lo)*100, 0, 100)
}

// CompositeRadar computes the seven radar axes from a record.
func CompositeRadar(r Record) Radar {
	return Radar{
		{AxisPain, "Dor (Alívio)", clamp(100-r.EVA*10, 0, 100)},
		{AxisFunction, "Função", functionAxis(r.Functional)},
		{AxisStability, "Estabilidade", stabilityAxis(r.SingleLegSquat)},
		{AxisStrength, "Força", strengthAxis(r.Strength)},
		{AxisPosture, "Postura", postureAxis(r.FPI)},
		{AxisSymmetry, "Simetria", math.Round(LimbSymmetryIndex(SymmetryPairs(r)...))},
		{AxisFlexibility, "Flexibilidade", math.Round(FlexibilityScore(r))},
	}
}

func functionAxis(f Functional) float64 {
	if len(f.Items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range f.Items {
		sum += it.Score
	}
	return clamp(sum/float64(len(f.Items))*10, 0, 100)
}

func stabilityAxis(s SingleLegSquat) float64 {
	left := (s.PelvicDrop.Left + s.DynamicValgus.Left) / 2
	right := (s.PelvicDrop.Right + s.DynamicValgus.Right) / 2
	return remap((left+right)/2, -5, 5)
}

// strengthAxis treats an untested (zero) rating as the mid value 5.
func strengthAxis(s Strength) float64 {
	rating := func(v float64) float64 {
		if v == 0 {
			return 5
		}
		return v
	}
	avg := (rating(s.GluteMedRight) + rating(s.GluteMedLeft) + rating(s.GluteMaxRight) + rating(s.GluteMaxLeft)) / 4
	return clamp(avg*10, 0, 100)
}

func postureAxis(f FPI) float64 {
	right := ClassifyFootPosture(f.Right).Sum
	left := ClassifyFootPosture(f.Left).Sum
	return math.Max(0, 100-(math.Abs(right)+math.Abs(left))/2*8)
}

// FlexibilityScore is the weighted mean of the remapped flexibility tests.
// Tests missing either side are excluded, not counted as zero.
func FlexibilityScore(r Record) float64 {
	var weighted, weights float64
	for _, it := range flexItems {
		p := it.pick(r)
		if !p.Complete() {
			continue
		}
		score := remap((*p.Left+*p.Right)/2, it.min, it.max)
		if it.invert {
			score = 100 - score
		}
		weighted += score * it.weight
		weights += it.weight
	}
	if weights == 0 {
		return 0
	}
	return weighted / weights
}

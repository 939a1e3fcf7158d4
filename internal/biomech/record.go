// Package biomech computes composite indices from a biomechanical assessment:
// foot posture, footwear minimalism, limb symmetry, Y-balance reach and the
// seven-axis radar profile. All functions are pure.
package biomech

import "github.com/dotcommander/physioscore/internal/types"

// Bilateral is a measurement taken on both sides.
type Bilateral struct {
	Left  float64 `json:"left" yaml:"left"`
	Right float64 `json:"right" yaml:"right"`
}

// OptionalPair is a bilateral measurement where either side may be missing.
type OptionalPair struct {
	Left  *float64 `json:"left,omitempty" yaml:"left,omitempty"`
	Right *float64 `json:"right,omitempty" yaml:"right,omitempty"`
}

// Complete reports whether both sides were measured.
func (p OptionalPair) Complete() bool {
	return p.Left != nil && p.Right != nil
}

// Pair builds a complete OptionalPair.
func Pair(left, right float64) OptionalPair {
	return OptionalPair{Left: &left, Right: &right}
}

// FPI holds the six Foot Posture Index component scores per side, each in [-2, 2].
type FPI struct {
	Left  []float64 `json:"left" yaml:"left"`
	Right []float64 `json:"right" yaml:"right"`
}

// Anthropometry holds static paired measurements.
type Anthropometry struct {
	LegLength Bilateral `json:"legLength" yaml:"legLength"`
	Navicular Bilateral `json:"navicular" yaml:"navicular"`
}

// SingleLegSquat deviation scores, each in [-5, 5].
type SingleLegSquat struct {
	PelvicDrop    Bilateral `json:"pelvicDrop" yaml:"pelvicDrop"`
	DynamicValgus Bilateral `json:"dynamicValgus" yaml:"dynamicValgus"`
}

// Flexibility holds range-of-motion tests. A test missing a side is left out
// of the flexibility axis.
type Flexibility struct {
	MobilityRays OptionalPair `json:"mobilityRays" yaml:"mobilityRays"`
	Thomas       OptionalPair `json:"thomas" yaml:"thomas"`
	Hamstring    OptionalPair `json:"hamstring" yaml:"hamstring"`
	Jack         OptionalPair `json:"jack" yaml:"jack"`
	Lunge        OptionalPair `json:"lunge" yaml:"lunge"`
}

// Strength ratings in [0, 10]. Zero means not tested.
type Strength struct {
	GluteMedLeft  float64 `json:"gluteMedLeft" yaml:"gluteMedLeft"`
	GluteMedRight float64 `json:"gluteMedRight" yaml:"gluteMedRight"`
	GluteMaxLeft  float64 `json:"gluteMaxLeft" yaml:"gluteMaxLeft"`
	GluteMaxRight float64 `json:"gluteMaxRight" yaml:"gluteMaxRight"`
}

// FunctionalItem is a patient-nominated activity rated 0 (unable) to 10.
type FunctionalItem struct {
	Activity string  `json:"activity" yaml:"activity"`
	Score    float64 `json:"score" yaml:"score"`
}

// Functional is the PSFS-style block of the assessment.
type Functional struct {
	Items []FunctionalItem `json:"items" yaml:"items"`
}

// ShoeSpecs are the physical specs of a shoe: grams and millimetres.
type ShoeSpecs struct {
	Weight float64 `json:"weight" yaml:"weight"`
	Drop   float64 `json:"drop" yaml:"drop"`
	Stack  float64 `json:"stack" yaml:"stack"`
}

// MinimalismScores are the 0-5 sub-scores observed on the shoe.
type MinimalismScores struct {
	FlexLong  float64 `json:"flexLong" yaml:"flexLong"`
	FlexTor   float64 `json:"flexTor" yaml:"flexTor"`
	Stability float64 `json:"stability" yaml:"stability"`
}

// Shoe is the footwear the patient currently uses.
type Shoe struct {
	Model  string           `json:"model,omitempty" yaml:"model,omitempty"`
	Specs  ShoeSpecs        `json:"specs" yaml:"specs"`
	Scores MinimalismScores `json:"minScoreData" yaml:"minScoreData"`
}

// Trials are three reach attempts per side.
type Trials struct {
	Left  [3]float64 `json:"left" yaml:"left"`
	Right [3]float64 `json:"right" yaml:"right"`
}

// YBalance is the Y-balance test block.
type YBalance struct {
	LimbLength      Bilateral  `json:"limbLength" yaml:"limbLength"`
	Anterior        Trials     `json:"anterior" yaml:"anterior"`
	Posteromedial   Trials     `json:"posteromedial" yaml:"posteromedial"`
	Posterolateral  Trials     `json:"posterolateral" yaml:"posterolateral"`
	IsManual        bool       `json:"isManualStability" yaml:"isManualStability"`
	ManualStability Bilateral  `json:"manualStability" yaml:"manualStability"`
	DominantLeg     types.Side `json:"dominantLeg,omitempty" yaml:"dominantLeg,omitempty"`
}

// Record is one biomechanical assessment.
type Record struct {
	EVA            float64          `json:"eva" yaml:"eva"`
	FPI            FPI              `json:"fpi" yaml:"fpi"`
	Anthropometry  Anthropometry    `json:"anthropometry" yaml:"anthropometry"`
	Rotation       OptionalPair     `json:"rotation" yaml:"rotation"`
	SingleLegSquat SingleLegSquat   `json:"singleLegSquat" yaml:"singleLegSquat"`
	Flexibility    Flexibility      `json:"flexibility" yaml:"flexibility"`
	Strength       Strength         `json:"strength" yaml:"strength"`
	Functional     Functional       `json:"efep" yaml:"efep"`
	YBalance       YBalance         `json:"yBalance" yaml:"yBalance"`
	CurrentShoe    Shoe             `json:"currentShoe" yaml:"currentShoe"`
	PainPoints     types.PainPoints `json:"painPoints,omitempty" yaml:"painPoints,omitempty"`
}

// NewRecord returns a record with the clinic's default form values.
func NewRecord() Record {
	return Record{
		FPI:      FPI{Left: make([]float64, 6), Right: make([]float64, 6)},
		Rotation: Pair(35, 35),
		Flexibility: Flexibility{
			MobilityRays: Pair(0, 0),
			Thomas:       Pair(5, 5),
			Hamstring:    Pair(110, 110),
			Jack:         Pair(0, 0),
			Lunge:        Pair(35, 35),
		},
		Strength: Strength{GluteMedLeft: 5, GluteMedRight: 5, GluteMaxLeft: 5, GluteMaxRight: 5},
		Functional: Functional{Items: []FunctionalItem{
			{}, {}, {},
		}},
		YBalance: YBalance{DominantLeg: types.Right},
		CurrentShoe: Shoe{
			Specs: ShoeSpecs{Weight: 250, Drop: 8, Stack: 20},
		},
		PainPoints: types.PainPoints{},
	}
}

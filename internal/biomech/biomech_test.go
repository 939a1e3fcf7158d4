package biomech

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFootPosture(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		label  string
		tag    string
		sum    float64
	}{
		{"all plus two", []float64{2, 2, 2, 2, 2, 2}, PostureProne, TagOrange, 12},
		{"upper boundary is neutral", []float64{1, 1, 1, 1, 1, 1}, PostureNeutral, TagGreen, 6},
		{"just above boundary", []float64{2, 1, 1, 1, 1, 1}, PostureProne, TagOrange, 7},
		{"lower boundary is neutral", []float64{-1, -1, -1, -1, -1, -1}, PostureNeutral, TagGreen, -6},
		{"all minus two", []float64{-2, -2, -2, -2, -2, -2}, PostureSupine, TagBlue, -12},
		{"empty", nil, PostureNeutral, TagGreen, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFootPosture(tt.scores)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.tag, got.ColorTag)
			assert.Equal(t, tt.sum, got.Sum)
		})
	}
}

func TestMinimalismIndex(t *testing.T) {
	tests := []struct {
		name string
		shoe Shoe
		want int
	}{
		{
			name: "form default shoe",
			shoe: NewRecord().CurrentShoe,
			want: 49,
		},
		{
			name: "fully minimal",
			shoe: Shoe{
				Specs:  ShoeSpecs{Weight: 150, Drop: 0, Stack: 10},
				Scores: MinimalismScores{FlexLong: 5, FlexTor: 5, Stability: 0},
			},
			want: 100,
		},
		{
			name: "negative specs clamp high",
			shoe: Shoe{Specs: ShoeSpecs{Weight: -10000, Drop: -50, Stack: -300}},
			want: 100,
		},
		{
			name: "extreme specs clamp low",
			shoe: Shoe{
				Specs:  ShoeSpecs{Weight: 1e6, Drop: 1e6, Stack: 1e6},
				Scores: MinimalismScores{FlexLong: -100, FlexTor: -100, Stability: 50},
			},
			want: 0,
		},
		{
			name: "not a number",
			shoe: Shoe{Specs: ShoeSpecs{Weight: math.NaN()}},
			want: 0,
		},
		{
			name: "infinite",
			shoe: Shoe{Specs: ShoeSpecs{Weight: math.Inf(-1)}},
			want: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinimalismIndex(tt.shoe)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestMinimalismIndexAlwaysInRange(t *testing.T) {
	values := []float64{-1e9, -500, -1, 0, 0.5, 3, 150, 400, 1e9}
	for _, w := range values {
		for _, d := range values {
			for _, f := range values {
				got := MinimalismIndex(Shoe{
					Specs:  ShoeSpecs{Weight: w, Drop: d, Stack: f},
					Scores: MinimalismScores{FlexLong: f, FlexTor: d, Stability: w},
				})
				if got < 0 || got > 100 {
					t.Fatalf("MinimalismIndex(w=%v d=%v f=%v) = %d", w, d, f, got)
				}
			}
		}
	}
}

func TestLimbSymmetryIndex(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Bilateral
		want  float64
	}{
		{"identical", []Bilateral{{10, 10}}, 100},
		{"one side zero", []Bilateral{{0, 10}}, 0},
		{"both near zero is skipped", []Bilateral{{0.001, 0.002}}, 100},
		{"near zero pair does not dilute", []Bilateral{{10, 10}, {0, 0.005}}, 100},
		{"mean of pairs", []Bilateral{{5, 10}, {10, 10}}, 75},
		{"sign ignored", []Bilateral{{-4, 8}}, 50},
		{"nothing measured", nil, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LimbSymmetryIndex(tt.pairs...), 1e-9)
		})
	}
}

func TestCompositeRadarDefaults(t *testing.T) {
	radar := CompositeRadar(NewRecord())
	require.Len(t, radar, 7)

	want := map[string]float64{
		AxisPain:        100,
		AxisFunction:    0,
		AxisStability:   50,
		AxisStrength:    50,
		AxisPosture:     100,
		AxisSymmetry:    100,
		AxisFlexibility: 58,
	}
	for key, v := range want {
		got, ok := radar.Value(key)
		require.True(t, ok, key)
		assert.InDelta(t, v, got, 1e-9, key)
	}
	assert.Equal(t, "Dor (Alívio)", radar[0].Subject)
	assert.Equal(t, "Flexibilidade", radar[6].Subject)
}

func TestCompositeRadarAxesInRange(t *testing.T) {
	r := NewRecord()
	r.EVA = 14
	r.FPI.Left = []float64{2, 2, 2, 2, 2, 2}
	r.FPI.Right = []float64{-2, -2, -2, -2, -2, -2}
	r.SingleLegSquat.PelvicDrop = Bilateral{9, 9}
	r.Strength = Strength{GluteMedLeft: 10, GluteMedRight: 10, GluteMaxLeft: 10, GluteMaxRight: 10}
	r.Functional.Items = []FunctionalItem{{Score: 10}, {Score: 10}}

	for _, a := range CompositeRadar(r) {
		assert.GreaterOrEqual(t, a.Value, 0.0, a.Key)
		assert.LessOrEqual(t, a.Value, 100.0, a.Key)
	}
	posture, _ := CompositeRadar(r).Value(AxisPosture)
	assert.Equal(t, 4.0, posture)
}

func TestStrengthAxisDefaultsUntested(t *testing.T) {
	r := NewRecord()
	r.Strength = Strength{GluteMedLeft: 9}
	got, _ := CompositeRadar(r).Value(AxisStrength)
	assert.InDelta(t, 60, got, 1e-9)
}

func TestFlexibilityExcludesIncompleteTests(t *testing.T) {
	left := 2.0
	r := Record{
		Flexibility: Flexibility{
			Hamstring: Pair(132, 132),
			Thomas:    OptionalPair{Left: &left},
		},
	}
	assert.InDelta(t, 100, FlexibilityScore(r), 1e-9)

	assert.Equal(t, 0.0, FlexibilityScore(Record{}))
}

func TestComputeYBalance(t *testing.T) {
	y := YBalance{
		LimbLength:     Bilateral{Left: 80, Right: 0},
		Anterior:       Trials{Left: [3]float64{60, 62, 64}},
		Posteromedial:  Trials{Left: [3]float64{90, 90, 90}},
		Posterolateral: Trials{Left: [3]float64{88, 88, 88}},
	}
	got := ComputeYBalance(y)
	assert.InDelta(t, 62, got.Anterior.Left, 1e-9)
	assert.InDelta(t, 100, got.Composite.Left, 1e-9)
	assert.Equal(t, 0.0, got.Composite.Right)

	y.IsManual = true
	y.ManualStability = Bilateral{Left: 7, Right: 4}
	got = ComputeYBalance(y)
	assert.Equal(t, Bilateral{Left: 70, Right: 40}, got.Composite)
}

func TestAnalyze(t *testing.T) {
	r := NewRecord()
	r.FPI.Right = []float64{2, 2, 2, 1, 1, 1}
	p := Analyze(r)
	assert.Equal(t, PostureProne, p.FootPosture.Right.Label)
	assert.Equal(t, PostureNeutral, p.FootPosture.Left.Label)
	assert.Equal(t, 49, p.MinimalismIndex)
	assert.Len(t, p.Radar, 7)
	assert.InDelta(t, 100, p.Symmetry, 1e-9)
}

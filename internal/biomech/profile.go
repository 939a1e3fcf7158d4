package biomech

// Profile bundles every index computed from one record.
type Profile struct {
	FootPosture struct {
		Left  FootPosture `json:"left"`
		Right FootPosture `json:"right"`
	} `json:"footPosture"`
	MinimalismIndex int            `json:"minimalismIndex"`
	Symmetry        float64        `json:"symmetry"`
	Radar           Radar          `json:"radar"`
	YBalance        YBalanceResult `json:"yBalance"`
}

// Analyze computes the full profile of r.
func Analyze(r Record) Profile {
	var p Profile
	p.FootPosture.Left = ClassifyFootPosture(r.FPI.Left)
	p.FootPosture.Right = ClassifyFootPosture(r.FPI.Right)
	p.MinimalismIndex = MinimalismIndex(r.CurrentShoe)
	p.Symmetry = LimbSymmetryIndex(SymmetryPairs(r)...)
	p.Radar = CompositeRadar(r)
	p.YBalance = ComputeYBalance(r.YBalance)
	return p
}

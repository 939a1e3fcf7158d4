package biomech

// YBalanceResult holds mean reach per direction and the composite score per side.
type YBalanceResult struct {
	Anterior       Bilateral `json:"anterior"`
	Posteromedial  Bilateral `json:"posteromedial"`
	Posterolateral Bilateral `json:"posterolateral"`
	Composite      Bilateral `json:"composite"`
}

func meanReach(t Trials) Bilateral {
	return Bilateral{
		Left:  (t.Left[0] + t.Left[1] + t.Left[2]) / 3,
		Right: (t.Right[0] + t.Right[1] + t.Right[2]) / 3,
	}
}

// ComputeYBalance averages the three trials of each direction. The composite
// is the summed reach over three limb lengths, in percent; with manual
// stability it is the manual 0-10 score x 10 instead.
func ComputeYBalance(y YBalance) YBalanceResult {
	r := YBalanceResult{
		Anterior:       meanReach(y.Anterior),
		Posteromedial:  meanReach(y.Posteromedial),
		Posterolateral: meanReach(y.Posterolateral),
	}
	if y.IsManual {
		r.Composite = Bilateral{Left: y.ManualStability.Left * 10, Right: y.ManualStability.Right * 10}
		return r
	}
	composite := func(ant, pm, pl, limb float64) float64 {
		if limb <= 0 {
			return 0
		}
		return (ant + pm + pl) / (3 * limb) * 100
	}
	r.Composite.Left = composite(r.Anterior.Left, r.Posteromedial.Left, r.Posterolateral.Left, y.LimbLength.Left)
	r.Composite.Right = composite(r.Anterior.Right, r.Posteromedial.Right, r.Posterolateral.Right, y.LimbLength.Right)
	return r
}

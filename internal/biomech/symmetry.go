package biomech

import "math"

// symmetryEpsilon: a pair with both sides below it was not measured.
const symmetryEpsilon = 0.01

// LimbSymmetryIndex averages min/max x 100 over the measured pairs. Pairs
// where both sides are ~0 are skipped; with nothing measured the limbs are
// taken as symmetric (100).
func LimbSymmetryIndex(pairs ...Bilateral) float64 {
	var total float64
	var n int
	for _, p := range pairs {
		a, b := math.Abs(p.Left), math.Abs(p.Right)
		if a < symmetryEpsilon && b < symmetryEpsilon {
			continue
		}
		lo, hi := math.Min(a, b), math.Max(a, b)
		total += lo / hi * 100
		n++
	}
	if n == 0 {
		return 100
	}
	return total / float64(n)
}

// SymmetryPairs are the measurements the radar's symmetry axis uses: leg
// length, navicular height, glute medius strength and lunge dorsiflexion.
// A missing lunge side counts as 0.
func SymmetryPairs(r Record) []Bilateral {
	return []Bilateral{
		r.Anthropometry.LegLength,
		r.Anthropometry.Navicular,
		{Left: r.Strength.GluteMedLeft, Right: r.Strength.GluteMedRight},
		{Left: deref(r.Flexibility.Lunge.Left), Right: deref(r.Flexibility.Lunge.Right)},
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

package scoring

import "github.com/dotcommander/physioscore/internal/types"

// Classification labels as printed on the clinical forms.
const (
	LabelLowRisk          = "Baixo Risco"
	LabelMediumRisk       = "Médio Risco"
	LabelHighPsychosocial = "Alto Risco Psicossocial"

	LabelDisabilityLow         = "Incapacidade Baixa"
	LabelDisabilityModerate    = "Incapacidade Moderada"
	LabelDisabilitySignificant = "Incapacidade Significativa"

	LabelDisabilityNone     = "Sem Incapacidade"
	LabelDisabilityMinimal  = "Incapacidade Mínima"
	LabelDisabilityMild     = "Incapacidade Leve"
	LabelDisabilitySevere   = "Incapacidade Severa"
	LabelDisabilityExtreme  = "Incapacidade Extrema (Inválido)"
	LabelDisabilityComplete = "Incapacidade Completa"

	LabelKinesiophobiaHigh = "Cinesiofobia Elevada"
	LabelKinesiophobiaLow  = "Baixa Cinesiofobia"

	LabelLysholmPoor      = "Ruim"
	LabelLysholmFair      = "Regular"
	LabelLysholmGood      = "Bom"
	LabelLysholmExcellent = "Excelente"

	QuickDASHMinAnswered = 10
	QuickDASHQuotaError  = "Responda pelo menos 10 itens"
)

// band is a lower-inclusive threshold: values >= min take label and color.
type band struct {
	min   float64
	label string
	color types.RiskColor
}

// classify walks bands from highest to lowest and falls back to the last.
func classify(v float64, bands []band) (string, types.RiskColor) {
	for _, b := range bands[:len(bands)-1] {
		if v >= b.min {
			return b.label, b.color
		}
	}
	last := bands[len(bands)-1]
	return last.label, last.color
}

var rolandMorrisBands = []band{
	{14, LabelDisabilitySignificant, types.RiskRed},
	{5, LabelDisabilityModerate, types.RiskYellow},
	{0, LabelDisabilityLow, types.RiskGreen},
}

var oswestryBands = []band{
	{61, LabelDisabilityExtreme, types.RiskRed},
	{41, LabelDisabilitySevere, types.RiskRed},
	{21, LabelDisabilityModerate, types.RiskYellow},
	{0, LabelDisabilityMinimal, types.RiskGreen},
}

var ndiBands = []band{
	{35, LabelDisabilityComplete, types.RiskRed},
	{25, LabelDisabilitySevere, types.RiskRed},
	{15, LabelDisabilityModerate, types.RiskYellow},
	{5, LabelDisabilityMild, types.RiskGreen},
	{0, LabelDisabilityNone, types.RiskGreen},
}

var lysholmBands = []band{
	{95, LabelLysholmExcellent, types.RiskGreen},
	{84, LabelLysholmGood, types.RiskGreen},
	{65, LabelLysholmFair, types.RiskYellow},
	{0, LabelLysholmPoor, types.RiskRed},
}

// colorAbove is for scales where higher is worse: strictly above red is red,
// strictly above yellow is yellow.
func colorAbove(v, yellow, red float64) types.RiskColor {
	switch {
	case v > red:
		return types.RiskRed
	case v > yellow:
		return types.RiskYellow
	default:
		return types.RiskGreen
	}
}

// colorAtLeast is colorAbove with inclusive thresholds.
func colorAtLeast(v, yellow, red float64) types.RiskColor {
	switch {
	case v >= red:
		return types.RiskRed
	case v >= yellow:
		return types.RiskYellow
	default:
		return types.RiskGreen
	}
}

// colorBelow is for scales where higher is better.
func colorBelow(v, red, yellow float64) types.RiskColor {
	switch {
	case v < red:
		return types.RiskRed
	case v < yellow:
		return types.RiskYellow
	default:
		return types.RiskGreen
	}
}

// Package footwear maps a runner's injury picture and profile to a target
// minimalism range, and picks candidate shoes from a static catalog.
package footwear

import (
	"slices"

	"github.com/dotcommander/physioscore/internal/types"
)

// InjuryStatus is the phase of the current complaint.
type InjuryStatus string

const (
	InjuryNone       InjuryStatus = "none"
	InjuryAcute      InjuryStatus = "acute"
	InjuryPersistent InjuryStatus = "persistent"
)

// Experience is the runner's self-reported level.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceRecreational Experience = "recreational"
	ExperienceCompetitive  Experience = "competitive"
)

// GoalPerformance is the goal that pushes an uninjured runner to the
// performance range.
const GoalPerformance = "Performance"

// PatientProfile is the running history captured with a biomech assessment.
type PatientProfile struct {
	Goals        []string     `json:"goals,omitempty" yaml:"goals,omitempty"`
	Experience   Experience   `json:"experience,omitempty" yaml:"experience,omitempty"`
	InjuryStatus InjuryStatus `json:"injuryStatus,omitempty" yaml:"injuryStatus,omitempty"`
}

// DefaultProfile mirrors a blank assessment form.
func DefaultProfile() PatientProfile {
	return PatientProfile{Experience: ExperienceRecreational, InjuryStatus: InjuryNone}
}

// Recommendation is a target minimalism index range with the shoe traits
// that go with it.
type Recommendation struct {
	IndexRange  [2]int   `json:"indexRange"`
	Traits      []string `json:"traits"`
	Description string   `json:"description"`
}

var (
	proximalZones = []types.Zone{types.ZoneKnee, types.ZoneHip}
	distalZones   = []types.Zone{
		types.ZoneAchilles,
		types.ZoneCalcaneus,
		types.ZoneArch,
		types.ZoneMetatarsal1,
		types.ZoneMetatarsal5,
	}
)

// Recommend evaluates the decision table. Injury phase wins over experience;
// within the acute phase distal pain is checked before proximal, within the
// persistent phase proximal comes first.
func Recommend(p PatientProfile, pain types.PainPoints) Recommendation {
	rec := Recommendation{
		IndexRange:  [2]int{0, 100},
		Traits:      []string{},
		Description: "Análise geral baseada no perfil.",
	}
	proximal := pain.Any(proximalZones...)
	distal := pain.Any(distalZones...)

	switch p.InjuryStatus {
	case InjuryAcute:
		switch {
		case distal:
			rec.IndexRange = [2]int{0, 50}
			rec.Traits = []string{"Drop Alto (>8mm)", "Amortecimento Generoso", "Solado Rígido"}
			rec.Description = "Fase Aguda Distal (Pé/Tendão): Priorizar proteção e descarga mecânica. " +
				"Calçado maximalista ou tradicional ajuda a reduzir carga no tendão de Aquiles e fáscia."
		case proximal:
			rec.IndexRange = [2]int{60, 100}
			rec.Traits = []string{"Drop Baixo (<6mm)", "Baixo Amortecimento"}
			rec.Description = "Fase Aguda Proximal (Joelho/Quadril): Priorizar redução de impacto transiente. " +
				"Calçado minimalista estimula cadência mais alta e menor impacto nas articulações."
		default:
			rec.Description = "Lesão Aguda: Manter calçado confortável atual ou aumentar proteção temporariamente."
		}
	case InjuryPersistent:
		switch {
		case proximal:
			rec.IndexRange = [2]int{80, 100}
			rec.Traits = []string{"Minimalismo Alto", "Zero Drop", "Leveza"}
			rec.Description = "Lesão Persistente Proximal: Evidência forte para aumentar o Índice Minimalista (>80%) " +
				"para reduzir carga articular no joelho e quadril."
		case distal:
			rec.IndexRange = [2]int{0, 40}
			rec.Traits = []string{"Estruturado", "Drop > 10mm"}
			rec.Description = "Lesão Persistente Distal: Reduzir carga tecidual local. " +
				"Manter em calçados com maior suporte e drop elevado."
		}
	default:
		switch {
		case p.Experience == ExperienceBeginner:
			rec.IndexRange = [2]int{60, 90}
			rec.Traits = []string{"Leve", "Flexível"}
			rec.Description = "Iniciante: Evite calçados muito pesados ou muito rígidos. " +
				"Um índice moderado a alto (>60%) favorece o fortalecimento natural e boa técnica."
		case p.Experience == ExperienceCompetitive || slices.Contains(p.Goals, GoalPerformance):
			rec.IndexRange = [2]int{80, 100}
			rec.Traits = []string{"Performance", "Baixo Peso", "Responsivo"}
			rec.Description = "Performance: Calçados com alto índice minimalista ou super-shoes (placa) dependendo da prova. " +
				"Foco em economia de corrida."
		default:
			rec.Description = "Sem Lesões: Manter hábitos atuais ('Não se mexe em time que está ganhando'). " +
				"Se desejar transição, faça de forma gradual."
		}
	}
	return rec
}

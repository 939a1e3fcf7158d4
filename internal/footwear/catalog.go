package footwear

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ShoeType groups catalog models.
type ShoeType string

const (
	TypeMinimalist   ShoeType = "minimalist"
	TypeTransitional ShoeType = "transitional"
	TypeMaximalist   ShoeType = "maximalist"
	TypeStability    ShoeType = "stability"
	TypeRace         ShoeType = "race"
	TypeTrail        ShoeType = "trail"
	TypeRoad         ShoeType = "road"
)

// Model is one catalog shoe.
type Model struct {
	ID               string   `json:"id" yaml:"id"`
	Brand            string   `json:"brand" yaml:"brand"`
	Name             string   `json:"model" yaml:"model"`
	Type             ShoeType `json:"type" yaml:"type"`
	Weight           float64  `json:"weight" yaml:"weight"`
	Drop             float64  `json:"drop" yaml:"drop"`
	StackHeight      float64  `json:"stackHeight" yaml:"stackHeight"`
	Flexibility      string   `json:"flexibility" yaml:"flexibility"`
	StabilityControl bool     `json:"stabilityControl" yaml:"stabilityControl"`
	MinimalismIndex  int      `json:"minimalismIndex" yaml:"minimalismIndex"`
}

// Catalog is an ordered list of models; earlier entries are preferred.
type Catalog []Model

//go:embed catalog.yaml
var catalogYAML []byte

var defaultCatalog = mustParseCatalog(catalogYAML)

// ParseCatalog decodes a YAML list of models.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse shoe catalog: %w", err)
	}
	seen := make(map[string]bool, len(c))
	for i, m := range c {
		if m.ID == "" {
			return nil, fmt.Errorf("shoe catalog entry %d has no id", i)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("duplicate shoe id %q", m.ID)
		}
		if m.MinimalismIndex < 0 || m.MinimalismIndex > 100 {
			return nil, fmt.Errorf("shoe %q: minimalism index %d outside 0-100", m.ID, m.MinimalismIndex)
		}
		seen[m.ID] = true
	}
	return c, nil
}

func mustParseCatalog(data []byte) Catalog {
	c, err := ParseCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns a copy of the embedded catalog.
func DefaultCatalog() Catalog {
	return slices.Clone(defaultCatalog)
}

// OfTypes returns the models of any of the given types, in catalog order.
func (c Catalog) OfTypes(types ...ShoeType) Catalog {
	var out Catalog
	for _, m := range c {
		if slices.Contains(types, m.Type) {
			out = append(out, m)
		}
	}
	return out
}

// InRange returns the models whose minimalism index lies in [lo, hi].
func (c Catalog) InRange(lo, hi int) Catalog {
	var out Catalog
	for _, m := range c {
		if m.MinimalismIndex >= lo && m.MinimalismIndex <= hi {
			out = append(out, m)
		}
	}
	return out
}

// FootType is the coarse arch class used for shoe picks.
type FootType string

const (
	FootFlat    FootType = "flat"
	FootNeutral FootType = "neutral"
	FootCavus   FootType = "cavus"
)

// FootTypeFromFPI derives the foot type from a Foot Posture Index sum with
// the same strict thresholds as the posture classification.
func FootTypeFromFPI(sum float64) FootType {
	switch {
	case sum > 6:
		return FootFlat
	case sum < -6:
		return FootCavus
	default:
		return FootNeutral
	}
}

// Level is the training level used for shoe picks.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// LevelFor maps a profile experience onto a pick level.
func LevelFor(e Experience) Level {
	switch e {
	case ExperienceBeginner:
		return LevelBeginner
	case ExperienceCompetitive:
		return LevelAdvanced
	default:
		return LevelIntermediate
	}
}

// MaxPicks caps RecommendShoes.
const MaxPicks = 3

// TargetTypes returns the shoe types suited to a foot type and level.
func TargetTypes(foot FootType, level Level) []ShoeType {
	switch {
	case foot == FootFlat && level == LevelBeginner:
		return []ShoeType{TypeStability, TypeMaximalist, TypeRoad}
	case foot == FootCavus || (foot == FootFlat && level == LevelAdvanced):
		return []ShoeType{TypeTransitional, TypeMinimalist, TypeTrail}
	case level == LevelBeginner:
		return []ShoeType{TypeMaximalist, TypeTransitional, TypeRoad}
	default:
		return []ShoeType{TypeTransitional, TypeMinimalist}
	}
}

// RecommendShoes returns up to MaxPicks models of the target types.
func (c Catalog) RecommendShoes(foot FootType, level Level) Catalog {
	matches := c.OfTypes(TargetTypes(foot, level)...)
	if len(matches) > MaxPicks {
		matches = matches[:MaxPicks]
	}
	return matches
}

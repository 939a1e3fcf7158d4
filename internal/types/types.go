// Package types provides shared types used across the physioscore codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// RiskColor is the traffic-light classification attached to a score record.
type RiskColor string

// Risk color constants.
const (
	RiskGreen  RiskColor = "green"
	RiskYellow RiskColor = "yellow"
	RiskRed    RiskColor = "red"
)

// Valid reports whether c is one of green, yellow or red.
func (c RiskColor) Valid() bool {
	switch c {
	case RiskGreen, RiskYellow, RiskRed:
		return true
	}
	return false
}

// Side identifies a limb.
type Side string

// Side constants.
const (
	Left  Side = "left"
	Right Side = "right"
)

// ValidationError represents a boundary validation finding for an input document.
type ValidationError struct {
	File     string
	Message  string
	Severity string // error, warning, info
	Source   string // schema, range, registry
	Field    string
}

// Finding source constants.
const (
	SourceSchema   = "schema"   // CUE schema violation
	SourceRange    = "range"    // answer outside declared options or bounds
	SourceRegistry = "registry" // unknown questionnaire or question id
)

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Document kind constants.
const (
	KindAnswers = "answers"
	KindBiomech = "biomech"
)

// Zone is an anatomical region on the pain map.
type Zone string

// Pain map zones.
const (
	ZoneMetatarsal1 Zone = "metatarsal1"
	ZoneMetatarsal3 Zone = "metatarsal3"
	ZoneMetatarsal5 Zone = "metatarsal5"
	ZoneBaseMeta5   Zone = "baseMeta5"
	ZoneCalcaneus   Zone = "calcaneus"
	ZoneArch        Zone = "arch"
	ZoneAchilles    Zone = "achilles"
	ZoneAnkle       Zone = "ankle"
	ZoneKnee        Zone = "knee"
	ZoneHip         Zone = "hip"
	ZoneGlute       Zone = "glute"
	ZoneSacrum      Zone = "sacrum"
	ZoneLumbar      Zone = "lumbar"
	ZoneThoracic    Zone = "thoracic"
	ZoneCervical    Zone = "cervical"
	ZoneShoulder    Zone = "shoulder"
	ZoneElbow       Zone = "elbow"
	ZoneWrist       Zone = "wrist"
	ZoneHead        Zone = "head"
)

// PainSides flags which side of a zone hurts.
type PainSides struct {
	Left  bool `json:"left,omitempty" yaml:"left,omitempty"`
	Right bool `json:"right,omitempty" yaml:"right,omitempty"`
}

// PainPoints maps a zone to the sides reported painful.
type PainPoints map[Zone]PainSides

// Any reports whether any of zones hurts on either side.
func (p PainPoints) Any(zones ...Zone) bool {
	for _, z := range zones {
		if s := p[z]; s.Left || s.Right {
			return true
		}
	}
	return false
}

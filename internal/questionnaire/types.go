package questionnaire

import (
	"errors"
	"fmt"
)

// ErrUnknownAssessmentType is returned when an identifier does not name a
// questionnaire in the catalog.
var ErrUnknownAssessmentType = errors.New("unknown assessment type")

// Type is the closed set of supported questionnaires.
type Type int

// Spine scales.
const (
	StartBack Type = iota
	RolandMorris
	Oswestry
	Quebec
	NDI
	Tampa

	// Upper limb.
	QuickDASH
	SPADI
	PRWE

	// Lower limb and joint.
	LEFS
	WOMAC
	HOOS
	IKDC
	Lysholm
	KOOS
	FAOS
	FAAM
	AOFAS
	IHOT33

	// General.
	McGillShort
	PSFS

	numTypes
)

var typeIDs = [numTypes]string{
	StartBack:    "start_back",
	RolandMorris: "roland_morris",
	Oswestry:     "oswestry",
	Quebec:       "quebec",
	NDI:          "ndi",
	Tampa:        "tampa_kinesiophobia",
	QuickDASH:    "quickdash",
	SPADI:        "spadi",
	PRWE:         "prwe",
	LEFS:         "lefs",
	WOMAC:        "womac",
	HOOS:         "hoos",
	IKDC:         "ikdc",
	Lysholm:      "lysholm",
	KOOS:         "koos",
	FAOS:         "faos",
	FAAM:         "faam",
	AOFAS:        "aofas",
	IHOT33:       "ihot33",
	McGillShort:  "mcgill_short",
	PSFS:         "psfs",
}

// String returns the stable identifier, e.g. "start_back".
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeIDs[t]
}

// Valid reports whether t is a member of the closed set.
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

// ParseType resolves an identifier.
func ParseType(id string) (Type, error) {
	for i, s := range typeIDs {
		if s == id {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAssessmentType, id)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAssessmentType, int(t))
	}
	return []byte(typeIDs[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Types returns every supported questionnaire in catalog order.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

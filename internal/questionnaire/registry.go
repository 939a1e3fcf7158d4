package questionnaire

import "fmt"

// catalog is indexed by Type. Every slot must be filled; init panics otherwise.
var catalog = [numTypes]*Definition{
	StartBack:    &startBack,
	RolandMorris: &rolandMorris,
	Oswestry:     &oswestry,
	Quebec:       &quebec,
	NDI:          &ndi,
	Tampa:        &tampa,
	QuickDASH:    &quickDASH,
	SPADI:        &spadi,
	PRWE:         &prwe,
	LEFS:         &lefs,
	WOMAC:        &womac,
	HOOS:         &hoos,
	IKDC:         &ikdc,
	Lysholm:      &lysholm,
	KOOS:         &koos,
	FAOS:         &faos,
	FAAM:         &faam,
	AOFAS:        &aofas,
	IHOT33:       &ihot33,
	McGillShort:  &mcGillShort,
	PSFS:         &psfs,
}

func init() {
	for i, def := range catalog {
		if def == nil {
			panic(fmt.Sprintf("questionnaire: no definition for %s", Type(i)))
		}
		if def.Type != Type(i) {
			panic(fmt.Sprintf("questionnaire: %s registered under %s", def.Type, Type(i)))
		}
		seen := make(map[string]bool, len(def.Questions))
		for _, q := range def.Questions {
			if seen[q.ID] {
				panic(fmt.Sprintf("questionnaire: duplicate question id %q in %s", q.ID, def.Type))
			}
			seen[q.ID] = true
		}
	}
}

// Lookup returns a copy of the definition for t.
func Lookup(t Type) (Definition, error) {
	if !t.Valid() {
		return Definition{}, fmt.Errorf("%w: %d", ErrUnknownAssessmentType, int(t))
	}
	return catalog[t].clone(), nil
}

// Get returns a copy of the definition for a string identifier such as "oswestry".
func Get(id string) (Definition, error) {
	t, err := ParseType(id)
	if err != nil {
		return Definition{}, err
	}
	return Lookup(t)
}

// All returns every definition in catalog order.
func All() []Definition {
	out := make([]Definition, 0, numTypes)
	for _, def := range catalog {
		out = append(out, def.clone())
	}
	return out
}

const placeholderText = "Item %d (Consulte formulário físico)"

// placeholders generates n numbered items bound to the paper form. Item ids
// are prefix1..prefixN.
func placeholders(prefix, label string, n int, kind Kind, opts []Option) []Question {
	out := make([]Question, n)
	for i := range out {
		text := fmt.Sprintf(placeholderText, i+1)
		if label != "" {
			text = label + ": " + text
		}
		out[i] = Question{
			ID:      fmt.Sprintf("%s%d", prefix, i+1),
			Text:    text,
			Kind:    kind,
			Options: opts,
		}
	}
	return out
}

// visualPlaceholders generates n numbered VAS items in [lo, hi].
func visualPlaceholders(prefix string, n int, lo, hi float64, minLabel, maxLabel string) []Question {
	out := placeholders(prefix, "", n, KindVisualAnalog, nil)
	for i := range out {
		out[i].Min, out[i].Max = lo, hi
		out[i].MinLabel, out[i].MaxLabel = minLabel, maxLabel
	}
	return out
}

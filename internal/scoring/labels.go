package scoring

// labels maps every metric key the engine emits to its display label.
// Keys missing here render verbatim so a new metric is visible, not guessed.
var labels = map[string]string{
	"total":            "Total",
	"psychosocial":     "Psychosocial",
	"classification":   "Classification",
	"percent":          "Percent",
	"max":              "Max",
	"score":            "Score",
	"error":            "Error",
	"average":          "Average",
	"sensory":          "Sensory",
	"affective":        "Affective",
	"totalDescriptors": "Total Descriptors",
	"vas":              "VAS",
	"ppi":              "PPI",
	"painScore":        "Pain Score",
	"disabilityScore":  "Disability Score",
	"painSum":          "Pain Sum",
	"functionSum":      "Function Sum",
	"pain":             "Pain",
	"stiffness":        "Stiffness",
	"func":             "Function",
	"totalItems":       "Total Items",
	"answered":         "Answered",
}

// Label returns the display label for a metric key.
func Label(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

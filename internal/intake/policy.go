package intake

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dotcommander/physioscore/internal/questionnaire"
	"github.com/dotcommander/physioscore/internal/types"
)

// ErrOutOfRange is returned under PolicyReject when an answer is not legal
// for its question.
var ErrOutOfRange = errors.New("answer out of range")

// Policy decides what happens to answers that do not match their question.
type Policy string

const (
	// PolicyReject fails the document.
	PolicyReject Policy = "reject"
	// PolicyClamp snaps values to the nearest legal answer and drops
	// unknown ids.
	PolicyClamp Policy = "clamp"
	// PolicyPass hands answers to the engine untouched.
	PolicyPass Policy = "pass"
)

// ParsePolicy parses a policy name; the empty string means reject.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyReject, nil
	case PolicyReject, PolicyClamp, PolicyPass:
		return p, nil
	default:
		return "", fmt.Errorf("invalid policy %q (valid: reject, clamp, pass)", s)
	}
}

// Apply checks answers against def. It never mutates answers. Findings are
// reported for every adjusted or rejected answer, in question-id order.
// NaN and infinite answers fail the document under every policy.
func Apply(def questionnaire.Definition, answers questionnaire.Answers, policy Policy) (questionnaire.Answers, []types.ValidationError, error) {
	if bad := nonFinite(answers); len(bad) > 0 {
		return nil, bad, fmt.Errorf("%w: %d non-finite answer(s) for %s", ErrOutOfRange, len(bad), def.Type)
	}
	if policy == PolicyPass {
		return answers.Clone(), nil, nil
	}

	out := make(questionnaire.Answers, len(answers))
	var findings []types.ValidationError
	severity := types.SeverityWarning
	if policy == PolicyReject {
		severity = types.SeverityError
	}

	for _, id := range answers.Keys() {
		v := answers[id]
		q, ok := def.Question(id)
		if !ok {
			findings = append(findings, types.ValidationError{
				Message:  fmt.Sprintf("unknown question %q for %s", id, def.Type),
				Severity: severity,
				Source:   types.SourceRegistry,
				Field:    id,
			})
			continue
		}
		if q.Accepts(v) {
			out[id] = v
			continue
		}
		if policy == PolicyClamp {
			snapped := q.Nearest(v)
			out[id] = snapped
			findings = append(findings, types.ValidationError{
				Message:  fmt.Sprintf("value %v adjusted to %v", v, snapped),
				Severity: severity,
				Source:   types.SourceRange,
				Field:    id,
			})
			continue
		}
		findings = append(findings, types.ValidationError{
			Message:  fmt.Sprintf("value %v is not a legal answer (%s)", v, q.Legal()),
			Severity: severity,
			Source:   types.SourceRange,
			Field:    id,
		})
	}

	if policy == PolicyReject && len(findings) > 0 {
		return nil, findings, fmt.Errorf("%w: %d invalid answer(s) for %s", ErrOutOfRange, len(findings), def.Type)
	}
	return out, findings, nil
}

func nonFinite(answers questionnaire.Answers) []types.ValidationError {
	var out []types.ValidationError
	for _, id := range answers.Keys() {
		if v := answers[id]; math.IsNaN(v) || math.IsInf(v, 0) {
			out = append(out, types.ValidationError{
				Message:  fmt.Sprintf("value %v is not a finite number", v),
				Severity: types.SeverityError,
				Source:   types.SourceRange,
				Field:    id,
			})
		}
	}
	return out
}

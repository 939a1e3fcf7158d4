// Package scoring turns questionnaire answers into score records. Every
// scorer is a pure function of its Answers argument.
package scoring

import (
	"fmt"

	"github.com/dotcommander/physioscore/internal/questionnaire"
)

// Func scores one questionnaire.
type Func func(questionnaire.Answers) Record

// Score dispatches to the scorer for t. It fails only for an identifier
// outside the closed set.
func Score(t questionnaire.Type, a questionnaire.Answers) (Record, error) {
	f, err := For(t)
	if err != nil {
		return Record{}, err
	}
	return f(a), nil
}

// For returns the scorer bound to t.
func For(t questionnaire.Type) (Func, error) {
	switch t {
	case questionnaire.StartBack:
		return func(a questionnaire.Answers) Record { return ScoreStartBack(a).Record() }, nil
	case questionnaire.RolandMorris:
		return func(a questionnaire.Answers) Record { return ScoreRolandMorris(a).Record() }, nil
	case questionnaire.Oswestry:
		return func(a questionnaire.Answers) Record { return ScoreOswestry(a).Record() }, nil
	case questionnaire.Quebec:
		return func(a questionnaire.Answers) Record { return ScoreQuebec(a).Record() }, nil
	case questionnaire.NDI:
		return func(a questionnaire.Answers) Record { return ScoreNDI(a).Record() }, nil
	case questionnaire.Tampa:
		return func(a questionnaire.Answers) Record { return ScoreTampa(a).Record() }, nil
	case questionnaire.QuickDASH:
		return func(a questionnaire.Answers) Record { return ScoreQuickDASH(a).Record() }, nil
	case questionnaire.SPADI:
		return func(a questionnaire.Answers) Record { return ScoreSPADI(a).Record() }, nil
	case questionnaire.PRWE:
		return func(a questionnaire.Answers) Record { return ScorePRWE(a).Record() }, nil
	case questionnaire.LEFS:
		return func(a questionnaire.Answers) Record { return ScoreLEFS(a).Record() }, nil
	case questionnaire.WOMAC:
		return func(a questionnaire.Answers) Record { return ScoreWOMAC(a).Record() }, nil
	case questionnaire.HOOS:
		return func(a questionnaire.Answers) Record { return ScoreHOOS(a).recordWithItems() }, nil
	case questionnaire.IKDC:
		return func(a questionnaire.Answers) Record {
			r := ScoreIKDC(a)
			return NewRecord(text("score", fixed1(r.Score)), risk(r.Risk))
		}, nil
	case questionnaire.Lysholm:
		return func(a questionnaire.Answers) Record { return ScoreLysholm(a).Record() }, nil
	case questionnaire.KOOS:
		return func(a questionnaire.Answers) Record { return ScoreKOOS(a).Record() }, nil
	case questionnaire.FAOS:
		return func(a questionnaire.Answers) Record { return ScoreFAOS(a).Record() }, nil
	case questionnaire.FAAM:
		return func(a questionnaire.Answers) Record {
			r := ScoreFAAM(a)
			return NewRecord(text("score", percent1(r.Score)), risk(r.Risk))
		}, nil
	case questionnaire.AOFAS:
		return func(a questionnaire.Answers) Record { return ScoreAOFAS(a).Record() }, nil
	case questionnaire.IHOT33:
		return func(a questionnaire.Answers) Record {
			r := ScoreIHOT33(a)
			return NewRecord(text("total", fixed1(r.Mean)), risk(r.Risk))
		}, nil
	case questionnaire.McGillShort:
		return func(a questionnaire.Answers) Record { return ScoreMcGill(a).Record() }, nil
	case questionnaire.PSFS:
		return func(a questionnaire.Answers) Record {
			r := ScorePSFS(a)
			return NewRecord(text("average", fixed1(r.Mean)), risk(r.Risk))
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", questionnaire.ErrUnknownAssessmentType, t)
}

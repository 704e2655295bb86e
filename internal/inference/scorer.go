package inference

import (
	"slices"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// Scorer picks the type with the most present scoring keys. Ties go to the earlier type
// in model.DocumentTypes.
type Scorer struct {
	keys map[model.DocumentType][]model.Key
}

// NewScorer creates a scorer over each type's domain keys. statement_period is left out
// of credit's keys because personal account statements carry it too.
func NewScorer() *Scorer {
	keys := make(map[model.DocumentType][]model.Key, len(model.DocumentTypes))
	for _, t := range model.DocumentTypes {
		keys[t] = model.DomainKeys(t)
	}
	keys[model.DocumentTypeCredit] = slices.DeleteFunc(keys[model.DocumentTypeCredit], func(k model.Key) bool {
		return k == model.KeyStatementPeriod
	})
	return &Scorer{keys: keys}
}

// Name implements Stage.
func (s *Scorer) Name() string { return StageScore }

// Scores returns the number of present scoring keys per type.
func (s *Scorer) Scores(fields model.FieldSet) map[model.DocumentType]int {
	scores := make(map[model.DocumentType]int, len(s.keys))
	for t, keys := range s.keys {
		for _, k := range keys {
			if fields.Has(k) {
				scores[t]++
			}
		}
	}
	return scores
}

// Infer implements Stage. A zero best score declines.
func (s *Scorer) Infer(in Input) (model.DocumentType, bool) {
	scores := s.Scores(in.Fields)
	best, bestScore := model.DocumentTypeUnknown, 0
	for _, t := range model.DocumentTypes {
		if scores[t] > bestScore {
			best, bestScore = t, scores[t]
		}
	}
	return best, bestScore > 0
}

// Package inference decides which document type an extracted field set belongs to.
//
// Stages run in a fixed order and the first stage that resolves a type decides. Field
// evidence is scored first; keyword heuristics only run when no domain field matched.
package inference

import (
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// Stage names reported in a Result.
const (
	StageScore        = "score"
	StageKeywordRules = "keyword_rules"
	StageKeywordBag   = "keyword_bag"
	StageNone         = "none"
)

// Input is everything a stage may look at.
type Input struct {
	Fields   model.FieldSet
	Text     string
	Language model.Language
}

// Stage resolves a document type or declines.
type Stage interface {
	Name() string
	Infer(in Input) (model.DocumentType, bool)
}

// Result is the decided type and the stage that decided it.
type Result struct {
	Type  model.DocumentType
	Stage string
}

// Engine evaluates stages in order.
type Engine struct {
	stages []Stage
}

// NewEngine creates an engine over the given stages.
func NewEngine(stages ...Stage) *Engine {
	return &Engine{stages: stages}
}

// NewDefaultEngine creates the standard scorer, keyword rule and keyword bag engine.
func NewDefaultEngine() *Engine {
	return NewEngine(NewScorer(), DefaultKeywordRules(), MustKeywordBag(DefaultKeywordPatterns()))
}

// Infer returns the first resolved type, or unknown when no stage resolves one.
func (e *Engine) Infer(in Input) Result {
	for _, s := range e.stages {
		if t, ok := s.Infer(in); ok {
			return Result{Type: t, Stage: s.Name()}
		}
	}
	return Result{Type: model.DocumentTypeUnknown, Stage: StageNone}
}

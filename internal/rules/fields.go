package rules

import "github.com/MuhammadZahidRWTH/docextract/internal/model"

// Field binds a chain to the key it fills.
type Field struct {
	Key   model.Key
	Rules Chain
}

// FieldRules is a per-language label dictionary: one chain per key.
type FieldRules []Field

// Extract runs every chain and returns the fields that matched and normalized.
func (fr FieldRules) Extract(text string) model.FieldSet {
	out := model.NewFieldSet()
	for _, f := range fr {
		if v, ok := f.Rules.Find(text); ok {
			out.SetString(f.Key, v)
		}
	}
	return out
}

package investment

import (
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

// englishReferenceAssetClasses are the asset classes of the English portfolio summary
// layout. English summaries carry no countable asset section, so the asset count of a
// recognized summary is the length of this list.
var englishReferenceAssetClasses = []string{
	"Equities",
	"Fixed Income",
	"Real Estate",
	"Alternatives",
	"Cash & Equivalents",
}

var englishFields = rules.FieldRules{
	{Key: model.KeyPortfolioID, Rules: rules.Chain{
		rules.Capture(`(INV-EN-\d{5}-\d{4})`, nil),
	}},
	{Key: model.KeyPortfolioValue, Rules: rules.Chain{
		rules.Capture(`(?s)total value of.*?\$([\d,]+\.\d{2})`, rules.Compose(func(s string) string {
			return "$" + s
		}, normalize.Amount)),
	}},
}

// extractEnglish only reports the reference asset count once the text is recognized as a
// portfolio summary by its id or total value.
func extractEnglish(text string) model.FieldSet {
	out := englishFields.Extract(text)
	if len(out) > 0 {
		out.SetInt(model.KeyAssetNumber, len(englishReferenceAssetClasses))
	}
	return out
}

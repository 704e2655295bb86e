package investment

import (
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

var frenchHandler = frenchSummary{
	summaryHandler: newSummaryHandler(summaryLabels{
		value:   `valeur totale.*?portefeuille`,
		risk:    `profil de risque`,
		section: `Répartition des actifs`,
	}, rules.Capture(`(?i)numéro\s+de\s+compte[:\s]*([A-Z]{2}\d[\d\s]{11,34}\d{2})`, rules.Compose(rules.Compact, normalize.Text))),
	maturity: rules.Chain{
		rules.Capture(`Montant\s+(?:à l['’]échéance|final)[:\s]*([\d\s]+,\d{2})`, normalize.Amount),
	},
}

// frenchSummary adds the term-deposit layout, whose only amount is the maturity amount.
type frenchSummary struct {
	summaryHandler
	maturity rules.Chain
}

func (h frenchSummary) Extract(text string) model.FieldSet {
	out := h.summaryHandler.Extract(text)
	if !out.Has(model.KeyPortfolioValue) {
		if v, ok := h.maturity.Find(text); ok {
			out.SetString(model.KeyPortfolioValue, v)
		}
	}
	return out
}

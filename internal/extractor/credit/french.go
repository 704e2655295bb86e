package credit

import (
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

// frenchHandler reads card statements first. Only when no card field matched does it read
// the text as a loan offer; the two results are never combined.
type frenchHandler struct {
	card statementHandler
	loan rules.FieldRules
}

func newFrenchHandler() frenchHandler {
	money := rules.WithLang(normalize.Money, model.LanguageFrench)
	amount := `[\s:\-]*([\d .,\x{00A0}\x{202F}]+)`
	return frenchHandler{
		card: newStatementHandler(model.LanguageFrench, frenchCardLabels),
		loan: rules.FieldRules{
			{Key: model.KeyCreditLimit, Rules: rules.Labelled([]string{`Montant du prêt`}, amount, money)},
			{Key: model.KeyInterestRate, Rules: rules.Labelled([]string{`Taux d['’]intérêt`}, `[\s:\-]*([\d.,]+)`, normalize.Percent)},
			{Key: model.KeyPaymentDueDate, Rules: rules.Labelled([]string{`Date du premier remboursement`}, `[\s:\-]*([^\n]+)`,
				rules.WithLang(normalize.AnyDate, model.LanguageFrench))},
			{Key: model.KeyStatementPeriod, Rules: rules.Labelled([]string{`Durée du prêt`}, `[\s:\-]*(\d+\s*mois)`,
				rules.WithLang(normalize.Period, model.LanguageFrench))},
			{Key: model.KeyMinimumPayment, Rules: rules.Labelled([]string{`Mensualité`}, amount, money)},
			{Key: model.KeyNewBalance, Rules: rules.Labelled([]string{`Montant total à rembourser`}, amount, money)},
		},
	}
}

func (h frenchHandler) Extract(text string) model.FieldSet {
	if card := h.card.Extract(text); len(card) > 0 {
		return card
	}
	return h.loan.Extract(text)
}

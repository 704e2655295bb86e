package general

import (
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

var italianRules = rules.FieldRules{
	{Key: model.KeyDocumentDate, Rules: rules.Chain{
		rules.Capture(`(?i)(?:Data di emissione|Data)[:\s]+(\d{1,2}[.\s]+\p{L}+[.\s]+\d{4})`,
			rules.WithLang(normalize.Date, model.LanguageItalian)),
	}},
	{Key: model.KeyCustomerName, Rules: rules.Chain{
		rules.Capture(`(?:Nome e Cognome|Intestatario|Titolare)[:\s]+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)+)`, normalize.Name),
	}},
	{Key: model.KeyCustomerID, Rules: rules.Chain{
		rules.Capture(`(?i)Account Number[:\s]*([A-Z0-9*]{4,})`, nil),
		rules.Capture(`(?i)Codice\s+Fiscale[:\s]*([A-Z0-9]{16})`, rules.Compose(strings.ToUpper, normalize.Text)),
		rules.Capture(`(?i)Codice\s+Cliente[:\s]*([A-Z0-9\-]{4,})`, nil),
	}},
	{Key: model.KeyInstitutionName, Rules: institutions(
		`UniCredit`,
		`Intesa Sanpaolo`,
		`Banca d[’']Italia`,
		`Banca Italiana di Credito`,
		`Banca Monte dei Paschi di Siena`,
		`BPER Banca`,
		`Mediobanca`,
		`Poste Italiane`,
	)},
	{Key: model.KeyInstitutionAddress, Rules: rules.Chain{
		rules.Capture(`(?:Indirizzo|Sede Legale)[:\s]+([^\n]+?,\s*\d{5}[ \t]+[^\n,]+)`,
			rules.WithLang(normalize.Address, model.LanguageItalian)),
	}},
}

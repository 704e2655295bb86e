package general

import (
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

var frenchOCRFixes = strings.NewReplacer(
	"tévrier", "février",
	"\u00a0", " ",
)

var frenchRules = rules.FieldRules{
	{Key: model.KeyDocumentDate, Rules: rules.Chain{
		rules.Capture(`(?i)Date\s*[:\-]?\s*(\d{1,2}\s+(?:janvier|février|fevrier|mars|avril|mai|juin|juillet|août|aout|septembre|octobre|novembre|décembre|decembre)\s+\d{4})`,
			rules.WithLang(normalize.Date, model.LanguageFrench)),
	}},
	{Key: model.KeyCustomerName, Rules: rules.Chain{
		rules.Capture(`\bNom[:\s]+([^\n]+)`, rules.Compose(cutAt("Adresse"), normalize.Name)),
	}},
	{Key: model.KeyCustomerID, Rules: rules.Chain{
		rules.Capture(`(?i)(?:Num[ée]ro (?:de )?client|Identifiant client|R[ée]f[ée]rence client)[:\s]*([A-Z0-9\-]{4,})`, nil),
	}},
	{Key: model.KeyInstitutionName, Rules: institutions(
		`Banque Européenne d'Investissement`,
		`BNP Paribas`,
		`Société Générale`,
		`Crédit Agricole`,
		`Crédit Mutuel`,
		`La Banque Postale`,
		`Caisse d'Épargne`,
		`Banque Populaire`,
		`LCL`,
	)},
	{Key: model.KeyInstitutionAddress, Rules: rules.Chain{
		rules.Capture(`Adresse[:\s]+([^\n]+?,\s*\d{5}[ \t]+\p{L}+(?:,[ \t]+\p{L}+)?)`,
			rules.WithLang(normalize.Address, model.LanguageFrench)),
	}},
}

// frenchHandler repairs known OCR misreads before matching.
type frenchHandler struct{}

func (frenchHandler) Extract(text string) model.FieldSet {
	return frenchRules.Extract(frenchOCRFixes.Replace(text))
}

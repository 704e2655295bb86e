package general

import (
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

var (
	germanDate    = rules.WithLang(normalize.Date, model.LanguageGerman)
	germanAddress = rules.WithLang(normalize.Address, model.LanguageGerman)

	// Recipient blocks: name line followed by two address lines, bold or plain.
	recipientBold  = `Empfänger:\s*\*\*([^\n*]+)\*\*\s*\*\*([^\n*]+)\*\*\s*\*\*([^\n*]+)\*\*`
	recipientPlain = `Empfänger:[ \t]*([^\n]+)\n\s*([^\n]+)\n\s*([^\n]+)`
)

func recipientAddress(pattern string) rules.Rule {
	r := rules.Capture(pattern, nil)
	r.Extract = func(m []string) (string, bool) {
		return germanAddress(m[2] + ", " + m[3])
	}
	return r
}

var germanRules = rules.FieldRules{
	{Key: model.KeyDocumentDate, Rules: rules.Chain{
		rules.Capture(`(?i)(?:den\s+)?(\d{1,2}\.\s*\p{L}+\s+\d{4})`, germanDate),
		rules.Capture(`\b(\d{1,2}[.\-/]\d{1,2}[.\-/]\d{4})\b`, normalize.NumericDate),
	}},
	{Key: model.KeyCustomerName, Rules: rules.Chain{
		rules.Capture(`Schuldn\.:\s*(?:Herrn|Frau)?\s*([A-ZÄÖÜ][a-zäöüß]+[ \t]+[A-ZÄÖÜ][a-zäöüß]+)`, normalize.Name),
		rules.Capture(`Name[:\s]+([A-ZÄÖÜ][a-zäöüß]+[ \t]+[A-ZÄÖÜ][a-zäöüß]+)`, normalize.Name),
	}},
	{Key: model.KeyCustomerID, Rules: rules.Chain{
		rules.Capture(`Kundennummer[:\s]*([A-Z0-9\-]+)`, nil),
		rules.Capture(`Az\.\s*([A-Z0-9]+\s*[/-]\s*[A-Z0-9]+)`, rules.Compose(rules.Compact, normalize.Text)),
		rules.Capture(`vertreten durch[^\n]+Az\.\s*([A-Z0-9/]+)`, nil),
	}},
	{Key: model.KeyInstitutionName, Rules: rules.Chain{
		rules.Capture(recipientBold, nil),
		rules.Capture(recipientPlain, nil),
	}.Then(institutions(
		`Deutsche Bank`,
		`Commerzbank`,
		`Postbank`,
		`HypoVereinsbank`,
		`Targobank`,
		`Santander Consumer Bank`,
		`ING(?:-DiBa)?`,
		`DKB`,
		`Comdirect`,
		`Sparkasse(?:[ \-][A-ZÄÖÜ][\p{L}\-]+)?`,
		`Volksbank(?:[ \-][A-ZÄÖÜ][\p{L}\-]+)?`,
	)...)},
	{Key: model.KeyInstitutionAddress, Rules: rules.Chain{
		recipientAddress(recipientBold),
		recipientAddress(recipientPlain),
		rules.Capture(`(?:Adresse|Anschrift)[:\s]*([^\n]+)`, germanAddress),
		rules.Capture(`([A-ZÄÖÜ][\p{L}\-]*(?:[ \t][\p{L}\-.]+)*[ \t]\d+[a-zA-Z]?,?[ \t]*\d{5}[ \t]+[A-ZÄÖÜ][\p{L}\-]+)`, germanAddress),
	}},
}

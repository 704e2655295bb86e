package general

import (
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

var (
	englishDate    = rules.WithLang(normalize.Date, model.LanguageEnglish)
	englishAddress = rules.WithLang(normalize.Address, model.LanguageEnglish)
)

// cutAt drops everything from the first occurrence of marker, for names that run into the
// next label on the same line.
func cutAt(marker string) func(string) string {
	return func(s string) string {
		if i := strings.Index(s, marker); i >= 0 {
			return s[:i]
		}
		return s
	}
}

var englishRules = rules.FieldRules{
	{Key: model.KeyDocumentDate, Rules: rules.Chain{
		rules.Capture(`(?i)Statement Date[:\s]+([^\n]+?\s+\d{4})`, englishDate),
		rules.Capture(`(?im)^[ \t]*(?:Issue Date|Date of Issue|Date)[:\s]+([^\n]+?\s+\d{4})`, englishDate),
	}},
	{Key: model.KeyCustomerName, Rules: rules.Chain{
		rules.Capture(`Name[:\s]+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)+)`, rules.Compose(cutAt("Address"), normalize.Name)),
	}},
	{Key: model.KeyCustomerID, Rules: rules.Chain{
		rules.Capture(`(?i)(?:Customer ID|Client No|Account ID|Account Number|User ID|Customer Number)[:\s]*([A-Z0-9\-]+)`, nil),
	}},
	{Key: model.KeyInstitutionName, Rules: institutions(
		`Bank of America`,
		`JPMorgan Chase`,
		`Wells Fargo`,
		`Citibank`,
		`Capital One`,
		`American Express`,
		`Barclays`,
		`HSBC`,
		`Lloyds Bank`,
		`NatWest`,
		`Santander UK`,
		`Chase`,
	)},
	{Key: model.KeyInstitutionAddress, Rules: rules.Chain{
		rules.Capture(`(?i)Address[:\s]+([^\n]+)`, englishAddress),
		rules.Capture(`(\d+[ \t]+[A-Z]\p{L}*(?:[ \t]+[A-Z]\p{L}*)*[ \t]+(?:Street|St\.|Avenue|Ave\.|Road|Rd\.|Lane|Boulevard|Blvd\.)[^\n]*)`, englishAddress),
	}},
}

package general

import (
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

var spanishAddressFixes = strings.NewReplacer(
	"Ca11e", "Calle",
	"Caste1lana", "Castellana",
	"Espana", "España",
	"Macrid", "Madrid",
)

var spanishRules = rules.FieldRules{
	{Key: model.KeyDocumentDate, Rules: rules.Chain{
		rules.Capture(`(?i)(?:Fecha de emisión|Emitido el|Fecha)[:\s]+(\d{1,2}\s+de\s+\p{L}+(?:\s+de)?\s+\d{4})`,
			rules.WithLang(normalize.Date, model.LanguageSpanish)),
	}},
	{Key: model.KeyCustomerName, Rules: rules.Chain{
		rules.Capture(`(?m)(?:Nombre(?:\s+completo)?|Titular|Cliente)[\s:\-]+((?:[A-ZÁÉÍÓÚÑ][a-záéíóúñ]+(?:[ \t]+|$)){2,5})`, normalize.Name),
	}},
	{Key: model.KeyCustomerID, Rules: rules.Chain{
		rules.Capture(`(?i)\b(?:NIF|DNI|ID Cliente|Identificaci[oó]n)[:\s\-]*([A-Z0-9\-]{6,})`, rules.Compose(strings.ToUpper, normalize.Text)),
	}},
	{Key: model.KeyInstitutionName, Rules: institutions(
		`Banco Santander`,
		`BBVA`,
		`CaixaBank`,
		`Banco Sabadell`,
		`Bankinter`,
		`Unicaja`,
		`Abanca`,
		`Ibercaja`,
		`Kutxabank`,
		`ING`,
	)},
}

var spanishAddress = rules.Chain{
	rules.Capture(`(?i)(?:Direcci[oó]n|Domicilio|Sede)[:\s\-]*([\p{L}\p{N}_ ,\-]+?\d{4,5}[ \t]+[A-Z][^\n,]+)`,
		rules.WithLang(normalize.Address, model.LanguageSpanish)),
	rules.Capture(`([A-Z][a-z]+[\p{L}\p{N} ]+?\d{1,3},[ \t]*\d{4,5}[ \t]+[A-Z][a-z]+)`,
		rules.WithLang(normalize.Address, model.LanguageSpanish)),
}

// spanishHandler matches addresses on a copy of the text with known street and city
// misreads repaired.
type spanishHandler struct{}

func (spanishHandler) Extract(text string) model.FieldSet {
	out := spanishRules.Extract(text)
	if addr, ok := spanishAddress.Find(spanishAddressFixes.Replace(text)); ok {
		out.SetString(model.KeyInstitutionAddress, addr)
	}
	return out
}

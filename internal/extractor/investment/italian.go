package investment

import (
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

var referenceNumber = rules.Capture(`(?i)Numero\s+di\s+riferimento[\s:]*([A-Z]{2}-\d{5}-\d{4})`, nil)

// Certificato di deposito.
var depositCertificate = rules.FieldRules{
	{Key: model.KeyPortfolioID, Rules: rules.Chain{
		referenceNumber,
		rules.Capture(`(?i)\b(?:CD|Certificato)[\s:-]*(IT-\d{5}-\d{4}|[A-Z]{2}-[A-Z]{2}-\d{5}-\d{4})\b`, certificateID),
	}},
	{Key: model.KeyPortfolioValue, Rules: rules.Chain{
		rules.Capture(`(?i)(?:importo depositato|valore nominale)[^\n:]*[\s:]*€?\s*([\d.]+,\d{2})`, normalize.Amount),
	}},
}

// Fondo pensione.
var pensionFund = rules.FieldRules{
	{Key: model.KeyPortfolioID, Rules: rules.Chain{referenceNumber}},
	{Key: model.KeyPortfolioValue, Rules: rules.Chain{
		rules.Capture(`(?is)posizione complessiva maturata.*?ammonta a €\s*([\d.]+,\d{2})`, normalize.Amount),
		rules.Capture(`(?i)posizione complessiva[^\n]*?€?\s*([\d.]+,\d{2})`, normalize.Amount),
	}},
	{Key: model.KeyRiskProfile, Rules: rules.Chain{
		rules.Capture(`(?i)linea di investimento[ \t:]*([^\n]+)`, nil),
	}},
}

// extractItalian runs both layouts and keeps the one that matched more fields. A tie goes
// to the pension fund.
func extractItalian(text string) model.FieldSet {
	cert := depositCertificate.Extract(text)
	pension := pensionFund.Extract(text)
	if len(cert) > len(pension) {
		return cert
	}
	return pension
}

func certificateID(s string) (string, bool) {
	id := strings.ToUpper(strings.TrimSpace(s))
	if id == "" {
		return "", false
	}
	if !strings.HasPrefix(id, "CD-") {
		id = "CD-" + id
	}
	return id, true
}

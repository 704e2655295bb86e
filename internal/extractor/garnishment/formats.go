package garnishment

import (
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
	"github.com/MuhammadZahidRWTH/docextract/internal/rules"
)

var (
	germanDate  = rules.WithLang(normalize.Date, model.LanguageGerman)
	germanMoney = rules.WithLang(normalize.Money, model.LanguageGerman)
)

var amount = rules.Chain{
	rules.Capture(`(?i)(?:Forderungen\s+in\s+Höhe\s+von|Hauptforderung|Betrag):?\s+([\d.,]+)\s*(?:EUR|€)`, germanMoney),
}

// Zustellungsurkunde with Pfändungs- und Überweisungsbeschluss.
var courtOrder = format{
	name:    "court_order",
	markers: []string{"Zustellungsurkunde", "Pfändungs- und Überweisungsbeschluss"},
	fields: rules.FieldRules{
		{Key: model.KeyDebtorName, Rules: rules.Chain{
			rules.Capture(`Schuldn\.:\s*(?:Herrn|Frau)?\s*([^,)\n]+)`, normalize.Name),
		}},
		{Key: model.KeyCreditorName, Rules: rules.Chain{
			rules.Capture(`Gläubigers?:\s*([^\n,]+)`, nil),
		}},
		{Key: model.KeyGarnishmentAmount, Rules: amount},
		{Key: model.KeyEffectiveDate, Rules: rules.Chain{
			rules.Capture(`vom\s+(\d{1,2}\.\s+\p{L}+\s+\d{4})`, germanDate),
			rules.Capture(`den\s+(\d{1,2}\.\s+\p{L}+\s+\d{4})`, germanDate),
		}},
		{Key: model.KeyLegalAuthority, Rules: rules.Chain{
			rules.Capture(`Pfändungs- und Überweisungsbeschluss (?:des|der)\s+([^\n,]+)`, nil),
		}},
	},
}

// Pfändungs- und Einziehungsverfügung issued by a public authority.
var enforcementOrder = format{
	name:    "enforcement_order",
	markers: []string{"Pfändungs- und Einziehungsverfügung"},
	fields: rules.FieldRules{
		{Key: model.KeyDebtorName, Rules: rules.Chain{
			rules.Capture(`Vollstreckungsschuldner:\s*([^,\n]+)`, normalize.Name),
		}},
		{Key: model.KeyCreditorName, Rules: rules.Chain{
			rules.Capture(`schuldet\s+(?:dem|der)\s+([^\n]+)`, nil),
		}},
		{Key: model.KeyGarnishmentAmount, Rules: amount},
		{Key: model.KeyEffectiveDate, Rules: rules.Chain{
			rules.Capture(`(?i)(?:den|vom|am)\s+(\d{1,2}\.\s+\p{L}+\s+\d{4})`, germanDate),
			rules.Capture(`\b(\d{1,2}\.\d{1,2}\.\d{4})\b`, normalize.NumericDate),
		}},
		{Key: model.KeyLegalAuthority, Rules: rules.Chain{
			rules.Capture(`(?:Behörde|Amt|Gericht):[ \t]*([^\n]+)`, nil),
			rules.Capture(`(?m)^[ \t]*((?:Finanzamt|Hauptzollamt|Amtsgericht|Landratsamt|Stadtkasse|Stadtverwaltung|Kreisverwaltung|Gemeindekasse|Landeshauptkasse|Bundesagentur)[^\n]*?)[ \t]*$`, nil),
			rules.Capture(`(?m)^[ \t]*(\p{Lu}\p{Ll}+(?:[ \t]+\p{Lu}\p{Ll}+)+)[ \t]*$`, nil),
		}},
		{Key: model.KeyDuration, Rules: rules.Chain{
			rules.Capture(`(?i)(?:Gültigkeitsdauer|Dauer):?\s*(\d+\s+(?:Tage|Monate|Jahre))`, nil),
		}},
	},
}

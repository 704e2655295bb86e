package investment

import (
	"testing"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		want model.FieldSet
		name string
		text string
		lang model.Language
	}{
		{
			name: "german portfolio summary",
			lang: model.LanguageGerman,
			text: "Portfolio-ID: PORT-DE-2025-0042\nGesamtwert des Portfolios: 125.000,00 €\n" +
				"Risikoprofil: Ausgewogen\nVermögensaufstellung\nAktien 60 %\nAnleihen 30 %\n" +
				"Liquidität 10 %\n\nEnde",
			want: model.FieldSet{
				model.KeyPortfolioID:    "PORT-DE-2025-0042",
				model.KeyPortfolioValue: "125000.00 €",
				model.KeyRiskProfile:    "Ausgewogen",
				model.KeyAssetNumber:    3,
			},
		},
		{
			name: "french account id and space grouped value",
			lang: model.LanguageFrench,
			text: "Numéro de compte : FR76 3000 6000 0112 3456 7890 189\n" +
				"Valeur totale du portefeuille : 12 500,00 €\nProfil de risque : Prudent",
			want: model.FieldSet{
				model.KeyPortfolioID:    "FR7630006000011234567890189",
				model.KeyPortfolioValue: "12500.00 €",
				model.KeyRiskProfile:    "Prudent",
			},
		},
		{
			name: "french maturity amount back-fills value",
			lang: model.LanguageFrench,
			text: "Compte à terme\nMontant à l'échéance : 10 250,00 €",
			want: model.FieldSet{model.KeyPortfolioValue: "10250.00 €"},
		},
		{
			name: "spanish summary keeps dollar",
			lang: model.LanguageSpanish,
			text: "Valor total del portafolio: $ 45.300,75\nPerfil de riesgo: Moderado\n" +
				"Reparto de activos\nAcciones 50%\nBonos 50%",
			want: model.FieldSet{
				model.KeyPortfolioValue: "45300.75 $",
				model.KeyRiskProfile:    "Moderado",
				model.KeyAssetNumber:    2,
			},
		},
		{
			name: "italian deposit certificate",
			lang: model.LanguageItalian,
			text: "Certificato di deposito\nCertificato: IT-12345-6789\nImporto depositato: € 10.000,00",
			want: model.FieldSet{
				model.KeyPortfolioID:    "CD-IT-12345-6789",
				model.KeyPortfolioValue: "10000.00 €",
			},
		},
		{
			name: "italian pension fund",
			lang: model.LanguageItalian,
			text: "Nome del fondo: Previdenza Futura\nNumero di riferimento: FP-12345-6789\n" +
				"Linea di investimento: Bilanciata\n" +
				"La posizione complessiva maturata al 31.12.2024 ammonta a € 23.456,78",
			want: model.FieldSet{
				model.KeyPortfolioID:    "FP-12345-6789",
				model.KeyPortfolioValue: "23456.78 €",
				model.KeyRiskProfile:    "Bilanciata",
			},
		},
		{
			name: "italian tie goes to pension fund",
			lang: model.LanguageItalian,
			text: "Numero di riferimento: FP-12345-6789",
			want: model.FieldSet{model.KeyPortfolioID: "FP-12345-6789"},
		},
		{
			name: "english summary uses reference asset classes",
			lang: model.LanguageEnglish,
			text: "Investment Portfolio Summary\nPortfolio ID: INV-EN-12345-6789\n" +
				"The total value of your portfolio is\n$1,234,567.89",
			want: model.FieldSet{
				model.KeyPortfolioID:    "INV-EN-12345-6789",
				model.KeyPortfolioValue: "1234567.89 $",
				model.KeyAssetNumber:    len(englishReferenceAssetClasses),
			},
		},
		{
			name: "english text without a summary",
			lang: model.LanguageEnglish,
			text: "Account Statement\nClosing Balance: 10.00",
			want: model.FieldSet{},
		},
		{
			name: "unsupported language uses english",
			lang: model.LanguageUnsupported,
			text: "INV-EN-00001-0002",
			want: model.FieldSet{
				model.KeyPortfolioID: "INV-EN-00001-0002",
				model.KeyAssetNumber: 5,
			},
		},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text, tt.lang))
		})
	}
}

func TestDomain(t *testing.T) {
	assert.Equal(t, model.DocumentTypeInvestment, New().Domain())
}

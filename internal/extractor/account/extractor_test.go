package account

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
			name: "english labelled statement",
			lang: model.LanguageEnglish,
			text: "Account Type: Current Account\nAccount Number: 12345678\n" +
				"Statement Period: 01/03/2025 - 31/03/2025\nOpening Balance: £1,250.00\n" +
				"Closing Balance: £980.40\nAvailable Balance: £900.00\nNumber of Transactions: 14",
			want: model.FieldSet{
				model.KeyAccountType:       "Current Account",
				model.KeyAccountNumber:     "12345678",
				model.KeyStatementPeriod:   "01.03.2025 – 31.03.2025",
				model.KeyOpeningBalance:    "1250.00 £",
				model.KeyClosingBalance:    "980.40 £",
				model.KeyAvailableBalance:  "900.00 £",
				model.KeyTransactionNumber: 14,
			},
		},
		{
			name: "german iban and dated rows",
			lang: model.LanguageGerman,
			text: "Kontoauszug\nDE89 3704 0044 0532 0130 00\nAnfangssaldo: 1.000,00 EUR\n" +
				"Endsaldo: 850,50 EUR\n01/03/2025 Miete -500,00\n15/03/2025 Gehalt 350,50",
			want: model.FieldSet{
				model.KeyAccountNumber:     "DE89 3704 0044 0532 0130 00",
				model.KeyStatementPeriod:   "01.03.2025 – 15.03.2025",
				model.KeyOpeningBalance:    "1000.00 €",
				model.KeyClosingBalance:    "850.50 €",
				model.KeyTransactionNumber: 2,
			},
		},
		{
			name: "transaction details section skips header row",
			lang: model.LanguageEnglish,
			text: "Transaction Details\nMar 1, 2025 Opening\nMar 3, 2025 Coffee -3,50\n" +
				"Mar 9, 2025 Salary +1200,00\n\nClosing Balance: 1.196,50 EUR",
			want: model.FieldSet{
				model.KeyClosingBalance:    "1196.50 €",
				model.KeyTransactionNumber: 2,
			},
		},
		{
			name: "spanish overdraft table",
			lang: model.LanguageSpanish,
			text: "Operaciones que causaron el descubierto\n02/03/2025 | Recibo luz | -45,20\n" +
				"05/03/2025 | Comisión | -12,00",
			want: model.FieldSet{
				model.KeyStatementPeriod:   "02.03.2025 – 05.03.2025",
				model.KeyTransactionNumber: 2,
			},
		},
		{
			name: "french ocr repairs and statement range",
			lang: model.LanguageFrench,
			text: "S0lde initial : 2 500,00 €\nSolde de cl0ture : 2 100,00 €\n" +
				"Relevé du 01/02/2025 au 28/02/2025",
			want: model.FieldSet{
				model.KeyOpeningBalance:  "2500.00 €",
				model.KeyClosingBalance:  "2100.00 €",
				model.KeyStatementPeriod: "01.02.2025 – 28.02.2025",
			},
		},
		{
			name: "letter dates are not statement rows",
			lang: model.LanguageSpanish,
			text: "Fecha: 01/03/2025\nTiene un saldo pendiente. Pagar antes de 15/03/2025.",
			want: model.FieldSet{},
		},
		{
			name: "unknown language uses english labels",
			lang: model.LanguageUnknown,
			text: "Closing Balance: 10.00",
			want: model.FieldSet{model.KeyClosingBalance: "10.00 €"},
		},
		{
			name: "empty text",
			lang: model.LanguageEnglish,
			text: "",
			want: model.FieldSet{},
		},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text, tt.lang))
		})
	}
}

func TestCountTransactions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "signed month rows",
			text: "Mar 1, 2025 Start +0,00\nMar 2, 2025 Shop -5,00\nMar 3, 2025 Pay +10,00",
			want: 2,
		},
		{
			name: "dated amounts",
			text: "01/03/2025 Rent -500,00\n02/03/2025 Food -1.020,10\n03/03/2025 Gift 20,00",
			want: 3,
		},
		{
			name: "nothing to count",
			text: "no rows here",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countTransactions(tt.text))
		})
	}
}

func TestRowPeriod(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "first and last row", text: "01/03/2025 Miete\n09/03/2025 Strom\n15/03/2025 Gehalt", want: "01.03.2025 – 15.03.2025", wantOK: true},
		{name: "single row", text: "01/03/2025 Miete -500,00"},
		{name: "same date on every row", text: "01/03/2025 Miete\n01/03/2025 Strom"},
		{name: "dates inside lines", text: "Datum: 01/03/2025\nfällig am 15/03/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rowPeriod(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDomain(t *testing.T) {
	assert.Equal(t, model.DocumentTypePersonalAccount, New().Domain())
}

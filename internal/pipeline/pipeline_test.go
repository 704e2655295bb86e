package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

func fixedID() string { return "generated-id" }

func TestProcess(t *testing.T) {
	tests := []struct {
		wantGeneral model.FieldSet
		wantDomain  model.FieldSet
		name        string
		doc         model.RawDocument
		wantType    model.DocumentType
	}{
		{
			name: "german credit notice",
			doc: model.RawDocument{
				FileName: "kredit.pdf",
				Text:     "Kundennummer: AB-12345\nKreditlimit: 5.000,00 EUR",
				Language: model.LanguageGerman,
			},
			wantType: model.DocumentTypeCredit,
			wantGeneral: model.FieldSet{
				model.KeyDocumentID:   "generated-id",
				model.KeyDocumentType: "credit",
				model.KeyCustomerID:   "AB-12345",
				model.KeyLanguage:     "de",
			},
			wantDomain: model.FieldSet{model.KeyCreditLimit: "5000.00 €"},
		},
		{
			name: "spanish keyword fallback",
			doc: model.RawDocument{
				FileName: "aviso.pdf",
				Text:     "Estimado cliente, tiene un saldo pendiente con nosotros.",
				Language: model.LanguageSpanish,
			},
			wantType: model.DocumentTypeCredit,
			wantGeneral: model.FieldSet{
				model.KeyDocumentID:   "generated-id",
				model.KeyDocumentType: "credit",
				model.KeyLanguage:     "es",
			},
			wantDomain: model.FieldSet{},
		},
		{
			name:     "empty text is unknown",
			doc:      model.RawDocument{FileName: "blank.pdf"},
			wantType: model.DocumentTypeUnknown,
			wantGeneral: model.FieldSet{
				model.KeyDocumentID:   "generated-id",
				model.KeyDocumentType: "unknown",
				model.KeyLanguage:     "unknown",
			},
			wantDomain: model.FieldSet{},
		},
	}

	p := New(WithIDGenerator(fixedID))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Process(tt.doc)
			assert.Equal(t, tt.doc.FileName, rec.FileName)
			assert.Equal(t, tt.wantType, rec.Type)
			assert.Equal(t, tt.wantGeneral, rec.General)
			assert.Equal(t, tt.wantDomain, rec.Domain)
		})
	}
}

func TestProcessIdempotent(t *testing.T) {
	doc := model.RawDocument{
		FileName: "statement.txt",
		Text: "Reference KRED-EN-12345-2025\nAccount Number: 12345678\n" +
			"Opening Balance: £1,250.00\nClosing Balance: £980.40",
		Language: model.LanguageEnglish,
	}

	p := New()
	first, err := json.Marshal(p.Process(doc))
	require.NoError(t, err)
	second, err := json.Marshal(p.Process(doc))
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.Contains(t, string(first), `"document_id":"KRED-EN-12345-2025"`)
	assert.Contains(t, string(first), `"personal_account":{`)
}

func TestProcessKeepsOnlyWinningDomain(t *testing.T) {
	doc := model.RawDocument{
		FileName: "mixed.txt",
		Text: "Account Number: 12345678\nOpening Balance: 10.00\nClosing Balance: 20.00\n" +
			"Credit Limit: $5,000.00",
		Language: model.LanguageEnglish,
	}

	rec := New(WithIDGenerator(fixedID)).Process(doc)
	require.Equal(t, model.DocumentTypePersonalAccount, rec.Type)
	assert.False(t, rec.Domain.Has(model.KeyCreditLimit))
	assert.Equal(t, "12345678", rec.Domain.String(model.KeyAccountNumber))
}

func TestProcessDocumentIDNeverEmpty(t *testing.T) {
	p := New()
	for _, text := range []string{"", "   ", "random words", "INV-EN-12345-6789"} {
		rec := p.Process(model.RawDocument{Text: text, Language: model.LanguageEnglish})
		assert.NotEmpty(t, rec.DocumentID(), text)
	}
}

func TestProcessDatedLetterIsNotStatement(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "two dates", text: "Fecha: 01/03/2025\nTiene un saldo pendiente. Pagar antes de 15/03/2025."},
		{name: "same date twice", text: "Fecha: 01/03/2025\nTiene un saldo pendiente. Pagar antes de 01/03/2025."},
	}

	p := New(WithIDGenerator(fixedID))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Process(model.RawDocument{FileName: "carta.txt", Text: tt.text, Language: model.LanguageSpanish})
			assert.Equal(t, model.DocumentTypeCredit, rec.Type)
			assert.False(t, rec.Domain.Has(model.KeyStatementPeriod))
		})
	}
}

func TestRuleLanguage(t *testing.T) {
	p := New()
	assert.Equal(t, model.LanguageFrench, p.RuleLanguage(model.LanguageFrench))
	assert.Equal(t, model.LanguageEnglish, p.RuleLanguage(model.LanguageUnsupported))
	assert.Equal(t, model.LanguageEnglish, p.RuleLanguage(model.LanguageUnknown))
}

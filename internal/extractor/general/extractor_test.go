package general

import (
	"testing"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
	"github.com/stretchr/testify/assert"
)

func fixedID(calls *int) IDGenerator {
	return func() string {
		*calls++
		return "generated-id"
	}
}

func TestExtract_DocumentID(t *testing.T) {
	t.Run("matched identifier is kept", func(t *testing.T) {
		calls := 0
		e := New(WithIDGenerator(fixedID(&calls)))

		got := e.Extract("Referenz KRED-DE-123456-2025 vom Konto", model.LanguageGerman, "")

		assert.Equal(t, "KRED-DE-123456-2025", got.String(model.KeyDocumentID))
		assert.Zero(t, calls)
	})

	t.Run("fallback generated exactly once", func(t *testing.T) {
		calls := 0
		e := New(WithIDGenerator(fixedID(&calls)))

		got := e.Extract("no identifier here", model.LanguageEnglish, "")

		assert.Equal(t, "generated-id", got.String(model.KeyDocumentID))
		assert.Equal(t, 1, calls)
	})

	t.Run("default generator yields uuid", func(t *testing.T) {
		got := New().Extract("", model.LanguageUnknown, "")
		assert.Len(t, got.String(model.KeyDocumentID), 36)
	})
}

func TestExtract_TypeHintAndLanguage(t *testing.T) {
	e := New()

	got := e.Extract("", "", "")
	assert.Equal(t, "unknown", got.String(model.KeyDocumentType))
	assert.Equal(t, "unknown", got.String(model.KeyLanguage))

	got = e.Extract("", model.LanguageUnsupported, model.DocumentTypeCredit)
	assert.Equal(t, "credit", got.String(model.KeyDocumentType))
	assert.Equal(t, "unsupported", got.String(model.KeyLanguage))
}

func TestDocumentID(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{text: "PORT-DE-1234-5678", want: "PORT-DE-1234-5678", wantOK: true},
		{text: "ID: INV-EN-12345-2024", want: "INV-EN-12345-2024", wantOK: true},
		{text: "AB-123456-2025 und mehr", want: "AB-123456-2025", wantOK: true},
		{text: "AB-12345", wantOK: false},
		{text: "lowercase ab-1234-2025", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := DocumentID(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

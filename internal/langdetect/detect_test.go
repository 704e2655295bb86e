package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Language
	}{
		{
			name: "english",
			text: "Your account statement for the period shows all transactions and the closing balance of your current account.",
			want: model.LanguageEnglish,
		},
		{
			name: "german",
			text: "Sehr geehrte Damen und Herren, hiermit erhalten Sie Ihren Kontoauszug mit allen Buchungen und dem aktuellen Kontostand.",
			want: model.LanguageGerman,
		},
		{
			name: "french",
			text: "Madame, Monsieur, veuillez trouver ci-joint votre relevé de compte avec le solde disponible et les opérations de la période.",
			want: model.LanguageFrench,
		},
		{
			name: "spanish",
			text: "Estimado cliente, le enviamos el extracto de su cuenta con el saldo pendiente que debe pagar antes de la fecha indicada.",
			want: model.LanguageSpanish,
		},
		{
			name: "italian",
			text: "Gentile cliente, le inviamo il rendiconto del suo fondo pensione con la posizione complessiva maturata alla data indicata.",
			want: model.LanguageItalian,
		},
		{
			name: "unsupported language",
			text: "Уважаемый клиент, направляем вам выписку по вашему счету за прошедший месяц.",
			want: model.LanguageUnsupported,
		},
		{name: "empty", text: "", want: model.LanguageUnknown},
		{name: "whitespace", text: " \n\t ", want: model.LanguageUnknown},
		{name: "digits only", text: "12345 67890", want: model.LanguageUnknown},
	}

	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}

func TestDetectRestricted(t *testing.T) {
	d := NewRestricted()

	assert.Equal(t, model.LanguageGerman,
		d.Detect("Pfändungs- und Einziehungsverfügung gegen den Vollstreckungsschuldner wegen der offenen Forderungen"))
	assert.Equal(t, model.LanguageUnknown, d.Detect(""))
	// Only supported languages or unknown come out of a restricted detector.
	assert.NotEqual(t, model.LanguageUnsupported, d.Detect("Уважаемый клиент, направляем вам выписку по вашему счету."))
}

func TestDetectIsDeterministic(t *testing.T) {
	d := New()
	text := "Relevé de compte courant, solde disponible au 31 mars."
	first := d.Detect(text)
	for range 5 {
		assert.Equal(t, first, d.Detect(text))
	}
}

func TestFixed(t *testing.T) {
	d := Fixed(model.LanguageItalian)
	assert.Equal(t, model.LanguageItalian, d.Detect("Account statement"))
	assert.Equal(t, model.LanguageItalian, d.Detect(""))
}

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{text: "max MUSTERMANN", want: "Max Mustermann", wantOK: true},
		{text: "  jean-luc   picard ", want: "Jean-luc Picard", wantOK: true},
		{text: "maria del carmen", want: "Maria Del Carmen", wantOK: true},
		{text: "o'neil", want: "O'Neil", wantOK: true},
		{text: "anna o'neil-smith", want: "Anna O'Neil-Smith", wantOK: true},
		{text: "ÖZDEMIR", want: "Özdemir", wantOK: true},
		{text: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Name(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripAccents(t *testing.T) {
	assert.Equal(t, "Marz", StripAccents("März"))
	assert.Equal(t, "fevrier aout decembre", StripAccents("février août décembre"))
	assert.Equal(t, "Straße", StripAccents("Straße"))
}

func TestText(t *testing.T) {
	got, ok := Text("  Girokonto \t Premium ;")
	assert.True(t, ok)
	assert.Equal(t, "Girokonto Premium", got)

	_, ok = Text(" : ")
	assert.False(t, ok)
}

func TestAccountNumber(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "iban with spaces", text: "DE89 3704 0044 0532 0130 00", want: "DE89 3704 0044 0532 0130 00", wantOK: true},
		{name: "compact iban", text: "FR7630006000011234567890189 (compte courant)", want: "FR76 3000 6000 0112 3456 7890 189", wantOK: true},
		{name: "plain digits", text: "1234 5678 90", want: "1234567890", wantOK: true},
		{name: "masked", text: "****1234", want: "****1234", wantOK: true},
		{name: "nothing usable", text: "see attachment", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AccountNumber(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupIBAN(t *testing.T) {
	assert.Equal(t, "ES91 2100 0418 4502 0005 1332", GroupIBAN("ES9121000418 45020005 1332"))
}

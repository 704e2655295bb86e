package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		lang   string
		want   string
		wantOK bool
	}{
		{
			name:   "german grammar adds default country",
			text:   "Hauptstraße 12, 10115 Berlin",
			lang:   "de",
			want:   "Hauptstraße 12, 10115 Berlin, Deutschland",
			wantOK: true,
		},
		{
			name:   "german ocr repairs",
			text:   "Muster strabe 5,  1O115 Ber1in, Deutsch1and",
			lang:   "de",
			want:   "Muster straße 5, 10115 Berlin, Deutschland",
			wantOK: true,
		},
		{
			name:   "french number first",
			text:   "12 rue de la Paix, 75002 P aris",
			lang:   "fr",
			want:   "12 rue de la Paix, 75002 Paris, France",
			wantOK: true,
		},
		{
			name:   "spanish with comma before number",
			text:   "Paseo de la Castellana, 45, 28046 M adrid, España",
			lang:   "es",
			want:   "Paseo de la Castellana 45, 28046 Madrid, España",
			wantOK: true,
		},
		{
			name:   "italian",
			text:   "Via Roma 10, 20121 M ilano",
			lang:   "it",
			want:   "Via Roma 10, 20121 Milano, Italia",
			wantOK: true,
		},
		{
			name:   "english is cleaned only",
			text:   "221B Baker Street,   Lon don NW1 6XE",
			lang:   "en",
			want:   "221B Baker Street, London NW1 6XE",
			wantOK: true,
		},
		{
			name:   "words keep their letters",
			text:   "Oberer Weg ohne Nummer",
			lang:   "de",
			want:   "Oberer Weg ohne Nummer",
			wantOK: true,
		},
		{
			name:   "empty",
			text:   "  ",
			lang:   "de",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Address(tt.text, tt.lang)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

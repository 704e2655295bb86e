package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		lang   string
		want   string
		wantOK bool
	}{
		{name: "german dotted day", text: "15. März 2025", lang: "de", want: "15.03.2025", wantOK: true},
		{name: "german ascii month", text: "den 3. Maerz 2024", lang: "de", want: "03.03.2024", wantOK: true},
		{name: "german accent stripped", text: "1. Marz 2024", lang: "de", want: "01.03.2024", wantOK: true},
		{name: "spanish de form", text: "15 de marzo de 2023", lang: "es", want: "15.03.2023", wantOK: true},
		{name: "french accented month", text: "le 2 février 2025", lang: "fr", want: "02.02.2025", wantOK: true},
		{name: "french august", text: "31 août 2024", lang: "fr", want: "31.08.2024", wantOK: true},
		{name: "italian month", text: "Data: 5 gennaio 2025", lang: "it", want: "05.01.2025", wantOK: true},
		{name: "english day month", text: "15 March 2025", lang: "en", want: "15.03.2025", wantOK: true},
		{name: "english month day", text: "Due Date: March 5, 2025", lang: "en", want: "05.03.2025", wantOK: true},
		{name: "english month day in german text", text: "March 5, 2025", lang: "de", want: "05.03.2025", wantOK: true},
		{name: "unmapped month defaults to january", text: "12. Quartal 2025", lang: "de", want: "12.01.2025", wantOK: true},
		{name: "case insensitive", text: "15 MARCH 2025", lang: "en", want: "15.03.2025", wantOK: true},
		{name: "unknown language uses english table", text: "4 June 2024", lang: "nl", want: "04.06.2024", wantOK: true},
		{name: "numeric date is not written", text: "15.03.2025", lang: "de", wantOK: false},
		{name: "empty", text: "", lang: "en", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.text, tt.lang)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumericDate(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{text: "vom 15.03.2025", want: "15.03.2025", wantOK: true},
		{text: "1/4/2024", want: "01.04.2024", wantOK: true},
		{text: "01-12-24", want: "01.12.2024", wantOK: true},
		{text: "45.13.2024 then 02.01.2025", want: "02.01.2025", wantOK: true},
		{text: "no date here", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := NumericDate(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		lang   string
		want   string
		wantOK bool
	}{
		{name: "numeric range", text: "01.03.2025 - 31.03.2025", lang: "de", want: "01.03.2025 – 31.03.2025", wantOK: true},
		{name: "written range", text: "1. März 2025 bis 31. März 2025", lang: "de", want: "01.03.2025 – 31.03.2025", wantOK: true},
		{name: "english range", text: "March 1, 2025 to March 31, 2025", lang: "en", want: "01.03.2025 – 31.03.2025", wantOK: true},
		{name: "loan term", text: "24 mois", lang: "fr", want: "24 mois", wantOK: true},
		{name: "duration spacing", text: "12   Monate", lang: "de", want: "12 monate", wantOK: true},
		{name: "single date", text: "31.03.2025", lang: "de", wantOK: false},
		{name: "free text", text: "current month", lang: "en", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Period(tt.text, tt.lang)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnyDate(t *testing.T) {
	got, ok := AnyDate("15. März 2025", "de")
	assert.True(t, ok)
	assert.Equal(t, "15.03.2025", got)

	got, ok = AnyDate("Fällig am 31.03.2025", "de")
	assert.True(t, ok)
	assert.Equal(t, "31.03.2025", got)

	_, ok = AnyDate("sofort", "de")
	assert.False(t, ok)
}

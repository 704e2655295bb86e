package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var months = map[string]map[string]string{
	"en": {
		"january": "01", "february": "02", "march": "03", "april": "04",
		"may": "05", "june": "06", "july": "07", "august": "08",
		"september": "09", "october": "10", "november": "11", "december": "12",
	},
	"de": {
		"januar": "01", "februar": "02", "marz": "03", "maerz": "03", "april": "04",
		"mai": "05", "juni": "06", "juli": "07", "august": "08",
		"september": "09", "oktober": "10", "november": "11", "dezember": "12",
	},
	"fr": {
		"janvier": "01", "fevrier": "02", "mars": "03", "avril": "04",
		"mai": "05", "juin": "06", "juillet": "07", "aout": "08",
		"septembre": "09", "octobre": "10", "novembre": "11", "decembre": "12",
	},
	"es": {
		"enero": "01", "febrero": "02", "marzo": "03", "abril": "04",
		"mayo": "05", "junio": "06", "julio": "07", "agosto": "08",
		"septiembre": "09", "octubre": "10", "noviembre": "11", "diciembre": "12",
	},
	"it": {
		"gennaio": "01", "febbraio": "02", "marzo": "03", "aprile": "04",
		"maggio": "05", "giugno": "06", "luglio": "07", "agosto": "08",
		"settembre": "09", "ottobre": "10", "novembre": "11", "dicembre": "12",
	},
}

// Month names that appear in no table fall back to January.
const unmappedMonth = "01"

type datePattern struct {
	re   *regexp.Regexp
	lang string // forces the month table; empty uses the caller's language
	day  int
	mon  int
	year int
}

// Tried in order, first match wins.
var datePatterns = []datePattern{
	// 15. März 2025, den 3. Mai 2024, 15 March 2025
	{re: regexp.MustCompile(`(?i)(?:\bden\s+)?(\d{1,2})[. ]\s*(\p{L}+)\s+(\d{4})`), day: 1, mon: 2, year: 3},
	// 15 de marzo de 2025
	{re: regexp.MustCompile(`(?i)(\d{1,2})\s+de\s+(\p{L}+)\s+de\s+(\d{4})`), day: 1, mon: 2, year: 3},
	// 15 marzo 2025
	{re: regexp.MustCompile(`(?i)(\d{1,2})\s+(\p{L}+)\s+(\d{4})`), day: 1, mon: 2, year: 3},
	// March 15, 2025
	{
		re:   regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),\s+(\d{4})`),
		lang: "en", day: 2, mon: 1, year: 3,
	},
}

// Date renders a written-out date as DD.MM.YYYY.
func Date(text, lang string) (string, bool) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		day, err := strconv.Atoi(m[p.day])
		if err != nil {
			return "", false
		}
		table := lang
		if p.lang != "" {
			table = p.lang
		}
		return fmt.Sprintf("%02d.%s.%s", day, monthNumber(m[p.mon], table), m[p.year]), true
	}
	return "", false
}

func monthNumber(name, lang string) string {
	table, ok := months[lang]
	if !ok {
		table = months["en"]
	}
	if n, ok := table[StripAccents(strings.ToLower(name))]; ok {
		return n
	}
	return unmappedMonth
}

var numericDate = regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})[./-](\d{4}|\d{2})\b`)

// NumericDate renders the first dd.mm.yyyy, dd/mm/yyyy or dd-mm-yyyy date in text as
// DD.MM.YYYY. Two-digit years are read as 20yy.
func NumericDate(text string) (string, bool) {
	for _, m := range numericDate.FindAllStringSubmatch(text, -1) {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if day < 1 || day > 31 || month < 1 || month > 12 {
			continue
		}
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		return fmt.Sprintf("%02d.%02d.%s", day, month, year), true
	}
	return "", false
}

// AnyDate tries Date first and NumericDate second.
func AnyDate(text, lang string) (string, bool) {
	if d, ok := Date(text, lang); ok {
		return d, true
	}
	return NumericDate(text)
}

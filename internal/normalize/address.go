package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

type replacement struct {
	from, to string
}

var streetSpelling = strings.NewReplacer(" strabe", " straße", " Strabe", " Straße")

// Known OCR splits and misreads, applied in order.
var addressRepairs = map[string][]replacement{
	"de": {
		{"Deutsch1and", "Deutschland"},
		{"Germa ny", "Germany"},
		{"Ber1in", "Berlin"},
		{"Münch en", "München"},
	},
	"fr": {
		{"P aris", "Paris"},
		{"Mar seille", "Marseille"},
		{"Fran ce", "France"},
	},
	"es": {
		{"M adrid", "Madrid"},
		{"Bar celona", "Barcelona"},
		{"Espa ña", "España"},
	},
	"it": {
		{"R oma", "Roma"},
		{"M ilano", "Milano"},
		{"Ita lia", "Italia"},
	},
	"en": {
		{"Un ited", "United"},
		{"Lon don", "London"},
		{"New York City", "New York"},
	},
}

type addressGrammar struct {
	re             *regexp.Regexp
	format         func(m []string, country string) string
	defaultCountry string
	country        int
}

var addressGrammars = map[string]addressGrammar{
	"de": {
		re:             regexp.MustCompile(`^([\p{L}.\- ]+?)\s+(\d+[a-zA-Z]?),\s*(\d{5})\s+([\p{L}.\- ]+?)(?:,\s*(Deutschland|Germany))?$`),
		defaultCountry: "Deutschland",
		country:        5,
		format:         streetFirst,
	},
	"fr": {
		re:             regexp.MustCompile(`^(\d+(?:\s?(?:bis|ter))?),?\s+([\p{L}'’.\- ]+?),\s*(\d{5})\s+([\p{L}'’.\- ]+?)(?:,\s*(France))?$`),
		defaultCountry: "France",
		country:        5,
		format: func(m []string, country string) string {
			return fmt.Sprintf("%s %s, %s %s, %s", m[1], m[2], m[3], m[4], country)
		},
	},
	"es": {
		re:             regexp.MustCompile(`^([\p{L}.\- ]+?),?\s+(\d+),\s*(\d{5})\s+([\p{L}.\- ]+?)(?:,\s*(España|Espana|Spain))?$`),
		defaultCountry: "España",
		country:        5,
		format:         streetFirst,
	},
	"it": {
		re:             regexp.MustCompile(`^([\p{L}'’.\- ]+?),?\s+(\d+[a-zA-Z]?),\s*(\d{5})\s+([\p{L}'’.\- ]+?)(?:,\s*(Italia|Italy))?$`),
		defaultCountry: "Italia",
		country:        5,
		format:         streetFirst,
	},
}

func streetFirst(m []string, country string) string {
	return fmt.Sprintf("%s %s, %s %s, %s", m[1], m[2], m[3], m[4], country)
}

// Address repairs OCR damage in a postal address and, when the result fits the language's
// postal grammar, reformats it as "Street Number, ZIP City, Country". Addresses that do not
// fit are returned cleaned but otherwise unchanged.
func Address(text, lang string) (string, bool) {
	s := fixDigitConfusions(text)
	s = streetSpelling.Replace(s)
	for _, r := range addressRepairs[lang] {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	s = CollapseSpace(s)
	s = strings.Trim(s, " ,;")
	if s == "" {
		return "", false
	}

	g, ok := addressGrammars[lang]
	if !ok {
		return s, true
	}
	m := g.re.FindStringSubmatch(s)
	if m == nil {
		return s, true
	}
	country := m[g.country]
	if country == "" {
		country = g.defaultCountry
	}
	return g.format(m, country), true
}

// fixDigitConfusions reads O as 0 and l or I as 1 when they touch a digit.
func fixDigitConfusions(s string) string {
	r := []rune(s)
	out := make([]rune, len(r))
	copy(out, r)
	for i, c := range r {
		var digit rune
		switch c {
		case 'O':
			digit = '0'
		case 'l', 'I':
			digit = '1'
		default:
			continue
		}
		prev := i > 0 && unicode.IsDigit(r[i-1])
		next := i+1 < len(r) && unicode.IsDigit(r[i+1])
		if prev || next {
			out[i] = digit
		}
	}
	return string(out)
}

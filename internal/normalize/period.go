package normalize

import (
	"regexp"
	"sort"
	"strings"
)

var (
	writtenDate = regexp.MustCompile(`(?i)\d{1,2}\.?\s+(?:de\s+)?\p{L}+\s+(?:de\s+)?\d{4}|\p{L}+\s+\d{1,2},\s+\d{4}`)
	duration    = regexp.MustCompile(`(?i)(\d+)\s*(mois|months?|monate?n?|tage?n?|jahre?n?|wochen|weeks?|days?|years?|meses|d[ií]as|años|anni|mesi|giorni|jours|ans)\b`)
)

// PeriodSeparator joins the two dates of a rendered period.
const PeriodSeparator = " – "

// JoinPeriod renders a start and end date as one period.
func JoinPeriod(start, end string) string {
	return start + PeriodSeparator + end
}

// Period renders a statement or loan period. Two dates become "DD.MM.YYYY – DD.MM.YYYY";
// otherwise a duration such as "24 mois" is returned in normalized spacing.
func Period(text, lang string) (string, bool) {
	type found struct {
		value string
		pos   int
	}

	var dates []found
	for _, loc := range numericDate.FindAllStringIndex(text, -1) {
		if d, ok := NumericDate(text[loc[0]:loc[1]]); ok {
			dates = append(dates, found{pos: loc[0], value: d})
		}
	}
	for _, loc := range writtenDate.FindAllStringIndex(text, -1) {
		if d, ok := Date(text[loc[0]:loc[1]], lang); ok {
			dates = append(dates, found{pos: loc[0], value: d})
		}
	}
	if len(dates) >= 2 {
		sort.SliceStable(dates, func(i, j int) bool { return dates[i].pos < dates[j].pos })
		return JoinPeriod(dates[0].value, dates[1].value), true
	}

	if m := duration.FindStringSubmatch(text); m != nil {
		return m[1] + " " + strings.ToLower(m[2]), true
	}
	return "", false
}

var (
	ibanLike      = regexp.MustCompile(`\b[A-Z]{2}\d{2}(?:\s?[A-Z0-9]{4}){2,7}(?:\s?[A-Z0-9]{1,4})?\b`)
	accountDigits = regexp.MustCompile(`[\d*][\d*\s\-/]{2,}[\d*]`)
)

// AccountNumber renders an IBAN in groups of four and any other account number with its
// inner spaces removed.
func AccountNumber(text string) (string, bool) {
	upper := strings.ToUpper(text)
	if m := ibanLike.FindString(upper); m != "" {
		return GroupIBAN(m), true
	}
	if m := accountDigits.FindString(text); m != "" {
		return strings.Join(strings.Fields(m), ""), true
	}
	return "", false
}

// GroupIBAN removes spaces from an IBAN and regroups it in blocks of four.
func GroupIBAN(s string) string {
	compact := strings.Join(strings.Fields(s), "")
	var b strings.Builder
	for i, r := range compact {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

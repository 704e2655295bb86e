package account

import (
	"regexp"
	"strings"

	"github.com/MuhammadZahidRWTH/docextract/internal/normalize"
)

const monthDate = `\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2}, \d{4}\b`

var (
	detailsSection = regexp.MustCompile(`(?s)Transaction Details(.*?)(?:\n\s*\n|\z)`)
	detailsRow     = regexp.MustCompile(monthDate)
	signedRow      = regexp.MustCompile(monthDate + `.+?[+-]\d+,\d{2}\b`)
	overdraftTable = regexp.MustCompile(`(?s)Operaciones que causaron el descubierto\s*\|?\s*(.*?)(?:\n\s*\n|\z)`)
	overdraftRow   = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s*\|?\s*([^|]+?)\s*\|?\s*(-?\d[\d.]*,\d{2})`)
	datedAmountRow = regexp.MustCompile(`(\d{2}/\d{2}/\d{4}).*?(-?\d[\d.]*,\d{2})`)
	rowDate        = regexp.MustCompile(`(?m)^[ \t]*(\d{1,2}[.\-/]\d{1,2}[.\-/]\d{2,4})\b`)
)

const overdraftHeading = "Operaciones que causaron el descubierto"

// countTransactions counts statement rows when no explicit count is printed. Month-dated
// tables include a header row that is not counted. The Spanish overdraft table, when
// present, replaces the month-dated counts.
func countTransactions(text string) int {
	n := 0
	if strings.Contains(text, "Transaction Details") {
		if m := detailsSection.FindStringSubmatch(text); m != nil {
			n = max(0, len(detailsRow.FindAllString(m[1], -1))-1)
		}
	}
	if n == 0 {
		n = max(0, len(signedRow.FindAllString(text, -1))-1)
	}
	if strings.Contains(text, overdraftHeading) {
		if m := overdraftTable.FindStringSubmatch(text); m != nil {
			n = len(overdraftRow.FindAllString(m[1], -1))
		}
	}
	if n == 0 {
		n = len(datedAmountRow.FindAllString(text, -1))
	}
	return n
}

// rowPeriod spans the first and last dates that open a statement row. Dates elsewhere in
// the text, such as a letter date or a payment deadline, are not rows.
func rowPeriod(text string) (string, bool) {
	var first, last string
	for _, m := range rowDate.FindAllStringSubmatch(text, -1) {
		d, ok := normalize.NumericDate(m[1])
		if !ok {
			continue
		}
		if first == "" {
			first = d
		}
		last = d
	}
	if first == "" || first == last {
		return "", false
	}
	return normalize.JoinPeriod(first, last), true
}

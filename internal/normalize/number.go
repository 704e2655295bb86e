package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MoneySymbol is appended by Money whatever the source currency was.
const MoneySymbol = "€"

var (
	numberRun   = regexp.MustCompile(`[-−]?[.,]?\d[\d.,]*`)
	numberSpace = regexp.MustCompile(`(\d)[ \x{00A0}\x{202F}']+(\d)`)
	currencyTag = regexp.MustCompile(`€|\$|£|\bEUR\b|\bUSD\b|\bGBP\b`)
	decimalOnly = regexp.MustCompile(`^\d*\.?\d+$`)
)

var currencySymbols = map[string]string{
	"€": "€", "EUR": "€",
	"$": "$", "USD": "$",
	"£": "£", "GBP": "£",
}

// Money renders an amount as "X.XX €".
func Money(text, lang string) (string, bool) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	value, ok := decimal(numberRun.FindString(compact), lang)
	if !ok {
		return "", false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%.2f %s", f, MoneySymbol), true
}

// Amount renders an amount as "<value> <symbol>", keeping the value's precision and the
// currency written in text (€ when none is written).
func Amount(text string) (string, bool) {
	grouped := numberSpace.ReplaceAllString(text, "$1$2")
	value, ok := decimal(numberRun.FindString(grouped), "")
	if !ok {
		return "", false
	}
	symbol := MoneySymbol
	if tag := currencyTag.FindString(text); tag != "" {
		symbol = currencySymbols[tag]
	}
	return value + " " + symbol, true
}

// Percent renders a rate as "X %".
func Percent(text string) (string, bool) {
	raw := strings.TrimRight(numberRun.FindString(text), ".,")
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, ".") {
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	if _, err := strconv.ParseFloat(strings.Replace(raw, "−", "-", 1), 64); err != nil {
		return "", false
	}
	return strings.Replace(raw, "−", "-", 1) + " %", true
}

// decimal turns a locale-formatted number into digits with an optional '.' decimal point.
//
// With both separators present the rightmost one is the decimal point. A separator that
// occurs more than once groups thousands. A single separator followed by exactly three
// digits groups thousands when it is the language's grouping character (',' for English,
// '.' for the other languages, either one when lang is empty).
func decimal(raw, lang string) (string, bool) {
	negative := strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "−")
	s := strings.TrimLeft(raw, "-−")
	s = strings.TrimRight(s, ".,")
	if s == "" {
		return "", false
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		pos := max(lastDot, lastComma)
		s = strings.NewReplacer(".", "", ",", "").Replace(s[:pos]) + "." + s[pos+1:]
	case lastDot >= 0:
		s = singleSeparator(s, ".", lang)
	case lastComma >= 0:
		s = singleSeparator(s, ",", lang)
	}

	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if !decimalOnly.MatchString(s) {
		return "", false
	}
	if negative {
		s = "-" + s
	}
	return s, true
}

func singleSeparator(s, sep, lang string) string {
	if strings.Count(s, sep) > 1 {
		return strings.ReplaceAll(s, sep, "")
	}
	idx := strings.Index(s, sep)
	if len(s)-idx-1 == 3 && idx > 0 && isGroupingSeparator(sep, lang) {
		return strings.Replace(s, sep, "", 1)
	}
	return strings.Replace(s, sep, ".", 1)
}

func isGroupingSeparator(sep, lang string) bool {
	switch lang {
	case "":
		return true
	case "en":
		return sep == ","
	default:
		return sep == "."
	}
}

package ofx

import (
	"fmt"
	"strings"
	"time"
)

// Render writes a statement as English statement text using the labels the account and
// credit extractors read. Card numbers are masked down to their last four digits.
func Render(s Statement) string {
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	switch s.Kind {
	case KindCreditCard:
		line("Credit Card Statement")
		line("Card Number: %s", maskCard(s.AccountID))
	default:
		line("Account Statement")
		if s.AccountType != "" {
			line("Account Type: %s", titleCase(s.AccountType))
		}
		line("Account Number: %s", s.AccountID)
	}

	if !s.Start.IsZero() && !s.End.IsZero() {
		line("Statement Period: %s - %s", numericDate(s.Start), numericDate(s.End))
	}

	switch s.Kind {
	case KindCreditCard:
		line("New Balance: %s", money(s.Balance, s.Currency))
	default:
		line("Closing Balance: %s", money(s.Balance, s.Currency))
	}
	if s.Available != nil {
		line("Available Balance: %s", money(*s.Available, s.Currency))
	}

	if len(s.Transactions) > 0 {
		// Card activity is listed without the headings the account extractor counts.
		if s.Kind == KindCreditCard {
			line("Card Activity")
		} else {
			line("Number of Transactions: %d", len(s.Transactions))
			line("Transaction Details")
		}
		for _, tx := range s.Transactions {
			line("%s %s %s", tx.Date.Format("Jan 2, 2006"), tx.Description, money(tx.Amount, s.Currency))
		}
	}

	return b.String()
}

// RenderAll renders statements separated by blank lines.
func RenderAll(statements []Statement) string {
	parts := make([]string, len(statements))
	for i, s := range statements {
		parts[i] = Render(s)
	}
	return strings.Join(parts, "\n")
}

func money(v float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, currency)
}

func numericDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func maskCard(id string) string {
	digits := strings.Join(strings.Fields(id), "")
	if len(digits) < 4 {
		return digits
	}
	return "****-****-****-" + digits[len(digits)-4:]
}

func titleCase(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

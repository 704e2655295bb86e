// Package ofx reads OFX/QFX statement downloads and renders them as plain statement text
// for the extraction pipeline.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Kind tells bank statements from credit card statements.
type Kind string

const (
	// KindBank is a checking, savings or money market statement.
	KindBank Kind = "bank"
	// KindCreditCard is a credit card statement.
	KindCreditCard Kind = "credit_card"
)

// Statement is one account statement from an OFX file.
type Statement struct {
	Start        time.Time
	End          time.Time
	Available    *float64
	Kind         Kind
	AccountID    string
	AccountType  string
	Currency     string
	Transactions []Transaction
	Balance      float64
}

// Transaction is one statement line.
type Transaction struct {
	Date        time.Time
	Description string
	Type        string
	Amount      float64 // negative for debits
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX file into its statements.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]Statement, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var statements []Statement

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			s := Statement{
				Kind:      KindBank,
				AccountID: string(stmt.BankAcctFrom.AcctID),
				Currency:  currency(stmt.CurDef),
				Balance:   amount(stmt.BalAmt),
			}
			if stmt.BankAcctFrom.AcctType.Valid() {
				s.AccountType = stmt.BankAcctFrom.AcctType.String()
			}
			if stmt.AvailBalAmt != nil {
				v := amount(*stmt.AvailBalAmt)
				s.Available = &v
			}
			p.addTransactions(&s, stmt.BankTranList)
			statements = append(statements, s)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			s := Statement{
				Kind:      KindCreditCard,
				AccountID: string(stmt.CCAcctFrom.AcctID),
				Currency:  currency(stmt.CurDef),
				Balance:   amount(stmt.BalAmt),
			}
			if stmt.AvailBalAmt != nil {
				v := amount(*stmt.AvailBalAmt)
				s.Available = &v
			}
			p.addTransactions(&s, stmt.BankTranList)
			statements = append(statements, s)
		}
	}

	slog.Debug("Parsed OFX file", "statements", len(statements))

	return statements, nil
}

func (p *Parser) addTransactions(s *Statement, list *ofxgo.TransactionList) {
	if list == nil {
		return
	}
	s.Start = list.DtStart.Time
	s.End = list.DtEnd.Time
	for _, tx := range list.Transactions {
		s.Transactions = append(s.Transactions, Transaction{
			Date:        tx.DtPosted.Time,
			Description: p.extractMerchantName(tx),
			Type:        tx.TrnType.String(),
			Amount:      amount(tx.TrnAmt),
		})
	}
}

func amount(a ofxgo.Amount) float64 {
	f, _ := a.Float64()
	return f
}

func currency(c ofxgo.CurrSymbol) string {
	s := c.String()
	if s == "XXX" {
		return ""
	}
	return s
}

// extractMerchantName tries to get a clean merchant name from OFX data.
func (p *Parser) extractMerchantName(tx ofxgo.Transaction) string {
	// Prefer PAYEE if available (cleaner merchant name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)

	// Use MEMO field if NAME is generic
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Clean up date patterns like "MM/DD" at the beginning
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}

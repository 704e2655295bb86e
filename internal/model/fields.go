package model

import (
	"strconv"
	"strings"
)

// Key names a field in the fixed extraction vocabulary.
type Key string

// General keys.
const (
	KeyDocumentID         Key = "document_id"
	KeyDocumentType       Key = "document_type"
	KeyDocumentDate       Key = "document_date"
	KeyCustomerName       Key = "customer_name"
	KeyCustomerID         Key = "customer_id"
	KeyInstitutionName    Key = "institution_name"
	KeyInstitutionAddress Key = "institution_address"
	KeyLanguage           Key = "language"
)

// Credit keys.
const (
	KeyCardNumber      Key = "card_number"
	KeyCreditLimit     Key = "credit_limit"
	KeyInterestRate    Key = "interest_rate"
	KeyPaymentDueDate  Key = "payment_due_date"
	KeyStatementPeriod Key = "statement_period"
	KeyMinimumPayment  Key = "minimum_payment"
	KeyPreviousBalance Key = "previous_balance"
	KeyNewBalance      Key = "new_balance"
)

// Personal account keys. KeyStatementPeriod is shared with credit.
const (
	KeyAccountNumber     Key = "account_number"
	KeyAccountType       Key = "account_type"
	KeyOpeningBalance    Key = "opening_balance"
	KeyClosingBalance    Key = "closing_balance"
	KeyAvailableBalance  Key = "available_balance"
	KeyTransactionNumber Key = "transaction_number"
)

// Garnishment keys.
const (
	KeyDebtorName        Key = "debtor_name"
	KeyCreditorName      Key = "creditor_name"
	KeyGarnishmentAmount Key = "garnishment_amount"
	KeyEffectiveDate     Key = "effective_date"
	KeyDuration          Key = "duration"
	KeyLegalAuthority    Key = "legal_authority"
)

// Investment keys.
const (
	KeyPortfolioID    Key = "portfolio_id"
	KeyPortfolioValue Key = "portfolio_value"
	KeyAssetNumber    Key = "asset_number"
	KeyRiskProfile    Key = "risk_profile"
)

// FieldSet maps keys to normalized values. A value is either a non-blank string or a
// positive int; an absent key is null.
//
// Builders return fresh sets and Merge never touches its operands, so a FieldSet handed to
// a later stage is never modified behind its back.
type FieldSet map[Key]any

// NewFieldSet returns an empty set.
func NewFieldSet() FieldSet {
	return FieldSet{}
}

// SetString stores v under k unless v is blank.
func (f FieldSet) SetString(k Key, v string) {
	if strings.TrimSpace(v) == "" {
		return
	}
	f[k] = v
}

// SetInt stores n under k unless n is zero or negative.
func (f FieldSet) SetInt(k Key, n int) {
	if n <= 0 {
		return
	}
	f[k] = n
}

// Has reports whether k carries a usable value.
func (f FieldSet) Has(k Key) bool {
	v, ok := f[k]
	if !ok {
		return false
	}
	return IsPresent(v)
}

// String renders the value under k, or "" when absent.
func (f FieldSet) String(k Key) string {
	switch v := f[k].(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Int returns the integer under k.
func (f FieldSet) Int(k Key) (int, bool) {
	n, ok := f[k].(int)
	return n, ok
}

// Clone returns a shallow copy.
func (f FieldSet) Clone() FieldSet {
	out := make(FieldSet, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Merge returns the union of f and other. Keys in other win on collision.
func (f FieldSet) Merge(other FieldSet) FieldSet {
	out := make(FieldSet, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// With returns a copy of f with k set to v.
func (f FieldSet) With(k Key, v string) FieldSet {
	out := f.Clone()
	out.SetString(k, v)
	return out
}

// Restrict returns the present values of f for the given keys only.
func (f FieldSet) Restrict(keys []Key) FieldSet {
	out := make(FieldSet, len(keys))
	for _, k := range keys {
		if f.Has(k) {
			out[k] = f[k]
		}
	}
	return out
}

// IsPresent reports whether a raw value counts as non-null. Blank strings and zero
// counts are null.
func IsPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case int:
		return t > 0
	default:
		return true
	}
}

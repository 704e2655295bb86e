package model

// GeneralKeys are kept in every output record, in output order.
var GeneralKeys = []Key{
	KeyDocumentID,
	KeyDocumentType,
	KeyDocumentDate,
	KeyCustomerName,
	KeyCustomerID,
	KeyInstitutionName,
	KeyInstitutionAddress,
	KeyLanguage,
}

var domainKeys = map[DocumentType][]Key{
	DocumentTypeCredit: {
		KeyCardNumber,
		KeyCreditLimit,
		KeyInterestRate,
		KeyPaymentDueDate,
		KeyStatementPeriod,
		KeyMinimumPayment,
		KeyPreviousBalance,
		KeyNewBalance,
	},
	DocumentTypePersonalAccount: {
		KeyAccountNumber,
		KeyAccountType,
		KeyStatementPeriod,
		KeyOpeningBalance,
		KeyClosingBalance,
		KeyAvailableBalance,
		KeyTransactionNumber,
	},
	DocumentTypeGarnishment: {
		KeyDebtorName,
		KeyCreditorName,
		KeyGarnishmentAmount,
		KeyEffectiveDate,
		KeyDuration,
		KeyLegalAuthority,
	},
	DocumentTypeInvestment: {
		KeyPortfolioID,
		KeyPortfolioValue,
		KeyAssetNumber,
		KeyRiskProfile,
	},
}

// DomainKeys returns a copy of the built-in key list for t. Unknown has none.
func DomainKeys(t DocumentType) []Key {
	keys := domainKeys[t]
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

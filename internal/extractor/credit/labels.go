package credit

var englishLabels = labels{
	cardNumber:      `(?:Card\s*Number|Reference\s*Number\s*Account Number)`,
	creditLimit:     `Credit\s*Limit`,
	interestRate:    `(?:Interest\s*Rate|APR|Annual\s*Percentage\s*Yield|APY)`,
	paymentDueDate:  `(?:Payment\s*)?Due\s*Date`,
	statementPeriod: `Statement\s*Period`,
	minimumPayment:  `Minimum\s*Payment`,
	previousBalance: `Previous\s*Balance`,
	newBalance:      `(?:New|Current)\s*Balance`,
}

var germanLabels = labels{
	cardNumber:      `(?:Karten\s*nummer|Referenz\s*nummer|Konto\s*Nr)`,
	creditLimit:     `(?:Kredit\s*limit|Kredit\s*rahmen|Kredit\s*grenze)`,
	interestRate:    `(?:Zins\s*satz|Effektiver\s*Jahres\s*zins)`,
	paymentDueDate:  `(?:Fälligkeits\s*datum|Zahlungs\s*ziel)`,
	statementPeriod: `Abrechnungs\s*zeitraum`,
	minimumPayment:  `(?:Mindest\s*zahlung|Minimal\s*betrag)`,
	previousBalance: `(?:Vorheriger\s*Konto\s*stand|Letzter\s*Saldo)`,
	newBalance:      `(?:Neuer\s*Konto\s*stand|Aktueller\s*Saldo|Betrag)`,
}

var frenchCardLabels = labels{
	cardNumber:      `Num[eé]ro de carte`,
	creditLimit:     `(?:Limite de cr[eé]dit|Cr[eé]dit maximum)`,
	interestRate:    `Taux d[’']int[eé]r[eê]t`,
	paymentDueDate:  `Date d[’']?[eé]ch[eé]ance`,
	statementPeriod: `P[eé]riode de relev[eé]`,
	minimumPayment:  `Paiement minimum`,
	previousBalance: `Solde pr[eé]c[eé]dent`,
	newBalance:      `Solde nouveau`,
}

var spanishLabels = labels{
	cardNumber:      `N[uú]mero de (?:tarjeta|referencia)`,
	creditLimit:     `(?:L[ií]mite de Cr[eé]dito|Cr[eé]dito m[aá]ximo)`,
	interestRate:    `Tasa de Inter[eé]s(?: Anual)?`,
	paymentDueDate:  `(?:Fecha l[ií]mite de pago|Fecha de vencimiento)`,
	statementPeriod: `Periodo de estado`,
	minimumPayment:  `Pago m[ií]nimo`,
	previousBalance: `Saldo anterior`,
	newBalance:      `Saldo actual`,
}

var italianLabels = labels{
	cardNumber:      `Numero di (?:carta|conto)`,
	creditLimit:     `(?:Limite di credito|Credito massimo)`,
	interestRate:    `Tasso di interesse`,
	paymentDueDate:  `Scadenza pagamento`,
	statementPeriod: `Periodo di rendiconto`,
	minimumPayment:  `Pagamento minimo`,
	previousBalance: `Saldo precedente`,
	newBalance:      `Saldo nuovo`,
}

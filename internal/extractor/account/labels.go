package account

var englishLabels = labels{
	accountType:      []string{`Account Type`},
	accountNumber:    []string{`Account\s*Number`, `IBAN`},
	statementPeriod:  []string{`Statement Period`},
	openingBalance:   []string{`Opening Balance`, `Previous Balance`},
	closingBalance:   []string{`Closing Balance`, `Ending Balance`},
	availableBalance: []string{`Available Balance`},
	transactionCount: []string{`Number of Transactions[\s:.\-]*(\d+)`, `Transaction\s+Details\s+\((\d+)\)`},
}

var germanLabels = labels{
	accountType:      []string{`Kontotyp`, `Kontoart`},
	accountNumber:    []string{`Konto\s*nummer`, `IBAN`},
	statementPeriod:  []string{`Abrechnungszeitraum`},
	openingBalance:   []string{`Anfangssaldo`, `Vorheriger Kontostand`},
	closingBalance:   []string{`Endsaldo`, `Kontostand`},
	availableBalance: []string{`Verf[uü]gbarer Betrag`},
	transactionCount: []string{`Anzahl\s+der\s+Transaktionen[\s:.\-]*(\d+)`, `Transaktionsdetails\s+\((\d+)\)`},
}

var frenchLabels = labels{
	accountType:      []string{`Type\s+de\s+compte`, `Type\s+du\s+compte`},
	accountNumber:    []string{`Numéro\s*de\s*compte`, `IBAN`},
	statementPeriod:  []string{`P[eé]riode\s+de\s+relev[eé]`},
	openingBalance:   []string{`Solde\s+de\s+d[eé]part`, `Solde\s+initial`},
	closingBalance:   []string{`Solde\s+final`, `Solde\s+de\s+cl[oô]ture`},
	availableBalance: []string{`Solde\s+disponible`},
	transactionCount: []string{`Nombre\s+de\s+transactions[\s:.\-]*(\d+)`, `Détails\s+de\s+transaction\s+\((\d+)\)`},
}

var spanishLabels = labels{
	accountType:      []string{`Tipo de cuenta`},
	accountNumber:    []string{`Número\s*de\s*cuenta`, `IBAN`},
	statementPeriod:  []string{`Periodo de estado`, `Per[ií]odo del estado`},
	openingBalance:   []string{`Saldo inicial`},
	closingBalance:   []string{`Saldo final`, `Saldo actual`},
	availableBalance: []string{`Saldo disponible`, `Disponible`},
	transactionCount: []string{`Cantidad\s+de\s+transacciones[\s:.\-]*(\d+)`, `Detalles\s+de\s+transacción\s+\((\d+)\)`},
}

var italianLabels = labels{
	accountType:      []string{`Tipo di conto`},
	accountNumber:    []string{`Numero\s*di\s*conto`, `IBAN`},
	statementPeriod:  []string{`Periodo estratto`, `Periodo di rendiconto`},
	openingBalance:   []string{`Saldo di apertura`},
	closingBalance:   []string{`Saldo di chiusura`},
	availableBalance: []string{`Saldo disponibile`},
	transactionCount: []string{`Quantità\s+di\s+transazioni[\s:.\-]*(\d+)`, `Dettagli\s+di\s+transazione\s+\((\d+)\)`},
}

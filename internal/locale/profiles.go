package locale

import "strings"

// German matches the German-language PayPal activity export. Dates are
// DD.MM.YYYY, amounts use "." for thousands and "," for the fraction.
var German = &Profile{
	Code: "de",
	Fields: map[string]Field{
		"Datum":                           FieldDate,
		"Uhrzeit":                         FieldTime,
		"Zeitzone":                        FieldTimezone,
		"Beschreibung":                    FieldDescription,
		"Währung":                         FieldCurrency,
		"Brutto":                          FieldGross,
		"Entgelt":                         FieldFee,
		"Netto":                           FieldNet,
		"Guthaben":                        FieldBalance,
		"Transaktionscode":                FieldTxnID,
		"Absender E-Mail-Adresse":         FieldFrom,
		"Name":                            FieldName,
		"Name der Bank":                   FieldBankName,
		"Bankkonto":                       FieldBankAccount,
		"Versand- und Bearbeitungsgebühr": FieldShippingFee,
		"Umsatzsteuer":                    FieldVAT,
		"Rechnungsnummer":                 FieldInvoiceID,
		"Zugehöriger Transaktionscode":    FieldReferenceTxnID,
	},
	DateFormat:        "02.01.2006",
	BankDepositMarker: "Bankgutschrift auf PayPal-Konto",
	decimal: func(s string) string {
		s = strings.ReplaceAll(s, ".", "")
		return strings.ReplaceAll(s, ",", ".")
	},
}

// English matches the US English PayPal activity export. Dates are
// MM/DD/YYYY, amounts use "," for thousands and "." for the fraction.
var English = &Profile{
	Code: "en",
	Fields: map[string]Field{
		"Date":                         FieldDate,
		"Time":                         FieldTime,
		"TimeZone":                     FieldTimezone,
		"Type":                         FieldDescription,
		"Currency":                     FieldCurrency,
		"Gross":                        FieldGross,
		"Fee":                          FieldFee,
		"Net":                          FieldNet,
		"Balance":                      FieldBalance,
		"Transaction ID":               FieldTxnID,
		"From Email Address":           FieldFrom,
		"Name":                         FieldName,
		"Bank Name":                    FieldBankName,
		"Bank Account":                 FieldBankAccount,
		"Shipping and Handling Amount": FieldShippingFee,
		"Sales Tax":                    FieldVAT,
		"Invoice Number":               FieldInvoiceID,
		"Reference Txn ID":             FieldReferenceTxnID,
	},
	DateFormat:        "01/02/2006",
	BankDepositMarker: "Bank Deposit to PP Account",
	decimal: func(s string) string {
		return strings.ReplaceAll(s, ",", "")
	},
}

// Profiles lists every supported locale.
var Profiles = []*Profile{German, English}

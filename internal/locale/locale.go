package locale

import (
	"fmt"
	"time"
)

// Field identifies one semantic column of a PayPal activity export,
// independent of the export language.
type Field = string

const (
	FieldDate           Field = "date"
	FieldTime           Field = "time"
	FieldTimezone       Field = "timezone"
	FieldName           Field = "name"
	FieldDescription    Field = "description"
	FieldCurrency       Field = "currency"
	FieldGross          Field = "gross"
	FieldFee            Field = "fee"
	FieldNet            Field = "net"
	FieldBalance        Field = "balance"
	FieldTxnID          Field = "txn_id"
	FieldFrom           Field = "from"
	FieldBankName       Field = "bank_name"
	FieldBankAccount    Field = "bank_account"
	FieldShippingFee    Field = "shipping_fee"
	FieldVAT            Field = "vat"
	FieldInvoiceID      Field = "invoice_id"
	FieldReferenceTxnID Field = "reference_txn_id"
)

// KnownFields is the closed set of canonical field identifiers.
var KnownFields = []Field{
	FieldDate, FieldTime, FieldTimezone, FieldName, FieldDescription,
	FieldCurrency, FieldGross, FieldFee, FieldNet, FieldBalance,
	FieldTxnID, FieldFrom, FieldBankName, FieldBankAccount,
	FieldShippingFee, FieldVAT, FieldInvoiceID, FieldReferenceTxnID,
}

// IsKnownField reports whether name is one of the canonical identifiers.
func IsKnownField(name string) bool {
	for _, f := range KnownFields {
		if f == name {
			return true
		}
	}
	return false
}

// Profile describes one localized PayPal CSV schema: the raw-header mapping,
// the date layout, the decimal convention and the narration text that marks
// a bank deposit. Profiles are immutable values; one per supported locale.
type Profile struct {
	Code              string
	Fields            map[string]Field
	DateFormat        string
	BankDepositMarker string

	decimal func(string) string
}

// Matches reports whether headers contains every raw header this profile
// maps. Exact string comparison, order-independent; extra columns are fine.
func (p *Profile) Matches(headers []string) bool {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for raw := range p.Fields {
		if !present[raw] {
			return false
		}
	}
	return true
}

// Normalize rewrites a raw row's keys to canonical field names. Headers the
// profile does not map pass through unchanged. Values stay raw strings.
func (p *Profile) Normalize(row map[string]string) map[string]string {
	out := make(map[string]string, len(row))
	for raw, value := range row {
		if field, ok := p.Fields[raw]; ok {
			out[field] = value
		} else {
			out[raw] = value
		}
	}
	return out
}

// ParseDate parses text with the profile's date layout. Failure here means
// the file does not actually follow this profile's schema.
func (p *Profile) ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(p.DateFormat, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", text, err)
	}
	return t, nil
}

// Decimal rewrites a locale-formatted number into a dot-decimal string.
// "1.234,56" becomes "1234.56" under the German profile. The rewrite keeps
// sign and magnitude intact and does not assume a fixed fraction width.
func (p *Profile) Decimal(text string) string {
	return p.decimal(text)
}

// ByCode returns the profile for a locale code ("de", "en").
func ByCode(code string) (*Profile, error) {
	for _, p := range Profiles {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unsupported locale %q", code)
}

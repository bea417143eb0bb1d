package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlagOkay marks a completed transaction in beancount output.
const FlagOkay = "*"

// Amount is a decimal quantity in a single currency.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

// NewAmount builds an Amount from a decimal and currency code.
func NewAmount(n decimal.Decimal, currency string) *Amount {
	return &Amount{Number: n, Currency: currency}
}

// Posting is one account/amount leg of a transaction. A nil Amount leaves
// the leg for the consumer's auto-balancing.
type Posting struct {
	Account string
	Amount  *Amount
}

// Directive is any record the importer emits: a Transaction or a Balance.
type Directive interface {
	// DirectiveDate returns the effective date of the record.
	DirectiveDate() time.Time
}

// Transaction is a double-entry record with ordered postings.
type Transaction struct {
	Date      time.Time
	Flag      string
	Payee     string
	Narration string
	Postings  []Posting
	Meta      map[string]string

	// Provenance of the source row, used by hosts for deduplication.
	SourceFile string
	SourceLine int
}

// DirectiveDate returns the transaction date.
func (t *Transaction) DirectiveDate() time.Time { return t.Date }

// Balance asserts the running balance of an account as of the start of Date.
type Balance struct {
	Date    time.Time
	Account string
	Amount  Amount

	SourceFile string
	SourceLine int
}

// DirectiveDate returns the assertion date.
func (b *Balance) DirectiveDate() time.Time { return b.Date }
